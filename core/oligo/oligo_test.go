package oligo

import (
	"math"
	"strings"
	"testing"
)

func near(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func TestClean(t *testing.T) {
	cases := map[string]string{
		"agct":          "AGCT",
		"1 agct":        "AGCT",
		"  A-c_G\tt\n":  "ACGT",
		"5'-ATGC-3'":    "ATGC",
		"atgx":          "ATGX",
		"":              "",
		"123 !?":        "",
		"ACGTé":         "ACGT",
		"nnRY":          "NNRY",
	}
	for in, want := range cases {
		if got := Clean(in); got != want {
			t.Errorf("Clean(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestComputeProperties_GAATTC(t *testing.T) {
	p := ComputeProperties("GAATTC", 500)
	if !p.Valid || p.Err != "" {
		t.Fatalf("expected valid record, got %+v", p)
	}
	if p.Length != 6 {
		t.Fatalf("length = %d, want 6", p.Length)
	}
	if !near(p.GCPercent, 100.0/3, 1e-9) {
		t.Fatalf("gc = %g, want 33.33", p.GCPercent)
	}
	if !near(p.MolecularWeight, 1791.24, 1e-6) {
		t.Fatalf("mw = %g, want 1791.24", p.MolecularWeight)
	}
	if p.TmBasic != 16 {
		t.Fatalf("tmBasic = %g, want 16", p.TmBasic)
	}
	if math.IsNaN(p.TmNN) || math.IsInf(p.TmNN, 0) {
		t.Fatalf("tmNN not finite: %g", p.TmNN)
	}
	if !near(p.TmNN, -26.957, 1e-3) {
		t.Fatalf("tmNN = %g, want ≈ -26.957", p.TmNN)
	}
}

func TestComputeProperties_Idempotent(t *testing.T) {
	a := ComputeProperties("GCGTCCAGCTGACGGTCAGC", 250)
	b := ComputeProperties("GCGTCCAGCTGACGGTCAGC", 250)
	if a != b {
		t.Fatalf("not idempotent:\n%+v\n%+v", a, b)
	}
}

func TestComputeProperties_CaseAndStripping(t *testing.T) {
	want := ComputeProperties("AGCT", 250)
	for _, in := range []string{"agct", "1 agct", "a g c t", "AgCt\n"} {
		if got := ComputeProperties(in, 250); got != want {
			t.Errorf("ComputeProperties(%q) = %+v, want %+v", in, got, want)
		}
	}
}

func TestComputeProperties_GCBounds(t *testing.T) {
	if p := ComputeProperties("GCGCGGCC", 250); p.GCPercent != 100 {
		t.Fatalf("all-GC gc = %g", p.GCPercent)
	}
	if p := ComputeProperties("ATATTA", 250); p.GCPercent != 0 {
		t.Fatalf("all-AT gc = %g", p.GCPercent)
	}
}

func TestComputeProperties_Invalid(t *testing.T) {
	cases := []struct {
		name, in string
		conc     float64
		tag      string
	}{
		{"non-ATGC", "ATGX", 250, ErrNonACGT},
		{"ambiguity code", "ACGTN", 250, ErrNonACGT},
		{"empty", "", 250, ErrEmpty},
		{"only digits", "12345", 250, ErrEmpty},
		{"zero concentration", "ACGT", 0, ErrConc},
		{"negative concentration", "ACGT", -5, ErrConc},
		{"NaN concentration", "ACGT", math.NaN(), ErrConc},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := ComputeProperties(tc.in, tc.conc)
			if p.Valid {
				t.Fatalf("expected invalid, got %+v", p)
			}
			if p.Err != tc.tag {
				t.Fatalf("err tag = %q, want %q", p.Err, tc.tag)
			}
			if p.Length != 0 || p.GCPercent != 0 || p.MolecularWeight != 0 || p.TmBasic != 0 || p.TmNN != 0 {
				t.Fatalf("numeric fields must be zero on invalid record: %+v", p)
			}
		})
	}
}

func TestComputePropertiesWith_Salt(t *testing.T) {
	lo := ComputePropertiesWith("GCGTCCAGCTGACGGTCAGC", Conditions{PrimerConcNM: 500, SaltMolar: 0.01})
	def := ComputePropertiesWith("GCGTCCAGCTGACGGTCAGC", Conditions{PrimerConcNM: 500})
	hi := ComputePropertiesWith("GCGTCCAGCTGACGGTCAGC", Conditions{PrimerConcNM: 500, SaltMolar: 0.2})
	if !(lo.TmNN < def.TmNN && def.TmNN < hi.TmNN) {
		t.Fatalf("Tm must rise with salt: %g %g %g", lo.TmNN, def.TmNN, hi.TmNN)
	}
	if def != ComputeProperties("GCGTCCAGCTGACGGTCAGC", 500) {
		t.Fatalf("zero salt must match the fixed default")
	}
	if bad := ComputePropertiesWith("ACGT", Conditions{PrimerConcNM: 500, SaltMolar: -1}); bad.Valid || !strings.Contains(bad.Err, "Na+") {
		t.Fatalf("negative salt must be invalid, got %+v", bad)
	}
}

func TestGCClamp(t *testing.T) {
	for s, want := range map[string]bool{"ACG": true, "ACC": true, "ACA": false, "ACT": false, "": false} {
		if got := GCClamp(s); got != want {
			t.Errorf("GCClamp(%q) = %v, want %v", s, got, want)
		}
	}
}
