// internal/cli/options_test.go
package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type recorder struct {
	analyze *AnalyzeOptions
	design  *DesignOptions
}

func (r *recorder) handlers() Handlers {
	return Handlers{
		Analyze: func(_ context.Context, o AnalyzeOptions) error { r.analyze = &o; return nil },
		Design:  func(_ context.Context, o DesignOptions) error { r.design = &o; return nil },
	}
}

func execute(t *testing.T, args ...string) (*recorder, string, error) {
	t.Helper()
	rec := &recorder{}
	root := NewRootCmd(rec.handlers())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return rec, out.String(), err
}

func mustDesign(t *testing.T, args ...string) DesignOptions {
	t.Helper()
	rec, _, err := execute(t, append([]string{"design"}, args...)...)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if rec.design == nil {
		t.Fatal("design handler not called")
	}
	return *rec.design
}

func TestDesign_DefaultsFromConfig(t *testing.T) {
	o := mustDesign(t, "--template", "ACGT", "ref.fa")
	c := o.Constraints
	if c.MinProductSize != 100 || c.MaxProductSize != 1000 || c.MinPrimerLength != 18 || c.MaxPrimerLength != 25 {
		t.Fatalf("constraint defaults: %+v", c)
	}
	if c.MinTm != 55 || c.MaxTm != 65 || c.OptimalTm != 60 {
		t.Fatalf("Tm defaults: %+v", c)
	}
	if o.CandidateCap != 300 || o.ResultCap != 20 || o.Specificity != -1 || o.CacheSize != 128 {
		t.Fatalf("limit defaults: %+v", o)
	}
	if len(o.Inputs) != 1 || o.Inputs[0] != "ref.fa" || len(o.Templates) != 1 {
		t.Fatalf("inputs: %v / %v", o.Inputs, o.Templates)
	}
	if o.Output != "text" || !o.Header || o.NoMatchExitCode != 1 || o.Log.Level != "warn" {
		t.Fatalf("output defaults: %+v", o)
	}
}

func TestDesign_FlagsOverride(t *testing.T) {
	o := mustDesign(t,
		"--template", "ACGT",
		"--min-product", "40", "--max-product", "60",
		"--min-len", "18", "--max-len", "22",
		"--min-tm", "55", "--max-tm", "65", "--opt-tm", "61.5",
		"--candidate-cap", "50", "--result-cap", "5",
		"--specificity", "2", "--threads", "3", "--timeout", "2s",
		"-o", "jsonl", "--no-header", "--quiet", "--log-output", "run.log",
	)
	c := o.Constraints
	if c.MinProductSize != 40 || c.MaxProductSize != 60 || c.MaxPrimerLength != 22 || c.OptimalTm != 61.5 {
		t.Fatalf("constraints: %+v", c)
	}
	if o.CandidateCap != 50 || o.ResultCap != 5 || o.Specificity != 2 || o.Threads != 3 || o.Timeout != 2*time.Second {
		t.Fatalf("knobs: %+v", o)
	}
	if o.Output != "jsonl" || o.Header || o.Log.Level != "error" || o.Log.Output != "run.log" {
		t.Fatalf("output: %+v", o)
	}
}

func TestDesign_ConfigFileThenFlags(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(fn, []byte("design:\n  min_product_size: 40\n  max_product_size: 80\nlimits:\n  result_cap: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	o := mustDesign(t, "--config", fn, "--template", "ACGT", "--max-product", "70")
	if o.Constraints.MinProductSize != 40 || o.Constraints.MaxProductSize != 70 || o.ResultCap != 7 {
		t.Fatalf("config/flag precedence: %+v", o)
	}
}

func TestDesign_UsageErrors(t *testing.T) {
	cases := map[string][]string{
		"no input":        {"design"},
		"product order":   {"design", "--template", "ACGT", "--min-product", "500", "--max-product", "100"},
		"bad output":      {"design", "--template", "ACGT", "-o", "xml"},
		"bad specificity": {"design", "--template", "ACGT", "--specificity", "-3"},
		"unknown flag":    {"design", "--frobnicate"},
		"missing config":  {"design", "--template", "ACGT", "--config", "/nonexistent/cfg.yaml"},
		"glob no match":   {"design", "/nonexistent/*.fa"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			rec, _, err := execute(t, args...)
			if err == nil || !IsUsage(err) {
				t.Fatalf("want usage error, got %v", err)
			}
			if rec.design != nil {
				t.Fatal("handler must not run on usage errors")
			}
		})
	}
}

func TestAnalyze_Parse(t *testing.T) {
	rec, _, err := execute(t, "analyze", "GAATTC", "fwd:ACGTACGT",
		"--oligo", "p1:GGGCCC", "--oligo", "TTTT",
		"--primer-conc", "0.5uM", "--na", "100mM", "-o", "json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	o := rec.analyze
	if o == nil || len(o.Oligos) != 4 {
		t.Fatalf("oligos: %+v", o)
	}
	ids := []string{o.Oligos[0].ID, o.Oligos[1].ID, o.Oligos[2].ID, o.Oligos[3].ID}
	if strings.Join(ids, ",") != "seq1,fwd,p1,oligo2" {
		t.Fatalf("ids = %v", ids)
	}
	if o.PrimerConcNM < 499.999 || o.PrimerConcNM > 500.001 || o.SaltMolar < 0.0999 || o.SaltMolar > 0.1001 {
		t.Fatalf("conditions: %v nM, %v M", o.PrimerConcNM, o.SaltMolar)
	}
	if o.Output != "json" {
		t.Fatalf("output = %s", o.Output)
	}
}

func TestAnalyze_Defaults(t *testing.T) {
	rec, _, err := execute(t, "analyze", "ACGT")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if rec.analyze.PrimerConcNM != 250 || rec.analyze.SaltMolar < 0.0499 || rec.analyze.SaltMolar > 0.0501 {
		t.Fatalf("defaults: %+v", rec.analyze)
	}
}

func TestAnalyze_UsageErrors(t *testing.T) {
	for name, args := range map[string][]string{
		"no oligos":  {"analyze"},
		"bad conc":   {"analyze", "ACGT", "--primer-conc", "lots"},
		"zero salt":  {"analyze", "ACGT", "--na", "0"},
		"bad output": {"analyze", "ACGT", "-o", "fasta"},
		"neg mm":     {"analyze", "ACGT", "--mismatches", "-1"},
	} {
		t.Run(name, func(t *testing.T) {
			if _, _, err := execute(t, args...); !IsUsage(err) {
				t.Fatalf("want usage error, got %v", err)
			}
		})
	}
}

func TestVersionAndHelp(t *testing.T) {
	_, out, err := execute(t, "version")
	if err != nil || !strings.HasPrefix(out, "pcrdesign version ") {
		t.Fatalf("version: %q %v", out, err)
	}
	_, out, err = execute(t, "--version")
	if err != nil || !strings.HasPrefix(out, "pcrdesign version ") {
		t.Fatalf("--version: %q %v", out, err)
	}
	_, out, err = execute(t, "design", "--help")
	if err != nil || !strings.Contains(out, "--min-product") || !strings.Contains(out, "hairpins") {
		t.Fatalf("help: %v\n%s", err, out)
	}
}
