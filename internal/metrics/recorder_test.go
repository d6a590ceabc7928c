package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"pcrdesign-core/design"
)

func TestRecorder_Counts(t *testing.T) {
	r := New()
	st := design.Stats{ForwardCandidates: 12, ReverseCandidates: 7}
	r.ObserveRun(OutcomeOK, 20*time.Millisecond, st, 5)
	r.ObserveRun(OutcomeNoPairs, time.Millisecond, design.Stats{}, 0)
	r.CacheHit()

	if got := testutil.ToFloat64(r.runs.WithLabelValues(OutcomeOK)); got != 1 {
		t.Fatalf("ok runs = %v", got)
	}
	if got := testutil.ToFloat64(r.runs.WithLabelValues(OutcomeNoPairs)); got != 1 {
		t.Fatalf("no_pairs runs = %v", got)
	}
	if got := testutil.ToFloat64(r.candidates.WithLabelValues("sense")); got != 12 {
		t.Fatalf("sense candidates = %v", got)
	}
	if got := testutil.ToFloat64(r.candidates.WithLabelValues("antisense")); got != 7 {
		t.Fatalf("antisense candidates = %v", got)
	}
	if got := testutil.ToFloat64(r.returned); got != 5 {
		t.Fatalf("returned = %v", got)
	}
	if got := testutil.ToFloat64(r.cacheHits); got != 1 {
		t.Fatalf("cache hits = %v", got)
	}
	if n := testutil.CollectAndCount(r.duration); n != 1 {
		t.Fatalf("duration histogram series = %d", n)
	}
}

func TestRecorder_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.CacheHit()
	if got := testutil.ToFloat64(b.cacheHits); got != 0 {
		t.Fatalf("registries must not share state, got %v", got)
	}
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := New()
	r.ObserveRun(OutcomeOK, time.Millisecond, design.Stats{ForwardCandidates: 1}, 1)
	fn := filepath.Join(t.TempDir(), "pcrdesign.prom")
	if err := r.WriteTextfile(fn); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, want := range []string{
		`pcrdesign_design_runs_total{outcome="ok"} 1`,
		`pcrdesign_pairs_returned_total 1`,
		"pcrdesign_design_duration_seconds_count 1",
	} {
		if !strings.Contains(string(b), want) {
			t.Errorf("textfile missing %q:\n%s", want, b)
		}
	}
}
