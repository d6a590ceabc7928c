// internal/metrics/recorder.go
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"pcrdesign-core/design"
)

// Outcomes of one design run.
const (
	OutcomeOK        = "ok"
	OutcomeNoPairs   = "no_pairs"
	OutcomeCancelled = "cancelled"
	OutcomeError     = "error"
)

// Recorder collects design metrics on its own registry, so each CLI run
// (and each test) starts from zero.
type Recorder struct {
	reg        *prometheus.Registry
	runs       *prometheus.CounterVec
	candidates *prometheus.CounterVec
	returned   prometheus.Counter
	duration   prometheus.Histogram
	cacheHits  prometheus.Counter
}

// New creates a recorder with a private registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Recorder{
		reg: reg,
		runs: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pcrdesign_design_runs_total",
				Help: "Design runs by outcome",
			},
			[]string{"outcome"},
		),
		candidates: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pcrdesign_candidates_total",
				Help: "Candidate primers passing the Tm pre-filter",
			},
			[]string{"strand"},
		),
		returned: f.NewCounter(prometheus.CounterOpts{
			Name: "pcrdesign_pairs_returned_total",
			Help: "Primer pairs returned after ranking",
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "pcrdesign_design_duration_seconds",
			Help:    "Wall time of one template design",
			Buckets: prometheus.DefBuckets,
		}),
		cacheHits: f.NewCounter(prometheus.CounterOpts{
			Name: "pcrdesign_cache_hits_total",
			Help: "Templates served from the result cache",
		}),
	}
}

// ObserveRun records one completed design.
func (r *Recorder) ObserveRun(outcome string, took time.Duration, st design.Stats, returned int) {
	r.runs.WithLabelValues(outcome).Inc()
	r.candidates.WithLabelValues(string(design.Sense)).Add(float64(st.ForwardCandidates))
	r.candidates.WithLabelValues(string(design.Antisense)).Add(float64(st.ReverseCandidates))
	r.returned.Add(float64(returned))
	r.duration.Observe(took.Seconds())
}

// CacheHit records a template answered from the cache.
func (r *Recorder) CacheHit() { r.cacheHits.Inc() }

// WriteTextfile writes the metrics in the node_exporter textfile format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
