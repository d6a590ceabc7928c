package appcore

import (
	"context"
	"errors"
	"strings"
	"time"

	"pcrdesign-core/design"
	"pcrdesign-core/oligo"
	"pcrdesign/internal/logging"
	"pcrdesign/internal/metrics"
	"pcrdesign/internal/output"
	"pcrdesign/internal/runutil"
	"pcrdesign/internal/specificity"
)

// cached is what the LRU keeps per cleaned template. Constraints and limits
// are fixed for a run, so the template alone is the key.
type cached struct {
	pairs []design.Pair
	stats design.Stats
	sites []specificity.PairSites
}

type designer struct {
	c     design.Constraints
	opts  []design.Option
	mm    int
	cache *runutil.LRU[string, cached]
	log   *logging.Logger
	rec   *metrics.Recorder
}

func newDesigner(o DesignOptions, log *logging.Logger, rec *metrics.Recorder) *designer {
	return &designer{
		c:     o.Constraints,
		opts:  []design.Option{design.WithCandidateCap(o.CandidateCap), design.WithResultCap(o.ResultCap)},
		mm:    o.Specificity,
		cache: runutil.NewLRU[string, cached](o.CacheSize),
		log:   log,
		rec:   rec,
	}
}

// design runs on a pipeline worker.
func (d *designer) design(ctx context.Context, j job) (output.TemplateResult, error) {
	start := time.Now()
	tmpl := oligo.Clean(string(j.rec.Seq))
	out := output.TemplateResult{TemplateID: j.rec.ID, SourceFile: j.source}
	l := d.log.With(logging.String("template", j.rec.ID))

	if hit, ok := d.cache.Get(tmpl); ok {
		d.rec.CacheHit()
		d.rec.ObserveRun(outcome(len(hit.pairs)), time.Since(start), hit.stats, len(hit.pairs))
		l.Debug("served from cache", logging.Int("pairs", len(hit.pairs)))
		out.Pairs, out.Stats, out.Sites = hit.pairs, hit.stats, hit.sites
		return out, nil
	}

	switch {
	case len(tmpl) < d.c.MinProductSize:
		l.Warn("template shorter than the minimum product size",
			logging.Int("length", len(tmpl)), logging.Int("min_product", d.c.MinProductSize))
	case !oligo.IsACGT(tmpl):
		l.Info("template has ambiguous bases; primers covering them are skipped",
			logging.Int("ambiguous", len(tmpl)-countACGT(tmpl)))
	}

	res, err := design.Run(ctx, tmpl, d.c, d.opts...)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			d.rec.ObserveRun(metrics.OutcomeCancelled, time.Since(start), design.Stats{}, 0)
		} else {
			d.rec.ObserveRun(metrics.OutcomeError, time.Since(start), design.Stats{}, 0)
		}
		return out, err
	}

	var sites []specificity.PairSites
	if d.mm >= 0 && len(res.Pairs) > 0 {
		sites = specificity.New(tmpl, d.mm).Pairs(res.Pairs)
	}
	d.cache.Add(tmpl, cached{pairs: res.Pairs, stats: res.Stats, sites: sites})

	took := time.Since(start)
	d.rec.ObserveRun(outcome(len(res.Pairs)), took, res.Stats, len(res.Pairs))
	l.Debug("designed",
		logging.Int("length", res.Stats.TemplateLength),
		logging.Int("fwd_candidates", res.Stats.ForwardCandidates),
		logging.Int("rev_candidates", res.Stats.ReverseCandidates),
		logging.Int("pairs_accepted", res.Stats.PairsAccepted),
		logging.Int("pairs", len(res.Pairs)),
		logging.Duration("took", took))
	if len(res.Pairs) == 0 {
		l.Warn("no primer pair satisfies the constraints")
	}

	out.Pairs, out.Stats, out.Sites = res.Pairs, res.Stats, sites
	return out, nil
}

func outcome(pairs int) string {
	if pairs == 0 {
		return metrics.OutcomeNoPairs
	}
	return metrics.OutcomeOK
}

func countACGT(s string) int {
	n := 0
	for _, b := range []byte(s) {
		if strings.IndexByte("ACGT", b) >= 0 {
			n++
		}
	}
	return n
}
