// Package design searches a template for forward/reverse primer pairs that
// satisfy product-size, length and melting-temperature constraints.
//
// The search is a pure single pass: enumerate candidates on both strands
// under a widened Tm window, keep the candidates nearest the optimal Tm,
// pair them under the strict window, score, rank and cap. No state survives
// a call; identical inputs give identical output.
package design

import (
	"context"

	"pcrdesign-core/oligo"
)

// Design returns at most DefaultResultCap pairs sorted by ascending score.
// It is total: invalid constraints, short templates and unsatisfiable
// constraints all yield an empty slice.
func Design(template string, c Constraints, opts ...Option) []Pair {
	pairs, err := DesignContext(context.Background(), template, c, opts...)
	if err != nil {
		return []Pair{}
	}
	return pairs
}

// DesignContext is Design with cooperative cancellation. It returns
// ctx.Err() when cancelled and an error wrapping ErrInvalidConstraints when
// c fails validation.
func DesignContext(ctx context.Context, template string, c Constraints, opts ...Option) ([]Pair, error) {
	res, err := Run(ctx, template, c, opts...)
	if err != nil {
		return nil, err
	}
	return res.Pairs, nil
}

// Run is DesignContext plus the work statistics of the search.
func Run(ctx context.Context, template string, c Constraints, opts ...Option) (Result, error) {
	if err := c.Validate(); err != nil {
		return Result{}, err
	}
	lim := DefaultLimits()
	for _, o := range opts {
		o(&lim)
	}

	tmpl := oligo.Clean(template)
	res := Result{Pairs: []Pair{}, Stats: Stats{TemplateLength: len(tmpl)}}
	if len(tmpl) < c.MinProductSize {
		return res, nil
	}

	loose := tmWindow{lo: c.MinTm - lim.PrefilterMargin, hi: c.MaxTm + lim.PrefilterMargin}
	fwd, err := enumerateForward(ctx, tmpl, c, lim, loose)
	if err != nil {
		return Result{}, err
	}
	rev, err := enumerateReverse(ctx, tmpl, c, lim, loose)
	if err != nil {
		return Result{}, err
	}
	res.Stats.ForwardCandidates = len(fwd)
	res.Stats.ReverseCandidates = len(rev)

	fwd = truncate(fwd, c.OptimalTm, lim.CandidateCap)
	rev = truncate(rev, c.OptimalTm, lim.CandidateCap)

	pairs, err := pairCandidates(ctx, fwd, rev, c, lim, &res.Stats)
	if err != nil {
		return Result{}, err
	}
	res.Stats.PairsAccepted = len(pairs)
	if len(pairs) > 0 {
		res.Pairs = rank(pairs, lim.ResultCap)
	}
	return res, nil
}
