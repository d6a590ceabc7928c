// core/design/pair.go
package design

import (
	"context"
	"math"
	"sort"

	"pcrdesign-core/oligo"
)

const (
	weightTmDifference = 2.0
	weightGC           = 0.1
	optimalGC          = 50.0
	noClampPenalty     = 2.0
)

// clampPenalty is 0 for a G/C 3' end and noClampPenalty otherwise.
func clampPenalty(c Candidate) float64 {
	if oligo.GCClamp(c.Sequence) {
		return 0
	}
	return noClampPenalty
}

// Score is the composite desirability of a pair; lower is better.
func Score(f, r Candidate, optimalTm float64) float64 {
	tmDiff := math.Abs(f.TmNN - r.TmNN)
	return math.Abs(f.TmNN-optimalTm) + math.Abs(r.TmNN-optimalTm) +
		weightTmDifference*tmDiff +
		weightGC*(math.Abs(f.GCPercent-optimalGC)+math.Abs(r.GCPercent-optimalGC)) +
		clampPenalty(f) + clampPenalty(r)
}

// pairCandidates applies the strict filters to every forward×reverse
// combination and returns the accepted pairs unsorted.
func pairCandidates(ctx context.Context, fwd, rev []Candidate, c Constraints, l Limits, st *Stats) ([]Pair, error) {
	strict := tmWindow{lo: c.MinTm, hi: c.MaxTm}
	var out []Pair
	for _, f := range fwd {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !strict.contains(f.TmNN) {
			st.PairsEvaluated += len(rev)
			continue
		}
		for _, r := range rev {
			st.PairsEvaluated++
			if r.End <= f.Start {
				continue
			}
			size := r.End - f.Start + 1
			if size < c.MinProductSize || size > c.MaxProductSize {
				continue
			}
			if !strict.contains(r.TmNN) {
				continue
			}
			diff := math.Abs(f.TmNN - r.TmNN)
			if diff > l.MaxTmDifference {
				continue
			}
			out = append(out, Pair{
				Forward:      f,
				Reverse:      r,
				ProductSize:  size,
				TmDifference: diff,
				Score:        Score(f, r, c.OptimalTm),
			})
		}
	}
	return out, nil
}

// rank sorts ascending by score (stable) and applies the result cap.
func rank(pairs []Pair, limit int) []Pair {
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Score < pairs[j].Score })
	if len(pairs) > limit {
		pairs = pairs[:limit]
	}
	return pairs
}
