// core/design/enumerate.go
package design

import (
	"context"
	"math"
	"sort"

	"pcrdesign-core/oligo"
	"pcrdesign-core/primer"
)

// tmWindow is the inclusive pre-filter window.
type tmWindow struct{ lo, hi float64 }

func (w tmWindow) contains(tm float64) bool { return tm >= w.lo && tm <= w.hi }

func (l Limits) conditions() oligo.Conditions {
	return oligo.Conditions{PrimerConcNM: l.ScoringConcNM, SaltMolar: l.SaltMolar}
}

// enumerateForward anchors sense candidates at every start that can still
// reach MinProductSize. Length guards compare against remaining room so
// huge lengths cannot overflow.
func enumerateForward(ctx context.Context, tmpl string, c Constraints, l Limits, w tmWindow) ([]Candidate, error) {
	n := len(tmpl)
	cond := l.conditions()
	var out []Candidate
	for i := 0; i <= n-c.MinProductSize; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for ln := c.MinPrimerLength; ln <= c.MaxPrimerLength && ln <= n-i; ln++ {
			p := oligo.ComputePropertiesWith(tmpl[i:i+ln], cond)
			if !p.Valid || !w.contains(p.TmNN) {
				continue
			}
			out = append(out, Candidate{Properties: p, Start: i, End: i + ln - 1, Strand: Sense})
		}
	}
	return out, nil
}

// enumerateReverse anchors antisense candidates by their template end index.
func enumerateReverse(ctx context.Context, tmpl string, c Constraints, l Limits, w tmWindow) ([]Candidate, error) {
	n := len(tmpl)
	cond := l.conditions()
	var out []Candidate
	for i := c.MinProductSize; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for ln := c.MinPrimerLength; ln <= c.MaxPrimerLength && ln <= i+1; ln++ {
			start := i - ln + 1
			rc := primer.RevCompString(tmpl[start : i+1])
			p := oligo.ComputePropertiesWith(rc, cond)
			if !p.Valid || !w.contains(p.TmNN) {
				continue
			}
			out = append(out, Candidate{Properties: p, Start: start, End: i, Strand: Antisense})
		}
	}
	return out, nil
}

// truncate keeps the limit candidates closest to the optimal Tm. The sort is
// stable so ties keep template order.
func truncate(list []Candidate, optimal float64, limit int) []Candidate {
	sort.SliceStable(list, func(i, j int) bool {
		return math.Abs(list[i].TmNN-optimal) < math.Abs(list[j].TmNN-optimal)
	})
	if len(list) > limit {
		list = list[:limit]
	}
	return list
}
