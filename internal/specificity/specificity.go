// Package specificity counts where designed primers bind on their template.
// It annotates results only; ranking and scores are never touched.
package specificity

import (
	"pcrdesign-core/design"
	"pcrdesign-core/primer"
)

// TerminalWindow is the number of 3' bases that must match for a site to count.
const TerminalWindow = 3

// maxSites bounds the scan per primer and strand; a primer with this many
// sites is already hopelessly unspecific.
const maxSites = 1000

// Sites summarizes binding sites of one primer on both template strands.
type Sites struct {
	Plus  int `json:"plus"`
	Minus int `json:"minus"`
}

// Total is Plus+Minus; 1 means the primer binds only where it was designed.
func (s Sites) Total() int { return s.Plus + s.Minus }

// PairSites holds the annotation of one designed pair.
type PairSites struct {
	Forward Sites
	Reverse Sites
}

// Annotator scans one cleaned, uppercase template.
type Annotator struct {
	template []byte
	maxMM    int
}

// New returns an Annotator allowing up to maxMM mismatches per site.
func New(template string, maxMM int) *Annotator {
	if maxMM < 0 {
		maxMM = 0
	}
	return &Annotator{template: []byte(template), maxMM: maxMM}
}

// Count reports the sites of seq (5'→3').
func (a *Annotator) Count(seq string) Sites {
	var s Sites
	for _, site := range primer.FindSites(a.template, []byte(seq), a.maxMM, maxSites, TerminalWindow) {
		if site.Strand == '+' {
			s.Plus++
		} else {
			s.Minus++
		}
	}
	return s
}

// Pair annotates both primers of p.
func (a *Annotator) Pair(p design.Pair) PairSites {
	return PairSites{Forward: a.Count(p.Forward.Sequence), Reverse: a.Count(p.Reverse.Sequence)}
}

// Pairs annotates every pair, preserving order.
func (a *Annotator) Pairs(pairs []design.Pair) []PairSites {
	out := make([]PairSites, len(pairs))
	for i, p := range pairs {
		out[i] = a.Pair(p)
	}
	return out
}
