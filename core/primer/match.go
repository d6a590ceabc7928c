// core/primer/match.go
package primer

import "bytes"

/* ----------------------- types --------------------- */

type Match struct {
	Pos         int
	Mismatches  int
	Length      int
	MismatchIdx []int // 0-based positions in primer (5'→3') that mismatched
}

// Site is a binding site of a primer on either strand of a template.
// Pos is the leftmost template coordinate of the site on the top strand.
type Site struct {
	Strand     byte // '+' or '-'
	Pos        int
	Mismatches int
}

/* ---------------------- helpers -------------------- */

func isUnambiguous(p []byte) bool {
	for _, c := range p {
		if c != 'A' && c != 'C' && c != 'G' && c != 'T' {
			return false
		}
	}
	return true
}

/* --------------------------- FindMatches (cap) -------------------------- */

// FindMatches scans seq for primer with at most maxMM mismatches.
// capHits == 0 means unlimited. terminalWindow is the number of bases at the
// primer 3' end where mismatches are disallowed (0 = allow).
func FindMatches(seq, primer []byte, maxMM, capHits int, terminalWindow int) []Match {
	pl := len(primer)
	if pl == 0 || len(seq) < pl {
		return nil
	}

	// Exact-match fast path; safe with any terminalWindow because mismatches=0.
	if maxMM == 0 && isUnambiguous(primer) {
		out := make([]Match, 0, 8)
		for i := 0; ; {
			j := bytes.Index(seq[i:], primer)
			if j < 0 {
				break
			}
			pos := i + j
			out = append(out, Match{Pos: pos, Mismatches: 0, Length: pl})
			if capHits > 0 && len(out) >= capHits {
				break
			}
			i = pos + 1
		}
		return out
	}

	end := len(seq) - pl
	out := make([]Match, 0, 8)

	// any mismatch with j >= cutoff is disallowed
	cutoff := pl - terminalWindow
	if terminalWindow <= 0 {
		cutoff = pl + 1
	}
	if cutoff < 0 {
		cutoff = 0
	}

window:
	for pos := 0; pos <= end; pos++ {
		mm := 0
		var idx []int
		for j := 0; j < pl; j++ {
			if !BaseMatch(seq[pos+j], primer[j]) {
				if j >= cutoff {
					continue window
				}
				mm++
				idx = append(idx, j)
				if mm > maxMM {
					continue window
				}
			}
		}
		out = append(out, Match{Pos: pos, Mismatches: mm, Length: pl, MismatchIdx: idx})
		if capHits > 0 && len(out) >= capHits {
			break
		}
	}
	return out
}

// FindSites reports the binding sites of primer (5'→3') on both strands of
// template. On the minus strand the reverse complement of the primer is
// scanned on the top strand, so its 3' terminal window sits at the left end.
func FindSites(template, primer []byte, maxMM, capHits, terminalWindow int) []Site {
	var out []Site
	for _, m := range FindMatches(template, primer, maxMM, capHits, terminalWindow) {
		out = append(out, Site{Strand: '+', Pos: m.Pos, Mismatches: m.Mismatches})
	}
	rc := RevComp(primer)
	for _, m := range FindMatches(template, rc, maxMM, capHits, 0) {
		if terminalWindow > 0 && leftMismatch(m.MismatchIdx, terminalWindow) {
			continue
		}
		out = append(out, Site{Strand: '-', Pos: m.Pos, Mismatches: m.Mismatches})
	}
	return out
}

func leftMismatch(idx []int, win int) bool {
	for _, j := range idx {
		if j < win {
			return true
		}
	}
	return false
}
