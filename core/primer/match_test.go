// core/primer/match_test.go
package primer

import "testing"

func TestFindMatches(t *testing.T) {
	seq := []byte("ACGTACGTACGT")

	tests := []struct {
		name         string
		primer       string
		maxMM        int
		termWin      int
		wantCount    int
		wantFirstPos int
	}{
		{"perfect match", "ACG", 0, 0, 3, 0},
		{"one mismatch allowed", "AGG", 1, 0, 3, 0},
		{"exceed mismatch threshold", "AGG", 0, 0, 0, -1},
		{"3prime mismatch disallowed (window=1)", "ACA", 1, 1, 0, -1},
		{"3prime mismatch allowed (window=0)", "ACG", 1, 0, 3, 0},
		{"IUPAC degeneracy", "ACN", 0, 0, 3, 0},
	}

	for _, tc := range tests {
		hits := FindMatches(seq, []byte(tc.primer), tc.maxMM, 0, tc.termWin)
		if len(hits) != tc.wantCount {
			t.Errorf("%s: got %d hits, want %d", tc.name, len(hits), tc.wantCount)
		}
		if tc.wantCount > 0 && tc.wantFirstPos != -1 && hits[0].Pos != tc.wantFirstPos {
			t.Errorf("%s: first match pos %d, want %d", tc.name, hits[0].Pos, tc.wantFirstPos)
		}
	}
}

func TestFindMatchesCap(t *testing.T) {
	hits := FindMatches([]byte("AAAAAAAAAA"), []byte("AA"), 0, 2, 0)
	if len(hits) != 2 {
		t.Fatalf("cap ignored: got %d hits", len(hits))
	}
}

func TestFindSitesBothStrands(t *testing.T) {
	// forward site at 0, reverse-complement site at 12
	tmpl := []byte("GCGTCCAGATTTGCTGGACGC")
	sites := FindSites(tmpl, []byte("GCGTCCAGC"), 0, 0, 0)
	var plus, minus int
	for _, s := range sites {
		switch s.Strand {
		case '+':
			plus++
		case '-':
			minus++
			if s.Pos != 12 {
				t.Errorf("minus site at %d, want 12", s.Pos)
			}
		}
	}
	if plus != 0 || minus != 1 {
		t.Fatalf("got %d plus / %d minus sites: %+v", plus, minus, sites)
	}

	sites = FindSites(tmpl, []byte("GCGTCCAGA"), 0, 0, 0)
	if len(sites) != 1 || sites[0].Strand != '+' || sites[0].Pos != 0 {
		t.Fatalf("unexpected plus sites: %+v", sites)
	}
}

func TestFindSitesTerminalWindowMinus(t *testing.T) {
	// rc(primer) = GCTGGACGC; template carries it with the primer's 3' base mutated
	tmpl := []byte("TTTTACTGGACGCTTTT")
	if sites := FindSites(tmpl, []byte("GCGTCCAGC"), 1, 0, 0); len(sites) != 1 {
		t.Fatalf("window=0 should accept 1 mismatch, got %+v", sites)
	}
	if sites := FindSites(tmpl, []byte("GCGTCCAGC"), 1, 0, 3); len(sites) != 0 {
		t.Fatalf("window=3 should reject a 3' mismatch, got %+v", sites)
	}
}
