// core/oligo/validate.go
package oligo

// Error tags carried on invalid Properties records.
const (
	ErrEmpty   = "empty sequence"
	ErrNonACGT = "contains non-ATGC characters"
	ErrConc    = "primer concentration must be > 0"
)

// Clean drops every byte that is not an ASCII letter and uppercases the rest.
// Digits, whitespace, punctuation and non-ASCII runes are all stripped.
func Clean(raw string) string {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= 'A' && c <= 'Z':
			out = append(out, c)
		case c >= 'a' && c <= 'z':
			out = append(out, c-'a'+'A')
		}
	}
	return string(out)
}

// IsACGT reports whether s is non-empty and made only of uppercase A/C/G/T.
func IsACGT(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return false
		}
	}
	return true
}

// check returns the error tag for an already cleaned sequence ("" if usable).
func check(s string) string {
	if s == "" {
		return ErrEmpty
	}
	if !IsACGT(s) {
		return ErrNonACGT
	}
	return ""
}

// GCClamp reports whether the 3' base of a cleaned sequence is G or C.
func GCClamp(s string) bool {
	if s == "" {
		return false
	}
	b := s[len(s)-1]
	return b == 'G' || b == 'C'
}
