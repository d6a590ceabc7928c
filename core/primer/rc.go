// core/primer/rc.go
package primer

var complement [256]byte

func init() {
	pairs := [...][2]byte{
		{'A', 'T'}, {'C', 'G'},
		{'R', 'Y'}, {'K', 'M'}, {'B', 'V'}, {'D', 'H'},
	}
	for _, p := range pairs {
		complement[p[0]], complement[p[1]] = p[1], p[0]
	}
	complement['S'] = 'S'
	complement['W'] = 'W'
	complement['N'] = 'N'
}

// RevComp returns the reverse complement of an uppercase IUPAC sequence.
// Bytes outside the IUPAC alphabet complement to 'N'.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[seq[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return out
}

// RevCompString is RevComp for strings.
func RevCompString(s string) string {
	return string(RevComp([]byte(s)))
}
