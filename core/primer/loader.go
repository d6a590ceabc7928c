// core/primer/loader.go
package primer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Oligo is a single named primer (5'→3').
type Oligo struct {
	ID  string
	Seq string
}

// LoadOligosTSV reads "id seq" rows (whitespace separated); blank lines and
// '#' comments are skipped. A single-column row gets an id of "oligoN".
func LoadOligosTSV(path string) ([]Oligo, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	list, err := ReadOligos(fh)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", path, err)
	}
	return list, nil
}

// ReadOligos is LoadOligosTSV over an arbitrary reader.
func ReadOligos(r io.Reader) ([]Oligo, error) {
	var list []Oligo
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		switch len(f) {
		case 1:
			list = append(list, Oligo{ID: fmt.Sprintf("oligo%d", len(list)+1), Seq: f[0]})
		case 2:
			list = append(list, Oligo{ID: f[0], Seq: f[1]})
		default:
			return nil, fmt.Errorf("%d bad field count", ln)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// ParseInline parses "ID:SEQ" or a bare "SEQ" (given the fallback id).
func ParseInline(s, fallbackID string) Oligo {
	if i := strings.IndexByte(s, ':'); i > 0 {
		return Oligo{ID: s[:i], Seq: s[i+1:]}
	}
	return Oligo{ID: fallbackID, Seq: s}
}
