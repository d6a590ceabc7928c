// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Record is one template sequence. Input without any '>' header is read as a
// single raw sequence record.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

const maxLine = 64 * 1024 * 1024 // very long single-line sequences (64 MiB)

// Scan parses FASTA from r and calls emit once per record. Lines before the
// first header make the whole input a raw sequence named rawID. ctx is
// polled between lines.
func Scan(ctx context.Context, r io.Reader, rawID string, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		cur    *Record
		raw    bool
		seq    = make([]byte, 0, 1<<16)
		posted int
	)
	flush := func() error {
		if cur == nil {
			return nil
		}
		cur.Seq = append([]byte(nil), seq...)
		seq = seq[:0]
		posted++
		rec := *cur
		cur = nil
		return emit(rec)
	}

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' && !raw {
			if err := flush(); err != nil {
				return err
			}
			id, desc := parseHeader(line[1:])
			if id == "" {
				id = fmt.Sprintf("record%d", posted+1)
			}
			cur = &Record{ID: id, Desc: desc}
			continue
		}
		if cur == nil {
			raw = true
			cur = &Record{ID: rawID}
		}
		seq = appendBases(seq, line)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// appendBases appends line without its interior whitespace, so numbered or
// blocked sequence layouts read as one run of letters.
func appendBases(dst, line []byte) []byte {
	for _, b := range line {
		switch b {
		case ' ', '\t', '\r', '\v', '\f':
			continue
		}
		dst = append(dst, b)
	}
	return dst
}

// ScanPath opens path (gzip and "-" aware) and scans it. Raw sequence files
// are named after the file's base name without extensions.
func ScanPath(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	return Scan(ctx, rc, RawID(path), emit)
}

// ReadAll collects every record of path.
func ReadAll(ctx context.Context, path string) ([]Record, error) {
	var out []Record
	err := ScanPath(ctx, path, func(r Record) error {
		out = append(out, r)
		return nil
	})
	return out, err
}

// RawID derives a record id from a file path ("-" → "stdin").
func RawID(path string) string {
	if path == "-" || path == "" {
		return "stdin"
	}
	base := filepath.Base(path)
	for _, ext := range []string{".gz", ".fasta", ".fa", ".fna", ".txt", ".seq"} {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

func parseHeader(hdr []byte) (id, desc string) {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i+1:]))
	}
	return string(hdr), ""
}
