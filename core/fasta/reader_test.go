package fasta

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const plain = `>seq1 first template
ACGT
acgt
>seq2
NNnn

>seq3
`

// writeGz creates a gzipped file with the provided data and returns its path.
func writeGz(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.fa.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func collect(t *testing.T, r io.Reader, rawID string) []Record {
	t.Helper()
	var out []Record
	if err := Scan(context.Background(), r, rawID, func(rec Record) error {
		out = append(out, rec)
		return nil
	}); err != nil {
		t.Fatalf("scan: %v", err)
	}
	return out
}

func TestScan_Records(t *testing.T) {
	recs := collect(t, strings.NewReader(plain), "raw")
	if len(recs) != 3 {
		t.Fatalf("want 3 records, got %d", len(recs))
	}
	if recs[0].ID != "seq1" || recs[0].Desc != "first template" || string(recs[0].Seq) != "ACGTacgt" {
		t.Fatalf("record 1 = %+v", recs[0])
	}
	if recs[1].ID != "seq2" || string(recs[1].Seq) != "NNnn" {
		t.Fatalf("record 2 = %+v", recs[1])
	}
	if recs[2].ID != "seq3" || len(recs[2].Seq) != 0 {
		t.Fatalf("record 3 = %+v", recs[2])
	}
}

func TestScan_RawSequence(t *testing.T) {
	recs := collect(t, strings.NewReader("1 acgtacgtac\n11 GGGCCC\n"), "tmpl")
	if len(recs) != 1 {
		t.Fatalf("want 1 raw record, got %d", len(recs))
	}
	if recs[0].ID != "tmpl" || string(recs[0].Seq) != "1acgtacgtac11GGGCCC" {
		t.Fatalf("raw record = %+v", recs[0])
	}
}

func TestScan_InteriorWhitespaceDropped(t *testing.T) {
	recs := collect(t, strings.NewReader(">g\nACGT ACGT\tAC\r\n  GG  CC\n"), "x")
	if len(recs) != 1 || string(recs[0].Seq) != "ACGTACGTACGGCC" {
		t.Fatalf("records = %+v", recs)
	}
}

func TestScan_Empty(t *testing.T) {
	if recs := collect(t, strings.NewReader("\n\n"), "x"); len(recs) != 0 {
		t.Fatalf("empty input produced %d records", len(recs))
	}
}

func TestScan_EmitErrorStops(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	err := Scan(context.Background(), strings.NewReader(plain), "x", func(Record) error {
		n++
		return stop
	})
	if !errors.Is(err, stop) || n != 1 {
		t.Fatalf("want stop after first record, got n=%d err=%v", n, err)
	}
}

func TestScan_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n := 0
	err := Scan(ctx, strings.NewReader(plain), "x", func(Record) error { n++; return nil })
	if !errors.Is(err, context.Canceled) || n != 0 {
		t.Fatalf("want immediate cancel, got n=%d err=%v", n, err)
	}
}

func TestReadAll_Gzip(t *testing.T) {
	recs, err := ReadAll(context.Background(), writeGz(t, plain))
	if err != nil {
		t.Fatalf("read gz: %v", err)
	}
	if len(recs) != 3 || recs[0].ID != "seq1" {
		t.Fatalf("gzip parse failed: %+v", recs)
	}
}

func TestReadAll_GzipRaw(t *testing.T) {
	recs, err := ReadAll(context.Background(), writeGz(t, "ACGTACGT\n"))
	if err != nil {
		t.Fatalf("read gz: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != "test" {
		t.Fatalf("raw gzip record = %+v", recs)
	}
}

func TestReadAll_Stdin(t *testing.T) {
	orig := os.Stdin
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	go func() {
		_, _ = io.WriteString(w, plain)
		_ = w.Close()
	}()

	recs, err := ReadAll(context.Background(), "-")
	if err != nil {
		t.Fatalf("stdin: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records from stdin, got %d", len(recs))
	}
}

func TestReadAll_Missing(t *testing.T) {
	if _, err := ReadAll(context.Background(), filepath.Join(t.TempDir(), "nope.fa")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRawID(t *testing.T) {
	cases := map[string]string{
		"-":                "stdin",
		"/data/pUC19.fa":   "pUC19",
		"lambda.fasta.gz":  "lambda",
		"dir/template.txt": "template",
		"plain":            "plain",
	}
	for in, want := range cases {
		if got := RawID(in); got != want {
			t.Errorf("RawID(%q) = %q, want %q", in, got, want)
		}
	}
}
