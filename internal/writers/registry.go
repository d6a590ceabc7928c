// internal/writers/registry.go
package writers

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"syscall"

	"pcrdesign/internal/output"
)

// Starter launches a writer goroutine for items of type T.
type Starter[T any] func(out io.Writer, header bool, bufSize int) (chan<- T, <-chan error)

// Writer registries (format → starter). Registered in init() blocks of
// pairs.go and properties.go.
var (
	PairWriters       = map[string]Starter[output.TemplateResult]{}
	PropertiesWriters = map[string]Starter[output.OligoResult]{}
)

// Register helpers (idempotent last-wins)
func RegisterPair(format string, fn Starter[output.TemplateResult]) { PairWriters[format] = fn }
func RegisterProperties(format string, fn Starter[output.OligoResult]) {
	PropertiesWriters[format] = fn
}

// StartPairWriter dispatches to the registered pair writer for format.
func StartPairWriter(out io.Writer, format string, header bool, bufSize int) (chan<- output.TemplateResult, <-chan error) {
	if fn, ok := PairWriters[format]; ok {
		return fn(out, header, bufSize)
	}
	return unknown[output.TemplateResult]("pair", format)
}

// StartPropertiesWriter dispatches to the registered properties writer for format.
func StartPropertiesWriter(out io.Writer, format string, header bool, bufSize int) (chan<- output.OligoResult, <-chan error) {
	if fn, ok := PropertiesWriters[format]; ok {
		return fn(out, header, bufSize)
	}
	return unknown[output.OligoResult]("properties", format)
}

// IsBrokenPipe is true for EPIPE and closed pipes: a reader such as head
// went away, which ends output without being a failure.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// Formats lists the registered formats of a registry, sorted.
func Formats[T any](reg map[string]Starter[T]) []string {
	out := make([]string, 0, len(reg))
	for k := range reg {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// unknown drains its input and reports the dispatch error.
func unknown[T any](kind, format string) (chan<- T, <-chan error) {
	in := make(chan T)
	done := make(chan error, 1)
	go func() {
		for range in {
		}
		done <- fmt.Errorf("unknown %s format %q (no writer registered)", kind, format)
	}()
	return in, done
}

// stream runs write for every item, after an optional header. After the
// first error it keeps draining so producers never block.
func stream[T any](out io.Writer, bufSize int, header func(io.Writer) error, write func(io.Writer, T) error) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)
	go func() {
		var err error
		if header != nil {
			err = header(out)
		}
		for v := range in {
			if err != nil {
				continue
			}
			err = write(out, v)
		}
		done <- err
	}()
	return in, done
}

// collect buffers every item and writes them at once.
func collect[T any](out io.Writer, bufSize int, write func(io.Writer, []T) error) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)
	go func() {
		var buf []T
		for v := range in {
			buf = append(buf, v)
		}
		done <- write(out, buf)
	}()
	return in, done
}

func headerLine(line string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := fmt.Fprintln(w, line)
		return err
	}
}
