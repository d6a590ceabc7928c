// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"pcrdesign-core/design"
	"pcrdesign-core/fasta"
	"pcrdesign/internal/logging"
	"pcrdesign/internal/metrics"
	"pcrdesign/internal/output"
	"pcrdesign/internal/pipeline"
	"pcrdesign/internal/runutil"
	"pcrdesign/internal/writers"
)

// Exit codes shared by every subcommand.
const (
	ExitOK        = 0
	ExitNoResult  = 1
	ExitUsage     = 2
	ExitIO        = 3
	ExitCancelled = 130
)

// DesignOptions are the resolved settings of one design run.
type DesignOptions struct {
	Inputs    []string
	Templates []string

	Constraints  design.Constraints
	CandidateCap int
	ResultCap    int
	Specificity  int

	Threads   int
	Timeout   time.Duration
	CacheSize int

	Format          string
	Header          bool
	MetricsFile     string
	NoMatchExitCode int
}

type job struct {
	rec    fasta.Record
	source string
}

// feedJobs sends inline templates first, then every record of every input.
func feedJobs(o DesignOptions) func(context.Context, func(job) error) error {
	return func(ctx context.Context, send func(job) error) error {
		for i, t := range o.Templates {
			id := fmt.Sprintf("template%d", i+1)
			if err := send(job{rec: fasta.Record{ID: id, Seq: []byte(t)}}); err != nil {
				return err
			}
		}
		for _, path := range o.Inputs {
			err := fasta.ScanPath(ctx, path, func(r fasta.Record) error {
				return send(job{rec: r, source: path})
			})
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return fmt.Errorf("%s: %w", path, err)
			}
		}
		return nil
	}
}

// RunDesign designs every template and streams the results to stdout in
// input order. It returns the process exit code.
func RunDesign(parent context.Context, stdout, stderr io.Writer, o DesignOptions, log *logging.Logger) int {
	outw := bufio.NewWriter(stdout)

	ctx, cancel := runutil.WithTimeout(parent, o.Timeout)
	defer cancel()

	rec := metrics.New()
	d := newDesigner(o, log, rec)
	thr := runutil.EffectiveThreads(o.Threads, 0)
	log.Debug("design run starting",
		logging.Int("threads", thr),
		logging.Int("inputs", len(o.Inputs)+len(o.Templates)),
		logging.Int("cache_size", o.CacheSize),
		logging.Float("opt_tm", o.Constraints.OptimalTm),
		logging.Bool("specificity", o.Specificity >= 0))

	inCh, writeErr := writers.StartPairWriter(outw, o.Format, o.Header, thr*4)

	total, templates := 0, 0
	perr := pipeline.Ordered(ctx, pipeline.Config{Threads: thr}, feedJobs(o), d.design,
		func(r output.TemplateResult) error {
			templates++
			total += len(r.Pairs)
			select {
			case inCh <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)
	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return ExitIO
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return ExitIO
	}

	if o.MetricsFile != "" {
		if err := rec.WriteTextfile(o.MetricsFile); err != nil {
			log.Error("metrics export failed", logging.String("file", o.MetricsFile), logging.Err(err))
			fmt.Fprintf(stderr, "error: metrics file: %v\n", err)
			return ExitIO
		}
	}

	if perr != nil {
		switch {
		case errors.Is(perr, context.Canceled):
			return ExitCancelled
		case errors.Is(perr, context.DeadlineExceeded):
			fmt.Fprintf(stderr, "error: design timed out after %s\n", o.Timeout)
			return ExitIO
		}
		log.Error("design run failed", logging.Err(perr))
		fmt.Fprintln(stderr, perr)
		return ExitIO
	}
	log.Info("design run finished", logging.Int("templates", templates), logging.Int("pairs", total))
	if total == 0 {
		return o.NoMatchExitCode
	}
	return ExitOK
}
