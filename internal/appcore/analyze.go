package appcore

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"pcrdesign-core/fasta"
	"pcrdesign-core/oligo"
	"pcrdesign-core/primer"
	"pcrdesign/internal/logging"
	"pcrdesign/internal/output"
	"pcrdesign/internal/specificity"
	"pcrdesign/internal/writers"
)

// AnalyzeOptions are the resolved settings of one analyze run.
type AnalyzeOptions struct {
	Oligos    []primer.Oligo
	OligoFile string

	Conditions oligo.Conditions

	TemplateFile string
	Mismatches   int

	Format string
	Header bool
}

// RunAnalyze reports the properties of every oligo, in input order. It exits
// with ExitNoResult when no oligo was valid.
func RunAnalyze(ctx context.Context, stdout, stderr io.Writer, o AnalyzeOptions, log *logging.Logger) int {
	oligos := append([]primer.Oligo(nil), o.Oligos...)
	if o.OligoFile != "" {
		more, err := primer.LoadOligosTSV(o.OligoFile)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return ExitUsage
		}
		oligos = append(oligos, more...)
	}
	if len(oligos) == 0 {
		fmt.Fprintln(stderr, "error: no oligos to analyze")
		return ExitUsage
	}

	var annots []*specificity.Annotator
	if o.TemplateFile != "" {
		recs, err := fasta.ReadAll(ctx, o.TemplateFile)
		if err != nil {
			if ctx.Err() != nil {
				return ExitCancelled
			}
			log.Error("template load failed", logging.String("file", o.TemplateFile), logging.Err(err))
			fmt.Fprintf(stderr, "error: %s: %v\n", o.TemplateFile, err)
			return ExitIO
		}
		for _, r := range recs {
			annots = append(annots, specificity.New(oligo.Clean(string(r.Seq)), o.Mismatches))
		}
		log.Debug("template loaded", logging.String("file", o.TemplateFile), logging.Int("records", len(recs)))
	}

	outw := bufio.NewWriter(stdout)
	inCh, writeErr := writers.StartPropertiesWriter(outw, o.Format, o.Header, 64)

	valid := 0
	cancelled := false
	for _, ol := range oligos {
		if ctx.Err() != nil {
			cancelled = true
			break
		}
		p := oligo.ComputePropertiesWith(ol.Seq, o.Conditions)
		res := output.OligoResult{ID: ol.ID, Props: p}
		if p.Valid {
			valid++
			if annots != nil {
				var s specificity.Sites
				for _, a := range annots {
					c := a.Count(p.Sequence)
					s.Plus += c.Plus
					s.Minus += c.Minus
				}
				res.Sites = &s
			}
		} else {
			log.Warn("invalid oligo", logging.String("id", ol.ID), logging.String("reason", p.Err))
		}
		inCh <- res
	}
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
	if cancelled {
		return ExitCancelled
	}
	if valid == 0 {
		return ExitNoResult
	}
	return ExitOK
}
