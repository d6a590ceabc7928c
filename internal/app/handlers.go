package app

import (
	"context"
	"fmt"
	"io"

	"pcrdesign-core/oligo"
	"pcrdesign/internal/appcore"
	"pcrdesign/internal/cli"
	"pcrdesign/internal/logging"
)

func handlers(stdout, stderr io.Writer) cli.Handlers {
	return cli.Handlers{
		Analyze: func(ctx context.Context, o cli.AnalyzeOptions) error {
			log, err := newLogger(o.Common, stdout, stderr)
			if err != nil {
				return err
			}
			defer log.Close()
			return result(appcore.RunAnalyze(ctx, stdout, stderr, analyzeOptions(o), log))
		},
		Design: func(ctx context.Context, o cli.DesignOptions) error {
			log, err := newLogger(o.Common, stdout, stderr)
			if err != nil {
				return err
			}
			defer log.Close()
			return result(appcore.RunDesign(ctx, stdout, stderr, designOptions(o), log))
		},
	}
}

// newLogger routes the stdout/stderr destinations to the app's own writers;
// anything else is a file path.
func newLogger(c cli.Common, stdout, stderr io.Writer) (*logging.Logger, error) {
	cfg := logging.Config{Level: c.Log.Level, Format: c.Log.Format, Output: c.Log.Output}
	fallback := stderr
	switch c.Log.Output {
	case "", "stderr":
		cfg.Output = ""
	case "stdout":
		cfg.Output, fallback = "", stdout
	}
	log, err := logging.New(cfg, fallback)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return log, nil
}

func analyzeOptions(o cli.AnalyzeOptions) appcore.AnalyzeOptions {
	return appcore.AnalyzeOptions{
		Oligos:    o.Oligos,
		OligoFile: o.OligoFile,
		Conditions: oligo.Conditions{
			PrimerConcNM: o.PrimerConcNM,
			SaltMolar:    o.SaltMolar,
		},
		TemplateFile: o.TemplateFile,
		Mismatches:   o.Mismatches,
		Format:       o.Output,
		Header:       o.Header,
	}
}

func designOptions(o cli.DesignOptions) appcore.DesignOptions {
	return appcore.DesignOptions{
		Inputs:          o.Inputs,
		Templates:       o.Templates,
		Constraints:     o.Constraints,
		CandidateCap:    o.CandidateCap,
		ResultCap:       o.ResultCap,
		Specificity:     o.Specificity,
		Threads:         o.Threads,
		Timeout:         o.Timeout,
		CacheSize:       o.CacheSize,
		Format:          o.Output,
		Header:          o.Header,
		MetricsFile:     o.MetricsFile,
		NoMatchExitCode: o.NoMatchExitCode,
	}
}
