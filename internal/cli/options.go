// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"pcrdesign-core/design"
	"pcrdesign-core/primer"
	"pcrdesign/internal/config"
)

// Common holds the root-level flags every subcommand sees.
type Common struct {
	Log config.Log
}

// AnalyzeOptions holds everything `pcrdesign analyze` needs.
type AnalyzeOptions struct {
	Common

	Oligos    []primer.Oligo // positionals and --oligo, in command-line order
	OligoFile string         // --oligos TSV, appended after Oligos

	PrimerConcNM float64 `validate:"gt=0"`
	SaltMolar    float64 `validate:"gt=0"`

	TemplateFile string // optional: count binding sites on this template
	Mismatches   int    `validate:"gte=0"`

	Output string `validate:"oneof=text json jsonl"`
	Header bool
}

// DesignOptions holds everything `pcrdesign design` needs.
type DesignOptions struct {
	Common

	Inputs    []string // FASTA / raw sequence files ("-" = stdin)
	Templates []string // inline --template sequences

	Constraints  design.Constraints
	CandidateCap int `validate:"gte=1"`
	ResultCap    int `validate:"gte=1"`
	Specificity  int `validate:"gte=-1"` // -1 disables annotation

	Threads   int           `validate:"gte=0"`
	Timeout   time.Duration `validate:"gte=0"`
	CacheSize int           `validate:"gte=0"`

	Output          string `validate:"oneof=text json jsonl fasta pretty"`
	Header          bool
	MetricsFile     string
	NoMatchExitCode int `validate:"gte=0,lte=255"`
}

var validate = validator.New()

// Validate checks the analyze options.
func (o AnalyzeOptions) Validate() error {
	if len(o.Oligos) == 0 && o.OligoFile == "" {
		return errors.New("provide oligo sequences as arguments, --oligo ID:SEQ, or --oligos FILE")
	}
	return structErr(validate.Struct(o))
}

// Validate checks the design options, including the core constraints.
func (o DesignOptions) Validate() error {
	if len(o.Inputs) == 0 && len(o.Templates) == 0 {
		return errors.New("provide template FASTA file(s) or --template SEQ")
	}
	if err := o.Constraints.Validate(); err != nil {
		return err
	}
	return structErr(validate.Struct(o))
}

// structErr renders validator errors with flag names.
func structErr(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("--%s: must satisfy %s=%s (got %v)", flagName(fe.Field()), fe.Tag(), fe.Param(), fe.Value()))
	}
	return errors.New(strings.Join(msgs, "; "))
}

var fieldFlags = map[string]string{
	"PrimerConcNM":    "primer-conc",
	"SaltMolar":       "na",
	"CandidateCap":    "candidate-cap",
	"ResultCap":       "result-cap",
	"CacheSize":       "cache-size",
	"MetricsFile":     "metrics-file",
	"NoMatchExitCode": "no-match-exit-code",
}

func flagName(field string) string {
	if f, ok := fieldFlags[field]; ok {
		return f
	}
	return strings.ToLower(field)
}
