// internal/cli/root.go
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pcrdesign-core/primer"
	"pcrdesign/internal/cliutil"
	"pcrdesign/internal/config"
	"pcrdesign/internal/version"
)

// Handlers run the parsed subcommands. The cli package only parses and
// validates; it never computes or writes results.
type Handlers struct {
	Analyze func(context.Context, AnalyzeOptions) error
	Design  func(context.Context, DesignOptions) error
}

// UsageError marks a command-line or configuration problem (exit code 2).
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

func usage(err error) error {
	if err == nil {
		return nil
	}
	return &UsageError{Err: err}
}

// IsUsage reports whether err is a usage error.
func IsUsage(err error) bool {
	var u *UsageError
	return errors.As(err, &u)
}

// NewRootCmd builds the pcrdesign command tree.
func NewRootCmd(h Handlers) *cobra.Command {
	root := &cobra.Command{
		Use:   "pcrdesign",
		Short: "PCR primer property calculator and primer pair designer",
		Long: `pcrdesign computes thermodynamic properties of oligonucleotides and searches
templates for ranked forward/reverse primer pairs.

Tm uses SantaLucia (1998) unified nearest-neighbor parameters with a
16.6·log10([Na+]) salt correction.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("pcrdesign version {{.Version}}\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usage(err) })

	pf := root.PersistentFlags()
	pf.String("config", "", "YAML config file (flags override it)")
	pf.String("log-level", "", "log level: trace | debug | info | warn | error [warn]")
	pf.String("log-format", "", "log format: console | json [console]")
	pf.String("log-output", "", "log destination: stderr | stdout | FILE [stderr]")
	pf.BoolP("quiet", "q", false, "only log errors")

	root.AddCommand(newAnalyzeCmd(h), newDesignCmd(h), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "pcrdesign version %s\n", version.Version)
			return err
		},
	}
}

// loadConfig reads --config and applies the root log flags.
func loadConfig(cmd *cobra.Command) (*config.Config, Common, error) {
	fs := cmd.Flags()
	path, _ := fs.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, Common{}, err
	}
	if changed(fs, "log-level") {
		cfg.Log.Level, _ = fs.GetString("log-level")
	}
	if changed(fs, "log-format") {
		cfg.Log.Format, _ = fs.GetString("log-format")
	}
	if changed(fs, "log-output") {
		cfg.Log.Output, _ = fs.GetString("log-output")
	}
	quiet, _ := fs.GetBool("quiet")
	if quiet {
		cfg.Log.Level = "error"
	}
	if err := cfg.Validate(); err != nil {
		return nil, Common{}, err
	}
	return cfg, Common{Log: cfg.Log}, nil
}

func changed(fs *pflag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	return f != nil && f.Changed
}

// ---------------- analyze ----------------

func newAnalyzeCmd(h Handlers) *cobra.Command {
	def := config.Default()
	cmd := &cobra.Command{
		Use:   "analyze [SEQ|ID:SEQ ...]",
		Short: "Compute length, GC%, molecular weight and Tm of oligos",
		Long: `Compute length, GC content, molecular weight, Wallace/GC-rule Tm and
nearest-neighbor Tm for each oligo. Non-letters are stripped and case is
ignored; oligos with ambiguous bases are reported as invalid.

Design runs score candidates at a fixed 500 nM primer and 50 mM Na+, which
is independent of --primer-conc and --na here.`,
		Example: `  pcrdesign analyze GCGTCCAGCTGACGGTCAGC
  pcrdesign analyze --oligo fwd:GCGTCCAGCTGACGGTCAGC --primer-conc 0.5uM -o json
  pcrdesign analyze --oligos primers.tsv --template plasmid.fa`,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := parseAnalyze(cmd, args)
			if err != nil {
				return usage(err)
			}
			return h.Analyze(cmd.Context(), o)
		},
	}
	f := cmd.Flags()
	f.StringArray("oligo", nil, "oligo as ID:SEQ (repeatable)")
	f.String("oligos", "", "TSV file of 'id seq' rows ('#' comments)")
	f.String("primer-conc", fmt.Sprintf("%gnM", def.Analyze.PrimerConcNM), "primer concentration (nM when unitless; e.g. 250nM, 0.5uM)")
	f.String("na", fmt.Sprintf("%gmM", def.Analyze.SaltMM), "monovalent salt (mM when unitless)")
	f.String("template", "", "FASTA/raw template: report binding sites of each oligo")
	f.Int("mismatches", 0, "mismatches allowed when counting template sites")
	f.StringP("output", "o", "text", "output format: text | json | jsonl")
	f.Bool("no-header", false, "suppress header line in text output")
	return cmd
}

func parseAnalyze(cmd *cobra.Command, args []string) (AnalyzeOptions, error) {
	cfg, common, err := loadConfig(cmd)
	if err != nil {
		return AnalyzeOptions{}, err
	}
	fs := cmd.Flags()
	o := AnalyzeOptions{
		Common:       common,
		PrimerConcNM: cfg.Analyze.PrimerConcNM,
		SaltMolar:    cfg.Analyze.SaltMM * 1e-3,
	}
	for i, a := range args {
		o.Oligos = append(o.Oligos, primer.ParseInline(a, fmt.Sprintf("seq%d", i+1)))
	}
	inline, _ := fs.GetStringArray("oligo")
	for i, a := range inline {
		o.Oligos = append(o.Oligos, primer.ParseInline(a, fmt.Sprintf("oligo%d", i+1)))
	}
	o.OligoFile, _ = fs.GetString("oligos")
	if changed(fs, "primer-conc") {
		s, _ := fs.GetString("primer-conc")
		if o.PrimerConcNM, err = ParsePrimerConcNM(s); err != nil {
			return o, fmt.Errorf("--primer-conc: %w", err)
		}
	}
	if changed(fs, "na") {
		s, _ := fs.GetString("na")
		if o.SaltMolar, err = ParseSaltMolar(s); err != nil {
			return o, fmt.Errorf("--na: %w", err)
		}
	}
	o.TemplateFile, _ = fs.GetString("template")
	o.Mismatches, _ = fs.GetInt("mismatches")
	o.Output, _ = fs.GetString("output")
	noHeader, _ := fs.GetBool("no-header")
	o.Header = !noHeader
	return o, o.Validate()
}

// ---------------- design ----------------

func newDesignCmd(h Handlers) *cobra.Command {
	def := config.Default()
	cmd := &cobra.Command{
		Use:   "design [FASTA ...]",
		Short: "Design ranked primer pairs for each template",
		Long: `Search every template for forward/reverse primer pairs that satisfy the
product-size, primer-length and Tm constraints, and print the best pairs by
ascending score. Inputs are FASTA (gzip ok, '-' for stdin) or raw sequence
files; globs are expanded. Templates are designed concurrently and reported
in input order.

Primers are not screened for hairpins or primer-dimers.`,
		Example: `  pcrdesign design --template GCGTCCAGCTGACGGTCAGC...  --min-product 40 --max-product 60
  pcrdesign design plasmids/*.fa --opt-tm 62 -o jsonl
  pcrdesign design genes.fa.gz --specificity 2 -o fasta`,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := parseDesign(cmd, args)
			if err != nil {
				return usage(err)
			}
			return h.Design(cmd.Context(), o)
		},
	}
	d, l, r := def.Design, def.Limits, def.Run
	f := cmd.Flags()
	f.StringArray("template", nil, "inline template sequence (repeatable)")
	f.Int("min-product", d.MinProductSize, "minimum product size (bp)")
	f.Int("max-product", d.MaxProductSize, "maximum product size (bp)")
	f.Int("min-len", d.MinPrimerLength, "minimum primer length (nt)")
	f.Int("max-len", d.MaxPrimerLength, "maximum primer length (nt)")
	f.Float64("min-tm", d.MinTm, "minimum primer Tm (°C)")
	f.Float64("max-tm", d.MaxTm, "maximum primer Tm (°C)")
	f.Float64("opt-tm", d.OptimalTm, "optimal primer Tm (°C)")
	f.Int("candidate-cap", l.CandidateCap, "candidates kept per strand before pairing")
	f.Int("result-cap", l.ResultCap, "pairs reported per template")
	f.Int("specificity", d.Specificity, "count binding sites with ≤ N mismatches (-1 = off)")
	f.Int("threads", r.Threads, "number of worker threads (0 = all CPUs)")
	f.Duration("timeout", r.Timeout, "abort the run after this long (0 = no limit)")
	f.Int("cache-size", r.CacheSize, "identical templates cached (0 = off)")
	f.StringP("output", "o", "text", "output format: text | json | jsonl | fasta | pretty")
	f.Bool("no-header", false, "suppress header line in text output")
	f.String("metrics-file", "", "write Prometheus metrics in textfile format")
	f.Int("no-match-exit-code", 1, "exit code when no template yields a pair")
	return cmd
}

func parseDesign(cmd *cobra.Command, args []string) (DesignOptions, error) {
	cfg, common, err := loadConfig(cmd)
	if err != nil {
		return DesignOptions{}, err
	}
	fs := cmd.Flags()
	o := DesignOptions{
		Common:       common,
		Constraints:  cfg.Design.Constraints(),
		CandidateCap: cfg.Limits.CandidateCap,
		ResultCap:    cfg.Limits.ResultCap,
		Specificity:  cfg.Design.Specificity,
		Threads:      cfg.Run.Threads,
		Timeout:      cfg.Run.Timeout,
		CacheSize:    cfg.Run.CacheSize,
		MetricsFile:  cfg.Metrics.File,
	}
	if o.Inputs, err = cliutil.ExpandPositionals(args); err != nil {
		return o, err
	}
	o.Templates, _ = fs.GetStringArray("template")

	ints := map[string]*int{
		"min-product":   &o.Constraints.MinProductSize,
		"max-product":   &o.Constraints.MaxProductSize,
		"min-len":       &o.Constraints.MinPrimerLength,
		"max-len":       &o.Constraints.MaxPrimerLength,
		"candidate-cap": &o.CandidateCap,
		"result-cap":    &o.ResultCap,
		"specificity":   &o.Specificity,
		"threads":       &o.Threads,
		"cache-size":    &o.CacheSize,
	}
	for name, dst := range ints {
		if changed(fs, name) {
			*dst, _ = fs.GetInt(name)
		}
	}
	floats := map[string]*float64{
		"min-tm": &o.Constraints.MinTm,
		"max-tm": &o.Constraints.MaxTm,
		"opt-tm": &o.Constraints.OptimalTm,
	}
	for name, dst := range floats {
		if changed(fs, name) {
			*dst, _ = fs.GetFloat64(name)
		}
	}
	if changed(fs, "timeout") {
		o.Timeout, _ = fs.GetDuration("timeout")
	}
	if changed(fs, "metrics-file") {
		o.MetricsFile, _ = fs.GetString("metrics-file")
	}
	o.Output, _ = fs.GetString("output")
	noHeader, _ := fs.GetBool("no-header")
	o.Header = !noHeader
	o.NoMatchExitCode, _ = fs.GetInt("no-match-exit-code")
	return o, o.Validate()
}
