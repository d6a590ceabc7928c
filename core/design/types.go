// core/design/types.go
package design

import (
	"errors"
	"fmt"
	"math"

	"pcrdesign-core/oligo"
	"pcrdesign-core/thermo"
)

// Strand of a candidate primer relative to the template.
type Strand string

const (
	Sense     Strand = "sense"     // forward primer, matches the template
	Antisense Strand = "antisense" // reverse primer, reverse complement of the template
)

// Candidate is a primer anchored on the template. Start and End are 0-based
// inclusive template coordinates; Sequence is always 5'→3' of the primer itself.
type Candidate struct {
	oligo.Properties
	Start  int
	End    int
	Strand Strand
}

// Pair is a scored forward/reverse combination. Lower Score is better.
type Pair struct {
	Forward      Candidate
	Reverse      Candidate
	ProductSize  int
	TmDifference float64
	Score        float64
}

// Constraints are the caller-supplied design bounds.
type Constraints struct {
	MinProductSize  int
	MaxProductSize  int
	MinPrimerLength int
	MaxPrimerLength int
	MinTm           float64
	MaxTm           float64
	OptimalTm       float64
}

// ErrInvalidConstraints wraps every Constraints.Validate failure.
var ErrInvalidConstraints = errors.New("invalid design constraints")

// Validate checks arithmetic validity only; no biological defaults are imposed.
func (c Constraints) Validate() error {
	bad := func(format string, a ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConstraints, fmt.Sprintf(format, a...))
	}
	switch {
	case c.MinPrimerLength < 1:
		return bad("min primer length must be ≥ 1 (got %d)", c.MinPrimerLength)
	case c.MinPrimerLength > c.MaxPrimerLength:
		return bad("min primer length %d exceeds max %d", c.MinPrimerLength, c.MaxPrimerLength)
	case c.MinProductSize < 1:
		return bad("min product size must be ≥ 1 (got %d)", c.MinProductSize)
	case c.MinProductSize > c.MaxProductSize:
		return bad("min product size %d exceeds max %d", c.MinProductSize, c.MaxProductSize)
	case math.IsNaN(c.MinTm) || math.IsNaN(c.MaxTm) || math.IsNaN(c.OptimalTm):
		return bad("Tm bounds must be numbers")
	case c.MinTm > c.MaxTm:
		return bad("min Tm %g exceeds max %g", c.MinTm, c.MaxTm)
	}
	return nil
}

// Limits are the tractability and scoring constants of the search. The
// defaults reproduce the reference ranking; changing them changes results.
type Limits struct {
	CandidateCap    int     // candidates kept per strand before pairing
	ResultCap       int     // pairs returned
	MaxTmDifference float64 // °C between forward and reverse Tm
	PrefilterMargin float64 // °C widening of the Tm window at enumeration
	ScoringConcNM   float64 // primer concentration used for every candidate
	SaltMolar       float64 // monovalent salt used for every candidate
}

// Defaults.
const (
	DefaultCandidateCap    = 300
	DefaultResultCap       = 20
	DefaultMaxTmDifference = 5.0
	DefaultPrefilterMargin = 5.0
	DefaultScoringConcNM   = 500.0
)

// DefaultLimits returns the reference constants.
func DefaultLimits() Limits {
	return Limits{
		CandidateCap:    DefaultCandidateCap,
		ResultCap:       DefaultResultCap,
		MaxTmDifference: DefaultMaxTmDifference,
		PrefilterMargin: DefaultPrefilterMargin,
		ScoringConcNM:   DefaultScoringConcNM,
		SaltMolar:       thermo.DefaultSaltMolar,
	}
}

// Option tweaks the Limits of one run.
type Option func(*Limits)

// WithLimits overrides every non-zero field of l.
func WithLimits(l Limits) Option {
	return func(dst *Limits) {
		if l.CandidateCap > 0 {
			dst.CandidateCap = l.CandidateCap
		}
		if l.ResultCap > 0 {
			dst.ResultCap = l.ResultCap
		}
		if l.MaxTmDifference > 0 {
			dst.MaxTmDifference = l.MaxTmDifference
		}
		if l.PrefilterMargin > 0 {
			dst.PrefilterMargin = l.PrefilterMargin
		}
		if l.ScoringConcNM > 0 {
			dst.ScoringConcNM = l.ScoringConcNM
		}
		if l.SaltMolar > 0 {
			dst.SaltMolar = l.SaltMolar
		}
	}
}

// WithCandidateCap sets the per-strand candidate cap (n ≤ 0 keeps the default).
func WithCandidateCap(n int) Option { return WithLimits(Limits{CandidateCap: n}) }

// WithResultCap sets the number of pairs returned (n ≤ 0 keeps the default).
func WithResultCap(n int) Option { return WithLimits(Limits{ResultCap: n}) }

// Stats describe the work done by one run.
type Stats struct {
	TemplateLength    int
	ForwardCandidates int // after the Tm pre-filter, before truncation
	ReverseCandidates int
	PairsEvaluated    int // combinations inspected by the pairing stage
	PairsAccepted     int // before the result cap
}

// Result is the output of Run.
type Result struct {
	Pairs []Pair
	Stats Stats
}
