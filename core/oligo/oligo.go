// core/oligo/oligo.go
package oligo

import (
	"math"

	"pcrdesign-core/thermo"
)

// Per-base monophosphate weights (Da) and the water-loss correction.
const (
	weightA     = 313.2
	weightC     = 289.2
	weightG     = 329.2
	weightT     = 304.2
	weightWater = 61.96
)

// Properties is the derived, read-only record for one oligo.
// Numeric fields are zero and meaningless when Valid is false.
type Properties struct {
	Sequence        string
	Length          int
	GCPercent       float64
	MolecularWeight float64 // Da
	TmBasic         float64 // °C, Wallace / GC rule
	TmNN            float64 // °C, nearest-neighbor
	Valid           bool
	Err             string // error tag when !Valid
}

// Conditions are the solution knobs for the nearest-neighbor Tm.
type Conditions struct {
	PrimerConcNM float64 // total primer strand concentration (nM)
	SaltMolar    float64 // monovalent cations (mol/L); <= 0 means thermo.DefaultSaltMolar
}

// ComputeProperties cleans raw and computes length, GC%, MW and both Tm
// estimates at the fixed 50 mM monovalent salt default.
func ComputeProperties(raw string, primerConcNM float64) Properties {
	return ComputePropertiesWith(raw, Conditions{PrimerConcNM: primerConcNM})
}

// ComputePropertiesWith is ComputeProperties with a tunable salt concentration.
// It never panics; malformed input yields Valid=false and an Err tag.
func ComputePropertiesWith(raw string, cond Conditions) Properties {
	s := Clean(raw)
	if tag := check(s); tag != "" {
		return Properties{Sequence: s, Err: tag}
	}
	if !(cond.PrimerConcNM > 0) || math.IsInf(cond.PrimerConcNM, 0) {
		return Properties{Sequence: s, Err: ErrConc}
	}
	return computeClean(s, cond)
}

// computeClean assumes s is already uppercase ACGT.
func computeClean(s string, cond Conditions) Properties {
	var a, c, g, t int
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A':
			a++
		case 'C':
			c++
		case 'G':
			g++
		case 'T':
			t++
		}
	}
	n := len(s)
	p := Properties{
		Sequence:        s,
		Length:          n,
		GCPercent:       float64(g+c) / float64(n) * 100,
		MolecularWeight: float64(a)*weightA + float64(c)*weightC + float64(g)*weightG + float64(t)*weightT - weightWater,
		TmBasic:         thermo.TmBasic(a, c, g, t),
		Valid:           true,
	}
	res, err := thermo.Tm(s, thermo.TmInput{CT: cond.PrimerConcNM * 1e-9, Na: cond.SaltMolar})
	if err != nil {
		return Properties{Sequence: s, Err: err.Error()}
	}
	p.TmNN = res.TmC
	return p
}
