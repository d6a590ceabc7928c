// core/thermo/nn.go
// Nearest-neighbor thermodynamics for a primer against its perfect complement
// (SantaLucia 1998 unified set). Units: ΔH in kcal/mol, ΔS in cal/(K·mol), Tm in °C.
//
// Steps:
//  1. Terminal initiation for the 5' and 3' base (GC or AT term, applied to each end).
//  2. Sum ΔH/ΔS over every dinucleotide stack.
//  3. Two-state Tm (K) = ΔH*1000 / (ΔS + R ln(CT/4)), minus 273.15.
//  4. Add the monovalent salt correction 16.6*log10([Na+]).
//
// The CT/4 term assumes two distinct strands at equal concentration; it is not
// exact for self-complementary oligos.
//
// This package has no app/output deps; the designer imports it cleanly.

package thermo

import (
	"errors"
	"fmt"
	"math"
)

const (
	// Gas constant in cal/(K·mol)
	Rcal = 1.987

	// DefaultSaltMolar is the monovalent cation concentration used when
	// TmInput.Na is unset (50 mM).
	DefaultSaltMolar = 0.05
)

// NNParams holds nearest-neighbor propagation parameters.
type NNParams struct {
	DH float64 // kcal/mol
	DS float64 // cal/(K·mol)
}

// Stacking parameters keyed by the 5'→3' dinucleotide of the top strand.
// Each key and its reverse complement share a value (AA = TT, CA = TG, ...).
var dimerParams = map[string]NNParams{
	"AA": {-7.9, -22.2}, "TT": {-7.9, -22.2},
	"AT": {-7.2, -20.4},
	"TA": {-7.2, -21.3},
	"CA": {-8.5, -22.7}, "TG": {-8.5, -22.7},
	"GT": {-8.4, -22.4}, "AC": {-8.4, -22.4},
	"CT": {-7.8, -21.0}, "AG": {-7.8, -21.0},
	"GA": {-8.2, -22.2}, "TC": {-8.2, -22.2},
	"CG": {-10.6, -27.2},
	"GC": {-9.8, -24.4},
	"GG": {-8.0, -19.9}, "CC": {-8.0, -19.9},
}

// Terminal initiation, applied once per end.
var (
	initGC = NNParams{DH: +0.1, DS: -2.8}
	initAT = NNParams{DH: +2.3, DS: +4.1}
)

// TmInput describes solution and concentration.
type TmInput struct {
	CT float64 // total strand conc (mol/L)
	Na float64 // monovalent cations (mol/L); 0 selects DefaultSaltMolar
}

// Result reports the summed ΔH/ΔS, the salt correction and Tm.
type Result struct {
	DH_kcal        float64 // total ΔH (kcal/mol)
	DS_cal         float64 // total ΔS (cal/K·mol)
	SaltCorrection float64 // °C added after the two-state Tm
	TmC            float64 // melting temperature (°C)
}

// Tm computes the nearest-neighbor Tm of seq (5'→3', uppercase ACGT) against
// its perfect complement.
func Tm(seq string, in TmInput) (Result, error) {
	var out Result
	n := len(seq)
	if n == 0 {
		return out, errors.New("Tm: empty sequence")
	}
	if !(in.CT > 0) || math.IsInf(in.CT, 0) {
		return out, errors.New("Tm: CT must be > 0")
	}
	na := in.Na
	if na == 0 {
		na = DefaultSaltMolar
	}
	if !(na > 0) || math.IsInf(na, 0) {
		return out, errors.New("Tm: [Na+] must be > 0")
	}

	// 1) Terminal initiation, 5' end then 3' end (same base when n == 1).
	DH, DS := 0.0, 0.0
	for _, b := range [2]byte{seq[0], seq[n-1]} {
		prm, err := initiation(b)
		if err != nil {
			return out, err
		}
		DH += prm.DH
		DS += prm.DS
	}

	// 2) Stacks.
	for i := 0; i < n-1; i++ {
		prm, ok := dimerParams[seq[i:i+2]]
		if !ok {
			return out, fmt.Errorf("Tm: missing NN params for dimer %q", seq[i:i+2])
		}
		DH += prm.DH
		DS += prm.DS
	}

	// 3) Two-state Tm (K), then °C. ΔH in cal/mol.
	tmK := (DH * 1000.0) / (DS + Rcal*math.Log(in.CT/4.0))

	// 4) Salt.
	salt := SaltCorrection(na)

	out.DH_kcal = DH
	out.DS_cal = DS
	out.SaltCorrection = salt
	out.TmC = tmK - 273.15 + salt
	return out, nil
}

// SaltCorrection returns the °C shift for a monovalent cation concentration (mol/L).
func SaltCorrection(naM float64) float64 {
	return 16.6 * math.Log10(naM)
}

// TmBasic is the length-conditioned empirical rule: the Wallace rule
// 2(A+T)+4(G+C) below 14 nt, otherwise 64.9 + 41(G+C-16.4)/N.
func TmBasic(a, c, g, t int) float64 {
	n := a + c + g + t
	if n == 0 {
		return 0
	}
	if n < 14 {
		return float64(2*(a+t) + 4*(g+c))
	}
	return 64.9 + 41.0*(float64(g+c)-16.4)/float64(n)
}

func initiation(b byte) (NNParams, error) {
	switch b {
	case 'G', 'C':
		return initGC, nil
	case 'A', 'T':
		return initAT, nil
	default:
		return NNParams{}, fmt.Errorf("Tm: non-ACGT base %q", b)
	}
}
