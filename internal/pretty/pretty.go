package pretty

import (
	"fmt"
	"strings"

	"pcrdesign-core/design"
)

// Options control the ASCII rendering.
type Options struct {
	// Interior width cap for readability (dots section). If <=0, use default (95).
	MaxGap int

	// Glyphs
	BarGlyph string // default "|"
	DotGlyph string // default "."
}

// DefaultOptions is the look used by the pretty output format.
var DefaultOptions = Options{
	MaxGap:   95,
	BarGlyph: "|",
	DotGlyph: ".",
}

const (
	minInterPrimerGap = 5
	linePrefix        = "# "

	prefixPlus  = "5'-"
	suffixPlus  = "-3'"
	prefixMinus = "3'-"
	suffixMinus = "-5'"
	arrowRight  = "-->"
	arrowLeft   = "<--"
)

func reverseString(s string) string {
	rs := []rune(s)
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
	return string(rs)
}

// gaps returns the dot counts of the (+) and (−) lines so both strands end
// in the same column while staying readable for short products.
func gaps(product, fLen, rLen, maxGap int) (plus, minus int) {
	interior := product - fLen - rLen
	if interior < 0 {
		interior = 0
	}
	inner := maxGap
	if interior < inner {
		inner = interior
	}
	plus, minus = inner, inner
	if minus < fLen+minInterPrimerGap {
		minus = fLen + minInterPrimerGap
	}
	if plus < rLen+minInterPrimerGap {
		plus = rLen + minInterPrimerGap
	}
	contPlus, contMinus := fLen+plus, minus+rLen
	if contMinus > contPlus {
		plus += contMinus - contPlus
	} else if contPlus > contMinus {
		minus += contPlus - contMinus
	}
	return plus, minus
}

// RenderPairWithOptions draws the forward primer annealing to the (+)
// strand and the reverse primer, shown 3'→5', annealing to the (−) strand.
func RenderPairWithOptions(p design.Pair, opt Options) string {
	fwd, rev := p.Forward.Sequence, p.Reverse.Sequence
	if fwd == "" || rev == "" {
		return linePrefix + "(pretty not available: primer missing)\n#\n"
	}
	maxGap := opt.MaxGap
	if maxGap <= 0 {
		maxGap = DefaultOptions.MaxGap
	}
	dot, bar := opt.dotGlyph(), opt.barGlyph()
	innerPlus, innerMinus := gaps(p.ProductSize, len(fwd), len(rev), maxGap)

	var b strings.Builder

	// 1) forward primer and its bars
	fmt.Fprintf(&b, "%s%s%s%s\n", linePrefix, prefixPlus, fwd, suffixPlus)
	fmt.Fprintf(&b, "%s%s%s%s\n", linePrefix, strings.Repeat(" ", len(prefixPlus)), strings.Repeat(bar, len(fwd)), arrowRight)

	// 2) template strands; the (−) site is the reverse primer read 3'→5'
	revShown := reverseString(rev)
	fmt.Fprintf(&b, "%s%s%s%s%s # (+)\n", linePrefix, prefixPlus, fwd, strings.Repeat(dot, innerPlus), suffixPlus)
	fmt.Fprintf(&b, "%s%s%s%s%s # (-)\n", linePrefix, prefixMinus, strings.Repeat(dot, innerMinus), complement(revShown), suffixMinus)

	// 3) reverse primer bars and the primer itself
	siteStart := len(prefixMinus) + innerMinus
	pad := siteStart - len(arrowLeft)
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(&b, "%s%s%s%s\n", linePrefix, strings.Repeat(" ", pad), arrowLeft, strings.Repeat(bar, len(rev)))
	fmt.Fprintf(&b, "%s%s%s%s%s\n", linePrefix, strings.Repeat(" ", siteStart-len(prefixMinus)), prefixMinus, revShown, suffixMinus)

	b.WriteString("#\n")
	return b.String()
}

// RenderPair uses DefaultOptions.
func RenderPair(p design.Pair) string {
	return RenderPairWithOptions(p, DefaultOptions)
}

func complement(s string) string {
	out := make([]byte, len(s))
	for i := range s {
		switch s[i] {
		case 'A':
			out[i] = 'T'
		case 'T':
			out[i] = 'A'
		case 'C':
			out[i] = 'G'
		case 'G':
			out[i] = 'C'
		default:
			out[i] = s[i]
		}
	}
	return string(out)
}

func (o Options) barGlyph() string {
	if o.BarGlyph != "" {
		return o.BarGlyph
	}
	return DefaultOptions.BarGlyph
}

func (o Options) dotGlyph() string {
	if o.DotGlyph != "" {
		return o.DotGlyph
	}
	return DefaultOptions.DotGlyph
}
