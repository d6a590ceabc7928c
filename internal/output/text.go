// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"pcrdesign/internal/specificity"
)

func sitesCol(s *specificity.Sites) string {
	if s == nil {
		return missing
	}
	return strconv.Itoa(s.Total())
}

// FormatPairRowTSV returns row i of r without a trailing newline.
func FormatPairRowTSV(r TemplateResult, i int) string {
	p := r.Pairs[i]
	var fs, rs *specificity.Sites
	if i < len(r.Sites) {
		fs, rs = &r.Sites[i].Forward, &r.Sites[i].Reverse
	}
	return strings.Join([]string{
		r.TemplateID, strconv.Itoa(i + 1),
		p.Forward.Sequence, strconv.Itoa(p.Forward.Start), strconv.Itoa(p.Forward.End), fixed(p.Forward.TmNN, placesMeasure),
		p.Reverse.Sequence, strconv.Itoa(p.Reverse.Start), strconv.Itoa(p.Reverse.End), fixed(p.Reverse.TmNN, placesMeasure),
		strconv.Itoa(p.ProductSize), fixed(p.TmDifference, placesMeasure), fixed(p.Score, placesScore),
		sitesCol(fs), sitesCol(rs),
	}, "\t")
}

// WritePairRows writes every pair of r as TSV rows.
func WritePairRows(w io.Writer, r TemplateResult) error {
	for i := range r.Pairs {
		if _, err := fmt.Fprintln(w, FormatPairRowTSV(r, i)); err != nil {
			return err
		}
	}
	return nil
}

// FormatPropertiesRowTSV returns the TSV row of o. Numeric columns of an
// invalid oligo are left as missing.
func FormatPropertiesRowTSV(o OligoResult) string {
	p := o.Props
	cols := []string{o.ID, p.Sequence, strconv.Itoa(p.Length)}
	if p.Valid {
		cols = append(cols,
			fixed(p.GCPercent, placesMeasure), fixed(p.MolecularWeight, placesMeasure),
			fixed(p.TmBasic, placesMeasure), fixed(p.TmNN, placesMeasure))
	} else {
		cols = append(cols, missing, missing, missing, missing)
	}
	errCol := p.Err
	if errCol == "" {
		errCol = missing
	}
	plus, minus := missing, missing
	if o.Sites != nil {
		plus, minus = strconv.Itoa(o.Sites.Plus), strconv.Itoa(o.Sites.Minus)
	}
	cols = append(cols, strconv.FormatBool(p.Valid), errCol, plus, minus)
	return strings.Join(cols, "\t")
}
