package output

import (
	"fmt"
	"io"

	"pcrdesign/internal/pretty"
)

// WritePairPretty writes a summary line and an ASCII diagram per pair.
func WritePairPretty(w io.Writer, r TemplateResult) error {
	for i, p := range r.Pairs {
		if _, err := fmt.Fprintf(w, "# %s rank %d  product=%d  tm=%s/%s  diff=%s  score=%s\n",
			r.TemplateID, i+1, p.ProductSize,
			fixed(p.Forward.TmNN, placesMeasure), fixed(p.Reverse.TmNN, placesMeasure),
			fixed(p.TmDifference, placesMeasure), fixed(p.Score, placesScore),
		); err != nil {
			return err
		}
		if _, err := io.WriteString(w, pretty.RenderPair(p)); err != nil {
			return err
		}
	}
	return nil
}
