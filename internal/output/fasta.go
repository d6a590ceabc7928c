package output

import (
	"fmt"
	"io"
)

// WritePairFASTA emits each pair of r as two records, ">ID_rankN_F" and
// ">ID_rankN_R", both 5'→3'.
func WritePairFASTA(w io.Writer, r TemplateResult) error {
	for i, p := range r.Pairs {
		if _, err := fmt.Fprintf(w,
			">%s_rank%d_F start=%d end=%d tm=%s product=%d\n%s\n>%s_rank%d_R start=%d end=%d tm=%s product=%d\n%s\n",
			r.TemplateID, i+1, p.Forward.Start, p.Forward.End, fixed(p.Forward.TmNN, placesMeasure), p.ProductSize, p.Forward.Sequence,
			r.TemplateID, i+1, p.Reverse.Start, p.Reverse.End, fixed(p.Reverse.TmNN, placesMeasure), p.ProductSize, p.Reverse.Sequence,
		); err != nil {
			return err
		}
	}
	return nil
}
