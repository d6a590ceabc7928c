// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"pcrdesign-core/design"
	"pcrdesign-core/oligo"
	"pcrdesign/internal/specificity"
	"pcrdesign/pkg/api"
)

func toAPISites(s specificity.Sites) *api.SitesV1 {
	return &api.SitesV1{Plus: s.Plus, Minus: s.Minus}
}

func toAPIPrimer(c design.Candidate) api.PrimerV1 {
	return api.PrimerV1{
		Sequence:  c.Sequence,
		Start:     c.Start,
		End:       c.End,
		Length:    c.Length,
		Strand:    string(c.Strand),
		GCPercent: round(c.GCPercent, placesMeasure),
		TmNN:      round(c.TmNN, placesMeasure),
		TmBasic:   round(c.TmBasic, placesMeasure),
		GCClamp:   oligo.GCClamp(c.Sequence),
	}
}

// ToAPIPair converts pair i of r to the stable wire schema (v1). Rank is 1-based.
func ToAPIPair(r TemplateResult, i int) api.PairV1 {
	p := r.Pairs[i]
	v := api.PairV1{
		TemplateID:   r.TemplateID,
		SourceFile:   r.SourceFile,
		Rank:         i + 1,
		Forward:      toAPIPrimer(p.Forward),
		Reverse:      toAPIPrimer(p.Reverse),
		ProductSize:  p.ProductSize,
		TmDifference: round(p.TmDifference, placesMeasure),
		Score:        round(p.Score, placesScore),
	}
	if i < len(r.Sites) {
		v.ForwardSites = toAPISites(r.Sites[i].Forward)
		v.ReverseSites = toAPISites(r.Sites[i].Reverse)
	}
	return v
}

// ToAPIPairs converts every pair of r.
func ToAPIPairs(r TemplateResult) []api.PairV1 {
	out := make([]api.PairV1, 0, len(r.Pairs))
	for i := range r.Pairs {
		out = append(out, ToAPIPair(r, i))
	}
	return out
}

// ToAPIProperties converts an analyzed oligo to the wire schema (v1).
func ToAPIProperties(o OligoResult) api.PropertiesV1 {
	p := o.Props
	v := api.PropertiesV1{
		ID:              o.ID,
		Sequence:        p.Sequence,
		Length:          p.Length,
		GCPercent:       round(p.GCPercent, placesMeasure),
		MolecularWeight: round(p.MolecularWeight, placesMeasure),
		TmBasic:         round(p.TmBasic, placesMeasure),
		TmNN:            round(p.TmNN, placesMeasure),
		Valid:           p.Valid,
		Error:           p.Err,
	}
	if o.Sites != nil {
		v.Sites = toAPISites(*o.Sites)
	}
	return v
}

// WritePairsJSON writes one JSON array holding the pairs of every template.
func WritePairsJSON(w io.Writer, list []TemplateResult) error {
	out := make([]api.PairV1, 0, len(list)*design.DefaultResultCap)
	for _, r := range list {
		out = append(out, ToAPIPairs(r)...)
	}
	return encodeIndented(w, out)
}

// WritePropertiesJSON writes one JSON array of analyzed oligos.
func WritePropertiesJSON(w io.Writer, list []OligoResult) error {
	out := make([]api.PropertiesV1, 0, len(list))
	for _, o := range list {
		out = append(out, ToAPIProperties(o))
	}
	return encodeIndented(w, out)
}

// encodeIndented keeps HTML escaping off so IDs like "F<1>" survive.
func encodeIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
