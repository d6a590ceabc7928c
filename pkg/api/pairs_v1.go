// pkg/api/pairs_v1.go
package api

// PrimerV1 is one primer of a designed pair. Start/End are 0-based inclusive
// template coordinates.
type PrimerV1 struct {
	Sequence  string  `json:"sequence"`
	Start     int     `json:"start"`
	End       int     `json:"end"`
	Length    int     `json:"length"`
	Strand    string  `json:"strand"` // "sense" | "antisense"
	GCPercent float64 `json:"gc_percent"`
	TmNN      float64 `json:"tm_nn"`
	TmBasic   float64 `json:"tm_basic"`
	GCClamp   bool    `json:"gc_clamp"`
}

// PairV1 is the stable JSON/JSONL schema for a ranked primer pair.
type PairV1 struct {
	TemplateID   string   `json:"template_id"`
	SourceFile   string   `json:"source_file,omitempty"`
	Rank         int      `json:"rank"`
	Forward      PrimerV1 `json:"forward"`
	Reverse      PrimerV1 `json:"reverse"`
	ProductSize  int      `json:"product_size"`
	TmDifference float64  `json:"tm_difference"`
	Score        float64  `json:"score"`

	ForwardSites *SitesV1 `json:"forward_sites,omitempty"`
	ReverseSites *SitesV1 `json:"reverse_sites,omitempty"`
}
