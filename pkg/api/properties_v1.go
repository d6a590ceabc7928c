// pkg/api/properties_v1.go
package api

// PropertiesV1 is the stable JSON/JSONL schema for one analyzed oligo.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type PropertiesV1 struct {
	ID              string  `json:"id"`
	Sequence        string  `json:"sequence"`
	Length          int     `json:"length"`
	GCPercent       float64 `json:"gc_percent"`
	MolecularWeight float64 `json:"molecular_weight"`
	TmBasic         float64 `json:"tm_basic"`
	TmNN            float64 `json:"tm_nn"`
	Valid           bool    `json:"valid"`
	Error           string  `json:"error,omitempty"`

	// Binding sites on the --template, when one is given.
	Sites *SitesV1 `json:"sites,omitempty"`
}

// SitesV1 counts binding sites per template strand.
type SitesV1 struct {
	Plus  int `json:"plus"`
	Minus int `json:"minus"`
}
