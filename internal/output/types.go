package output

import (
	"pcrdesign-core/design"
	"pcrdesign-core/oligo"
	"pcrdesign/internal/specificity"
)

// TemplateResult is the outcome of designing one template.
type TemplateResult struct {
	TemplateID string
	SourceFile string
	Pairs      []design.Pair
	Stats      design.Stats
	// Sites is parallel to Pairs; nil when annotation is disabled.
	Sites []specificity.PairSites
}

// OligoResult is one analyzed oligo.
type OligoResult struct {
	ID    string
	Props oligo.Properties
	Sites *specificity.Sites
}
