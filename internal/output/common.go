package output

// Output formats understood by the writers.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatJSONL  = "jsonl"
	FormatFASTA  = "fasta"
	FormatPretty = "pretty"
)

// PairTSVHeader is the canonical header row for designed pairs in text output.
// Keep this as the single source of truth; all writers should use it.
const PairTSVHeader = "template_id\trank\tfwd_seq\tfwd_start\tfwd_end\tfwd_tm\trev_seq\trev_start\trev_end\trev_tm\tproduct_size\ttm_diff\tscore\tfwd_sites\trev_sites"

// PropertiesTSVHeader is the header row for analyzed oligos in text output.
const PropertiesTSVHeader = "id\tsequence\tlength\tgc_percent\tmolecular_weight\ttm_basic\ttm_nn\tvalid\terror\tsites_plus\tsites_minus"

// missing fills columns that were not computed.
const missing = "."
