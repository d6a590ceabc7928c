package writers

import (
	"encoding/json"
	"io"

	"pcrdesign/internal/jsonlutil"
	"pcrdesign/internal/output"
)

func init() {
	RegisterPair(output.FormatText, startPairText)
	RegisterPair(output.FormatFASTA, func(out io.Writer, _ bool, bufSize int) (chan<- output.TemplateResult, <-chan error) {
		return stream(out, bufSize, nil, output.WritePairFASTA)
	})
	RegisterPair(output.FormatPretty, func(out io.Writer, _ bool, bufSize int) (chan<- output.TemplateResult, <-chan error) {
		return stream(out, bufSize, nil, output.WritePairPretty)
	})
	RegisterPair(output.FormatJSON, func(out io.Writer, _ bool, bufSize int) (chan<- output.TemplateResult, <-chan error) {
		return collect(out, bufSize, output.WritePairsJSON)
	})
	RegisterPair(output.FormatJSONL, func(out io.Writer, _ bool, bufSize int) (chan<- output.TemplateResult, <-chan error) {
		return StartPairJSONLWriter(out, bufSize)
	})
}

func startPairText(out io.Writer, header bool, bufSize int) (chan<- output.TemplateResult, <-chan error) {
	var h func(io.Writer) error
	if header {
		h = headerLine(output.PairTSVHeader)
	}
	return stream(out, bufSize, h, output.WritePairRows)
}

// StartPairJSONLWriter streams each pair as one JSON line (v1).
func StartPairJSONLWriter(out io.Writer, bufSize int) (chan<- output.TemplateResult, <-chan error) {
	return jsonlutil.Start[output.TemplateResult](out, bufSize,
		func(enc *json.Encoder, r output.TemplateResult) error {
			for i := range r.Pairs {
				if err := enc.Encode(output.ToAPIPair(r, i)); err != nil {
					return err
				}
			}
			return nil
		},
		IsBrokenPipe,
	)
}
