package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"pcrdesign/internal/jsonlutil"
	"pcrdesign/internal/output"
)

func init() {
	RegisterProperties(output.FormatText, func(out io.Writer, header bool, bufSize int) (chan<- output.OligoResult, <-chan error) {
		var h func(io.Writer) error
		if header {
			h = headerLine(output.PropertiesTSVHeader)
		}
		return stream(out, bufSize, h, func(w io.Writer, o output.OligoResult) error {
			_, err := fmt.Fprintln(w, output.FormatPropertiesRowTSV(o))
			return err
		})
	})
	RegisterProperties(output.FormatJSON, func(out io.Writer, _ bool, bufSize int) (chan<- output.OligoResult, <-chan error) {
		return collect(out, bufSize, output.WritePropertiesJSON)
	})
	RegisterProperties(output.FormatJSONL, func(out io.Writer, _ bool, bufSize int) (chan<- output.OligoResult, <-chan error) {
		return jsonlutil.Start[output.OligoResult](out, bufSize,
			func(enc *json.Encoder, o output.OligoResult) error {
				return enc.Encode(output.ToAPIProperties(o))
			},
			IsBrokenPipe,
		)
	})
}
