// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"entrocalc/internal/output"
)

// ReportWriters maps a format name to its batch renderer. Registration
// happens in init() below; StartReportWriter streams text/jsonl itself and
// falls back to these for buffered formats.
var ReportWriters = map[string]func(w io.Writer, list []output.FileReport, header bool) error{}

// RegisterReport installs a renderer for a format (last registration wins).
func RegisterReport(format string, fn func(io.Writer, []output.FileReport, bool) error) {
	ReportWriters[format] = fn
}

// WriteReports dispatches a buffered batch to the registered renderer.
func WriteReports(format string, w io.Writer, list []output.FileReport, header bool) error {
	fn, ok := ReportWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, list, header)
}

func init() {
	RegisterReport("text", func(w io.Writer, list []output.FileReport, _ bool) error {
		return output.WriteText(w, list)
	})
	RegisterReport("json", func(w io.Writer, list []output.FileReport, _ bool) error {
		return output.WriteJSON(w, list)
	})
	RegisterReport("csv", func(w io.Writer, list []output.FileReport, header bool) error {
		return output.WriteCSV(w, list, header)
	})
}
