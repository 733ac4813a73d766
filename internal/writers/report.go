// internal/writers/report.go
package writers

import (
	"encoding/json"
	"io"

	"entrocalc/internal/output"
)

// StartReportWriter spins up a writer goroutine for per-file reports.
// text and jsonl stream one report at a time; json and csv buffer the batch
// so the document stays well-formed. The error channel yields exactly once,
// after the input channel is closed and drained.
func StartReportWriter(out io.Writer, format string, header bool, bufSize int) (chan<- output.FileReport, <-chan error) {
	if bufSize <= 0 {
		bufSize = 16
	}
	in := make(chan output.FileReport, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case "text":
			for r := range in {
				if err == nil {
					err = output.WriteTextReport(out, r)
				}
			}

		case "jsonl":
			enc := json.NewEncoder(out)
			for r := range in {
				if err == nil {
					err = enc.Encode(output.ToAPIReport(r))
				}
			}

		default: // json, csv: buffered
			var buf []output.FileReport
			for r := range in {
				buf = append(buf, r)
			}
			err = WriteReports(format, out, buf, header)
		}
		errCh <- err
	}()

	return in, errCh
}
