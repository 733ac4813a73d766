// internal/writers/pdf.go
package writers

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"entrocalc/internal/output"
)

// WritePDF renders the text form of the reports into a one-document PDF at
// path. The PDF is a byproduct of a normal run, so rendering failures here
// are the caller's to report; stdout output is unaffected.
func WritePDF(path string, list []output.FileReport) error {
	var body strings.Builder
	if err := output.WriteText(&body, list); err != nil {
		return fmt.Errorf("render report text: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Entropy Analysis Results")
	pdf.Ln(14)
	pdf.SetFont("Courier", "", 10)
	pdf.MultiCell(0, 5, body.String(), "", "", false)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}
