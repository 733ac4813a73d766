// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"entrocalc-core/entropy"
)

// WriteTextReport prints the classic report block for one file. The byte
// alphabet gets the five derived metrics; the bit-population alphabet keeps
// its historical single-line shape.
func WriteTextReport(w io.Writer, r FileReport) error {
	rep := r.Report
	if _, err := fmt.Fprintf(w, "--- File: %s ---\n", r.File); err != nil {
		return err
	}
	if rep.Alphabet == entropy.AlphabetBitPop {
		_, err := fmt.Fprintf(w, "Bit-level informational entropy: %.6f bits\n\n", rep.Entropy)
		return err
	}

	cm := rep.Coding
	if _, err := fmt.Fprintf(w, "Entropy per byte: %.6f bits or %.6f bytes\n", rep.Entropy, cm.PerByte); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Entropy of file: %.6f bits or %.6f bytes\n", cm.FileBits, cm.FileBytes); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Size of file: %d bytes\n", rep.TotalBytes); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Delta: %.6f bytes compressible theoretically\n", cm.DeltaBytes); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best Theoretical Coding ratio: %s\n\n", ratioString(rep)); err != nil {
		return err
	}
	return nil
}

// ratioString renders the coding ratio with its two defined degenerate forms.
func ratioString(rep entropy.Report) string {
	switch {
	case rep.Empty:
		return "n/a (empty input)"
	case !rep.Coding.RatioFinite:
		return "inf"
	default:
		return fmt.Sprintf("%.6f", rep.Coding.Ratio)
	}
}

// WriteText prints one report block per file.
func WriteText(w io.Writer, list []FileReport) error {
	for _, r := range list {
		if err := WriteTextReport(w, r); err != nil {
			return err
		}
	}
	return nil
}
