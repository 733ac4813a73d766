// internal/output/window.go
package output

import (
	"fmt"
	"io"
	"strings"

	"entrocalc-core/entropy"
)

// WriteWindowsText prints a window scan as a table followed by min/max/avg
// summary lines.
func WriteWindowsText(w io.Writer, file string, size int, pts []entropy.WindowPoint) error {
	if _, err := fmt.Fprintf(w, "--- Window scan: %s ---\n", file); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Window size: %d bytes\n", size); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Windows: %d\n\n", len(pts)); err != nil {
		return err
	}
	if len(pts) == 0 {
		_, err := fmt.Fprintln(w, "(empty input)")
		return err
	}

	if _, err := fmt.Fprintln(w, "offset\tsize\tentropy_bits"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 40)); err != nil {
		return err
	}
	min, max, sum := pts[0].Entropy, pts[0].Entropy, 0.0
	for _, p := range pts {
		if _, err := fmt.Fprintf(w, "%d\t%d\t%.6f\n", p.Offset, p.Size, p.Entropy); err != nil {
			return err
		}
		if p.Entropy < min {
			min = p.Entropy
		}
		if p.Entropy > max {
			max = p.Entropy
		}
		sum += p.Entropy
	}
	_, err := fmt.Fprintf(w, "\nMin: %.6f bits  Max: %.6f bits  Avg: %.6f bits\n",
		min, max, sum/float64(len(pts)))
	return err
}
