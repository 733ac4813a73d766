// internal/pretty/graph.go
package pretty

import (
	"fmt"
	"strings"

	"entrocalc-core/entropy"
)

// maxGraphRows caps the window graph; longer scans are sampled evenly.
const maxGraphRows = 48

// RenderWindowGraph renders a window scan as one proportional bar per
// window, scaled between the observed minimum and maximum. A constant
// series collapses to a single note line.
func RenderWindowGraph(pts []entropy.WindowPoint, opt Options) string {
	if len(pts) == 0 {
		return ""
	}
	opt = opt.normalized()

	min, max := pts[0].Entropy, pts[0].Entropy
	for _, p := range pts {
		if p.Entropy < min {
			min = p.Entropy
		}
		if p.Entropy > max {
			max = p.Entropy
		}
	}
	if max == min {
		return fmt.Sprintf("Entropy constant at %.6f bits across %d windows\n", min, len(pts))
	}

	step := 1
	if len(pts) > maxGraphRows {
		step = (len(pts) + maxGraphRows - 1) / maxGraphRows
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Window Entropy Graph\n%s\n", opt.rule())
	fmt.Fprintf(&b, "Min: %.6f bits  Max: %.6f bits\n", min, max)
	for i := 0; i < len(pts); i += step {
		p := pts[i]
		n := int((p.Entropy - min) / (max - min) * float64(opt.BarWidth))
		fmt.Fprintf(&b, "%10d │%s│ %.4f\n", p.Offset, strings.Repeat(opt.BarGlyph, n), p.Entropy)
	}
	fmt.Fprintf(&b, "%s\n", opt.rule())
	return b.String()
}
