// internal/pretty/pretty.go
package pretty

import (
	"fmt"
	"sort"
	"strings"

	"entrocalc-core/entropy"
)

// Options control the ASCII rendering.
type Options struct {
	// Max glyphs in a proportional bar. If <=0, use default (50).
	BarWidth int

	// Byte-histogram bins; must divide 256. The bit-population alphabet
	// always renders its 9 buckets directly.
	Bins int

	// Glyphs
	BarGlyph  string // default "█"
	RuleGlyph string // default "="
}

// DefaultOptions keeps the current look and feel.
var DefaultOptions = Options{
	BarWidth:  50,
	Bins:      16,
	BarGlyph:  "█",
	RuleGlyph: "=",
}

const ruleWidth = 70

func (o Options) normalized() Options {
	if o.BarWidth <= 0 {
		o.BarWidth = DefaultOptions.BarWidth
	}
	if o.Bins <= 0 || 256%o.Bins != 0 {
		o.Bins = DefaultOptions.Bins
	}
	if o.BarGlyph == "" {
		o.BarGlyph = DefaultOptions.BarGlyph
	}
	if o.RuleGlyph == "" {
		o.RuleGlyph = DefaultOptions.RuleGlyph
	}
	return o
}

func (o Options) rule() string { return strings.Repeat(o.RuleGlyph, ruleWidth) }

func (o Options) bar(count, max uint64) string {
	if max == 0 {
		return ""
	}
	n := int(float64(count) / float64(max) * float64(o.BarWidth))
	return strings.Repeat(o.BarGlyph, n)
}

// RenderHistogram renders the symbol distribution of an accumulated
// histogram. Byte alphabets are grouped into Bins ranges for readability;
// the bit-population alphabet shows all nine weight classes.
func RenderHistogram(h *entropy.Histogram, opt Options) string {
	opt = opt.normalized()
	var b strings.Builder

	if h.Alphabet == entropy.AlphabetBitPop {
		fmt.Fprintf(&b, "Bit-Population Distribution\n%s\n", opt.rule())
		max := maxCount(h.Counts)
		for bitsSet, count := range h.Counts {
			fmt.Fprintf(&b, "%d bits │%s│ %d\n", bitsSet, opt.bar(count, max), count)
		}
		fmt.Fprintf(&b, "%s\n", opt.rule())
		return b.String()
	}

	binSize := 256 / opt.Bins
	bins := make([]uint64, opt.Bins)
	for i, c := range h.Counts {
		bins[i/binSize] += c
	}
	max := maxCount(bins)

	fmt.Fprintf(&b, "Byte Distribution Histogram\n%s\n", opt.rule())
	for i, count := range bins {
		lo := i * binSize
		hi := lo + binSize - 1
		fmt.Fprintf(&b, "%02X-%02X │%s│ %d\n", lo, hi, opt.bar(count, max), count)
	}
	fmt.Fprintf(&b, "%s\n", opt.rule())
	return b.String()
}

// RenderFrequency renders the topN most frequent symbols with counts,
// percentages and proportional bars. Zero-count symbols never appear.
func RenderFrequency(h *entropy.Histogram, topN int, opt Options) string {
	opt = opt.normalized()

	type freq struct {
		symbol int
		count  uint64
	}
	var pairs []freq
	for s, c := range h.Counts {
		if c > 0 {
			pairs = append(pairs, freq{symbol: s, count: c})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].count != pairs[j].count {
			return pairs[i].count > pairs[j].count
		}
		return pairs[i].symbol < pairs[j].symbol
	})
	if topN < len(pairs) {
		pairs = pairs[:topN]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Top %d Most Frequent Symbols\n%s\n", topN, opt.rule())
	fmt.Fprintf(&b, "%-10s %-10s %-9s %s\n", "Symbol", "Count", "Percent", "Bar")
	if len(pairs) == 0 {
		fmt.Fprintf(&b, "(no data)\n%s\n", opt.rule())
		return b.String()
	}
	max := pairs[0].count
	for _, p := range pairs {
		pct := float64(p.count) / float64(h.TotalBytes) * 100
		fmt.Fprintf(&b, "%-10s %-10d %6.2f%%  %s\n",
			symbolLabel(h.Alphabet, p.symbol), p.count, pct, opt.bar(p.count, max))
	}
	fmt.Fprintf(&b, "%s\n", opt.rule())
	return b.String()
}

func symbolLabel(a entropy.Alphabet, s int) string {
	if a == entropy.AlphabetBitPop {
		return fmt.Sprintf("%d bits", s)
	}
	if s >= 32 && s <= 126 {
		return fmt.Sprintf("'%c' 0x%02X", s, s)
	}
	return fmt.Sprintf("    0x%02X", s)
}

func maxCount(counts []uint64) uint64 {
	var max uint64
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	return max
}
