// core/entropy/report.go
package entropy

import "math"

// Report is the immutable result of one accumulation pass. Entropy is in
// bits per symbol of the chosen alphabet. Coding is populated only for the
// byte alphabet; the bit-population report historically carries the single
// entropy figure and nothing else, and keeps that shape here.
type Report struct {
	Alphabet   Alphabet
	TotalBytes uint64
	Entropy    float64
	Empty      bool // zero bytes read
	Coding     *CodingMetrics
}

// CodingMetrics are the byte-alphabet-only derived figures.
type CodingMetrics struct {
	PerByte     float64 // Entropy / 8, in bytes per input byte
	FileBits    float64 // Entropy * TotalBytes
	FileBytes   float64 // FileBits / 8
	DeltaBytes  float64 // TotalBytes - FileBytes; <= 0 near maximum entropy
	Ratio       float64 // 8 / Entropy; +Inf for a constant-byte stream
	RatioFinite bool    // false when Ratio is undefined (H == 0)
}

// Derive computes the entropy report for an accumulated histogram.
// The empty stream is an explicit branch: entropy and every derived
// metric are zero and no division happens.
func Derive(h *Histogram) Report {
	rep := Report{Alphabet: h.Alphabet, TotalBytes: h.TotalBytes}
	if h.TotalBytes == 0 {
		rep.Empty = true
		if h.Alphabet == AlphabetByte {
			rep.Coding = &CodingMetrics{}
		}
		return rep
	}

	total := float64(h.TotalBytes)
	var ent float64
	for _, c := range h.Counts {
		if c == 0 {
			continue // zero-count symbols must never reach Log2
		}
		p := float64(c) / total
		ent -= p * math.Log2(p)
	}
	rep.Entropy = ent

	if h.Alphabet != AlphabetByte {
		return rep
	}
	cm := &CodingMetrics{
		PerByte:  ent / 8,
		FileBits: ent * total,
	}
	cm.FileBytes = cm.FileBits / 8
	cm.DeltaBytes = total - cm.FileBytes
	if ent > 0 {
		cm.Ratio = 8 / ent
		cm.RatioFinite = true
	} else {
		// Constant-byte stream: optimal coding needs zero bits per symbol,
		// so the ratio is unbounded. Report it as +Inf, never crash.
		cm.Ratio = math.Inf(1)
	}
	rep.Coding = cm
	return rep
}
