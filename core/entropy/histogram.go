// core/entropy/histogram.go
package entropy

import "io"

// readChunk is the accumulation buffer size. It matches the reference
// reader and is not observable in any output.
const readChunk = 256

// Histogram counts symbol occurrences for one input stream.
// Invariant: the sum of Counts equals TotalBytes.
type Histogram struct {
	Alphabet   Alphabet
	Counts     []uint64
	TotalBytes uint64
}

// NewHistogram returns an all-zero histogram sized to the alphabet.
func NewHistogram(a Alphabet) *Histogram {
	return &Histogram{Alphabet: a, Counts: make([]uint64, a.Size())}
}

// Add folds buf into the histogram. One loop serves both alphabets;
// the strategy lives in Alphabet.Index.
func (h *Histogram) Add(buf []byte) {
	for _, b := range buf {
		h.Counts[h.Alphabet.Index(b)]++
	}
	h.TotalBytes += uint64(len(buf))
}

// Reset zeroes the histogram so it can be reused for another stream.
func (h *Histogram) Reset() {
	for i := range h.Counts {
		h.Counts[i] = 0
	}
	h.TotalBytes = 0
}

// Accumulate streams r to exhaustion and returns the filled histogram.
// End-of-stream is normal termination; any other read error is returned
// and the partial histogram discarded. An empty stream yields an all-zero
// histogram with TotalBytes 0.
func Accumulate(r io.Reader, a Alphabet) (*Histogram, error) {
	h := NewHistogram(a)
	buf := make([]byte, readChunk)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			h.Add(buf[:n])
		}
		if err == io.EOF {
			return h, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
