// core/entropy/window.go
package entropy

import (
	"errors"
	"io"
)

// WindowPoint is the entropy of one fixed-size slice of the stream.
type WindowPoint struct {
	Offset  uint64
	Size    uint64
	Entropy float64 // bits per symbol within the window
}

// ErrWindowSize is returned for a non-positive window size.
var ErrWindowSize = errors.New("window size must be positive")

// Windows splits r into consecutive non-overlapping size-byte windows and
// derives the entropy of each. The final window may be short. One histogram
// is reused across windows via Reset.
func Windows(r io.Reader, a Alphabet, size int) ([]WindowPoint, error) {
	if size <= 0 {
		return nil, ErrWindowSize
	}
	var (
		points []WindowPoint
		offset uint64
	)
	h := NewHistogram(a)
	buf := make([]byte, size)
	for {
		n, err := io.ReadFull(r, buf)
		if n > 0 {
			h.Reset()
			h.Add(buf[:n])
			points = append(points, WindowPoint{
				Offset:  offset,
				Size:    uint64(n),
				Entropy: Derive(h).Entropy,
			})
			offset += uint64(n)
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return points, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
