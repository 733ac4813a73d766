// core/entropy/alphabet.go
package entropy

import (
	"fmt"
	"math/bits"
)

// Alphabet selects how raw bytes are bucketed into symbols before
// histogramming. It is a closed set: adding a variant means touching
// Size, Index and String together.
type Alphabet int

const (
	// AlphabetByte treats each byte value as its own symbol (256 symbols).
	AlphabetByte Alphabet = iota
	// AlphabetBitPop buckets bytes by Hamming weight (9 symbols, 0..8 set bits).
	AlphabetBitPop
)

// Size returns the number of symbols in the alphabet.
func (a Alphabet) Size() int {
	if a == AlphabetBitPop {
		return 9
	}
	return 256
}

// Index maps one byte to its symbol index. Always in [0, Size).
func (a Alphabet) Index(b byte) int {
	if a == AlphabetBitPop {
		return bits.OnesCount8(b)
	}
	return int(b)
}

func (a Alphabet) String() string {
	if a == AlphabetBitPop {
		return "bitpop"
	}
	return "byte"
}

// ParseAlphabet maps CLI spellings onto an Alphabet.
func ParseAlphabet(s string) (Alphabet, error) {
	switch s {
	case "byte":
		return AlphabetByte, nil
	case "bitpop", "bit":
		return AlphabetBitPop, nil
	}
	return AlphabetByte, fmt.Errorf("unknown alphabet %q", s)
}
