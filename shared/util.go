package shared

import (
	"math/bits"
)

// NumBits returns the number of bits required to represent v; 0 for v == 0.
func NumBits(v uint64) int {
	return bits.Len64(v)
}

// HexDigits returns the number of hex digits needed to render a value of the
// given bit width.
func HexDigits(numBits int) int {
	if numBits <= 0 {
		return 1
	}
	return (numBits + 3) / 4
}
