package shared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumBits(t *testing.T) {
	r := require.New(t)

	r.Equal(0, NumBits(0))
	r.Equal(1, NumBits(1))
	r.Equal(2, NumBits(2))
	r.Equal(2, NumBits(3))
	r.Equal(3, NumBits(4))
	r.Equal(8, NumBits(255))
	r.Equal(9, NumBits(256))
	r.Equal(16, NumBits(1<<16-1))
	r.Equal(64, NumBits(1<<64-1))
}

func TestHexDigits(t *testing.T) {
	r := require.New(t)

	r.Equal(1, HexDigits(0))
	r.Equal(1, HexDigits(1))
	r.Equal(1, HexDigits(4))
	r.Equal(2, HexDigits(5))
	r.Equal(4, HexDigits(16))
	r.Equal(6, HexDigits(24))
	r.Equal(8, HexDigits(32))
}
