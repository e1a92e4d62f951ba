package fieldspec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	r := require.New(t)

	fields, err := Parse("3, bit,u16,u32,u24, align ,16")
	r.NoError(err)
	r.Equal([]Field{
		{Kind: KindBits, Width: 3},
		{Kind: KindBit},
		{Kind: KindUint16LE},
		{Kind: KindUint32LE},
		{Kind: KindUint24BE},
		{Kind: KindAlign},
		{Kind: KindBits, Width: 16},
	}, fields)
}

func TestParse_Invalid(t *testing.T) {
	r := require.New(t)

	for _, s := range []string{"", "  ", "0", "17", "-1", "u8", "3,,4", "bits"} {
		_, err := Parse(s)
		r.Error(err, "script %q", s)
	}
}

func TestFieldBits(t *testing.T) {
	r := require.New(t)

	r.Equal(5, Field{Kind: KindBits, Width: 5}.Bits())
	r.Equal(1, Field{Kind: KindBit}.Bits())
	r.Equal(16, Field{Kind: KindUint16LE}.Bits())
	r.Equal(32, Field{Kind: KindUint32LE}.Bits())
	r.Equal(24, Field{Kind: KindUint24BE}.Bits())
	r.Equal(0, Field{Kind: KindAlign}.Bits())
}

func TestFieldString(t *testing.T) {
	r := require.New(t)

	r.Equal("7", Field{Kind: KindBits, Width: 7}.String())
	r.Equal("u16", Field{Kind: KindUint16LE}.String())
	r.Equal("align", Field{Kind: KindAlign}.String())
}
