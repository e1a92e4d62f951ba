package bitstream_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-lzx/lzxd/bitstream"
)

func TestReader_ReadSequential(t *testing.T) {
	req := require.New(t)

	buf := words(0b0110_1110_0101_1101, 0b1110_0010_0110_1000)
	bitLengths := []uint8{1, 1, 2, 2, 3, 3, 3, 3, 4, 4, 4}

	r := bitstream.NewReader(bytes.NewReader(buf))
	for value, bitLength := range bitLengths {
		got, err := r.ReadBits(bitLength)
		req.NoError(err)
		req.Equal(uint16(value), got)
	}
}

// The streaming reader and the slice cursor must agree bit for bit.
func TestReader_MatchesBitstream(t *testing.T) {
	req := require.New(t)

	buf := []byte{0x56, 0x78, 0x12, 0x34, 0xab, 0xcd, 0xef, 0x01, 0x00, 0xff}
	r := bitstream.NewReader(bytes.NewReader(buf))
	bs := bitstream.New(buf)

	for _, numBits := range []uint8{3, 13, 16, 1, 7, 9, 11, 16, 4} {
		want, err := bs.ReadBits(numBits)
		req.NoError(err)
		got, err := r.ReadBits(numBits)
		req.NoError(err)
		req.Equal(want, got, "width %d", numBits)
	}
}

func TestReader_ReadUint32LE(t *testing.T) {
	req := require.New(t)

	r := bitstream.NewReader(bytes.NewReader([]byte{0x56, 0x78, 0x12, 0x34}))
	v, err := r.ReadUint32LE()
	req.NoError(err)
	req.Equal(uint32(0x12345678), v)
}

func TestReader_ReadUint24BE(t *testing.T) {
	req := require.New(t)

	r := bitstream.NewReader(bytes.NewReader(words(0b0000_1100_0001_1000, 0b0001_1000_0011_0000)))

	v, err := r.ReadBits(4)
	req.NoError(err)
	req.Equal(uint16(0), v)

	u, err := r.ReadUint24BE()
	req.NoError(err)
	req.Equal(uint32(0b1100_0001_1000_0001_1000_0011), u)
}

func TestReader_Align(t *testing.T) {
	req := require.New(t)

	r := bitstream.NewReader(bytes.NewReader([]byte{0x34, 0x12, 0x78, 0x56}))

	v, err := r.ReadBits(4)
	req.NoError(err)
	req.Equal(uint16(0x1), v)
	req.Equal(uint8(12), r.Remaining())

	r.Align()
	req.Equal(uint8(0), r.Remaining())

	u, err := r.ReadUint16LE()
	req.NoError(err)
	req.Equal(uint16(0x7856), u)
}

func TestReader_EOF(t *testing.T) {
	req := require.New(t)

	_, err := bitstream.NewReader(bytes.NewReader(nil)).ReadBit()
	req.Equal(io.EOF, err)
	_, err = bitstream.NewReader(bytes.NewReader([]byte{})).ReadBits(8)
	req.Equal(io.EOF, err)

	// A lone byte is half a word.
	_, err = bitstream.NewReader(bytes.NewReader([]byte{0xab})).ReadBit()
	req.Equal(io.ErrUnexpectedEOF, err)

	// Clean EOF on a word boundary.
	r := bitstream.NewReader(bytes.NewReader([]byte{0xab, 0xcd}))
	v, err := r.ReadBits(16)
	req.NoError(err)
	req.Equal(uint16(0xcdab), v)
	_, err = r.ReadBit()
	req.Equal(io.EOF, err)

	// End of input splitting a value.
	r = bitstream.NewReader(bytes.NewReader([]byte{0xab, 0xcd}))
	_, err = r.ReadBits(9)
	req.NoError(err)
	_, err = r.ReadBits(16)
	req.Equal(io.ErrUnexpectedEOF, err)
}

func TestReader_BitsCountContract(t *testing.T) {
	req := require.New(t)

	r := bitstream.NewReader(bytes.NewReader(words(0xffff, 0xffff)))
	req.Panics(func() { _, _ = r.ReadBits(17) })
}
