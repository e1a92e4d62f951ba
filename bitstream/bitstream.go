// Package bitstream provides bit-granularity access to LZXD compressed data,
// following the bit-packed word convention: bits are packed most-significant
// bit first into 16-bit words, and each word is stored in the byte stream as
// a little-endian (byte-swapped) pair.
//
// Given an input stream of bits named a, b, c, ..., x, y, z, A, B, C, D, E, F,
// the byte stream (with byte boundaries highlighted) is laid out as:
//
//	[i|j|k|l|m|n|o#p|a|b|c|d|e|f|g|h#y|z|A|B|C|D|E|F#q|r|s|t|u|v|w|x]
package bitstream

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"
)

// Bitstream is a cursor over a caller-owned byte buffer, yielding its bits in
// the bit-packed word convention. The zero lookahead forces a word load on
// the first read. The caller must keep the underlying storage alive for the
// lifetime of the cursor.
type Bitstream struct {
	buffer []byte

	// Lookahead word, rotated left as bits are consumed so that bit 15 is
	// always the next bit.
	word uint16

	// How many bits are still unconsumed in `word`. Invariant: 0 <= remaining <= 16.
	remaining uint8
}

// New returns a cursor positioned before the first bit of buffer. The buffer
// length is not validated upfront; an odd-length buffer fails with
// io.ErrUnexpectedEOF only if a read actually forces a load past its end.
func New(buffer []byte) *Bitstream {
	return &Bitstream{buffer: buffer}
}

// lowMask returns a mask of the n lowest bits. n may be 0 or 16.
func lowMask(n uint8) uint16 {
	return uint16(uint32(1)<<n - 1)
}

// ReadBit returns the next single bit (0 or 1) and advances the cursor.
// It returns io.ErrUnexpectedEOF if a fresh word is needed but fewer than
// two bytes remain in the buffer.
func (b *Bitstream) ReadBit() (uint16, error) {
	if b.remaining == 0 {
		if len(b.buffer) < 2 {
			return 0, io.ErrUnexpectedEOF
		}
		b.word = binary.LittleEndian.Uint16(b.buffer)
		b.buffer = b.buffer[2:]
		b.remaining = 16
	}

	b.remaining--
	b.word = bits.RotateLeft16(b.word, 1)
	return b.word & 1, nil
}

// ReadBits returns the next numBits bits packed into a uint16, with the
// earliest-read bit in the most significant position, and advances the
// cursor, crossing a word boundary if needed. It returns io.ErrUnexpectedEOF
// if a fresh word is needed but fewer than two bytes remain in the buffer.
//
// numBits must be at most 16; violating this corrupts stream alignment for
// every later read, so it panics rather than truncating silently.
func (b *Bitstream) ReadBits(numBits uint8) (uint16, error) {
	value, next, err := b.extract(numBits, false)
	if err != nil {
		return 0, err
	}
	*b = next
	return value, nil
}

// PeekBits returns the next numBits bits without advancing the cursor.
// Unlike ReadBits it never fails: a decoder may speculatively peek a maximal
// code length near the end of a chunk, so bytes past the end of the buffer
// are treated as zero.
//
// numBits must be at most 16, as with ReadBits.
func (b *Bitstream) PeekBits(numBits uint8) uint16 {
	value, _, _ := b.extract(numBits, true)
	return value
}

// extract computes the next numBits bits and the cursor state after
// consuming them, without committing anything. Mutating reads commit the
// returned state; peeks discard it. With pad set, missing trailing bytes
// are read as zero instead of failing.
func (b *Bitstream) extract(numBits uint8, pad bool) (uint16, Bitstream, error) {
	if numBits > 16 {
		panic(fmt.Sprintf("bitstream: invalid `numBits`; expected: <= 16, given: %d", numBits))
	}

	next := *b
	if numBits <= next.remaining {
		next.remaining -= numBits
		next.word = bits.RotateLeft16(next.word, int(numBits))
		return next.word & lowMask(numBits), next, nil
	}

	// The value spans two words: take the remaining high bits of the
	// current word, then the rest from the front of the next one. The
	// earlier fragment lands in the high position.
	hi := bits.RotateLeft16(next.word, int(next.remaining)) & lowMask(next.remaining)
	needed := numBits - next.remaining

	switch {
	case len(next.buffer) >= 2:
		next.word = binary.LittleEndian.Uint16(next.buffer)
		next.buffer = next.buffer[2:]
	case pad && len(next.buffer) == 1:
		next.word = uint16(next.buffer[0])
		next.buffer = nil
	case pad:
		next.word = 0
	default:
		return 0, *b, io.ErrUnexpectedEOF
	}

	next.remaining = 16 - needed
	next.word = bits.RotateLeft16(next.word, int(needed))
	lo := next.word & lowMask(needed)

	// hi<<needed overflows uint16 when needed == 16, but then hi == 0.
	return uint16(uint32(hi)<<needed) | lo, next, nil
}

// ReadUint16LE reads a 16-bit value that was stored as a little-endian
// integer inside the bit-packed stream.
func (b *Bitstream) ReadUint16LE() (uint16, error) {
	value, err := b.ReadBits(16)
	if err != nil {
		return 0, err
	}
	return bits.ReverseBytes16(value), nil
}

// ReadUint32LE reads a 32-bit value stored as two separately byte-swapped
// 16-bit halves, low half first.
func (b *Bitstream) ReadUint32LE() (uint32, error) {
	lo, err := b.ReadUint16LE()
	if err != nil {
		return 0, err
	}
	hi, err := b.ReadUint16LE()
	if err != nil {
		return 0, err
	}
	return uint32(hi)<<16 | uint32(lo), nil
}

// ReadUint24BE reads a 24-bit value stored as a plain big-endian-ordered bit
// run, with no byte swap.
func (b *Bitstream) ReadUint24BE() (uint32, error) {
	hi, err := b.ReadBits(16)
	if err != nil {
		return 0, err
	}
	lo, err := b.ReadBits(8)
	if err != nil {
		return 0, err
	}
	return uint32(hi)<<8 | uint32(lo), nil
}

// Align discards the unconsumed bits of the current lookahead word, leaving
// the cursor on a 16-bit boundary. Chunks are padded with up to 15 zero bits
// to realign the stream on such a boundary before the next block.
func (b *Bitstream) Align() {
	b.remaining = 0
}

// Remaining returns the number of unconsumed bits in the current lookahead
// word.
func (b *Bitstream) Remaining() uint8 {
	return b.remaining
}

// IsEmpty reports whether the stream has no further data: the buffer holds
// no more whole words and every bit left in the lookahead word is zero.
//
// The trailing-zeros check models the chunk padding rule: the stream is
// padded with up to 15 zero bits to realign on a 16-bit boundary. Without an
// externally supplied expected length, genuine zero-valued trailing data is
// indistinguishable from that padding.
func (b *Bitstream) IsEmpty() bool {
	return len(b.buffer) == 0 && b.PeekBits(b.remaining) == 0
}
