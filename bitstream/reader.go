package bitstream

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"
)

// Reader yields the bits of an io.Reader in the bit-packed word convention,
// for callers that stream chunk data instead of holding it in memory. It has
// no peek: peeking past what was read would require unbounded buffering of
// the source. Decoders that need lookahead should use a Bitstream over the
// chunk bytes instead.
type Reader struct {
	src io.Reader

	word      uint16
	remaining uint8
	scratch   [2]byte
}

// NewReader returns a new Reader consuming words from src.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: src}
}

// advance loads the next little-endian word from the source. It returns
// io.EOF on a clean end of input and io.ErrUnexpectedEOF when the input ends
// between the two bytes of a word.
func (r *Reader) advance() error {
	if _, err := io.ReadFull(r.src, r.scratch[:]); err != nil {
		return err
	}
	r.word = binary.LittleEndian.Uint16(r.scratch[:])
	r.remaining = 16
	return nil
}

// ReadBit returns the next single bit (0 or 1).
func (r *Reader) ReadBit() (uint16, error) {
	if r.remaining == 0 {
		if err := r.advance(); err != nil {
			return 0, err
		}
	}

	r.remaining--
	r.word = bits.RotateLeft16(r.word, 1)
	return r.word & 1, nil
}

// ReadBits returns the next numBits bits packed into a uint16, with the
// earliest-read bit in the most significant position. It returns io.EOF only
// when the input ends exactly on a word boundary with no bits consumed
// towards the value; an end of input that splits a value or a word surfaces
// as io.ErrUnexpectedEOF.
//
// numBits must be at most 16, as with Bitstream.ReadBits.
func (r *Reader) ReadBits(numBits uint8) (uint16, error) {
	if numBits > 16 {
		panic(fmt.Sprintf("bitstream: invalid `numBits`; expected: <= 16, given: %d", numBits))
	}

	if numBits <= r.remaining {
		r.remaining -= numBits
		r.word = bits.RotateLeft16(r.word, int(numBits))
		return r.word & lowMask(numBits), nil
	}

	avail := r.remaining
	hi := bits.RotateLeft16(r.word, int(avail)) & lowMask(avail)
	needed := numBits - avail

	if err := r.advance(); err != nil {
		if avail > 0 && err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, err
	}

	r.remaining -= needed
	r.word = bits.RotateLeft16(r.word, int(needed))
	lo := r.word & lowMask(needed)

	return uint16(uint32(hi)<<needed) | lo, nil
}

// ReadUint16LE reads a 16-bit value stored as a little-endian integer inside
// the bit-packed stream.
func (r *Reader) ReadUint16LE() (uint16, error) {
	value, err := r.ReadBits(16)
	if err != nil {
		return 0, err
	}
	return bits.ReverseBytes16(value), nil
}

// ReadUint32LE reads a 32-bit value stored as two separately byte-swapped
// 16-bit halves, low half first.
func (r *Reader) ReadUint32LE() (uint32, error) {
	lo, err := r.ReadUint16LE()
	if err != nil {
		return 0, err
	}
	hi, err := r.ReadUint16LE()
	if err != nil {
		return 0, err
	}
	return uint32(hi)<<16 | uint32(lo), nil
}

// ReadUint24BE reads a 24-bit value stored as a plain big-endian-ordered bit
// run, with no byte swap.
func (r *Reader) ReadUint24BE() (uint32, error) {
	hi, err := r.ReadBits(16)
	if err != nil {
		return 0, err
	}
	lo, err := r.ReadBits(8)
	if err != nil {
		return 0, err
	}
	return uint32(hi)<<8 | uint32(lo), nil
}

// Align discards the unconsumed bits of the current lookahead word, leaving
// the cursor on a 16-bit boundary.
func (r *Reader) Align() {
	r.remaining = 0
}

// Remaining returns the number of unconsumed bits in the current lookahead
// word.
func (r *Reader) Remaining() uint8 {
	return r.remaining
}
