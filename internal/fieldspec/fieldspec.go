// Package fieldspec parses the read scripts accepted by lzxdump into a
// sequence of bitstream operations.
package fieldspec

import (
	"fmt"
	"strconv"
	"strings"
)

type Kind int

const (
	// KindBits is a plain MSB-first bit run of Width bits.
	KindBits Kind = iota
	KindBit
	KindUint16LE
	KindUint32LE
	KindUint24BE
	KindAlign
)

// Field is one operation of a read script.
type Field struct {
	Kind  Kind
	Width uint8 // set for KindBits only
}

// Bits returns the number of bits the field consumes, not counting the
// variable discard of an align.
func (f Field) Bits() int {
	switch f.Kind {
	case KindBits:
		return int(f.Width)
	case KindBit:
		return 1
	case KindUint16LE:
		return 16
	case KindUint32LE:
		return 32
	case KindUint24BE:
		return 24
	default:
		return 0
	}
}

func (f Field) String() string {
	switch f.Kind {
	case KindBits:
		return strconv.Itoa(int(f.Width))
	case KindBit:
		return "bit"
	case KindUint16LE:
		return "u16"
	case KindUint32LE:
		return "u32"
	case KindUint24BE:
		return "u24"
	case KindAlign:
		return "align"
	default:
		return "unknown"
	}
}

// Parse parses a comma-separated read script. Each token is either a decimal
// bit width in 1..16, or one of: bit, u16, u32, u24, align.
func Parse(s string) ([]Field, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("invalid `fields`; expected: at least one token, given: %q", s)
	}

	tokens := strings.Split(s, ",")
	fields := make([]Field, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		switch token {
		case "bit":
			fields = append(fields, Field{Kind: KindBit})
		case "u16":
			fields = append(fields, Field{Kind: KindUint16LE})
		case "u32":
			fields = append(fields, Field{Kind: KindUint32LE})
		case "u24":
			fields = append(fields, Field{Kind: KindUint24BE})
		case "align":
			fields = append(fields, Field{Kind: KindAlign})
		default:
			width, err := strconv.Atoi(token)
			if err != nil || width < 1 || width > 16 {
				return nil, fmt.Errorf("invalid `fields` token; expected: bit, u16, u32, u24, align or a width in 1..16, given: %q", token)
			}
			fields = append(fields, Field{Kind: KindBits, Width: uint8(width)})
		}
	}

	return fields, nil
}
