package modem

import (
	"fmt"
	"strings"
)

// BytesToBits expands each byte into 8 bits, most significant bit first.
func BytesToBits(data []byte) []bool {
	bits := make([]bool, 0, len(data)*8)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>i)&1 == 1)
		}
	}
	return bits
}

// BitsToBytes packs bits into bytes, most significant bit first.
// A trailing group of fewer than 8 bits is dropped.
func BitsToBytes(bits []bool) []byte {
	out := make([]byte, 0, len(bits)/8)
	for i := 0; i+8 <= len(bits); i += 8 {
		var b byte
		for j, bit := range bits[i : i+8] {
			if bit {
				b |= 1 << (7 - j)
			}
		}
		out = append(out, b)
	}
	return out
}

func BitString(bits []bool) string {
	var sb strings.Builder
	sb.Grow(len(bits))
	for _, bit := range bits {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// ParseBits reads a string of '0' and '1'. Whitespace is skipped.
func ParseBits(s string) ([]bool, error) {
	bits := make([]bool, 0, len(s))
	for i, r := range s {
		switch r {
		case '0':
			bits = append(bits, false)
		case '1':
			bits = append(bits, true)
		case ' ', '\t', '\n', '\r':
		default:
			return nil, fmt.Errorf("invalid bit %q at offset %d", r, i)
		}
	}
	return bits, nil
}
