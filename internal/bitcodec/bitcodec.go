// Package bitcodec converts between byte buffers and strings of binary
// digits ('0' and '1'), and slices those strings into fixed-width chunks.
package bitcodec

import (
	"fmt"
	"strconv"
	"strings"
)

// BytesToBits renders every byte as 8 binary digits, most significant bit
// first. The result is 8*len(b) characters long.
func BytesToBits(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 8)
	for _, x := range b {
		sb.WriteString(FromUint(uint64(x), 8))
	}
	return sb.String()
}

// Chunks splits bits into successive groups of width digits. The caller
// guarantees len(bits) is a multiple of width; a short tail is returned as is.
func Chunks(bits string, width int) []string {
	if width <= 0 {
		return nil
	}
	chunks := make([]string, 0, (len(bits)+width-1)/width)
	for len(bits) > width {
		chunks = append(chunks, bits[:width])
		bits = bits[width:]
	}
	if bits != "" {
		chunks = append(chunks, bits)
	}
	return chunks
}

// LeftPad prefixes s with '0' until it is width characters long.
func LeftPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// FromUint formats v in base 2, zero-padded to width digits.
func FromUint(v uint64, width int) string {
	return LeftPad(strconv.FormatUint(v, 2), width)
}

// Uint parses a chunk of at most 64 binary digits.
func Uint(chunk string) (uint64, error) {
	v, err := strconv.ParseUint(chunk, 2, 64)
	if err != nil {
		return 0, fmt.Errorf("parse bit chunk: %w", err)
	}
	return v, nil
}

// BitsToBytes regroups bits into bytes. len(bits) must be a multiple of 8.
func BitsToBytes(bits string) ([]byte, error) {
	if len(bits)%8 != 0 {
		return nil, fmt.Errorf("bit string length %d is not a multiple of 8", len(bits))
	}
	out := make([]byte, 0, len(bits)/8)
	for _, chunk := range Chunks(bits, 8) {
		v, err := Uint(chunk)
		if err != nil {
			return nil, err
		}
		out = append(out, byte(v))
	}
	return out, nil
}
