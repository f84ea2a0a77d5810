package frash

import "fmt"

// EncodeBits returns the 7 bit big-endian encoding of every byte of input,
// concatenated in input order. The result has exactly BitsPerChar*len(input)
// elements.
//
// Bytes above MaxASCII are rejected with ErrNonASCII rather than truncated.
func EncodeBits(input []byte) ([]uint8, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}
	bits := make([]uint8, 0, BitsPerChar*len(input))
	for i, c := range input {
		if c > MaxASCII {
			return nil, fmt.Errorf("%w: byte 0x%02x at offset %d", ErrNonASCII, c, i)
		}
		for shift := BitsPerChar - 1; shift >= 0; shift-- {
			bits = append(bits, (c>>uint(shift))&1)
		}
	}
	return bits, nil
}
