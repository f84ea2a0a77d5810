package frash

import "errors"

const (
	// Rows is the fixed number of rows in a Grid, the seed row included.
	Rows = 16

	// BitsPerChar is the width each input byte is encoded on.
	BitsPerChar = 7

	// NibbleBits is the number of bits rendered as one hex digit.
	NibbleBits = 4

	// WidthFactor is the automaton row width per output digit. It is twice
	// NibbleBits so that down-sampling leaves exactly one nibble per digit.
	WidthFactor = 2 * NibbleBits

	DefaultLength    = 32
	DefaultMaxLength = 1 << 16

	// MaxASCII is the largest byte value accepted by EncodeBits.
	MaxASCII = 0x7f
)

var (
	ErrBadLength      = errors.New("frash: length must be positive")
	ErrLengthTooLarge = errors.New("frash: length exceeds configured maximum")
	ErrBadMaxLength   = errors.New("frash: max length must be positive")
	ErrEmptyInput     = errors.New("frash: input is empty")
	ErrNonASCII       = errors.New("frash: input byte outside 7-bit ASCII")

	ErrBadWidth    = errors.New("frash: row width must be a positive multiple of 8")
	ErrBadRowBytes = errors.New("frash: packed row size does not match width")
)

// Row is one automaton generation. Each element is a single bit, 0 or 1.
// Rows are circular: column W wraps to column 0.
type Row []uint8

// Grid is the seed row followed by its 15 descendants.
type Grid [Rows]Row

// At returns the bit at column i, wrapping in both directions.
func (r Row) At(i int) uint8 {
	w := len(r)
	i %= w
	if i < 0 {
		i += w
	}
	return r[i]
}

// Width returns the number of columns in r.
func (r Row) Width() int { return len(r) }

// Clone returns an independent copy of r.
func (r Row) Clone() Row {
	if r == nil {
		return nil
	}
	cpy := make(Row, len(r))
	copy(cpy, r)
	return cpy
}

// String renders r as a string of '0' and '1'.
func (r Row) String() string {
	b := make([]byte, len(r))
	for i, v := range r {
		b[i] = '0' + v
	}
	return string(b)
}

// Width returns the row width of g, which is the same for every row.
func (g Grid) Width() int { return len(g[0]) }
