package frash

import "math"

// MaxWidthLength is the largest length whose row width fits in an int.
const MaxWidthLength = math.MaxInt / WidthFactor

// CheckLength validates a digest length against maxLength. Lengths above
// MaxWidthLength are rejected whatever maxLength says.
func CheckLength(length int, maxLength int) error {
	if maxLength <= 0 {
		return ErrBadMaxLength
	}
	if length <= 0 {
		return ErrBadLength
	}
	if length > maxLength || length > MaxWidthLength {
		return ErrLengthTooLarge
	}
	return nil
}

// WidthBits returns the automaton row width for a digest of length digits:
//
//	W = WidthFactor * length
//
// The caller is responsible for ensuring length > 0. CheckLength can be used
// to check this.
func WidthBits(length int) int {
	return WidthFactor * length
}

// CheckWidth validates a row width as produced by WidthBits.
func CheckWidth(width int) error {
	if width <= 0 || width%WidthFactor != 0 {
		return ErrBadWidth
	}
	return nil
}

// ExpandedBits returns the length of the repeated message used by FoldSeed:
// the smallest multiple of n that is >= width, and never less than n.
func ExpandedBits(n int, width int) int {
	if n <= 0 {
		return 0
	}
	return ((width + n - 1) / n) * n
}

// PackedRowBytes returns ceil(width/8).
func PackedRowBytes(width int) int {
	return (width + 7) / 8
}
