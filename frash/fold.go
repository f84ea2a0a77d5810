package frash

// FoldSeed folds the encoded message bits onto a row of width columns.
//
// The message is repeated end to end until it is at least width bits long
// (see ExpandedBits), then every column i is the XOR of the expanded bits at
// i, i+width, i+2*width, ... The repetition is never materialized: expanded
// position p reads bits[p % len(bits)].
func FoldSeed(bits []uint8, width int) (Row, error) {
	if len(bits) == 0 {
		return nil, ErrEmptyInput
	}
	if err := CheckWidth(width); err != nil {
		return nil, err
	}

	n := len(bits)
	m := ExpandedBits(n, width)

	seed := make(Row, width)
	for p := 0; p < m; p++ {
		seed[p%width] ^= bits[p%n] & 1
	}
	return seed, nil
}
