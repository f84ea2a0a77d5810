package frash

// Shift returns the row rotation offset for a grid seeded with seed: the
// number of ones in the seed. Only Shift(seed) % Rows affects selection.
func Shift(seed Row) int {
	return PopCount(seed)
}

// SelectRows returns, for every output digit i, the index of the grid row
// supplying that digit:
//
//	(Nibble(reducedSeed, i) + shift) % Rows
//
// reducedSeed is the down-sampled seed row. It is passed in already reduced so
// that selection never reads from, or writes to, the grid it indexes.
func SelectRows(reducedSeed Row, shift int) []int {
	rows := make([]int, len(reducedSeed)/NibbleBits)
	offset := shift % Rows
	if offset < 0 {
		offset += Rows
	}
	for i := range rows {
		rows[i] = (int(Nibble(reducedSeed, i)) + offset) % Rows
	}
	return rows
}
