package frash

// RuleOutput returns the next state for a three cell neighborhood encoded as
// previous*4 + same*2 + next:
//
//	000 001 010 011 100 101 110 111
//	 0   1   1   1   1   1   1   0
//
// Only the number of ones matters: a uniform neighborhood produces 0,
// anything else produces 1.
func RuleOutput(neighborhood uint8) uint8 {
	switch neighborhood & 7 {
	case 0, 7:
		return 0
	default:
		return 1
	}
}

// NextRow derives the next generation from prev. prev is not modified.
func NextRow(prev Row) Row {
	next := make(Row, len(prev))
	for j := range next {
		total := prev.At(j-1) + prev[j] + prev.At(j+1)
		if total == 1 || total == 2 {
			next[j] = 1
		}
	}
	return next
}

// BuildGrid evolves seed through Rows-1 generations. Row 0 of the result is a
// copy of seed.
func BuildGrid(seed Row) Grid {
	var g Grid
	g[0] = seed.Clone()
	for r := 1; r < Rows; r++ {
		g[r] = NextRow(g[r-1])
	}
	return g
}
