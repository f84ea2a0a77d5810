package frash

// PopCount returns the number of ones in r.
func PopCount(r Row) int {
	n := 0
	for _, v := range r {
		n += int(v & 1)
	}
	return n
}

// Downsample returns the even columns of r: 0, 2, 4, ... The result has
// len(r)/2 columns.
func Downsample(r Row) Row {
	out := make(Row, len(r)/2)
	for i := range out {
		out[i] = r[2*i]
	}
	return out
}

// Nibble reads the 4 bit group i of r, MSB first, as a value in 0..15.
// Column indices wrap.
func Nibble(r Row, i int) uint8 {
	var v uint8
	for k := 0; k < NibbleBits; k++ {
		v = v<<1 | r.At(NibbleBits*i+k)
	}
	return v
}

// HasLoneOne reports whether r contains a 1 with a 0 on both sides, with
// wrap-around.
func HasLoneOne(r Row) bool {
	for j := range r {
		if r[j] == 1 && r.At(j-1) == 0 && r.At(j+1) == 0 {
			return true
		}
	}
	return false
}
