package frash

// PackRow packs r into bytes, MSB0: column 0 is the most significant bit of
// byte 0. Trailing bits of the last byte are zero.
func PackRow(r Row) []byte {
	b := make([]byte, PackedRowBytes(len(r)))
	for i, v := range r {
		if v != 0 {
			b[i>>3] |= 0x80 >> uint(i&7)
		}
	}
	return b
}

// UnpackRow is the inverse of PackRow for a row of width columns.
func UnpackRow(b []byte, width int) (Row, error) {
	if width < 0 || len(b) != PackedRowBytes(width) {
		return nil, ErrBadRowBytes
	}
	r := make(Row, width)
	for i := range r {
		r[i] = (b[i>>3] >> (7 - uint(i&7))) & 1
	}
	return r, nil
}
