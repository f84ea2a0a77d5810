package frash

import "strings"

const hexDigits = "0123456789abcdef"

// AssembleDigest renders digit i of the digest from the down-sampled grid row
// rows[i], taking its 4 bit group i. The digest has len(rows) characters.
//
// The caller is responsible for every rows[i] being in [0, Rows) and for the
// grid width covering len(rows) digits. SelectRows output satisfies both.
func AssembleDigest(g Grid, rows []int) string {
	var reduced [Rows]Row
	var sb strings.Builder
	sb.Grow(len(rows))
	for i, r := range rows {
		if reduced[r] == nil {
			reduced[r] = Downsample(g[r])
		}
		sb.WriteByte(hexDigits[Nibble(reduced[r], i)])
	}
	return sb.String()
}
