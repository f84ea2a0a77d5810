package frash

/*

# Fractal hash primitives (frash)

This package maps an input byte sequence to a fixed length hexadecimal digest
by running a wrapped one-dimensional cellular automaton seeded from the input.

The package is a set of primitives:

- small, composable functions, one per pipeline stage
- explicit bit layouts
- index arithmetic on plain slices
- no logging and no I/O; callers own both

## What the digest is (and is not)

The digest is a *reproducible, visually structured fingerprint*. The same
(input, length) always yields the same digest and the same automaton grid.

The digest is NOT a cryptographic hash. It offers no preimage or collision
resistance and must not be used as a MAC, a commitment or a password hash.

## Pipeline

For an output of `length` hex digits the automaton row width is

	W = 8 * length

which is twice the 4 bits per hex digit that are strictly needed. The
doubling is what defeats the 245a bias described below.

 1. EncodeBits: every input byte becomes 7 bits, big-endian.
 2. FoldSeed: the bit string is repeated (virtually) until it is at least W
    bits long, then folded onto W columns by XOR. This is row 0, the seed.
 3. BuildGrid: rows 1..15 are derived from their predecessor by the rule

	next[j] = 1 if row[j-1] + row[j] + row[j+1] is 1 or 2, else 0

    with wrap-around at both ends of the row.
 4. Shift / SelectRows: shift is the popcount of the seed. The down-sampled
    seed (even columns only) is read as 4 bit groups; group i selects grid
    row (group + shift) mod 16 as the source of output digit i.
 5. AssembleDigest: the selected row is down-sampled and its group i becomes
    hex digit i.

## The 245a bias

Except for the seed, no row of the grid can contain a lone 1: a 1 at column j
with 0 on both sides would require the five cells j-2..j+2 of the previous row
to be uniform, which forces column j to 0. Read directly, the nibbles 0010,
0100, 0101 and 1010 (hex 2, 4, 5, a) could therefore never be produced.
Taking only the even columns breaks the adjacency and restores those digits.

## Worked example

"HELLO" on 2 digits: W = 16, the 35 input bits fold to

	0001010111011111

The seed has 10 ones, so shift = 10. Down-sampled, the seed reads 0000 1011,
selecting rows (0+10)%16 = 10 and (11+10)%16 = 5. Row 10 down-sampled starts
with 1001 and row 5 down-sampled ends with 0101, giving "95".

*/
