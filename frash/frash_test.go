package frash

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashKnownAnswers(t *testing.T) {
	tests := []struct {
		input  string
		length int
		want   string
	}{
		{"HELLO", 2, "95"},
		{"HELLO", 32, "9c16af7827cbf3182ef40977effe7332"},
		{"Hello, World!", 32, "ba6076aec7857309fa5ca1b66066d26b"},
		{"Hello, World!", 8, "ccec4cad"},
		{"Hello", 32, "4ce44781d154ecf1f62b0fd3c7746e65"},
		{"Hfllo", 32, "f72b240286013fe80f2401d00cc80f90"},
		{"a", 1, "f"},
		{"a", 32, "20f500000f500000f500000f500000f5"},
		{"x", 4, "c525"},
		{
			"The quick brown fox jumps over the lazy dog", 64,
			"5dcc4c37343e9451755bfc9d0244791f3cc556eec454147a3b5d063824141e48",
		},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Hash([]byte(tt.input), WithLength(tt.length))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHashDefaultLength(t *testing.T) {
	got, err := Hash([]byte("Hello, World!"))
	require.NoError(t, err)
	assert.Equal(t, "ba6076aec7857309fa5ca1b66066d26b", got)
	assert.Len(t, got, DefaultLength)
}

func TestComputeHELLO(t *testing.T) {
	res, err := Compute([]byte("HELLO"), WithLength(2))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Length)
	assert.Equal(t, "95", res.Digest)
	assert.Equal(t, 10, res.Shift)
	assert.Equal(t, []int{10, 5}, res.Rows)
	assert.Equal(t, 16, res.Grid.Width())
	for i, want := range helloGrid {
		assert.Equal(t, want, res.Grid[i].String(), "row %d", i)
	}
}

func TestComputeDeterministic(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for n := 0; n < 50; n++ {
		input := randomASCII(rng, 1+rng.IntN(64))
		length := 1 + rng.IntN(64)

		a, err := Compute(input, WithLength(length))
		require.NoError(t, err)
		b, err := Compute(input, WithLength(length))
		require.NoError(t, err)

		require.Equal(t, a, b)
		require.Len(t, a.Digest, length)
		require.Equal(t, PopCount(a.Grid[0]), a.Shift)
		for _, row := range a.Grid {
			require.Len(t, row, WidthBits(length))
		}
	}
}

// Down-sampling exists so that 2, 4, 5 and a can appear in digests even
// though no interior row holds a lone 1.
func TestDigestAlphabetIsComplete(t *testing.T) {
	seen := map[rune]bool{}
	rng := rand.New(rand.NewPCG(0x245a, 1))
	for n := 0; n < 200; n++ {
		got, err := Hash(randomASCII(rng, 1+rng.IntN(32)), WithLength(32))
		require.NoError(t, err)
		for _, c := range got {
			require.True(t, strings.ContainsRune(hexDigits, c), "digit %q", c)
			seen[c] = true
		}
	}
	for _, c := range "245a" {
		assert.True(t, seen[c], "digit %q never produced", c)
	}
}

func TestHashSensitivity(t *testing.T) {
	a, err := Hash([]byte("Hello"))
	require.NoError(t, err)
	b, err := Hash([]byte("Hfllo"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestHashRejects(t *testing.T) {
	_, err := Hash([]byte(""), WithLength(32))
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = Hash([]byte("x"), WithLength(0))
	require.ErrorIs(t, err, ErrBadLength)

	_, err = Hash([]byte("x"), WithLength(-3))
	require.ErrorIs(t, err, ErrBadLength)

	_, err = Hash([]byte("x"), WithLength(65), WithMaxLength(64))
	require.ErrorIs(t, err, ErrLengthTooLarge)

	// The row width would overflow int and fold to a short digest.
	_, err = Hash([]byte("x"), WithLength(math.MaxInt/4+1), WithMaxLength(math.MaxInt))
	require.ErrorIs(t, err, ErrLengthTooLarge)

	_, err = Hash([]byte("x"), WithLength(MaxWidthLength+1), WithMaxLength(math.MaxInt))
	require.ErrorIs(t, err, ErrLengthTooLarge)

	_, err = Hash([]byte("x"), WithMaxLength(0))
	require.ErrorIs(t, err, ErrBadMaxLength)

	_, err = Hash([]byte("caf\xc3\xa9"))
	require.ErrorIs(t, err, ErrNonASCII)

	res, err := Compute([]byte(""), WithLength(0))
	require.ErrorIs(t, err, ErrBadLength)
	assert.Equal(t, Result{}, res)
}

func TestHasher(t *testing.T) {
	h := New(WithLength(2))
	assert.Equal(t, Config{Length: 2, MaxLength: DefaultMaxLength}, h.Config())

	got, err := h.Hash([]byte("HELLO"))
	require.NoError(t, err)
	assert.Equal(t, "95", got)

	res, err := h.Compute([]byte("HELLO"))
	require.NoError(t, err)
	assert.Equal(t, got, res.Digest)

	_, err = h.Hash(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestWithConfig(t *testing.T) {
	cfg := Config{Length: 4, MaxLength: 8}
	h := New(WithConfig(cfg))
	assert.Equal(t, cfg, h.Config())

	h = New(WithConfig(cfg), WithLength(8))
	assert.Equal(t, Config{Length: 8, MaxLength: 8}, h.Config())

	got, err := New(WithConfig(cfg)).Hash([]byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "c525", got)
}
