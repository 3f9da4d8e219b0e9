package pairing_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/perrygeo/pairing-go/pkg/pairing"
)

func TestPair64RoundTrip(t *testing.T) {
	pairs := [][2]uint64{
		{0, 0},
		{22, 33},
		{1 << 8, 1 << 8},
		{1 << 16, 1 << 16},
		{1 << 30, 1},
		{0, 1 << 31},
		{2999999999, 3000000000},
	}

	for _, p := range pairs {
		z, err := pairing.Pair64(p[0], p[1])
		require.NoError(t, err, "Pair64(%d, %d)", p[0], p[1])

		a, b := pairing.Depair64(z)
		require.Equal(t, p[0], a, "Depair64(%d)", z)
		require.Equal(t, p[1], b, "Depair64(%d)", z)
	}
}

func TestPair64MatchesBigCodec(t *testing.T) {
	pairs := [][2]uint64{
		{0, 0},
		{22, 33},
		{1 << 16, 1 << 16},
		{12345678901, 98765432109},
		{1<<32 - 1, 1<<32 - 1},
	}

	for _, p := range pairs {
		z64, err := pairing.Pair64(p[0], p[1])
		require.NoError(t, err)

		zBig, err := pairing.Pair(new(big.Int).SetUint64(p[0]), new(big.Int).SetUint64(p[1]))
		require.NoError(t, err)
		require.True(t, zBig.IsUint64())
		require.Equal(t, zBig.Uint64(), z64, "Pair64(%d, %d)", p[0], p[1])
	}
}

func TestPair64OutOfRange(t *testing.T) {
	// a+b itself overflows.
	_, err := pairing.Pair64(math.MaxUint64, 1)
	require.ErrorIs(t, err, pairing.ErrOutOfRange)

	// a+b fits but the encoding does not.
	_, err = pairing.Pair64(1<<52, 1<<52)
	require.ErrorIs(t, err, pairing.ErrOutOfRange)

	// The arbitrary-precision codec handles the same pair exactly.
	big52 := new(big.Int).Lsh(big.NewInt(1), 52)
	z, err := pairing.Pair(big52, big52)
	require.NoError(t, err)
	a, b, err := pairing.Depair(z)
	require.NoError(t, err)
	require.Zero(t, a.Cmp(big52))
	require.Zero(t, b.Cmp(big52))
}

func TestPair64Ceiling(t *testing.T) {
	// The largest encodable z is MaxUint64 itself. Decoding it and
	// re-encoding must land exactly on the ceiling, and the next pair on
	// either axis must overflow.
	a, b := pairing.Depair64(math.MaxUint64)

	z, err := pairing.Pair64(a, b)
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), z)

	_, err = pairing.Pair64(a+1, b)
	require.ErrorIs(t, err, pairing.ErrOutOfRange)
	_, err = pairing.Pair64(a, b+1)
	require.ErrorIs(t, err, pairing.ErrOutOfRange)
}

func TestDepair64ExhaustiveSmall(t *testing.T) {
	for z := uint64(0); z < 10000; z++ {
		a, b := pairing.Depair64(z)

		back, err := pairing.Pair64(a, b)
		require.NoError(t, err)
		require.Equal(t, z, back, "Depair64(%d) = (%d, %d)", z, a, b)
	}
}

func TestDepair64MatchesBigCodec(t *testing.T) {
	values := []uint64{
		0, 1, 2, 1573, 1 << 20, 1 << 40, 1 << 63, math.MaxUint64,
	}

	for _, z := range values {
		a64, b64 := pairing.Depair64(z)

		aBig, bBig, err := pairing.Depair(new(big.Int).SetUint64(z))
		require.NoError(t, err)
		require.Equal(t, aBig.Uint64(), a64, "Depair64(%d)", z)
		require.Equal(t, bBig.Uint64(), b64, "Depair64(%d)", z)
	}
}

func BenchmarkPair64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := pairing.Pair64(2999999999, 3000000000); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDepair64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		pairing.Depair64(math.MaxUint64)
	}
}
