package pairing

import "math/big"

var one = big.NewInt(1)

// Pair encodes the ordered pair (a, b) as a single non-negative integer using
// the Cantor pairing function:
//
//	z = (a+b)(a+b+1)/2 + b
//
// The mapping is a bijection from pairs of non-negative integers onto the
// non-negative integers: pairs are enumerated along anti-diagonals of constant
// a+b, offset by b within the diagonal. Pair never mutates its arguments and
// returns a freshly allocated value.
//
// Both arguments must be non-negative; otherwise Pair fails with
// ErrNegativeInput. Nil arguments fail with ErrNilInput.
func Pair(a, b *big.Int) (*big.Int, error) {
	if a == nil || b == nil {
		return nil, errorf("Pair", "%w", ErrNilInput)
	}
	if a.Sign() < 0 {
		return nil, errorf("Pair", "%w: a = %s", ErrNegativeInput, a)
	}
	if b.Sign() < 0 {
		return nil, errorf("Pair", "%w: b = %s", ErrNegativeInput, b)
	}

	// t = s(s+1)/2 where s = a+b. The product of two consecutive integers
	// is even, so the halving is exact.
	s := new(big.Int).Add(a, b)
	t := new(big.Int).Add(s, one)
	t.Mul(t, s)
	t.Rsh(t, 1)

	return t.Add(t, b), nil
}

// Depair recovers the unique pair (a, b) with Pair(a, b) == z.
//
// The diagonal index w = floor((sqrt(8z+1)-1)/2) is recovered with an exact
// integer square root, so the round trip Depair(Pair(a, b)) == (a, b) holds
// for all non-negative inputs with no precision ceiling. Depair never mutates
// its argument.
//
// z must be non-negative; otherwise Depair fails with ErrNegativeInput. A nil
// argument fails with ErrNilInput.
func Depair(z *big.Int) (a, b *big.Int, err error) {
	if z == nil {
		return nil, nil, errorf("Depair", "%w", ErrNilInput)
	}
	if z.Sign() < 0 {
		return nil, nil, errorf("Depair", "%w: z = %s", ErrNegativeInput, z)
	}

	// w = floor((sqrt(8z+1) - 1) / 2)
	w := new(big.Int).Lsh(z, 3)
	w.Add(w, one)
	w.Sqrt(w)
	w.Sub(w, one)
	w.Rsh(w, 1)

	// t = w(w+1)/2 is the first index on diagonal w.
	t := new(big.Int).Add(w, one)
	t.Mul(t, w)
	t.Rsh(t, 1)

	b = new(big.Int).Sub(z, t)
	a = w.Sub(w, b)
	return a, b, nil
}
