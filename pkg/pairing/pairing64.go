package pairing

import "math/bits"

// Pair64 is the fixed-width variant of Pair. It encodes (a, b) into a uint64
// using 128-bit intermediates, so every pair whose encoding fits in 64 bits
// is accepted; anything larger fails fast with ErrOutOfRange rather than
// wrapping silently.
func Pair64(a, b uint64) (uint64, error) {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, errorf("Pair64", "%w: a+b overflows", ErrOutOfRange)
	}

	// t = s(s+1)/2, halving the even factor first so the product itself
	// never needs more than 128 bits.
	var hi, lo uint64
	if s&1 == 0 {
		hi, lo = bits.Mul64(s>>1, s+1)
	} else {
		hi, lo = bits.Mul64(s, s>>1+1)
	}

	lo, carry = bits.Add64(lo, b, 0)
	if hi+carry != 0 {
		return 0, errorf("Pair64", "%w: encoding %d and %d needs more than 64 bits", ErrOutOfRange, a, b)
	}
	return lo, nil
}

// Depair64 is the fixed-width variant of Depair. The inverse is computed with
// an exact integer square root of the 128-bit value 8z+1, so every uint64
// round-trips: Depair64(Pair64(a, b)) == (a, b) whenever Pair64 succeeds.
func Depair64(z uint64) (a, b uint64) {
	// m = 8z + 1 as a 128-bit (hi, lo) pair. The low three bits of z shift
	// out into hi, and the +1 cannot carry because lo's low bits are zero.
	hi := z >> 61
	lo := z<<3 | 1

	r := isqrt128(hi, lo)
	w := (r - 1) >> 1

	// t = w(w+1)/2 <= z, so it fits in a uint64.
	var t uint64
	if w&1 == 0 {
		t = (w >> 1) * (w + 1)
	} else {
		t = w * (w>>1 + 1)
	}

	b = z - t
	a = w - b
	return a, b
}

// isqrt128 returns floor(sqrt(hi*2^64 + lo)) for hi < 8, i.e. for the 67-bit
// radicand 8z+1. Binary search over the 34-bit root, comparing squares in
// 128 bits; no floating point is involved, so the result is exact.
func isqrt128(hi, lo uint64) uint64 {
	low, high := uint64(0), uint64(1)<<34
	for high-low > 1 {
		mid := (low + high) >> 1
		sqHi, sqLo := bits.Mul64(mid, mid)
		if sqHi < hi || (sqHi == hi && sqLo <= lo) {
			low = mid
		} else {
			high = mid
		}
	}
	return low
}
