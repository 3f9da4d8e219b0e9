// Package pairing encodes pairs of non-negative integers as single integer
// values using the Cantor pairing function, and decodes them back.
//
// The Cantor pairing function enumerates the integer lattice along
// anti-diagonals of constant sum:
//
//	z = (a+b)(a+b+1)/2 + b
//
// The mapping is a bijection between ordered pairs of non-negative integers
// and the non-negative integers, which makes it useful for composite keys,
// spatial indexing, and anywhere two identifiers must collapse into one
// reversible, sortable value.
//
// # Codecs
//
// Two codecs are provided:
//
//   - Pair / Depair operate on *big.Int with no upper bound. The inverse uses
//     an exact integer square root (big.Int.Sqrt), so the round trip
//     Depair(Pair(a, b)) == (a, b) holds for all inputs. There is no
//     floating-point precision ceiling.
//   - Pair64 / Depair64 operate on uint64. Pair64 fails with ErrOutOfRange
//     when the encoding does not fit in 64 bits; Depair64 is total and exact
//     over the full uint64 range.
//
// # Usage
//
//	z, err := pairing.Pair(big.NewInt(22), big.NewInt(33))
//	if err != nil {
//	    // a or b was negative
//	}
//	a, b, err := pairing.Depair(z)
//
// # Domain
//
// Negative integers are outside the domain of the scheme. Both codecs reject
// them immediately with ErrNegativeInput; there is no clamping and no partial
// result.
//
// All operations are pure and allocate their results, so the package is safe
// for concurrent use without coordination.
package pairing
