// Package combinatorics implements the binomial cache
// describes: a precomputed Pascal's-triangle table for small (n, k) and an
// O(k) iterative fallback for larger arguments, relying on exact integer
// divisibility at each step of the recurrence.
package combinatorics

import "fmt"

// Count is the accumulator/result type for clique counts and binomial
// coefficients. Its concrete representation is chosen at build time: the
// default build backs it with plain uint64; the "count128" build tag swaps
// in a hand-rolled 128-bit unsigned integer (see count128.go) for graphs
// large enough to overflow 64 bits — mirroring the original's
// "#ifdef USE_128" compile-time switch with a Go build tag
// instead of a preprocessor macro.
type Count interface {
	fmt.Stringer

	// Add returns the sum of this Count and other.
	Add(other Count) Count
	// MulSmall returns this Count multiplied by a small (fits in int) factor.
	MulSmall(factor int64) Count
	// DivSmall returns this Count divided by a small factor. The caller
	// guarantees the division is exact (the binomial recurrence only ever
	// divides a running value that is a multiple of the divisor).
	DivSmall(divisor int64) Count
	// IsZero reports whether this Count is zero.
	IsZero() bool
}

// zeroCount and oneCount are the build-selected additive/multiplicative identities,
// provided by count64.go or count128.go depending on build tag.
var (
	zeroCount = newZero()
	oneCount  = newOne()
)
