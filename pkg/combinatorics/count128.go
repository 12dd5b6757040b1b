//go:build count128

package combinatorics

import (
	"math/big"
	"math/bits"
)

// Count128 is a hand-rolled 128-bit unsigned integer, selected in place of
// Count64 by the "count128" build tag for graphs whose clique counts would
// overflow 64 bits. Built directly on math/bits' carry-propagating
// primitives (Add64/Mul64/Div64) rather than math/big, since every
// operation the binomial recurrence needs (add, multiply by a small int,
// divide by a small int) is a fixed-width, allocation-free word operation —
// exactly the niche math/bits exists for, and the same "no off-the-shelf
// 128-bit integer in the ecosystem" gap the original's "unsigned __int128"
// compiler extension fills in C++.
type Count128 struct {
	hi, lo uint64
}

func newZero() Count { return Count128{} }
func newOne() Count  { return Count128{lo: 1} }

// NewCount constructs a Count128 from a small non-negative int.
func NewCount(v int64) Count { return Count128{lo: uint64(v)} }

func (c Count128) Add(other Count) Count {
	o := other.(Count128)
	lo, carry := bits.Add64(c.lo, o.lo, 0)
	hi, _ := bits.Add64(c.hi, o.hi, carry)
	return Count128{hi: hi, lo: lo}
}

// MulSmall multiplies by a small non-negative factor. Overflow beyond 128
// bits wraps, matching Count64's wraparound uint64 semantics: no runtime
// overflow check.
func (c Count128) MulSmall(factor int64) Count {
	m := uint64(factor)
	loHi, lo := bits.Mul64(c.lo, m)
	_, hiLo := bits.Mul64(c.hi, m)
	hi := loHi + hiLo
	return Count128{hi: hi, lo: lo}
}

// DivSmall divides by a small divisor, assumed by the caller to divide
// evenly (the binomial recurrence only ever divides an exact multiple).
// Implemented as two chained 128-bit-by-64-bit hardware divisions: first
// splitting off hi/divisor, then folding its remainder (necessarily smaller
// than divisor) back in front of lo for the second division.
func (c Count128) DivSmall(divisor int64) Count {
	d := uint64(divisor)
	qHi, rHi := bits.Div64(0, c.hi, d)
	qLo, _ := bits.Div64(rHi, c.lo, d)
	return Count128{hi: qHi, lo: qLo}
}

func (c Count128) IsZero() bool { return c.hi == 0 && c.lo == 0 }

// String renders via math/big only for decimal formatting; the 128-bit
// arithmetic itself never touches math/big.
func (c Count128) String() string {
	hi := new(big.Int).SetUint64(c.hi)
	hi.Lsh(hi, 64)
	lo := new(big.Int).SetUint64(c.lo)
	return hi.Add(hi, lo).String()
}

// PrintWidth is the right-aligned field width the output table uses for
// the count column in the 128-bit build.
const PrintWidth = 39
