package combinatorics

// tableSize is the dimension of the precomputed Pascal's-triangle table,
// matching the original's kNumPrecompute = 100.
const tableSize = 100

// Cache answers choose(n, k) queries, using a precomputed table for small
// arguments and an O(k) iterative recurrence otherwise.
type Cache struct {
	table [tableSize][tableSize]Count
}

// NewCache builds the Pascal's-triangle table once.
func NewCache() *Cache {
	c := &Cache{}
	for n := 0; n < tableSize; n++ {
		for k := 0; k <= n; k++ {
			if k == 0 || k == n {
				c.table[n][k] = oneCount
			} else {
				c.table[n][k] = c.table[n-1][k-1].Add(c.table[n-1][k])
			}
		}
	}
	return c
}

// Choose returns C(n, k), the number of k-element subsets of an n-element
// set. Precondition: n >= 0, k >= 0.
func (c *Cache) Choose(n, k int) Count {
	if k > n {
		return zeroCount
	}
	if k == 0 || k == n {
		return oneCount
	}
	if n < tableSize && k < tableSize {
		return c.table[n][k]
	}
	return compute(n, k)
}

// compute evaluates C(n, k) iteratively via k' = min(k, n-k) multiplications
// and exact divisions, relying on the fact that result*(n-(k'-i)) is always
// an exact multiple of i at step i. The common factor of the multiplier and
// i is cancelled first, so the division happens before the multiplication
// and no intermediate value exceeds C(n, k').
func compute(n, k int) Count {
	kPrime := k
	if n-k < kPrime {
		kPrime = n - k
	}
	result := oneCount
	for i := 1; i <= kPrime; i++ {
		m, d := int64(n-(kPrime-i)), int64(i)
		g, r := m, d
		for r != 0 {
			g, r = r, g%r
		}
		result = result.DivSmall(d / g)
		result = result.MulSmall(m / g)
	}
	return result
}
