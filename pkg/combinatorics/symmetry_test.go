package combinatorics

import (
	"math/big"
	"testing"
)

// TestChooseSymmetry is property P8: choose(n,k) == choose(n,n-k).
func TestChooseSymmetry(t *testing.T) {
	cache := NewCache()
	for n := 0; n <= 200; n++ {
		for k := 0; k <= n; k++ {
			a := cache.Choose(n, k).String()
			b := cache.Choose(n, n-k).String()
			if a != b {
				t.Errorf("choose(%d,%d)=%s != choose(%d,%d)=%s", n, k, a, n, n-k, b)
			}
		}
	}
}

func TestChooseOutOfRange(t *testing.T) {
	cache := NewCache()
	if !cache.Choose(3, 5).IsZero() {
		t.Errorf("Choose(3,5) should be zero (k > n)")
	}
	if cache.Choose(5, 0).String() != "1" {
		t.Errorf("Choose(5,0) should be 1")
	}
	if cache.Choose(5, 5).String() != "1" {
		t.Errorf("Choose(5,5) should be 1")
	}
}

func TestChooseAgreesWithPascalRecurrence(t *testing.T) {
	cache := NewCache()
	for n := 1; n <= 150; n++ {
		for k := 1; k < n; k++ {
			// Count wraps on overflow with no check, so only coefficients
			// that fit in 64 bits (both builds' common range) are compared.
			if new(big.Int).Binomial(int64(n), int64(k)).BitLen() > 64 {
				continue
			}
			got := cache.Choose(n, k).String()
			want := cache.Choose(n-1, k-1).Add(cache.Choose(n-1, k)).String()
			if got != want {
				t.Errorf("choose(%d,%d)=%s != choose(%d,%d)+choose(%d,%d)=%s", n, k, got, n-1, k-1, n-1, k, want)
			}
		}
	}
}
