//go:build !count128

package combinatorics

import (
	"testing"

	"gonum.org/v1/gonum/stat/combin"
)

// TestChooseMatchesGonum cross-checks the binomial cache against gonum's
// independent implementation, run only in the default (64-bit) build where
// the comparison can be done against gonum's plain int result without
// reimplementing 128-bit conversion in the test.
func TestChooseMatchesGonum(t *testing.T) {
	cache := NewCache()
	for n := 0; n <= 60; n++ {
		for k := 0; k <= n; k++ {
			got := cache.Choose(n, k).(Count64)
			want := combin.Binomial(n, k)
			if uint64(got) != uint64(want) {
				t.Errorf("Choose(%d,%d) = %v, want %v", n, k, uint64(got), want)
			}
		}
	}
}
