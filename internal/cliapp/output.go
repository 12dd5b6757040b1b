package cliapp

import (
	"fmt"
	"io"

	"github.com/pivotscale/pivotscale/pkg/combinatorics"
)

// PrintSingle writes the one-row output table for a single-k count:
// header then one "%4d " + right-aligned count line.
func PrintSingle(w io.Writer, k int, count combinatorics.Count) {
	fmt.Fprintf(w, "%4s %*s\n", "k", combinatorics.PrintWidth, "clique count")
	fmt.Fprintf(w, "%4d %*s\n", k, combinatorics.PrintWidth, count.String())
}

// PrintSweep writes one row per size with nonzero count, 1..maxK;
// counts[0] is never printed (unused).
func PrintSweep(w io.Writer, counts []combinatorics.Count, maxK int) {
	fmt.Fprintf(w, "%4s %*s\n", "k", combinatorics.PrintWidth, "clique count")
	for k := 1; k <= maxK; k++ {
		if counts[k].IsZero() {
			continue
		}
		fmt.Fprintf(w, "%4d %*s\n", k, combinatorics.PrintWidth, counts[k].String())
	}
}
