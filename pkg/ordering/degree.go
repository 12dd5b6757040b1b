package ordering

import "github.com/pivotscale/pivotscale/pkg/graph"

// Rank is a per-vertex rank assignment. Smaller rank means "removed or
// visited earlier"; it need not be a dense permutation.
type Rank []graph.NodeID

// Degree returns the trivial constant-rank ordering: every
// vertex ranks 0, so direction is decided entirely by the tiebreak
// predicate.
func Degree(g *graph.Graph) Rank {
	return make(Rank, g.NumNodes())
}
