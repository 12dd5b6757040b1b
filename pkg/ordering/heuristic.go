package ordering

import "github.com/pivotscale/pivotscale/pkg/graph"

// HeuristicParams tunes ShouldUseCoreApprox; internal/cliapp's Run
// populates these from pkg/config's Config.
type HeuristicParams struct {
	LargeNThreshold int
	ParamA          float64
	ParamB          float64
}

// ShouldUseCoreApprox decides between the degree and core-approx orderings
// by sampling the graph's single most concentrated neighborhood, rather than
// peeling it fully: let b be the max-degree vertex and c the max-degree
// vertex among b's neighbors. A large |Neighs(c)| relative to N, or a large
// overlap between Neighs(b) and Neighs(c) relative to |Neighs(c)|, signals
// the kind of skewed, clustered graph the core ordering pays off on.
// Grounded on original_source/src/ordering.h's CoreIsAdvantageous.
func ShouldUseCoreApprox(g *graph.Graph, p HeuristicParams) bool {
	n := g.NumNodes()
	if n == 0 || n <= p.LargeNThreshold {
		return false
	}

	b := g.ArgMaxOutDegree()
	neighsB := g.OutNeighbors(b)
	if len(neighsB) == 0 {
		return false
	}

	c := neighsB[0]
	for _, v := range neighsB {
		if g.OutDegree(v) > g.OutDegree(c) {
			c = v
		}
	}
	outdegC := g.OutDegree(c)
	if outdegC == 0 {
		return false
	}

	largestNeighFrac := float64(outdegC) / float64(n)
	intersection := sortedIntersectionSize(neighsB, g.OutNeighbors(c))
	intersectionFrac := float64(intersection) / float64(outdegC)

	return largestNeighFrac > p.ParamA || intersectionFrac > p.ParamB
}

// sortedIntersectionSize counts the common elements of two ascending-sorted
// slices in O(len(a)+len(b)).
func sortedIntersectionSize(a, b []graph.NodeID) int {
	i, j, count := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			count++
			i++
			j++
		}
	}
	return count
}
