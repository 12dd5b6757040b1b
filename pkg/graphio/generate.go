package graphio

import (
	"math/rand"

	"github.com/pivotscale/pivotscale/pkg/graph"
)

// GenerateUniform builds a symmetric, undirected graph on 2^scale vertices
// with approximately avgDegree*2^scale/2 edges, each endpoint drawn
// uniformly at random. Always symmetric ("-s implicit when
// -g/-u are used").
func GenerateUniform(scale, avgDegree int, rng *rand.Rand) *graph.Graph {
	n := 1 << uint(scale)
	numEdges := n * avgDegree / 2
	eg := NewEdgeGraph(n)
	for i := 0; i < numEdges; i++ {
		u := graph.NodeID(rng.Intn(n))
		v := graph.NodeID(rng.Intn(n))
		_ = eg.AddEdge(u, v) // self-loops/duplicates silently skipped
	}
	return eg.ToCSR()
}

// GenerateKronecker builds a symmetric, undirected graph on 2^scale vertices
// using an RMAT-style recursive quadrant partition with skewed quadrant
// probabilities (a, b, c, d) = (0.57, 0.19, 0.19, 0.05), the standard
// Graph500/Kronecker parameters. Produces a small number of high-degree
// "hub" vertices, unlike GenerateUniform — the shape of graph that favors
// the approximate core ordering over degree ordering.
func GenerateKronecker(scale, avgDegree int, rng *rand.Rand) *graph.Graph {
	n := 1 << uint(scale)
	numEdges := n * avgDegree / 2
	eg := NewEdgeGraph(n)
	const a, b, c = 0.57, 0.19, 0.19
	for i := 0; i < numEdges; i++ {
		u, v := graph.NodeID(0), graph.NodeID(0)
		for bit := 0; bit < scale; bit++ {
			u <<= 1
			v <<= 1
			r := rng.Float64()
			switch {
			case r < a:
				// quadrant (0,0): no bits set
			case r < a+b:
				v |= 1
			case r < a+b+c:
				u |= 1
			default:
				u |= 1
				v |= 1
			}
		}
		_ = eg.AddEdge(u, v)
	}
	return eg.ToCSR()
}
