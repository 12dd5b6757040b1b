// Package ordering produces the rank vectors used to directionalize a graph (degree,
// exact sequential core, approximate parallel core) and the heuristic that
// picks between degree and core-approx orderings before directionalizing a
// graph.
package ordering

import "github.com/pivotscale/pivotscale/pkg/graph"

// GreaterDegreeOrID is the tiebreak predicate:
// u is ordered "before" v (i.e. an edge should run u -> v) when v has
// strictly greater degree, or equal degree and a greater ID. Grounded on
// original_source/src/builder.h's GreaterDegreeOrID.
func GreaterDegreeOrID(g *graph.Graph, u, v graph.NodeID) bool {
	du, dv := g.OutDegree(u), g.OutDegree(v)
	return dv > du || (dv == du && v > u)
}

// FindMaxDegree returns the maximum out-degree over all vertices of g, or 0
// for an empty graph.
func FindMaxDegree(g *graph.Graph) graph.NodeID {
	return g.MaxOutDegree()
}
