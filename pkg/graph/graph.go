// Package graph provides the CSR-style graph representation PivotScale's
// core algorithms treat as a black box: vertices 0..N-1, ascending
// out-adjacency lists, and out-degree/num-nodes lookups.
package graph

import "sort"

// NodeID indexes a vertex. 32 bits is the typical width for graphs this
// benchmark targets; a 64-bit build would only require widening this alias.
type NodeID = int32

// Graph is an immutable-once-built adjacency-list graph. For an undirected
// input every out-neighbor list is symmetric (v appears in u's list iff u
// appears in v's); for a directed graph (or a DAG produced by Directionalize)
// it need not be.
type Graph struct {
	outNeighbors [][]NodeID
	directed     bool
}

// New allocates a graph with n vertices and no edges.
func New(n int) *Graph {
	return &Graph{outNeighbors: make([][]NodeID, n)}
}

// NumNodes returns the number of vertices, 0..NumNodes()-1.
func (g *Graph) NumNodes() int { return len(g.outNeighbors) }

// OutDegree returns the number of out-neighbors of u.
func (g *Graph) OutDegree(u NodeID) int { return len(g.outNeighbors[u]) }

// OutNeighbors returns the ascending out-neighbor list of u. The returned
// slice must not be mutated by callers.
func (g *Graph) OutNeighbors(u NodeID) []NodeID { return g.outNeighbors[u] }

// Directed reports whether this graph was built from an asymmetric edge set
// (i.e. is not known to be the symmetric closure of an undirected graph).
// Clique counting requires false; drivers check this and reject otherwise.
func (g *Graph) Directed() bool { return g.directed }

// SetDirected marks the graph as directed (or not). Builders/readers set
// this based on how the edge set was produced.
func (g *Graph) SetDirected(d bool) { g.directed = d }

// NumEdgesDirected returns the total number of directed arcs (each
// undirected edge of a symmetric graph counts twice).
func (g *Graph) NumEdgesDirected() int64 {
	var total int64
	for _, n := range g.outNeighbors {
		total += int64(len(n))
	}
	return total
}

// MaxOutDegree returns the maximum out-degree over all vertices, or 0 for an
// empty graph.
func (g *Graph) MaxOutDegree() NodeID {
	var max NodeID
	for u := range g.outNeighbors {
		if d := NodeID(len(g.outNeighbors[u])); d > max {
			max = d
		}
	}
	return max
}

// ArgMaxOutDegree returns the vertex of maximum out-degree, ties broken by
// the lowest ID. Returns 0 for an empty graph.
func (g *Graph) ArgMaxOutDegree() NodeID {
	var best NodeID
	for u := 1; u < len(g.outNeighbors); u++ {
		if len(g.outNeighbors[u]) > len(g.outNeighbors[best]) {
			best = NodeID(u)
		}
	}
	return best
}

// SetOutNeighbors installs an already-sorted, already-deduplicated adjacency
// list for u. Used by builders that assemble adjacency lists themselves.
func (g *Graph) SetOutNeighbors(u NodeID, neighs []NodeID) {
	g.outNeighbors[u] = neighs
}

// SortNeighbors sorts every out-adjacency list ascending in place. Builders
// that append neighbors out of order call this once after construction.
func (g *Graph) SortNeighbors() {
	for u := range g.outNeighbors {
		sort.Slice(g.outNeighbors[u], func(i, j int) bool {
			return g.outNeighbors[u][i] < g.outNeighbors[u][j]
		})
	}
}
