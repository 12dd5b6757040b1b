// Package graphio builds graph.Graph values from edge lists and synthetic
// generators. It is the concrete stand-in for the "external collaborators"
// pivotscale treats as black boxes (file parsing, serialized-graph loading,
// synthetic generation) — scoped to exactly what the CLI grammar needs.
package graphio

import (
	"fmt"
	"sort"

	"github.com/pivotscale/pivotscale/pkg/graph"
)

// EdgeGraph is a mutable, growable adjacency-list accumulator used while
// parsing or generating edges, before the immutable CSR graph.Graph is
// finalized. It intentionally drops the weighted-edge bookkeeping of its
// ancestor (clique counting ignores edge weights) and keeps
// only what a simple-graph builder needs: unique neighbors, degrees, and an
// AddEdge/Validate/Clone surface that mirrors how the rest of this pack
// assembles graphs incrementally.
type EdgeGraph struct {
	NumNodes int
	adj      [][]graph.NodeID
	degree   []int
	seen     []map[graph.NodeID]bool
}

// NewEdgeGraph allocates an empty accumulator over n vertices.
func NewEdgeGraph(n int) *EdgeGraph {
	eg := &EdgeGraph{
		NumNodes: n,
		adj:      make([][]graph.NodeID, n),
		degree:   make([]int, n),
		seen:     make([]map[graph.NodeID]bool, n),
	}
	for i := range eg.seen {
		eg.seen[i] = make(map[graph.NodeID]bool)
	}
	return eg
}

// AddEdge records an undirected edge between u and v, ignoring self-loops
// and duplicate edges (both disallowed by simple-graph
// invariant). Returns an error if u or v is out of range.
func (eg *EdgeGraph) AddEdge(u, v graph.NodeID) error {
	if int(u) < 0 || int(u) >= eg.NumNodes || int(v) < 0 || int(v) >= eg.NumNodes {
		return fmt.Errorf("graphio: node index out of range: u=%d, v=%d, numNodes=%d", u, v, eg.NumNodes)
	}
	if u == v {
		return nil // no self-loops
	}
	if eg.seen[u][v] {
		return nil // no duplicate edges
	}
	eg.seen[u][v] = true
	eg.seen[v][u] = true
	eg.adj[u] = append(eg.adj[u], v)
	eg.adj[v] = append(eg.adj[v], u)
	eg.degree[u]++
	eg.degree[v]++
	return nil
}

// Degree returns the current degree of node u.
func (eg *EdgeGraph) Degree(u graph.NodeID) int { return eg.degree[u] }

// Validate checks internal consistency: adjacency and degree counts agree,
// every neighbor is in range, and adjacency is symmetric.
func (eg *EdgeGraph) Validate() error {
	for u := 0; u < eg.NumNodes; u++ {
		if len(eg.adj[u]) != eg.degree[u] {
			return fmt.Errorf("graphio: degree/adjacency mismatch for node %d", u)
		}
		for _, v := range eg.adj[u] {
			if int(v) < 0 || int(v) >= eg.NumNodes {
				return fmt.Errorf("graphio: invalid neighbor %d for node %d", v, u)
			}
			if !eg.seen[v][graph.NodeID(u)] {
				return fmt.Errorf("graphio: asymmetric edge %d-%d", u, v)
			}
		}
	}
	return nil
}

// Clone deep-copies the accumulator.
func (eg *EdgeGraph) Clone() *EdgeGraph {
	clone := NewEdgeGraph(eg.NumNodes)
	for u := 0; u < eg.NumNodes; u++ {
		clone.adj[u] = append([]graph.NodeID(nil), eg.adj[u]...)
		clone.degree[u] = eg.degree[u]
		for v := range eg.seen[u] {
			clone.seen[u][v] = true
		}
	}
	return clone
}

// ToCSR finalizes the accumulator into an immutable, ascending-sorted
// graph.Graph marked as undirected (symmetric).
func (eg *EdgeGraph) ToCSR() *graph.Graph {
	g := graph.New(eg.NumNodes)
	for u := 0; u < eg.NumNodes; u++ {
		neighs := append([]graph.NodeID(nil), eg.adj[u]...)
		sort.Slice(neighs, func(i, j int) bool { return neighs[i] < neighs[j] })
		g.SetOutNeighbors(graph.NodeID(u), neighs)
	}
	g.SetDirected(false)
	return g
}
