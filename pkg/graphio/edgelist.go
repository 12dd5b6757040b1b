package graphio

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pivotscale/pivotscale/pkg/graph"
)

// ReadEdgeList parses a ".el" (u v) or ".wel" (u v weight) file into a
// graph.Graph. Weights, if present, are parsed only to validate the line
// shape and then discarded ("weights are ignored"). Blank
// lines and lines starting with '#' are skipped.
//
// When symmetrize is true every parsed pair (u, v) is added as an
// undirected edge regardless of whether its reverse also appears in the
// file. When symmetrize is false, the file is taken at face value: if any
// edge's reverse is missing, the resulting graph is marked directed so the
// caller can reject it.
func ReadEdgeList(path string, symmetrize bool) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	var pairs [][2]graph.NodeID
	maxNode := graph.NodeID(-1)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1<<20), 1<<24)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("graphio: %s:%d: expected at least 2 fields, got %d", path, lineNo, len(fields))
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("graphio: %s:%d: bad node id %q: %w", path, lineNo, fields[0], err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("graphio: %s:%d: bad node id %q: %w", path, lineNo, fields[1], err)
		}
		if len(fields) >= 3 {
			if _, err := strconv.ParseFloat(fields[2], 64); err != nil {
				return nil, fmt.Errorf("graphio: %s:%d: bad weight %q: %w", path, lineNo, fields[2], err)
			}
		}
		pairs = append(pairs, [2]graph.NodeID{graph.NodeID(u), graph.NodeID(v)})
		if graph.NodeID(u) > maxNode {
			maxNode = graph.NodeID(u)
		}
		if graph.NodeID(v) > maxNode {
			maxNode = graph.NodeID(v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graphio: reading %s: %w", path, err)
	}

	numNodes := int(maxNode) + 1
	if numNodes < 0 {
		numNodes = 0
	}

	if symmetrize {
		eg := NewEdgeGraph(numNodes)
		for _, p := range pairs {
			if err := eg.AddEdge(p[0], p[1]); err != nil {
				return nil, err
			}
		}
		return eg.ToCSR(), nil
	}
	return fromDirectedPairs(numNodes, pairs), nil
}

// fromDirectedPairs builds a graph from (u, v) pairs without symmetrizing,
// then detects whether the result is in fact symmetric (every edge's
// reverse also present) to set Graph.Directed() accordingly.
func fromDirectedPairs(numNodes int, pairs [][2]graph.NodeID) *graph.Graph {
	present := make([]map[graph.NodeID]bool, numNodes)
	for i := range present {
		present[i] = make(map[graph.NodeID]bool)
	}
	for _, p := range pairs {
		if p[0] == p[1] {
			continue
		}
		present[p[0]][p[1]] = true
	}

	directed := false
	adj := make([][]graph.NodeID, numNodes)
	for u := 0; u < numNodes; u++ {
		for v := range present[u] {
			adj[u] = append(adj[u], v)
			if !present[v][graph.NodeID(u)] {
				directed = true
			}
		}
	}

	g := graph.New(numNodes)
	for u := 0; u < numNodes; u++ {
		neighs := adj[u]
		sort.Slice(neighs, func(i, j int) bool { return neighs[i] < neighs[j] })
		g.SetOutNeighbors(graph.NodeID(u), neighs)
	}
	g.SetDirected(directed)
	return g
}
