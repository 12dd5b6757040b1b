package ordering

import "github.com/pivotscale/pivotscale/pkg/graph"

// CoreSequential computes an exact k-core peel ordering:
// repeatedly remove a vertex of minimum residual degree, assigning it the
// next rank, and demote its unranked neighbors to the bucket one degree
// lower. Grounded directly on original_source/src/ordering.h's
// CoreSequential, translated from raw-pointer bucket arrays to Go slices.
func CoreSequential(g *graph.Graph) Rank {
	n := g.NumNodes()
	ranking := make(Rank, n)
	indexInLevel := make([]int, n)
	currDegree := make([]int, n)

	var nodesAtDegree [][]graph.NodeID
	for v := 0; v < n; v++ {
		degree := g.OutDegree(graph.NodeID(v))
		currDegree[v] = degree
		for degree >= len(nodesAtDegree) {
			nodesAtDegree = append(nodesAtDegree, nil)
		}
		indexInLevel[v] = len(nodesAtDegree[degree])
		nodesAtDegree[degree] = append(nodesAtDegree[degree], graph.NodeID(v))
	}

	const unranked = -1
	numRemoved := 0
	minDegree := 0
	for numRemoved < n {
		if len(nodesAtDegree[minDegree]) == 0 {
			minDegree++
			continue
		}
		bucket := nodesAtDegree[minDegree]
		u := bucket[len(bucket)-1]
		nodesAtDegree[minDegree] = bucket[:len(bucket)-1]
		currDegree[u] = unranked
		indexInLevel[u] = unranked
		ranking[u] = graph.NodeID(numRemoved)
		numRemoved++

		for _, v := range g.OutNeighbors(u) {
			vDeg := currDegree[v]
			if vDeg == unranked {
				continue
			}
			level := nodesAtDegree[vDeg]
			swappedID := level[len(level)-1]
			level[indexInLevel[v]] = level[len(level)-1]
			indexInLevel[swappedID] = indexInLevel[v]
			nodesAtDegree[vDeg] = level[:len(level)-1]

			indexInLevel[v] = len(nodesAtDegree[vDeg-1])
			nodesAtDegree[vDeg-1] = append(nodesAtDegree[vDeg-1], v)
			currDegree[v] = vDeg - 1
			if vDeg-1 < minDegree {
				minDegree = vDeg - 1
			}
		}
	}
	return ranking
}
