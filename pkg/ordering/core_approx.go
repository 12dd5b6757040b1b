package ordering

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/pivotscale/pivotscale/pkg/graph"
)

// unrankedApprox marks a vertex CoreApprox has not yet assigned a rank to.
const unrankedApprox = -1

// CoreApprox computes the approximate parallel core ordering
// describes: level by level, remove every vertex whose residual degree
// falls at or below a threshold derived from the current average residual
// degree (inflated by 1+epsilon), with a running minimum floor to guarantee
// forward progress. Grounded on original_source/src/ordering.h's
// CoreApprox, with its single persistent `#pragma omp parallel` region (an
// internal barrier every level) re-expressed as the fork-join-per-phase
// shape: a fresh wait-group-joined goroutine fan-out
// for each phase of each level, rather than one long-lived parallel region.
//
// epsilon may be negative, biasing
// removal toward lower-degree vertices per level for a finer ranking at the
// cost of more levels.
func CoreApprox(g *graph.Graph, epsilon float64, numWorkers int) Rank {
	n := g.NumNodes()
	ranking := make(Rank, n)
	for i := range ranking {
		ranking[i] = unrankedApprox
	}
	if n == 0 {
		return ranking
	}
	if numWorkers <= 0 {
		numWorkers = 1
	}

	currDegree := make([]int64, n)
	for v := 0; v < n; v++ {
		currDegree[v] = int64(g.OutDegree(graph.NodeID(v)))
	}
	activeDegreeTotal := g.NumEdgesDirected()
	numRemaining := int64(n)

	var remaining [][]graph.NodeID
	level := 0
	for numRemaining > 0 {
		avg := float64(activeDegreeTotal) / float64(numRemaining)
		thresh := int64(math.Floor((1 + epsilon) * avg))

		var totalEdgesRemoved int64
		if level == 0 {
			chunks := partitionRange(n, numWorkers)
			localRemaining := make([][]graph.NodeID, numWorkers)
			localRemoved := make([]int64, numWorkers)
			var wg sync.WaitGroup
			for w, chunk := range chunks {
				wg.Add(1)
				go func(w int, chunk []graph.NodeID) {
					defer wg.Done()
					var removed int64
					var rem []graph.NodeID
					for _, u := range chunk {
						if int64(g.OutDegree(u)) <= thresh {
							ranking[u] = 0
							for _, v := range g.OutNeighbors(u) {
								if int64(g.OutDegree(v)) > thresh {
									atomic.AddInt64(&currDegree[v], -1)
									removed++
								}
							}
							removed += atomic.LoadInt64(&currDegree[u])
						} else {
							rem = append(rem, u)
						}
					}
					localRemoved[w] = removed
					localRemaining[w] = rem
				}(w, chunk)
			}
			wg.Wait()
			remaining = localRemaining
			for _, r := range localRemoved {
				totalEdgesRemoved += r
			}
		} else {
			minDegActive := int64(n)
			localMins := make([]int64, len(remaining))
			var wg sync.WaitGroup
			for w, rem := range remaining {
				wg.Add(1)
				go func(w int, rem []graph.NodeID) {
					defer wg.Done()
					localMin := int64(n)
					for _, u := range rem {
						if d := atomic.LoadInt64(&currDegree[u]); d < localMin {
							localMin = d
						}
					}
					localMins[w] = localMin
				}(w, rem)
			}
			wg.Wait()
			for _, m := range localMins {
				if m < minDegActive {
					minDegActive = m
				}
			}
			if thresh < minDegActive {
				thresh = minDegActive
			}

			removedPerWorker := make([][]graph.NodeID, len(remaining))
			nextRemainingPerWorker := make([][]graph.NodeID, len(remaining))
			var wg2 sync.WaitGroup
			for w, rem := range remaining {
				wg2.Add(1)
				go func(w int, rem []graph.NodeID) {
					defer wg2.Done()
					var removed, next []graph.NodeID
					for _, u := range rem {
						if atomic.LoadInt64(&currDegree[u]) <= thresh {
							ranking[u] = graph.NodeID(level)
							removed = append(removed, u)
						} else {
							next = append(next, u)
						}
					}
					removedPerWorker[w] = removed
					nextRemainingPerWorker[w] = next
				}(w, rem)
			}
			wg2.Wait()

			localRemoved := make([]int64, len(removedPerWorker))
			var wg3 sync.WaitGroup
			for w, removed := range removedPerWorker {
				wg3.Add(1)
				go func(w int, removed []graph.NodeID) {
					defer wg3.Done()
					var removedCount int64
					for _, u := range removed {
						for _, v := range g.OutNeighbors(u) {
							if ranking[v] == unrankedApprox {
								atomic.AddInt64(&currDegree[v], -1)
								removedCount++
							}
						}
						removedCount += atomic.LoadInt64(&currDegree[u])
					}
					localRemoved[w] = removedCount
				}(w, removed)
			}
			wg3.Wait()

			remaining = nextRemainingPerWorker
			for _, r := range localRemoved {
				totalEdgesRemoved += r
			}
		}

		activeDegreeTotal -= totalEdgesRemoved
		numRemaining = 0
		for _, r := range remaining {
			numRemaining += int64(len(r))
		}
		level++
	}
	return ranking
}

// partitionRange splits 0..n-1 into up to numWorkers contiguous chunks.
func partitionRange(n, numWorkers int) [][]graph.NodeID {
	if numWorkers > n {
		numWorkers = n
	}
	if numWorkers <= 0 {
		numWorkers = 1
	}
	chunks := make([][]graph.NodeID, 0, numWorkers)
	base := n / numWorkers
	extra := n % numWorkers
	start := 0
	for w := 0; w < numWorkers; w++ {
		size := base
		if w < extra {
			size++
		}
		chunk := make([]graph.NodeID, size)
		for i := 0; i < size; i++ {
			chunk[i] = graph.NodeID(start + i)
		}
		chunks = append(chunks, chunk)
		start += size
	}
	return chunks
}
