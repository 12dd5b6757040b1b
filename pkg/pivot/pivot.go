// Package pivot implements the pivot-based k-clique enumerator:
// branch-and-bound recursion over a per-root induced subgraph, dispatched
// across a worker pool that fans out over the DAG's root vertices.
package pivot

import (
	"fmt"
	"sync"

	"github.com/pivotscale/pivotscale/pkg/combinatorics"
	"github.com/pivotscale/pivotscale/pkg/graph"
	"github.com/pivotscale/pivotscale/pkg/subgraph"
)

// Count returns the number of distinct k-cliques in the undirected graph
// the DAG dag represents, for a single clique size k. dag
// must not be directed in the graph-theoretic sense (an orientation of an
// undirected input, as produced by pkg/builder); dag.Directed() is not
// itself a sufficient check since every DAG produced by Directionalize
// reports true — callers validate the *source* graph before directing it.
func Count(dag *graph.Graph, k int, numWorkers int) combinatorics.Count {
	cache := combinatorics.NewCache()

	results := dispatch(dag, numWorkers, func(sg *subgraph.SubGraph, root graph.NodeID) combinatorics.Count {
		sg.InduceFromDAG(dag, root)
		return recurse(sg, k, 1, 0, cache)
	})

	total := combinatorics.NewCount(0)
	for _, r := range results {
		total = total.Add(r)
	}
	return total
}

// Sweep returns counts[0..maxK], counts[0] unused, counts[i] the number of
// distinct i-cliques for 1 <= i <= maxK.
func Sweep(dag *graph.Graph, maxK int, numWorkers int) []combinatorics.Count {
	cache := combinatorics.NewCache()

	localResults := dispatch(dag, numWorkers, func(sg *subgraph.SubGraph, root graph.NodeID) []combinatorics.Count {
		local := make([]combinatorics.Count, maxK+1)
		for i := range local {
			local[i] = combinatorics.NewCount(0)
		}
		sg.InduceFromDAG(dag, root)
		recurseSweep(sg, maxK, local, 1, 0, cache)
		return local
	})

	counts := make([]combinatorics.Count, maxK+1)
	for i := range counts {
		counts[i] = combinatorics.NewCount(0)
	}
	for _, local := range localResults {
		for i := 1; i <= maxK; i++ {
			counts[i] = counts[i].Add(local[i])
		}
	}
	return counts
}

// DefaultSweepK returns the conventional maximum clique size a sweep covers
// when the CLI is asked for "all sizes" without an explicit -c: one more
// than the DAG's maximum out-degree.
func DefaultSweepK(dag *graph.Graph) int {
	return int(dag.MaxOutDegree()) + 1
}

// dispatch fans work out over dag's root vertices, one goroutine per
// worker, each owning a private subgraph.SubGraph (reused across roots) and
// producing one R per root; results are collected in a slice with no
// ordering guarantee. Grounded
// on pkg/materialization/instance_generator.go's worker-channel-WaitGroup
// shape, generalized with Go generics since the per-root result type
// differs between Count and Sweep.
func dispatch[R any](dag *graph.Graph, numWorkers int, work func(sg *subgraph.SubGraph, root graph.NodeID) R) []R {
	n := dag.NumNodes()
	if numWorkers <= 0 {
		numWorkers = 1
	}
	if numWorkers > n && n > 0 {
		numWorkers = n
	}

	roots := make(chan graph.NodeID, n)
	for v := 0; v < n; v++ {
		roots <- graph.NodeID(v)
	}
	close(roots)

	resultsCh := make(chan R, n)
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sg := subgraph.New()
			for root := range roots {
				resultsCh <- work(sg, root)
			}
		}()
	}
	wg.Wait()
	close(resultsCh)

	results := make([]R, 0, n)
	for r := range resultsCh {
		results = append(results, r)
	}
	return results
}

// recurse implements recurse(sg, K, cs, p).
func recurse(sg *subgraph.SubGraph, k, cs, p int, cache *combinatorics.Cache) combinatorics.Count {
	if sg.NumActive()+cs < k {
		return combinatorics.NewCount(0)
	}
	h := cs - p
	if sg.NumActive() == 0 || h == k {
		return cache.Choose(p, k-h)
	}

	piv := sg.FindPivot()
	hSet := sg.ActiveUnreachableFromPivot(piv)

	total := combinatorics.NewCount(0)
	for _, v := range hSet {
		if v == piv {
			sg.InduceFromSelfMutate(v, nil)
			total = total.Add(recurse(sg, k, cs+1, p+1, cache))
			sg.UndoSelfMutate()
		} else {
			sg.InduceFromSelfMutate(v, hSet)
			total = total.Add(recurse(sg, k, cs+1, p, cache))
			sg.UndoSelfMutate()
		}
	}
	sg.PopNonNeighbors()
	return total
}

// recurseSweep implements recurse_sweep(sg, K, counts, cs,
// p): identical pivot step to recurse, but with no depth-bound prune and a
// base case that spreads choose(p, j) across every reachable bucket.
func recurseSweep(sg *subgraph.SubGraph, k int, counts []combinatorics.Count, cs, p int, cache *combinatorics.Cache) {
	h := cs - p
	if sg.NumActive() == 0 || h == k {
		limit := p
		if k-h < limit {
			limit = k - h
		}
		for j := 0; j <= limit; j++ {
			counts[h+j] = counts[h+j].Add(cache.Choose(p, j))
		}
		return
	}

	piv := sg.FindPivot()
	hSet := sg.ActiveUnreachableFromPivot(piv)

	for _, v := range hSet {
		if v == piv {
			sg.InduceFromSelfMutate(v, nil)
			recurseSweep(sg, k, counts, cs+1, p+1, cache)
			sg.UndoSelfMutate()
		} else {
			sg.InduceFromSelfMutate(v, hSet)
			recurseSweep(sg, k, counts, cs+1, p, cache)
			sg.UndoSelfMutate()
		}
	}
	sg.PopNonNeighbors()
}

// ErrDirectedInput describes a directed graph supplied where an undirected
// one is required. No function in this package returns it; the drivers
// reject directed input through internal/cliapp's ErrDirectedInput, which
// they map to exit code -2.
var ErrDirectedInput = fmt.Errorf("pivot: input graph is directed, clique counting requires undirected input")
