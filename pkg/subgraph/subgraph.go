// Package subgraph implements the reversible induced-subgraph scratchpad
// The pivot recursion needs: a per-root workspace that starts as the subgraph
// induced by a DAG vertex's out-neighbors, and supports a nested sequence of
// induce/undo operations via in-place adjacency-list partitioning instead of
// heap allocation.
//
// Grounded directly on original_source/src/subgraph.h's SubGraph class,
// translated method-for-method: local IDs replace the remapped vertex
// space, framestack.Stack[graph.NodeID] replaces GroupedStack<NodeID>, and a
// Go map replaces the emhash8::HashMap remapper (both are scratch,
// discarded at the end of InduceFromDAG).
package subgraph

import (
	"github.com/pivotscale/pivotscale/pkg/framestack"
	"github.com/pivotscale/pivotscale/pkg/graph"
)

// SubGraph is per-thread scratch: create one per worker and call
// InduceFromDAG once per root vertex it processes, reusing the same
// instance across roots to avoid per-root heap churn.
type SubGraph struct {
	active     []bool
	activeList []graph.NodeID
	adj        [][]graph.NodeID
	tail       []graph.NodeID

	dropped        framestack.Stack[graph.NodeID]
	pivotNonNeighs framestack.Stack[graph.NodeID]
}

// New returns an empty SubGraph ready for InduceFromDAG.
func New() *SubGraph {
	return &SubGraph{}
}

// InduceFromDAG resets sg to the subgraph induced by u's out-neighbors in
// the DAG dag. Out-neighbor w of v is kept as an adjacency
// entry in both directions iff w is also an out-neighbor of u (i.e. both
// are in the induced vertex set); since the DAG only records "forward"
// edges, symmetry within the induced subgraph is restored explicitly here.
func (sg *SubGraph) InduceFromDAG(dag *graph.Graph, u graph.NodeID) {
	neighsOfU := dag.OutNeighbors(u)
	m := len(neighsOfU)

	remap := make(map[graph.NodeID]graph.NodeID, m)
	sg.active = growBools(sg.active, m)
	sg.activeList = growNodeIDs(sg.activeList, m)
	sg.adj = growAdjLists(sg.adj, m)
	sg.tail = growExactLen(sg.tail, m)
	sg.dropped.Clear()
	sg.pivotNonNeighs.Clear()
	sg.pivotNonNeighs.Reserve(m)

	for i, v := range neighsOfU {
		vr := graph.NodeID(i)
		remap[v] = vr
		sg.active[vr] = true
		sg.activeList = append(sg.activeList, vr)
		sg.adj[vr] = sg.adj[vr][:0]
	}

	for _, v := range neighsOfU {
		vr := remap[v]
		for _, w := range dag.OutNeighbors(v) {
			if wr, ok := remap[w]; ok {
				sg.adj[vr] = append(sg.adj[vr], wr)
				sg.adj[wr] = append(sg.adj[wr], vr)
			}
		}
	}
	for _, vr := range sg.activeList {
		sg.tail[vr] = graph.NodeID(len(sg.adj[vr]))
	}
}

// NumActive returns |active_list|, the size of the current candidate set.
func (sg *SubGraph) NumActive() int { return len(sg.activeList) }

// Neighbors returns the currently-active neighbors of local vertex i.
// Undefined (will index out of range or return stale data) if i is
// inactive.
func (sg *SubGraph) Neighbors(i graph.NodeID) []graph.NodeID {
	return sg.adj[i][:sg.tail[i]]
}

// FindPivot returns the active vertex with maximum active degree (tail),
// ties broken by first occurrence in the active list. Requires
// NumActive() > 0.
func (sg *SubGraph) FindPivot() graph.NodeID {
	maxV := sg.activeList[0]
	for _, n := range sg.activeList {
		if sg.tail[n] > sg.tail[maxV] {
			maxV = n
		}
	}
	return maxV
}

// ActiveUnreachableFromPivot returns the set H of active vertices not
// adjacent to p, including p itself (the graph has no self-loops, so p is
// never its own neighbor). The active[] bitmap is fully restored before
// returning; the returned view is borrowed and valid only until the
// matching PopNonNeighbors. Nested pivot steps push their frames after it,
// so reading it across a nested step (as pkg/pivot's recursion does) sees
// unchanged contents.
func (sg *SubGraph) ActiveUnreachableFromPivot(p graph.NodeID) []graph.NodeID {
	sg.pivotNonNeighs.NewFrame()
	for _, v := range sg.Neighbors(p) {
		sg.active[v] = false
	}
	for _, n := range sg.activeList {
		if sg.active[n] {
			sg.pivotNonNeighs.Push(n)
		} else {
			sg.active[n] = true
		}
	}
	return sg.pivotNonNeighs.TopView()
}

// InduceFromSelfMutate restricts the subgraph in place to
// {u} ∪ (neighs(u) \ {v ∈ excl : v < u}) — except that u itself is never
// reactivated: u has already been promoted into the caller's held-clique
// count before recursing, so the child subgraph only needs to carry
// remaining candidates, not u (see DESIGN.md, "open question" #1, resolved
// against original_source/src/subgraph.h). Pushes one dropped_verts frame,
// undone by the matching UndoSelfMutate.
func (sg *SubGraph) InduceFromSelfMutate(u graph.NodeID, excl []graph.NodeID) {
	for _, n := range sg.activeList {
		sg.active[n] = false
	}
	for _, v := range sg.Neighbors(u) {
		sg.active[v] = true
	}
	for _, n := range excl {
		if n < u {
			sg.active[n] = false
		}
	}

	sg.dropped.NewFrame()
	for i := 0; i < len(sg.activeList); i++ {
		n := sg.activeList[i]
		if sg.active[n] {
			tail := sg.tail[n]
			for j := graph.NodeID(0); j < tail; j++ {
				v := sg.adj[n][j]
				if !sg.active[v] {
					newTail := tail - 1
					tailV := sg.adj[n][newTail]
					for newTail > j && !sg.active[tailV] {
						newTail--
						tailV = sg.adj[n][newTail]
					}
					if newTail > j {
						sg.adj[n][j], sg.adj[n][newTail] = sg.adj[n][newTail], sg.adj[n][j]
					}
					tail = newTail
				}
			}
			sg.tail[n] = tail
		} else {
			last := len(sg.activeList) - 1
			sg.activeList[i] = sg.activeList[last]
			sg.activeList = sg.activeList[:last]
			sg.dropped.Push(n)
			i--
		}
	}
}

// UndoSelfMutate inverts the most recent InduceFromSelfMutate, restoring
// the exact state (same active set, same tail values, same neighbor-prefix
// contents as a set) that existed before it — the central testable
// invariant of this package.
func (sg *SubGraph) UndoSelfMutate() {
	for _, n := range sg.dropped.TopView() {
		sg.active[n] = true
		sg.activeList = append(sg.activeList, n)
	}
	sg.dropped.PopFrame()

	for _, u := range sg.activeList {
		newTail := sg.tail[u]
		for int(newTail) < len(sg.adj[u]) {
			tailV := sg.adj[u][newTail]
			if sg.active[tailV] {
				newTail++
			} else {
				break
			}
		}
		sg.tail[u] = newTail
	}
}

// PopNonNeighbors discards the most recent ActiveUnreachableFromPivot
// frame. Called by the enumerator once it has finished iterating H.
func (sg *SubGraph) PopNonNeighbors() {
	sg.pivotNonNeighs.PopFrame()
}

func growBools(s []bool, n int) []bool {
	if cap(s) < n {
		s = make([]bool, n)
	} else {
		s = s[:n]
	}
	for i := range s {
		s[i] = false
	}
	return s
}

func growNodeIDs(s []graph.NodeID, n int) []graph.NodeID {
	if cap(s) < n {
		return make([]graph.NodeID, 0, n)
	}
	return s[:0]
}

func growExactLen(s []graph.NodeID, n int) []graph.NodeID {
	if cap(s) < n {
		return make([]graph.NodeID, n)
	}
	return s[:n]
}

func growAdjLists(s [][]graph.NodeID, n int) [][]graph.NodeID {
	if cap(s) < n {
		grown := make([][]graph.NodeID, n)
		copy(grown, s)
		return grown
	}
	return s[:n]
}
