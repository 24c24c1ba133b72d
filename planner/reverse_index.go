package planner

import "github.com/AayushPS/taro/graphmodel"

// ReverseEdgeIndex is the incoming-edge CSR from spec §3/§9, built once per
// (planner, graph) pair at construction time and shared read-only across
// every query thread afterward. Grounded on the teacher's bfs package,
// which builds a similar adjacency CSR via a counting-sort pass before
// traversal; here the sort key is destination instead of origin.
type ReverseEdgeIndex struct {
	firstIncoming []int32 // len nodeCount+1
	incomingEdge  []int32 // len edgeCount
}

// NewReverseEdgeIndex compiles graph's incoming-edge CSR.
func NewReverseEdgeIndex(graph *graphmodel.EdgeGraph) *ReverseEdgeIndex {
	n := graph.NodeCount()
	e := graph.EdgeCount()

	degree := make([]int32, n)
	for edgeID := int32(0); edgeID < e; edgeID++ {
		degree[graph.EdgeDestination(edgeID)]++
	}

	first := make([]int32, n+1)
	var running int32
	for v := int32(0); v < n; v++ {
		first[v] = running
		running += degree[v]
	}
	first[n] = running

	cursor := append([]int32(nil), first[:n]...)
	incoming := make([]int32, e)
	for edgeID := int32(0); edgeID < e; edgeID++ {
		d := graph.EdgeDestination(edgeID)
		slot := cursor[d]
		cursor[d]++
		incoming[slot] = edgeID
	}

	return &ReverseEdgeIndex{firstIncoming: first, incomingEdge: incoming}
}

// IncomingRange returns the half-open range [start, end) into IncomingEdgeAt
// for node's incoming edges.
func (r *ReverseEdgeIndex) IncomingRange(node int32) (start, end int32) {
	return r.firstIncoming[node], r.firstIncoming[node+1]
}

// IncomingEdgeAt returns the edge id stored at CSR position i.
func (r *ReverseEdgeIndex) IncomingEdgeAt(i int32) int32 { return r.incomingEdge[i] }

// LowerBounds holds the precomputed per-edge static lower bound used by the
// backward lane: edge_lower_bound[edge] = base_weight * min(1.0,
// profile_min_multiplier). Live penalty lower bound is fixed at 1.0 and
// turn lower bound at 0, both folded in by construction (neither term
// appears here because they are already the identity for a lower bound).
type LowerBounds struct {
	values []float32
}

// NewLowerBounds computes the static lower bound for every edge in graph
// against profiles.
func NewLowerBounds(graph *graphmodel.EdgeGraph, profiles *graphmodel.ProfileStore) *LowerBounds {
	e := graph.EdgeCount()
	values := make([]float32, e)
	for edgeID := int32(0); edgeID < e; edgeID++ {
		profile := profiles.Get(graph.EdgeProfileID(edgeID))
		m := profile.MinMultiplier
		if m > 1 {
			m = 1
		}
		values[edgeID] = graph.BaseWeight(edgeID) * m
	}

	return &LowerBounds{values: values}
}

// Get returns the precomputed static lower bound for edgeID.
func (b *LowerBounds) Get(edgeID int32) float32 { return b.values[edgeID] }
