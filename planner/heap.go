package planner

import "container/heap"

// forwardItem is spec §3's ForwardFrontierState, ordered by the strict
// lexicographic tuple (priority, arrival_ticks, edge_id, label_id)
// ascending — ties broken by the later fields so that repeated queries on
// identical input are bit-identical regardless of insertion order.
type forwardItem struct {
	labelID  int32
	edgeID   int32
	arrival  int64
	priority float64
}

// forwardHeap is a min-heap of forwardItem, grounded on the teacher's
// nodePQ in dijkstra/types.go: plain container/heap.Interface over a
// slice, lazy-decrease-key (stale entries are skipped at pop time by
// checking label liveness rather than mutated in place).
type forwardHeap []*forwardItem

func (h forwardHeap) Len() int { return len(h) }

func (h forwardHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if a.arrival != b.arrival {
		return a.arrival < b.arrival
	}
	if a.edgeID != b.edgeID {
		return a.edgeID < b.edgeID
	}

	return a.labelID < b.labelID
}

func (h forwardHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *forwardHeap) Push(x interface{}) { *h = append(*h, x.(*forwardItem)) }

func (h *forwardHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}

var _ heap.Interface = (*forwardHeap)(nil)

// backwardItem is spec §3's BackwardFrontierState, ordered by
// (lower_bound_distance, node_id) ascending.
type backwardItem struct {
	node       int32
	lowerBound float64
}

type backwardHeap []*backwardItem

func (h backwardHeap) Len() int { return len(h) }

func (h backwardHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.lowerBound != b.lowerBound {
		return a.lowerBound < b.lowerBound
	}

	return a.node < b.node
}

func (h backwardHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *backwardHeap) Push(x interface{}) { *h = append(*h, x.(*backwardItem)) }

func (h *backwardHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}

var _ heap.Interface = (*backwardHeap)(nil)
