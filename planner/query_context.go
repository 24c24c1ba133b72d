package planner

import "math"

// PlannerQueryContext is the thread-confined, reusable per-query buffer
// bundle from spec §5/§9: label arena, active-label lists, forward and
// backward frontiers, and the backward lane's reverse-best/reverse-settled
// tables. One instance is owned per (planner, goroutine) pair and Reset at
// the start of every route() call — never shared across concurrent
// queries.
type PlannerQueryContext struct {
	labels *labelStore
	active *activeLabelLists

	forward  forwardHeap
	backward backwardHeap

	reverseBest    []float64
	reverseSettled []bool
	touchedNodes   []int32

	nodeCount int32
}

// NewPlannerQueryContext allocates a context sized for a graph with
// nodeCount nodes. The node-indexed buffers are allocated once; per-query
// state is cleared incrementally via Reset, never by a full O(nodeCount)
// scan.
func NewPlannerQueryContext(nodeCount int32) *PlannerQueryContext {
	ctx := &PlannerQueryContext{
		labels:         newLabelStore(),
		active:         newActiveLabelLists(),
		reverseBest:    make([]float64, nodeCount),
		reverseSettled: make([]bool, nodeCount),
		nodeCount:      nodeCount,
	}
	for i := range ctx.reverseBest {
		ctx.reverseBest[i] = math.Inf(1)
	}

	return ctx
}

// Reset clears every per-query buffer for reuse. Node-indexed state is
// cleared only for nodes actually touched since the last reset.
func (ctx *PlannerQueryContext) Reset() {
	ctx.labels.reset()
	ctx.active.reset()
	ctx.forward = ctx.forward[:0]
	ctx.backward = ctx.backward[:0]

	for _, n := range ctx.touchedNodes {
		ctx.reverseBest[n] = math.Inf(1)
		ctx.reverseSettled[n] = false
	}
	ctx.touchedNodes = ctx.touchedNodes[:0]
}

func (ctx *PlannerQueryContext) touchNode(n int32) {
	ctx.touchedNodes = append(ctx.touchedNodes, n)
}

// insertLabel is the dominance-insert entry point planners call on every
// edge expansion.
func (ctx *PlannerQueryContext) insertLabel(edgeID int32, g float32, arrival int64, predecessor int32) (int32, bool) {
	return ctx.active.insert(ctx.labels, edgeID, g, arrival, predecessor)
}
