package planner

import (
	"fmt"
	"math"

	"github.com/AayushPS/taro/cost"
	"github.com/AayushPS/taro/graphmodel"
)

// PathEvaluator implements spec §4.7: the authoritative, allocation-bearing
// replay of a reconstructed edge path through the cost engine. Planners
// use it once per successful query to turn a predecessor chain into a
// total cost, arrival tick, and node path — never during the hot
// expansion loop.
type PathEvaluator struct {
	graph  *graphmodel.EdgeGraph
	engine *cost.CostEngine
}

// NewPathEvaluator binds a PathEvaluator to graph and engine.
func NewPathEvaluator(graph *graphmodel.EdgeGraph, engine *cost.CostEngine) *PathEvaluator {
	return &PathEvaluator{graph: graph, engine: engine}
}

// Replay walks edgePath in order starting at departureTicks, recomputing
// each edge's cost under (tctx, xctx) and accumulating arrival via
// saturating ceil-addition. It returns the total cost, final arrival, and
// the node path anchored at edgePath[0]'s origin.
func (pe *PathEvaluator) Replay(edgePath []int32, departureTicks int64, tctx cost.TemporalContext, xctx cost.TransitionKind) (totalCost float64, arrival int64, nodePath []int32, err error) {
	if len(edgePath) == 0 {
		return 0, departureTicks, nil, nil
	}

	arrival = departureTicks
	nodePath = make([]int32, 0, len(edgePath)+1)
	nodePath = append(nodePath, pe.graph.EdgeOrigin(edgePath[0]))

	predecessor := cost.NoPredecessor
	for i, e := range edgePath {
		if i > 0 {
			prevEdge := edgePath[i-1]
			if pe.graph.EdgeOrigin(e) != pe.graph.EdgeDestination(prevEdge) {
				return 0, 0, nil, fmt.Errorf("%w: edge=%d origin=%d expected=%d", ErrReconstructionMismatch,
					e, pe.graph.EdgeOrigin(e), pe.graph.EdgeDestination(prevEdge))
			}
		}

		c := pe.engine.ComputeEdgeCost(e, predecessor, arrival, tctx, xctx)
		if math.IsNaN(float64(c)) || math.IsInf(float64(c), 1) {
			return 0, 0, nil, fmt.Errorf("%w: edge=%d", ErrNonFiniteEdgeCost, e)
		}

		totalCost += float64(c)
		if math.IsNaN(totalCost) || math.IsInf(totalCost, 0) {
			return 0, 0, nil, fmt.Errorf("%w: edge=%d cumulative=%v", ErrNonFiniteCumulative, e, totalCost)
		}

		arrival = saturatingAddCeil(arrival, c)
		nodePath = append(nodePath, pe.graph.EdgeDestination(e))
		predecessor = e
	}

	return totalCost, arrival, nodePath, nil
}

// saturatingAddCeil advances arrival by ceil(transitionCost) ticks,
// saturating at the int64 bounds instead of overflowing (spec §4.4's
// "arrival tick conversion").
func saturatingAddCeil(arrival int64, transitionCost float32) int64 {
	delta := int64(math.Ceil(float64(transitionCost)))

	return saturatingAddInt64(arrival, delta)
}

func saturatingAddInt64(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	if b < 0 && a < math.MinInt64-b {
		return math.MinInt64
	}

	return a + b
}
