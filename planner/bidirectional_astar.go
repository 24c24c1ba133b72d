package planner

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/AayushPS/taro/cost"
	"github.com/AayushPS/taro/graphmodel"
	"github.com/AayushPS/taro/heuristic"
)

// PlanResult is a point-to-point route() outcome in internal node-id
// terms; routecore maps it onto RouteResponse's external ids.
type PlanResult struct {
	Reachable     bool
	TotalCost     float64
	ArrivalTicks  int64
	NodePath      []int32
	SettledStates int
}

// BidirectionalTdAStarPlanner implements spec §4.4: a forward exact
// time-dependent lane paired with a backward static-lower-bound lane over
// a precomputed reverse adjacency. Grounded on the teacher's dijkstra
// package for the heap-driven main loop and lazy-decrease-key discipline,
// generalized from "visited[vertex]" to "label.active" dominance.
type BidirectionalTdAStarPlanner struct {
	graph    *graphmodel.EdgeGraph
	profiles *graphmodel.ProfileStore
	engine   *cost.CostEngine
	reverse  *ReverseEdgeIndex
	lower    *LowerBounds
	evalr    *PathEvaluator
	budget   SearchBudget
	term     TerminationPolicy
}

// NewBidirectionalTdAStarPlanner precomputes the reverse adjacency and
// static lower bounds for engine.Graph(), after verifying (by reference
// equality, spec §4.4's contract validation) that profiles is the very
// ProfileStore engine was built against.
func NewBidirectionalTdAStarPlanner(engine *cost.CostEngine, profiles *graphmodel.ProfileStore, budget SearchBudget) (*BidirectionalTdAStarPlanner, error) {
	if engine.Profiles() != profiles {
		return nil, ErrContractMismatch
	}

	graph := engine.Graph()

	return &BidirectionalTdAStarPlanner{
		graph:    graph,
		profiles: profiles,
		engine:   engine,
		reverse:  NewReverseEdgeIndex(graph),
		lower:    NewLowerBounds(graph, profiles),
		evalr:    NewPathEvaluator(graph, engine),
		budget:   budget,
	}, nil
}

// Route runs one point-to-point query. ctx must belong to the calling
// goroutine alone; Route resets it at the start of every call.
func (p *BidirectionalTdAStarPlanner) Route(ctx *PlannerQueryContext, source, target int32, departureTicks int64, tctx cost.TemporalContext, xctx cost.TransitionKind, provider heuristic.Provider) (PlanResult, error) {
	if source == target {
		return PlanResult{Reachable: true, TotalCost: 0, ArrivalTicks: departureTicks, NodePath: []int32{source}}, nil
	}

	ctx.Reset()
	goalHeuristic := provider.BindGoal(target)

	// Seed the backward lane with (target, 0).
	ctx.reverseBest[target] = 0
	ctx.touchNode(target)
	heap.Push(&ctx.backward, &backwardItem{node: target, lowerBound: 0})

	// Seed the forward lane from source's outgoing edges.
	start, end := p.graph.OutgoingRange(source)
	for edgeID := start; edgeID < end; edgeID++ {
		c := p.engine.ComputeEdgeCost(edgeID, cost.NoPredecessor, departureTicks, tctx, xctx)
		if !finitePriority(float64(c)) {
			continue
		}

		arrival := saturatingAddCeil(departureTicks, c)
		labelID, inserted := ctx.insertLabel(edgeID, c, arrival, -1)
		if !inserted {
			continue
		}

		dst := p.graph.EdgeDestination(edgeID)
		priority := float64(c) + p.bound(ctx, goalHeuristic, dst)
		if !finitePriority(priority) {
			return PlanResult{}, fmt.Errorf("%w: seed priority=%v", ErrNonFinitePriority, priority)
		}

		heap.Push(&ctx.forward, &forwardItem{labelID: labelID, edgeID: edgeID, arrival: arrival, priority: priority})
	}

	bestGoalLabel := int32(-1)
	bestGoalCost := float32(math.Inf(1))
	bestGoalArrival := int64(0)
	bestGoalCostF64 := math.Inf(1)
	settled := 0

	for ctx.forward.Len() > 0 {
		p.expandBackwardStep(ctx)

		top := heap.Pop(&ctx.forward).(*forwardItem)
		if !ctx.labels.isActive(top.labelID) {
			continue
		}

		settled++
		if err := p.budget.CheckSettledStates(settled); err != nil {
			return PlanResult{}, err
		}

		terminate, err := p.term.ShouldTerminate(top.priority, bestGoalCostF64)
		if err != nil {
			return PlanResult{}, err
		}
		if terminate {
			break
		}

		dst := p.graph.EdgeDestination(top.edgeID)
		g := ctx.labels.gScore[top.labelID]

		if dst == target {
			if bestGoalLabel == -1 || lexLess(g, top.arrival, bestGoalCost, bestGoalArrival) {
				bestGoalLabel = top.labelID
				bestGoalCost = g
				bestGoalArrival = top.arrival
				bestGoalCostF64 = float64(g)
			}

			continue
		}

		outStart, outEnd := p.graph.OutgoingRange(dst)
		for edgeID := outStart; edgeID < outEnd; edgeID++ {
			nextCost := p.engine.ComputeEdgeCost(edgeID, top.edgeID, top.arrival, tctx, xctx)
			if !finitePriority(float64(nextCost)) {
				continue
			}

			ng := g + nextCost
			narrival := saturatingAddCeil(top.arrival, nextCost)

			newLabelID, inserted := ctx.insertLabel(edgeID, ng, narrival, top.labelID)
			if !inserted {
				continue
			}
			if err := p.budget.CheckLabels(len(ctx.labels.edgeID)); err != nil {
				return PlanResult{}, err
			}

			nd := p.graph.EdgeDestination(edgeID)
			priority := float64(ng) + p.bound(ctx, goalHeuristic, nd)
			if !finitePriority(priority) {
				return PlanResult{}, fmt.Errorf("%w: priority=%v", ErrNonFinitePriority, priority)
			}

			heap.Push(&ctx.forward, &forwardItem{labelID: newLabelID, edgeID: edgeID, arrival: narrival, priority: priority})
			if err := p.budget.CheckFrontierSize(ctx.forward.Len()); err != nil {
				return PlanResult{}, err
			}
		}
	}

	if bestGoalLabel == -1 {
		return PlanResult{Reachable: false, TotalCost: math.Inf(1), ArrivalTicks: departureTicks, SettledStates: settled}, nil
	}

	edgePath := p.reconstructEdgePath(ctx, bestGoalLabel)
	totalCost, arrival, nodePath, err := p.evalr.Replay(edgePath, departureTicks, tctx, xctx)
	if err != nil {
		return PlanResult{}, err
	}

	return PlanResult{
		Reachable:     true,
		TotalCost:     totalCost,
		ArrivalTicks:  arrival,
		NodePath:      nodePath,
		SettledStates: settled,
	}, nil
}

// bound returns max(h_goal(dst), reverse_best(dst) if settled), per spec
// §4.4 step 3/4f.
func (p *BidirectionalTdAStarPlanner) bound(ctx *PlannerQueryContext, goalHeuristic heuristic.GoalBoundHeuristic, dst int32) float64 {
	b := goalHeuristic.EstimateFromNode(dst)
	if ctx.reverseSettled[dst] && ctx.reverseBest[dst] > b {
		b = ctx.reverseBest[dst]
	}

	return b
}

// expandBackwardStep performs at most one backward-lane expansion step,
// per spec §4.4's "one step per outer loop iteration".
func (p *BidirectionalTdAStarPlanner) expandBackwardStep(ctx *PlannerQueryContext) {
	if ctx.backward.Len() == 0 {
		return
	}

	top := heap.Pop(&ctx.backward).(*backwardItem)
	if top.lowerBound != ctx.reverseBest[top.node] {
		return // stale
	}

	ctx.reverseSettled[top.node] = true
	ctx.touchNode(top.node)

	start, end := p.reverse.IncomingRange(top.node)
	for i := start; i < end; i++ {
		edgeID := p.reverse.IncomingEdgeAt(i)
		origin := p.graph.EdgeOrigin(edgeID)
		d := top.lowerBound + float64(p.lower.Get(edgeID))
		if d < ctx.reverseBest[origin] {
			ctx.reverseBest[origin] = d
			ctx.touchNode(origin)
			heap.Push(&ctx.backward, &backwardItem{node: origin, lowerBound: d})
		}
	}
}

// reconstructEdgePath walks the predecessor chain from labelID back to the
// seed label (predecessor == -1), then reverses it into source-to-target
// order.
func (p *BidirectionalTdAStarPlanner) reconstructEdgePath(ctx *PlannerQueryContext, labelID int32) []int32 {
	var reversed []int32
	for id := labelID; id != -1; id = ctx.labels.predecessor[id] {
		reversed = append(reversed, ctx.labels.edgeID[id])
	}

	path := make([]int32, len(reversed))
	for i, e := range reversed {
		path[len(reversed)-1-i] = e
	}

	return path
}
