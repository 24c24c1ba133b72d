package planner

import (
	"container/heap"
	"math"

	"github.com/AayushPS/taro/cost"
	"github.com/AayushPS/taro/graphmodel"
	"github.com/AayushPS/taro/heuristic"
)

// Algorithm selects the search strategy a route or matrix request uses.
type Algorithm int

const (
	// Dijkstra ignores any heuristic (must be paired with None).
	Dijkstra Algorithm = iota
	// AStar uses the bound heuristic's estimate as part of priority.
	AStar
)

// MatrixRequest is spec §4.5/§6's one-to-many query: a set of sources, a
// set of targets (duplicates permitted and deduplicated internally), and
// the resolved contexts shared by every cell.
type MatrixRequest struct {
	Sources      []int32
	Targets      []int32
	DepartureTicks int64
	Algorithm    Algorithm
	Provider     heuristic.Provider // nil/None for Dijkstra
	Temporal     cost.TemporalContext
	Transition   cost.TransitionKind
}

// MatrixRowResult is one row of a MatrixResponse, in unique-target-index
// order (routecore expands it back into the original column order).
type MatrixRowResult struct {
	Reachable []bool
	TotalCost []float64
	Arrival   []int64
	Settled   int
}

// MatrixDispatchConfig carries spec §4.5's dispatch thresholds.
type MatrixDispatchConfig struct {
	MaxNativeAStarTargets     int
	AstarFallbackBatchTargets int
}

// OneToManyMatrixPlanner implements spec §4.5: native one-to-many
// Dijkstra/A* per source row when the unique-target count is small enough,
// falling back to the point-to-point planner (batched or pairwise)
// otherwise.
type OneToManyMatrixPlanner struct {
	graph  *graphmodel.EdgeGraph
	engine *cost.CostEngine
	p2p    *BidirectionalTdAStarPlanner
	cfg    MatrixDispatchConfig
	budget MatrixBudget
	term   TerminationPolicy
}

// NewOneToManyMatrixPlanner binds a matrix planner to engine and the
// point-to-point planner used for fallback dispatch.
func NewOneToManyMatrixPlanner(engine *cost.CostEngine, p2p *BidirectionalTdAStarPlanner, cfg MatrixDispatchConfig, budget MatrixBudget) *OneToManyMatrixPlanner {
	return &OneToManyMatrixPlanner{graph: engine.Graph(), engine: engine, p2p: p2p, cfg: cfg, budget: budget}
}

// ComputeRow runs the dispatch logic of spec §4.5 for one source against
// the deduplicated target index, returning a row in unique-target order.
func (p *OneToManyMatrixPlanner) ComputeRow(ctx *MatrixQueryContext, routeCtx *PlannerQueryContext, source int32, idx *MatrixTargetIndex, req MatrixRequest, requestWorkSoFar int) (MatrixRowResult, int, error) {
	switch {
	case req.Algorithm == Dijkstra:
		return p.nativeRow(ctx, source, idx, req, false, requestWorkSoFar)
	case req.Algorithm == AStar && idx.Len() <= p.cfg.MaxNativeAStarTargets:
		return p.nativeRow(ctx, source, idx, req, true, requestWorkSoFar)
	case req.Algorithm == AStar:
		return p.fallbackRow(routeCtx, source, idx, req, requestWorkSoFar)
	default:
		return p.fallbackRow(routeCtx, source, idx, req, requestWorkSoFar)
	}
}

// nativeRow implements spec §4.5's per-row native algorithm: a single
// forward-only Dijkstra/A* expansion that resolves every unique target in
// one pass, instead of one point-to-point search per target.
func (p *OneToManyMatrixPlanner) nativeRow(ctx *MatrixQueryContext, source int32, idx *MatrixTargetIndex, req MatrixRequest, useAStar bool, requestWorkSoFar int) (MatrixRowResult, int, error) {
	n := idx.Len()
	ctx.resetRow(n)
	routeCtx := ctx.Row

	var heuristics []heuristic.GoalBoundHeuristic
	if useAStar {
		heuristics = make([]heuristic.GoalBoundHeuristic, n)
		for i, t := range idx.Unique {
			heuristics[i] = req.Provider.BindGoal(t)
		}
	}

	floor := func(node int32) float64 {
		if !useAStar {
			return 0
		}
		best := math.Inf(1)
		for i := 0; i < n; i++ {
			if ctx.targetResolved[i] {
				continue
			}
			if v := heuristics[i].EstimateFromNode(node); v < best {
				best = v
			}
		}
		if math.IsInf(best, 1) {
			return 0
		}

		return best
	}

	if uIdx, ok := idx.NodeUniqueIndex(source); ok {
		ctx.resolve(uIdx, 0, req.DepartureTicks)
	}

	start, end := p.graph.OutgoingRange(source)
	for edgeID := start; edgeID < end; edgeID++ {
		c := p.engine.ComputeEdgeCost(edgeID, cost.NoPredecessor, req.DepartureTicks, req.Temporal, req.Transition)
		if !finitePriority(float64(c)) {
			continue
		}

		arrival := saturatingAddCeil(req.DepartureTicks, c)
		labelID, inserted := routeCtx.insertLabel(edgeID, c, arrival, -1)
		if !inserted {
			continue
		}

		dst := p.graph.EdgeDestination(edgeID)
		priority := float64(c) + floor(dst)
		heap.Push(&routeCtx.forward, &forwardItem{labelID: labelID, edgeID: edgeID, arrival: arrival, priority: priority})
	}

	settled := 0
	requestWork := requestWorkSoFar

	for routeCtx.forward.Len() > 0 {
		if ctx.unresolvedCount() == 0 {
			maxResolved := ctx.maxResolvedCost()
			terminate, err := p.term.ShouldTerminate(routeCtx.forward[0].priority, maxResolved)
			if err != nil {
				return MatrixRowResult{}, requestWork, err
			}
			if terminate {
				break
			}
		}

		top := heap.Pop(&routeCtx.forward).(*forwardItem)
		if !routeCtx.labels.isActive(top.labelID) {
			continue
		}

		settled++
		requestWork++
		if err := p.budget.CheckRowWork(settled); err != nil {
			return MatrixRowResult{}, requestWork, err
		}
		if err := p.budget.CheckRequestWork(requestWork); err != nil {
			return MatrixRowResult{}, requestWork, err
		}

		dst := p.graph.EdgeDestination(top.edgeID)
		g := routeCtx.labels.gScore[top.labelID]

		if uIdx, ok := idx.NodeUniqueIndex(dst); ok && !ctx.targetResolved[uIdx] {
			ctx.resolve(uIdx, float64(g), top.arrival)
		}

		outStart, outEnd := p.graph.OutgoingRange(dst)
		for edgeID := outStart; edgeID < outEnd; edgeID++ {
			nextCost := p.engine.ComputeEdgeCost(edgeID, top.edgeID, top.arrival, req.Temporal, req.Transition)
			if !finitePriority(float64(nextCost)) {
				continue
			}

			ng := g + nextCost
			narrival := saturatingAddCeil(top.arrival, nextCost)

			newLabelID, inserted := routeCtx.insertLabel(edgeID, ng, narrival, top.labelID)
			if !inserted {
				continue
			}
			if err := p.budget.CheckRowLabels(len(routeCtx.labels.edgeID)); err != nil {
				return MatrixRowResult{}, requestWork, err
			}

			nd := p.graph.EdgeDestination(edgeID)
			priority := float64(ng) + floor(nd)

			heap.Push(&routeCtx.forward, &forwardItem{labelID: newLabelID, edgeID: edgeID, arrival: narrival, priority: priority})
			if err := p.budget.CheckRowFrontier(routeCtx.forward.Len()); err != nil {
				return MatrixRowResult{}, requestWork, err
			}
		}
	}

	row := MatrixRowResult{
		Reachable: make([]bool, n),
		TotalCost: make([]float64, n),
		Arrival:   make([]int64, n),
		Settled:   settled,
	}
	for i := 0; i < n; i++ {
		if ctx.targetResolved[i] {
			row.Reachable[i] = true
			row.TotalCost[i] = ctx.targetBestCost[i]
			row.Arrival[i] = ctx.targetBestArrival[i]
		} else {
			row.Reachable[i] = false
			row.TotalCost[i] = math.Inf(1)
			row.Arrival[i] = req.DepartureTicks
		}
	}

	return row, requestWork, nil
}

// fallbackRow covers spec §4.5's batched-A*-compatibility and pairwise
// modes. Both dispatch through the point-to-point planner per (source,
// target); since matrix rows already execute strictly sequentially within
// one request (spec §5: no intra-query parallelism), "batches of
// astar_fallback_batch_targets" is a resource-accounting boundary rather
// than a different code path — it does not change per-pair semantics.
// requestWorkSoFar carries the cross-row accumulated budget counter,
// mirroring nativeRow: a request that spans several AStar-fallback rows
// must still trip max_request_work_states across the whole request, not
// reset it on every row.
func (p *OneToManyMatrixPlanner) fallbackRow(routeCtx *PlannerQueryContext, source int32, idx *MatrixTargetIndex, req MatrixRequest, requestWorkSoFar int) (MatrixRowResult, int, error) {
	n := idx.Len()
	row := MatrixRowResult{
		Reachable: make([]bool, n),
		TotalCost: make([]float64, n),
		Arrival:   make([]int64, n),
	}

	provider := req.Provider
	if provider == nil {
		provider = heuristic.NewNone()
	}

	requestWork := requestWorkSoFar
	rowSettled := 0
	for i, t := range idx.Unique {
		res, err := p.p2p.Route(routeCtx, source, t, req.DepartureTicks, req.Temporal, req.Transition, provider)
		if err != nil {
			return MatrixRowResult{}, requestWork, err
		}

		rowSettled += res.SettledStates
		requestWork += res.SettledStates
		if err := p.budget.CheckRequestWork(requestWork); err != nil {
			return MatrixRowResult{}, requestWork, err
		}

		row.Reachable[i] = res.Reachable
		if res.Reachable {
			row.TotalCost[i] = res.TotalCost
			row.Arrival[i] = res.ArrivalTicks
		} else {
			row.TotalCost[i] = math.Inf(1)
			row.Arrival[i] = req.DepartureTicks
		}
	}
	row.Settled = rowSettled

	return row, requestWork, nil
}
