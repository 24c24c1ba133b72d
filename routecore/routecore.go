package routecore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/AayushPS/taro/config"
	"github.com/AayushPS/taro/cost"
	"github.com/AayushPS/taro/graphmodel"
	"github.com/AayushPS/taro/heuristic"
	"github.com/AayushPS/taro/metrics"
	"github.com/AayushPS/taro/overlay"
	"github.com/AayushPS/taro/planner"
)

const tracerName = "github.com/AayushPS/taro/routecore"

// Options bundles every collaborator and policy RouteCore needs at
// construction time. Grounded on 99souls-ariadne/engine.Config's
// grouped-struct-plus-constructor idiom: RouteCore takes one Options
// value rather than an unwieldy positional signature.
type Options struct {
	Graph    *graphmodel.EdgeGraph
	Profiles *graphmodel.ProfileStore
	Turns    *graphmodel.TurnCostMap // nil means no turn restrictions

	IDMapper IdMapper

	// LandmarkStore and LandmarkSignature are optional; leave both zero
	// to disable HeuristicLandmark (requests naming it fail with a
	// heuristic-configuration error).
	LandmarkStore     LandmarkStore
	LandmarkSignature string

	Config config.Config

	// Temporal and Transition are resolved once here, not per request,
	// matching RouteRequest's exact field list (spec §6): a deployment
	// picks one temporal/transition policy for the lifetime of a
	// RouteCore instance.
	Temporal   cost.TemporalContext
	Transition cost.TransitionKind

	Metrics *metrics.Metrics // optional; nil disables metrics
	Logger  *slog.Logger     // optional; nil uses slog.Default()
}

// RouteCore is the external facade: validate, translate ids, attach
// resolved contexts, dispatch to the appropriate planner, translate the
// result back to external ids (spec §2's data-flow summary).
type RouteCore struct {
	graph    *graphmodel.EdgeGraph
	profiles *graphmodel.ProfileStore
	engine   *cost.CostEngine
	live     *overlay.LiveOverlay

	p2p    *planner.BidirectionalTdAStarPlanner
	matrix *planner.OneToManyMatrixPlanner

	idMapper   IdMapper
	providers  map[HeuristicKind]heuristic.Provider
	temporal   cost.TemporalContext
	transition cost.TransitionKind

	metrics *metrics.Metrics
	logger  *slog.Logger
	tracer  oteltrace.Tracer

	routeCtxPool  sync.Pool
	matrixCtxPool sync.Pool
}

// New validates opts and wires the cost engine, both planners, and the
// configured heuristic providers.
func New(opts Options) (*RouteCore, error) {
	if opts.IDMapper == nil {
		return nil, wrap(codeValidation, ErrNilIDMapper)
	}
	if err := cost.ValidateTemporalContext(opts.Temporal); err != nil {
		return nil, wrap(codeValidation, err)
	}

	live := overlay.New(opts.Config.Overlay)
	engine, err := cost.NewCostEngine(opts.Graph, opts.Profiles, opts.Turns, live, opts.Config.Engine.ToCostConfig())
	if err != nil {
		return nil, wrap(codeValidation, err)
	}

	p2p, err := planner.NewBidirectionalTdAStarPlanner(engine, opts.Profiles, opts.Config.Route.ToPlanner())
	if err != nil {
		return nil, fromKernel(err)
	}
	mp := planner.NewOneToManyMatrixPlanner(engine, p2p, opts.Config.Matrix.ToDispatch(), opts.Config.Matrix.ToBudget())

	providers := map[HeuristicKind]heuristic.Provider{HeuristicNone: heuristic.NewNone()}
	if euclid, err := heuristic.NewEuclidean(opts.Graph, opts.Profiles); err == nil {
		providers[HeuristicEuclidean] = euclid
	}
	if spherical, err := heuristic.NewSpherical(opts.Graph, opts.Profiles); err == nil {
		providers[HeuristicSpherical] = spherical
	}
	if opts.LandmarkStore != nil {
		landmark, err := heuristic.NewLandmark(opts.LandmarkStore, opts.LandmarkSignature)
		if err != nil {
			return nil, wrap(codeHeuristicCfg, err)
		}
		providers[HeuristicLandmark] = landmark
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	nodeCount := opts.Graph.NodeCount()
	rc := &RouteCore{
		graph:      opts.Graph,
		profiles:   opts.Profiles,
		engine:     engine,
		live:       live,
		p2p:        p2p,
		matrix:     mp,
		idMapper:   opts.IDMapper,
		providers:  providers,
		temporal:   opts.Temporal,
		transition: opts.Transition,
		metrics:    opts.Metrics,
		logger:     logger,
		tracer:     otel.Tracer(tracerName),
	}
	rc.routeCtxPool.New = func() any { return planner.NewPlannerQueryContext(nodeCount) }
	rc.matrixCtxPool.New = func() any { return planner.NewMatrixQueryContext(nodeCount) }

	return rc, nil
}

// Graph returns the bound EdgeGraph, for callers that construct an
// IdMapper or SpatialRuntime keyed off the graph's node count.
func (rc *RouteCore) Graph() *graphmodel.EdgeGraph { return rc.graph }

// Profiles returns the bound ProfileStore.
func (rc *RouteCore) Profiles() *graphmodel.ProfileStore { return rc.profiles }

// resolveProvider looks up the Provider bound to kind, failing with a
// heuristic-configuration error if the deployment never wired it (e.g.
// HeuristicLandmark with no LandmarkStore supplied to Options).
func (rc *RouteCore) resolveProvider(kind HeuristicKind) (heuristic.Provider, error) {
	p, ok := rc.providers[kind]
	if !ok {
		return nil, wrapf(codeHeuristicCfg, ErrHeuristicNotConfigured, "heuristic=%s", kind)
	}

	return p, nil
}

func validateAlgorithmHeuristic(algo Algorithm, kind HeuristicKind) error {
	if algo == Dijkstra && kind != HeuristicNone {
		return validationErr(ErrAlgorithmHeuristicMismatch, "dijkstra requests must use HeuristicNone")
	}

	return nil
}

// Route runs one point-to-point query.
func (rc *RouteCore) Route(ctx context.Context, req RouteRequest) (RouteResponse, error) {
	corrID := uuid.NewString()
	spanCtx, span := rc.tracer.Start(ctx, "routecore.Route", oteltrace.WithAttributes(
		attribute.String("taro.correlation_id", corrID),
		attribute.String("taro.source_id", req.SourceID),
		attribute.String("taro.target_id", req.TargetID),
	))
	defer span.End()

	start := time.Now()
	resp, err := rc.route(spanCtx, req)
	if err != nil {
		span.RecordError(err)
		rc.logger.ErrorContext(spanCtx, "route failed", "correlation_id", corrID, "error", err)
		if routeErr, ok := err.(*RouteError); ok && routeErr.Code == codeBudget && rc.metrics != nil {
			rc.metrics.ObserveRouteBudgetExceeded(budgetReasonLabel(routeErr.Err))
		}

		return RouteResponse{}, err
	}

	if rc.metrics != nil {
		rc.metrics.ObserveRoute(algorithmLabel(req.Algorithm), req.Heuristic.String(), resp.Reachable, resp.SettledStates, time.Since(start))
	}
	rc.logger.InfoContext(spanCtx, "route completed", "correlation_id", corrID, "reachable", resp.Reachable, "settled_states", resp.SettledStates)

	return resp, nil
}

func (rc *RouteCore) route(ctx context.Context, req RouteRequest) (RouteResponse, error) {
	if req.SourceID == "" || req.TargetID == "" {
		return RouteResponse{}, validationErr(ErrBlankID, "source_id and target_id are required")
	}
	if err := validateAlgorithmHeuristic(req.Algorithm, req.Heuristic); err != nil {
		return RouteResponse{}, err
	}

	source, ok := rc.idMapper.ToInternal(req.SourceID)
	if !ok {
		return RouteResponse{}, unknownIDErr(req.SourceID)
	}
	target, ok := rc.idMapper.ToInternal(req.TargetID)
	if !ok {
		return RouteResponse{}, unknownIDErr(req.TargetID)
	}

	provider, err := rc.resolveProvider(req.Heuristic)
	if err != nil {
		return RouteResponse{}, err
	}

	qctx := rc.routeCtxPool.Get().(*planner.PlannerQueryContext)
	defer rc.routeCtxPool.Put(qctx)

	result, err := rc.p2p.Route(qctx, source, target, req.DepartureTicks, rc.temporal, rc.transition, provider)
	if err != nil {
		return RouteResponse{}, fromKernel(err)
	}

	nodePath := make([]string, len(result.NodePath))
	for i, n := range result.NodePath {
		external, ok := rc.idMapper.ToExternal(n)
		if !ok {
			return RouteResponse{}, wrapf(codeValidation, ErrUnknownID, "internal node id %d has no external mapping", n)
		}
		nodePath[i] = external
	}

	return RouteResponse{
		Reachable:      result.Reachable,
		DepartureTicks: req.DepartureTicks,
		ArrivalTicks:   result.ArrivalTicks,
		TotalCost:      result.TotalCost,
		SettledStates:  result.SettledStates,
		Algorithm:      req.Algorithm,
		Heuristic:      req.Heuristic,
		NodePath:       nodePath,
	}, nil
}

// Matrix runs a one-to-many-per-source query across every requested
// source, sequentially per row (spec §5: no intra-query parallelism).
func (rc *RouteCore) Matrix(ctx context.Context, req MatrixRequest) (MatrixResponse, error) {
	corrID := uuid.NewString()
	spanCtx, span := rc.tracer.Start(ctx, "routecore.Matrix", oteltrace.WithAttributes(
		attribute.String("taro.correlation_id", corrID),
		attribute.Int("taro.source_count", len(req.SourceIDs)),
		attribute.Int("taro.target_count", len(req.TargetIDs)),
	))
	defer span.End()

	start := time.Now()
	resp, err := rc.matrixImpl(spanCtx, req)
	if err != nil {
		span.RecordError(err)
		rc.logger.ErrorContext(spanCtx, "matrix failed", "correlation_id", corrID, "error", err)

		return MatrixResponse{}, err
	}

	if rc.metrics != nil {
		reachable, unreachable := 0, 0
		for _, row := range resp.Rows {
			for _, r := range row.Reachable {
				if r {
					reachable++
				} else {
					unreachable++
				}
			}
		}
		rc.metrics.ObserveMatrix(algorithmLabel(req.Algorithm), time.Since(start), reachable, unreachable)
	}
	rc.logger.InfoContext(spanCtx, "matrix completed", "correlation_id", corrID, "rows", len(resp.Rows))

	return resp, nil
}

func (rc *RouteCore) matrixImpl(ctx context.Context, req MatrixRequest) (MatrixResponse, error) {
	if len(req.SourceIDs) == 0 {
		return MatrixResponse{}, validationErr(ErrEmptyMatrixSources, "")
	}
	if len(req.TargetIDs) == 0 {
		return MatrixResponse{}, validationErr(ErrEmptyMatrixTargets, "")
	}
	if err := validateAlgorithmHeuristic(req.Algorithm, req.Heuristic); err != nil {
		return MatrixResponse{}, err
	}

	provider, err := rc.resolveProvider(req.Heuristic)
	if err != nil {
		return MatrixResponse{}, err
	}

	internalSources := make([]int32, len(req.SourceIDs))
	for i, id := range req.SourceIDs {
		n, ok := rc.idMapper.ToInternal(id)
		if !ok {
			return MatrixResponse{}, unknownIDErr(id)
		}
		internalSources[i] = n
	}

	internalTargets := make([]int32, len(req.TargetIDs))
	for i, id := range req.TargetIDs {
		n, ok := rc.idMapper.ToInternal(id)
		if !ok {
			return MatrixResponse{}, unknownIDErr(id)
		}
		internalTargets[i] = n
	}

	targetIdx := planner.NewMatrixTargetIndex(internalTargets)

	mctx := rc.matrixCtxPool.Get().(*planner.MatrixQueryContext)
	defer rc.matrixCtxPool.Put(mctx)
	rctx := rc.routeCtxPool.Get().(*planner.PlannerQueryContext)
	defer rc.routeCtxPool.Put(rctx)

	preq := planner.MatrixRequest{
		Sources:        internalSources,
		Targets:        internalTargets,
		DepartureTicks: req.DepartureTicks,
		Algorithm:      req.Algorithm,
		Provider:       provider,
		Temporal:       rc.temporal,
		Transition:     rc.transition,
	}

	rows := make([]MatrixRow, len(internalSources))
	requestWork := 0
	for i, source := range internalSources {
		row, work, err := rc.matrix.ComputeRow(mctx, rctx, source, targetIdx, preq, requestWork)
		if err != nil {
			return MatrixResponse{}, fromKernel(err)
		}
		requestWork = work

		reachable := make([]bool, len(req.TargetIDs))
		totalCost := make([]float64, len(req.TargetIDs))
		arrival := make([]int64, len(req.TargetIDs))
		for col := range req.TargetIDs {
			u := targetIdx.ColumnUniqueIndex(col)
			reachable[col] = row.Reachable[u]
			totalCost[col] = row.TotalCost[u]
			arrival[col] = row.Arrival[u]
		}

		rows[i] = MatrixRow{
			SourceID:  req.SourceIDs[i],
			Reachable: reachable,
			TotalCost: totalCost,
			Arrival:   arrival,
			Settled:   row.Settled,
		}
	}

	return MatrixResponse{Rows: rows, Algorithm: req.Algorithm, Heuristic: req.Heuristic}, nil
}

// NewLiveUpdate validates and builds one live-overlay override, wrapping
// overlay's validation sentinels (invalid speed factor, TTL overflow)
// under the live-overlay-input reason code.
func (rc *RouteCore) NewLiveUpdate(edgeID int32, speedFactor float32, now, ttlTicks int64) (overlay.LiveUpdate, error) {
	u, err := overlay.NewLiveUpdate(edgeID, speedFactor, now, ttlTicks)
	if err != nil {
		return overlay.LiveUpdate{}, wrap(codeLiveOverlay, err)
	}

	return u, nil
}

// ApplyLiveUpdates forwards to the bound LiveOverlay and reports the
// resulting entry count to metrics, when configured.
func (rc *RouteCore) ApplyLiveUpdates(updates []overlay.LiveUpdate, now int64) overlay.ApplyBatchResult {
	res := rc.live.ApplyBatch(updates, now)
	if rc.metrics != nil {
		rc.metrics.SetLiveOverlaySize(rc.live.Len())
	}

	return res
}

func algorithmLabel(a Algorithm) string {
	if a == Dijkstra {
		return "Dijkstra"
	}

	return "AStar"
}
