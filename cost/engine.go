package cost

import (
	"fmt"
	"math"

	"github.com/AayushPS/taro/graphmodel"
	"github.com/AayushPS/taro/overlay"
)

// CostEngine composes base weight, temporal multiplier, live-traffic
// penalty, and turn penalty into one effective edge cost. It holds only
// read-only references; a single instance is safe to call concurrently
// from every planner goroutine.
type CostEngine struct {
	graph    *graphmodel.EdgeGraph
	profiles *graphmodel.ProfileStore
	turns    *graphmodel.TurnCostMap // nil means "no turn restrictions"
	live     *overlay.LiveOverlay
	cfg      Config
}

// NewCostEngine validates its inputs and returns a ready-to-use engine.
// turns may be nil (no turn costs modeled).
func NewCostEngine(graph *graphmodel.EdgeGraph, profiles *graphmodel.ProfileStore, turns *graphmodel.TurnCostMap, live *overlay.LiveOverlay, cfg Config) (*CostEngine, error) {
	if graph == nil {
		return nil, ErrNilGraph
	}
	if profiles == nil {
		return nil, ErrNilProfiles
	}
	if live == nil {
		return nil, ErrNilOverlay
	}
	if cfg.BucketSizeSeconds <= 0 {
		return nil, fmt.Errorf("%w: got=%d", ErrBadBucketSize, cfg.BucketSizeSeconds)
	}

	return &CostEngine{graph: graph, profiles: profiles, turns: turns, live: live, cfg: cfg}, nil
}

// Graph returns the bound EdgeGraph. Used by planners to assert reference
// equality against their own precomputed reverse index (spec §4.4
// contract validation).
func (e *CostEngine) Graph() *graphmodel.EdgeGraph { return e.graph }

// Profiles returns the bound ProfileStore, for the same reference-equality
// contract check as Graph.
func (e *CostEngine) Profiles() *graphmodel.ProfileStore { return e.profiles }

// ComputeEdgeCost implements spec §4.2. predecessorEdgeID should be
// NoPredecessor when edgeID has no predecessor on the path so far.
func (e *CostEngine) ComputeEdgeCost(edgeID, predecessorEdgeID int32, entryTicks int64, tctx TemporalContext, xctx TransitionKind) float32 {
	b := e.explain(edgeID, predecessorEdgeID, entryTicks, tctx, xctx)

	return b.Effective
}

// ExplainEdgeCost is ComputeEdgeCost's diagnosable twin: it returns every
// intermediate signal that fed the final cost.
func (e *CostEngine) ExplainEdgeCost(edgeID, predecessorEdgeID int32, entryTicks int64, tctx TemporalContext, xctx TransitionKind) CostBreakdown {
	return e.explain(edgeID, predecessorEdgeID, entryTicks, tctx, xctx)
}

func (e *CostEngine) explain(edgeID, predecessorEdgeID int32, entryTicks int64, tctx TemporalContext, xctx TransitionKind) CostBreakdown {
	baseWeight := e.graph.BaseWeight(edgeID)
	profile := e.profiles.Get(e.graph.EdgeProfileID(edgeID))

	sample := deriveTemporalSample(entryTicks, e.cfg, tctx, profile.DayMask.Active, len(profile.Buckets))
	multiplier := resolveMultiplier(profile.Buckets, profile.Multiplier, sample, e.cfg.SamplingPolicy)

	livePenalty := e.live.LivePenalty(edgeID, entryTicks)

	turnPenalty, forbidden := e.resolveTurn(edgeID, predecessorEdgeID, xctx)

	b := CostBreakdown{
		BaseWeight:         baseWeight,
		TemporalMultiplier: multiplier,
		LivePenalty:        livePenalty,
		TurnPenalty:        turnPenalty,
		DayOfWeek:          sample.dayOfWeek,
		BucketIndex:        sample.bucket,
		FractionalBucket:   sample.fractional,
		DayActive:          sample.dayActive,
		Forbidden:          forbidden,
	}

	if forbidden || math.IsInf(float64(livePenalty), 1) {
		b.Effective = float32(math.Inf(1))

		return b
	}

	effective := float64(baseWeight)*float64(multiplier)*float64(livePenalty) + float64(turnPenalty)
	if math.IsNaN(effective) || math.IsInf(effective, 0) || effective < 0 {
		b.Effective = float32(math.Inf(1))

		return b
	}

	b.Effective = float32(effective)

	return b
}

// resolveTurn implements spec §4.2 step 5: NodeBased ignores finite
// penalties but a forbidden transition always blocks; EdgeBased applies
// the full looked-up value. An absent map or missing predecessor always
// yields (0, false).
func (e *CostEngine) resolveTurn(edgeID, predecessorEdgeID int32, xctx TransitionKind) (penalty float32, forbidden bool) {
	if predecessorEdgeID == NoPredecessor || e.turns == nil {
		return 0, false
	}

	p, ok := e.turns.Lookup(predecessorEdgeID, edgeID)
	if !ok {
		return 0, false
	}
	if p == graphmodel.ForbiddenTurn {
		return 0, true
	}
	if xctx == NodeBased {
		return 0, false
	}

	return p, false
}
