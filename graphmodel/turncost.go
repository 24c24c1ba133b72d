package graphmodel

import (
	"fmt"
	"math"
)

// ForbiddenTurn is the distinguished penalty sentinel meaning the
// (from_edge, to_edge) transition may never be taken. Unlike finite
// penalties, it blocks the transition under every ResolvedTransitionContext
// — NodeBased mode ignores finite penalties but never ignores this one
// (spec §4.2 step 5, §3).
var ForbiddenTurn = float32(math.Inf(1))

// TurnInput is one (from_edge, to_edge) -> penalty registration.
type TurnInput struct {
	FromEdge int32
	ToEdge   int32
	Penalty  float32 // seconds; ForbiddenTurn blocks the transition
}

// turnKey packs an (from_edge, to_edge) pair into a single map key. Edge
// ids are validated to be non-negative int32s by the caller of
// NewTurnCostMap, so the 32-bit shift never loses information.
type turnKey uint64

func makeTurnKey(from, to int32) turnKey {
	return turnKey(uint64(uint32(from))<<32 | uint64(uint32(to)))
}

// TurnCostMap is an immutable sparse (from_edge, to_edge) -> penalty table.
// A nil *TurnCostMap is a valid "no turn restrictions" map: every lookup
// returns (0, false).
type TurnCostMap struct {
	penalties map[turnKey]float32
}

// NewTurnCostMap validates and compiles turn inputs into a sparse table.
// Penalty must be non-negative and finite, or exactly ForbiddenTurn.
// Registering the same (from_edge, to_edge) pair twice is an error.
func NewTurnCostMap(inputs []TurnInput) (*TurnCostMap, error) {
	m := make(map[turnKey]float32, len(inputs))
	for i, in := range inputs {
		if in.Penalty != ForbiddenTurn && !finiteNonNegative(in.Penalty) {
			return nil, fmt.Errorf("%w: turn[%d] from=%d to=%d penalty=%v",
				ErrInvalidPenalty, i, in.FromEdge, in.ToEdge, in.Penalty)
		}
		key := makeTurnKey(in.FromEdge, in.ToEdge)
		if _, exists := m[key]; exists {
			return nil, fmt.Errorf("%w: from=%d to=%d", ErrDuplicateTransition, in.FromEdge, in.ToEdge)
		}
		m[key] = in.Penalty
	}

	return &TurnCostMap{penalties: m}, nil
}

// Lookup returns the penalty registered for (fromEdge, toEdge) and true, or
// (0, false) if no entry exists (including when m is nil).
func (m *TurnCostMap) Lookup(fromEdge, toEdge int32) (penalty float32, ok bool) {
	if m == nil {
		return 0, false
	}
	p, ok := m.penalties[makeTurnKey(fromEdge, toEdge)]

	return p, ok
}
