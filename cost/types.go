package cost

import (
	"errors"
	"time"
)

// Sentinel errors for CostEngine construction.
var (
	ErrNilGraph        = errors.New("cost: graph is nil")
	ErrNilProfiles     = errors.New("cost: profile store is nil")
	ErrNilOverlay      = errors.New("cost: live overlay is nil")
	ErrBadBucketSize   = errors.New("cost: bucket_size_seconds must be positive")
	ErrNilZoneLocation = errors.New("cost: CalendarWithZone requires a non-nil time.Location")
)

// NoPredecessor is the sentinel passed as predecessorEdgeID when an edge
// has no predecessor (the first edge of a path).
const NoPredecessor int32 = -1

// TimeUnit selects how raw engine ticks map onto wall-clock seconds.
type TimeUnit int

const (
	// Seconds means one tick equals one second.
	Seconds TimeUnit = iota
	// Milliseconds means one tick equals one millisecond.
	Milliseconds
)

// SamplingPolicy selects how a profile's bucket array is sampled.
type SamplingPolicy int

const (
	// Discrete samples exactly bucket[bucket_index].
	Discrete SamplingPolicy = iota
	// Interpolated linearly blends bucket[bucket_index] and the next
	// bucket (with cyclic wraparound) using fractional_bucket.
	Interpolated
)

// TemporalKind selects how entry ticks are mapped onto (day_of_week,
// bucket_index, fractional_bucket).
type TemporalKind int

const (
	// Linear ignores day_mask entirely and bucketizes modulo the
	// profile's bucket count times bucket_size_seconds.
	Linear TemporalKind = iota
	// CalendarUTC converts ticks to a UTC instant and derives weekday
	// and local second-of-day from it.
	CalendarUTC
	// CalendarWithZone is CalendarUTC but converts into a named zone
	// before deriving weekday/second-of-day.
	CalendarWithZone
)

// TemporalContext is the immutable, resolved temporal policy bound at
// RouteCore construction. Zone is required (non-nil) iff Kind ==
// CalendarWithZone; callers that construct one directly must run it through
// ValidateTemporalContext before binding it to a RouteCore/CostEngine.
type TemporalContext struct {
	Kind TemporalKind
	Zone *time.Location
}

// ValidateTemporalContext enforces TemporalContext's documented invariant.
// Called once, at the point a TemporalContext is resolved for the lifetime
// of a RouteCore instance (spec §7: configuration errors fail before any
// planner work starts), not on every ComputeEdgeCost call.
func ValidateTemporalContext(tctx TemporalContext) error {
	if tctx.Kind == CalendarWithZone && tctx.Zone == nil {
		return ErrNilZoneLocation
	}

	return nil
}

// TransitionKind selects whether finite turn penalties are applied.
type TransitionKind int

const (
	// NodeBased ignores finite turn penalties; forbidden transitions
	// still block.
	NodeBased TransitionKind = iota
	// EdgeBased applies the full looked-up penalty, finite or forbidden.
	EdgeBased
)

// Config carries the engine-wide numeric policy CostEngine needs on every
// call: how ticks map to seconds and how wide one temporal bucket is.
type Config struct {
	TimeUnit          TimeUnit
	BucketSizeSeconds int64
	SamplingPolicy    SamplingPolicy
}

// CostBreakdown is the explainable result of ExplainEdgeCost, returned by
// value — a superset of ComputeEdgeCost's return value, intended
// for diagnostics/logging rather than the search hot path.
type CostBreakdown struct {
	BaseWeight         float32
	TemporalMultiplier float32
	LivePenalty        float32
	TurnPenalty        float32
	Effective          float32
	DayOfWeek          int
	BucketIndex        int
	FractionalBucket   float64
	DayActive          bool
	Forbidden          bool
}
