package config

import (
	"github.com/AayushPS/taro/cost"
	"github.com/AayushPS/taro/overlay"
	"github.com/AayushPS/taro/planner"
)

// Config is the full, declarative configuration surface for a RouteCore
// instance: every budget, dispatch threshold, and policy enum spec §6
// lists as a recognized option. Grouped by the subsystem each field
// feeds, matching 99souls-ariadne/engine.Config's layout.
type Config struct {
	// Route carries the point-to-point search budget (spec §4.6).
	Route RouteBudgetConfig `yaml:"route_budget"`

	// Matrix carries the one-to-many search budgets and dispatch
	// thresholds (spec §4.5, §4.6).
	Matrix MatrixConfig `yaml:"matrix"`

	// Overlay carries the live-overlay capacity and cleanup policy
	// (spec §4.1).
	Overlay overlay.Config `yaml:"overlay"`

	// Engine carries the cost engine's time-unit and temporal-sampling
	// policy (spec §4.2).
	Engine EngineConfig `yaml:"engine"`
}

// RouteBudgetConfig mirrors planner.SearchBudget with yaml tags; kept
// distinct from planner.SearchBudget so this package has no import-time
// dependency on the planner's internal field ordering surviving as wire
// format.
type RouteBudgetConfig struct {
	MaxSettledStates int `yaml:"max_settled_states"`
	MaxLabels        int `yaml:"max_labels"`
	MaxFrontierSize  int `yaml:"max_frontier_size"`
}

// ToPlanner converts to the type planner.NewBidirectionalTdAStarPlanner
// accepts.
func (c RouteBudgetConfig) ToPlanner() planner.SearchBudget {
	return planner.SearchBudget{
		MaxSettledStates: c.MaxSettledStates,
		MaxLabels:        c.MaxLabels,
		MaxFrontierSize:  c.MaxFrontierSize,
	}
}

// MatrixConfig carries the matrix planner's per-row and per-request
// budgets plus the native-A*-vs-fallback dispatch thresholds.
type MatrixConfig struct {
	MaxRowWorkStates          int `yaml:"max_row_work_states"`
	MaxRowLabels              int `yaml:"max_row_labels"`
	MaxRowFrontierSize        int `yaml:"max_row_frontier_size"`
	MaxRequestWorkStates      int `yaml:"max_request_work_states"`
	MaxNativeAStarTargets     int `yaml:"max_native_astar_targets"`
	AstarFallbackBatchTargets int `yaml:"astar_fallback_batch_targets"`
}

// ToBudget converts to planner.MatrixBudget.
func (c MatrixConfig) ToBudget() planner.MatrixBudget {
	return planner.MatrixBudget{
		MaxRowWorkStates:     c.MaxRowWorkStates,
		MaxRowLabels:         c.MaxRowLabels,
		MaxRowFrontierSize:   c.MaxRowFrontierSize,
		MaxRequestWorkStates: c.MaxRequestWorkStates,
	}
}

// ToDispatch converts to planner.MatrixDispatchConfig.
func (c MatrixConfig) ToDispatch() planner.MatrixDispatchConfig {
	return planner.MatrixDispatchConfig{
		MaxNativeAStarTargets:     c.MaxNativeAStarTargets,
		AstarFallbackBatchTargets: c.AstarFallbackBatchTargets,
	}
}

// EngineConfig carries the cost engine's numeric policy: how raw ticks
// map to seconds, how temporal buckets are sampled, and how wide one
// bucket is.
type EngineConfig struct {
	TimeUnit          string `yaml:"engine_time_unit"` // "seconds" | "milliseconds"
	BucketSizeSeconds int64  `yaml:"bucket_size_seconds"`
	SamplingPolicy    string `yaml:"temporal_sampling_policy"` // "discrete" | "interpolated"
}

// ToCostConfig resolves the string enum fields into cost.Config. Callers
// that already hold resolved cost.TimeUnit/SamplingPolicy values (e.g.
// constructed programmatically) may bypass this and build cost.Config
// directly.
func (c EngineConfig) ToCostConfig() cost.Config {
	unit := cost.Seconds
	if c.TimeUnit == "milliseconds" {
		unit = cost.Milliseconds
	}

	policy := cost.Discrete
	if c.SamplingPolicy == "interpolated" {
		policy = cost.Interpolated
	}

	return cost.Config{
		TimeUnit:          unit,
		BucketSizeSeconds: c.BucketSizeSeconds,
		SamplingPolicy:    policy,
	}
}

// Defaults returns a Config with generous, unbounded-by-default budgets
// (spec §4.6's "non-positive limit means unbounded" convention) and a
// once-per-hour discrete sampling policy over second-granularity ticks.
// Deployments with strict resource ceilings are expected to override the
// budget fields explicitly.
func Defaults() Config {
	return Config{
		Route: RouteBudgetConfig{
			MaxSettledStates: 0,
			MaxLabels:        0,
			MaxFrontierSize:  0,
		},
		Matrix: MatrixConfig{
			MaxRowWorkStates:          0,
			MaxRowLabels:              0,
			MaxRowFrontierSize:        0,
			MaxRequestWorkStates:      0,
			MaxNativeAStarTargets:     32,
			AstarFallbackBatchTargets: 16,
		},
		Overlay: overlay.Config{
			MaxLiveOverrides:   1_000_000,
			CapacityPolicy:     overlay.EvictExpiredThenReject,
			WriteCleanupBudget: 64,
			ReadCleanupEnabled: false,
		},
		Engine: EngineConfig{
			TimeUnit:          "seconds",
			BucketSizeSeconds: 3600,
			SamplingPolicy:    "discrete",
		},
	}
}
