package cost_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AayushPS/taro/cost"
	"github.com/AayushPS/taro/graphmodel"
	"github.com/AayushPS/taro/overlay"
)

func chainEngine(t *testing.T, policy cost.SamplingPolicy, turns []graphmodel.TurnInput) (*cost.CostEngine, *graphmodel.EdgeGraph) {
	t.Helper()

	profiles, err := graphmodel.NewProfileStore([]graphmodel.ProfileInput{
		{DayMask: 0x7F, Buckets: []float32{1.0, 1.0}, Multiplier: 1.0},
	})
	require.NoError(t, err)

	edges := []graphmodel.EdgeInput{
		{Origin: 0, Destination: 1, BaseWeight: 10, ProfileID: 0},
		{Origin: 1, Destination: 2, BaseWeight: 10, ProfileID: 0},
	}
	g, err := graphmodel.NewEdgeGraph(3, edges, 1, nil)
	require.NoError(t, err)

	var tm *graphmodel.TurnCostMap
	if turns != nil {
		tm, err = graphmodel.NewTurnCostMap(turns)
		require.NoError(t, err)
	}

	live := overlay.New(overlay.Config{MaxLiveOverrides: 10})

	eng, err := cost.NewCostEngine(g, profiles, tm, live, cost.Config{
		TimeUnit:          cost.Seconds,
		BucketSizeSeconds: 43200, // 2 buckets/day
		SamplingPolicy:    policy,
	})
	require.NoError(t, err)

	return eng, g
}

func mondayMidnightUTC(t *testing.T) int64 {
	t.Helper()
	// 2024-01-01 is a Monday.
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
}

func TestComputeEdgeCost_FlatProfileNoOverlayNoTurns(t *testing.T) {
	eng, _ := chainEngine(t, cost.Discrete, nil)
	c := eng.ComputeEdgeCost(0, cost.NoPredecessor, mondayMidnightUTC(t), cost.TemporalContext{Kind: cost.CalendarUTC}, cost.NodeBased)
	assert.InDelta(t, 10.0, float64(c), 1e-5)
}

func TestComputeEdgeCost_BlockedLiveIsInf(t *testing.T) {
	profiles, err := graphmodel.NewProfileStore([]graphmodel.ProfileInput{{DayMask: 0x7F, Buckets: []float32{1.0}, Multiplier: 1.0}})
	require.NoError(t, err)
	g, err := graphmodel.NewEdgeGraph(2, []graphmodel.EdgeInput{{Origin: 0, Destination: 1, BaseWeight: 10, ProfileID: 0}}, 1, nil)
	require.NoError(t, err)
	live := overlay.New(overlay.Config{MaxLiveOverrides: 10})
	blocked, _ := overlay.NewLiveUpdate(0, 0, 0, 1000)
	live.ApplyBatch([]overlay.LiveUpdate{blocked}, 0)

	eng, err := cost.NewCostEngine(g, profiles, nil, live, cost.Config{TimeUnit: cost.Seconds, BucketSizeSeconds: 86400, SamplingPolicy: cost.Discrete})
	require.NoError(t, err)

	c := eng.ComputeEdgeCost(0, cost.NoPredecessor, 0, cost.TemporalContext{Kind: cost.Linear}, cost.NodeBased)
	assert.True(t, math.IsInf(float64(c), 1))
}

func TestComputeEdgeCost_ExpiredLiveEqualsBaseline(t *testing.T) {
	profiles, err := graphmodel.NewProfileStore([]graphmodel.ProfileInput{{DayMask: 0x7F, Buckets: []float32{1.0}, Multiplier: 1.0}})
	require.NoError(t, err)
	g, err := graphmodel.NewEdgeGraph(2, []graphmodel.EdgeInput{{Origin: 0, Destination: 1, BaseWeight: 10, ProfileID: 0}}, 1, nil)
	require.NoError(t, err)
	live := overlay.New(overlay.Config{MaxLiveOverrides: 10})
	slowdown, _ := overlay.NewLiveUpdate(0, 0.5, 0, 10)
	live.ApplyBatch([]overlay.LiveUpdate{slowdown}, 0)

	eng, err := cost.NewCostEngine(g, profiles, nil, live, cost.Config{TimeUnit: cost.Seconds, BucketSizeSeconds: 86400, SamplingPolicy: cost.Discrete})
	require.NoError(t, err)

	atExpiry := eng.ComputeEdgeCost(0, cost.NoPredecessor, 10, cost.TemporalContext{Kind: cost.Linear}, cost.NodeBased)
	assert.InDelta(t, 10.0, float64(atExpiry), 1e-5)
}

func TestComputeEdgeCost_TurnPenaltyEdgeBasedVsNodeBased(t *testing.T) {
	eng, _ := chainEngine(t, cost.Discrete, []graphmodel.TurnInput{{FromEdge: 0, ToEdge: 1, Penalty: 5}})
	entry := mondayMidnightUTC(t)

	edgeBased := eng.ComputeEdgeCost(1, 0, entry, cost.TemporalContext{Kind: cost.CalendarUTC}, cost.EdgeBased)
	assert.InDelta(t, 15.0, float64(edgeBased), 1e-5)

	nodeBased := eng.ComputeEdgeCost(1, 0, entry, cost.TemporalContext{Kind: cost.CalendarUTC}, cost.NodeBased)
	assert.InDelta(t, 10.0, float64(nodeBased), 1e-5)
}

func TestComputeEdgeCost_ForbiddenTurnBlocksBothModes(t *testing.T) {
	eng, _ := chainEngine(t, cost.Discrete, []graphmodel.TurnInput{{FromEdge: 0, ToEdge: 1, Penalty: graphmodel.ForbiddenTurn}})
	entry := mondayMidnightUTC(t)

	for _, mode := range []cost.TransitionKind{cost.NodeBased, cost.EdgeBased} {
		c := eng.ComputeEdgeCost(1, 0, entry, cost.TemporalContext{Kind: cost.CalendarUTC}, mode)
		assert.True(t, math.IsInf(float64(c), 1), "mode=%v", mode)
	}
}

func TestComputeEdgeCost_InterpolatedBlendsBuckets(t *testing.T) {
	profiles, err := graphmodel.NewProfileStore([]graphmodel.ProfileInput{
		{DayMask: 0x7F, Buckets: []float32{1.0, 2.0}, Multiplier: 1.0},
	})
	require.NoError(t, err)
	g, err := graphmodel.NewEdgeGraph(2, []graphmodel.EdgeInput{{Origin: 0, Destination: 1, BaseWeight: 10, ProfileID: 0}}, 1, nil)
	require.NoError(t, err)
	live := overlay.New(overlay.Config{MaxLiveOverrides: 10})
	eng, err := cost.NewCostEngine(g, profiles, nil, live, cost.Config{
		TimeUnit: cost.Seconds, BucketSizeSeconds: 100, SamplingPolicy: cost.Interpolated,
	})
	require.NoError(t, err)

	// bucket width 100s, 2 buckets -> cycle 200s. At t=50 we're halfway
	// through bucket 0 (frac=0.5): blend(1.0,2.0,0.5) = 1.5 -> cost 15.
	c := eng.ComputeEdgeCost(0, cost.NoPredecessor, 50, cost.TemporalContext{Kind: cost.Linear}, cost.NodeBased)
	assert.InDelta(t, 15.0, float64(c), 1e-5)
}

func TestComputeEdgeCost_InactiveDayYieldsDefaultMultiplier(t *testing.T) {
	profiles, err := graphmodel.NewProfileStore([]graphmodel.ProfileInput{
		{DayMask: 0b0111110, Buckets: []float32{5.0}, Multiplier: 1.0}, // Tue-Sat active, Sun/Mon inactive
	})
	require.NoError(t, err)
	g, err := graphmodel.NewEdgeGraph(2, []graphmodel.EdgeInput{{Origin: 0, Destination: 1, BaseWeight: 10, ProfileID: 0}}, 1, nil)
	require.NoError(t, err)
	live := overlay.New(overlay.Config{MaxLiveOverrides: 10})
	eng, err := cost.NewCostEngine(g, profiles, nil, live, cost.Config{TimeUnit: cost.Seconds, BucketSizeSeconds: 86400, SamplingPolicy: cost.Discrete})
	require.NoError(t, err)

	c := eng.ComputeEdgeCost(0, cost.NoPredecessor, mondayMidnightUTC(t), cost.TemporalContext{Kind: cost.CalendarUTC}, cost.NodeBased)
	assert.InDelta(t, 10.0, float64(c), 1e-5) // multiplier forced to 1.0, not 5.0
}

func TestExplainEdgeCost_ReturnsBreakdown(t *testing.T) {
	eng, _ := chainEngine(t, cost.Discrete, nil)
	b := eng.ExplainEdgeCost(0, cost.NoPredecessor, mondayMidnightUTC(t), cost.TemporalContext{Kind: cost.CalendarUTC}, cost.NodeBased)
	assert.Equal(t, float32(10), b.BaseWeight)
	assert.Equal(t, float32(1), b.TemporalMultiplier)
	assert.Equal(t, float32(1), b.LivePenalty)
	assert.False(t, b.Forbidden)
	assert.InDelta(t, 10.0, float64(b.Effective), 1e-5)
}

func TestValidateTemporalContext_RejectsNilZoneForCalendarWithZone(t *testing.T) {
	err := cost.ValidateTemporalContext(cost.TemporalContext{Kind: cost.CalendarWithZone})
	require.ErrorIs(t, err, cost.ErrNilZoneLocation)
}

func TestValidateTemporalContext_AcceptsZonedCalendarWithZone(t *testing.T) {
	err := cost.ValidateTemporalContext(cost.TemporalContext{Kind: cost.CalendarWithZone, Zone: time.UTC})
	require.NoError(t, err)
}

func TestValidateTemporalContext_AcceptsLinearAndCalendarUTCWithoutZone(t *testing.T) {
	require.NoError(t, cost.ValidateTemporalContext(cost.TemporalContext{Kind: cost.Linear}))
	require.NoError(t, cost.ValidateTemporalContext(cost.TemporalContext{Kind: cost.CalendarUTC}))
}
