package planner_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AayushPS/taro/cost"
	"github.com/AayushPS/taro/graphmodel"
	"github.com/AayushPS/taro/heuristic"
	"github.com/AayushPS/taro/planner"
)

// sixNodeGrid builds a small deterministic 2x3 grid:
//
//	0 -> 1 -> 2
//	|    |    |
//	v    v    v
//	3 -> 4 -> 5
func sixNodeGrid(t *testing.T) (*graphmodel.EdgeGraph, *graphmodel.ProfileStore) {
	t.Helper()
	profiles := flatProfile(t)
	edges := []graphmodel.EdgeInput{
		{Origin: 0, Destination: 1, BaseWeight: 1, ProfileID: 0},
		{Origin: 1, Destination: 2, BaseWeight: 1, ProfileID: 0},
		{Origin: 0, Destination: 3, BaseWeight: 1, ProfileID: 0},
		{Origin: 1, Destination: 4, BaseWeight: 1, ProfileID: 0},
		{Origin: 2, Destination: 5, BaseWeight: 1, ProfileID: 0},
		{Origin: 3, Destination: 4, BaseWeight: 1, ProfileID: 0},
		{Origin: 4, Destination: 5, BaseWeight: 1, ProfileID: 0},
	}
	g, err := graphmodel.NewEdgeGraph(6, edges, 1, nil)
	require.NoError(t, err)

	return g, profiles
}

func newMatrixPlanner(t *testing.T, g *graphmodel.EdgeGraph, profiles *graphmodel.ProfileStore) (*planner.OneToManyMatrixPlanner, *cost.CostEngine) {
	t.Helper()
	engine := engineFor(t, g, profiles, nil, nil)
	p2p := newPlanner(t, engine, profiles)
	mp := planner.NewOneToManyMatrixPlanner(engine, p2p, planner.MatrixDispatchConfig{MaxNativeAStarTargets: 4, AstarFallbackBatchTargets: 4}, planner.MatrixBudget{})

	return mp, engine
}

func TestMatrix_DedupRowsAndColumns(t *testing.T) {
	g, profiles := sixNodeGrid(t)
	mp, _ := newMatrixPlanner(t, g, profiles)

	sources := []int32{0, 0, 3}
	targets := []int32{2, 5, 2}
	targetIdx := planner.NewMatrixTargetIndex(targets)

	mctx := planner.NewMatrixQueryContext(g.NodeCount())
	rctx := planner.NewPlannerQueryContext(g.NodeCount())

	req := planner.MatrixRequest{
		Sources:        sources,
		Targets:        targets,
		DepartureTicks: 0,
		Algorithm:      planner.Dijkstra,
		Provider:       heuristic.NewNone(),
		Temporal:       linearTemporal(),
		Transition:     cost.NodeBased,
	}

	rows := make([]planner.MatrixRowResult, len(sources))
	requestWork := 0
	for i, s := range sources {
		row, work, err := mp.ComputeRow(mctx, rctx, s, targetIdx, req, requestWork)
		require.NoError(t, err)
		rows[i] = row
		requestWork = work
	}

	// Rows for the two occurrences of source A (index 0 and 1) must match.
	assert.Equal(t, rows[0].Reachable, rows[1].Reachable)
	assert.Equal(t, rows[0].TotalCost, rows[1].TotalCost)
	assert.Equal(t, rows[0].Arrival, rows[1].Arrival)

	// Columns referring to target X (targetIdx columns 0 and 2) must match,
	// for every row, once expanded back into original column order.
	for _, row := range rows {
		colX0 := row.TotalCost[targetIdx.ColumnUniqueIndex(0)]
		colX2 := row.TotalCost[targetIdx.ColumnUniqueIndex(2)]
		assert.Equal(t, colX0, colX2)
	}
}

func TestMatrix_NativeDijkstraMatchesPointToPoint(t *testing.T) {
	g, profiles := sixNodeGrid(t)
	mp, engine := newMatrixPlanner(t, g, profiles)
	p2p := newPlanner(t, engine, profiles)

	targetIdx := planner.NewMatrixTargetIndex([]int32{5})
	mctx := planner.NewMatrixQueryContext(g.NodeCount())
	rctx := planner.NewPlannerQueryContext(g.NodeCount())

	req := planner.MatrixRequest{
		Sources:        []int32{0},
		Targets:        []int32{5},
		DepartureTicks: 0,
		Algorithm:      planner.Dijkstra,
		Provider:       heuristic.NewNone(),
		Temporal:       linearTemporal(),
		Transition:     cost.NodeBased,
	}

	row, _, err := mp.ComputeRow(mctx, rctx, 0, targetIdx, req, 0)
	require.NoError(t, err)
	require.True(t, row.Reachable[0])

	p2pCtx := planner.NewPlannerQueryContext(g.NodeCount())
	direct, err := p2p.Route(p2pCtx, 0, 5, 0, linearTemporal(), cost.NodeBased, heuristic.NewNone())
	require.NoError(t, err)
	require.True(t, direct.Reachable)

	assert.InDelta(t, direct.TotalCost, row.TotalCost[0], 1e-5)
	assert.Equal(t, direct.ArrivalTicks, row.Arrival[0])
}

func TestMatrix_UnreachableCellIsCanonicalized(t *testing.T) {
	profiles := flatProfile(t)
	g, err := graphmodel.NewEdgeGraph(3, []graphmodel.EdgeInput{
		{Origin: 0, Destination: 1, BaseWeight: 1, ProfileID: 0},
	}, 1, nil)
	require.NoError(t, err)
	mp, _ := newMatrixPlanner(t, g, profiles)

	targetIdx := planner.NewMatrixTargetIndex([]int32{2})
	mctx := planner.NewMatrixQueryContext(g.NodeCount())
	rctx := planner.NewPlannerQueryContext(g.NodeCount())

	req := planner.MatrixRequest{
		Sources:        []int32{0},
		Targets:        []int32{2},
		DepartureTicks: 42,
		Algorithm:      planner.Dijkstra,
		Provider:       heuristic.NewNone(),
		Temporal:       linearTemporal(),
		Transition:     cost.NodeBased,
	}

	row, _, err := mp.ComputeRow(mctx, rctx, 0, targetIdx, req, 0)
	require.NoError(t, err)
	require.False(t, row.Reachable[0])
	assert.True(t, math.IsInf(row.TotalCost[0], 1))
	assert.Equal(t, int64(42), row.Arrival[0])
}

// TestMatrix_AStarFallbackAccumulatesRequestWorkAcrossRows exercises the
// AStar-fallback dispatch path (idx.Len() above MaxNativeAStarTargets) and
// confirms fallbackRow threads requestWorkSoFar across rows instead of
// resetting the per-request budget counter to zero on every call.
func TestMatrix_AStarFallbackAccumulatesRequestWorkAcrossRows(t *testing.T) {
	g, profiles := sixNodeGrid(t)
	engine := engineFor(t, g, profiles, nil, nil)
	p2p := newPlanner(t, engine, profiles)

	// MaxNativeAStarTargets: 0 forces every AStar row through fallbackRow.
	cfg := planner.MatrixDispatchConfig{MaxNativeAStarTargets: 0, AstarFallbackBatchTargets: 4}

	targetIdx := planner.NewMatrixTargetIndex([]int32{5})
	req := planner.MatrixRequest{
		Sources:        []int32{0, 3},
		Targets:        []int32{5},
		DepartureTicks: 0,
		Algorithm:      planner.AStar,
		Provider:       heuristic.NewNone(),
		Temporal:       linearTemporal(),
		Transition:     cost.NodeBased,
	}

	// Measure one row's actual settled-state work with no budget in force.
	unbounded := planner.NewOneToManyMatrixPlanner(engine, p2p, cfg, planner.MatrixBudget{})
	mctx := planner.NewMatrixQueryContext(g.NodeCount())
	rctx := planner.NewPlannerQueryContext(g.NodeCount())

	firstRow, firstWork, err := unbounded.ComputeRow(mctx, rctx, 0, targetIdx, req, 0)
	require.NoError(t, err)
	require.True(t, firstRow.Reachable[0])
	require.Greater(t, firstWork, 0)

	// A budget set exactly to one row's work must let the first row through
	// but reject the second: proof the counter threads across rows rather
	// than resetting.
	tight := planner.NewOneToManyMatrixPlanner(engine, p2p, cfg, planner.MatrixBudget{MaxRequestWorkStates: firstWork})
	mctx2 := planner.NewMatrixQueryContext(g.NodeCount())
	rctx2 := planner.NewPlannerQueryContext(g.NodeCount())

	row1, work1, err := tight.ComputeRow(mctx2, rctx2, 0, targetIdx, req, 0)
	require.NoError(t, err)
	require.True(t, row1.Reachable[0])
	assert.Equal(t, firstWork, work1)

	_, _, err = tight.ComputeRow(mctx2, rctx2, 3, targetIdx, req, work1)
	require.Error(t, err)
	assert.ErrorIs(t, err, planner.ErrBudgetRequestWork)
}
