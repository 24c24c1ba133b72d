package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AayushPS/taro/graphmodel"
)

func TestActiveLabelLists_DominanceInsertAndDiscard(t *testing.T) {
	labels := newLabelStore()
	active := newActiveLabelLists()

	id1, ok := active.insert(labels, 7, 5.0, 100, -1)
	assert.True(t, ok)
	assert.True(t, labels.isActive(id1))

	// A strictly worse candidate on the same edge must be discarded.
	_, ok = active.insert(labels, 7, 6.0, 100, -1)
	assert.False(t, ok)
	assert.True(t, labels.isActive(id1))

	// A strictly better candidate must be inserted and deactivate id1.
	id2, ok := active.insert(labels, 7, 3.0, 90, -1)
	assert.True(t, ok)
	assert.True(t, labels.isActive(id2))
	assert.False(t, labels.isActive(id1))
}

func TestActiveLabelLists_ResetReusesBackingArrays(t *testing.T) {
	labels := newLabelStore()
	active := newActiveLabelLists()

	_, _ = active.insert(labels, 1, 1.0, 10, -1)
	active.reset()
	labels.reset()

	assert.Equal(t, 0, len(labels.edgeID))
	assert.Equal(t, 0, len(active.byEdge[1]))

	id, ok := active.insert(labels, 1, 2.0, 20, -1)
	assert.True(t, ok)
	assert.Equal(t, int32(0), id) // arena id space restarted
}

func TestReverseEdgeIndex_IncomingRanges(t *testing.T) {
	g, err := graphmodel.NewEdgeGraph(3, []graphmodel.EdgeInput{
		{Origin: 0, Destination: 2, BaseWeight: 1},
		{Origin: 1, Destination: 2, BaseWeight: 1},
		{Origin: 0, Destination: 1, BaseWeight: 1},
	}, 1, nil)
	assert.NoError(t, err)

	r := NewReverseEdgeIndex(g)
	start, end := r.IncomingRange(2)
	assert.Equal(t, int32(2), end-start)

	start, end = r.IncomingRange(0)
	assert.Equal(t, int32(0), end-start)
}

func TestLowerBounds_UsesMinMultiplier(t *testing.T) {
	profiles, err := graphmodel.NewProfileStore([]graphmodel.ProfileInput{{DayMask: 0x7F, Buckets: []float32{0.5, 1.0}, Multiplier: 1}})
	assert.NoError(t, err)
	g, err := graphmodel.NewEdgeGraph(2, []graphmodel.EdgeInput{{Origin: 0, Destination: 1, BaseWeight: 10, ProfileID: 0}}, 1, nil)
	assert.NoError(t, err)

	lb := NewLowerBounds(g, profiles)
	assert.InDelta(t, 5.0, lb.Get(0), 1e-9)
}

func TestTerminationPolicy_RejectsNegativePriority(t *testing.T) {
	var term TerminationPolicy
	_, err := term.ShouldTerminate(-1, 10)
	assert.ErrorIs(t, err, ErrNonFinitePriority)
}

func TestTerminationPolicy_TerminatesWhenPriorityExceedsBest(t *testing.T) {
	var term TerminationPolicy
	stop, err := term.ShouldTerminate(11, 10)
	assert.NoError(t, err)
	assert.True(t, stop)

	stop, err = term.ShouldTerminate(9, 10)
	assert.NoError(t, err)
	assert.False(t, stop)
}

func TestSearchBudget_UnboundedWhenNonPositive(t *testing.T) {
	b := SearchBudget{}
	assert.NoError(t, b.CheckSettledStates(1_000_000))
	assert.NoError(t, b.CheckLabels(1_000_000))
	assert.NoError(t, b.CheckFrontierSize(1_000_000))
}

func TestMatrixTargetIndex_Dedup(t *testing.T) {
	idx := NewMatrixTargetIndex([]int32{5, 9, 5, 2})
	assert.Equal(t, []int32{5, 9, 2}, idx.Unique)
	assert.Equal(t, 0, idx.ColumnUniqueIndex(0))
	assert.Equal(t, 1, idx.ColumnUniqueIndex(1))
	assert.Equal(t, 0, idx.ColumnUniqueIndex(2))
	assert.Equal(t, 2, idx.ColumnUniqueIndex(3))

	u, ok := idx.NodeUniqueIndex(9)
	assert.True(t, ok)
	assert.Equal(t, 1, u)

	_, ok = idx.NodeUniqueIndex(42)
	assert.False(t, ok)
}
