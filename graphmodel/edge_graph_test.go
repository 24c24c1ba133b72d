package graphmodel_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AayushPS/taro/graphmodel"
)

func chainEdges() []graphmodel.EdgeInput {
	// 0 -> 1 -> 2 -> 3 -> 4, unit base weight, profile 0.
	edges := make([]graphmodel.EdgeInput, 0, 4)
	for i := int32(0); i < 4; i++ {
		edges = append(edges, graphmodel.EdgeInput{Origin: i, Destination: i + 1, BaseWeight: 1, ProfileID: 0})
	}

	return edges
}

func TestNewEdgeGraph_CSRShape(t *testing.T) {
	g, err := graphmodel.NewEdgeGraph(5, chainEdges(), 1, nil)
	require.NoError(t, err)
	assert.Equal(t, int32(5), g.NodeCount())
	assert.Equal(t, int32(4), g.EdgeCount())

	for v := int32(0); v < 4; v++ {
		start, end := g.OutgoingRange(v)
		require.Equal(t, end-start, int32(1))
		assert.Equal(t, v+1, g.EdgeDestination(start))
		assert.Equal(t, v, g.EdgeOrigin(start))
		assert.Equal(t, float32(1), g.BaseWeight(start))
	}
	start, end := g.OutgoingRange(4)
	assert.Equal(t, start, end, "terminal node has no outgoing edges")
}

func TestNewEdgeGraph_StableBucketOrder(t *testing.T) {
	// Multiple edges from the same origin must keep their input order
	// inside the CSR bucket — determinism depends on this.
	edges := []graphmodel.EdgeInput{
		{Origin: 0, Destination: 2, BaseWeight: 5, ProfileID: 0},
		{Origin: 0, Destination: 1, BaseWeight: 1, ProfileID: 0},
		{Origin: 1, Destination: 2, BaseWeight: 1, ProfileID: 0},
	}
	g, err := graphmodel.NewEdgeGraph(3, edges, 1, nil)
	require.NoError(t, err)

	start, end := g.OutgoingRange(0)
	require.Equal(t, int32(2), end-start)
	assert.Equal(t, int32(2), g.EdgeDestination(start))
	assert.Equal(t, int32(1), g.EdgeDestination(start+1))
}

func TestNewEdgeGraph_Validation(t *testing.T) {
	t.Run("endpoint out of range", func(t *testing.T) {
		_, err := graphmodel.NewEdgeGraph(2, []graphmodel.EdgeInput{{Origin: 0, Destination: 5, BaseWeight: 1}}, 1, nil)
		assert.True(t, errors.Is(err, graphmodel.ErrEdgeEndpointOutOfRange))
	})
	t.Run("negative weight", func(t *testing.T) {
		_, err := graphmodel.NewEdgeGraph(2, []graphmodel.EdgeInput{{Origin: 0, Destination: 1, BaseWeight: -1}}, 1, nil)
		assert.True(t, errors.Is(err, graphmodel.ErrNonFiniteWeight))
	})
	t.Run("profile id out of range", func(t *testing.T) {
		_, err := graphmodel.NewEdgeGraph(2, []graphmodel.EdgeInput{{Origin: 0, Destination: 1, BaseWeight: 1, ProfileID: 3}}, 1, nil)
		assert.True(t, errors.Is(err, graphmodel.ErrProfileIDOutOfRange))
	})
	t.Run("coordinate count mismatch", func(t *testing.T) {
		_, err := graphmodel.NewEdgeGraph(2, nil, 1, []graphmodel.Coordinate{{Lat: 0, Lon: 0}})
		assert.True(t, errors.Is(err, graphmodel.ErrCoordinateCountMismatch))
	})
}

func TestEdgeGraph_Coordinates(t *testing.T) {
	coords := []graphmodel.Coordinate{{Lat: 1, Lon: 2}, {Lat: 3, Lon: 4}}
	g, err := graphmodel.NewEdgeGraph(2, nil, 1, coords)
	require.NoError(t, err)
	assert.True(t, g.HasCoordinates())

	c, ok := g.Coordinate(1)
	require.True(t, ok)
	assert.Equal(t, 3.0, c.Lat)

	empty, err := graphmodel.NewEdgeGraph(2, nil, 1, nil)
	require.NoError(t, err)
	assert.False(t, empty.HasCoordinates())
	_, ok = empty.Coordinate(0)
	assert.False(t, ok)
}
