// Package core_test validates the Graph container: construction flags,
// vertex/edge lifecycle, weight policy, and deterministic neighborhood
// queries under every direction regime.
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burt/core"
)

// ------------------------------------------------------------------------
// 1. Vertices
// ------------------------------------------------------------------------

func TestAddVertex_RejectsNonPositiveIDs(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(0), core.ErrBadVertexID)
	assert.ErrorIs(t, g.AddVertex(-7), core.ErrBadVertexID)
	assert.Equal(t, 0, g.VertexCount())
}

func TestAddVertex_IdempotentAndSorted(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(30))
	require.NoError(t, g.AddVertex(10))
	require.NoError(t, g.AddVertex(20))
	require.NoError(t, g.AddVertex(10)) // duplicate is a no-op

	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, []int64{10, 20, 30}, g.Vertices())
	assert.True(t, g.HasVertex(20))
	assert.False(t, g.HasVertex(40))
	assert.False(t, g.HasVertex(-1))
}

// ------------------------------------------------------------------------
// 2. Edge policy
// ------------------------------------------------------------------------

func TestAddEdge_AutoCreatesEndpoints(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 0))

	assert.Equal(t, []int64{1, 2}, g.Vertices())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_WeightPolicy(t *testing.T) {
	unweighted := core.NewGraph()
	assert.ErrorIs(t, unweighted.AddEdge(1, 2, 3.5), core.ErrBadWeight)

	weighted := core.NewGraph(core.WithWeighted())
	assert.ErrorIs(t, weighted.AddEdge(1, 2, math.NaN()), core.ErrBadWeight)
	assert.ErrorIs(t, weighted.AddEdge(1, 2, math.Inf(1)), core.ErrBadWeight)

	// Negative finite weights are storable: metric packages, not the
	// container, are in charge of refusing them.
	require.NoError(t, weighted.AddEdge(1, 2, -1.0))
	w, err := weighted.Weight(1, 2)
	require.NoError(t, err)
	assert.Equal(t, -1.0, w)
}

func TestAddEdge_LoopPolicy(t *testing.T) {
	plain := core.NewGraph()
	assert.ErrorIs(t, plain.AddEdge(3, 3, 0), core.ErrLoopNotAllowed)

	looped := core.NewGraph(core.WithLoops())
	require.NoError(t, looped.AddEdge(3, 3, 0))
	assert.True(t, looped.HasEdge(3, 3))
}

func TestAddEdge_RejectsParallelEdges(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 0))
	assert.ErrorIs(t, g.AddEdge(1, 2, 0), core.ErrEdgeExists)
	// Undirected: the mirror counts as the same edge.
	assert.ErrorIs(t, g.AddEdge(2, 1, 0), core.ErrEdgeExists)

	d := core.NewGraph(core.WithDirected(true))
	require.NoError(t, d.AddEdge(1, 2, 0))
	// Directed: the reverse orientation is a distinct edge.
	require.NoError(t, d.AddEdge(2, 1, 0))
	assert.Equal(t, 2, d.EdgeCount())
}

func TestHasEdgeAndWeight_DirectionSensitivity(t *testing.T) {
	u := core.NewGraph(core.WithWeighted())
	require.NoError(t, u.AddEdge(1, 2, 4.5))
	assert.True(t, u.HasEdge(1, 2))
	assert.True(t, u.HasEdge(2, 1))
	w, err := u.Weight(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.5, w)

	d := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	require.NoError(t, d.AddEdge(1, 2, 4.5))
	assert.True(t, d.HasEdge(1, 2))
	assert.False(t, d.HasEdge(2, 1))
	_, err = d.Weight(2, 1)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestRemoveEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 0))
	require.NoError(t, g.RemoveEdge(2, 1)) // mirror orientation removes the edge too

	assert.False(t, g.HasEdge(1, 2))
	assert.Equal(t, 0, g.EdgeCount())
	assert.ErrorIs(t, g.RemoveEdge(1, 2), core.ErrEdgeNotFound)
	// Vertices survive edge removal.
	assert.True(t, g.HasVertex(1))
}

// ------------------------------------------------------------------------
// 3. Neighborhood queries
// ------------------------------------------------------------------------

func TestNeighborIDs_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge(2, 1, 0))
	require.NoError(t, g.AddEdge(2, 3, 0))
	require.NoError(t, g.AddEdge(4, 2, 0))

	out, err := g.OutNeighborIDs(2)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, out)

	in, err := g.InNeighborIDs(2)
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, in)

	all, err := g.NeighborIDs(2)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 4}, all)
}

func TestNeighborIDs_UndirectedCoincide(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 0))
	require.NoError(t, g.AddEdge(1, 3, 0))

	out, err := g.OutNeighborIDs(1)
	require.NoError(t, err)
	in, err := g.InNeighborIDs(1)
	require.NoError(t, err)
	all, err := g.NeighborIDs(1)
	require.NoError(t, err)

	assert.Equal(t, []int64{2, 3}, out)
	assert.Equal(t, out, in)
	assert.Equal(t, out, all)
}

func TestNeighborIDs_SelfLoopListsSelf(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	require.NoError(t, g.AddEdge(5, 5, 0))
	require.NoError(t, g.AddEdge(5, 6, 0))

	out, err := g.OutNeighborIDs(5)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 6}, out)

	in, err := g.InNeighborIDs(5)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, in)
}

func TestNeighborIDs_Validation(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(1))

	_, err := g.NeighborIDs(0)
	assert.ErrorIs(t, err, core.ErrBadVertexID)
	_, err = g.OutNeighborIDs(99)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	// A vertex with no edges has empty (not nil-error) neighborhoods.
	all, err := g.NeighborIDs(1)
	require.NoError(t, err)
	assert.Empty(t, all)
}
