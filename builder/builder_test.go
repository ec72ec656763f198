// Package builder_test validates the topology constructors: parameter
// domains, deterministic shapes, and the weight policy.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burt/builder"
	"github.com/katalvlaran/burt/core"
)

func TestBuild_NilInputs(t *testing.T) {
	assert.ErrorIs(t, builder.Build(nil, builder.Star(3)), builder.ErrNilGraph)
	assert.ErrorIs(t, builder.Build(core.NewGraph(), nil), builder.ErrNilConstructor)
}

func TestConstructors_TooFewVertices(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, builder.Build(g, builder.Star(1)), builder.ErrTooFewVertices)
	assert.ErrorIs(t, builder.Build(g, builder.Path(1)), builder.ErrTooFewVertices)
	assert.ErrorIs(t, builder.Build(g, builder.Cycle(2)), builder.ErrTooFewVertices)
	assert.ErrorIs(t, builder.Build(g, builder.Complete(1)), builder.ErrTooFewVertices)
	// Nothing is committed before validation.
	assert.Equal(t, 0, g.VertexCount())
}

func TestStar_UndirectedShape(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, builder.Build(g, builder.Star(5)))

	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())

	hub, err := g.NeighborIDs(1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 4, 5}, hub)

	leaf, err := g.NeighborIDs(3)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, leaf)
}

func TestStar_DirectedSpokesAreSymmetric(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, builder.Build(g, builder.Star(4)))

	assert.Equal(t, 6, g.EdgeCount()) // 2·(n-1)
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 1))
}

func TestPath_Shape(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, builder.Build(g, builder.Path(4)))

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge(2, 3))
	assert.False(t, g.HasEdge(1, 4))
}

func TestCycle_DirectedRing(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, builder.Build(g, builder.Cycle(4)))

	assert.Equal(t, 4, g.EdgeCount())

	out, err := g.OutNeighborIDs(1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, out)

	in, err := g.InNeighborIDs(1)
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, in)
}

func TestComplete_WeightPolicy(t *testing.T) {
	// Weighted graph: every edge takes the configured constant.
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, builder.Build(g, builder.Complete(3), builder.WithConstantWeight(2.5)))

	assert.Equal(t, 3, g.EdgeCount())
	w, err := g.Weight(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2.5, w)

	// Unweighted graph: the weight function is ignored, edges carry 0.
	u := core.NewGraph()
	require.NoError(t, builder.Build(u, builder.Complete(3), builder.WithConstantWeight(2.5)))
	w, err = u.Weight(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, w)
}

func TestWithWeightFn_PerEdgeWeights(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, builder.Build(g, builder.Path(3),
		builder.WithWeightFn(func(from, to int64) float64 { return float64(from*10 + to) })))

	w, err := g.Weight(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 12.0, w)
	w, err = g.Weight(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 23.0, w)
}

func TestWithWeightFn_NilPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}
