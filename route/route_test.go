// SPDX-License-Identifier: MIT

package route_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routeopt/core"
	"github.com/katalvlaran/routeopt/matrix"
	"github.com/katalvlaran/routeopt/route"
	"github.com/katalvlaran/routeopt/tsp"
)

// seedMap returns the S/A/B map: S–A 15, A–B 20.
func seedMap(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, n := range []core.Node{{ID: "S", Label: "Start"}, {ID: "A", Label: "City A"}, {ID: "B", Label: "City B"}} {
		_, err := g.AddNode(n.ID, n.Label)
		require.NoError(t, err)
	}
	_, err := g.AddEdge("e1", "S", "A", "15")
	require.NoError(t, err)
	_, err = g.AddEdge("e2", "A", "B", "20")
	require.NoError(t, err)

	return g
}

// plan runs closure, tour and reconstruction over g from index 0.
func plan(t *testing.T, g *core.Graph) []route.Hop {
	t.Helper()
	snap := g.Snapshot()
	d, err := matrix.MetricClosure(context.Background(), snap)
	require.NoError(t, err)
	res, err := tsp.NearestNeighbor(context.Background(), d, 0)
	require.NoError(t, err)
	hops, err := route.Reconstruct(res.Tour, d, snap)
	require.NoError(t, err)

	return hops
}

func TestReconstruct_SeedMap(t *testing.T) {
	hops := plan(t, seedMap(t))

	require.Len(t, hops, 3)
	assert.Equal(t, route.Hop{Step: 1, From: "S", To: "A", FromLabel: "Start", ToLabel: "City A",
		Cost: 15, Kind: route.Direct, EdgeID: "e1", Forward: true}, hops[0])
	assert.Equal(t, route.Hop{Step: 2, From: "A", To: "B", FromLabel: "City A", ToLabel: "City B",
		Cost: 20, Kind: route.Direct, EdgeID: "e2", Forward: true}, hops[1])
	assert.Equal(t, route.Hop{Step: 3, From: "B", To: "S", FromLabel: "City B", ToLabel: "Start",
		Cost: 35, Kind: route.Virtual}, hops[2])
	assert.Equal(t, int64(70), route.TotalCost(hops))
	assert.Equal(t, 1, route.VirtualCount(hops))
}

func TestReconstruct_BackwardEdgeAndFirstRepresentative(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"X", "Y"} {
		_, err := g.AddNode(id, "")
		require.NoError(t, err)
	}
	_, err := g.AddEdge("late", "Y", "X", "3")
	require.NoError(t, err)
	_, err = g.AddEdge("later", "X", "Y", "1")
	require.NoError(t, err)

	hops := plan(t, g)
	require.Len(t, hops, 2)
	// Cost is the closure (1) even though the representative is labelled 3.
	assert.Equal(t, "late", hops[0].EdgeID)
	assert.False(t, hops[0].Forward)
	assert.Equal(t, int64(1), hops[0].Cost)
	assert.Equal(t, "late", hops[1].EdgeID)
	assert.True(t, hops[1].Forward)
}

func TestReconstruct_MalformedLabelStillDirect(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"P", "Q"} {
		_, err := g.AddNode(id, "")
		require.NoError(t, err)
	}
	_, err := g.AddEdge("bad", "P", "Q", "abc")
	require.NoError(t, err)

	hops := plan(t, g)
	require.Len(t, hops, 2)
	for _, h := range hops {
		assert.Equal(t, route.Direct, h.Kind, "structural edge keeps the hop direct")
		assert.True(t, matrix.IsInf(h.Cost))
	}
}

func TestReconstruct_Errors(t *testing.T) {
	d, err := matrix.NewDistances([]string{"A", "B"})
	require.NoError(t, err)

	_, err = route.Reconstruct([]int{0}, d, core.Snapshot{})
	require.ErrorIs(t, err, route.ErrInvalidTour)
	_, err = route.Reconstruct([]int{0, 1}, nil, core.Snapshot{})
	require.ErrorIs(t, err, route.ErrInvalidTour)
	_, err = route.Reconstruct([]int{0, 4}, d, core.Snapshot{})
	require.ErrorIs(t, err, route.ErrInvalidTour)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestLog(t *testing.T) {
	hops := plan(t, seedMap(t))
	log := route.Log(hops)

	require.Len(t, log, 3)
	assert.Equal(t, route.LogEntry{Step: 3, From: "City B", To: "Start", FromID: "B", ToID: "S", Cost: 35, Kind: route.Virtual}, log[2])
	assert.Empty(t, route.Log(nil))
	assert.Equal(t, "direct", route.Direct.String())
	assert.Equal(t, "virtual", route.Virtual.String())
}

func TestApply_SeedMap(t *testing.T) {
	g := seedMap(t)
	hops := plan(t, g)

	require.NoError(t, route.Reset(g))
	require.NoError(t, route.Apply(g, hops))

	e1, err := g.Edge("e1")
	require.NoError(t, err)
	assert.Equal(t, core.Style{Color: "#ef4444", Width: 5, Arrow: core.ArrowForward}, e1.Style)

	v := g.VirtualEdges()
	require.Len(t, v, 1)
	assert.Equal(t, "virtual-B-S-2", v[0].ID)
	assert.Equal(t, "35 (VIRTUAL)", v[0].Label)
	assert.True(t, v[0].Virtual)
	assert.Equal(t, route.VirtualStyle, v[0].Style)

	// FindEdge still sees no B–S road.
	_, ok := g.FindEdge("B", "S")
	assert.False(t, ok)
}

func TestApply_BackwardArrow(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"X", "Y", "Z"} {
		_, err := g.AddNode(id, "")
		require.NoError(t, err)
	}
	_, err := g.AddEdge("zx", "Z", "X", "1")
	require.NoError(t, err)
	_, err = g.AddEdge("yz", "Y", "Z", "1")
	require.NoError(t, err)
	_, err = g.AddEdge("xy", "X", "Y", "5")
	require.NoError(t, err)

	hops := plan(t, g) // X → Z → Y → X
	require.NoError(t, route.Reset(g))
	require.NoError(t, route.Apply(g, hops))

	zx, err := g.Edge("zx")
	require.NoError(t, err)
	assert.Equal(t, core.ArrowBackward, zx.Style.Arrow)
	yz, err := g.Edge("yz")
	require.NoError(t, err)
	assert.Equal(t, core.ArrowBackward, yz.Style.Arrow)
}

func TestResetApply_Idempotent(t *testing.T) {
	g := seedMap(t)
	hops := plan(t, g)

	require.NoError(t, route.Reset(g))
	require.NoError(t, route.Apply(g, hops))
	first := g.AllEdges()

	require.NoError(t, route.Reset(g))
	require.NoError(t, route.Apply(g, plan(t, g)))
	assert.Equal(t, first, g.AllEdges())

	require.NoError(t, route.Reset(g))
	assert.Empty(t, g.VirtualEdges())
	for _, e := range g.Edges() {
		assert.Equal(t, route.NeutralStyle, e.Style)
	}
}

func TestAdapters_NilGraph(t *testing.T) {
	require.ErrorIs(t, route.Reset(nil), route.ErrNilGraph)
	require.ErrorIs(t, route.Apply(nil, nil), route.ErrNilGraph)
}

func TestVirtualLabel(t *testing.T) {
	assert.Equal(t, "0 (VIRTUAL)", route.VirtualLabel(0))
	assert.Equal(t, "∞ (VIRTUAL)", route.VirtualLabel(matrix.Inf))
	assert.Equal(t, "virtual-A-B-7", route.VirtualID("A", "B", 7))
}
