// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph lifecycle contracts.

package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routeopt/core"
)

// seedGraph builds the default S/A/B map used across tests.
func seedGraph(t *testing.T) *core.Graph {
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

func TestGraph_AddNode(t *testing.T) {
	g := core.NewGraph()

	id, err := g.AddNode("S", "Start")
	require.NoError(t, err)
	assert.Equal(t, "S", id)
	assert.True(t, g.HasNode("S"))
	assert.False(t, g.HasNode(""))

	// Provided duplicate never merges.
	_, err = g.AddNode("S", "Other")
	require.ErrorIs(t, err, core.ErrDuplicateID)
	n, err := g.Node("S")
	require.NoError(t, err)
	assert.Equal(t, "Start", n.Label)

	// Empty label defaults to the id.
	_, err = g.AddNode("X", "")
	require.NoError(t, err)
	n, _ = g.Node("X")
	assert.Equal(t, "X", n.Label)

	_, err = g.Node("")
	require.ErrorIs(t, err, core.ErrEmptyNodeID)
	_, err = g.Node("missing")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestGraph_AddNode_GeneratedIDs(t *testing.T) {
	// A source that always collides first, then yields fresh ids.
	calls := 0
	src := func() string {
		calls++
		if calls <= 3 {
			return "A1"
		}
		return fmt.Sprintf("Z%d", calls)
	}
	g := core.NewGraph(core.WithIDSource(src))

	first, err := g.AddNode("", "")
	require.NoError(t, err)
	assert.Equal(t, "A1", first)

	second, err := g.AddNode("", "")
	require.NoError(t, err)
	assert.Equal(t, "Z4", second, "colliding candidates must be regenerated")
	assert.Equal(t, 2, g.NodeCount())
}

func TestGraph_AddNode_FallbackWhenSpaceCrowded(t *testing.T) {
	g := core.NewGraph(core.WithIDSource(func() string { return "K7" }), core.WithIDAttempts(4))

	a, err := g.AddNode("", "")
	require.NoError(t, err)
	b, err := g.AddNode("", "")
	require.NoError(t, err)

	assert.Equal(t, "K7", a)
	assert.NotEqual(t, a, b)
	assert.Len(t, b, 36, "fallback id is a UUID")
}

func TestGraph_AddNode_DefaultIDShape(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		id, err := g.AddNode("", "")
		require.NoError(t, err)
		if len(id) != 36 {
			assert.Regexp(t, `^[A-Z][0-9]{1,2}$`, id)
		}
	}
	assert.Equal(t, 50, g.NodeCount())
}

func TestGraph_AddEdge(t *testing.T) {
	g := seedGraph(t)

	_, err := g.AddEdge("", "S", "S", "1")
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("", "", "S", "1")
	require.ErrorIs(t, err, core.ErrEmptyNodeID)

	_, err = g.AddEdge("", "S", "Q", "1")
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	// Node and edge ids share one namespace.
	_, err = g.AddEdge("A", "S", "B", "1")
	require.ErrorIs(t, err, core.ErrDuplicateID)
	_, err = g.AddNode("e1", "")
	require.ErrorIs(t, err, core.ErrDuplicateID)

	id, err := g.AddEdge("", "B", "S", "abc")
	require.NoError(t, err)
	assert.Regexp(t, `^e-`, id)

	// Malformed weights stay structurally present.
	e, err := g.Edge(id)
	require.NoError(t, err)
	assert.Equal(t, "abc", e.Label)
	assert.False(t, e.Virtual)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestGraph_VirtualPrefixReserved(t *testing.T) {
	g := seedGraph(t)

	_, err := g.AddNode("virtual-B-S-2", "")
	require.ErrorIs(t, err, core.ErrReservedID)
	_, err = g.AddEdge("virtual-B-S-2", "B", "S", "1")
	require.ErrorIs(t, err, core.ErrReservedID)

	// Generated candidates in the reserved space are skipped too.
	calls := 0
	g = core.NewGraph(core.WithIDSource(func() string {
		calls++
		if calls == 1 {
			return core.VirtualIDPrefix + "A"
		}
		return "Q1"
	}))
	id, err := g.AddNode("", "")
	require.NoError(t, err)
	assert.Equal(t, "Q1", id)

	// The overlay itself uses the prefix freely.
	_, err = g.AddNode("B", "")
	require.NoError(t, err)
	_, err = g.AddVirtualEdge(core.Edge{ID: "virtual-B-Q1-0", From: "B", To: "Q1"})
	require.NoError(t, err)
}

func TestGraph_AddEdge_ParallelIsCallerObligation(t *testing.T) {
	g := seedGraph(t)

	_, err := g.AddEdge("e3", "A", "S", "5")
	require.NoError(t, err, "the store itself does not reject parallel roads")

	e, ok := g.FindEdge("S", "A")
	require.True(t, ok)
	assert.Equal(t, "e1", e.ID, "earliest inserted edge wins")
}

func TestGraph_Order(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"S", "C", "A", "B"} {
		_, err := g.AddNode(id, "")
		require.NoError(t, err)
	}
	require.NoError(t, g.RemoveNode("C"))

	var ids []string
	for _, n := range g.Nodes() {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"S", "A", "B"}, ids)
}

func TestGraph_RemoveNodeCascades(t *testing.T) {
	g := seedGraph(t)
	_, err := g.AddVirtualEdge(core.Edge{ID: "virtual-B-S-2", From: "B", To: "S", Label: "35 (VIRTUAL)"})
	require.NoError(t, err)

	require.NoError(t, g.Remove("A"))

	assert.False(t, g.HasNode("A"))
	assert.Equal(t, 0, g.EdgeCount(), "both roads touching A are gone")
	assert.Len(t, g.VirtualEdges(), 1, "overlay edges not touching A survive")

	require.NoError(t, g.RemoveNode("S"))
	assert.Empty(t, g.VirtualEdges())

	require.ErrorIs(t, g.RemoveNode("S"), core.ErrNodeNotFound)
	require.ErrorIs(t, g.RemoveNode(""), core.ErrEmptyNodeID)
}

func TestGraph_RemoveEdge(t *testing.T) {
	g := seedGraph(t)

	require.NoError(t, g.Remove("e1"))
	_, ok := g.FindEdge("S", "A")
	assert.False(t, ok)
	assert.True(t, g.HasNode("S"), "removing an edge leaves its endpoints")

	require.ErrorIs(t, g.RemoveEdge("e1"), core.ErrEdgeNotFound)
	require.ErrorIs(t, g.Remove("nothing"), core.ErrNodeNotFound)
}

func TestGraph_UpdateLabel(t *testing.T) {
	g := seedGraph(t)
	before := g.Snapshot()

	require.NoError(t, g.UpdateLabel("S", "Depot"))
	require.NoError(t, g.UpdateLabel("e1", "99"))

	n, _ := g.Node("S")
	assert.Equal(t, "Depot", n.Label)
	e, _ := g.Edge("e1")
	assert.Equal(t, "99", e.Label)

	// Earlier snapshots are immutable copies.
	assert.Equal(t, "Start", before.Label("S"))
	assert.Equal(t, "15", before.Edges[0].Label)

	require.ErrorIs(t, g.UpdateLabel("", "x"), core.ErrEmptyNodeID)
	require.ErrorIs(t, g.UpdateLabel("missing", "x"), core.ErrNodeNotFound)
}

func TestGraph_SnapshotExcludesVirtual(t *testing.T) {
	g := seedGraph(t)
	_, err := g.AddVirtualEdge(core.Edge{ID: "virtual-B-S-2", From: "B", To: "S"})
	require.NoError(t, err)

	s := g.Snapshot()
	require.Len(t, s.Nodes, 3)
	require.Len(t, s.Edges, 2)
	for _, e := range s.Edges {
		assert.False(t, e.Virtual)
	}
	assert.Len(t, g.AllEdges(), 3)
}

func TestGraph_Clear(t *testing.T) {
	g := seedGraph(t)
	g.Clear()

	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Snapshot().Nodes)
}
