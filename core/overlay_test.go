// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routeopt/core"
)

func TestOverlay_Lifecycle(t *testing.T) {
	g := seedGraph(t)

	id, err := g.AddVirtualEdge(core.Edge{ID: "virtual-B-S-2", From: "B", To: "S", Label: "35 (VIRTUAL)"})
	require.NoError(t, err)

	e, err := g.Edge(id)
	require.NoError(t, err)
	assert.True(t, e.Virtual, "overlay edges are always tagged")

	// Invisible to duplicate checks.
	_, ok := g.FindEdge("S", "B")
	assert.False(t, ok)

	// Read-only through the id-dispatching mutators.
	require.ErrorIs(t, g.UpdateLabel(id, "1"), core.ErrVirtualEdge)
	require.ErrorIs(t, g.Remove(id), core.ErrVirtualEdge)
	require.ErrorIs(t, g.RemoveEdge(id), core.ErrVirtualEdge)
	require.ErrorIs(t, g.SetEdgeStyle(id, core.Style{}), core.ErrVirtualEdge)

	// Namespace shared with real ids.
	_, err = g.AddVirtualEdge(core.Edge{ID: "e1", From: "B", To: "S"})
	require.ErrorIs(t, err, core.ErrDuplicateID)

	_, err = g.AddVirtualEdge(core.Edge{ID: "v", From: "B", To: "Q"})
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	g.ClearVirtual()
	assert.Empty(t, g.VirtualEdges())
	_, err = g.Edge(id)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestOverlay_Styles(t *testing.T) {
	g := seedGraph(t)
	hot := core.Style{Color: "#ef4444", Width: 5, Arrow: core.ArrowForward}
	neutral := core.Style{Color: "#4b5563", Width: 2}

	require.NoError(t, g.SetEdgeStyle("e1", hot))
	e, _ := g.Edge("e1")
	assert.Equal(t, hot, e.Style)

	g.ResetStyles(neutral)
	for _, e := range g.Edges() {
		assert.Equal(t, neutral, e.Style)
	}

	require.ErrorIs(t, g.SetEdgeStyle("nope", hot), core.ErrEdgeNotFound)
}

func TestArrow_String(t *testing.T) {
	assert.Equal(t, "none", core.ArrowNone.String())
	assert.Equal(t, "forward", core.ArrowForward.String())
	assert.Equal(t, "backward", core.ArrowBackward.String())
}
