// SPDX-License-Identifier: MIT

package route

import (
	"fmt"

	"github.com/katalvlaran/routeopt/core"
	"github.com/katalvlaran/routeopt/matrix"
)

// Reset purges the virtual overlay and restores NeutralStyle on every real edge.
func Reset(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	g.ClearVirtual()
	g.ResetStyles(NeutralStyle)

	return nil
}

// Apply writes hops onto g: Direct hops restyle their representative edge
// with DirectStyle, arrow oriented From → To; Virtual hops insert an overlay
// edge "virtual-<from>-<to>-<i>" labelled "<cost> (VIRTUAL)", where i is the
// zero-based hop index. Hops with From == To draw nothing.
//
// Apply does not Reset; callers run Reset first for idempotent output.
//
// Errors:
//   - ErrNilGraph.
//   - core errors when an edge or endpoint vanished since the snapshot.
func Apply(g *core.Graph, hops []Hop) error {
	if g == nil {
		return ErrNilGraph
	}

	for i, h := range hops {
		if h.From == h.To {
			continue
		}
		switch h.Kind {
		case Direct:
			s := DirectStyle
			s.Arrow = core.ArrowBackward
			if h.Forward {
				s.Arrow = core.ArrowForward
			}
			if err := g.SetEdgeStyle(h.EdgeID, s); err != nil {
				return fmt.Errorf("route: highlight %s: %w", h.EdgeID, err)
			}
		case Virtual:
			e := core.Edge{
				ID:    VirtualID(h.From, h.To, i),
				From:  h.From,
				To:    h.To,
				Label: VirtualLabel(h.Cost),
				Style: VirtualStyle,
			}
			if _, err := g.AddVirtualEdge(e); err != nil {
				return fmt.Errorf("route: overlay %s: %w", e.ID, err)
			}
		}
	}

	return nil
}

// VirtualID names the overlay edge for the i-th hop. The core.VirtualIDPrefix
// namespace is closed to cities and roads, so the ID never collides.
func VirtualID(from, to string, i int) string {
	return fmt.Sprintf("%s%s-%s-%d", core.VirtualIDPrefix, from, to, i)
}

// VirtualLabel renders a virtual hop cost; unreachable legs print as "∞".
func VirtualLabel(cost int64) string {
	if matrix.IsInf(cost) {
		return "∞" + VirtualSuffix
	}

	return core.FormatWeight(cost) + VirtualSuffix
}
