// SPDX-License-Identifier: MIT

package route

import (
	"fmt"

	"github.com/katalvlaran/routeopt/core"
	"github.com/katalvlaran/routeopt/matrix"
)

// Reconstruct classifies every consecutive pair of tour.
//
// tour holds indices into d; snap supplies edges and labels. The result has
// len(tour)-1 hops in tour order.
//
// Errors:
//   - ErrInvalidTour: len(tour) < 2, nil d, or an index outside d.
//
// Complexity: O(len(tour) · E) time.
func Reconstruct(tour []int, d *matrix.Distances, snap core.Snapshot) ([]Hop, error) {
	if len(tour) < 2 || d.N() == 0 {
		return nil, ErrInvalidTour
	}

	var (
		hops = make([]Hop, 0, len(tour)-1)
		u, v string
		cost int64
		err  error
	)
	for i := 0; i+1 < len(tour); i++ {
		if cost, err = d.At(tour[i], tour[i+1]); err != nil {
			return nil, fmt.Errorf("%w: step %d: %w", ErrInvalidTour, i+1, err)
		}
		u, _ = d.IDAt(tour[i])
		v, _ = d.IDAt(tour[i+1])

		h := Hop{
			Step:      i + 1,
			From:      u,
			To:        v,
			FromLabel: snap.Label(u),
			ToLabel:   snap.Label(v),
			Cost:      cost,
			Kind:      Virtual,
		}
		if e, ok := firstEdge(snap.Edges, u, v); ok {
			h.Kind = Direct
			h.EdgeID = e.ID
			h.Forward = e.From == u
		}
		hops = append(hops, h)
	}

	return hops, nil
}

// firstEdge returns the first real edge in edges that joins u and v.
func firstEdge(edges []core.Edge, u, v string) (core.Edge, bool) {
	if u == v {
		return core.Edge{}, false
	}
	for i := range edges {
		if !edges[i].Virtual && edges[i].Connects(u, v) {
			return edges[i], true
		}
	}

	return core.Edge{}, false
}

// Log projects hops onto their reporting view.
func Log(hops []Hop) []LogEntry {
	out := make([]LogEntry, len(hops))
	for i, h := range hops {
		out[i] = LogEntry{
			Step:   h.Step,
			From:   h.FromLabel,
			To:     h.ToLabel,
			FromID: h.From,
			ToID:   h.To,
			Cost:   h.Cost,
			Kind:   h.Kind,
		}
	}

	return out
}

// TotalCost sums hop costs, saturating at matrix.Inf.
func TotalCost(hops []Hop) int64 {
	var total int64
	for _, h := range hops {
		total = matrix.AddSat(total, h.Cost)
	}

	return total
}

// VirtualCount reports how many hops are Virtual.
func VirtualCount(hops []Hop) int {
	n := 0
	for _, h := range hops {
		if h.Kind == Virtual {
			n++
		}
	}

	return n
}
