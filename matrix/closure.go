// SPDX-License-Identifier: MIT

package matrix

import (
	"context"

	"github.com/katalvlaran/routeopt/core"
)

// MetricClosure builds the all-pairs shortest-distance matrix for snap.
//
// Implementation:
//   - Stage 1: Index nodes densely in snapshot order; init 0 diagonal, Inf elsewhere.
//   - Stage 2: For every real road with known, distinct endpoints and a valid
//     weight (core.ParseWeight), set both dist[u][v] and dist[v][u] to w.
//     Later roads overwrite earlier ones for the same pair.
//   - Stage 3: Relax with Floyd–Warshall.
//
// The snapshot is never mutated and any virtual edge it carries is skipped,
// although callers are expected to pass a virtual-free snapshot.
//
// Errors:
//   - ErrEmptyID, ErrDuplicateID from indexing; ctx.Err() on cancellation.
//
// Complexity: O(n³ + E) time, O(n²) space.
func MetricClosure(ctx context.Context, snap core.Snapshot) (*Distances, error) {
	ids := make([]string, len(snap.Nodes))
	for i := range snap.Nodes {
		ids[i] = snap.Nodes[i].ID
	}

	d, err := NewDistances(ids)
	if err != nil {
		return nil, matrixErrorf(opMetricClosure, err)
	}

	var (
		u, v   int
		okU    bool
		okV    bool
		w      int64
		valid  bool
		stride = d.n
	)
	for _, e := range snap.Edges {
		if e.Virtual {
			continue
		}
		u, okU = d.Index[e.From]
		v, okV = d.Index[e.To]
		if !okU || !okV || u == v {
			continue
		}
		if w, valid = core.ParseWeight(e.Label); !valid {
			continue // malformed weight: no adjacency contribution
		}
		d.data[u*stride+v] = w
		d.data[v*stride+u] = w
	}

	if err = floydWarshallInPlace(ctx, d); err != nil {
		return nil, matrixErrorf(opMetricClosure, err)
	}

	return d, nil
}
