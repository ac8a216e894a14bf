// SPDX-License-Identifier: MIT

package tsp

import (
	"context"

	"github.com/katalvlaran/routeopt/matrix"
)

// NearestNeighbor constructs a greedy closed tour from start over d.
//
// Implementation:
//   - Stage 1: Validate d (non-empty) and start ∈ [0, n).
//   - Stage 2: n-1 greedy steps; each scans unvisited indices in ascending
//     order and keeps the first strict minimum. When all remaining distances
//     are Inf, the first unvisited index is selected anyway.
//   - Stage 3: Close the tour with dist[current][start].
//
// Behavior highlights:
//   - n == 1 yields [start start] with cost 0.
//   - Cost saturates at matrix.Inf; check Result.Reachable.
//
// Errors:
//   - ErrDimensionMismatch: d is nil or empty.
//   - ErrStartOutOfRange: start outside [0, n).
//   - ctx.Err(): cancelled (checked once per greedy step).
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighbor(ctx context.Context, d *matrix.Distances, start int) (Result, error) {
	n := d.N()
	if n == 0 {
		return Result{}, ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return Result{}, ErrStartOutOfRange
	}

	var (
		visited = make([]bool, n)
		tour    = make([]int, 0, n+1)
		current = start
		cost    int64
		step    int
		v       int
		next    int
		best    int64
		dv      int64
	)
	visited[current] = true
	tour = append(tour, current)

	for step = 0; step < n-1; step++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		next = -1
		for v = 0; v < n; v++ {
			if visited[v] {
				continue
			}
			dv, _ = d.At(current, v) // indices are in range by construction
			// The first unvisited index seeds the minimum, so an all-Inf row
			// still selects the lowest unvisited index.
			if next == -1 || dv < best {
				next, best = v, dv
			}
		}

		visited[next] = true
		tour = append(tour, next)
		cost = matrix.AddSat(cost, best)
		current = next
	}

	closing, _ := d.At(current, start)
	cost = matrix.AddSat(cost, closing)
	tour = append(tour, start)

	return Result{Tour: tour, Cost: cost}, nil
}
