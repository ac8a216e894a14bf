// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) with deterministic loop order.
//   - In-place, O(n³) time, O(1) extra space.
//
// Contract:
//   - Inf means "no path"; the diagonal must be 0 before calling.

package matrix

import "context"

// Operation name constants for unified error wrapping.
const (
	opFloydWarshall = "FloydWarshall"
	opMetricClosure = "MetricClosure"
)

// floydWarshallInPlace runs the APSP closure on d.
//
// Loop order is fixed (k → i → j). Relaxation is strict ("<"), so among
// equal-cost alternatives the first one found is kept. Triples whose i→k or
// k→j leg is Inf are skipped; finite sums saturate at Inf.
//
// ctx is checked once per pivot k.
func floydWarshallInPlace(ctx context.Context, d *Distances) error {
	n := d.n

	var (
		k, i, j      int   // loop indices
		baseK, baseI int   // row base offsets for K and I in the flat buffer
		ik, kj       int64 // distances d[i,k], d[k,j]
		cand         int64 // candidate path length via k
	)

	data := d.data

	for k = 0; k < n; k++ { // outer: pick intermediate vertex k
		if err := ctx.Err(); err != nil {
			return err
		}
		baseK = k * n

		for i = 0; i < n; i++ { // middle: source vertex i
			ik = data[i*n+k]
			if ik >= Inf { // i cannot reach k
				continue
			}
			baseI = i * n

			for j = 0; j < n; j++ { // inner: destination vertex j
				kj = data[baseK+j]
				if kj >= Inf { // k cannot reach j
					continue
				}
				cand = AddSat(ik, kj)
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}

// FloydWarshall computes all-pairs shortest paths in-place on d.
//
// Contract:
//   - Inf denotes "no edge" off-diagonal; the diagonal MUST be 0.
//
// Errors:
//   - ErrNilMatrix, or ctx.Err() when cancelled (d is then partially relaxed).
//
// Complexity: Time O(n³), extra space O(1).
func FloydWarshall(ctx context.Context, d *Distances) error {
	if d == nil {
		return matrixErrorf(opFloydWarshall, ErrNilMatrix)
	}
	if err := floydWarshallInPlace(ctx, d); err != nil {
		return matrixErrorf(opFloydWarshall, err)
	}

	return nil
}
