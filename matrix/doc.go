// Package matrix computes the metric closure of a road map: the shortest-path
// distance between every pair of cities over real roads only.
//
// The closure is a dense n×n int64 matrix stored row-major, indexed by a dense
// 0..n-1 remap of node IDs (Distances.Index) in the snapshot's insertion order.
//
//	dist[i][i] = 0
//	dist[i][j] = dist[j][i]             (roads are undirected)
//	dist[i][j] = Inf                    (no path)
//
// Algorithm: classic Floyd–Warshall with a fixed k → i → j loop order and a
// strict "<" relaxation; any triple whose intermediate leg is Inf is skipped,
// so unreachable pairs never produce false relaxations or overflow.
//
// Tolerances:
//   - A road whose label is not a valid non-negative integer contributes no
//     adjacency (it is ignored, not an error).
//   - Parallel roads between the same pair: last write wins.
//   - Roads with unknown endpoints, self-loops and virtual edges contribute nothing.
//
// The closure is recomputed from scratch for every simulation; it is never
// maintained incrementally.
//
// Complexity: O(n³) time, O(n²) space. Deterministic.
//
// Cancellation: ctx is observed once per pivot k, which bounds the latency of
// a cancel to O(n²) work.
package matrix
