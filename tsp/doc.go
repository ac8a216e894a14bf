// Package tsp builds an approximate closed tour over a metric closure.
//
// NearestNeighbor is a greedy construction heuristic, NOT an exact solver:
//
//   - Start at the chosen index, mark it visited, cost = 0.
//   - n-1 times: move to the unvisited index with the smallest distance from
//     the current one. Ties go to the lowest index. If every remaining
//     candidate is unreachable (Inf), the lowest unvisited index is still
//     taken: the unreachable leg is propagated into the cost rather than
//     aborting the tour.
//   - Close the loop by adding dist[current][start].
//
// There is no backtracking and no 2-opt/3-opt improvement. Tour quality
// degrades on adversarial inputs (the greedy choice can force a long closing
// leg); this is accepted in exchange for O(n²) time and fully reproducible
// output.
//
// Tours are index sequences of length n+1 with tour[0] == tour[n] == start
// and every other index appearing exactly once in tour[0:n].
//
// Costs are int64 sums that saturate at matrix.Inf; Result.Reachable reports
// whether the closed tour has a finite cost.
package tsp
