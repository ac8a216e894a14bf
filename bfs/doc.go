// Package bfs walks the road map of a core.Snapshot breadth-first.
//
// Only roads that carry a usable weight are traversed by default, so the
// reachability seen here is exactly the reachability of the metric closure:
// two cities share a component iff their closure distance is finite. The
// simulator uses Components to explain an unreachable tour.
//
// Neighbors are visited in road insertion order, which makes Order, Parent
// and the component listing deterministic.
package bfs
