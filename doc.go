// Package routeopt plans approximate shortest round trips over small road
// maps: cities joined by undirected roads whose labels carry integer costs.
//
// The pipeline, leaves first:
//
//	core/     — GraphStore: cities, roads, the virtual-edge overlay, weight parsing
//	matrix/   — metric closure: all-pairs shortest distances (Floyd–Warshall)
//	tsp/      — greedy nearest-neighbour tour over the closure
//	route/    — tour reconstruction into Direct and Virtual hops, plus the
//	            adapters that write highlights and virtual edges back
//	bfs/      — breadth-first reachability, used to explain unreachable tours
//	editor/   — the two-click "connect cities" state machine
//	sim/      — one simulation run end to end, with slog logging and
//	            Prometheus metrics
//	scenario/ — YAML and TOML road maps, with hot reload
//	config/   — shell settings (TOML)
//
// The routeopt command (cmd/routeopt) is a terminal stand-in for a canvas UI.
//
// Quick example, the built-in map:
//
//	S ──15── A ──20── B
//
// A run from S visits S → A → B and closes with a virtual hop B → S of
// cost 35 (the shortest path back through A), for a total of 70.
//
// The tour is a heuristic: deterministic and O(n²) after an O(n³) closure,
// but not optimal.
package routeopt
