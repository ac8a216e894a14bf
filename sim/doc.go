// Package sim runs the route optimisation pipeline over a core.Graph:
//
//	reset overlay → snapshot → metric closure → nearest-neighbour tour
//	→ reconstruction → apply
//
// A Simulator is the single entry point the presentation layer calls. It
// owns no graph state of its own; every run starts from route.Reset so that
// repeated runs over an unchanged graph produce identical output.
//
// Expected conditions are statuses, not errors: fewer than two cities yields
// StatusInsufficientNodes with an empty log, and a tour whose total cost
// reaches matrix.Inf yields StatusUnreachable with the full hop log. Run
// returns a Go error only for context cancellation or a graph mutated
// concurrently with the run.
//
// Runs through one Simulator are serialized. Logging goes through an injected
// *slog.Logger (discarded by default) and counters through an optional
// Metrics set.
package sim
