// Package route turns a closed index tour into a sequence of hops over the
// real road map and projects that sequence onto a core.Graph.
//
// Reconstruct is pure: it reads a tour, its metric closure and a snapshot,
// and classifies every consecutive pair (u, v) of the tour:
//
//   - Direct: at least one real edge joins u and v (either orientation). The
//     first such edge in insertion order represents the hop.
//   - Virtual: no real edge joins them; the hop stands for a shortest path of
//     cost d[u][v] through other cities. The intermediate cities are not
//     recovered; a virtual hop is an aggregated leg.
//
// Every hop is exactly one of the two kinds. Hop.Cost is always d[u][v],
// even for Direct hops whose stored label is larger than a detour.
//
// Reset and Apply are the adapters that write presentation state back:
// Reset purges the virtual overlay and restores the neutral style, Apply
// highlights direct edges and inserts one virtual edge per virtual hop.
// Calling Reset then Apply with the same hops is idempotent.
package route
