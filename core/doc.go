// Package core provides the authoritative in-memory road map used by the
// route optimizer: cities (Node) joined by undirected, weighted roads (Edge).
//
// The Graph owns every Node and Edge lifetime. Algorithms never receive the
// live store; they receive a Snapshot, which is a deep copy of the real
// (user-created) nodes and edges at the time of the call.
//
// Data model:
//
//   - Node{ID, Label}: ID is stable and unique, Label is independently editable.
//   - Edge{ID, From, To, Label, Virtual, Style}: From/To form an unordered pair.
//     Label is the weight wire format: a base-10 non-negative integer string
//     (see ParseWeight). Style is presentation-only state.
//
// Virtual edges:
//
//	Virtual edges are transient display artifacts inserted by a simulation run
//	to visualize a multi-hop shortest path as a single hop. They live in a
//	separate overlay, never appear in Snapshot, are invisible to FindEdge and
//	are dropped in one step by ClearVirtual.
//
// Invariants:
//
//   - Node and edge IDs share one namespace.
//   - Removing a node cascades to every real and virtual edge touching it.
//   - Nodes() and Edges() enumerate in insertion order; the dense index used by
//     the matrix package is derived from that order.
//   - At most one real edge per unordered pair is a CALLER obligation (enforced
//     by package editor), not a Graph invariant. Direct AddEdge calls may add
//     parallel roads; the metric closure then applies last-write-wins.
//
// Mutation never triggers recomputation: the pipeline is pull-based and runs
// only when a simulation is requested.
//
// Errors:
//
//	ErrEmptyNodeID    - node ID is the empty string.
//	ErrNodeNotFound   - referenced node does not exist.
//	ErrEdgeNotFound   - referenced edge does not exist.
//	ErrDuplicateID    - ID already taken by a node or an edge.
//	ErrLoopNotAllowed - edge endpoints are the same node.
//	ErrVirtualEdge    - attempt to edit or remove a virtual edge directly.
//	ErrIDExhausted    - the ID source produced only colliding IDs.
//	ErrReservedID     - node or real edge ID starts with VirtualIDPrefix.
package core
