// Package editor implements the two-click "connect cities" interaction as an
// explicit state machine over a core.Graph.
//
//	Idle ──Enter──▶ AwaitingSource ──ClickNode(A)──▶ AwaitingDestination(A)
//	                      ▲                                   │
//	                      └── ClickNode(B) / ClickNode(A) / ClickCanvas
//
// From AwaitingDestination(A), clicking B ≠ A creates a real edge A–B carrying
// the default weight label unless a real edge already joins them; clicking A
// again or the empty canvas cancels the pair. Every outcome returns to
// AwaitingSource. Exit returns to Idle from any state.
//
// The duplicate check uses core.Graph.FindEdge, which never matches virtual
// edges. An Editor is not safe for concurrent use.
package editor
