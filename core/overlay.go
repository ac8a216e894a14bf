// SPDX-License-Identifier: MIT
//
// File: overlay.go
// Role: Virtual edge overlay and presentation state.
// Policy:
//   - The overlay is a separate collection; purging it is structural (ClearVirtual).
//   - Only presentation adapters (package route) are expected to call these methods.

package core

// AddVirtualEdge appends a transient edge to the overlay and returns its ID.
// Virtual is forced to true. Endpoints must be existing nodes.
//
// Errors:
//   - ErrEmptyNodeID, ErrLoopNotAllowed, ErrNodeNotFound, ErrDuplicateID.
//
// Complexity: O(V_virtual).
func (g *Graph) AddVirtualEdge(e Edge) (string, error) {
	if e.ID == "" || e.From == "" || e.To == "" {
		return "", ErrEmptyNodeID
	}
	if e.From == e.To {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[e.From]; !ok {
		return "", ErrNodeNotFound
	}
	if _, ok := g.nodes[e.To]; !ok {
		return "", ErrNodeNotFound
	}
	if g.taken(e.ID) {
		return "", ErrDuplicateID
	}

	e.Virtual = true
	g.virtual = append(g.virtual, &e)

	return e.ID, nil
}

// VirtualEdges returns copies of the overlay in insertion order.
func (g *Graph) VirtualEdges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.virtual))
	for _, e := range g.virtual {
		out = append(out, *e)
	}

	return out
}

// ClearVirtual drops the whole overlay.
func (g *Graph) ClearVirtual() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.virtual = nil
}

// AllEdges returns real edges followed by virtual edges; this is the edge
// set a renderer draws.
func (g *Graph) AllEdges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edgeOrder)+len(g.virtual))
	for _, id := range g.edgeOrder {
		out = append(out, *g.edges[id])
	}
	for _, e := range g.virtual {
		out = append(out, *e)
	}

	return out
}

// SetEdgeStyle replaces the presentation state of a real edge.
//
// Errors:
//   - ErrVirtualEdge, ErrEdgeNotFound.
func (g *Graph) SetEdgeStyle(id string, s Style) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[id]
	if !ok {
		if g.isVirtualLocked(id) {
			return ErrVirtualEdge
		}
		return ErrEdgeNotFound
	}
	e.Style = s

	return nil
}

// ResetStyles sets every real edge to the given neutral style.
// Complexity: O(E).
func (g *Graph) ResetStyles(s Style) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, e := range g.edges {
		e.Style = s
	}
}

// isVirtualLocked reports whether id names an overlay edge. Caller holds g.mu.
func (g *Graph) isVirtualLocked(id string) bool {
	for _, e := range g.virtual {
		if e.ID == id {
			return true
		}
	}

	return false
}
