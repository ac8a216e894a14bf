// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Real edge lifecycle & queries: AddEdge/RemoveEdge/Edge/Edges/FindEdge/EdgeCount.
// Determinism:
//   - Edges() returns real edges in insertion order.
//   - FindEdge() returns the earliest inserted matching edge.
// AI-HINT (file):
//   - AddEdge does NOT reject parallel roads; use FindEdge first (package editor does).

package core

// AddEdge inserts a real undirected road between from and to and returns its ID.
//
// Implementation:
//   - Stage 1: Validate endpoint IDs and reject self-loops.
//   - Stage 2: Under the write lock, require both endpoints to exist.
//   - Stage 3: Resolve the ID (generate when empty, reject when taken).
//   - Stage 4: Store the edge with a zero Style and append it to the order.
//
// Behavior highlights:
//   - The label is stored verbatim; malformed weights are accepted here and
//     ignored later by the metric closure.
//
// Errors:
//   - ErrEmptyNodeID, ErrLoopNotAllowed, ErrNodeNotFound, ErrReservedID,
//     ErrDuplicateID, ErrIDExhausted.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(id, from, to, label string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyNodeID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[from]; !ok {
		return "", ErrNodeNotFound
	}
	if _, ok := g.nodes[to]; !ok {
		return "", ErrNodeNotFound
	}

	if id == "" {
		var err error
		if id, err = g.newEdgeID(); err != nil {
			return "", err
		}
	} else if reserved(id) {
		return "", ErrReservedID
	} else if g.taken(id) {
		return "", ErrDuplicateID
	}

	g.edges[id] = &Edge{ID: id, From: from, To: to, Label: label}
	g.edgeOrder = append(g.edgeOrder, id)

	return id, nil
}

// RemoveEdge deletes a real edge.
//
// Errors:
//   - ErrVirtualEdge: id names a virtual edge (use ClearVirtual).
//   - ErrEdgeNotFound: no such edge.
//
// Complexity: O(E).
func (g *Graph) RemoveEdge(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.edges[id]; !ok {
		if g.isVirtualLocked(id) {
			return ErrVirtualEdge
		}
		return ErrEdgeNotFound
	}

	return g.removeEdgeLocked(id)
}

func (g *Graph) removeEdgeLocked(id string) error {
	delete(g.edges, id)
	g.edgeOrder = removeString(g.edgeOrder, id)

	return nil
}

// Edge returns a copy of the real or virtual edge with the given ID.
//
// Errors:
//   - ErrEdgeNotFound.
//
// Complexity: O(1) for real edges, O(V_virtual) for overlay lookups.
func (g *Graph) Edge(id string) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if e, ok := g.edges[id]; ok {
		return *e, nil
	}
	for _, e := range g.virtual {
		if e.ID == id {
			return *e, nil
		}
	}

	return Edge{}, ErrEdgeNotFound
}

// Edges returns copies of all real edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		out = append(out, *g.edges[id])
	}

	return out
}

// EdgeCount returns the number of real edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// FindEdge returns the first real edge (insertion order) joining u and v in
// either orientation. Virtual edges are never matched.
//
// Complexity: O(E).
func (g *Graph) FindEdge(u, v string) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, id := range g.edgeOrder {
		if e := g.edges[id]; e.Connects(u, v) {
			return *e, true
		}
	}

	return Edge{}, false
}
