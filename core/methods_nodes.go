// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries, plus the id-dispatching UpdateLabel/Remove.
// Determinism:
//   - Nodes() returns nodes in insertion order.
// Concurrency:
//   - Mutations under g.mu write lock, queries under read lock.

package core

// AddNode inserts a city and returns its ID.
//
// Implementation:
//   - Stage 1: Under the write lock, resolve the ID. An empty id is generated
//     (see newNodeID); a provided id must not be taken by a node or an edge.
//   - Stage 2: Default an empty label to the ID.
//   - Stage 3: Register the node and append it to the insertion order.
//
// Behavior highlights:
//   - Never merges two distinct nodes: a collision is either regenerated
//     (generated IDs) or rejected with ErrDuplicateID (provided IDs).
//
// Errors:
//   - ErrReservedID: id starts with VirtualIDPrefix.
//   - ErrDuplicateID: id already in use.
//   - ErrIDExhausted: generation failed.
//
// Complexity:
//   - Time O(1) amortized (O(V_virtual) for the namespace check), Space O(1).
func (g *Graph) AddNode(id, label string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id == "" {
		var err error
		if id, err = g.newNodeID(); err != nil {
			return "", err
		}
	} else if reserved(id) {
		return "", ErrReservedID
	} else if g.taken(id) {
		return "", ErrDuplicateID
	}

	if label == "" {
		label = id
	}
	g.nodes[id] = &Node{ID: id, Label: label}
	g.nodeOrder = append(g.nodeOrder, id)

	return id, nil
}

// HasNode reports whether the node exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node with the given ID.
//
// Errors:
//   - ErrEmptyNodeID, ErrNodeNotFound.
//
// Complexity: O(1).
func (g *Graph) Node(id string) (Node, error) {
	if id == "" {
		return Node{}, ErrEmptyNodeID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, ErrNodeNotFound
	}

	return *n, nil
}

// Nodes returns copies of all nodes in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, *g.nodes[id])
	}

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// RemoveNode deletes a node and every edge touching it (real and virtual).
//
// Errors:
//   - ErrEmptyNodeID, ErrNodeNotFound.
//
// Complexity:
//   - Time O(V + E) for order maintenance and the cascade scan.
func (g *Graph) RemoveNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.removeNodeLocked(id)
}

func (g *Graph) removeNodeLocked(id string) error {
	if _, ok := g.nodes[id]; !ok {
		return ErrNodeNotFound
	}

	// Cascade over real edges, preserving the order of survivors.
	kept := g.edgeOrder[:0]
	for _, eid := range g.edgeOrder {
		if g.edges[eid].Touches(id) {
			delete(g.edges, eid)
			continue
		}
		kept = append(kept, eid)
	}
	g.edgeOrder = kept

	// Cascade over the overlay.
	overlay := g.virtual[:0]
	for _, e := range g.virtual {
		if !e.Touches(id) {
			overlay = append(overlay, e)
		}
	}
	g.virtual = overlay

	delete(g.nodes, id)
	g.nodeOrder = removeString(g.nodeOrder, id)

	return nil
}

// UpdateLabel changes the label of the node or real edge identified by id.
//
// For an edge, the label is the weight wire format. The new value is only
// observed by the next Snapshot; distance matrices and tours computed earlier
// are unaffected.
//
// Errors:
//   - ErrEmptyNodeID: id == "".
//   - ErrVirtualEdge: id names a virtual edge.
//   - ErrNodeNotFound: id names nothing.
//
// Complexity: O(1) (O(V_virtual) on miss).
func (g *Graph) UpdateLabel(id, label string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if n, ok := g.nodes[id]; ok {
		n.Label = label
		return nil
	}
	if e, ok := g.edges[id]; ok {
		e.Label = label
		return nil
	}
	if g.isVirtualLocked(id) {
		return ErrVirtualEdge
	}

	return ErrNodeNotFound
}

// Remove deletes the node (with cascade) or the real edge identified by id.
//
// Errors:
//   - ErrEmptyNodeID: id == "".
//   - ErrVirtualEdge: id names a virtual edge.
//   - ErrNodeNotFound: id names nothing.
//
// Complexity: O(V + E).
func (g *Graph) Remove(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; ok {
		return g.removeNodeLocked(id)
	}
	if _, ok := g.edges[id]; ok {
		return g.removeEdgeLocked(id)
	}
	if g.isVirtualLocked(id) {
		return ErrVirtualEdge
	}

	return ErrNodeNotFound
}

// Snapshot returns a deep copy of the real graph in insertion order.
// Virtual edges are never part of a snapshot.
//
// Complexity: O(V + E).
func (g *Graph) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Snapshot{
		Nodes: make([]Node, 0, len(g.nodeOrder)),
		Edges: make([]Edge, 0, len(g.edgeOrder)),
	}
	for _, id := range g.nodeOrder {
		s.Nodes = append(s.Nodes, *g.nodes[id])
	}
	for _, id := range g.edgeOrder {
		s.Edges = append(s.Edges, *g.edges[id])
	}

	return s
}

// Clear removes every node and edge.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = make(map[string]*Node)
	g.edges = make(map[string]*Edge)
	g.nodeOrder = nil
	g.edgeOrder = nil
	g.virtual = nil
}

// removeString deletes the first occurrence of s, keeping order.
func removeString(list []string, s string) []string {
	for i, v := range list {
		if v == s {
			return append(list[:i], list[i+1:]...)
		}
	}

	return list
}
