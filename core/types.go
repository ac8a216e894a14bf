// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Style, Snapshot, Graph, GraphOption, sentinel errors and NewGraph.
// Concurrency:
//   - A single sync.RWMutex guards every catalog. The model assumes one active
//     edit/simulation sequence at a time; the lock only serializes access.

package core

import (
	"errors"
	"strings"
	"sync"
)

// VirtualIDPrefix starts every virtual edge ID. Nodes and real edges may not
// use it.
const VirtualIDPrefix = "virtual-"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that an operation received an empty node ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateID indicates the requested ID is already used by a node or an edge.
	ErrDuplicateID = errors.New("core: id already in use")

	// ErrLoopNotAllowed indicates a road from a city to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrVirtualEdge indicates a direct edit or removal of a virtual edge.
	ErrVirtualEdge = errors.New("core: virtual edges are read-only")

	// ErrIDExhausted indicates that no free ID could be generated.
	ErrIDExhausted = errors.New("core: could not generate a free id")

	// ErrReservedID indicates a node or real edge ID in the virtual namespace.
	ErrReservedID = errors.New("core: id prefix " + VirtualIDPrefix + " is reserved")
)

// Node is a city on the map.
type Node struct {
	// ID is the unique, stable identifier.
	ID string

	// Label is the display string.
	Label string
}

// Arrow describes which end of an edge carries a direction marker.
type Arrow uint8

const (
	// ArrowNone draws no marker.
	ArrowNone Arrow = iota
	// ArrowForward points From → To.
	ArrowForward
	// ArrowBackward points To → From.
	ArrowBackward
)

// String returns a short name for the arrow orientation.
func (a Arrow) String() string {
	switch a {
	case ArrowForward:
		return "forward"
	case ArrowBackward:
		return "backward"
	default:
		return "none"
	}
}

// Style is presentation-only edge state. It never influences distances.
type Style struct {
	Color  string
	Width  int
	Dashed bool
	Arrow  Arrow
}

// Edge is an undirected road between From and To.
type Edge struct {
	// ID uniquely identifies the edge.
	ID string

	// From and To are node IDs; the pair is unordered.
	From string
	To   string

	// Label carries the weight as a base-10 string (wire format).
	Label string

	// Virtual marks a transient overlay edge produced by a simulation run.
	Virtual bool

	// Style is the current presentation state.
	Style Style
}

// Connects reports whether e joins u and v in either orientation.
func (e Edge) Connects(u, v string) bool {
	return (e.From == u && e.To == v) || (e.From == v && e.To == u)
}

// Touches reports whether id is one of e's endpoints.
func (e Edge) Touches(id string) bool {
	return e.From == id || e.To == id
}

// Snapshot is an immutable copy of the real graph at one point in time.
// Nodes and Edges keep insertion order. Virtual edges are never included.
type Snapshot struct {
	Nodes []Node
	Edges []Edge
}

// Label returns the label of node id, or "" when id is not in the snapshot.
func (s Snapshot) Label(id string) string {
	for i := range s.Nodes {
		if s.Nodes[i].ID == id {
			return s.Nodes[i].Label
		}
	}

	return ""
}

// IDSource produces candidate node IDs for AddNode calls without an ID.
type IDSource func() string

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithIDSource overrides the generator used for node IDs.
// A nil source keeps the default.
func WithIDSource(src IDSource) GraphOption {
	return func(g *Graph) {
		if src != nil {
			g.nextNodeID = src
		}
	}
}

// WithIDAttempts bounds how many colliding candidates AddNode tolerates
// before falling back to a UUID-derived ID. Values < 1 are ignored.
func WithIDAttempts(n int) GraphOption {
	return func(g *Graph) {
		if n >= 1 {
			g.idAttempts = n
		}
	}
}

// Graph is the GraphStore: the single owned, mutable road map.
type Graph struct {
	mu sync.RWMutex

	nodes     map[string]*Node
	nodeOrder []string

	edges     map[string]*Edge
	edgeOrder []string

	// virtual is the transient overlay; kept out of edges by construction.
	virtual []*Edge

	nextNodeID IDSource
	idAttempts int
}

// defaultIDAttempts is the number of generated candidates tried before the UUID fallback.
const defaultIDAttempts = 64

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:      make(map[string]*Node),
		edges:      make(map[string]*Edge),
		nextNodeID: cityID,
		idAttempts: defaultIDAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// taken reports whether id is used by any node, real edge or virtual edge.
// Caller must hold g.mu.
func (g *Graph) taken(id string) bool {
	if _, ok := g.nodes[id]; ok {
		return true
	}
	if _, ok := g.edges[id]; ok {
		return true
	}
	for _, e := range g.virtual {
		if e.ID == id {
			return true
		}
	}

	return false
}

// reserved reports whether id lies in the virtual edge namespace.
func reserved(id string) bool {
	return strings.HasPrefix(id, VirtualIDPrefix)
}
