// SPDX-License-Identifier: MIT

package route

import (
	"errors"

	"github.com/katalvlaran/routeopt/core"
)

// Sentinel errors for reconstruction and application.
var (
	// ErrInvalidTour indicates a tour shorter than two entries or an index
	// outside the closure.
	ErrInvalidTour = errors.New("route: invalid tour")

	// ErrNilGraph indicates that an adapter was handed a nil *core.Graph.
	ErrNilGraph = errors.New("route: nil graph")
)

// Kind classifies a hop.
type Kind uint8

const (
	// Direct hops follow a real edge.
	Direct Kind = iota
	// Virtual hops stand for a shortest path through other cities.
	Virtual
)

// String returns "direct" or "virtual".
func (k Kind) String() string {
	if k == Virtual {
		return "virtual"
	}

	return "direct"
}

// Hop is one leg of a reconstructed tour.
type Hop struct {
	// Step is the 1-based position of the leg in the tour.
	Step int

	From, To           string
	FromLabel, ToLabel string

	// Cost is the closure distance d[From][To]; matrix.Inf when unreachable.
	Cost int64

	Kind Kind

	// EdgeID names the representative real edge of a Direct hop; empty otherwise.
	EdgeID string

	// Forward reports whether the representative edge is stored From → To.
	Forward bool
}

// LogEntry is the reporting view of a hop.
type LogEntry struct {
	Step int

	// From and To are display labels; FromID and ToID the node IDs.
	From, To     string
	FromID, ToID string

	Cost int64
	Kind Kind
}

// Presentation styles written by the adapters.
var (
	// NeutralStyle is the resting state of every real edge.
	NeutralStyle = core.Style{Color: "#4b5563", Width: 2}

	// DirectStyle highlights a real edge on the tour; Arrow is set per hop.
	DirectStyle = core.Style{Color: "#ef4444", Width: 5}

	// VirtualStyle marks an overlay edge.
	VirtualStyle = core.Style{Color: "#f87171", Width: 4, Dashed: true, Arrow: core.ArrowForward}
)

// VirtualSuffix is appended to the cost in a virtual edge label.
const VirtualSuffix = " (VIRTUAL)"
