// SPDX-License-Identifier: MIT

package sim

import (
	"time"

	"github.com/katalvlaran/routeopt/core"
	"github.com/katalvlaran/routeopt/route"
)

// Status is the outcome class of a run.
type Status uint8

const (
	// StatusSuccess means the closed tour has a finite cost.
	StatusSuccess Status = iota
	// StatusUnreachable means at least one leg of the tour has no path.
	StatusUnreachable
	// StatusInsufficientNodes means the map has fewer than two cities.
	StatusInsufficientNodes
)

// String returns the metric label of s.
func (s Status) String() string {
	switch s {
	case StatusUnreachable:
		return "unreachable"
	case StatusInsufficientNodes:
		return "insufficient_nodes"
	default:
		return "success"
	}
}

// Result is everything a presentation layer needs after a run.
type Result struct {
	Status Status

	// TotalCost is meaningful only for StatusSuccess.
	TotalCost int64

	// StartID is the resolved start city; it differs from the requested one
	// when that was unknown.
	StartID string

	// Tour is the closed tour as node IDs.
	Tour []string

	Hops []route.Hop
	Log  []route.LogEntry

	// Edges is the drawable edge set after the run: real then virtual.
	Edges []core.Edge

	// Islands lists the groups of mutually reachable cities when the map is
	// disconnected; it is set only for StatusUnreachable.
	Islands [][]string

	Elapsed time.Duration
}

// Summary renders the one-line result message.
func (r Result) Summary() string {
	switch r.Status {
	case StatusInsufficientNodes:
		return "Need 2+ cities"
	case StatusUnreachable:
		return "Unreachable"
	default:
		return "Total Cost: " + core.FormatWeight(r.TotalCost)
	}
}
