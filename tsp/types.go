package tsp

import (
	"errors"

	"github.com/katalvlaran/routeopt/matrix"
)

// Sentinel errors returned by tour construction and tour utilities.
var (
	// ErrDimensionMismatch indicates an empty/nil matrix or a malformed tour.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrStartOutOfRange indicates a start index outside [0, n).
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")
)

// Result holds the outcome of tour construction.
type Result struct {
	// Tour is the closed index sequence; len(Tour) == n+1, Tour[0] == Tour[n] == start.
	Tour []int

	// Cost is the total length of the closed tour, saturated at matrix.Inf.
	Cost int64
}

// Reachable reports whether the tour closes with a finite total cost.
func (r Result) Reachable() bool { return !matrix.IsInf(r.Cost) }
