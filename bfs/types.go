// SPDX-License-Identifier: MIT

package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/routeopt/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start ID is not a city of the snapshot.
	ErrStartNotFound = errors.New("bfs: start city not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures a walk.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds walk parameters.
type Options struct {
	// MaxDepth, if > 0, stops exploring beyond this many roads from the start.
	MaxDepth int

	// Traversable decides whether a road can be walked.
	Traversable func(e core.Edge) bool

	err error
}

// DefaultOptions walks every road whose label parses as a weight, with no
// depth limit.
func DefaultOptions() Options {
	return Options{Traversable: Weighted}
}

// Weighted reports whether e carries a usable weight.
func Weighted(e core.Edge) bool {
	_, ok := core.ParseWeight(e.Label)
	return ok
}

// WithMaxDepth limits the walk depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithTraversable replaces the road filter. A nil fn walks every road.
func WithTraversable(fn func(e core.Edge) bool) Option {
	return func(o *Options) {
		if fn == nil {
			fn = func(core.Edge) bool { return true }
		}
		o.Traversable = fn
	}
}

// Result holds the outcome of a walk:
//   - Order: cities in visit sequence.
//   - Depth: road count from the start.
//   - Parent: predecessor in the BFS tree; the start has none.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Reached reports whether id was visited.
func (r *Result) Reached(id string) bool {
	_, ok := r.Depth[id]
	return ok
}
