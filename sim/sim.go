// SPDX-License-Identifier: MIT

package sim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/katalvlaran/routeopt/bfs"
	"github.com/katalvlaran/routeopt/core"
	"github.com/katalvlaran/routeopt/matrix"
	"github.com/katalvlaran/routeopt/route"
	"github.com/katalvlaran/routeopt/tsp"
)

// ErrNilGraph indicates New was called without a graph.
var ErrNilGraph = errors.New("sim: nil graph")

// Option configures a Simulator.
type Option func(s *Simulator)

// WithLogger sets the run logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics attaches a collector set.
func WithMetrics(m *Metrics) Option {
	return func(s *Simulator) { s.metrics = m }
}

// Simulator runs the pipeline against one graph.
type Simulator struct {
	mu sync.Mutex

	g       *core.Graph
	log     *slog.Logger
	metrics *Metrics
}

// New returns a Simulator bound to g.
func New(g *core.Graph, opts ...Option) (*Simulator, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	s := &Simulator{
		g:   g,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Run executes one simulation from startID. An unknown startID falls back to
// the first city in insertion order.
//
// Implementation:
//   - Stage 1: Reset the overlay and edge styles (always).
//   - Stage 2: Refuse maps with fewer than two cities.
//   - Stage 3: Snapshot, metric closure, start resolution.
//   - Stage 4: Nearest-neighbour tour, reconstruction, apply.
//   - Stage 5: On an unreachable tour, split the map into islands.
//
// Errors:
//   - ctx.Err() on cancellation; the graph is left reset.
//   - wrapped core errors when g changed between snapshot and apply.
func (s *Simulator) Run(ctx context.Context, startID string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	began := time.Now()
	if err := route.Reset(s.g); err != nil {
		return Result{}, err
	}

	snap := s.g.Snapshot()
	if len(snap.Nodes) < 2 {
		res := Result{Status: StatusInsufficientNodes, Edges: s.g.AllEdges(), Elapsed: time.Since(began)}
		s.finish(res)

		return res, nil
	}

	d, err := matrix.MetricClosure(ctx, snap)
	if err != nil {
		return Result{}, fmt.Errorf("sim: closure: %w", err)
	}

	start, ok := d.IndexOf(startID)
	if !ok {
		start = 0
		s.log.Debug("start city unknown, using first city", "requested", startID, "start", d.IDs[0])
	}

	tour, err := tsp.NearestNeighbor(ctx, d, start)
	if err != nil {
		return Result{}, fmt.Errorf("sim: tour: %w", err)
	}
	if err = checkTour(d, tour, start); err != nil {
		return Result{}, err
	}
	s.log.Debug("tour built", "tour", tsp.DebugString(tour.Tour), "cost", tour.Cost)

	hops, err := route.Reconstruct(tour.Tour, d, snap)
	if err != nil {
		return Result{}, fmt.Errorf("sim: reconstruct: %w", err)
	}
	if err = route.Apply(s.g, hops); err != nil {
		_ = route.Reset(s.g)
		return Result{}, fmt.Errorf("sim: apply: %w", err)
	}

	res := Result{
		Status:    StatusSuccess,
		TotalCost: tour.Cost,
		StartID:   d.IDs[start],
		Tour:      make([]string, len(tour.Tour)),
		Hops:      hops,
		Log:       route.Log(hops),
		Edges:     s.g.AllEdges(),
	}
	for i, v := range tour.Tour {
		res.Tour[i] = d.IDs[v]
	}
	if !tour.Reachable() {
		res.Status = StatusUnreachable
		if res.Islands, err = bfs.Components(ctx, snap); err != nil {
			return Result{}, fmt.Errorf("sim: components: %w", err)
		}
	}
	res.Elapsed = time.Since(began)
	s.finish(res)

	return res, nil
}

// checkTour verifies that tour is a closed Hamiltonian tour from start and
// that its reported cost matches the legs it walks.
func checkTour(d *matrix.Distances, tour tsp.Result, start int) error {
	if err := tsp.ValidateTour(tour.Tour, d.N(), start); err != nil {
		return fmt.Errorf("sim: tour %s: %w", tsp.DebugString(tour.Tour), err)
	}
	cost, err := tsp.TourCost(d, tour.Tour)
	if err != nil {
		return fmt.Errorf("sim: tour cost: %w", err)
	}
	if cost != tour.Cost {
		return fmt.Errorf("sim: tour cost %d, legs sum to %d", tour.Cost, cost)
	}

	return nil
}

// finish logs and records a completed run.
func (s *Simulator) finish(r Result) {
	attrs := []any{
		"status", r.Status.String(),
		"hops", len(r.Hops),
		"virtual", route.VirtualCount(r.Hops),
		"elapsed", r.Elapsed,
	}
	switch r.Status {
	case StatusSuccess:
		attrs = append(attrs, "cost", r.TotalCost)
	case StatusUnreachable:
		attrs = append(attrs, "islands", len(r.Islands))
	}
	if r.Status == StatusInsufficientNodes {
		s.log.Warn("simulation refused", attrs...)
	} else {
		s.log.Info("simulation finished", attrs...)
	}
	s.metrics.observe(r)
}
