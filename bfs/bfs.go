// SPDX-License-Identifier: MIT

package bfs

import (
	"context"

	"github.com/katalvlaran/routeopt/core"
)

// queueItem pairs a city ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	ctx   context.Context
	adj   map[string][]string
	opts  Options
	queue []queueItem
	res   *Result
}

// Walk runs breadth-first search over snap from start.
//
// Errors:
//   - ErrStartNotFound, ErrOptionViolation.
//   - ctx.Err() on cancellation (checked once per dequeued city).
//
// Complexity: O(V + E).
func Walk(ctx context.Context, snap core.Snapshot, start string, opts ...Option) (*Result, error) {
	o, err := build(opts)
	if err != nil {
		return nil, err
	}
	adj := adjacency(snap, o.Traversable)
	if _, ok := adj[start]; !ok {
		return nil, ErrStartNotFound
	}

	w := newWalker(ctx, adj, o, len(snap.Nodes))
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

// Components partitions the cities of snap into connected groups. Groups are
// ordered by their first city in insertion order; each group lists cities in
// BFS visit order.
//
// Complexity: O(V + E).
func Components(ctx context.Context, snap core.Snapshot, opts ...Option) ([][]string, error) {
	o, err := build(opts)
	if err != nil {
		return nil, err
	}
	o.MaxDepth = 0

	adj := adjacency(snap, o.Traversable)
	seen := make(map[string]bool, len(snap.Nodes))

	var groups [][]string
	for _, n := range snap.Nodes {
		if seen[n.ID] {
			continue
		}
		w := newWalker(ctx, adj, o, 0)
		w.enqueue(n.ID, 0, "")
		if err := w.loop(); err != nil {
			return nil, err
		}
		for _, id := range w.res.Order {
			seen[id] = true
		}
		groups = append(groups, w.res.Order)
	}

	return groups, nil
}

func build(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// adjacency lists neighbors per city in road insertion order. Roads with a
// missing endpoint or failing keep are skipped.
func adjacency(snap core.Snapshot, keep func(core.Edge) bool) map[string][]string {
	adj := make(map[string][]string, len(snap.Nodes))
	for _, n := range snap.Nodes {
		adj[n.ID] = nil
	}
	for _, e := range snap.Edges {
		_, okFrom := adj[e.From]
		_, okTo := adj[e.To]
		if !okFrom || !okTo || e.Virtual || e.From == e.To || !keep(e) {
			continue
		}
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}

	return adj
}

func newWalker(ctx context.Context, adj map[string][]string, o Options, hint int) *walker {
	return &walker{
		ctx:   ctx,
		adj:   adj,
		opts:  o,
		queue: make([]queueItem, 0, hint),
		res: &Result{
			Order:  make([]string, 0, hint),
			Depth:  make(map[string]int, hint),
			Parent: make(map[string]string, hint),
		},
	}
}

// enqueue marks id visited at depth d and records its parent.
func (w *walker) enqueue(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.adj[item.id] {
			if !w.res.Reached(nbr) {
				w.enqueue(nbr, next, item.id)
			}
		}
	}

	return nil
}
