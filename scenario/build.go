// SPDX-License-Identifier: MIT

package scenario

import (
	"fmt"

	"github.com/katalvlaran/routeopt/core"
)

// Report summarizes a Build.
type Report struct {
	Nodes int
	Edges int

	// Skipped lists roads dropped because a real road already joined the pair.
	Skipped []Edge
}

// Build inserts s into g in file order. Roads that duplicate an existing pair
// are skipped and reported, matching connect mode.
//
// Errors:
//   - core errors for a bad city or road, wrapped with its position.
func (s *Scenario) Build(g *core.Graph) (Report, error) {
	var rep Report
	for i, n := range s.Nodes {
		if _, err := g.AddNode(n.ID, n.Label); err != nil {
			return rep, fmt.Errorf("scenario: node %d (%q): %w", i, n.ID, err)
		}
		rep.Nodes++
	}
	for i, e := range s.Edges {
		if _, dup := g.FindEdge(e.From, e.To); dup {
			rep.Skipped = append(rep.Skipped, e)
			continue
		}
		if _, err := g.AddEdge(e.ID, e.From, e.To, string(e.Weight)); err != nil {
			return rep, fmt.Errorf("scenario: edge %d (%s-%s): %w", i, e.From, e.To, err)
		}
		rep.Edges++
	}

	return rep, nil
}

// Graph builds s into a fresh graph.
func (s *Scenario) Graph(opts ...core.GraphOption) (*core.Graph, Report, error) {
	g := core.NewGraph(opts...)
	rep, err := s.Build(g)
	if err != nil {
		return nil, rep, err
	}

	return g, rep, nil
}
