// SPDX-License-Identifier: MIT

package editor

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/routeopt/core"
)

// DefaultWeight is the label given to edges created by a connection.
const DefaultWeight = "10"

// ErrNilGraph indicates New was called without a graph.
var ErrNilGraph = errors.New("editor: nil graph")

// State is the connection-mode state.
type State uint8

const (
	// Idle means connect mode is off.
	Idle State = iota
	// AwaitingSource waits for the first city of a pair.
	AwaitingSource
	// AwaitingDestination holds a source and waits for the second city.
	AwaitingDestination
)

// String returns a short state name.
func (s State) String() string {
	switch s {
	case AwaitingSource:
		return "awaiting-source"
	case AwaitingDestination:
		return "awaiting-destination"
	default:
		return "idle"
	}
}

// Outcome reports what an event did.
type Outcome uint8

const (
	// Ignored means the event had no effect in the current state.
	Ignored Outcome = iota
	// Entered means connect mode was switched on.
	Entered
	// Exited means connect mode was switched off.
	Exited
	// SourceSelected means the first city of a pair was chosen.
	SourceSelected
	// Connected means a new real edge was created.
	Connected
	// Duplicate means the pair was already joined by a real edge.
	Duplicate
	// Cancelled means the pending pair was discarded.
	Cancelled
)

var outcomeNames = [...]string{
	Ignored:        "ignored",
	Entered:        "entered",
	Exited:         "exited",
	SourceSelected: "source-selected",
	Connected:      "connected",
	Duplicate:      "duplicate",
	Cancelled:      "cancelled",
}

// String returns a short outcome name.
func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}

	return fmt.Sprintf("outcome(%d)", uint8(o))
}

// User-facing instructions.
const (
	msgIdle        = "Click 'Add City' to start."
	msgSelectStart = "Select START city."
	msgConnected   = "Connected!"
	msgDuplicate   = "Cities are already connected. Select START city."
	msgCancelled   = "Connection cancelled. Select START city."
	msgExited      = "Connect mode off."
)

// Option configures an Editor.
type Option func(e *Editor)

// WithDefaultWeight sets the label of created edges. Labels that are empty or
// not a valid weight are ignored.
func WithDefaultWeight(label string) Option {
	return func(e *Editor) {
		if label == "" {
			return
		}
		if _, ok := core.ParseWeight(label); ok {
			e.weight = label
		}
	}
}

// Editor drives connection mode over one graph.
type Editor struct {
	g *core.Graph

	state  State
	source string

	weight      string
	instruction string
	lastEdge    string
}

// New returns an Idle editor over g.
func New(g *core.Graph, opts ...Option) (*Editor, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	e := &Editor{g: g, weight: DefaultWeight, instruction: msgIdle}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// State returns the current state.
func (e *Editor) State() State { return e.state }

// Source returns the held source ID in AwaitingDestination, "" otherwise.
func (e *Editor) Source() string { return e.source }

// Instruction returns the message to show the user.
func (e *Editor) Instruction() string { return e.instruction }

// LastEdge returns the ID of the most recently created edge.
func (e *Editor) LastEdge() string { return e.lastEdge }

// Weight returns the label given to created edges.
func (e *Editor) Weight() string { return e.weight }

// Enter switches connect mode on from any state, dropping a pending source.
func (e *Editor) Enter() Outcome {
	e.state, e.source = AwaitingSource, ""
	e.instruction = msgSelectStart

	return Entered
}

// Exit switches connect mode off from any state.
func (e *Editor) Exit() Outcome {
	if e.state == Idle {
		return Ignored
	}
	e.state, e.source = Idle, ""
	e.instruction = msgExited

	return Exited
}

// Toggle enters connect mode when Idle and exits it otherwise.
func (e *Editor) Toggle() Outcome {
	if e.state == Idle {
		return e.Enter()
	}

	return e.Exit()
}

// ClickNode feeds a click on city id into the state machine.
//
// Errors:
//   - core.ErrNodeNotFound: id is not a city; the state is unchanged.
//   - errors from core.Graph.AddEdge; the pending pair is dropped.
func (e *Editor) ClickNode(id string) (Outcome, error) {
	n, err := e.g.Node(id)
	if err != nil {
		return Ignored, err
	}

	switch e.state {
	case AwaitingSource:
		e.state, e.source = AwaitingDestination, id
		e.instruction = fmt.Sprintf("Selected %s. Now select DESTINATION.", n.Label)

		return SourceSelected, nil

	case AwaitingDestination:
		src := e.source
		e.state, e.source = AwaitingSource, ""
		if id == src {
			e.instruction = msgCancelled
			return Cancelled, nil
		}
		if _, ok := e.g.FindEdge(src, id); ok {
			e.instruction = msgDuplicate
			return Duplicate, nil
		}
		eid, err := e.g.AddEdge("", src, id, e.weight)
		if err != nil {
			e.instruction = msgSelectStart
			return Ignored, fmt.Errorf("editor: connect %s-%s: %w", src, id, err)
		}
		e.lastEdge = eid
		e.instruction = msgConnected

		return Connected, nil
	}

	return Ignored, nil
}

// ClickCanvas feeds a click on empty space. A pending pair is cancelled.
func (e *Editor) ClickCanvas() Outcome {
	if e.state != AwaitingDestination {
		return Ignored
	}
	e.state, e.source = AwaitingSource, ""
	e.instruction = msgCancelled

	return Cancelled
}
