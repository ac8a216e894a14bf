package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/routeopt/core"
	"github.com/katalvlaran/routeopt/editor"
	"github.com/katalvlaran/routeopt/internal/ui"
	"github.com/katalvlaran/routeopt/route"
	"github.com/katalvlaran/routeopt/scenario"
)

// errQuit ends the editing session.
var errQuit = errors.New("quit")

const editHelp = `commands:
  add [id] [label...]   add a city (random id when omitted)
  label <id> <text...>  relabel a city or road
  rm <id>               remove a city (with its roads) or a road
  connect               toggle connect mode
  click <id>            click a city
  canvas                click empty space
  start <id>            set the start city
  run                   plan the round trip
  show                  list cities and roads
  help                  this text
  quit                  leave`

func editCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit [file]",
		Short: "Edit a road map interactively and plan round trips",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := scenario.Default()
			if len(args) == 1 {
				var err error
				if s, err = scenario.Load(args[0]); err != nil {
					return err
				}
			}
			g, _, err := s.Graph()
			if err != nil {
				return err
			}
			ses, err := a.newSession(g, s.Start, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			return ses.loop(cmd.Context(), cmd.InOrStdin())
		},
	}
}

// session is one interactive editing run over a graph.
type session struct {
	a     *app
	g     *core.Graph
	ed    *editor.Editor
	start string
	out   io.Writer
}

func (a *app) newSession(g *core.Graph, start string, out io.Writer) (*session, error) {
	ed, err := editor.New(g, editor.WithDefaultWeight(a.cfg.Editor.DefaultWeight))
	if err != nil {
		return nil, err
	}

	return &session{a: a, g: g, ed: ed, start: start, out: out}, nil
}

// loop reads commands from in until quit, EOF or ctx is done. Lines are read
// on their own goroutine so cancellation does not wait for the next Enter.
func (s *session) loop(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(s.out, ui.Brand.Sprint("routeopt")+" edit: type 'help' for commands")
	fmt.Fprintln(s.out, ui.Subtle.Sprint("  "+s.ed.Instruction()))

	lines, errc := readLines(ctx, in)
	for {
		fmt.Fprint(s.out, "> ")
		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(s.out)
				return <-errc
			}
			line = l
		}
		err := s.exec(ctx, line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(s.out, ui.Bad.Sprint("  error: ")+err.Error())
		}
	}
}

// readLines scans in on a goroutine. errc receives exactly one value before
// lines is closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- sc.Err()
	}()

	return lines, errc
}

// exec runs one command line.
func (s *session) exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	args := fields[1:]

	switch fields[0] {
	case "add":
		var id, label string
		if len(args) > 0 {
			id = args[0]
		}
		if len(args) > 1 {
			label = strings.Join(args[1:], " ")
		}
		got, err := s.g.AddNode(id, label)
		if err != nil {
			return err
		}
		s.say("City " + got + " added.")

	case "label":
		if len(args) < 1 {
			return fmt.Errorf("usage: label <id> <text...>")
		}
		if err := s.g.UpdateLabel(args[0], strings.Join(args[1:], " ")); err != nil {
			return err
		}
		s.say("Label updated.")

	case "rm":
		if len(args) != 1 {
			return fmt.Errorf("usage: rm <id>")
		}
		if err := s.g.Remove(args[0]); err != nil {
			return err
		}
		s.say("Removed " + args[0] + ".")

	case "connect":
		s.ed.Toggle()
		s.say(s.ed.Instruction())

	case "click":
		if len(args) != 1 {
			return fmt.Errorf("usage: click <id>")
		}
		if _, err := s.ed.ClickNode(args[0]); err != nil {
			return err
		}
		s.say(s.ed.Instruction())

	case "canvas":
		s.ed.ClickCanvas()
		s.say(s.ed.Instruction())

	case "start":
		if len(args) != 1 {
			return fmt.Errorf("usage: start <id>")
		}
		if !s.g.HasNode(args[0]) {
			return fmt.Errorf("start %s: %w", args[0], core.ErrNodeNotFound)
		}
		s.start = args[0]
		s.say("Start set to " + s.start + ".")

	case "run":
		if _, err := s.a.runGraph(ctx, s.out, s.g, s.start); err != nil {
			return err
		}

	case "show":
		s.show()

	case "help":
		fmt.Fprintln(s.out, editHelp)

	case "quit", "exit":
		return errQuit

	default:
		return fmt.Errorf("unknown command %q (try 'help')", fields[0])
	}

	return nil
}

func (s *session) say(msg string) {
	fmt.Fprintln(s.out, ui.Subtle.Sprint("  "+msg))
}

// show lists cities then every drawable road, virtual ones last.
func (s *session) show() {
	var rows [][]string
	for _, n := range s.g.Nodes() {
		mark := ""
		if n.ID == s.start {
			mark = "start"
		}
		rows = append(rows, []string{n.ID, n.Label, mark})
	}
	ui.Table(s.out, []string{"City", "Label", ""}, rows, nil)

	edges := s.g.AllEdges()
	rows = nil
	for _, e := range edges {
		kind := "road"
		if e.Virtual {
			kind = route.Virtual.String()
		}
		rows = append(rows, []string{e.ID, e.From + "–" + e.To, e.Label, kind})
	}
	if len(rows) > 0 {
		fmt.Fprintln(s.out)
	}
	ui.Table(s.out, []string{"Road", "Between", "Label", "Kind"}, rows, func(r int) *color.Color {
		if edges[r].Virtual {
			return ui.Virtual
		}
		return nil
	})
}
