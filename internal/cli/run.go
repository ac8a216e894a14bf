package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/routeopt/core"
	"github.com/katalvlaran/routeopt/scenario"
	"github.com/katalvlaran/routeopt/sim"
)

func runCmd(a *app) *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Plan a round trip over a scenario file (or the built-in map)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := scenario.Default()
			if len(args) == 1 {
				var err error
				if s, err = scenario.Load(args[0]); err != nil {
					return err
				}
			}

			return a.simulate(cmd.Context(), cmd.OutOrStdout(), s, start)
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "start city id (default: the scenario's start)")

	return cmd
}

// simulate builds s into a fresh graph, runs it and prints the report.
func (a *app) simulate(ctx context.Context, w io.Writer, s *scenario.Scenario, start string) error {
	g, rep, err := s.Graph()
	if err != nil {
		return err
	}
	for _, e := range rep.Skipped {
		a.log.Warn("duplicate road skipped", "from", e.From, "to", e.To)
	}
	if start == "" {
		start = s.Start
	}

	_, err = a.runGraph(ctx, w, g, start)

	return err
}

// runGraph runs one simulation over g and prints it.
func (a *app) runGraph(ctx context.Context, w io.Writer, g *core.Graph, start string) (sim.Result, error) {
	sm, err := sim.New(g, sim.WithLogger(a.log), sim.WithMetrics(a.simMets))
	if err != nil {
		return sim.Result{}, err
	}
	res, err := sm.Run(ctx, start)
	if err != nil {
		return sim.Result{}, fmt.Errorf("simulate: %w", err)
	}
	printResult(w, res, a.cfg.Report.Humanize)

	return res, nil
}
