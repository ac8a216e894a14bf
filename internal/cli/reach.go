package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/routeopt/bfs"
	"github.com/katalvlaran/routeopt/internal/ui"
	"github.com/katalvlaran/routeopt/scenario"
)

func reachCmd(a *app) *cobra.Command {
	var (
		from  string
		depth int
	)
	cmd := &cobra.Command{
		Use:   "reach [file]",
		Short: "List the cities reachable by road from a city",
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
			if from == "" {
				from = s.Start
			}

			snap := g.Snapshot()
			res, err := bfs.Walk(cmd.Context(), snap, from, bfs.WithMaxDepth(depth))
			if err != nil {
				return fmt.Errorf("reach %s: %w", from, err)
			}

			w := cmd.OutOrStdout()
			rows := make([][]string, 0, len(res.Order))
			for _, id := range res.Order {
				rows = append(rows, []string{id, strconv.Itoa(res.Depth[id]), res.Parent[id]})
			}
			ui.Table(w, []string{"City", "Roads", "Via"}, rows, nil)
			fmt.Fprintln(w)
			fmt.Fprintln(w, ui.Subtle.Sprintf("  %d of %d cities reachable from %s", len(res.Order), len(snap.Nodes), from))

			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "city to start from (default: the scenario's start)")
	cmd.Flags().IntVar(&depth, "depth", 0, "maximum number of roads to follow (0: no limit)")

	return cmd
}
