package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/routeopt/internal/ui"
	"github.com/katalvlaran/routeopt/scenario"
)

func watchCmd(a *app) *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-plan whenever a scenario file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, w, path := cmd.Context(), cmd.OutOrStdout(), args[0]

			s, err := scenario.Load(path)
			if err != nil {
				return err
			}
			if err := a.simulate(ctx, w, s, start); err != nil {
				return err
			}

			reloads := make(chan *scenario.Scenario, 1)
			stop, err := scenario.Watch(path, func(s *scenario.Scenario, err error) {
				if err != nil {
					a.log.Warn("reload skipped", "path", path, "err", err)
					return
				}
				// Keep only the newest pending reload.
				select {
				case <-reloads:
				default:
				}
				reloads <- s
			})
			if err != nil {
				return err
			}
			defer stop()
			a.log.Info("watching scenario", "path", path)

			for {
				select {
				case <-ctx.Done():
					return nil
				case s := <-reloads:
					fmt.Fprintln(w, ui.Subtle.Sprint("  ── reloaded "+path))
					if err := a.simulate(ctx, w, s, start); err != nil {
						a.log.Warn("reload failed", "path", path, "err", err)
					}
				}
			}
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "start city id (default: the scenario's start)")

	return cmd
}
