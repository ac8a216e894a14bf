// Package cli implements the routeopt command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/routeopt/config"
	"github.com/katalvlaran/routeopt/sim"
)

var version = "0.3.0"

// app is the state shared by every subcommand of one invocation.
type app struct {
	cfgPath  string
	logLevel string
	metrics  bool

	cfg     *config.Config
	log     *slog.Logger
	reg     *prometheus.Registry
	simMets *sim.Metrics
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "routeopt",
		Short:         "Plan a round trip over a road map",
		Long:          "Plan an approximate shortest round trip visiting every city of a road map.\nRoads missing from the map are bridged by virtual hops along shortest paths.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !a.metrics {
				return nil
			}

			return dumpMetrics(cmd.OutOrStdout(), a.reg)
		},
	}
	root.SetVersionTemplate("routeopt {{ .Version }}\n")

	f := root.PersistentFlags()
	f.StringVar(&a.cfgPath, "config", "", "config file (default "+config.Path()+")")
	f.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.BoolVar(&a.metrics, "metrics", false, "print simulation metrics on exit")

	root.AddCommand(
		runCmd(a),
		watchCmd(a),
		editCmd(a),
		reachCmd(a),
	)

	return root
}

// Execute runs the root command until ctx is done.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// setup loads config and builds the logger and metrics registry.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.cfgPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("metrics") {
		cfg.Metrics.Enabled = a.metrics
	}
	a.metrics = cfg.Metrics.Enabled
	a.cfg = cfg

	lvl, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	a.log = newLogger(cmd.ErrOrStderr(), cfg.Log.Format, lvl)

	a.reg = prometheus.NewRegistry()
	a.simMets = sim.NewMetrics(a.reg)

	if !cfg.Report.Color {
		color.NoColor = true
	}

	return nil
}

// newLogger builds a text or JSON slog handler on w.
func newLogger(w io.Writer, format string, lvl slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// dumpMetrics writes reg in the Prometheus text exposition format.
func dumpMetrics(w io.Writer, reg prometheus.Gatherer) error {
	mfs, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}

	return nil
}

// Main runs the CLI and returns the process exit status.
func Main(ctx context.Context) int {
	if err := Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "routeopt:", err)
		return 1
	}

	return 0
}
