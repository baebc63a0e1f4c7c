// Package cli implements the disco command line.
package cli

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/disco/internal/logging"
	"github.com/katalvlaran/disco/metrics"
	"github.com/katalvlaran/disco/params"
)

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries state shared by subcommands.
type app struct {
	debug       bool
	paramsPath  string
	metricsPath string
	log         *zap.Logger

	registry *prometheus.Registry
	metrics  *metrics.Collectors
}

func (a *app) params() (params.Params, error) {
	if a.paramsPath == "" {
		return params.Default(), nil
	}

	return params.Load(a.paramsPath)
}

func newRootCmd() *cobra.Command {
	reg := prometheus.NewRegistry()
	a := &app{log: zap.NewNop(), registry: reg, metrics: metrics.New(reg)}

	cmd := &cobra.Command{
		Use:          "disco",
		Short:        "Conic branch-and-bound setup tools",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			l, err := logging.New(logging.Config{Debug: a.debug})
			if err != nil {
				return err
			}
			a.log = l

			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			_ = a.log.Sync()
			if a.metricsPath == "" {
				return nil
			}
			if err := prometheus.WriteToTextfile(a.metricsPath, a.registry); err != nil {
				return fmt.Errorf("write metrics: %w", err)
			}

			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVarP(&a.paramsPath, "params", "p", "", "parameter file (YAML)")
	cmd.PersistentFlags().StringVar(&a.metricsPath, "metrics", "", "write Prometheus metrics to this file after the command")

	cmd.AddCommand(canonCmd(a), scheduleCmd(a), checkpointCmd(a))

	return cmd
}
