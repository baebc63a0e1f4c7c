package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/disco/checkpoint"
	"github.com/katalvlaran/disco/model"
)

func checkpointCmd(a *app) *cobra.Command {
	var dir string

	c := &cobra.Command{
		Use:   "checkpoint FILE",
		Short: "Build the model and store its root node in a checkpoint database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.params()
			if err != nil {
				return err
			}
			m, err := model.Load(args[0], p, model.WithLogger(a.log), model.WithMetrics(a.metrics))
			if err != nil {
				return err
			}

			cfg := checkpoint.DefaultConfig(dir)
			cfg.Logger = a.log
			cfg.Metrics = a.metrics
			store, err := checkpoint.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			root := m.Root()
			defer root.Close()
			if err := store.Put(cmd.Context(), 0, root); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "run %s: root node stored in %s\n", store.Run(), dir)

			return nil
		},
	}
	c.Flags().StringVarP(&dir, "dir", "d", "", "checkpoint database directory (required)")
	_ = c.MarkFlagRequired("dir")

	return c
}
