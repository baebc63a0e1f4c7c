package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/disco/model"
)

func canonCmd(a *app) *cobra.Command {
	var showCones bool

	c := &cobra.Command{
		Use:   "canon FILE",
		Short: "Read a conic-program file and print the canonical problem",
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

			prob := m.Problem
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "sense\t%s\n", prob.Sense)
			fmt.Fprintf(w, "columns\t%d\t(%d lifted)\n", prob.NumCols(), prob.NumLifted)
			fmt.Fprintf(w, "rows\t%d\n", prob.NumRows())
			fmt.Fprintf(w, "nonzeros\t%d\n", prob.Matrix.NNZ())
			fmt.Fprintf(w, "integers\t%d\n", len(prob.Integers))
			fmt.Fprintf(w, "cones\t%d\n", prob.NumCones())
			if showCones {
				for i, k := range prob.Cones() {
					fmt.Fprintf(w, "  %d\t%s\t%v\n", i, k.Type, k.Members)
				}
			}
			fmt.Fprintf(w, "warnings\t%d\n", len(prob.Warnings))
			for _, wr := range prob.Warnings {
				fmt.Fprintf(w, "  %s\n", wr)
			}

			return w.Flush()
		},
	}
	c.Flags().BoolVar(&showCones, "cones", false, "list every cone record")

	return c
}
