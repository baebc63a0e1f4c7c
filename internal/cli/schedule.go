package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/disco/cutsched"
)

func scheduleCmd(a *app) *cobra.Command {
	var all bool

	c := &cobra.Command{
		Use:   "schedule",
		Short: "Resolve and print the cut schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.params()
			if err != nil {
				return err
			}
			s, err := cutsched.Resolve(p.CutConfig(), cutsched.WithLogger(a.log))
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "FAMILY\tKIND\tSTRATEGY\tFREQ")
			names := cutsched.FamilyNames()
			for _, name := range names {
				e, _ := s.Entry(name)
				if !all && !e.Registered() {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", e.Family, e.Kind, e.Strategy, e.Freq)
			}
			strategy, freq := s.Global()
			fmt.Fprintf(w, "global\t\t%s\t%d\n", strategy, freq)
			for _, wr := range s.Warnings() {
				a.metrics.Warning(string(wr.Kind))
				fmt.Fprintf(w, "warning\t%s\n", wr)
			}

			return w.Flush()
		},
	}
	c.Flags().BoolVar(&all, "all", false, "include families that are not registered")

	return c
}
