package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRadialCmd(opts *options, log *logrus.Logger) *cobra.Command {
	var showOrder bool

	cmd := &cobra.Command{
		Use:   "radial",
		Short: "Build the radial nearest-insertion tour",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := opts.newManager(log)
			if err != nil {
				return err
			}
			score := m.SetRadialPath()
			snap := m.Snapshot()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "points=%d radial=%s\n", len(snap.Points), formatScore(score))
			if showOrder {
				for i, p := range snap.Best {
					fmt.Fprintf(out, "%d\t%.4f\t%.4f\n", i+1, p.X, p.Y)
				}
			}
			return opts.writeOutput(snap, log)
		},
	}

	cmd.Flags().BoolVar(&showOrder, "order", false, "print the tour order")
	return cmd
}
