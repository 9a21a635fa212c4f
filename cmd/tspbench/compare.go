package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/buschmd967/traveling-salesman/internal/engine"
)

func newCompareCmd(opts *options, log *logrus.Logger) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every strategy on the same points and seed",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := opts.newManager(log)
			if err != nil {
				return err
			}
			settings := opts.settings()
			results := engine.CompareStrategies(m.Points(), settings, engine.DefaultScenarios(settings), steps)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "strategy\tinitial\tbest\timprovement\taccepted\telapsed\t")
			var best *engine.StrategyResult
			for i, r := range results {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.1f%%\t%d/%d\t%s\t\n",
					r.Scenario.Name, formatScore(r.InitialScore), formatScore(r.BestScore),
					r.ImprovementPercent(), r.Accepted, r.Steps, r.Elapsed.Round(time.Millisecond))
				if best == nil || r.BestScore < best.BestScore {
					best = &results[i]
				}
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if best == nil {
				return nil
			}

			// Export the winning tour.
			snap := m.Snapshot()
			snap.Best = best.Best
			snap.Score = best.BestScore
			return opts.writeOutput(snap, log)
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 5000, "search steps per strategy")
	return cmd
}
