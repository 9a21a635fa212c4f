package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/buschmd967/traveling-salesman/internal/engine"
	"github.com/buschmd967/traveling-salesman/internal/model"
)

func newRunCmd(opts *options, log *logrus.Logger) *cobra.Command {
	var (
		modeName string
		swaps    int
		steps    int
		duration time.Duration
		radial   bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one search strategy and report the best tour",
		Long: "Run one search strategy for a number of steps, or for a duration\n" +
			"when --duration is set, and print the best tour found.",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := model.ParseRunMode(modeName)
			if err != nil {
				return err
			}
			if !mode.Searching() {
				return fmt.Errorf("mode %q does not search", modeName)
			}

			m, err := opts.newManager(log)
			if err != nil {
				return err
			}
			if radial {
				m.SetRadialPath()
			}
			if !cmd.Flags().Changed("swaps") {
				swaps = opts.settings().SwapCount
			}

			start := time.Now()
			if duration > 0 {
				if err := runFor(cmd.Context(), m, mode, swaps, duration, log); err != nil {
					return err
				}
			} else {
				for i := 0; i < steps; i++ {
					m.Step(mode, swaps)
				}
			}

			snap := m.Snapshot()
			fmt.Fprintf(cmd.OutOrStdout(), "mode=%s points=%d steps=%d accepted=%d best=%s elapsed=%s\n",
				mode.Key(), len(snap.Points), snap.Steps, snap.Accepted,
				formatScore(snap.Score), time.Since(start).Round(time.Millisecond))
			return opts.writeOutput(snap, log)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&modeName, "mode", "m", model.ModeRandomSegmentReversal.Key(), "strategy: random-restart, point-swap or segment-reversal")
	flags.IntVarP(&swaps, "swaps", "s", 1, "moves per step, 0-5 (default from config)")
	flags.IntVar(&steps, "steps", 10000, "number of search steps")
	flags.DurationVarP(&duration, "duration", "d", 0, "search for this long through the run controller instead of a step count")
	flags.BoolVar(&radial, "radial", false, "start from the radial nearest-insertion tour")
	return cmd
}

// runFor drives the search through a Controller until d elapses.
func runFor(parent context.Context, m *engine.PointManager, mode model.RunMode, swaps int, d time.Duration, log *logrus.Logger) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()

	c := engine.NewController(m, engine.ControllerOptions{
		RedrawInterval: time.Second,
		OnRedraw: func() {
			log.WithField("best_score", m.BestScore()).Debug("progress")
		},
		Logger: log,
	})
	c.SetSwapCount(swaps)
	c.SetMode(mode)

	err := c.Run(ctx)
	c.SetMode(model.ModeIdle)
	if errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
