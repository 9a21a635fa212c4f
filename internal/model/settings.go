package model

import (
	"math"
	"time"
)

// Swap count bounds for the point-swap and segment-reversal strategies.
const (
	MinSwapCount = 0
	MaxSwapCount = 5
)

// SearchSettings holds the tunables of the point set and search engine.
type SearchSettings struct {
	// Point placement
	Radius               float32 `json:"radius"`                 // Half-width of the square random points are drawn from
	MaxPlacementAttempts int     `json:"max_placement_attempts"` // Rejection-sampling cap for a unique random point

	// Perturbation strategies
	SwapCount int `json:"swap_count"` // Moves applied per step, 0-5

	// Radial nearest-insertion construction
	RadialMargin float32 `json:"radial_margin"` // Added to Radius for the starting sweep radius
	RadialStep   float32 `json:"radial_step"`   // Sweep radius decrement per iteration

	// Run controller
	RedrawInterval time.Duration `json:"redraw_interval"` // Minimum time between redraw requests

	// Seed for the search RNG; 0 picks a time-based seed.
	Seed int64 `json:"seed"`
}

func DefaultSettings() SearchSettings {
	return SearchSettings{
		Radius:               10.0,
		MaxPlacementAttempts: 10000,
		SwapCount:            1,
		RadialMargin:         1.0,
		RadialStep:           0.1,
		RedrawInterval:       time.Millisecond,
		Seed:                 0,
	}
}

// ClampSwapCount limits n to [MinSwapCount, MaxSwapCount].
func ClampSwapCount(n int) int {
	if n < MinSwapCount {
		return MinSwapCount
	}
	if n > MaxSwapCount {
		return MaxSwapCount
	}
	return n
}

// Normalized returns a copy with out-of-range values replaced by defaults.
func (s SearchSettings) Normalized() SearchSettings {
	d := DefaultSettings()
	if s.Radius < 0 || !finite(s.Radius) {
		s.Radius = d.Radius
	}
	if s.MaxPlacementAttempts <= 0 {
		s.MaxPlacementAttempts = d.MaxPlacementAttempts
	}
	s.SwapCount = ClampSwapCount(s.SwapCount)
	if s.RadialMargin < 0 || !finite(s.RadialMargin) {
		s.RadialMargin = d.RadialMargin
	}
	if s.RadialStep <= 0 || !finite(s.RadialStep) {
		s.RadialStep = d.RadialStep
	}
	if s.RedrawInterval <= 0 {
		s.RedrawInterval = d.RedrawInterval
	}
	return s
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
