package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/buschmd967/traveling-salesman/internal/model"
)

// StrategyScenario defines a named search strategy to compare.
type StrategyScenario struct {
	Name      string
	Mode      model.RunMode
	SwapCount int
	// RadialSeed starts the search from the radial construction instead of
	// a random tour.
	RadialSeed bool
}

// StrategyResult holds the outcome and statistics of a single scenario.
type StrategyResult struct {
	Scenario     StrategyScenario
	Best         model.Tour
	InitialScore float32
	BestScore    float32
	Steps        uint64
	Accepted     uint64
	Elapsed      time.Duration
}

// ImprovementPercent returns how much shorter the best tour is than the
// tour the search started from.
func (r StrategyResult) ImprovementPercent() float64 {
	if r.InitialScore <= 0 || math.IsInf(float64(r.InitialScore), 1) {
		return 0
	}
	return float64(r.InitialScore-r.BestScore) / float64(r.InitialScore) * 100
}

// CompareStrategies runs each scenario for the given number of steps on an
// isolated manager holding the same points and seed. Results keep scenario
// order.
func CompareStrategies(points []model.Point, settings model.SearchSettings, scenarios []StrategyScenario, steps int) []StrategyResult {
	if settings.Seed == 0 {
		settings.Seed = time.Now().UnixNano()
	}
	results := make([]StrategyResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		m := NewPointManager(settings)
		m.AddPoints(points)

		start := time.Now()
		if scenario.RadialSeed {
			m.SetRadialPath()
		} else {
			m.RandomPathStep()
		}
		initial := m.BestScore()

		for i := 0; i < steps; i++ {
			m.Step(scenario.Mode, scenario.SwapCount)
		}

		snap := m.Snapshot()

		results = append(results, StrategyResult{
			Scenario:     scenario,
			Best:         snap.Best,
			InitialScore: initial,
			BestScore:    snap.Score,
			Steps:        snap.Steps,
			Accepted:     snap.Accepted,
			Elapsed:      time.Since(start),
		})
	}

	return results
}

// DefaultScenarios builds the standard comparison set around the current
// swap count.
func DefaultScenarios(settings model.SearchSettings) []StrategyScenario {
	n := settings.SwapCount
	if n < 1 {
		n = 1
	}
	return []StrategyScenario{
		{Name: "Random Restart", Mode: model.ModeRandomRestart},
		{Name: fmt.Sprintf("Point Swap x%d", n), Mode: model.ModeRandomPointSwap, SwapCount: n},
		{Name: fmt.Sprintf("Segment Reversal x%d", n), Mode: model.ModeRandomSegmentReversal, SwapCount: n},
		{Name: fmt.Sprintf("Radial + Point Swap x%d", n), Mode: model.ModeRandomPointSwap, SwapCount: n, RadialSeed: true},
		{Name: fmt.Sprintf("Radial + Segment Reversal x%d", n), Mode: model.ModeRandomSegmentReversal, SwapCount: n, RadialSeed: true},
	}
}
