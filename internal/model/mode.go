package model

import (
	"fmt"
	"strings"
)

// RunMode is the search strategy the run controller is repeating.
type RunMode int

const (
	ModeIdle                  RunMode = iota // No search, current path cleared
	ModeRandomRestart                        // Full random permutation every step
	ModeRandomPointSwap                      // Relocate random points of the best tour
	ModeRandomSegmentReversal                // Reverse random segments of the best tour (2-opt move)
)

// RunModes lists every mode in display order.
var RunModes = []RunMode{
	ModeIdle,
	ModeRandomRestart,
	ModeRandomPointSwap,
	ModeRandomSegmentReversal,
}

func (m RunMode) String() string {
	switch m {
	case ModeRandomRestart:
		return "Random Restart"
	case ModeRandomPointSwap:
		return "Random Point Swap"
	case ModeRandomSegmentReversal:
		return "Random Segment Reversal"
	default:
		return "Idle"
	}
}

// Key returns the short identifier used in config files and on the command line.
func (m RunMode) Key() string {
	switch m {
	case ModeRandomRestart:
		return "random-restart"
	case ModeRandomPointSwap:
		return "point-swap"
	case ModeRandomSegmentReversal:
		return "segment-reversal"
	default:
		return "idle"
	}
}

// Searching reports whether the mode generates candidates.
func (m RunMode) Searching() bool {
	return m == ModeRandomRestart || m == ModeRandomPointSwap || m == ModeRandomSegmentReversal
}

// ParseRunMode converts a key or display name to a RunMode (case-insensitive).
func ParseRunMode(s string) (RunMode, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for _, m := range RunModes {
		if normalized == m.Key() || normalized == strings.ToLower(m.String()) {
			return m, nil
		}
	}
	switch normalized {
	case "", "none", "stop":
		return ModeIdle, nil
	case "random", "shuffle":
		return ModeRandomRestart, nil
	case "swap":
		return ModeRandomPointSwap, nil
	case "reverse", "2-opt", "two-opt":
		return ModeRandomSegmentReversal, nil
	}
	return ModeIdle, fmt.Errorf("unknown run mode %q", s)
}
