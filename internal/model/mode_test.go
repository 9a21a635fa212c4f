package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRunMode(t *testing.T) {
	tests := []struct {
		input string
		want  RunMode
	}{
		{"idle", ModeIdle},
		{"", ModeIdle},
		{"Random Restart", ModeRandomRestart},
		{"shuffle", ModeRandomRestart},
		{"point-swap", ModeRandomPointSwap},
		{" SWAP ", ModeRandomPointSwap},
		{"segment-reversal", ModeRandomSegmentReversal},
		{"2-opt", ModeRandomSegmentReversal},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRunMode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseRunMode("simulated-annealing")
	assert.Error(t, err)
}

func TestRunModeRoundTripsThroughKey(t *testing.T) {
	for _, m := range RunModes {
		got, err := ParseRunMode(m.Key())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}

func TestRunModeSearching(t *testing.T) {
	assert.False(t, ModeIdle.Searching())
	assert.True(t, ModeRandomRestart.Searching())
	assert.True(t, ModeRandomPointSwap.Searching())
	assert.True(t, ModeRandomSegmentReversal.Searching())
	assert.Equal(t, "Idle", RunMode(99).String())
}

func TestClampSwapCount(t *testing.T) {
	assert.Equal(t, 0, ClampSwapCount(-3))
	assert.Equal(t, 3, ClampSwapCount(3))
	assert.Equal(t, 5, ClampSwapCount(9))
}

func TestSnapshotAcceptanceRate(t *testing.T) {
	assert.Equal(t, 0.0, Snapshot{}.AcceptanceRate())
	assert.InDelta(t, 0.25, Snapshot{Steps: 8, Accepted: 2}.AcceptanceRate(), 1e-9)
	assert.False(t, Snapshot{}.HasBest())
	assert.True(t, Snapshot{Saved: Tour{Origin}}.HasSaved())
}

func TestGetPlotterProfile(t *testing.T) {
	assert.Equal(t, "Grbl", GetPlotterProfile("Grbl").Name)
	assert.Equal(t, "Generic", GetPlotterProfile("does not exist").Name)
	assert.Len(t, GetPlotterProfileNames(), len(PlotterProfiles))
}

func TestRegisterPlotterProfile(t *testing.T) {
	saved := append([]PlotterProfile(nil), PlotterProfiles...)
	t.Cleanup(func() { PlotterProfiles = saved })

	custom := PlotterProfile{Name: "AxiDraw", PenUp: "M5", PenDown: "M3", IsBuiltIn: true}
	assert.True(t, RegisterPlotterProfile(custom))
	got := GetPlotterProfile("AxiDraw")
	assert.Equal(t, "M3", got.PenDown)
	assert.False(t, got.IsBuiltIn)

	custom.PenDown = "M3 S100"
	assert.True(t, RegisterPlotterProfile(custom))
	assert.Equal(t, "M3 S100", GetPlotterProfile("AxiDraw").PenDown)
	assert.Len(t, PlotterProfiles, len(saved)+1)

	assert.False(t, RegisterPlotterProfile(PlotterProfile{Name: "Grbl"}))
	assert.True(t, GetPlotterProfile("Grbl").IsBuiltIn)
	assert.Equal(t, "Generic", GetPlotterProfile("missing").Name)
}
