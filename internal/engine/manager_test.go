package engine

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buschmd967/traveling-salesman/internal/model"
)

func testSettings() model.SearchSettings {
	s := model.DefaultSettings()
	s.Seed = 42
	return s
}

func newTestManager(t *testing.T, n int) *PointManager {
	t.Helper()
	m := NewPointManager(testSettings())
	for i := 0; i < n; i++ {
		_, err := m.AddRandomPoint()
		require.NoError(t, err)
	}
	return m
}

func TestNewPointManager_StartsEmpty(t *testing.T) {
	m := NewPointManager(testSettings())
	snap := m.Snapshot()

	assert.Empty(t, snap.Points)
	assert.Empty(t, snap.Best)
	assert.Empty(t, snap.Saved)
	assert.Equal(t, model.Unscored, snap.Score)
	assert.Equal(t, model.Unscored, snap.SavedScore)
}

func TestAddRandomPoint_UniqueAndInRange(t *testing.T) {
	m := newTestManager(t, 200)
	points := m.Points()
	require.Len(t, points, 200)

	seen := make(map[model.Point]bool)
	for _, p := range points {
		assert.False(t, seen[p], "duplicate point %v", p)
		seen[p] = true
		assert.LessOrEqual(t, p.X, float32(10))
		assert.GreaterOrEqual(t, p.X, float32(-10))
		assert.LessOrEqual(t, p.Y, float32(10))
		assert.GreaterOrEqual(t, p.Y, float32(-10))
	}
}

func TestAddRandomPoint_Exhausted(t *testing.T) {
	s := testSettings()
	s.Radius = 0
	s.MaxPlacementAttempts = 50
	m := NewPointManager(s)

	p, err := m.AddRandomPoint()
	require.NoError(t, err)
	assert.Equal(t, model.Origin, p)

	_, err = m.AddRandomPoint()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPlacementExhausted))
	assert.Len(t, m.Points(), 1)
}

func TestAddPoint_RejectsDuplicates(t *testing.T) {
	m := NewPointManager(testSettings())
	assert.True(t, m.AddPoint(model.NewPoint(1, 2)))
	assert.False(t, m.AddPoint(model.NewPoint(1, 2)))
	assert.True(t, m.AddPoint(model.NewPoint(2, 1)))
	assert.Len(t, m.Points(), 2)
}

func TestAddPoints_SkipsDuplicates(t *testing.T) {
	m := NewPointManager(testSettings())
	added := m.AddPoints([]model.Point{
		model.NewPoint(0, 0),
		model.NewPoint(1, 1),
		model.NewPoint(0, 0),
		model.NewPoint(2, 2),
	})
	assert.Equal(t, 3, added)
	assert.Equal(t, 0, m.AddPoints([]model.Point{model.NewPoint(1, 1)}))
}

func TestMutationsResetTours(t *testing.T) {
	mutations := map[string]func(m *PointManager){
		"add random":  func(m *PointManager) { _, _ = m.AddRandomPoint() },
		"add point":   func(m *PointManager) { m.AddPoint(model.NewPoint(50, 50)) },
		"add points":  func(m *PointManager) { m.AddPoints([]model.Point{model.NewPoint(50, 50)}) },
		"remove last": func(m *PointManager) { m.RemoveLastPoint() },
		"clear":       func(m *PointManager) { m.ClearPoints() },
		"reset paths": func(m *PointManager) { m.ResetPaths() },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			m := newTestManager(t, 8)
			require.True(t, m.RandomPathStep())
			m.SaveCurrentPath()
			saved := m.Snapshot()

			mutate(m)

			snap := m.Snapshot()
			assert.Empty(t, snap.Best)
			assert.Empty(t, snap.Current)
			assert.Equal(t, model.Unscored, snap.Score)
			// The checkpoint survives every edit.
			assert.Equal(t, saved.Saved, snap.Saved)
			assert.Equal(t, saved.SavedScore, snap.SavedScore)
		})
	}
}

func TestRemoveLastPoint(t *testing.T) {
	m := NewPointManager(testSettings())
	assert.False(t, m.RemoveLastPoint())

	m.AddPoint(model.NewPoint(1, 1))
	m.AddPoint(model.NewPoint(2, 2))
	assert.True(t, m.RemoveLastPoint())
	assert.Equal(t, []model.Point{model.NewPoint(1, 1)}, m.Points())
}

func TestRemoveLastPoint_EmptyKeepsTours(t *testing.T) {
	m := NewPointManager(testSettings())
	m.SetRadialPath()
	assert.False(t, m.RemoveLastPoint())
	assert.Equal(t, model.Unscored, m.BestScore())
}

func TestReplacePoints(t *testing.T) {
	m := newTestManager(t, 4)
	m.SetRadialPath()
	require.NotEqual(t, model.Unscored, m.BestScore())

	n := m.ReplacePoints([]model.Point{
		model.NewPoint(1, 1),
		model.NewPoint(2, 2),
		model.NewPoint(1, 1),
	})
	assert.Equal(t, 2, n)
	assert.Equal(t, []model.Point{model.NewPoint(1, 1), model.NewPoint(2, 2)}, m.Points())
	assert.Equal(t, model.Unscored, m.BestScore())

	assert.Equal(t, 0, m.ReplacePoints(nil))
	assert.Empty(t, m.Points())
}

func TestRestore(t *testing.T) {
	src := newTestManager(t, 8)
	src.SetRadialPath()
	src.SaveCurrentPath()
	src.RandomPathStep()
	want := src.Snapshot()

	m := newTestManager(t, 3)
	n := m.Restore(want)
	assert.Equal(t, 8, n)

	snap := m.Snapshot()
	assert.Equal(t, want.Points, snap.Points)
	assert.Equal(t, want.Best, snap.Best)
	assert.InDelta(t, want.Score, snap.Score, 1e-4)
	assert.Equal(t, want.Saved, snap.Saved)
	assert.Equal(t, want.Checkpoint, snap.Checkpoint)
	assert.Empty(t, snap.Current)
	assert.Equal(t, uint64(0), snap.Steps)
}

func TestRestore_DropsToursMissingPoints(t *testing.T) {
	a, b, c := model.NewPoint(0, 0), model.NewPoint(3, 0), model.NewPoint(0, 4)
	m := NewPointManager(testSettings())

	n := m.Restore(model.Snapshot{
		Points:     []model.Point{a, b, c, a},
		Best:       model.Tour{a, b},
		Saved:      model.Tour{c, b, a},
		Checkpoint: model.Checkpoint{ID: "abcd1234"},
	})
	assert.Equal(t, 3, n)

	snap := m.Snapshot()
	assert.Empty(t, snap.Best)
	assert.Equal(t, model.Unscored, snap.Score)
	assert.Equal(t, model.Tour{c, b, a}, snap.Saved)
	assert.InDelta(t, 12.0, snap.SavedScore, 1e-5)
	assert.Equal(t, "abcd1234", snap.Checkpoint.ID)
}

func TestSaveCurrentPath(t *testing.T) {
	m := newTestManager(t, 10)
	m.RandomPathStep()

	cp := m.SaveCurrentPath()
	assert.Len(t, cp.ID, 8)
	assert.False(t, cp.SavedAt.IsZero())

	first := m.Snapshot()
	assert.Equal(t, first.Best, first.Saved)
	assert.Equal(t, first.Score, first.SavedScore)

	m.SaveCurrentPath()
	second := m.Snapshot()
	assert.Equal(t, first.Saved, second.Saved)
	assert.Equal(t, first.SavedScore, second.SavedScore)

	// The saved tour is a copy, not an alias of best.
	m.ResetPaths()
	assert.Equal(t, first.Saved, m.Snapshot().Saved)
}

func TestSaveCurrentPath_WithoutBest(t *testing.T) {
	m := NewPointManager(testSettings())
	m.SaveCurrentPath()
	snap := m.Snapshot()
	assert.Empty(t, snap.Saved)
	assert.Equal(t, model.Unscored, snap.SavedScore)
}

func TestResetSavedPath(t *testing.T) {
	m := newTestManager(t, 5)
	m.RandomPathStep()
	m.SaveCurrentPath()
	m.ResetSavedPath()

	snap := m.Snapshot()
	assert.Empty(t, snap.Saved)
	assert.Equal(t, model.Unscored, snap.SavedScore)
	assert.Empty(t, snap.Checkpoint.ID)
	assert.NotEmpty(t, snap.Best)
}

func TestSnapshot_IsIndependentCopy(t *testing.T) {
	m := newTestManager(t, 5)
	m.RandomPathStep()

	snap := m.Snapshot()
	snap.Points[0] = model.NewPoint(99, 99)
	snap.Best[0] = model.NewPoint(99, 99)

	again := m.Snapshot()
	assert.NotEqual(t, model.NewPoint(99, 99), again.Points[0])
	assert.NotEqual(t, model.NewPoint(99, 99), again.Best[0])
}

func TestSetSettings_Normalizes(t *testing.T) {
	m := NewPointManager(testSettings())
	s := testSettings()
	s.SwapCount = 42
	s.Radius = 3
	m.SetSettings(s)

	got := m.Settings()
	assert.Equal(t, model.MaxSwapCount, got.SwapCount)
	assert.Equal(t, float32(3), got.Radius)
}

func TestConcurrentCommandsAndSnapshots(t *testing.T) {
	m := newTestManager(t, 20)
	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			m.Step(model.ModeRandomSegmentReversal, 2)
			m.Step(model.ModeRandomRestart, 0)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_, _ = m.AddRandomPoint()
			m.RemoveLastPoint()
			m.SaveCurrentPath()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			snap := m.Snapshot()
			// Tours and scores always come from the same state.
			if len(snap.Best) > 0 {
				assert.InDelta(t, snap.Best.Score(), snap.Score, 1e-3)
				assert.True(t, model.SameMultiset(snap.Best, snap.Points))
			}
			if len(snap.Current) > 0 {
				assert.InDelta(t, snap.Current.Score(), snap.CurrentScore, 1e-3)
			}
		}
	}()
	wg.Wait()
}
