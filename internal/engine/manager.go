package engine

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/buschmd967/traveling-salesman/internal/model"
)

// PointManager owns the point set and every tour derived from it.
// All methods are safe for concurrent use; each one holds the lock for a
// single command or a single search step.
type PointManager struct {
	mu       sync.RWMutex
	settings model.SearchSettings
	rng      *rand.Rand

	points []model.Point

	current      model.Tour
	currentScore float32

	best  model.Tour
	score float32

	saved      model.Tour
	savedScore float32
	checkpoint model.Checkpoint

	steps    uint64
	accepted uint64
}

func NewPointManager(settings model.SearchSettings) *PointManager {
	settings = settings.Normalized()
	return &PointManager{
		settings:     settings,
		rng:          newRNG(settings.Seed),
		currentScore: model.Unscored,
		score:        model.Unscored,
		savedScore:   model.Unscored,
	}
}

// newRNG returns a seeded source. A zero seed picks a time-based one.
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Settings returns the active settings.
func (m *PointManager) Settings() model.SearchSettings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings
}

// SetSettings replaces the settings. A changed non-zero seed reseeds the RNG.
func (m *PointManager) SetSettings(s model.SearchSettings) {
	s = s.Normalized()
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.Seed != 0 && s.Seed != m.settings.Seed {
		m.rng = newRNG(s.Seed)
	}
	m.settings = s
}

// AddRandomPoint places a new point drawn uniformly from the square of
// half-width Radius, retrying until the coordinate is not already taken.
func (m *PointManager) AddRandomPoint() (model.Point, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	attempts := m.settings.MaxPlacementAttempts
	for i := 0; i < attempts; i++ {
		p := model.RandomPoint(m.rng, m.settings.Radius)
		if model.IndexOf(m.points, p) < 0 {
			m.points = append(m.points, p)
			m.resetPaths()
			return p, nil
		}
	}
	return model.Point{}, fmt.Errorf("failed to place point after %d attempts: %w", attempts, ErrPlacementExhausted)
}

// AddPoint appends p unless it is already present.
func (m *PointManager) AddPoint(p model.Point) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if model.IndexOf(m.points, p) >= 0 {
		return false
	}
	m.points = append(m.points, p)
	m.resetPaths()
	return true
}

// AddPoints appends every point not already present and returns how many
// were added. Tours are reset once if anything changed.
func (m *PointManager) AddPoints(points []model.Point) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	added := 0
	for _, p := range points {
		if model.IndexOf(m.points, p) >= 0 {
			continue
		}
		m.points = append(m.points, p)
		added++
	}
	if added > 0 {
		m.resetPaths()
	}
	return added
}

// RemoveLastPoint drops the most recently added point. On an empty set it
// does nothing and returns false.
func (m *PointManager) RemoveLastPoint() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.points) == 0 {
		return false
	}
	m.points = m.points[:len(m.points)-1]
	m.resetPaths()
	return true
}

// ClearPoints empties the point set.
func (m *PointManager) ClearPoints() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.points = nil
	m.resetPaths()
}

// ReplacePoints swaps the point set for points, dropping duplicates, and
// resets the tours. It returns the number of points kept.
func (m *PointManager) ReplacePoints(points []model.Point) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.points = m.points[:0:0]
	for _, p := range points {
		if model.IndexOf(m.points, p) < 0 {
			m.points = append(m.points, p)
		}
	}
	m.resetPaths()
	return len(m.points)
}

// Restore loads the points, best tour and checkpoint of snap. Tours that do
// not visit exactly the restored points are dropped. Scores are recomputed
// and the step counters start from zero. It returns the number of points kept.
func (m *PointManager) Restore(snap model.Snapshot) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.points = m.points[:0:0]
	for _, p := range snap.Points {
		if model.IndexOf(m.points, p) < 0 {
			m.points = append(m.points, p)
		}
	}
	m.resetPaths()
	if len(snap.Best) > 0 && model.SameMultiset(snap.Best, m.points) {
		m.best = snap.Best.Clone()
		m.score = m.best.Score()
	}

	m.saved = nil
	m.savedScore = model.Unscored
	m.checkpoint = model.Checkpoint{}
	if len(snap.Saved) > 0 && model.SameMultiset(snap.Saved, m.points) {
		m.saved = snap.Saved.Clone()
		m.savedScore = m.saved.Score()
		m.checkpoint = snap.Checkpoint
	}
	return len(m.points)
}

// ResetPaths discards the current and best tours. The checkpoint is kept.
func (m *PointManager) ResetPaths() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetPaths()
}

func (m *PointManager) resetPaths() {
	m.current = nil
	m.currentScore = model.Unscored
	m.best = nil
	m.score = model.Unscored
	m.steps = 0
	m.accepted = 0
}

// ClearCurrent discards the candidate shown as the current tour.
func (m *PointManager) ClearCurrent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
	m.currentScore = model.Unscored
}

// SaveCurrentPath copies the best tour into the checkpoint slot.
func (m *PointManager) SaveCurrentPath() model.Checkpoint {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = m.best.Clone()
	m.savedScore = m.score
	m.checkpoint = model.Checkpoint{
		ID:      uuid.New().String()[:8],
		SavedAt: time.Now(),
	}
	return m.checkpoint
}

// ResetSavedPath discards the checkpoint.
func (m *PointManager) ResetSavedPath() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = nil
	m.savedScore = model.Unscored
	m.checkpoint = model.Checkpoint{}
}

// Points returns a copy of the point set in insertion order.
func (m *PointManager) Points() []model.Point {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return model.Tour(m.points).Clone()
}

// BestScore returns the score of the best tour, or model.Unscored.
func (m *PointManager) BestScore() float32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.score
}

// Snapshot copies the whole search state under one read lock.
func (m *PointManager) Snapshot() model.Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return model.Snapshot{
		Points:       model.Tour(m.points).Clone(),
		Current:      m.current.Clone(),
		CurrentScore: m.currentScore,
		Best:         m.best.Clone(),
		Score:        m.score,
		Saved:        m.saved.Clone(),
		SavedScore:   m.savedScore,
		Checkpoint:   m.checkpoint,
		Steps:        m.steps,
		Accepted:     m.accepted,
	}
}
