package engine

import (
	"math/rand"

	"github.com/buschmd967/traveling-salesman/internal/model"
)

// Step generates one candidate using the strategy of mode. It reports
// whether a candidate was produced; Idle never produces one.
func (m *PointManager) Step(mode model.RunMode, swapCount int) bool {
	switch mode {
	case model.ModeRandomRestart:
		return m.RandomPathStep()
	case model.ModeRandomPointSwap:
		return m.RandomPointSwapStep(swapCount)
	case model.ModeRandomSegmentReversal:
		return m.RandomPathSwapStep(swapCount)
	default:
		return false
	}
}

// RandomPathStep evaluates a uniformly shuffled ordering of all points.
func (m *PointManager) RandomPathStep() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.points) == 0 {
		return false
	}
	candidate := model.Tour(m.points).Clone()
	shuffle(m.rng, candidate)
	m.accept(candidate)
	return true
}

// RandomPointSwapStep relocates n randomly chosen points of the best tour.
func (m *PointManager) RandomPointSwapStep(n int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.best) == 0 {
		return false
	}
	candidate := m.best.Clone()
	size := len(candidate)
	for k := 0; k < n; k++ {
		i := m.rng.Intn(size)
		j := m.rng.Intn(size)
		candidate = relocate(candidate, i, j)
	}
	m.accept(candidate)
	return true
}

// RandomPathSwapStep reverses n random segments of the best tour.
func (m *PointManager) RandomPathSwapStep(n int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.best) == 0 {
		return false
	}
	candidate := m.best.Clone()
	size := len(candidate)
	if size >= 2 {
		for k := 0; k < n; k++ {
			i := m.rng.Intn(size - 1)
			j := i + m.rng.Intn(size-i)
			reverseSegment(candidate, i, j)
		}
	}
	m.accept(candidate)
	return true
}

// accept makes candidate the current tour and promotes it to best when it
// is no longer than the best so far. Callers hold the write lock.
func (m *PointManager) accept(candidate model.Tour) {
	s := candidate.Score()
	m.current = candidate
	m.currentScore = s
	m.steps++
	if s <= m.score {
		m.best = candidate.Clone()
		m.score = s
		m.accepted++
	}
}

// shuffle permutes t in place (Fisher-Yates).
func shuffle(rng *rand.Rand, t model.Tour) {
	for i := len(t) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		t[i], t[j] = t[j], t[i]
	}
}

// relocate removes the element at i and reinserts it at j of the shortened
// tour. j == len(t)-1 appends it.
func relocate(t model.Tour, i, j int) model.Tour {
	p := t[i]
	t = append(t[:i], t[i+1:]...)
	t = append(t, model.Point{})
	copy(t[j+1:], t[j:])
	t[j] = p
	return t
}

// reverseSegment reverses t[i:j] in place.
func reverseSegment(t model.Tour, i, j int) {
	for j--; i < j; i, j = i+1, j-1 {
		t[i], t[j] = t[j], t[i]
	}
}
