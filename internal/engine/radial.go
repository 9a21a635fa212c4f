package engine

import (
	"math"

	"github.com/buschmd967/traveling-salesman/internal/model"
)

// maxRadialPasses bounds the sweep. A step too small for the start radius
// is widened to cover it in this many passes.
const maxRadialPasses = 1 << 16

// SetRadialPath builds a tour by sweeping a circle inward from just outside
// the placement square. Points uncovered by the sweep are inserted after
// their nearest tour member. The result becomes the best tour and its score
// is returned. An empty point set leaves the tours untouched.
func (m *PointManager) SetRadialPath() float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.points) == 0 {
		return m.score
	}
	start := m.settings.Radius + m.settings.RadialMargin
	tour := radialTour(m.points, start, m.settings.RadialStep)
	m.best = tour
	m.score = tour.Score()
	return m.score
}

// radialTour is the nearest-insertion construction used by SetRadialPath.
// The sweep radius falls by step each pass and the final pass runs at
// exactly zero so that every point is taken.
func radialTour(points []model.Point, start, step float32) model.Tour {
	tour := make(model.Tour, 0, len(points))
	taken := make([]bool, len(points))

	s, d := float64(start), float64(step)
	if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
		s = 0
	}
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		d = float64(model.DefaultSettings().RadialStep)
	}
	passes := math.Ceil(s / d)
	if passes > maxRadialPasses {
		passes = maxRadialPasses
		d = s / passes
	}

	last := int(passes)
	for k := 0; k <= last; k++ {
		r := float32(s - float64(k)*d)
		if r < 0 || k == last {
			r = 0
		}
		for idx, p := range points {
			if taken[idx] || p.Norm() < r {
				continue
			}
			taken[idx] = true
			tour = insertAfterNearest(tour, p)
		}
	}
	return tour
}

// insertAfterNearest places p directly after the closest point of t.
// Ties go to the earliest position.
func insertAfterNearest(t model.Tour, p model.Point) model.Tour {
	if len(t) == 0 {
		return append(t, p)
	}
	nearest := 0
	nearestDist := model.Distance(t[0], p)
	for i := 1; i < len(t); i++ {
		if d := model.Distance(t[i], p); d < nearestDist {
			nearest = i
			nearestDist = d
		}
	}
	t = append(t, model.Point{})
	copy(t[nearest+2:], t[nearest+1:])
	t[nearest+1] = p
	return t
}
