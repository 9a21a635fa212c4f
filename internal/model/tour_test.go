package model

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(NewPoint(0, 0), NewPoint(3, 4)), 1e-6)
	assert.InDelta(t, 5.0, NewPoint(3, 4).Norm(), 1e-6)
	assert.Equal(t, float32(0), Distance(NewPoint(1, 1), NewPoint(1, 1)))
}

func TestRandomPoint_StaysInSquare(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		p := RandomPoint(rng, 10)
		assert.GreaterOrEqual(t, p.X, float32(-10))
		assert.Less(t, p.X, float32(10))
		assert.GreaterOrEqual(t, p.Y, float32(-10))
		assert.Less(t, p.Y, float32(10))
	}
}

func TestRandomPoint_ZeroRadius(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, Origin, RandomPoint(rng, 0))
}

func TestScore_ClosedCycle(t *testing.T) {
	square := Tour{NewPoint(0, 0), NewPoint(0, 1), NewPoint(1, 1), NewPoint(1, 0)}
	assert.InDelta(t, 4.0, square.Score(), 1e-6)

	line := Tour{NewPoint(0, 0), NewPoint(5, 0), NewPoint(-5, 0)}
	assert.InDelta(t, 20.0, line.Score(), 1e-5)
}

func TestScore_DegenerateTours(t *testing.T) {
	assert.Equal(t, float32(0), Score(nil))
	assert.Equal(t, float32(0), Score([]Point{NewPoint(3, 4)}))

	// Two points travel there and back.
	assert.InDelta(t, 10.0, Score([]Point{NewPoint(0, 0), NewPoint(3, 4)}), 1e-6)
}

func TestScore_RotationInvariant(t *testing.T) {
	tour := Tour{NewPoint(0, 0), NewPoint(2, 1), NewPoint(4, 5), NewPoint(-1, 3)}
	rotated := Tour{tour[2], tour[3], tour[0], tour[1]}
	reversed := Tour{tour[3], tour[2], tour[1], tour[0]}

	assert.InDelta(t, tour.Score(), rotated.Score(), 1e-5)
	assert.InDelta(t, tour.Score(), reversed.Score(), 1e-5)
}

func TestUnscored(t *testing.T) {
	assert.True(t, math.IsInf(float64(Unscored), 1))
	assert.Less(t, Tour{NewPoint(0, 0), NewPoint(1e6, 1e6)}.Score(), Unscored)
}

func TestTourClone(t *testing.T) {
	var empty Tour
	assert.Nil(t, empty.Clone())

	orig := Tour{NewPoint(1, 2), NewPoint(3, 4)}
	cp := orig.Clone()
	require.Equal(t, orig, cp)
	cp[0] = NewPoint(9, 9)
	assert.Equal(t, NewPoint(1, 2), orig[0])
}

func TestTourEdges(t *testing.T) {
	tour := Tour{NewPoint(0, 0), NewPoint(1, 0), NewPoint(1, 1)}
	edges := tour.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, Edge{From: NewPoint(1, 1), To: NewPoint(0, 0)}, edges[2])

	var sum float32
	for _, e := range edges {
		sum += e.Length()
	}
	assert.InDelta(t, tour.Score(), sum, 1e-6)

	assert.Nil(t, Tour{NewPoint(0, 0)}.Edges())
}

func TestTourBoundingBox(t *testing.T) {
	tour := Tour{NewPoint(-2, 1), NewPoint(3, -4), NewPoint(0, 5)}
	min, max := tour.BoundingBox()
	assert.Equal(t, NewPoint(-2, -4), min)
	assert.Equal(t, NewPoint(3, 5), max)
}

func TestSameMultiset(t *testing.T) {
	a := []Point{NewPoint(0, 0), NewPoint(1, 1), NewPoint(2, 2)}
	b := []Point{NewPoint(2, 2), NewPoint(0, 0), NewPoint(1, 1)}
	assert.True(t, SameMultiset(a, b))
	assert.False(t, SameMultiset(a, b[:2]))
	assert.False(t, SameMultiset(a, []Point{NewPoint(0, 0), NewPoint(0, 0), NewPoint(1, 1)}))
	assert.True(t, Tour(a).Contains(NewPoint(1, 1)))
	assert.Equal(t, -1, IndexOf(a, NewPoint(5, 5)))
}
