package model

import (
	"math"
	"math/rand"
)

// Point is an immutable 2D coordinate on the placement plane.
// Two points are equal only when both coordinates match exactly.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

func NewPoint(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Origin is the centre of the placement disc.
var Origin = Point{}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float32 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return float32(math.Sqrt(dx*dx + dy*dy))
}

// DistanceTo returns the Euclidean distance from p to other.
func (p Point) DistanceTo(other Point) float32 {
	return Distance(p, other)
}

// Norm returns the distance from p to the origin.
func (p Point) Norm() float32 {
	return Distance(p, Origin)
}

// RandomPoint samples x and y independently and uniformly in [-radius, radius).
func RandomPoint(rng *rand.Rand, radius float32) Point {
	return Point{
		X: (rng.Float32()*2 - 1) * radius,
		Y: (rng.Float32()*2 - 1) * radius,
	}
}
