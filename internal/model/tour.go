package model

import "math"

// Unscored is the score of a tour that has not been evaluated yet.
var Unscored = float32(math.Inf(1))

// Tour is an ordered sequence of points.
// The tour is implicitly closed: the last point connects back to the first.
type Tour []Point

// Score returns the total Euclidean length of the closed tour.
// Tours with zero or one point have no edges and score 0.
func Score(tour []Point) float32 {
	n := len(tour)
	if n <= 1 {
		return 0
	}
	var total float32
	for i, p := range tour {
		total += Distance(p, tour[(i+1)%n])
	}
	return total
}

// Score returns the total length of the closed tour.
func (t Tour) Score() float32 {
	return Score(t)
}

// Clone returns an independent copy of the tour. A nil tour stays nil.
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}
	cp := make(Tour, len(t))
	copy(cp, t)
	return cp
}

// Contains reports whether p is one of the tour's points.
func (t Tour) Contains(p Point) bool {
	return IndexOf(t, p) >= 0
}

// IndexOf returns the position of p in points, or -1 if absent.
func IndexOf(points []Point, p Point) int {
	for i, q := range points {
		if q == p {
			return i
		}
	}
	return -1
}

// Edge is one leg of a closed tour.
type Edge struct {
	From Point
	To   Point
}

// Length returns the Euclidean length of the edge.
func (e Edge) Length() float32 {
	return Distance(e.From, e.To)
}

// Edges lists the legs of the closed tour in order, including the closing
// edge from the last point back to the first.
func (t Tour) Edges() []Edge {
	n := len(t)
	if n <= 1 {
		return nil
	}
	edges := make([]Edge, n)
	for i := range t {
		edges[i] = Edge{From: t[i], To: t[(i+1)%n]}
	}
	return edges
}

// BoundingBox returns the min and max corners of the tour.
func (t Tour) BoundingBox() (min, max Point) {
	if len(t) == 0 {
		return Point{}, Point{}
	}
	min = t[0]
	max = t[0]
	for _, p := range t[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

// SameMultiset reports whether a and b hold the same points with the same
// multiplicities, ignoring order.
func SameMultiset(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[Point]int, len(a))
	for _, p := range a {
		counts[p]++
	}
	for _, p := range b {
		counts[p]--
		if counts[p] < 0 {
			return false
		}
	}
	return true
}
