package core

import "math"

// Point is a position on the logical canvas. Y grows downward, matching
// screen coordinates.
type Point struct {
	X float64
	Y float64
}

// Segment is one drawable line of a crystal. Intensity is an age-derived
// value in [0, 1]: 1 for a branch with full growth potential left, 0 for a
// frozen one.
type Segment struct {
	Start     Point
	End       Point
	Thickness float64
	Intensity float64
}

// PointOnRay returns the point at distance d from origin along the given
// angle (radians). Angle 0 points right, π/2 points up on screen.
func PointOnRay(origin Point, angle, d float64) Point {
	return Point{
		X: origin.X + d*math.Cos(angle),
		Y: origin.Y - d*math.Sin(angle),
	}
}

// Lerp maps value from the range [fromMin, fromMax] to [toMin, toMax]
// linearly, without clamping.
func Lerp(value, fromMin, fromMax, toMin, toMax float64) float64 {
	return toMin + (value-fromMin)*(toMax-toMin)/(fromMax-fromMin)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SegmentsIntersect reports whether the open segments p1-p2 and q1-q2 cross.
// Touching at a shared endpoint does not count, so siblings spawned from the
// same point on a parent are not flagged.
func SegmentsIntersect(p1, p2, q1, q2 Point) bool {
	if p1 == q1 || p1 == q2 || p2 == q1 || p2 == q2 {
		return false
	}
	d1 := cross(q1, q2, p1)
	d2 := cross(q1, q2, p2)
	d3 := cross(p1, p2, q1)
	d4 := cross(p1, p2, q2)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// cross returns the z component of (b-a) × (c-a).
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
