package crystal

import "flakemaker/internal/core"

// branch is one arena entry: a directed line segment of the crystal.
// Geometry is fixed at creation except for length and thickness, which only
// change while the branch is alive. Children stay in the arena after the
// parent dies and keep growing on their own.
type branch struct {
	parent int // arena index, -1 for roots
	depth  int

	origin core.Point
	angle  float64 // radians, fixed at creation

	length     float64
	thickness  float64
	age        float64 // remaining growth potential; 0 means frozen
	sinceSpawn float64 // length grown past the most recent spawn point
	side       float64 // +1 or -1, side of the next child offset

	children []int // arena indices in creation order
}

func (b *branch) alive() bool { return b.age > 0 }

// tip returns the current outer endpoint of the branch.
func (b *branch) tip() core.Point {
	return core.PointOnRay(b.origin, b.angle, b.length)
}
