package crystal

import "flakemaker/internal/core"

// Segments produces one drawable record per grown branch in a stable
// depth-first order: roots in creation order, children in creation order.
// It never mutates crystal state and allocates a fresh slice, so it is safe
// to call every frame, including while growth is paused.
func (c *Crystal) Segments() []core.Segment {
	out := make([]core.Segment, 0, len(c.arena))
	stack := make([]int, 0, len(c.arena))
	for _, root := range c.roots {
		stack = append(stack[:0], root)
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			b := &c.arena[id]
			for i := len(b.children) - 1; i >= 0; i-- {
				stack = append(stack, b.children[i])
			}
			if b.length <= 0 {
				continue
			}
			out = append(out, core.Segment{
				Start:     b.origin,
				End:       b.tip(),
				Thickness: b.thickness,
				Intensity: c.intensity(b),
			})
		}
	}
	return out
}

// intensity maps remaining growth potential to a render shade: fresh
// branches are vivid, frozen ones settle at the fixed old shade.
func (c *Crystal) intensity(b *branch) float64 {
	if !b.alive() || c.cfg.Params.MaxAge <= 0 {
		return 0
	}
	return core.Clamp(b.age/c.cfg.Params.MaxAge, 0, 1)
}
