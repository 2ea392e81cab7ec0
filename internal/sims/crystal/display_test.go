package crystal

import (
	"testing"

	"flakemaker/internal/core"
)

func TestSegmentsFreshCrystalEmpty(t *testing.T) {
	c := New()
	if got := c.Segments(); len(got) != 0 {
		t.Fatalf("fresh crystal produced %d segments, want none before any growth", len(got))
	}
}

func TestSegmentsOrderAndIntensity(t *testing.T) {
	c := New()
	env := core.Environment{Humidity: 50, Temperature: -12.5}
	c.Step(env)

	segs := c.Segments()
	if len(segs) != rootCount {
		t.Fatalf("got %d segments after one step, want %d", len(segs), rootCount)
	}
	for i, seg := range segs {
		root := c.arena[c.roots[i]]
		if seg.Start != root.origin {
			t.Fatalf("segment %d start %v, want root origin %v", i, seg.Start, root.origin)
		}
		if seg.End != root.tip() {
			t.Fatalf("segment %d end %v, want root tip %v", i, seg.End, root.tip())
		}
		if seg.Thickness != root.thickness {
			t.Fatalf("segment %d thickness %v, want %v", i, seg.Thickness, root.thickness)
		}
		wantIntensity := root.age / c.cfg.Params.MaxAge
		if seg.Intensity != wantIntensity {
			t.Fatalf("segment %d intensity %v, want %v", i, seg.Intensity, wantIntensity)
		}
	}
}

func TestSegmentsParentPrecedesChildren(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.ExtendRate = 40
	c := NewWithConfig(cfg)

	env := core.Environment{Humidity: 5, Temperature: -5}
	for i := 0; i < 60; i++ {
		c.Step(env)
	}
	if c.BranchCount() == rootCount {
		t.Fatal("no children spawned")
	}

	// Reconstruct the expected depth-first id order and compare starts.
	var order []int
	var walk func(id int)
	walk = func(id int) {
		order = append(order, id)
		for _, child := range c.arena[id].children {
			walk(child)
		}
	}
	for _, root := range c.roots {
		walk(root)
	}

	segs := c.Segments()
	si := 0
	for _, id := range order {
		b := c.arena[id]
		if b.length <= 0 {
			continue
		}
		if si >= len(segs) {
			t.Fatalf("ran out of segments at arena id %d", id)
		}
		if segs[si].Start != b.origin {
			t.Fatalf("segment %d start %v does not match arena id %d origin %v", si, segs[si].Start, id, b.origin)
		}
		si++
	}
	if si != len(segs) {
		t.Fatalf("traversal covered %d segments, Segments returned %d", si, len(segs))
	}
}

func TestSegmentsFrozenShade(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.MaxAge = 1
	cfg.Params.AgeDecrement = 1
	c := NewWithConfig(cfg)

	c.Step(core.Environment{Humidity: 50, Temperature: -12.5})

	for i, seg := range c.Segments() {
		if seg.Intensity != 0 {
			t.Fatalf("segment %d intensity %v, dead branches must render at the frozen shade", i, seg.Intensity)
		}
	}
}

func TestSegmentsReadOnly(t *testing.T) {
	c := New()
	c.Step(core.Environment{Humidity: 50, Temperature: -12.5})

	first := c.Segments()
	second := c.Segments()
	if len(first) != len(second) {
		t.Fatalf("repeated Segments calls differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("segment %d changed between read-only calls", i)
		}
	}
}
