package crystal

import (
	"math"
	"reflect"
	"testing"

	"flakemaker/internal/core"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRadialSeedSymmetry(t *testing.T) {
	c := New()

	if len(c.arena) != rootCount {
		t.Fatalf("fresh crystal has %d branches, want %d roots", len(c.arena), rootCount)
	}
	if c.BranchCount() != rootCount {
		t.Fatalf("BranchCount = %d, want %d", c.BranchCount(), rootCount)
	}

	first := c.arena[c.roots[0]]
	for i, id := range c.roots {
		b := c.arena[id]
		if b.parent != -1 || b.depth != 0 {
			t.Fatalf("root %d has parent %d depth %d", i, b.parent, b.depth)
		}
		if b.length != first.length || b.thickness != first.thickness || b.age != first.age {
			t.Fatalf("root %d state differs from root 0: %+v vs %+v", i, b, first)
		}
		want := math.Pi/2 + float64(i)*math.Pi/3
		if !almostEqual(b.angle, want) {
			t.Fatalf("root %d angle = %v, want %v", i, b.angle, want)
		}
		if b.origin != first.origin {
			t.Fatalf("root %d origin %v differs from %v", i, b.origin, first.origin)
		}
	}
}

// Scenario: humidity 50, temperature -12.5, one step on a fresh crystal.
// Every root extends by the same base amount and nothing spawns yet.
func TestSingleStepUniformExtension(t *testing.T) {
	c := New()
	c.Step(core.Environment{Humidity: 50, Temperature: -12.5})

	// drive = 0.7*(50/100) + 0.3*(1-warmth), warmth = 0.5 at -12.5.
	want := c.cfg.Params.ExtendRate * 0.5

	for i, id := range c.roots {
		b := c.arena[id]
		if !almostEqual(b.length, want) {
			t.Fatalf("root %d length = %v, want %v", i, b.length, want)
		}
	}
	if c.BranchCount() != rootCount {
		t.Fatalf("BranchCount = %d after one step, want %d", c.BranchCount(), rootCount)
	}
	if c.ElapsedSteps() != 1 {
		t.Fatalf("ElapsedSteps = %d, want 1", c.ElapsedSteps())
	}
}

// Scenario: humidity below the spawn threshold, stepped until the spacing
// distance is crossed. All six roots are symmetric, so all six spawn on the
// same step and the count increments by exactly the number of roots.
func TestSpawnOnSpacingCrossed(t *testing.T) {
	c := New()
	env := core.Environment{Humidity: 5, Temperature: -12.5}

	before := rootCount
	spawnStep := -1
	for i := 0; i < 200; i++ {
		c.Step(env)
		if c.BranchCount() != before {
			spawnStep = c.ElapsedSteps()
			break
		}
	}
	if spawnStep < 0 {
		t.Fatal("no spawn happened within 200 steps")
	}
	if c.BranchCount() != rootCount*2 {
		t.Fatalf("BranchCount = %d after first spawn step, want %d", c.BranchCount(), rootCount*2)
	}

	for i, id := range c.roots {
		root := c.arena[id]
		if len(root.children) != 1 {
			t.Fatalf("root %d has %d children, want 1", i, len(root.children))
		}
		child := c.arena[root.children[0]]
		wantAngle := math.Mod(root.angle+math.Pi/3+2*math.Pi, 2*math.Pi)
		if !almostEqual(child.angle, wantAngle) {
			t.Fatalf("root %d child angle = %v, want %v", i, child.angle, wantAngle)
		}
		if child.age != c.cfg.Params.MaxAge {
			t.Fatalf("root %d child age = %v, want fresh %v", i, child.age, c.cfg.Params.MaxAge)
		}
		if child.depth != 1 || child.parent != id {
			t.Fatalf("root %d child parent/depth = %d/%d", i, child.parent, child.depth)
		}

		// The child's origin must lie on the parent's segment.
		dx := child.origin.X - root.origin.X
		dy := child.origin.Y - root.origin.Y
		dist := math.Hypot(dx, dy)
		if dist > root.length+1e-9 {
			t.Fatalf("root %d child origin beyond parent tip: %v > %v", i, dist, root.length)
		}
		on := core.PointOnRay(root.origin, root.angle, dist)
		if math.Abs(on.X-child.origin.X) > 1e-9 || math.Abs(on.Y-child.origin.Y) > 1e-9 {
			t.Fatalf("root %d child origin %v not on parent ray", i, child.origin)
		}
	}
}

func TestSpawnSidesAlternate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.ExtendRate = 40
	cfg.Params.MaxAge = 1000
	cfg.Params.AgeDecrement = 0
	c := NewWithConfig(cfg)

	// Warm temperature keeps the diffusion gate below every depth.
	env := core.Environment{Humidity: 5, Temperature: -5}
	for i := 0; i < 40; i++ {
		c.Step(env)
	}

	root := c.arena[c.roots[0]]
	if len(root.children) < 2 {
		t.Fatalf("root spawned %d children, want at least 2", len(root.children))
	}
	a := c.arena[root.children[0]]
	b := c.arena[root.children[1]]
	offA := math.Remainder(a.angle-root.angle, 2*math.Pi)
	offB := math.Remainder(b.angle-root.angle, 2*math.Pi)
	if !almostEqual(offA, math.Pi/3) {
		t.Fatalf("first child offset = %v, want %v", offA, math.Pi/3)
	}
	if !almostEqual(offB, -math.Pi/3) {
		t.Fatalf("second child offset = %v, want %v", offB, -math.Pi/3)
	}
}

func TestSpawnCeiling(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.MaxBranches = 10
	cfg.Params.ExtendRate = 40
	c := NewWithConfig(cfg)

	env := core.Environment{Humidity: 5, Temperature: -5}
	for i := 0; i < 300; i++ {
		c.Step(env)
		if c.BranchCount() > cfg.Params.MaxBranches {
			t.Fatalf("BranchCount %d exceeded MaxBranches %d at step %d",
				c.BranchCount(), cfg.Params.MaxBranches, c.ElapsedSteps())
		}
	}
	if c.BranchCount() != cfg.Params.MaxBranches {
		t.Fatalf("BranchCount = %d, expected ceiling %d to be reached", c.BranchCount(), cfg.Params.MaxBranches)
	}
}

// The budget is shared across roots in a fixed order: with room for a single
// extra branch, only the first root spawns on the step where all six qualify.
func TestBranchBudgetSharedInOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.MaxBranches = rootCount + 1
	cfg.Params.ExtendRate = 40
	c := NewWithConfig(cfg)

	env := core.Environment{Humidity: 5, Temperature: -5}
	for i := 0; i < 100 && c.BranchCount() == rootCount; i++ {
		c.Step(env)
	}
	if c.BranchCount() != rootCount+1 {
		t.Fatalf("BranchCount = %d, want %d", c.BranchCount(), rootCount+1)
	}
	if got := len(c.arena[c.roots[0]].children); got != 1 {
		t.Fatalf("first root has %d children, want the single budgeted spawn", got)
	}
	for i := 1; i < rootCount; i++ {
		if got := len(c.arena[c.roots[i]].children); got != 0 {
			t.Fatalf("root %d spawned %d children past the ceiling", i, got)
		}
	}
}

// Scenario: a root's age is driven to zero. Its geometry freezes permanently
// while its already-spawned children keep growing on their own.
func TestDeadParentChildrenKeepGrowing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.ExtendRate = 40
	cfg.Params.MaxAge = 2
	cfg.Params.AgeDecrement = 0.2
	c := NewWithConfig(cfg)

	env := core.Environment{Humidity: 5, Temperature: -5}
	rootID := c.roots[0]
	for i := 0; i < 100 && c.arena[rootID].alive(); i++ {
		c.Step(env)
	}

	root := c.arena[rootID]
	if root.alive() {
		t.Fatal("root never died")
	}
	if root.age != 0 {
		t.Fatalf("dead root age = %v, want exactly 0", root.age)
	}
	if len(root.children) == 0 {
		t.Fatal("root died before spawning any children")
	}

	childID := root.children[0]
	frozenLen, frozenThick := root.length, root.thickness
	childLen := c.arena[childID].length

	for i := 0; i < 5; i++ {
		c.Step(env)
	}

	if c.arena[rootID].length != frozenLen || c.arena[rootID].thickness != frozenThick {
		t.Fatalf("dead root geometry changed: %v/%v -> %v/%v",
			frozenLen, frozenThick, c.arena[rootID].length, c.arena[rootID].thickness)
	}
	if c.arena[childID].length <= childLen {
		t.Fatalf("live child stopped growing after parent death: %v -> %v", childLen, c.arena[childID].length)
	}
}

func TestMonotonicGrowthAndAgeFloor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.ExtendRate = 30
	cfg.Params.MaxAge = 5
	cfg.Params.AgeDecrement = 0.25
	c := NewWithConfig(cfg)

	// Sweep through spawn, thicken and idle humidity bands.
	schedule := []core.Environment{
		{Humidity: 5, Temperature: -5},
		{Humidity: 45, Temperature: -7},
		{Humidity: 90, Temperature: -6},
		{Humidity: 20, Temperature: -5.5},
	}

	type snap struct {
		length, thickness, age float64
	}
	prev := map[int]snap{}

	for i := 0; i < 120; i++ {
		c.Step(schedule[i%len(schedule)])
		for id := range c.arena {
			b := c.arena[id]
			if b.age < 0 {
				t.Fatalf("branch %d age went negative: %v", id, b.age)
			}
			p, seen := prev[id]
			if seen {
				if b.length < p.length || b.thickness < p.thickness {
					t.Fatalf("branch %d shrank: %+v -> %+v", id, p, b)
				}
				if p.age == 0 && (b.length != p.length || b.thickness != p.thickness || b.age != 0) {
					t.Fatalf("dead branch %d mutated: %+v -> %+v", id, p, b)
				}
			}
			prev[id] = snap{b.length, b.thickness, b.age}
		}
	}
}

func TestThickeningBand(t *testing.T) {
	c := New()
	p := c.cfg.Params

	// Inside the thickening band, warm air thickens the trunk.
	c.Step(core.Environment{Humidity: 45, Temperature: -5})
	want := p.InitialThickness + p.ThickenRate
	if got := c.arena[c.roots[0]].thickness; !almostEqual(got, want) {
		t.Fatalf("thickness = %v after warm thickening step, want %v", got, want)
	}

	// Above the band, extension wins and thickness stays put.
	c2 := New()
	c2.Step(core.Environment{Humidity: 90, Temperature: -5})
	if got := c2.arena[c2.roots[0]].thickness; !almostEqual(got, p.InitialThickness) {
		t.Fatalf("thickness = %v at high humidity, want unchanged %v", got, p.InitialThickness)
	}

	// Below the spawn threshold, surplus goes to branching, not thickness.
	c3 := New()
	c3.Step(core.Environment{Humidity: 5, Temperature: -5})
	if got := c3.arena[c3.roots[0]].thickness; !almostEqual(got, p.InitialThickness) {
		t.Fatalf("thickness = %v in spawn band, want unchanged %v", got, p.InitialThickness)
	}
}

func TestInputClamping(t *testing.T) {
	a := New()
	b := New()

	a.Step(core.Environment{Humidity: 250, Temperature: 10})
	b.Step(core.Environment{Humidity: 100, Temperature: -5})

	if !reflect.DeepEqual(a.arena, b.arena) {
		t.Fatal("out-of-range inputs not clamped to the bounds")
	}
}

func TestColdGatesInteriorBranches(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.ExtendRate = 40
	c := NewWithConfig(cfg)

	// Spawn a generation warm, then freeze conditions cold.
	warm := core.Environment{Humidity: 5, Temperature: -5}
	for i := 0; i < 100 && c.BranchCount() == rootCount; i++ {
		c.Step(warm)
	}
	if c.BranchCount() == rootCount {
		t.Fatal("no children spawned during warm phase")
	}

	rootLen := c.arena[c.roots[0]].length
	c.Step(core.Environment{Humidity: 80, Temperature: -20})
	if c.arena[c.roots[0]].length != rootLen {
		t.Fatal("cold step still extended the interior root")
	}
}

func TestRestartIdempotence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.ExtendRate = 30
	fresh := NewWithConfig(cfg)

	grown := NewWithConfig(cfg)
	envs := []core.Environment{
		{Humidity: 5, Temperature: -5},
		{Humidity: 70, Temperature: -18},
		{Humidity: 40, Temperature: -9},
	}
	for i := 0; i < 90; i++ {
		grown.Step(envs[i%len(envs)])
	}
	grown.Reset(0)

	if !reflect.DeepEqual(grown.arena, fresh.arena) {
		t.Fatal("restart mid-growth does not match a fresh crystal")
	}
	if grown.BranchCount() != fresh.BranchCount() || grown.ElapsedSteps() != fresh.ElapsedSteps() {
		t.Fatalf("restart counters %d/%d differ from fresh %d/%d",
			grown.BranchCount(), grown.ElapsedSteps(), fresh.BranchCount(), fresh.ElapsedSteps())
	}
}

func TestSiblingCrossingPrevention(t *testing.T) {
	build := func(crossing bool) *Crystal {
		cfg := DefaultConfig()
		cfg.Params.BranchCrossing = crossing
		c := NewWithConfig(cfg)

		rootID := c.roots[0]
		c.arena[rootID].length = 10
		c.arena[rootID].sinceSpawn = cfg.Params.SpawnSpacing

		// Plant a sibling spawned earlier, angled so the next spawn probe
		// (side +1, 60° off the root) must cross it.
		sibID := len(c.arena)
		c.arena = append(c.arena, branch{
			parent: rootID,
			depth:  1,
			origin: core.PointOnRay(c.arena[rootID].origin, c.arena[rootID].angle, 5),
			angle:  2 * math.Pi / 3,
			length: 12,
		})
		c.arena[rootID].children = append(c.arena[rootID].children, sibID)
		return c
	}

	blocked := build(false)
	if blocked.spawn(blocked.roots[0]) {
		t.Fatal("spawn succeeded even though the probe crosses a sibling")
	}
	if len(blocked.arena[blocked.roots[0]].children) != 1 {
		t.Fatal("rejected spawn still attached a child")
	}
	if blocked.arena[blocked.roots[0]].sinceSpawn == 0 {
		t.Fatal("rejected spawn consumed the spacing buildup")
	}

	allowed := build(true)
	if !allowed.spawn(allowed.roots[0]) {
		t.Fatal("spawn rejected although crossing is enabled")
	}
}

// Growing with crossing disabled never produces intersecting siblings.
func TestNoSiblingCrossingsProperty(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.BranchCrossing = false
	cfg.Params.ExtendRate = 40
	cfg.Params.MaxBranches = 60
	c := NewWithConfig(cfg)

	env := core.Environment{Humidity: 5, Temperature: -5}
	for i := 0; i < 250; i++ {
		c.Step(env)
	}

	for id := range c.arena {
		kids := c.arena[id].children
		for i := 0; i < len(kids); i++ {
			for j := i + 1; j < len(kids); j++ {
				a, b := c.arena[kids[i]], c.arena[kids[j]]
				if core.SegmentsIntersect(a.origin, a.tip(), b.origin, b.tip()) {
					t.Fatalf("children %d and %d of branch %d intersect", kids[i], kids[j], id)
				}
			}
		}
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                  "300",
		"h":                  "320",
		"max_branches":       "24",
		"max_age":            "7.5",
		"spawn_spacing":      "9",
		"spawn_humidity_max": "25",
		"branch_crossing":    "false",
		"seed":               "7",
	})
	if cfg.Width != 300 || cfg.Height != 320 {
		t.Fatalf("size = %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Params.MaxBranches != 24 || cfg.Params.MaxAge != 7.5 {
		t.Fatalf("params = %+v", cfg.Params)
	}
	if cfg.Params.SpawnSpacing != 9 || cfg.Params.SpawnHumidityMax != 25 {
		t.Fatalf("spacing params = %+v", cfg.Params)
	}
	if cfg.Params.BranchCrossing {
		t.Fatal("branch_crossing override ignored")
	}
	if cfg.Seed != 7 {
		t.Fatalf("seed = %d", cfg.Seed)
	}

	// Bad values fall back to defaults.
	def := DefaultConfig()
	cfg = FromMap(map[string]string{"w": "bogus", "max_branches": "2"})
	if cfg.Width != def.Width || cfg.Params.MaxBranches != def.Params.MaxBranches {
		t.Fatalf("invalid overrides were applied: %+v", cfg)
	}
}
