package crystal

import (
	"math"

	"flakemaker/internal/core"
)

const rootCount = 6

// Crystal grows six radial arms of branching line segments, advancing one
// discrete growth step per Step call. All state lives in a flat branch
// arena indexed by id; branches reference parents and children by index.
type Crystal struct {
	cfg Config

	arena []branch
	roots [rootCount]int

	branchCount  int // branches ever created, roots included
	elapsedSteps int

	seed int64
}

// New returns a Crystal using the default configuration.
func New() *Crystal {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns a Crystal with six fresh, age-full root branches
// sharing the canvas center.
func NewWithConfig(cfg Config) *Crystal {
	c := &Crystal{cfg: cfg}
	c.Reset(cfg.Seed)
	return c
}

// Name returns the simulation identifier.
func (c *Crystal) Name() string { return "crystal" }

// Size reports the logical canvas dimensions.
func (c *Crystal) Size() core.Size { return core.Size{W: c.cfg.Width, H: c.cfg.Height} }

// BranchCount reports the number of branches ever created, roots included.
func (c *Crystal) BranchCount() int { return c.branchCount }

// ElapsedSteps reports how many growth steps have run since the last reset.
func (c *Crystal) ElapsedSteps() int { return c.elapsedSteps }

// Reset discards all growth and rebuilds the six roots, directions spaced
// exactly 60° apart. The engine itself uses no randomness, so any reset
// yields a state identical to a fresh construction.
func (c *Crystal) Reset(seed int64) {
	if seed == 0 {
		seed = c.cfg.Seed
	}
	c.seed = seed

	p := c.cfg.Params
	center := core.Point{X: float64(c.cfg.Width) / 2, Y: float64(c.cfg.Height) / 2}

	c.arena = c.arena[:0]
	for i := 0; i < rootCount; i++ {
		c.roots[i] = len(c.arena)
		c.arena = append(c.arena, branch{
			parent:    -1,
			origin:    center,
			angle:     math.Pi/2 + float64(i)*math.Pi/3,
			thickness: p.InitialThickness,
			age:       p.MaxAge,
			side:      1,
		})
	}
	c.branchCount = rootCount
	c.elapsedSteps = 0
}

// Step advances every live branch by one growth step under the given
// environment. Inputs are clamped defensively; the caller's control scheme
// already keeps them in range.
func (c *Crystal) Step(env core.Environment) {
	p := c.cfg.Params
	humidity := core.Clamp(env.Humidity, 0, 100)
	temp := core.Clamp(env.Temperature, TempMin, TempMax)

	budget := p.MaxBranches - c.branchCount
	if budget < 0 {
		budget = 0
	}

	// Warm air keeps water mobile enough to reach interior branches; cold
	// confines this step's humidity to the newest, deepest growth.
	gate := core.Lerp(temp, TempMax, TempMin, -1, 0.75*float64(c.branchCount-rootCount))

	spawned := 0
	stack := make([]int, 0, len(c.arena))
	for _, root := range c.roots {
		stack = append(stack[:0], root)
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			// Children spawned during this step are excluded: they are
			// appended to the parent after this snapshot is taken.
			kids := c.arena[id].children
			for i := len(kids) - 1; i >= 0; i-- {
				stack = append(stack, kids[i])
			}

			b := &c.arena[id]
			if !b.alive() || float64(b.depth) < gate {
				continue
			}
			spawned += c.stepBranch(id, humidity, temp, &budget)
		}
	}

	c.branchCount += spawned
	c.elapsedSteps++
}

// stepBranch extends, thickens, ages and possibly spawns from the branch at
// id. It returns the number of children created (0 or 1).
func (c *Crystal) stepBranch(id int, humidity, temp float64, budget *int) int {
	p := c.cfg.Params

	// 0 at the coldest bound, 1 at the warmest.
	warmth := (temp - TempMin) / (TempMax - TempMin)

	// Humidity dominates tip extension; cold assists deposition.
	drive := 0.7*humidity/100 + 0.3*(1-warmth)

	b := &c.arena[id]
	grown := p.ExtendRate * drive
	b.length += grown
	b.sinceSpawn += grown

	spawned := 0
	switch {
	case humidity < p.SpawnHumidityMax:
		if b.sinceSpawn >= p.SpawnSpacing && *budget > 0 {
			if c.spawn(id) {
				*budget--
				spawned = 1
			}
			b = &c.arena[id]
		}
	case humidity < p.ThickenHumidityMax:
		// Branching is suppressed here, so surplus vapor thickens the
		// trunk instead. Warm air deposits onto the sides faster.
		b.thickness += p.ThickenRate * warmth
	}

	b.age -= p.AgeDecrement
	if b.age < 0 {
		b.age = 0
	}
	return spawned
}

// spawn creates a child at the current tip of the branch at parentID, offset
// by the crystallographic angle on the parent's alternating side. It reports
// false when crossing prevention rejects the candidate; the parent keeps its
// spawn buildup and retries on a later step once the tip has moved.
func (c *Crystal) spawn(parentID int) bool {
	p := c.cfg.Params
	par := c.arena[parentID]

	offset := par.side * p.SpawnAngleDeg * math.Pi / 180
	angle := math.Mod(par.angle+offset+2*math.Pi, 2*math.Pi)
	origin := par.tip()

	if !p.BranchCrossing && c.crossesSibling(parentID, origin, angle) {
		return false
	}

	id := len(c.arena)
	c.arena = append(c.arena, branch{
		parent:    parentID,
		depth:     par.depth + 1,
		origin:    origin,
		angle:     angle,
		thickness: p.InitialThickness,
		age:       p.MaxAge,
		side:      1,
	})

	parent := &c.arena[parentID]
	parent.children = append(parent.children, id)
	parent.sinceSpawn = 0
	parent.side = -parent.side
	return true
}

// crossesSibling probes the candidate child segment (one spawn spacing long)
// against the existing children of the same parent.
func (c *Crystal) crossesSibling(parentID int, origin core.Point, angle float64) bool {
	probeEnd := core.PointOnRay(origin, angle, c.cfg.Params.SpawnSpacing)
	for _, sib := range c.arena[parentID].children {
		s := &c.arena[sib]
		if s.length <= 0 {
			continue
		}
		if core.SegmentsIntersect(origin, probeEnd, s.origin, s.tip()) {
			return true
		}
	}
	return false
}

func init() {
	core.Register("crystal", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
