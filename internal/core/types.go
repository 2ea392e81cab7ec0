package core

// Size describes the logical canvas dimensions of a simulation.
type Size struct {
	W int
	H int
}

// Environment carries the two scalar inputs driving crystal growth.
// Humidity is a percentage in [0, 100]; Temperature is in °C within
// [-20, -5]. Sims clamp both defensively.
type Environment struct {
	Humidity    float64
	Temperature float64
}

// Sim defines the minimal contract a growth simulation must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step(env Environment)
	Segments() []Segment
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
