package crystal

import (
	"strconv"

	"flakemaker/internal/core"
)

// Parameters exposes the current configuration for the HUD readout.
func (c *Crystal) Parameters() core.ParameterSnapshot {
	p := c.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Canvas",
			Params: []core.Parameter{
				intParam("w", "Width", c.cfg.Width),
				intParam("h", "Height", c.cfg.Height),
			},
		},
		{
			Name: "Growth",
			Params: []core.Parameter{
				floatParam("max_age", "Max age", p.MaxAge),
				floatParam("thick", "Initial thickness", p.InitialThickness),
				floatParam("extend_rate", "Extend rate", p.ExtendRate),
				floatParam("thicken_rate", "Thicken rate", p.ThickenRate),
				floatParam("age_decrement", "Age decrement", p.AgeDecrement),
			},
		},
		{
			Name: "Branching",
			Params: []core.Parameter{
				intParam("max_branches", "Max branches", p.MaxBranches),
				floatParam("spawn_spacing", "Spawn spacing", p.SpawnSpacing),
				floatParam("spawn_humidity_max", "Spawn humidity max", p.SpawnHumidityMax),
				floatParam("thicken_humidity_max", "Thicken humidity max", p.ThickenHumidityMax),
				floatParam("spawn_angle_deg", "Spawn angle (deg)", p.SpawnAngleDeg),
				boolParam("branch_crossing", "Branch crossing", p.BranchCrossing),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the parameters adjustable from the HUD while the
// simulation runs.
func (c *Crystal) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "max_branches", Label: "Max branches", Type: core.ParamTypeInt, Step: 6, Min: rootCount, HasMin: true},
		{Key: "spawn_spacing", Label: "Spawn spacing", Type: core.ParamTypeFloat, Step: 1, Min: 1, HasMin: true},
		{Key: "spawn_humidity_max", Label: "Spawn humidity max", Type: core.ParamTypeFloat, Step: 5, Min: 0, Max: 100, HasMin: true, HasMax: true},
		{Key: "age_decrement", Label: "Age decrement", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, HasMin: true},
	}
}

// SetIntParameter updates an integer parameter by key. Lowering the branch
// ceiling below the current count only blocks future spawns; existing
// branches are never removed.
func (c *Crystal) SetIntParameter(key string, value int) bool {
	switch key {
	case "max_branches":
		if value < rootCount {
			value = rootCount
		}
		c.cfg.Params.MaxBranches = value
		return true
	}
	return false
}

// SetFloatParameter updates a floating point parameter by key.
func (c *Crystal) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "spawn_spacing":
		if value < 1 {
			value = 1
		}
		c.cfg.Params.SpawnSpacing = value
		return true
	case "spawn_humidity_max":
		value = core.Clamp(value, 0, 100)
		c.cfg.Params.SpawnHumidityMax = value
		if c.cfg.Params.ThickenHumidityMax < value {
			c.cfg.Params.ThickenHumidityMax = value
		}
		return true
	case "age_decrement":
		if value < 0 {
			value = 0
		}
		c.cfg.Params.AgeDecrement = value
		return true
	}
	return false
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'g', -1, 64)}
}

func boolParam(key, label string, v bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(v)}
}
