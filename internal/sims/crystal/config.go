package crystal

import "strconv"

// Temperature bounds of the simulated environment, in °C.
const (
	TempMin = -20.0
	TempMax = -5.0
)

// Params holds the tunable growth constants for the crystal sim.
type Params struct {
	MaxBranches      int     // ceiling on branches ever created, roots included
	MaxAge           float64 // growth potential granted to every new branch
	InitialThickness float64

	ExtendRate   float64 // tip extension per step at full growth drive
	ThickenRate  float64 // thickening per step at the warmest temperature
	AgeDecrement float64 // growth potential spent per active step

	SpawnSpacing       float64 // length grown between spawn points
	SpawnHumidityMax   float64 // below this humidity a branch spawns instead of thickening
	ThickenHumidityMax float64 // thickening band is [SpawnHumidityMax, this)
	SpawnAngleDeg      float64 // crystallographic offset between parent and child

	BranchCrossing bool // whether spawned segments may cross sibling branches
}

// Config controls the Crystal simulation canvas and growth constants.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  700,
		Height: 700,
		Seed:   1337,
		Params: Params{
			MaxBranches:        96,
			MaxAge:             20,
			InitialThickness:   1,
			ExtendRate:         2,
			ThickenRate:        0.4,
			AgeDecrement:       0.1,
			SpawnSpacing:       12,
			SpawnHumidityMax:   30,
			ThickenHumidityMax: 60,
			SpawnAngleDeg:      60,
			BranchCrossing:     true,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["max_branches"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= rootCount {
			c.Params.MaxBranches = parsed
		}
	}
	if v, ok := cfg["max_age"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.MaxAge = parsed
		}
	}
	if v, ok := cfg["thick"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.InitialThickness = parsed
		}
	}
	if v, ok := cfg["extend_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.ExtendRate = parsed
		}
	}
	if v, ok := cfg["thicken_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.ThickenRate = parsed
		}
	}
	if v, ok := cfg["age_decrement"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.AgeDecrement = parsed
		}
	}
	if v, ok := cfg["spawn_spacing"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.SpawnSpacing = parsed
		}
	}
	if v, ok := cfg["spawn_humidity_max"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.SpawnHumidityMax = parsed
		}
	}
	if v, ok := cfg["thicken_humidity_max"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.ThickenHumidityMax = parsed
		}
	}
	if c.Params.ThickenHumidityMax < c.Params.SpawnHumidityMax {
		c.Params.ThickenHumidityMax = c.Params.SpawnHumidityMax
	}
	if v, ok := cfg["spawn_angle_deg"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.SpawnAngleDeg = parsed
		}
	}
	if v, ok := cfg["branch_crossing"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.BranchCrossing = parsed
		}
	}
	return c
}
