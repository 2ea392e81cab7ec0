package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Sim         string
	Scale       float64
	GrowthRate  int
	Seed        int64
	Settings    string
	Humidity    float64
	Temperature float64
	ShotDir     string
}

// NewConfig returns a Config populated with sensible defaults. The initial
// environment matches the classic starting conditions: 50% humidity at
// -12.5 °C.
func NewConfig() *Config {
	return &Config{
		Sim:         "crystal",
		Scale:       1,
		GrowthRate:  60,
		Seed:        42,
		Humidity:    50,
		Temperature: -12.5,
		ShotDir:     "screenshots",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "display scale multiplier")
	fs.IntVar(&c.GrowthRate, "rate", c.GrowthRate, "growth steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Settings, "settings", c.Settings, "path to a TOML settings file")
	fs.Float64Var(&c.Humidity, "humidity", c.Humidity, "initial humidity (0-100)")
	fs.Float64Var(&c.Temperature, "temperature", c.Temperature, "initial temperature (-20 to -5)")
	fs.StringVar(&c.ShotDir, "shots", c.ShotDir, "directory for screenshots")
}
