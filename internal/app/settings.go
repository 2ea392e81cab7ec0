package app

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/BurntSushi/toml"

	"flakemaker/internal/render"
)

// Settings mirrors the optional TOML settings file. Absent fields keep the
// built-in defaults.
type Settings struct {
	Window struct {
		Width  int `toml:"width"`
		Height int `toml:"height"`
	} `toml:"window"`

	Snowflake struct {
		MaxGrowth      float64 `toml:"max_growth"`
		Thick          float64 `toml:"thick"`
		MaxBranching   int     `toml:"max_branching"`
		BranchCrossing *bool   `toml:"branch_crossing"`

		Colors struct {
			Young      string `toml:"young"`
			Old        string `toml:"old"`
			Background string `toml:"background"`
		} `toml:"colors"`
	} `toml:"snowflake"`
}

// LoadSettings parses the TOML file at path.
func LoadSettings(path string) (Settings, error) {
	var s Settings
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Settings{}, fmt.Errorf("loading settings: %w", err)
	}
	return s, nil
}

// Overrides converts the settings into the string-map form consumed by sim
// factories. Only explicitly set fields appear in the map.
func (s Settings) Overrides() map[string]string {
	m := map[string]string{}
	if s.Window.Width > 0 {
		m["w"] = strconv.Itoa(s.Window.Width)
	}
	if s.Window.Height > 0 {
		m["h"] = strconv.Itoa(s.Window.Height)
	}
	if s.Snowflake.MaxGrowth > 0 {
		m["max_age"] = strconv.FormatFloat(s.Snowflake.MaxGrowth, 'g', -1, 64)
	}
	if s.Snowflake.Thick > 0 {
		m["thick"] = strconv.FormatFloat(s.Snowflake.Thick, 'g', -1, 64)
	}
	if s.Snowflake.MaxBranching > 0 {
		m["max_branches"] = strconv.Itoa(s.Snowflake.MaxBranching)
	}
	if s.Snowflake.BranchCrossing != nil {
		m["branch_crossing"] = strconv.FormatBool(*s.Snowflake.BranchCrossing)
	}
	return m
}

// ApplyStyle overwrites style colors with any hex colors set in the file.
func (s Settings) ApplyStyle(style *render.Style) error {
	entries := []struct {
		value string
		dst   *color.RGBA
	}{
		{s.Snowflake.Colors.Young, &style.Young},
		{s.Snowflake.Colors.Old, &style.Old},
		{s.Snowflake.Colors.Background, &style.Background},
	}
	for _, e := range entries {
		if e.value == "" {
			continue
		}
		c, err := parseHexColor(e.value)
		if err != nil {
			return err
		}
		*e.dst = c
	}
	return nil
}

func parseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("color must look like #rrggbb, got %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
