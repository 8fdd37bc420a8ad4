package config

import (
	"fmt"
	"sort"
)

var Presets = map[string]*Config{
	"default": {Rows: 15, Cols: 20, SpeedMs: 150, Playing: true},
	"calm":    {Rows: 15, Cols: 20, SpeedMs: 400, Playing: true},
	"frantic": {Rows: 20, Cols: 30, SpeedMs: 50, Playing: true},
	"tiny":    {Rows: 5, Cols: 5, SpeedMs: 200, Playing: true},
	"wide":    {Rows: 8, Cols: 30, SpeedMs: 100, Playing: true},
	"tall":    {Rows: 30, Cols: 12, SpeedMs: 150, Playing: true},
	"still":   {Rows: 15, Cols: 20, SpeedMs: 150, Playing: false},
}

// GetPreset returns a copy of the named preset with defaults filled in, or
// nil if it does not exist.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Normalize()
	return &cfg
}

// ApplyPreset overlays the preset's grid and playback settings onto c.
func (c *Config) ApplyPreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	c.Rows, c.Cols, c.SpeedMs, c.Playing = p.Rows, p.Cols, p.SpeedMs, p.Playing
	return nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
