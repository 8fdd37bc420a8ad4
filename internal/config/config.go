package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/wavegrid/internal/anim"
)

const (
	DefaultTheme   = "cyberpunk"
	DefaultGIFPath = "wavegrid.gif"
)

// Config is the on-disk widget configuration.
type Config struct {
	Rows    int    `yaml:"rows"`
	Cols    int    `yaml:"cols"`
	SpeedMs int    `yaml:"speed_ms"`
	Playing bool   `yaml:"playing"`
	Theme   string `yaml:"theme"`
	GIFPath string `yaml:"gif_path"`
}

func DefaultConfig() *Config {
	return &Config{
		Rows:    anim.DefaultRows,
		Cols:    anim.DefaultCols,
		SpeedMs: anim.DefaultSpeed,
		Playing: true,
		Theme:   DefaultTheme,
		GIFPath: DefaultGIFPath,
	}
}

// Load reads a YAML file over the defaults. Missing keys keep their default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Normalize clamps every numeric field into the range the widget accepts.
func (c *Config) Normalize() {
	if r := anim.ClampDim(c.Rows); r != c.Rows {
		log.Printf("config: rows %d clamped to %d", c.Rows, r)
		c.Rows = r
	}
	if n := anim.ClampDim(c.Cols); n != c.Cols {
		log.Printf("config: cols %d clamped to %d", c.Cols, n)
		c.Cols = n
	}
	if s := anim.ClampSpeed(c.SpeedMs); s != c.SpeedMs {
		log.Printf("config: speed_ms %d clamped to %d", c.SpeedMs, s)
		c.SpeedMs = s
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.GIFPath == "" {
		c.GIFPath = DefaultGIFPath
	}
}

// InitialState builds the widget state the configuration describes.
func (c *Config) InitialState() anim.State {
	s := anim.DefaultState()
	s.Rows = anim.ClampDim(c.Rows)
	s.Cols = anim.ClampDim(c.Cols)
	s.SpeedMs = anim.ClampSpeed(c.SpeedMs)
	s.Playing = c.Playing
	return s
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
