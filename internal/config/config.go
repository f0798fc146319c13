// Package config holds the chart's motion tuning, loaded from yaml
// with named presets for different interaction feels.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/glidechart/internal/motion"
)

const (
	DefaultZoomDurationMs = 300
	DefaultEasing         = "quad-in-out"
	DefaultZeta           = 4.0
	DefaultThreshold      = 2.0
	DefaultFPS            = 60
	DefaultZoomStep       = 0.25
	DefaultPanStep        = 8.0
	DefaultChartHeight    = 16
)

type Config struct {
	// Motion tuning.
	ZoomDurationMs int     `yaml:"zoom_duration_ms"`
	Easing         string  `yaml:"easing"`
	Zeta           float64 `yaml:"zeta"`
	Threshold      float64 `yaml:"threshold"`

	// Interaction step sizes.
	ZoomStep float64 `yaml:"zoom_step"`
	PanStep  float64 `yaml:"pan_step"`

	// Rendering.
	FPS         int `yaml:"fps"`
	ChartHeight int `yaml:"chart_height"`
}

func DefaultConfig() *Config {
	return &Config{
		ZoomDurationMs: DefaultZoomDurationMs,
		Easing:         DefaultEasing,
		Zeta:           DefaultZeta,
		Threshold:      DefaultThreshold,
		ZoomStep:       DefaultZoomStep,
		PanStep:        DefaultPanStep,
		FPS:            DefaultFPS,
		ChartHeight:    DefaultChartHeight,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.ZoomDurationMs <= 0 {
		return fmt.Errorf("zoom_duration_ms must be positive, got %d", c.ZoomDurationMs)
	}
	if c.Zeta <= 0 {
		return fmt.Errorf("zeta must be positive, got %f", c.Zeta)
	}
	if c.Threshold <= 0 {
		return fmt.Errorf("threshold must be positive, got %f", c.Threshold)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if _, ok := motion.ByName(c.Easing); !ok {
		return fmt.Errorf("unknown easing %q (available: %v)", c.Easing, motion.Names())
	}
	return nil
}

// ZoomDuration is the tween length as a time.Duration.
func (c *Config) ZoomDuration() time.Duration {
	return time.Duration(c.ZoomDurationMs) * time.Millisecond
}

// EasingFunc resolves the configured easing; Validate guarantees the
// name exists, so a miss falls back to the default silently.
func (c *Config) EasingFunc() motion.Easing {
	if e, ok := motion.ByName(c.Easing); ok {
		return e
	}
	return motion.QuadInOut
}
