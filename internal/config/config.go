// Package config handles nowbar configuration loading, validation, and
// live reloading.
package config

import (
	"github.com/bnema/nowbar/internal/panel"
)

// Config is the root configuration.
type Config struct {
	Panel   PanelConfig   `mapstructure:"panel" json:"panel"`
	Logging LoggingConfig `mapstructure:"logging" json:"logging"`
}

// PanelConfig tunes the floating panel controller.
type PanelConfig struct {
	// CornerMargin is the gap in px between the window and the screen edge
	// when snapped to a corner.
	CornerMargin float64 `mapstructure:"corner_margin" json:"corner_margin"`
	// ProjectionFactor is the fraction of the release velocity used to
	// project the landing position before picking the nearest corner.
	ProjectionFactor float64 `mapstructure:"projection_factor" json:"projection_factor"`
	// EdgeHiddenVisibleWidth is the sliver in px left visible when hidden
	// against a side edge.
	EdgeHiddenVisibleWidth float64 `mapstructure:"edge_hidden_visible_width" json:"edge_hidden_visible_width"`
	// SnapToCorners enables corner snapping after a two-finger fling.
	SnapToCorners bool `mapstructure:"snap_to_corners" json:"snap_to_corners"`
	// ScrollSensitivity scales two-finger deltas into window movement.
	ScrollSensitivity float64 `mapstructure:"scroll_sensitivity" json:"scroll_sensitivity"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" json:"level"`
	Format string `mapstructure:"format" json:"format"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() *Config {
	opts := panel.DefaultOptions()
	return &Config{
		Panel: PanelConfig{
			CornerMargin:           opts.CornerMargin,
			ProjectionFactor:       opts.ProjectionFactor,
			EdgeHiddenVisibleWidth: opts.EdgeHiddenVisibleWidth,
			SnapToCorners:          opts.SnapToCorners,
			ScrollSensitivity:      opts.ScrollSensitivity,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// PanelOptions converts the panel section into controller options.
func (c *Config) PanelOptions() panel.Options {
	return panel.Options{
		CornerMargin:           c.Panel.CornerMargin,
		ProjectionFactor:       c.Panel.ProjectionFactor,
		EdgeHiddenVisibleWidth: c.Panel.EdgeHiddenVisibleWidth,
		SnapToCorners:          c.Panel.SnapToCorners,
		ScrollSensitivity:      c.Panel.ScrollSensitivity,
	}
}
