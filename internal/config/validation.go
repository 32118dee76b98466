package config

import "fmt"

// validateConfig rejects values the panel controller cannot work with.
func validateConfig(c *Config) error {
	p := c.Panel

	if p.CornerMargin < 0 {
		return fmt.Errorf("panel.corner_margin must be >= 0, got %g", p.CornerMargin)
	}
	if p.ProjectionFactor < 0 || p.ProjectionFactor > 1 {
		return fmt.Errorf("panel.projection_factor must be in [0, 1], got %g", p.ProjectionFactor)
	}
	if p.EdgeHiddenVisibleWidth <= 0 {
		return fmt.Errorf("panel.edge_hidden_visible_width must be > 0, got %g", p.EdgeHiddenVisibleWidth)
	}
	if p.ScrollSensitivity <= 0 {
		return fmt.Errorf("panel.scroll_sensitivity must be > 0, got %g", p.ScrollSensitivity)
	}

	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}

	return nil
}
