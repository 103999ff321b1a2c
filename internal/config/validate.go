package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSegmentation(); err != nil {
		return err
	}
	if err := c.validateRepair(); err != nil {
		return err
	}
	if err := c.validateSections(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSegmentation() error {
	if c.Segmentation.PauseThreshold <= 0 {
		return errors.New("segmentation.pause_threshold must be positive (seconds)")
	}
	if c.Segmentation.FallbackWordDuration <= 0 {
		return errors.New("segmentation.fallback_word_duration must be positive (seconds)")
	}
	return nil
}

func (c *Config) validateRepair() error {
	if err := ensurePositive(map[string]float64{
		"repair.max_word_gap":      c.Repair.MaxWordGap,
		"repair.max_line_gap":      c.Repair.MaxLineGap,
		"repair.word_nudge":        c.Repair.WordNudge,
		"repair.line_nudge":        c.Repair.LineNudge,
		"repair.line_gap_estimate": c.Repair.LineGapEstimate,
		"repair.synthesis_gap":     c.Repair.SynthesisGap,
	}); err != nil {
		return err
	}
	if c.Repair.MaxPasses < 1 {
		return errors.New("repair.max_passes must be at least 1")
	}
	if c.Repair.MaxLineGap < c.Repair.MaxWordGap {
		return errors.New("repair.max_line_gap must not be smaller than repair.max_word_gap")
	}
	return nil
}

func (c *Config) validateSections() error {
	if c.Sections.LeadSeconds < 0 {
		return errors.New("sections.lead_seconds must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
}

func ensurePositive(values map[string]float64) error {
	for name, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive (seconds)", name)
		}
	}
	return nil
}
