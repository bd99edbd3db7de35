package config

import (
	"strings"
	"time"

	"github.com/cadence-cli/cadence/internal/session"
)

// Valid long break intervals.
const (
	minLongBreakInterval = 2
	maxLongBreakInterval = 10
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	phases := []struct {
		phase session.Phase
		pc    PhaseConfig
	}{
		{session.Work, c.Work},
		{session.ShortBreak, c.ShortBreak},
		{session.LongBreak, c.LongBreak},
		{session.Focus, c.Focus},
	}

	for _, p := range phases {
		if err := validatePhaseConfig(p.phase, p.pc); err != nil {
			return err
		}
	}

	return c.validateSettings()
}

// validatePhaseConfig validates the configuration of an individual phase.
func validatePhaseConfig(phase session.Phase, pc PhaseConfig) error {
	min, max := phase.Bounds()

	dur := time.Duration(pc.Minutes) * time.Minute
	if dur < min || dur > max {
		return ErrInvalidDuration.Fmt(
			phase,
			int(min.Minutes()),
			int(max.Minutes()),
		)
	}

	if strings.TrimSpace(pc.Message) == "" {
		return errEmptyMsg.Fmt(phase)
	}

	return nil
}

// validateSettings validates the cycle and policy settings.
func (c *Config) validateSettings() error {
	if c.Settings.LongBreakInterval < minLongBreakInterval ||
		c.Settings.LongBreakInterval > maxLongBreakInterval {
		return ErrInvalidInterval.Fmt(
			minLongBreakInterval,
			maxLongBreakInterval,
		)
	}

	if c.Settings.OvertimeMinutes < 0 {
		return errNegativeAllowance
	}

	if c.Settings.DailyGoal < 0 {
		return errNegativeGoal
	}

	return nil
}
