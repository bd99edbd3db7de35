// Package config loads, validates, and persists the Cadence configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"

	"github.com/cadence-cli/cadence/internal/session"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Work          PhaseConfig   `mapstructure:"work"          json:"work"`
		ShortBreak    PhaseConfig   `mapstructure:"short_break"   json:"short_break"`
		LongBreak     PhaseConfig   `mapstructure:"long_break"    json:"long_break"`
		Focus         PhaseConfig   `mapstructure:"focus"         json:"focus"`
		Settings      Settings      `mapstructure:"settings"      json:"settings"`
		Notifications Notifications `mapstructure:"notifications" json:"notifications"`
		Display       Display       `mapstructure:"display"       json:"display"`
		Tags          []string      `mapstructure:"-"             json:"tags,omitempty"`
	}

	// PhaseConfig holds the settings for a single phase.
	PhaseConfig struct {
		Minutes int    `mapstructure:"minutes" json:"minutes"`
		Message string `mapstructure:"message" json:"message"`
	}

	// Settings holds cycle and policy settings.
	Settings struct {
		LongBreakInterval int    `mapstructure:"long_break_interval" json:"long_break_interval"`
		AutoStartBreak    bool   `mapstructure:"auto_start_break"    json:"auto_start_break"`
		AutoStartWork     bool   `mapstructure:"auto_start_work"     json:"auto_start_work"`
		AllowSkipBreaks   bool   `mapstructure:"allow_skip_breaks"   json:"allow_skip_breaks"`
		Strict            bool   `mapstructure:"strict"              json:"strict"`
		OvertimeMinutes   int    `mapstructure:"overtime_allowance"  json:"overtime_allowance"`
		DailyGoal         int    `mapstructure:"daily_goal"          json:"daily_goal"`
		Cmd               string `mapstructure:"cmd"                 json:"cmd,omitempty"`
	}

	// Notifications holds notification settings.
	Notifications struct {
		Enabled bool `mapstructure:"enabled" json:"enabled"`
	}

	// Display holds display-related settings.
	Display struct {
		DarkTheme      bool `mapstructure:"dark_theme" json:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock" json:"24hr_clock"`
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.1"

var (
	configDir      = "cadence"
	configFileName = "config.yml"
	dbFileName     = "cadence.db"
	statusFileName = "status.json"
	logFileName    = "cadence.log"
	dbFilePath     string
	configFilePath string
	statusFilePath string
	logFilePath    string
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func StatusFilePath() string {
	return statusFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

// InitializePaths resolves the XDG paths for the config file, database,
// status file, and log file. CADENCE_ENV isolates the files used in
// development and testing from the regular ones.
func InitializePaths() {
	env := strings.TrimSpace(os.Getenv("CADENCE_ENV"))
	if env != "" {
		configFileName = fmt.Sprintf("config_%s.yml", env)
		dbFileName = fmt.Sprintf("cadence_%s.db", env)
		statusFileName = fmt.Sprintf("status_%s.json", env)
		logFileName = fmt.Sprintf("cadence_%s.log", env)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	statusFilePath = filepath.Join(dataDir, statusFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// Minutes returns the configured minutes for the given phase.
func (c *Config) Minutes(phase session.Phase) int {
	switch phase {
	case session.Work:
		return c.Work.Minutes
	case session.ShortBreak:
		return c.ShortBreak.Minutes
	case session.LongBreak:
		return c.LongBreak.Minutes
	case session.Focus:
		return c.Focus.Minutes
	}

	return 0
}

// Message returns the configured message for the given phase.
func (c *Config) Message(phase session.Phase) string {
	switch phase {
	case session.Work:
		return c.Work.Message
	case session.ShortBreak:
		return c.ShortBreak.Message
	case session.LongBreak:
		return c.LongBreak.Message
	case session.Focus:
		return c.Focus.Message
	}

	return ""
}

// New creates a new Config with default values, applies the provided
// options, and validates the result.
func New(opts ...Option) (*Config, error) {
	cfg := Default()

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the built-in configuration defaults.
func Default() *Config {
	return &Config{
		Work:       PhaseConfig{Minutes: 25, Message: "Focus on your task"},
		ShortBreak: PhaseConfig{Minutes: 5, Message: "Take a breather"},
		LongBreak:  PhaseConfig{Minutes: 15, Message: "Take a long break"},
		Focus:      PhaseConfig{Minutes: 90, Message: "Deep focus"},
		Settings: Settings{
			LongBreakInterval: 4,
			AutoStartBreak:    true,
			AutoStartWork:     false,
			AllowSkipBreaks:   true,
			Strict:            false,
			OvertimeMinutes:   5,
			DailyGoal:         0,
		},
		Notifications: Notifications{Enabled: true},
		Display:       Display{DarkTheme: true},
	}
}
