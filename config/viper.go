package config

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper
// counterparts.
const (
	keyWorkMinutes       = "work.minutes"
	keyWorkMessage       = "work.message"
	keyShortBreakMinutes = "short_break.minutes"
	keyShortBreakMessage = "short_break.message"
	keyLongBreakMinutes  = "long_break.minutes"
	keyLongBreakMessage  = "long_break.message"
	keyFocusMinutes      = "focus.minutes"
	keyFocusMessage      = "focus.message"
	keyLongBreakInterval = "settings.long_break_interval"
	keyAutoStartBreak    = "settings.auto_start_break"
	keyAutoStartWork     = "settings.auto_start_work"
	keyAllowSkipBreaks   = "settings.allow_skip_breaks"
	keyStrict            = "settings.strict"
	keyOvertimeAllowance = "settings.overtime_allowance"
	keyDailyGoal         = "settings.daily_goal"
	keySessionCmd        = "settings.cmd"
	keyNotifyEnabled     = "notifications.enabled"
	keyDarkTheme         = "display.dark_theme"
	keyTwentyFourHour    = "display.24hr_clock"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. If the file does not exist yet, it is created with the
// default values.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return v.Unmarshal(c)
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return v.Unmarshal(c)
	}
}

// setDefaults seeds Viper with the current (default) config values so that
// a freshly written config file is fully populated.
func setDefaults(v *viper.Viper, c *Config) {
	v.SetDefault(keyWorkMinutes, c.Work.Minutes)
	v.SetDefault(keyWorkMessage, c.Work.Message)
	v.SetDefault(keyShortBreakMinutes, c.ShortBreak.Minutes)
	v.SetDefault(keyShortBreakMessage, c.ShortBreak.Message)
	v.SetDefault(keyLongBreakMinutes, c.LongBreak.Minutes)
	v.SetDefault(keyLongBreakMessage, c.LongBreak.Message)
	v.SetDefault(keyFocusMinutes, c.Focus.Minutes)
	v.SetDefault(keyFocusMessage, c.Focus.Message)
	v.SetDefault(keyLongBreakInterval, c.Settings.LongBreakInterval)
	v.SetDefault(keyAutoStartBreak, c.Settings.AutoStartBreak)
	v.SetDefault(keyAutoStartWork, c.Settings.AutoStartWork)
	v.SetDefault(keyAllowSkipBreaks, c.Settings.AllowSkipBreaks)
	v.SetDefault(keyStrict, c.Settings.Strict)
	v.SetDefault(keyOvertimeAllowance, c.Settings.OvertimeMinutes)
	v.SetDefault(keyDailyGoal, c.Settings.DailyGoal)
	v.SetDefault(keySessionCmd, c.Settings.Cmd)
	v.SetDefault(keyNotifyEnabled, c.Notifications.Enabled)
	v.SetDefault(keyDarkTheme, c.Display.DarkTheme)
	v.SetDefault(keyTwentyFourHour, c.Display.TwentyFourHour)
}
