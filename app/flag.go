package app

import "github.com/urfave/cli/v2"

var (
	workFlag = &cli.UintFlag{
		Name:    "work",
		Aliases: []string{"w"},
		Usage:   "Work duration in minutes",
	}

	shortBreakFlag = &cli.UintFlag{
		Name:    "short-break",
		Aliases: []string{"s"},
		Usage:   "Short break duration in minutes",
	}

	longBreakFlag = &cli.UintFlag{
		Name:    "long-break",
		Aliases: []string{"l"},
		Usage:   "Long break duration in minutes",
	}

	longBreakIntervalFlag = &cli.UintFlag{
		Name:    "long-break-interval",
		Aliases: []string{"int"},
		Usage:   "Number of work sessions before a long break",
	}

	focusFlag = &cli.UintFlag{
		Name: "focus",
		Usage: "Run a single standalone focus session of the given length " +
			"in minutes instead of a pomodoro cycle",
	}

	tagFlag = &cli.StringFlag{
		Name:    "tag",
		Aliases: []string{"t"},
		Usage:   "Comma-separated tags for the session",
	}

	projectFlag = &cli.StringFlag{
		Name:    "project",
		Aliases: []string{"p"},
		Usage:   "Project to associate with the session",
	}

	noteFlag = &cli.StringFlag{
		Name:  "note",
		Usage: "Free-form description for the session",
	}

	strictFlag = &cli.BoolFlag{
		Name:  "strict",
		Usage: "Disallow pausing work sessions",
	}

	dailyGoalFlag = &cli.UintFlag{
		Name:  "daily-goal",
		Usage: "Number of work sessions to aim for today",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:  "session-cmd",
		Usage: "Command to execute after each finished session",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:  "disable-notification",
		Usage: "Disable desktop notifications on phase transitions",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable terminal styling",
	}

	periodFlag = &cli.StringFlag{
		Name:  "period",
		Value: "7days",
		Usage: "Reporting period: today, 7days, 30days, or all-time",
	}
)
