// Package app assembles the Cadence command-line interface.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/cadence-cli/cadence/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the cadence app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "cadence",
		Usage: `
		Cadence is a command-line productivity timer based on the Pomodoro
		Technique: focused work sessions alternating with short breaks, and a
		longer break after every few cycles.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "status",
				Usage:  "Print the status of the running timer",
				Action: statusAction,
			},
			{
				Name:   "list",
				Usage:  "List recorded sessions for a period",
				Flags:  []cli.Flag{periodFlag, tagFlag},
				Action: listAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			workFlag,
			shortBreakFlag,
			longBreakFlag,
			longBreakIntervalFlag,
			focusFlag,
			tagFlag,
			projectFlag,
			noteFlag,
			strictFlag,
			dailyGoalFlag,
			sessionCmdFlag,
			disableNotificationFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}
}
