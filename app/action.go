package app

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"slices"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	bolt "go.etcd.io/bbolt"

	"github.com/cadence-cli/cadence/config"
	"github.com/cadence-cli/cadence/engine"
	"github.com/cadence-cli/cadence/internal/session"
	"github.com/cadence-cli/cadence/internal/timeutil"
	"github.com/cadence-cli/cadence/internal/ui"
	"github.com/cadence-cli/cadence/store"
)

func beforeAction(ctx *cli.Context) error {
	config.InitializePaths()

	initLogger()

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.New(
		config.WithViperConfig(config.ConfigFilePath()),
	)
	if err != nil {
		return nil, err
	}

	if ctx.Uint("work") > 0 {
		cfg.Work.Minutes = int(ctx.Uint("work"))
	}

	if ctx.Uint("short-break") > 0 {
		cfg.ShortBreak.Minutes = int(ctx.Uint("short-break"))
	}

	if ctx.Uint("long-break") > 0 {
		cfg.LongBreak.Minutes = int(ctx.Uint("long-break"))
	}

	if ctx.Uint("long-break-interval") > 0 {
		cfg.Settings.LongBreakInterval = int(ctx.Uint("long-break-interval"))
	}

	if ctx.Bool("strict") {
		cfg.Settings.Strict = true
	}

	if ctx.Uint("daily-goal") > 0 {
		cfg.Settings.DailyGoal = int(ctx.Uint("daily-goal"))
	}

	if ctx.String("session-cmd") != "" {
		cfg.Settings.Cmd = ctx.String("session-cmd")
	}

	if ctx.Bool("disable-notification") {
		cfg.Notifications.Enabled = false
	}

	if tagArg := ctx.String("tag"); tagArg != "" {
		tags := strings.Split(tagArg, ",")
		for i := range tags {
			tags[i] = strings.TrimSpace(tags[i])
		}

		cfg.Tags = tags
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

// defaultAction runs the timer.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}
	defer db.Close()

	h, err := newHost(ctx, cfg, db)
	if err != nil {
		return err
	}

	return h.run(ctx)
}

// statusAction reports the status of the currently running timer.
func statusAction(_ *cli.Context) error {
	// If the database lock can be acquired, no other instance is running
	// and there is no status to report.
	db, err := bolt.Open(config.DBFilePath(), 0o600, &bolt.Options{
		Timeout: 100 * time.Millisecond,
	})
	if err == nil {
		return db.Close()
	}

	fileBytes, err := os.ReadFile(config.StatusFilePath())
	if err != nil {
		// a missing status file should not return an error
		return nil
	}

	var s engine.Status

	err = json.Unmarshal(fileBytes, &s)
	if err != nil {
		return err
	}

	if s.Phase == session.Focus && s.IsOvertime {
		pterm.Printfln("%s: +%s", statusLabel(s), formatDuration(s.Overtime))
		return nil
	}

	remaining := time.Until(s.EndTime)
	if remaining < 0 {
		return nil
	}

	pterm.Printfln("%s: %s", statusLabel(s), formatDuration(remaining))

	return nil
}

func statusLabel(s engine.Status) string {
	switch s.Phase {
	case session.Work:
		return fmt.Sprintf("[Work %d/%d]", s.CycleIndex, s.LongBreakInterval)
	case session.ShortBreak:
		return "[Short break]"
	case session.LongBreak:
		return "[Long break]"
	case session.Focus:
		return "[Focus]"
	}

	return "[Idle]"
}

// listAction prints the sessions recorded in the requested period.
func listAction(ctx *cli.Context) error {
	period := timeutil.Period(ctx.String("period"))
	if !slices.Contains(timeutil.PeriodCollection, period) {
		return errInvalidPeriod.Fmt(
			string(period),
			timeutil.PeriodCollection,
		)
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}
	defer db.Close()

	now := time.Now()

	start := timeutil.RoundToStart(
		now.AddDate(0, 0, timeutil.Range[period]),
	)
	if period == timeutil.PeriodAllTime {
		start = time.Time{}
	}

	var tags []string
	if tagArg := ctx.String("tag"); tagArg != "" {
		tags = strings.Split(tagArg, ",")
	}

	sessions, err := db.GetSessions(start, timeutil.RoundToEnd(now), tags)
	if err != nil {
		return err
	}

	printSessionTable(sessions)

	return nil
}

func printSessionTable(sessions []session.Session) {
	header := []string{"#", "DATE", "PHASE", "DURATION", "STATUS", "TAGS", "PROJECT"}

	rows := make([][]string, len(sessions))

	for i := range sessions {
		sess := sessions[i]

		status := ui.Green("completed")
		if !sess.Completed {
			status = ui.Magenta("abandoned")
		}

		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			sess.StartTime.Format("Jan 02, 2006 03:04 PM"),
			sess.Phase.String(),
			formatDuration(sess.Elapsed),
			status,
			strings.Join(sess.Tags, ", "),
			sess.Project,
		}
	}

	if err := ui.Table(os.Stdout, header, rows); err != nil {
		slog.Error("rendering session table failed", "error", err)
	}
}

// editConfigAction opens the configuration file in the user's editor.
func editConfigAction(_ *cli.Context) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		return errNoEditor
	}

	cmd := exec.Command(editor, config.ConfigFilePath())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

// formatDuration renders a duration as MM:SS, or HH:MM:SS past an hour.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}

	total := int(d.Seconds())

	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}

	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
