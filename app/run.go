package app

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/cadence-cli/cadence/config"
	"github.com/cadence-cli/cadence/engine"
	"github.com/cadence-cli/cadence/internal/session"
	"github.com/cadence-cli/cadence/internal/ui"
	"github.com/cadence-cli/cadence/store"
)

// host drives the engine from a single goroutine: a one-second ticker for
// recomputes and flushes, plus the user-facing prompts between sessions.
// Interrupts are delivered over a channel and acted on from that same
// goroutine, never concurrently with a Tick.
type host struct {
	eng       *engine.Engine
	db        *store.Client
	cfg       *config.Config
	signals   chan os.Signal
	focusOnly bool
}

func newHost(
	ctx *cli.Context,
	cfg *config.Config,
	db *store.Client,
) (*host, error) {
	eng, err := engine.New(cfg, engine.Options{
		Recorder:  db,
		Snapshots: db,
		Notifier:  &desktopNotifier{cfg: cfg},
		Logger:    slog.Default(),
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("engine restored", "snapshot", spew.Sdump(eng.Snapshot()))

	return &host{
		eng:       eng,
		db:        db,
		cfg:       cfg,
		signals:   make(chan os.Signal, 1),
		focusOnly: ctx.Uint("focus") > 0,
	}, nil
}

// run starts the first session and loops until interrupted (or until the
// single focus session ends).
func (h *host) run(ctx *cli.Context) error {
	signal.Notify(h.signals, os.Interrupt, syscall.SIGTERM)

	var opts []engine.SessionOption

	if project := ctx.String("project"); project != "" {
		opts = append(opts, engine.WithProject(project))
	}

	if note := ctx.String("note"); note != "" {
		opts = append(opts, engine.WithNote(note))
	}

	phase := session.Work
	if h.focusOnly {
		phase = session.Focus
		opts = append(opts, engine.WithMinutes(int(ctx.Uint("focus"))))
	}

	if err := h.eng.Start(time.Now(), phase, opts...); err != nil {
		return err
	}

	for {
		phase, ok := h.eng.CurrentPhase()
		if !ok {
			return nil
		}

		h.printSession(phase)

		if h.countdown(phase) {
			h.shutdown(time.Now())
		}

		if err := runSessionCmd(h.cfg.Settings.Cmd); err != nil {
			slog.Error("session command failed", "error", err)
		}

		if h.focusOnly {
			h.teardown()
			return nil
		}

		if h.eng.State() == engine.StateIdle {
			if err := h.waitForNext(); err != nil {
				return err
			}
		}
	}
}

// countdown ticks once a second until the current phase ends, printing the
// time remaining in place. It reports whether an interrupt ended it; all
// engine calls stay on the calling goroutine.
func (h *host) countdown(phase session.Phase) bool {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	fmt.Fprint(os.Stdout, "\033[s")

	for {
		select {
		case <-h.signals:
			return true
		case now := <-ticker.C:
			h.eng.Tick(now)

			cur, ok := h.eng.CurrentPhase()
			if !ok || cur != phase {
				fmt.Printf("\nSession completed!\n\n")
				return false
			}

			_ = h.writeStatusFile(now)

			fmt.Fprint(os.Stdout, "\033[u\033[K")

			if phase == session.Focus && h.eng.Status(now).IsOvertime {
				fmt.Fprintf(
					os.Stdout,
					"\r🕒+%s",
					pterm.Yellow(formatDuration(h.eng.Status(now).Overtime)),
				)

				continue
			}

			fmt.Fprintf(
				os.Stdout,
				"\r🕒%s",
				pterm.Yellow(formatDuration(h.eng.Remaining(now))),
			)
		}
	}
}

// printSession writes the details of the current session to stdout.
func (h *host) printSession(phase session.Phase) {
	now := time.Now()
	st := h.eng.Status(now)

	var text string

	switch phase {
	case session.Work:
		text = fmt.Sprintf(
			ui.Green("[Work %d/%d]"),
			st.CycleIndex,
			st.LongBreakInterval,
		) + ": " + h.cfg.Message(phase)
	case session.ShortBreak:
		text = ui.Blue("[Short break]") + ": " + h.cfg.Message(phase)
	case session.LongBreak:
		text = ui.Magenta("[Long break]") + ": " + h.cfg.Message(phase)
	case session.Focus:
		text = ui.Cyan("[Focus]") + ": " + h.cfg.Message(phase)
	}

	timeFormat := "03:04:05 PM"
	if h.cfg.Display.TwentyFourHour {
		timeFormat = "15:04:05"
	}

	fmt.Fprintf(
		os.Stdout,
		"%s (until %s)\n",
		text,
		ui.Highlight(st.EndTime.Format(timeFormat)),
	)

	if st.DailyGoal > 0 {
		pterm.Printfln("Daily goal: %.0f%%", st.GoalProgress)
	}
}

// waitForNext blocks until the user confirms the next session or the
// process is interrupted. Stdin is read on a helper goroutine, but the
// resulting engine calls run here.
func (h *host) waitForNext() error {
	fmt.Fprint(os.Stdout, "Press ENTER to start the next session")

	input := make(chan error, 1)

	go func() {
		_, err := bufio.NewReader(os.Stdin).ReadString('\n')
		input <- err
	}()

	select {
	case <-h.signals:
		h.shutdown(time.Now())
	case err := <-input:
		if errors.Is(err, io.EOF) {
			h.shutdown(time.Now())
		} else if err != nil {
			return err
		}
	}

	fmt.Print("\033[2K\r")

	return h.eng.Start(time.Now(), h.eng.NextPhase())
}

// writeStatusFile makes the engine status available to the status command.
func (h *host) writeStatusFile(now time.Time) error {
	b, err := json.Marshal(h.eng.Status(now))
	if err != nil {
		return err
	}

	return os.WriteFile(config.StatusFilePath(), b, 0o600)
}

// shutdown stops any active session, flushes durable state, and exits. It
// runs on the loop goroutine so it never races a Tick.
func (h *host) shutdown(now time.Time) {
	if h.eng.CanStop() {
		_ = h.eng.Stop(now)
	}

	h.teardown()

	os.Exit(0)
}

// teardown flushes the snapshot and removes the status file.
func (h *host) teardown() {
	h.eng.Suspend(time.Now())

	_ = os.Remove(config.StatusFilePath())

	_ = h.db.Close()
}
