package app

import (
	"log/slog"
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/cadence-cli/cadence/config"
	"github.com/cadence-cli/cadence/internal/session"
)

// desktopNotifier implements the engine's notification port with desktop
// notifications.
type desktopNotifier struct {
	cfg *config.Config
}

func (n *desktopNotifier) OnPhaseTransition(finished, next session.Phase) {
	if !n.cfg.Notifications.Enabled {
		return
	}

	title := finished.String() + " is finished"

	err := beeep.Notify(title, n.cfg.Message(next), "")
	if err != nil {
		slog.Error("unable to display notification", "error", err)
	}
}

// runSessionCmd executes the configured session-finished command.
func runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errParseSessionCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	return exec.Command(name, args...).Run()
}
