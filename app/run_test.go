package app

import (
	"os"
	"testing"
	"time"

	"github.com/cadence-cli/cadence/config"
	"github.com/cadence-cli/cadence/engine"
	"github.com/cadence-cli/cadence/internal/session"
)

// An interrupt ends the countdown on the loop goroutine; the engine is
// left for the caller to stop, so the signal never races a Tick.
func TestCountdownReturnsOnInterrupt(t *testing.T) {
	cfg := config.Default()
	cfg.Settings.AutoStartBreak = false

	eng, err := engine.New(cfg, engine.Options{})
	if err != nil {
		t.Fatal(err)
	}

	if err := eng.Start(time.Now(), session.Work); err != nil {
		t.Fatal(err)
	}

	h := &host{
		eng:     eng,
		cfg:     cfg,
		signals: make(chan os.Signal, 1),
	}

	h.signals <- os.Interrupt

	done := make(chan bool, 1)

	go func() {
		done <- h.countdown(session.Work)
	}()

	select {
	case interrupted := <-done:
		if !interrupted {
			t.Fatal("countdown must report the interrupt")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("countdown did not return after the interrupt")
	}

	if eng.State() != engine.StateRunning {
		t.Fatalf("state = %v, countdown must not touch the engine", eng.State())
	}
}
