package engine_test

import (
	"testing"
	"time"

	"github.com/cadence-cli/cadence/engine"
	"github.com/cadence-cli/cadence/internal/session"
)

func TestNextPhase(t *testing.T) {
	cfg := testConfig()

	cases := []struct {
		name       string
		current    session.Phase
		cycleIndex int
		want       session.Phase
	}{
		{"first work", session.Work, 1, session.ShortBreak},
		{"mid cycle", session.Work, 3, session.ShortBreak},
		{"interval reached", session.Work, 4, session.LongBreak},
		{"second interval", session.Work, 8, session.LongBreak},
		{"past interval", session.Work, 5, session.ShortBreak},
		{"after short break", session.ShortBreak, 4, session.Work},
		{"after long break", session.LongBreak, 4, session.Work},
		{"after focus", session.Focus, 4, session.Work},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := engine.NextPhase(tc.cycleIndex, tc.current, cfg)
			if got != tc.want {
				t.Fatalf("NextPhase() = %v, want %v", got, tc.want)
			}
		})
	}
}

// With interval 4, the long break is due exactly once every four work
// sessions: after the 4th, the 8th, and so on.
func TestLongBreakCadence(t *testing.T) {
	eng, _ := newTestEngine(t, testConfig())

	now := base

	for i := 1; i <= 8; i++ {
		if err := eng.Start(now, session.Work); err != nil {
			t.Fatal(err)
		}

		now = now.Add(25 * time.Minute)
		eng.Recompute(now)

		want := session.ShortBreak
		if i%4 == 0 {
			want = session.LongBreak
		}

		if got := eng.NextPhase(); got != want {
			t.Fatalf("after work session %d: next = %v, want %v", i, got, want)
		}

		now = now.Add(time.Minute)
	}
}

// Skipping a break must not disturb the work-session count that drives the
// long break cadence.
func TestCadenceUnaffectedBySkippedBreaks(t *testing.T) {
	eng, _ := newTestEngine(t, testConfig())

	now := base

	for i := 1; i <= 4; i++ {
		if err := eng.Start(now, session.Work); err != nil {
			t.Fatal(err)
		}

		now = now.Add(25 * time.Minute)
		eng.Recompute(now)

		if i == 4 {
			break
		}

		// take the break but abandon it immediately
		if err := eng.Start(now, eng.NextPhase()); err != nil {
			t.Fatal(err)
		}

		now = now.Add(time.Minute)

		if err := eng.Skip(now); err != nil {
			t.Fatal(err)
		}
	}

	if got := eng.NextPhase(); got != session.LongBreak {
		t.Fatalf("next = %v, want long break", got)
	}

	if eng.CycleIndex() != 4 {
		t.Fatalf("cycle index = %d, want 4", eng.CycleIndex())
	}
}

func TestDailyGoalProgress(t *testing.T) {
	cases := []struct {
		name      string
		completed int
		goal      int
		want      float64
	}{
		{"goal disabled", 3, 0, 0},
		{"negative goal", 3, -1, 0},
		{"nothing done", 0, 8, 0},
		{"halfway", 4, 8, 50},
		{"exactly met", 8, 8, 100},
		{"clamped above", 12, 8, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := engine.DailyGoalProgress(tc.completed, tc.goal)
			if got != tc.want {
				t.Fatalf("DailyGoalProgress() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDailyGoalResetsAcrossDays(t *testing.T) {
	eng, _ := newTestEngine(t, testConfig())

	completeWork := func(start time.Time) {
		t.Helper()

		if err := eng.Start(start, session.Work); err != nil {
			t.Fatal(err)
		}

		eng.Recompute(start.Add(25 * time.Minute))
	}

	completeWork(base)
	completeWork(base.Add(time.Hour))

	if got := eng.WorkCompletedToday(); got != 2 {
		t.Fatalf("completed today = %d, want 2", got)
	}

	completeWork(base.Add(24 * time.Hour))

	if got := eng.WorkCompletedToday(); got != 1 {
		t.Fatalf("completed on the next day = %d, want 1", got)
	}
}

func TestCompletionRate(t *testing.T) {
	var s engine.Stats

	if got := s.CompletionRate(); got != 0 {
		t.Fatalf("empty stats rate = %v, want 0", got)
	}

	s = engine.Stats{WorkStarted: 4, WorkCompleted: 3}

	if got := s.CompletionRate(); got != 75 {
		t.Fatalf("rate = %v, want 75", got)
	}
}

func TestStatsAccumulate(t *testing.T) {
	eng, _ := newTestEngine(t, testConfig())

	if err := eng.Start(base, session.Work); err != nil {
		t.Fatal(err)
	}

	eng.Recompute(at(25 * time.Minute))

	if err := eng.Start(at(26*time.Minute), session.Work); err != nil {
		t.Fatal(err)
	}

	if err := eng.Skip(at(30 * time.Minute)); err != nil {
		t.Fatal(err)
	}

	stats := eng.Stats()

	if stats.WorkStarted != 2 || stats.WorkCompleted != 1 {
		t.Fatalf("started/completed = %d/%d", stats.WorkStarted, stats.WorkCompleted)
	}

	if stats.Skipped != 1 {
		t.Fatalf("skipped = %d, want 1", stats.Skipped)
	}

	if stats.TotalWork != 25*time.Minute {
		t.Fatalf("total work = %v, want 25m", stats.TotalWork)
	}
}
