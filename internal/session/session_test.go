package session_test

import (
	"testing"
	"time"

	"github.com/cadence-cli/cadence/internal/session"
)

func TestPhaseValid(t *testing.T) {
	valid := []session.Phase{
		session.Work,
		session.ShortBreak,
		session.LongBreak,
		session.Focus,
	}

	for _, p := range valid {
		if !p.Valid() {
			t.Errorf("%q must be a valid phase", p)
		}
	}

	if session.Phase("nap").Valid() {
		t.Error("unknown phase must be invalid")
	}
}

func TestPhasePomodoro(t *testing.T) {
	cases := map[session.Phase]bool{
		session.Work:       true,
		session.ShortBreak: true,
		session.LongBreak:  true,
		session.Focus:      false,
	}

	for phase, want := range cases {
		if got := phase.Pomodoro(); got != want {
			t.Errorf("%s: Pomodoro() = %v, want %v", phase, got, want)
		}
	}
}

func TestPhaseBounds(t *testing.T) {
	cases := []struct {
		phase session.Phase
		max   time.Duration
	}{
		{session.Work, session.MaxWorkDuration},
		{session.Focus, session.MaxWorkDuration},
		{session.ShortBreak, session.MaxShortBreak},
		{session.LongBreak, session.MaxLongBreak},
	}

	for _, tc := range cases {
		min, max := tc.phase.Bounds()
		if min != session.MinDuration {
			t.Errorf("%s: min = %v", tc.phase, min)
		}

		if max != tc.max {
			t.Errorf("%s: max = %v, want %v", tc.phase, max, tc.max)
		}
	}
}

func TestSessionValid(t *testing.T) {
	start := time.Date(2026, time.March, 9, 9, 0, 0, 0, time.UTC)

	valid := func() session.Session {
		return session.Session{
			StartTime: start,
			Phase:     session.Work,
			Target:    25 * time.Minute,
		}
	}

	cases := []struct {
		name   string
		mutate func(*session.Session)
		want   bool
	}{
		{"well-formed", func(_ *session.Session) {}, true},
		{"with end time", func(s *session.Session) {
			s.EndTime = start.Add(25 * time.Minute)
		}, true},
		{"unknown phase", func(s *session.Session) {
			s.Phase = "nap"
		}, false},
		{"missing start", func(s *session.Session) {
			s.StartTime = time.Time{}
		}, false},
		{"target too small", func(s *session.Session) {
			s.Target = 30 * time.Second
		}, false},
		{"target too large", func(s *session.Session) {
			s.Target = 200 * time.Minute
		}, false},
		{"end before start", func(s *session.Session) {
			s.EndTime = start.Add(-time.Minute)
		}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sess := valid()
			tc.mutate(&sess)

			if got := sess.Valid(); got != tc.want {
				t.Fatalf("Valid() = %v, want %v", got, tc.want)
			}
		})
	}

	var nilSess *session.Session
	if nilSess.Valid() {
		t.Fatal("nil session must be invalid")
	}
}
