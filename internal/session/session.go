// Package session defines focus and break sessions.
package session

import "time"

// Phase is the category of a timer interval.
type Phase string

const (
	Work       Phase = "work"
	ShortBreak Phase = "short_break"
	LongBreak  Phase = "long_break"
	Focus      Phase = "focus"
)

// Duration bounds for each phase. Custom and configured durations outside
// these bounds are rejected.
const (
	MinDuration     = 1 * time.Minute
	MaxWorkDuration = 180 * time.Minute
	MaxShortBreak   = 60 * time.Minute
	MaxLongBreak    = 120 * time.Minute
)

// Valid reports whether p is a known phase.
func (p Phase) Valid() bool {
	switch p {
	case Work, ShortBreak, LongBreak, Focus:
		return true
	}

	return false
}

// IsBreak reports whether p is a break phase.
func (p Phase) IsBreak() bool {
	return p == ShortBreak || p == LongBreak
}

// Pomodoro reports whether p participates in the pomodoro cycle. The
// standalone focus phase does not.
func (p Phase) Pomodoro() bool {
	return p != Focus
}

// Bounds returns the minimum and maximum allowed target duration for p.
func (p Phase) Bounds() (min, max time.Duration) {
	switch p {
	case ShortBreak:
		return MinDuration, MaxShortBreak
	case LongBreak:
		return MinDuration, MaxLongBreak
	default:
		return MinDuration, MaxWorkDuration
	}
}

// String returns the display name for the phase.
func (p Phase) String() string {
	switch p {
	case Work:
		return "Work session"
	case ShortBreak:
		return "Short break"
	case LongBreak:
		return "Long break"
	case Focus:
		return "Focus session"
	}

	return string(p)
}

// Session represents a single work, break, or focus interval. It is created
// by the engine's session factory when a phase starts and mutated only by
// the state machine. The start time doubles as the durable identifier.
type Session struct {
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Phase     Phase         `json:"phase"`
	Project   string        `json:"project,omitempty"`
	Note      string        `json:"note,omitempty"`
	Tags      []string      `json:"tags,omitempty"`
	Target    time.Duration `json:"target"`
	Elapsed   time.Duration `json:"elapsed"`
	Pomodoro  bool          `json:"pomodoro"`
	Completed bool          `json:"completed"`
	Paused    bool          `json:"paused"`
}

// Valid performs structural integrity checks on a session. It is used
// defensively on any session loaded from an external source.
func (s *Session) Valid() bool {
	if s == nil {
		return false
	}

	if !s.Phase.Valid() {
		return false
	}

	if s.StartTime.IsZero() {
		return false
	}

	min, max := s.Phase.Bounds()
	if s.Target < min || s.Target > max {
		return false
	}

	if !s.EndTime.IsZero() && s.EndTime.Before(s.StartTime) {
		return false
	}

	return true
}
