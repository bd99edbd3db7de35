package engine

import (
	"time"

	"github.com/cadence-cli/cadence/config"
	"github.com/cadence-cli/cadence/internal/session"
)

// SessionOption customizes a session created by NewSession.
type SessionOption func(*session.Session)

// WithProject associates the session with a project reference.
func WithProject(project string) SessionOption {
	return func(s *session.Session) {
		s.Project = project
	}
}

// WithNote attaches a free-form description to the session.
func WithNote(note string) SessionOption {
	return func(s *session.Session) {
		s.Note = note
	}
}

// WithTags replaces the session's tag set.
func WithTags(tags ...string) SessionOption {
	return func(s *session.Session) {
		s.Tags = tags
	}
}

// WithMinutes overrides the configured target duration.
func WithMinutes(minutes int) SessionOption {
	return func(s *session.Session) {
		s.Target = time.Duration(minutes) * time.Minute
	}
}

// NewSession builds a session for the given phase. The target duration is
// resolved from the configuration unless overridden through WithMinutes;
// either way the result must fall within the phase's allowed range.
func NewSession(
	start time.Time,
	phase session.Phase,
	cfg *config.Config,
	opts ...SessionOption,
) (*session.Session, error) {
	sess := &session.Session{
		StartTime: start,
		Phase:     phase,
		Target:    time.Duration(cfg.Minutes(phase)) * time.Minute,
		Tags:      cfg.Tags,
		Pomodoro:  phase.Pomodoro(),
	}

	for _, opt := range opts {
		opt(sess)
	}

	min, max := phase.Bounds()
	if sess.Target < min || sess.Target > max {
		return nil, ErrDuration.Fmt(
			phase,
			int(min.Minutes()),
			int(max.Minutes()),
		)
	}

	return sess, nil
}
