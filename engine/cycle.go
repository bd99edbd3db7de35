package engine

import (
	"time"

	"github.com/cadence-cli/cadence/config"
	"github.com/cadence-cli/cadence/internal/session"
	"github.com/cadence-cli/cadence/internal/timeutil"
)

// NextPhase decides the phase that follows the current one. After a work
// phase, a long break is due exactly when the cycle index is a multiple of
// the long break interval; otherwise a short break follows. After any other
// phase the next one is always work.
//
// The cycle index increments when a work phase starts, not when it
// finishes, so the cadence for the upcoming break is settled before the
// work session's outcome is known.
func NextPhase(
	cycleIndex int,
	current session.Phase,
	cfg *config.Config,
) session.Phase {
	if current != session.Work {
		return session.Work
	}

	interval := cfg.Settings.LongBreakInterval
	if interval > 0 && cycleIndex%interval == 0 {
		return session.LongBreak
	}

	return session.ShortBreak
}

// DailyGoalProgress returns the percentage of the daily session goal
// reached, clamped to [0, 100]. A goal of zero disables goal tracking and
// always yields zero.
func DailyGoalProgress(completedToday, dailyGoal int) float64 {
	if dailyGoal <= 0 {
		return 0
	}

	progress := float64(completedToday) / float64(dailyGoal) * 100

	if progress < 0 {
		return 0
	}

	if progress > 100 {
		return 100
	}

	return progress
}

// Stats accumulates totals across work sessions.
type Stats struct {
	WorkStarted   int           `json:"work_started"`
	WorkCompleted int           `json:"work_completed"`
	Skipped       int           `json:"skipped"`
	TotalWork     time.Duration `json:"total_work"`
}

// CompletionRate returns the percentage of started work sessions that
// completed normally.
func (s Stats) CompletionRate() float64 {
	if s.WorkStarted == 0 {
		return 0
	}

	return float64(s.WorkCompleted) / float64(s.WorkStarted) * 100
}

// finishPhase settles the bookkeeping for a session that just ended,
// announces the transition, returns the engine to Idle, and honors the
// auto-start policy.
func (e *Engine) finishPhase(
	sess *session.Session,
	completedNormally bool,
	now time.Time,
) error {
	if sess.Phase == session.Work {
		e.stats.TotalWork += sess.Elapsed

		if completedNormally {
			e.stats.WorkCompleted++
			e.completedCycles++
			e.recordWorkToday(now)
		}
	}

	if sess.Phase.Pomodoro() {
		e.next = NextPhase(e.cycleIndex, sess.Phase, e.cfg)
	}

	next := e.next

	// fire and forget: the engine never awaits the notification port
	go e.notifier.OnPhaseTransition(sess.Phase, next)

	e.state = StateIdle
	e.current = nil
	e.pausedAt = time.Time{}
	e.coord.markDirty()

	if e.autoStart(sess.Phase) {
		return e.Start(now, next)
	}

	return nil
}

// autoStart reports whether the phase that follows finished should start
// without user interaction. Standalone focus sessions never chain.
func (e *Engine) autoStart(finished session.Phase) bool {
	switch {
	case finished == session.Work:
		return e.cfg.Settings.AutoStartBreak
	case finished.IsBreak():
		return e.cfg.Settings.AutoStartWork
	default:
		return false
	}
}

// recordWorkToday advances the daily goal counter, resetting it when the
// calendar day has changed since the last completed work session.
func (e *Engine) recordWorkToday(now time.Time) {
	if !e.goalDay.IsZero() && !timeutil.SameDay(e.goalDay, now) {
		e.workToday = 0
	}

	e.goalDay = now
	e.workToday++
}
