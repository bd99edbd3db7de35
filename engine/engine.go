// Package engine implements the session state machine and pomodoro cycle
// scheduler behind the Cadence timer.
//
// The engine is single-threaded by contract: the host drives it from one
// goroutine through discrete transition calls and a periodic Tick. Every
// call that depends on the clock takes now as an explicit argument, so
// elapsed time is always derived from absolute timestamps and the engine
// stays correct across host suspension.
package engine

import (
	"errors"
	"log/slog"
	"time"

	"github.com/cadence-cli/cadence/config"
	"github.com/cadence-cli/cadence/internal/session"
	"github.com/cadence-cli/cadence/internal/timeutil"
)

// State is the timer's position in the session lifecycle.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
)

// Recorder receives each finalized session exactly once.
type Recorder interface {
	Record(sess *session.Session) error
}

// SnapshotStore persists the small durable subset of engine state.
type SnapshotStore interface {
	LoadSnapshot() (*Snapshot, error)
	SaveSnapshot(snap *Snapshot) error
}

// Notifier is told about phase transitions. Calls are fire-and-forget; the
// engine never waits on them.
type Notifier interface {
	OnPhaseTransition(finished, next session.Phase)
}

type noopNotifier struct{}

func (noopNotifier) OnPhaseTransition(_, _ session.Phase) {}

type noopRecorder struct{}

func (noopRecorder) Record(_ *session.Session) error { return nil }

// Options configures the collaborators injected into an Engine.
type Options struct {
	Recorder  Recorder
	Snapshots SnapshotStore
	Notifier  Notifier
	Logger    *slog.Logger
}

// Engine owns one session at a time and sequences sessions according to
// pomodoro cycle rules.
type Engine struct {
	cfg             *config.Config
	log             *slog.Logger
	rec             Recorder
	notifier        Notifier
	coord           *coordinator
	current         *session.Session
	state           State
	next            session.Phase
	pausedAt        time.Time
	goalDay         time.Time
	cycleIndex      int
	completedCycles int
	workToday       int
	stats           Stats
}

// New constructs an engine with the given configuration and collaborators.
// If a snapshot store is provided, the persisted cycle counters and
// statistics are restored; a snapshot that fails integrity checks is
// discarded in favor of a fresh state.
func New(cfg *config.Config, opts Options) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:      cfg,
		log:      opts.Logger,
		rec:      opts.Recorder,
		notifier: opts.Notifier,
		state:    StateIdle,
		next:     session.Work,
	}

	if e.log == nil {
		e.log = slog.Default()
	}

	if e.rec == nil {
		e.rec = noopRecorder{}
	}

	if e.notifier == nil {
		e.notifier = noopNotifier{}
	}

	e.coord = newCoordinator(opts.Snapshots, defaultFlushInterval, e.log)

	if err := e.restore(); err != nil {
		return nil, err
	}

	return e, nil
}

// restore loads the persisted snapshot, if any. Integrity failures fall
// back to a fresh state rather than propagating to the host.
func (e *Engine) restore() error {
	snap, err := e.coord.load()
	if err != nil {
		if errors.Is(err, ErrIntegrity) {
			e.log.Warn("discarding corrupt snapshot", "error", err)
			return nil
		}

		return err
	}

	if snap == nil {
		return nil
	}

	e.cycleIndex = snap.CycleIndex
	e.completedCycles = snap.CompletedCycles
	e.stats = snap.Stats
	e.next = NextPhase(e.cycleIndex, session.Work, e.cfg)

	if e.cycleIndex == 0 {
		e.next = session.Work
	}

	return nil
}

// Start begins a new session for the given phase. It fails with
// ErrAlreadyRunning unless the engine is idle.
func (e *Engine) Start(
	now time.Time,
	phase session.Phase,
	opts ...SessionOption,
) error {
	if !e.CanStart() {
		return ErrAlreadyRunning
	}

	sess, err := NewSession(now, phase, e.cfg, opts...)
	if err != nil {
		return err
	}

	if phase == session.Work {
		e.cycleIndex++
		e.stats.WorkStarted++
	}

	e.current = sess
	e.state = StateRunning
	e.pausedAt = time.Time{}
	e.coord.markDirty()

	return nil
}

// Recompute re-derives elapsed and remaining time from the session's
// absolute start timestamp. When the target is reached the session
// completes automatically. It is a no-op outside the Running state and is
// idempotent for a fixed now.
func (e *Engine) Recompute(now time.Time) {
	if e.state != StateRunning {
		return
	}

	if e.current.Target <= 0 {
		return
	}

	// Standalone focus sessions run until stopped; exceeding the target
	// only flags overtime.
	if e.current.Phase == session.Focus {
		return
	}

	remaining := timeutil.Remaining(e.current.StartTime, now, e.current.Target)
	if remaining == 0 {
		_ = e.complete(now, true)
	}
}

// Pause freezes the running session. In strict mode, work sessions cannot
// be paused.
func (e *Engine) Pause(now time.Time) error {
	if !e.CanPause() {
		return ErrInvalidTransition.Fmt("pause", e.state)
	}

	if e.cfg.Settings.Strict && e.current.Phase == session.Work {
		return ErrStrictMode
	}

	e.pausedAt = now
	e.current.Paused = true
	e.state = StatePaused
	e.coord.markDirty()

	return nil
}

// Resume continues a paused session. The session's start timestamp is
// shifted forward by the paused gap so subsequent recomputes exclude the
// paused time from elapsed.
func (e *Engine) Resume(now time.Time) error {
	if !e.CanResume() {
		return ErrInvalidTransition.Fmt("resume", e.state)
	}

	e.current.StartTime = e.current.StartTime.Add(now.Sub(e.pausedAt))
	e.pausedAt = time.Time{}
	e.current.Paused = false
	e.state = StateRunning
	e.coord.markDirty()

	return nil
}

// ExtendTarget adjusts the current session's target duration by
// deltaMinutes. The result is floored at one minute and may not exceed the
// phase's maximum. Elapsed time is unaffected, so remaining changes
// immediately.
func (e *Engine) ExtendTarget(deltaMinutes int) error {
	if e.state != StateRunning && e.state != StatePaused {
		return ErrInvalidTransition.Fmt("extend", e.state)
	}

	target := e.current.Target + time.Duration(deltaMinutes)*time.Minute
	if target < time.Minute {
		target = time.Minute
	}

	min, max := e.current.Phase.Bounds()
	if target > max {
		return ErrDuration.Fmt(
			e.current.Phase,
			int(min.Minutes()),
			int(max.Minutes()),
		)
	}

	e.current.Target = target
	e.coord.markDirty()

	return nil
}

// Stop finalizes the current session early. It counts as a normal
// completion only if the target had already been reached. Calling Stop
// while idle is a no-op.
func (e *Engine) Stop(now time.Time) error {
	if e.state == StateIdle {
		return nil
	}

	if !e.CanStop() {
		return ErrInvalidTransition.Fmt("stop", e.state)
	}

	reachedTarget := e.current.Target > 0 && e.Elapsed(now) >= e.current.Target

	return e.complete(now, reachedTarget)
}

// Skip abandons the current session and advances the cycle. Work sessions
// may always be skipped; break sessions only when allowed by
// configuration. A skipped session is recorded with zero duration and
// completed=false.
func (e *Engine) Skip(now time.Time) error {
	if e.state != StateRunning && e.state != StatePaused {
		return ErrInvalidTransition.Fmt("skip", e.state)
	}

	sess := e.current

	if sess.Phase.IsBreak() && !e.cfg.Settings.AllowSkipBreaks {
		return ErrSkipBreaks
	}

	sess.EndTime = now
	sess.Elapsed = 0
	sess.Completed = false
	sess.Paused = false
	e.stats.Skipped++

	if err := e.rec.Record(sess); err != nil {
		e.log.Error("recording skipped session failed", "error", err)
	}

	return e.finishPhase(sess, false, now)
}

// Reset discards the current session without recording it and returns the
// engine to Idle.
func (e *Engine) Reset() {
	e.current = nil
	e.pausedAt = time.Time{}
	e.state = StateIdle
	e.coord.markDirty()
}

// complete finalizes the current session, hands it to the recorder, and
// lets the cycle scheduler decide what happens next.
func (e *Engine) complete(now time.Time, completedNormally bool) error {
	sess := e.current

	sess.EndTime = now
	sess.Elapsed = e.Elapsed(now)
	sess.Completed = true
	sess.Paused = false
	e.state = StateCompleted

	if err := e.rec.Record(sess); err != nil {
		e.log.Error("recording session failed", "error", err)
	}

	return e.finishPhase(sess, completedNormally, now)
}

// Tick is the host's periodic callback: it recomputes the running session
// and gives the persistence coordinator a chance to flush.
func (e *Engine) Tick(now time.Time) {
	e.Recompute(now)
	e.coord.maybeFlush(now, e.Snapshot())
}

// Suspend flushes pending durable state immediately. The host calls it
// when it is about to stop ticking (backgrounded or exiting). No catch-up
// is needed on resume: a single Recompute with the current time suffices.
func (e *Engine) Suspend(now time.Time) {
	e.coord.flush(now, e.Snapshot())
}

// Predicates for callers to consult before invoking a transition.

func (e *Engine) CanStart() bool  { return e.state == StateIdle }
func (e *Engine) CanPause() bool  { return e.state == StateRunning }
func (e *Engine) CanResume() bool { return e.state == StatePaused }

func (e *Engine) CanStop() bool {
	return e.state == StateRunning || e.state == StatePaused
}

// State returns the engine's current lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Elapsed returns the whole seconds spent in the current session,
// excluding paused time. It is constant while paused and zero when idle.
func (e *Engine) Elapsed(now time.Time) time.Duration {
	switch e.state {
	case StateRunning, StateCompleted:
		return timeutil.Elapsed(e.current.StartTime, now)
	case StatePaused:
		return timeutil.Elapsed(e.current.StartTime, e.pausedAt)
	default:
		return 0
	}
}

// Remaining returns the time left until the current session's target,
// floored at zero.
func (e *Engine) Remaining(now time.Time) time.Duration {
	if e.current == nil {
		return 0
	}

	remaining := e.current.Target - e.Elapsed(now)
	if remaining < 0 {
		return 0
	}

	return remaining
}

// Progress returns the current session's completion percentage, capped at
// 100.
func (e *Engine) Progress(now time.Time) float64 {
	if e.current == nil || e.current.Target <= 0 {
		return 0
	}

	p := float64(e.Elapsed(now)) / float64(e.current.Target) * 100
	if p > 100 {
		p = 100
	}

	return p
}

// CycleIndex returns the index of the current pomodoro cycle. It
// increments each time a work phase starts.
func (e *Engine) CycleIndex() int {
	return e.cycleIndex
}

// CompletedCycles returns the number of work phases completed normally.
func (e *Engine) CompletedCycles() int {
	return e.completedCycles
}

// CurrentPhase returns the phase of the session in progress, or false when
// idle.
func (e *Engine) CurrentPhase() (session.Phase, bool) {
	if e.current == nil {
		return "", false
	}

	return e.current.Phase, true
}

// NextPhase returns the phase the scheduler will run next.
func (e *Engine) NextPhase() session.Phase {
	if e.current != nil && e.current.Phase.Pomodoro() {
		return NextPhase(e.cycleIndex, e.current.Phase, e.cfg)
	}

	return e.next
}

// Stats returns the accumulated session statistics.
func (e *Engine) Stats() Stats {
	return e.stats
}

// WorkCompletedToday returns the number of work sessions completed on the
// current goal day.
func (e *Engine) WorkCompletedToday() int {
	return e.workToday
}
