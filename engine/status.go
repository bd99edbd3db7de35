package engine

import (
	"time"

	"github.com/cadence-cli/cadence/internal/session"
)

// Status is a read-only projection of the engine for hosts and external
// tooling (e.g. the status file).
type Status struct {
	EndTime           time.Time     `json:"end_time"`
	State             State         `json:"state"`
	Phase             session.Phase `json:"phase,omitempty"`
	NextPhase         session.Phase `json:"next_phase"`
	Tags              []string      `json:"tags,omitempty"`
	Elapsed           time.Duration `json:"elapsed"`
	Remaining         time.Duration `json:"remaining"`
	Overtime          time.Duration `json:"overtime"`
	Progress          float64       `json:"progress"`
	GoalProgress      float64       `json:"goal_progress"`
	CycleIndex        int           `json:"cycle_index"`
	LongBreakInterval int           `json:"long_break_interval"`
	CompletedCycles   int           `json:"completed_cycles"`
	DailyGoal         int           `json:"daily_goal"`
	IsOvertime        bool          `json:"is_overtime"`
	OvertimeExceeded  bool          `json:"overtime_exceeded"`
}

// Status projects the engine's observable state at the given time.
func (e *Engine) Status(now time.Time) Status {
	st := Status{
		State:             e.state,
		NextPhase:         e.NextPhase(),
		CycleIndex:        e.cycleIndex,
		LongBreakInterval: e.cfg.Settings.LongBreakInterval,
		CompletedCycles:   e.completedCycles,
		DailyGoal:         e.cfg.Settings.DailyGoal,
		GoalProgress: DailyGoalProgress(
			e.workToday,
			e.cfg.Settings.DailyGoal,
		),
	}

	if e.current == nil {
		return st
	}

	allowance := time.Duration(e.cfg.Settings.OvertimeMinutes) * time.Minute

	elapsed := e.Elapsed(now)

	st.Phase = e.current.Phase
	st.Tags = e.current.Tags
	// projected from remaining, not start+target, so it stays live while
	// the session is paused
	st.EndTime = now.Add(e.Remaining(now))
	st.Elapsed = elapsed
	st.Remaining = e.Remaining(now)
	st.Progress = e.Progress(now)
	st.IsOvertime = elapsed > e.current.Target

	if overtime := elapsed - e.current.Target; overtime > 0 {
		st.Overtime = overtime
	}

	st.OvertimeExceeded = st.Overtime > allowance

	return st
}
