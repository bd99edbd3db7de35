package engine

import (
	"log/slog"
	"time"

	"github.com/cadence-cli/cadence/config"
)

// defaultFlushInterval is the debounce window between snapshot flushes.
const defaultFlushInterval = 30 * time.Second

// SnapshotVersion is the current snapshot schema version.
const SnapshotVersion = 2

// Snapshot is the durable subset of engine state: configuration and cycle
// counters, deliberately excluding fine-grained per-session state. An
// in-progress session is therefore not restorable across a full process
// restart; only the counters and configuration are.
type Snapshot struct {
	Config          *config.Config `json:"config,omitempty"`
	Version         int            `json:"version"`
	CycleIndex      int            `json:"cycle_index"`
	CompletedCycles int            `json:"completed_cycles"`
	Stats           Stats          `json:"stats"`
}

// Valid performs structural integrity checks on a loaded snapshot.
func (s *Snapshot) Valid() bool {
	if s == nil {
		return false
	}

	if s.Version < 0 || s.Version > SnapshotVersion {
		return false
	}

	if s.CycleIndex < 0 || s.CompletedCycles < 0 {
		return false
	}

	return s.Stats.WorkStarted >= 0 && s.Stats.WorkCompleted >= 0
}

// Snapshot assembles the current durable state.
func (e *Engine) Snapshot() *Snapshot {
	return &Snapshot{
		Version:         SnapshotVersion,
		Config:          e.cfg,
		CycleIndex:      e.cycleIndex,
		CompletedCycles: e.completedCycles,
		Stats:           e.stats,
	}
}

// coordinator tracks a dirty flag and flushes snapshots on a debounced
// interval, independent of per-second session state.
type coordinator struct {
	snapshots SnapshotStore
	log       *slog.Logger
	lastFlush time.Time
	interval  time.Duration
	dirty     bool
}

func newCoordinator(
	snapshots SnapshotStore,
	interval time.Duration,
	log *slog.Logger,
) *coordinator {
	return &coordinator{
		snapshots: snapshots,
		interval:  interval,
		log:       log,
	}
}

func (c *coordinator) markDirty() {
	c.dirty = true
}

// load fetches the persisted snapshot. A missing snapshot yields nil
// without error.
func (c *coordinator) load() (*Snapshot, error) {
	if c.snapshots == nil {
		return nil, nil
	}

	return c.snapshots.LoadSnapshot()
}

// maybeFlush saves the snapshot when dirty and outside the debounce
// window.
func (c *coordinator) maybeFlush(now time.Time, snap *Snapshot) {
	if !c.dirty || c.snapshots == nil {
		return
	}

	if !c.lastFlush.IsZero() && now.Sub(c.lastFlush) < c.interval {
		return
	}

	c.flush(now, snap)
}

// flush saves the snapshot unconditionally while dirty.
func (c *coordinator) flush(now time.Time, snap *Snapshot) {
	if !c.dirty || c.snapshots == nil {
		return
	}

	if err := c.snapshots.SaveSnapshot(snap); err != nil {
		c.log.Error("saving snapshot failed", "error", err)
		return
	}

	c.dirty = false
	c.lastFlush = now
}
