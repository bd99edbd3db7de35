package store

import (
	"encoding/json"
	"time"

	"github.com/cadence-cli/cadence/config"
	"github.com/cadence-cli/cadence/engine"
)

// snapshotV0 is the original snapshot schema. It predates the version
// field and stored the cycle counters under the timer's own field names,
// with no statistics.
type snapshotV0 struct {
	Opts          *config.Config `json:"opts"`
	WorkCycle     int            `json:"work_cycle"`
	CompletedWork int            `json:"completed_work"`
}

// snapshotV1 introduced the version field and cycle naming but kept the
// statistics flattened, with the work total in whole seconds.
type snapshotV1 struct {
	Config           *config.Config `json:"config"`
	Version          int            `json:"version"`
	CycleIndex       int            `json:"cycle_index"`
	CompletedCycles  int            `json:"completed_cycles"`
	WorkStarted      int            `json:"work_started"`
	WorkCompleted    int            `json:"work_completed"`
	Skipped          int            `json:"skipped"`
	TotalWorkSeconds int64          `json:"total_work_seconds"`
}

// migrateSnapshot upgrades a raw snapshot blob of any known version to the
// current schema. Unknown fields are ignored and missing fields keep their
// zero defaults, so loading never hard-fails on shape alone.
func migrateSnapshot(raw []byte) (*engine.Snapshot, error) {
	var probe struct {
		Version int `json:"version"`
	}

	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, engine.ErrIntegrity.Fmt("snapshot")
	}

	switch probe.Version {
	case 0:
		return migrateV0(raw)
	case 1:
		return migrateV1(raw)
	default:
		var snap engine.Snapshot

		if err := json.Unmarshal(raw, &snap); err != nil {
			return nil, engine.ErrIntegrity.Fmt("snapshot")
		}

		return &snap, nil
	}
}

func migrateV0(raw []byte) (*engine.Snapshot, error) {
	var old snapshotV0

	if err := json.Unmarshal(raw, &old); err != nil {
		return nil, engine.ErrIntegrity.Fmt("snapshot")
	}

	return &engine.Snapshot{
		Version:         engine.SnapshotVersion,
		Config:          old.Opts,
		CycleIndex:      old.WorkCycle,
		CompletedCycles: old.CompletedWork,
		Stats: engine.Stats{
			WorkStarted:   old.WorkCycle,
			WorkCompleted: old.CompletedWork,
		},
	}, nil
}

func migrateV1(raw []byte) (*engine.Snapshot, error) {
	var old snapshotV1

	if err := json.Unmarshal(raw, &old); err != nil {
		return nil, engine.ErrIntegrity.Fmt("snapshot")
	}

	return &engine.Snapshot{
		Version:         engine.SnapshotVersion,
		Config:          old.Config,
		CycleIndex:      old.CycleIndex,
		CompletedCycles: old.CompletedCycles,
		Stats: engine.Stats{
			WorkStarted:   old.WorkStarted,
			WorkCompleted: old.WorkCompleted,
			Skipped:       old.Skipped,
			TotalWork:     time.Duration(old.TotalWorkSeconds) * time.Second,
		},
	}, nil
}
