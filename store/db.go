package store

import (
	"time"

	"github.com/cadence-cli/cadence/engine"
	"github.com/cadence-cli/cadence/internal/session"
)

// DB is the database storage interface.
type DB interface {
	engine.Recorder
	engine.SnapshotStore

	// GetSessions returns recorded sessions according to the time and tag
	// constraints.
	GetSessions(
		startTime, endTime time.Time,
		tags []string,
	) ([]session.Session, error)
	// DeleteSessions deletes one or more recorded sessions.
	DeleteSessions(sessions []session.Session) error
	// Close ends the database connection.
	Close() error
	// Open begins a database connection.
	Open() error
}
