// Package store persists session records and engine snapshots in a Bolt
// database.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"slices"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/cadence-cli/cadence/engine"
	"github.com/cadence-cli/cadence/internal/session"
	"github.com/cadence-cli/cadence/internal/timeutil"
)

const (
	sessionBucket = "sessions"
	stateBucket   = "state"
)

// snapshotKey is the single key under which the engine snapshot lives.
var snapshotKey = []byte("snapshot")

var errCadenceRunning = errors.New(
	"is Cadence already running? Only one instance can be active at a time",
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
	path string
}

// Record stores a finalized session, keyed by its start time.
func (c *Client) Record(sess *session.Session) error {
	if !sess.Valid() {
		return engine.ErrIntegrity.Fmt("session")
	}

	value, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).
			Put(timeutil.ToKey(sess.StartTime), value)
	})
}

// SaveSnapshot overwrites the persisted engine snapshot.
func (c *Client) SaveSnapshot(snap *engine.Snapshot) error {
	value, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(stateBucket)).Put(snapshotKey, value)
	})
}

// LoadSnapshot retrieves the persisted engine snapshot, migrating older
// schema versions. A missing snapshot yields nil without error; a snapshot
// that fails structural validation yields ErrIntegrity.
func (c *Client) LoadSnapshot() (*engine.Snapshot, error) {
	var raw []byte

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(stateBucket)).Get(snapshotKey)
		if v != nil {
			raw = bytes.Clone(v)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if raw == nil {
		return nil, nil
	}

	snap, err := migrateSnapshot(raw)
	if err != nil {
		return nil, err
	}

	if !snap.Valid() {
		return nil, engine.ErrIntegrity.Fmt("snapshot")
	}

	return snap, nil
}

// GetSessions returns the sessions recorded between startTime and endTime,
// optionally restricted to those carrying one of the given tags.
func (c *Client) GetSessions(
	startTime, endTime time.Time,
	tags []string,
) ([]session.Session, error) {
	var result []session.Session

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(sessionBucket)).Cursor()
		min := timeutil.ToKey(startTime)
		max := timeutil.ToKey(endTime)

		for k, v := cur.Seek(min); k != nil && bytes.Compare(k, max) <= 0; k, v = cur.Next() {
			var sess session.Session

			err := json.Unmarshal(v, &sess)
			if err != nil {
				return err
			}

			if !sess.Valid() {
				return engine.ErrIntegrity.Fmt("session")
			}

			if len(tags) != 0 && !matchesTags(&sess, tags) {
				continue
			}

			result = append(result, sess)
		}

		return nil
	})

	return result, err
}

func matchesTags(sess *session.Session, tags []string) bool {
	for _, t := range sess.Tags {
		if slices.Contains(tags, t) {
			return true
		}
	}

	return false
}

// DeleteSessions deletes one or more recorded sessions.
func (c *Client) DeleteSessions(sessions []session.Session) error {
	return c.Update(func(tx *bolt.Tx) error {
		for i := range sessions {
			err := tx.Bucket([]byte(sessionBucket)).
				Delete(timeutil.ToKey(sessions[i].StartTime))
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// Open re-establishes the database connection after a Close.
func (c *Client) Open() error {
	db, err := openDB(c.path)
	if err != nil {
		return err
	}

	c.DB = db

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(path string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		path,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errCadenceRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist
	// already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(sessionBucket))
		if err != nil {
			return err
		}

		_, err = tx.CreateBucketIfNotExists([]byte(stateBucket))

		return err
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		DB:   db,
		path: dbPath,
	}, nil
}
