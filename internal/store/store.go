package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite"
)

const currentVersion = 1

// ErrUnavailable marks a store that could not be opened or initialised.
var ErrUnavailable = errors.New("progress store unavailable")

// Progress is the durable state the rest of the application works against.
// *Store persists to SQLite; Discard keeps nothing.
type Progress interface {
	CountSessions() (int, error)
	GetSetting(key string) (string, error)
	SaveSettings(theme string, minutes int) error
	CompleteSession(minutes int, theme string) (*Session, error)
	ListSessions(f SessionFilter) ([]Session, error)
	GetDailyCounts(from, to time.Time) ([]DailyCount, error)
	Persistent() bool
	Close() error
}

var (
	_ Progress = (*Store)(nil)
	_ Progress = Discard{}
)

// Defaults seeds the settings table the first time a database is created.
type Defaults struct {
	Theme           string
	DurationMinutes int
}

type Store struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at dbPath, runs migrations and
// inserts the default settings rows that are not there yet.
func New(dbPath string, defaults Defaults) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("%w: create db directory: %w", ErrUnavailable, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %w", ErrUnavailable, err)
	}

	db.SetMaxOpenConns(1)

	// Configure pragmas.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: exec pragma %q: %w", ErrUnavailable, p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: migrate: %w", ErrUnavailable, err)
	}
	if err := s.ensureDefaults(defaults); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: seed settings: %w", ErrUnavailable, err)
	}
	return s, nil
}

// NewMemory creates an in-memory store for testing.
func NewMemory() (*Store, error) {
	return New(":memory:", Defaults{Theme: "light", DurationMinutes: 25})
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Persistent() bool { return true }

func (s *Store) migrate() error {
	var version int
	err := s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	_, err = s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (s *Store) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS sessions (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		completed_at     TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now')),
		duration_minutes INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_completed ON sessions(completed_at);

	CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(ddl)
	return err
}

// ensureDefaults never overwrites values that are already stored.
func (s *Store) ensureDefaults(d Defaults) error {
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?), (?, ?)`,
		KeyTheme, d.Theme,
		KeyDuration, strconv.Itoa(d.DurationMinutes),
	)
	return err
}

// withTx runs fn in a transaction and rolls back if it returns an error.
func (s *Store) withTx(fn func(tx *sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
