package store

import (
	"database/sql"
	"fmt"
	"time"
)

// CompleteSession appends a session and saves theme and duration in the
// same transaction.
// The returned row is built from what was inserted, so a committed session
// is never reported as failed.
func (s *Store) CompleteSession(minutes int, theme string) (*Session, error) {
	var sess *Session
	err := s.withTx(func(tx *sql.Tx) error {
		var err error
		if sess, err = insertSessionTx(tx, minutes); err != nil {
			return err
		}
		return saveSettingsTx(tx, theme, minutes)
	})
	if err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}
	return sess, nil
}

func insertSessionTx(tx *sql.Tx, minutes int) (*Session, error) {
	now := time.Now().UTC().Truncate(time.Second)
	res, err := tx.Exec(
		`INSERT INTO sessions (completed_at, duration_minutes) VALUES (?, ?)`,
		now.Format(time.RFC3339), minutes,
	)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return &Session{ID: id, CompletedAt: now, DurationMinutes: minutes}, nil
}

func (s *Store) CountSessions() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}

func (s *Store) ListSessions(f SessionFilter) ([]Session, error) {
	query := `SELECT id, completed_at, duration_minutes FROM sessions WHERE 1=1`
	var args []any

	if f.From != nil {
		query += ` AND completed_at >= ?`
		args = append(args, f.From.UTC().Format(time.RFC3339))
	}
	if f.To != nil {
		query += ` AND completed_at < ?`
		args = append(args, f.To.UTC().Format(time.RFC3339))
	}
	query += ` ORDER BY id`
	if f.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var completedAt string
		if err := rows.Scan(&sess.ID, &completedAt, &sess.DurationMinutes); err != nil {
			return nil, err
		}
		sess.CompletedAt, _ = time.Parse(time.RFC3339, completedAt)
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// GetDailyCounts groups sessions completed in [from, to) by UTC day.
func (s *Store) GetDailyCounts(from, to time.Time) ([]DailyCount, error) {
	rows, err := s.db.Query(`
		SELECT date(completed_at) AS day, COUNT(*), COALESCE(SUM(duration_minutes), 0)
		FROM sessions
		WHERE completed_at >= ? AND completed_at < ?
		GROUP BY day
		ORDER BY day`,
		from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("daily counts: %w", err)
	}
	defer rows.Close()

	var counts []DailyCount
	for rows.Next() {
		var dc DailyCount
		if err := rows.Scan(&dc.Date, &dc.Sessions, &dc.Minutes); err != nil {
			return nil, err
		}
		counts = append(counts, dc)
	}
	return counts, rows.Err()
}
