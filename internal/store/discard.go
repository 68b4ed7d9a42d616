package store

import (
	"fmt"
	"time"
)

// Discard is the store used when the database cannot be opened. Reads
// report no data and writes succeed without keeping anything.
type Discard struct{}

func (Discard) CountSessions() (int, error) { return 0, nil }

func (Discard) GetSetting(key string) (string, error) {
	return "", fmt.Errorf("get setting %q: %w", key, ErrSettingNotFound)
}

func (Discard) SaveSettings(theme string, minutes int) error { return nil }

func (Discard) CompleteSession(minutes int, _ string) (*Session, error) {
	return &Session{CompletedAt: time.Now().UTC(), DurationMinutes: minutes}, nil
}

func (Discard) ListSessions(SessionFilter) ([]Session, error)          { return nil, nil }
func (Discard) GetDailyCounts(from, to time.Time) ([]DailyCount, error) { return nil, nil }
func (Discard) Persistent() bool                                        { return false }
func (Discard) Close() error                                            { return nil }
