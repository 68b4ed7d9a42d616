// Package pomodoro holds the countdown state machine and the unlock rules
// that turn completed sessions into revealed quotes.
package pomodoro

import "github.com/sadopc/antiprocrastinator/internal/store"

// ProgressStore is the part of the durable store a Session needs.
//
//go:generate mockgen -source=interface.go -destination=mock_store_test.go -package=pomodoro
type ProgressStore interface {
	CountSessions() (int, error)
	GetSetting(key string) (string, error)
	SaveSettings(theme string, minutes int) error
	CompleteSession(minutes int, theme string) (*store.Session, error)
	Persistent() bool
}

var (
	_ ProgressStore = (*store.Store)(nil)
	_ ProgressStore = store.Discard{}
)
