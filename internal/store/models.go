package store

import "time"

// Session is one completed countdown.
type Session struct {
	ID              int64
	CompletedAt     time.Time
	DurationMinutes int
}

// Well-known setting keys.
const (
	KeyTheme    = "theme"
	KeyDuration = "duration"
)

// SessionFilter is used to filter sessions in queries.
type SessionFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

// DailyCount is the number of sessions completed on one day.
type DailyCount struct {
	Date     string
	Sessions int
	Minutes  int
}
