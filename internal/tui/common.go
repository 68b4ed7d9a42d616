package tui

import (
	"fmt"
	"time"

	"github.com/sadopc/antiprocrastinator/internal/pomodoro"
	"github.com/sadopc/antiprocrastinator/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewTimer viewState = iota
	viewQuotes
	viewStats
	viewSettings
)

var viewNames = []string{"Timer", "Quotes", "Stats", "Settings"}

// History is the read side of the store used by the stats view and export.
type History interface {
	ListSessions(f store.SessionFilter) ([]store.Session, error)
	GetDailyCounts(from, to time.Time) ([]store.DailyCount, error)
}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time

type revealStage int

const (
	revealNone revealStage = iota
	revealFlash
	revealQuote
)

// revealMsg moves the completion reveal of completion seq to stage.
type revealMsg struct {
	seq   int
	stage revealStage
}

type exportDoneMsg struct {
	path string
}

type themeChangedMsg struct {
	theme string
}

// --- Helpers ---

func formatMinutes(mins int) string {
	if mins < 60 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dh %02dm", mins/60, mins%60)
}

func quoteTexts(s *pomodoro.Session) []string {
	qs := s.Quotes()
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.Text
	}
	return out
}
