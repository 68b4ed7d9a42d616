package pomodoro

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/sadopc/antiprocrastinator/internal/store"
)

// Session length bounds in minutes.
const (
	MinMinutes = 5
	MaxMinutes = 60
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

var (
	ErrWriteFailed     = errors.New("could not save progress")
	ErrInvalidDuration = errors.New("duration out of range")
	ErrInvalidTheme    = errors.New("unknown theme")
)

// Options are the values used when the store has none.
type Options struct {
	Theme   string
	Minutes int
}

// Completion describes one finished countdown.
type Completion struct {
	Session  *store.Session
	Sessions int
	Unlocked int
	Total    int
	Index    int // index of the quote unlocked by this session, -1 if none
	Quote    string
}

func (c Completion) NewQuote() bool { return c.Index >= 0 }

// Snapshot is the read-only view handed to the presentation layer.
type Snapshot struct {
	State      State
	Remaining  time.Duration
	Minutes    int
	Theme      string
	Sessions   int
	Unlocked   int
	Total      int
	Persistent bool
}

// Session drives one Timer and advances Progress each time the countdown
// expires. It is not safe for concurrent use; all calls are expected to come
// from the UI event loop.
type Session struct {
	store    ProgressStore
	timer    *Timer
	progress *Progress
	theme    string
	minutes  int
}

// Load restores progress and settings from st. Read failures are logged and
// treated as "no data yet".
func Load(st ProgressStore, quotes []string, opts Options) *Session {
	count, err := st.CountSessions()
	if err != nil {
		log.Printf("warning: %v", err)
		count = 0
	}

	theme := NormalizeTheme(opts.Theme)
	if v, err := st.GetSetting(store.KeyTheme); err == nil {
		theme = NormalizeTheme(v)
	}

	minutes := ClampMinutes(opts.Minutes)
	if v, err := st.GetSetting(store.KeyDuration); err == nil {
		if n, err := strconv.Atoi(v); err == nil {
			minutes = ClampMinutes(n)
		}
	}

	s := &Session{
		store:    st,
		timer:    NewTimer(time.Duration(minutes) * time.Minute),
		progress: NewProgress(quotes, count),
		theme:    theme,
		minutes:  minutes,
	}
	log.Printf("progress loaded: sessions=%d unlocked=%d total=%d",
		s.progress.Sessions(), s.progress.Unlocked(), s.progress.Total())
	return s
}

func (s *Session) Start() bool { return s.timer.Start() }
func (s *Session) Pause() bool { return s.timer.Pause() }
func (s *Session) Reset()      { s.timer.Reset() }

func (s *Session) State() State             { return s.timer.State() }
func (s *Session) Remaining() time.Duration { return s.timer.Remaining() }
func (s *Session) Theme() string            { return s.theme }
func (s *Session) Minutes() int             { return s.minutes }
func (s *Session) Quotes() []Quote          { return s.progress.Quotes() }
func (s *Session) Progress() *Progress      { return s.progress }
func (s *Session) Persistent() bool         { return s.store.Persistent() }

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:      s.timer.State(),
		Remaining:  s.timer.Remaining(),
		Minutes:    s.minutes,
		Theme:      s.theme,
		Sessions:   s.progress.Sessions(),
		Unlocked:   s.progress.Unlocked(),
		Total:      s.progress.Total(),
		Persistent: s.store.Persistent(),
	}
}

// Tick advances the countdown by one second. When it expires the session is
// recorded and the next quote unlocked. If the record cannot be written the
// returned error wraps ErrWriteFailed and no counter moves. Either way the
// timer is re-armed to the full duration.
func (s *Session) Tick() (*Completion, error) {
	if !s.timer.Tick() {
		return nil, nil
	}
	defer s.timer.Reset()
	return s.complete()
}

func (s *Session) complete() (*Completion, error) {
	rec, err := s.store.CompleteSession(s.minutes, s.theme)
	if err != nil {
		log.Printf("warning: record session: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	c := &Completion{Session: rec, Index: -1}
	if idx, ok := s.progress.Advance(); ok {
		c.Index = idx
		c.Quote = s.progress.quotes[idx]
	}
	c.Sessions = s.progress.Sessions()
	c.Unlocked = s.progress.Unlocked()
	c.Total = s.progress.Total()

	log.Printf("session completed: sessions=%d unlocked=%d/%d", c.Sessions, c.Unlocked, c.Total)
	return c, nil
}

// SetSettings validates theme and minutes, saves both in one write and only
// then applies them. On any error neither value changes. A running countdown
// keeps its length until it ends or is reset.
func (s *Session) SetSettings(theme string, minutes int) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, theme)
	}
	if minutes < MinMinutes || minutes > MaxMinutes {
		return fmt.Errorf("%w: %d minutes (allowed %d-%d)", ErrInvalidDuration, minutes, MinMinutes, MaxMinutes)
	}
	if err := s.store.SaveSettings(theme, minutes); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	s.theme = theme
	if minutes != s.minutes {
		s.minutes = minutes
		s.timer.SetDuration(time.Duration(minutes) * time.Minute)
	}
	return nil
}

// SetDuration changes only the session length.
func (s *Session) SetDuration(minutes int) error {
	return s.SetSettings(s.theme, minutes)
}

// SetTheme changes only the theme.
func (s *Session) SetTheme(theme string) error {
	return s.SetSettings(theme, s.minutes)
}

// Save writes the current settings.
func (s *Session) Save() error {
	if err := s.store.SaveSettings(s.theme, s.minutes); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}

// NormalizeTheme maps anything other than "dark" to "light".
func NormalizeTheme(theme string) string {
	if theme == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// ClampMinutes bounds a session length to [MinMinutes, MaxMinutes].
func ClampMinutes(n int) int {
	return max(MinMinutes, min(n, MaxMinutes))
}
