package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/antiprocrastinator/internal/pomodoro"
)

// How long the unlock flash shows, then how long the new quote stays
// highlighted after it.
var (
	flashDuration  = 1200 * time.Millisecond
	revealDuration = 2500 * time.Millisecond
)

const firstSessionHint = "Finish your first session to unlock a quote"

// timerModel shows the countdown and the quote unlocked most recently.
type timerModel struct {
	session *pomodoro.Session
	width   int
	height  int

	reveal    revealStage
	revealSeq int
	last      *pomodoro.Completion
}

func newTimerModel(s *pomodoro.Session) timerModel {
	return timerModel{session: s}
}

func (t *timerModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t timerModel) update(msg tea.Msg) (timerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return t.tick()

	case revealMsg:
		if msg.seq != t.revealSeq {
			return t, nil
		}
		t.reveal = msg.stage
		if msg.stage == revealQuote {
			return t, revealAfter(revealDuration, msg.seq, revealNone)
		}
		return t, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Start):
			if t.session.Start() {
				return t, status("Session started")
			}
		case key.Matches(msg, keys.Pause):
			if t.session.State() == pomodoro.Paused {
				t.session.Start()
				return t, status("Resumed")
			}
			if t.session.Pause() {
				return t, status("Paused")
			}
		case key.Matches(msg, keys.Reset):
			t.session.Reset()
			return t, status("Timer reset")
		}
	}
	return t, nil
}

func (t timerModel) tick() (timerModel, tea.Cmd) {
	c, err := t.session.Tick()
	if err != nil {
		return t, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Error: %v. Run another session to retry.", err), isError: true}
		}
	}
	if c == nil {
		return t, nil
	}

	t.last = c
	summary := fmt.Sprintf("Session complete! You finished %d sessions and unlocked %d of %d quotes \a",
		c.Sessions, c.Unlocked, c.Total)
	if !c.NewQuote() {
		t.reveal = revealNone
		return t, status(summary)
	}

	t.revealSeq++
	t.reveal = revealFlash
	seq := t.revealSeq
	return t, tea.Batch(status(summary), revealAfter(flashDuration, seq, revealQuote))
}

func revealAfter(d time.Duration, seq int, stage revealStage) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return revealMsg{seq: seq, stage: stage}
	})
}

func status(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}

func (t timerModel) view() string {
	w := t.width - 4
	snap := t.session.Snapshot()

	title := titleStyle.Render("Focus Session")
	clock := pomodoro.FormatClock(snap.Remaining)

	var timeDisplay, indicator string
	switch snap.State {
	case pomodoro.Running:
		timeDisplay = timerRunningStyle.Width(w - 6).Render(clock)
		indicator = successStyle.Render("●  RUNNING")
	case pomodoro.Paused:
		timeDisplay = timerPausedStyle.Width(w - 6).Render(clock)
		indicator = warningStyle.Render("⏸  PAUSED")
	default:
		timeDisplay = timerStyle.Width(w - 6).Render(clock)
		indicator = mutedStyle.Render("■  READY")
	}

	counter := mutedStyle.Render(fmt.Sprintf("Sessions completed: %d   Quotes: %d/%d   Length: %d min",
		snap.Sessions, snap.Unlocked, snap.Total, snap.Minutes))

	rows := []string{title, "", timeDisplay, indicator, "", counter, "", t.renderQuote(w - 6)}
	if !snap.Persistent {
		rows = append(rows, "", warningStyle.Render("Progress is not being saved this run"))
	}

	var controls string
	switch snap.State {
	case pomodoro.Running:
		controls = mutedStyle.Render("space: pause  r: reset")
	case pomodoro.Paused:
		controls = mutedStyle.Render("space/s: resume  r: reset")
	default:
		controls = mutedStyle.Render("s: start  q: quit")
	}
	rows = append(rows, "", controls)

	style := panelStyle
	if snap.State == pomodoro.Running {
		style = activePanelStyle
	}
	return style.Width(w).Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}

func (t timerModel) renderQuote(w int) string {
	quoteStyle := lipgloss.NewStyle().Width(max(w, 10)).Align(lipgloss.Center)

	switch t.reveal {
	case revealFlash:
		return quoteStyle.Inherit(accentStyle).Bold(true).Render("✨ New quote unlocked!")
	case revealQuote:
		if t.last != nil {
			return quoteStyle.Inherit(highlightStyle).Bold(true).Render("“" + t.last.Quote + "”")
		}
	}

	latest, ok := t.session.Progress().Latest()
	if !ok {
		return quoteStyle.Inherit(mutedStyle).Render(firstSessionHint)
	}
	return quoteStyle.Inherit(normalItemStyle).Italic(true).Render("“" + latest + "”")
}
