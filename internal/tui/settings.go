package tui

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/antiprocrastinator/internal/pomodoro"
)

var errDurationLocked = errors.New("cannot change the length while the timer is running")

type settingsModel struct {
	session *pomodoro.Session
	width   int
	height  int

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	theme   *string
	minutes *string
}

func newSettingsModel(s *pomodoro.Session) settingsModel {
	theme, minutes := "", ""
	return settingsModel{
		session: s,
		theme:   &theme,
		minutes: &minutes,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keys.Enter) {
		return s.showForm()
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	*s.theme = s.session.Theme()
	*s.minutes = strconv.Itoa(s.session.Minutes())

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Theme").
				Options(
					huh.NewOption("Light", pomodoro.ThemeLight),
					huh.NewOption("Dark", pomodoro.ThemeDark),
				).Value(s.theme),
			huh.NewInput().Title(fmt.Sprintf("Session length (%d-%d min)", pomodoro.MinMinutes, pomodoro.MaxMinutes)).
				Value(s.minutes).
				Validate(s.validateMinutes),
		).Title("Settings"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

// validateMinutes accepts a whole number of minutes in range. The current
// value is always accepted so the theme can change mid-session.
func (s settingsModel) validateMinutes(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return errors.New("enter a whole number of minutes")
	}
	if n < pomodoro.MinMinutes || n > pomodoro.MaxMinutes {
		return fmt.Errorf("must be between %d and %d", pomodoro.MinMinutes, pomodoro.MaxMinutes)
	}
	if n != s.session.Minutes() && s.session.State() == pomodoro.Running {
		return errDurationLocked
	}
	return nil
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		s.form = nil
		return s, s.apply()
	}

	return s, cmd
}

// apply saves theme and length together. A failed write leaves both
// untouched and the palette as it was.
func (s settingsModel) apply() tea.Cmd {
	if err := s.validateMinutes(*s.minutes); err != nil {
		return errStatus(err)
	}
	theme := *s.theme
	n, _ := strconv.Atoi(*s.minutes)

	themeChanged := theme != s.session.Theme()
	if err := s.session.SetSettings(theme, n); err != nil {
		return errStatus(err)
	}

	if !themeChanged {
		return status("Settings saved")
	}
	return tea.Sequence(
		func() tea.Msg { return themeChangedMsg{theme: theme} },
		status("Settings saved"),
	)
}

func errStatus(err error) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
	}
}

func (s settingsModel) view() string {
	w := s.width - 4
	title := titleStyle.Render("Settings")

	if s.formActive && s.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	label := lipgloss.NewStyle().Width(18)
	rows := []string{
		title,
		"",
		fmt.Sprintf("  %s %s", label.Render("Theme"), highlightStyle.Render(s.session.Theme())),
		fmt.Sprintf("  %s %s", label.Render("Session length"), highlightStyle.Render(fmt.Sprintf("%d min", s.session.Minutes()))),
	}
	if !s.session.Persistent() {
		rows = append(rows, "", warningStyle.Render("  Changes last until the app is closed"))
	}

	hint := "Press enter to edit settings"
	if s.session.State() == pomodoro.Running {
		hint = "Press enter to edit settings (length is locked while the timer runs)"
	}
	rows = append(rows, "", mutedStyle.Render(hint))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
