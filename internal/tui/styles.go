package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/antiprocrastinator/internal/pomodoro"
)

type palette struct {
	primary   lipgloss.Color
	accent    lipgloss.Color
	muted     lipgloss.Color
	success   lipgloss.Color
	warning   lipgloss.Color
	err       lipgloss.Color
	fg        lipgloss.Color
	subtle    lipgloss.Color
	highlight lipgloss.Color
}

var palettes = map[string]palette{
	pomodoro.ThemeLight: {
		primary:   lipgloss.Color("#4B3FD8"),
		accent:    lipgloss.Color("#D6336C"),
		muted:     lipgloss.Color("#808080"),
		success:   lipgloss.Color("#1E8449"),
		warning:   lipgloss.Color("#B9770E"),
		err:       lipgloss.Color("#C0392B"),
		fg:        lipgloss.Color("#1F2335"),
		subtle:    lipgloss.Color("#C8CCD8"),
		highlight: lipgloss.Color("#2E5EAA"),
	},
	pomodoro.ThemeDark: {
		primary:   lipgloss.Color("#6C63FF"),
		accent:    lipgloss.Color("#FF6B6B"),
		muted:     lipgloss.Color("#666666"),
		success:   lipgloss.Color("#2ECC71"),
		warning:   lipgloss.Color("#F39C12"),
		err:       lipgloss.Color("#E74C3C"),
		fg:        lipgloss.Color("#C0CAF5"),
		subtle:    lipgloss.Color("#414868"),
		highlight: lipgloss.Color("#7AA2F7"),
	},
}

// Color palette
var (
	colorPrimary   lipgloss.Color
	colorAccent    lipgloss.Color
	colorMuted     lipgloss.Color
	colorSuccess   lipgloss.Color
	colorWarning   lipgloss.Color
	colorError     lipgloss.Color
	colorFg        lipgloss.Color
	colorSubtle    lipgloss.Color
	colorHighlight lipgloss.Color
)

// Styles
var (
	activeTabStyle    lipgloss.Style
	inactiveTabStyle  lipgloss.Style
	panelStyle        lipgloss.Style
	activePanelStyle  lipgloss.Style
	timerStyle        lipgloss.Style
	timerRunningStyle lipgloss.Style
	timerPausedStyle  lipgloss.Style
	titleStyle        lipgloss.Style
	accentStyle       lipgloss.Style
	successStyle      lipgloss.Style
	warningStyle      lipgloss.Style
	errorStyle        lipgloss.Style
	mutedStyle        lipgloss.Style
	highlightStyle    lipgloss.Style
	headerStyle       lipgloss.Style
	footerStyle       lipgloss.Style
	selectedItemStyle lipgloss.Style
	normalItemStyle   lipgloss.Style
)

func init() {
	applyTheme(pomodoro.ThemeLight)
}

// applyTheme rebuilds every style from the named palette. Unknown names use
// the light palette.
func applyTheme(name string) {
	p, ok := palettes[name]
	if !ok {
		p = palettes[pomodoro.ThemeLight]
	}

	colorPrimary = p.primary
	colorAccent = p.accent
	colorMuted = p.muted
	colorSuccess = p.success
	colorWarning = p.warning
	colorError = p.err
	colorFg = p.fg
	colorSubtle = p.subtle
	colorHighlight = p.highlight

	// Tabs
	activeTabStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorPrimary).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(colorPrimary).
		Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
		Foreground(colorMuted).
		Padding(0, 2)

	// Panels
	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSubtle).
		Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(1, 2)

	// Timer
	timerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorPrimary).
		Align(lipgloss.Center)

	timerRunningStyle = timerStyle.Foreground(colorSuccess)
	timerPausedStyle = timerStyle.Foreground(colorWarning)

	// Text
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorFg)
	accentStyle = lipgloss.NewStyle().Foreground(colorAccent)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	errorStyle = lipgloss.NewStyle().Foreground(colorError)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	highlightStyle = lipgloss.NewStyle().Foreground(colorHighlight)

	// Header/footer
	headerStyle = lipgloss.NewStyle().Padding(0, 1)
	footerStyle = lipgloss.NewStyle().
		Foreground(colorMuted).
		Padding(0, 1)

	// List items
	selectedItemStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)
	normalItemStyle = lipgloss.NewStyle().Foreground(colorFg)
}
