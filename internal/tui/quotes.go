package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/sadopc/antiprocrastinator/internal/pomodoro"
)

const lockedQuoteText = "This quote is still locked"

// quotesModel lists the whole collection in order with locked quotes masked.
type quotesModel struct {
	session *pomodoro.Session
	width   int
	height  int

	cursor int
}

func newQuotesModel(s *pomodoro.Session) quotesModel {
	return quotesModel{session: s}
}

func (q *quotesModel) setSize(w, h int) {
	q.width = w
	q.height = h
}

func (q quotesModel) update(msg tea.Msg) (quotesModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Up):
			if q.cursor > 0 {
				q.cursor--
			}
		case key.Matches(msg, keys.Down):
			if q.cursor < q.session.Progress().Total()-1 {
				q.cursor++
			}
		}
	}
	return q, nil
}

// visibleRows is how many quote lines fit in the panel.
func (q quotesModel) visibleRows() int {
	// border, padding, title, header, blank lines and footer
	return max(1, q.height-10)
}

func (q quotesModel) view() string {
	w := q.width - 4
	p := q.session.Progress()

	title := titleStyle.Render("Quote Collection")
	header := highlightStyle.Render(fmt.Sprintf("Unlocked %d of %d", p.Unlocked(), p.Total()))

	var rows []string
	rows = append(rows, title, header, "")

	items := p.Quotes()
	if len(items) == 0 {
		rows = append(rows, mutedStyle.Render("  No quotes available"))
	}

	start, end := q.window(len(items))
	lineWidth := max(w-12, 10)
	for i := start; i < end; i++ {
		item := items[i]
		cursor := "  "
		if i == q.cursor {
			cursor = "> "
		}

		var line string
		if item.Unlocked {
			text := ansi.Truncate(item.Text, lineWidth, "…")
			line = fmt.Sprintf("%s%2d. %s %s", cursor, i+1, successStyle.Render("✓"), text)
		} else {
			line = fmt.Sprintf("%s%2d. %s %s", cursor, i+1, mutedStyle.Render("?"), mutedStyle.Render(lockedQuoteText))
		}
		if i == q.cursor {
			line = selectedItemStyle.Render(line)
		}
		rows = append(rows, line)
	}
	if end-start < len(items) {
		rows = append(rows, mutedStyle.Render(fmt.Sprintf("  showing %d-%d of %d", start+1, end, len(items))))
	}

	rows = append(rows, "")
	rows = append(rows, accentStyle.Render(fmt.Sprintf("%d%% complete", p.Percent())))

	if item, ok := q.selected(); ok && item.Unlocked && ansi.StringWidth(item.Text) > lineWidth {
		rows = append(rows, "", lipgloss.NewStyle().Width(w-6).Render(item.Text))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (q quotesModel) selected() (pomodoro.Quote, bool) {
	items := q.session.Quotes()
	if q.cursor < 0 || q.cursor >= len(items) {
		return pomodoro.Quote{}, false
	}
	return items[q.cursor], true
}

// window returns the [start, end) range of rows to draw so the cursor stays
// visible.
func (q quotesModel) window(n int) (int, int) {
	rows := q.visibleRows()
	if n <= rows {
		return 0, n
	}
	start := q.cursor - rows/2
	start = max(0, min(start, n-rows))
	return start, start + rows
}
