package tui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/antiprocrastinator/internal/pomodoro"
	"github.com/sadopc/antiprocrastinator/internal/store"
)

type statsModel struct {
	history History
	session *pomodoro.Session
	width   int
	height  int

	counts []store.DailyCount
	offset int // 7-day blocks back from today (0 = current)
	now    func() time.Time

	chart barchart.Model
}

func newStatsModel(h History, s *pomodoro.Session) statsModel {
	return statsModel{
		history: h,
		session: s,
		now:     time.Now,
		chart:   barchart.New(60, 12),
	}
}

func (r *statsModel) setSize(w, h int) {
	r.width = w
	r.height = h
}

type statsDataMsg struct {
	offset int
	counts []store.DailyCount
}

func (r statsModel) refresh() tea.Cmd {
	from, to := r.dateRange()
	offset := r.offset
	return func() tea.Msg {
		counts, err := r.history.GetDailyCounts(from, to)
		if err != nil {
			log.Printf("warning: %v", err)
		}
		return statsDataMsg{offset: offset, counts: counts}
	}
}

// dateRange is the 7 UTC days ending today, shifted back by offset weeks.
func (r statsModel) dateRange() (time.Time, time.Time) {
	now := r.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	end := today.AddDate(0, 0, 1-7*r.offset)
	return end.AddDate(0, 0, -7), end
}

func (r statsModel) update(msg tea.Msg) (statsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statsDataMsg:
		if msg.offset != r.offset {
			return r, nil
		}
		r.counts = msg.counts
		r.buildChart()
		return r, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			r.offset++
			return r, r.refresh()
		case key.Matches(msg, keys.Right):
			if r.offset > 0 {
				r.offset--
			}
			return r, r.refresh()
		}
	}
	return r, nil
}

func (r *statsModel) buildChart() {
	chartWidth := max(r.width-8, 20)
	chartHeight := 12
	if r.height > 30 {
		chartHeight = 16
	}

	r.chart = barchart.New(chartWidth, chartHeight)

	from, to := r.dateRange()
	byDate := make(map[string]store.DailyCount, len(r.counts))
	for _, c := range r.counts {
		byDate[c.Date] = c
	}

	var bars []barchart.BarData
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		c := byDate[d.Format("2006-01-02")]
		style := lipgloss.NewStyle().Foreground(colorSuccess)
		if c.Sessions == 0 {
			style = lipgloss.NewStyle().Foreground(colorSubtle)
		}
		bars = append(bars, barchart.BarData{
			Label: d.Format("Mon 02"),
			Values: []barchart.BarValue{{
				Name:  "sessions",
				Value: float64(c.Sessions),
				Style: style,
			}},
		})
	}

	r.chart.PushAll(bars)
	r.chart.Draw()
}

func (r statsModel) totals() (sessions, minutes int) {
	for _, c := range r.counts {
		sessions += c.Sessions
		minutes += c.Minutes
	}
	return sessions, minutes
}

func (r statsModel) view() string {
	w := r.width - 4

	from, to := r.dateRange()
	dateLabel := mutedStyle.Render(fmt.Sprintf("%s - %s", from.Format("Jan 02"), to.AddDate(0, 0, -1).Format("Jan 02, 2006")))
	header := lipgloss.JoinHorizontal(lipgloss.Bottom, titleStyle.Render("Stats"), "  ", dateLabel)

	sessions, minutes := r.totals()
	p := r.session.Progress()
	summary := strings.Join([]string{
		fmt.Sprintf("  This period: %s sessions, %s focused",
			highlightStyle.Render(fmt.Sprint(sessions)), highlightStyle.Render(formatMinutes(minutes))),
		fmt.Sprintf("  All time:    %s sessions, %s quotes unlocked",
			highlightStyle.Render(fmt.Sprint(p.Sessions())), highlightStyle.Render(fmt.Sprintf("%d/%d", p.Unlocked(), p.Total()))),
	}, "\n")

	table := r.renderTable(w)
	nav := mutedStyle.Render("  ←/→: navigate  e: export")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", r.chart.View(), "", summary, "", table, "", nav,
		),
	)
}

func (r statsModel) renderTable(w int) string {
	if len(r.counts) == 0 {
		return mutedStyle.Render("  No sessions in this period")
	}

	var rows []string
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-12s %8s %10s", "Date", "Sessions", "Focused")))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", max(0, min(w-6, 32)))))
	for _, c := range r.counts {
		rows = append(rows, fmt.Sprintf("  %-12s %8d %10s", c.Date, c.Sessions, formatMinutes(c.Minutes)))
	}
	return strings.Join(rows, "\n")
}
