package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/vita/pkg/health"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	tabStyle      = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	activeTab     = lipgloss.NewStyle().Bold(true).Padding(0, 1).Underline(true)
	faintStyle    = lipgloss.NewStyle().Faint(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	overdueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	categoryStyle = lipgloss.NewStyle().Faint(true).Width(11)

	moodRamp = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
)

var tabNames = map[tab]string{
	tabHome:      "home",
	tabDay:       "day",
	tabReminders: "reminders",
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	if !m.state.Global.Initialized {
		b.WriteString(m.spin.View() + " starting up\n")
		return b.String()
	}
	if m.state.Global.InitErr != nil {
		b.WriteString(errStyle.Render("could not open the journal: "+m.state.Global.InitErr.Error()) + "\n")
		return b.String()
	}

	switch m.active {
	case tabHome:
		b.WriteString(m.viewHome())
	case tabDay:
		b.WriteString(m.viewDay())
	case tabReminders:
		b.WriteString(m.viewReminders())
	}

	b.WriteString("\n")
	if m.typing {
		b.WriteString(m.input.View() + "\n")
		b.WriteString(faintStyle.Render("enter to save, esc to cancel") + "\n")
	} else {
		b.WriteString(faintStyle.Render(m.helpLine()) + "\n")
	}
	return b.String()
}

func (m Model) viewTabs() string {
	parts := make([]string, 0, int(tabCount))
	for t := tabHome; t < tabCount; t++ {
		if t == m.active {
			parts = append(parts, activeTab.Render(tabNames[t]))
			continue
		}
		parts = append(parts, tabStyle.Render(tabNames[t]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) helpLine() string {
	common := "tab: switch  r: refresh  n: note  q: quit"
	switch m.active {
	case tabDay:
		return "[/]: day  t: today  " + common
	case tabReminders:
		return "s: skip overdue  " + common
	}
	return common
}

func (m Model) viewHome() string {
	var b strings.Builder
	s := m.state.Home

	b.WriteString(titleStyle.Render("overview") + "\n")
	if s.IsLoading {
		b.WriteString(m.spin.View() + " crunching\n")
	}
	if s.Err != nil {
		b.WriteString(errStyle.Render(s.Err.Error()) + "\n")
	}
	if a := s.Analytics; a != nil {
		b.WriteString(fmt.Sprintf("mood avg %.1f over %s\n", a.MoodAverage, a.MoodWindow))
		for _, point := range a.MoodTrend {
			bar := moodBar(point.Average)
			b.WriteString(fmt.Sprintf("  %s %s %.1f\n", point.Day.Format("Jan 02"), bar, point.Average))
		}
		if len(a.Symptoms) > 0 {
			b.WriteString(faintStyle.Render(fmt.Sprintf("symptoms over %s", a.SymptomWindow)) + "\n")
			for _, stat := range a.Symptoms {
				b.WriteString(fmt.Sprintf("  %s %dx (avg %.1f)\n", stat.Name, stat.Count, stat.AverageSeverity))
			}
		}
	}

	b.WriteString("\n" + titleStyle.Render("recent") + "\n")
	if len(m.state.Global.RecentLogs) == 0 {
		b.WriteString(faintStyle.Render(" none") + "\n")
	}
	for _, l := range m.state.Global.RecentLogs {
		b.WriteString(m.logLine(l))
	}
	return b.String()
}

func (m Model) viewDay() string {
	var b strings.Builder
	s := m.state.ViewLogs

	b.WriteString(titleStyle.Render(s.Date.Format("January 2, 2006")) + "\n")
	if s.IsLoading {
		b.WriteString(m.spin.View() + " loading\n")
	}
	if s.Err != nil {
		b.WriteString(errStyle.Render(s.Err.Error()) + "\n")
	}

	key := health.Timestamp{Time: s.Date}.DayKeyString()
	bucket := m.state.Global.LogsByDay[key]
	if len(bucket) == 0 && !s.IsLoading {
		b.WriteString(faintStyle.Render(" none") + "\n")
	}
	for _, l := range bucket {
		b.WriteString(m.logLine(l))
	}
	return b.String()
}

func (m Model) viewReminders() string {
	var b strings.Builder
	s := m.state.Reminders

	b.WriteString(titleStyle.Render("reminders") + "\n")
	if s.IsLoading {
		b.WriteString(m.spin.View() + " loading\n")
	}
	if s.Err != nil {
		b.WriteString(errStyle.Render(s.Err.Error()) + "\n")
	}

	if len(m.state.Global.Reminders) == 0 && !s.IsLoading {
		b.WriteString(faintStyle.Render(" none") + "\n")
	}
	now := time.Now()
	for _, r := range m.state.Global.Reminders {
		line := " " + r.Describe()
		if r.Overdue(now) {
			line = overdueStyle.Render(line + "  (overdue)")
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) logLine(l *health.Log) string {
	at, category, title, detail := l.Row()
	line := fmt.Sprintf(" %s %s%s", at, categoryStyle.Render(category), title)
	if detail != "" {
		line += faintStyle.Render("  " + detail)
	}
	line += "\n"
	if l.Notes != "" {
		width := m.width - 4
		if width < 20 {
			width = 20
		}
		wrapped := wordwrap.String(l.Notes, width)
		for _, notesLine := range strings.Split(wrapped, "\n") {
			line += faintStyle.Render("    "+notesLine) + "\n"
		}
	}
	return line
}

// moodBar renders a fixed-width bar colored along the rank scale.
func moodBar(average float64) string {
	const barWidth = 10
	filled := int(average / float64(health.MoodGreat) * barWidth)
	if filled < 1 {
		filled = 1
	}
	idx := int(average+0.5) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(moodRamp) {
		idx = len(moodRamp) - 1
	}
	return moodRamp[idx].Render(strings.Repeat("█", filled)) +
		faintStyle.Render(strings.Repeat("░", barWidth-filled))
}
