// Package pageview renders the currently visible planner page.
package pageview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/entry"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/page"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/tui/components/calendar"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/tui/theme"
)

// Model holds render state for the page pane.
type Model struct {
	theme  theme.Theme
	width  int
	height int

	page    page.Descriptor
	entries []*entry.Entry
	busy    map[int]bool // month pages: days with entries
	now     time.Time
}

// New returns a page pane with the given theme.
func New(th theme.Theme) Model {
	return Model{theme: th, now: time.Now()}
}

// SetSize updates the pane dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetNow fixes the reference time used for today highlighting.
func (m *Model) SetNow(now time.Time) {
	m.now = now
}

// SetPage replaces the visible page and its content.
func (m *Model) SetPage(d page.Descriptor, entries []*entry.Entry, busy map[int]bool) {
	m.page = d
	m.entries = entries
	m.busy = busy
}

// Page returns the currently rendered descriptor.
func (m Model) Page() page.Descriptor {
	return m.page
}

// View renders the framed page.
func (m Model) View() string {
	var body string
	switch m.page.Kind {
	case page.KindCover:
		body = m.renderCover()
	case page.KindYear:
		body = m.renderYear()
	case page.KindMonth:
		body = m.renderMonth()
	case page.KindWeek:
		body = m.renderWeek()
	case page.KindDay:
		body = m.renderDay()
	}

	frame := m.theme.Page.Frame
	if m.width > 0 {
		frame = frame.Width(m.width - frame.GetHorizontalFrameSize())
	}
	return frame.Render(body)
}

func (m Model) renderCover() string {
	title := m.theme.Page.Accent.Render(m.page.Title())
	sub := m.theme.Page.Subtitle.Render("press l to begin, t for today")
	return lipgloss.JoinVertical(lipgloss.Left, title, "", sub)
}

func (m Model) renderYear() string {
	title := m.theme.Page.Title.Render(m.page.Title())

	progress := yearProgress(m.page.Year, m.now)
	bar := renderProgress(progress, 20)
	sub := m.theme.Page.Subtitle.Render(fmt.Sprintf("%d%% of the year elapsed", int(progress*100)))

	return lipgloss.JoinVertical(lipgloss.Left, title, "", bar, sub)
}

func (m Model) renderMonth() string {
	title := m.theme.Page.Title.Render(m.page.Title())

	monthStart := time.Date(m.page.Year, m.page.Month, 1, 0, 0, 0, 0, time.UTC)
	grid := calendar.Render(monthStart, m.calendarDays(monthStart), m.calendarOptions())

	return lipgloss.JoinVertical(lipgloss.Left, title, "", grid)
}

func (m Model) renderWeek() string {
	title := m.theme.Page.Title.Render(m.page.Title())
	sub := m.theme.Page.Subtitle.Render(
		m.page.Date.Format("Jan 2") + " – " + m.page.WeekEnd().Format("Jan 2"))

	row := calendar.RenderWeek(m.page.Date, nil, m.calendarOptions())

	sections := []string{title, sub, "", row}
	if lines := m.entryLines(); lines != "" {
		sections = append(sections, "", lines)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderDay() string {
	title := m.theme.Page.Title.Render(m.page.Title())
	sub := m.theme.Page.Subtitle.Render(m.page.Date.Weekday().String())

	sections := []string{title, sub}
	if lines := m.entryLines(); lines != "" {
		sections = append(sections, "", lines)
	} else {
		sections = append(sections, "", m.theme.Page.Subtitle.Render("no entries"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) entryLines() string {
	if len(m.entries) == 0 {
		return ""
	}
	var lines []string
	for _, e := range m.entries {
		lines = append(lines, fmt.Sprintf("%s %s %s", e.Signifier.String(), e.Bullet.String(), e.Message))
	}
	return strings.Join(lines, "\n")
}

func (m Model) calendarDays(monthStart time.Time) []calendar.Day {
	days := make([]calendar.Day, 0, calendar.DaysIn(monthStart))
	todayDay := 0
	if m.now.Year() == monthStart.Year() && m.now.Month() == monthStart.Month() {
		todayDay = m.now.Day()
	}
	for d := 1; d <= calendar.DaysIn(monthStart); d++ {
		days = append(days, calendar.Day{
			Day:      d,
			HasEntry: m.busy[d],
			IsToday:  d == todayDay,
		})
	}
	return days
}

func (m Model) calendarOptions() calendar.Options {
	opts := calendar.DefaultOptions()
	opts.HeaderStyle = m.theme.Calendar.Header
	opts.EmptyStyle = m.theme.Calendar.Empty
	opts.EntryStyle = m.theme.Calendar.Entry
	opts.TodayStyle = m.theme.Calendar.Today
	opts.SelectedStyle = m.theme.Calendar.Selected
	return opts
}

func yearProgress(year int, now time.Time) float64 {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	if now.Before(start) {
		return 0
	}
	if !now.Before(end) {
		return 1
	}
	return float64(now.Sub(start)) / float64(end.Sub(start))
}

func renderProgress(t float64, width int) string {
	filled := int(t * float64(width))
	var b strings.Builder
	for i := 0; i < width; i++ {
		cell := "░"
		if i < filled {
			cell = "█"
		}
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.ProgressColor(float64(i) / float64(width-1))).
			Render(cell))
	}
	return b.String()
}
