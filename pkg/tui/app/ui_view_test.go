package planui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

func TestViewCoverShowsHints(t *testing.T) {
	now := time.Date(2026, time.August, 25, 9, 0, 0, 0, time.UTC)
	m := newTestModel(t, 2026, now)

	view := stripANSI(m.View())
	if !strings.Contains(view, "Cover") {
		t.Fatalf("expected cover title; view=%q", view)
	}
	if !strings.Contains(view, "page 1/432") {
		t.Fatalf("expected page counter in footer; view=%q", view)
	}
}

func TestViewMonthRendersMondayFirstGrid(t *testing.T) {
	now := time.Date(2026, time.August, 25, 9, 0, 0, 0, time.UTC)
	m := newTestModel(t, 2026, now)

	for i := 0; i < 4; i++ {
		m = press(t, m, runeKey('l'))
	}

	view := stripANSI(m.View())
	if !strings.Contains(view, "March 2026") {
		t.Fatalf("expected month title; view=%q", view)
	}
	if !strings.Contains(view, "Mo Tu We Th Fr Sa Su") {
		t.Fatalf("expected Monday-first header; view=%q", view)
	}
	if !strings.Contains(view, "page 5/432") {
		t.Fatalf("expected month page counter; view=%q", view)
	}
}

func TestViewWeekShowsSpan(t *testing.T) {
	now := time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC)
	m := newTestModel(t, 2026, now)

	m = press(t, m, runeKey('t'), runeKey('w'))

	view := stripANSI(m.View())
	if !strings.Contains(view, "Week of March 9, 2026") {
		t.Fatalf("expected week title; view=%q", view)
	}
	if !strings.Contains(view, "Mar 9 – Mar 15") {
		t.Fatalf("expected week span subtitle; view=%q", view)
	}
}

func TestViewGotoModeShowsPrompt(t *testing.T) {
	now := time.Date(2026, time.August, 25, 9, 0, 0, 0, time.UTC)
	m := newTestModel(t, 2026, now)

	m = press(t, m, runeKey('g'))
	view := stripANSI(m.View())
	if !strings.Contains(view, "goto:") {
		t.Fatalf("expected goto prompt in footer; view=%q", view)
	}

	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	view = stripANSI(m.View())
	if strings.Contains(view, "goto:") {
		t.Fatalf("expected goto prompt cleared after esc; view=%q", view)
	}
}

func TestViewMonthPickerListsMonths(t *testing.T) {
	now := time.Date(2026, time.August, 25, 9, 0, 0, 0, time.UTC)
	m := newTestModel(t, 2026, now)

	m = press(t, m, runeKey('m'))
	view := stripANSI(m.View())
	if !strings.Contains(view, "January 2026") {
		t.Fatalf("expected month list; view=%q", view)
	}
}
