package planui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/app"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/entry"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/glyph"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/page"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/planner"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/store"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/tui/events"
)

type stubPersistence struct {
	data map[string][]*entry.Entry
}

func (s *stubPersistence) MapAll(ctx context.Context) map[string][]*entry.Entry { return s.data }

func (s *stubPersistence) ListAll(ctx context.Context) []*entry.Entry {
	var all []*entry.Entry
	for _, entries := range s.data {
		all = append(all, entries...)
	}
	return all
}

func (s *stubPersistence) List(ctx context.Context, collection string) []*entry.Entry {
	return s.data[collection]
}

func (s *stubPersistence) Collections(ctx context.Context, prefix string) []string { return nil }
func (s *stubPersistence) Store(e *entry.Entry) error                              { return nil }
func (s *stubPersistence) Delete(e *entry.Entry) error                             { return nil }
func (s *stubPersistence) Watch(ctx context.Context) (<-chan store.Event, error) {
	return nil, nil
}

var _ store.Persistence = (*stubPersistence)(nil)

func newTestModel(t *testing.T, year int, now time.Time) *Model {
	t.Helper()
	doc, err := planner.Open(year)
	if err != nil {
		t.Fatalf("open %d: %v", year, err)
	}
	m := New(nil, doc)
	m.now = func() time.Time { return now }
	m.input.Styles.Cursor.Blink = false
	m.termWidth = 80
	m.termHeight = 24
	m.applySizes()
	return m
}

func press(t *testing.T, m *Model, keys ...tea.KeyPressMsg) *Model {
	t.Helper()
	for _, k := range keys {
		next, cmd := m.Update(k)
		m = asModel(t, next)
		m = drainCommands(t, m, cmd)
	}
	return m
}

// drainCommands runs returned commands and feeds the planner's own messages
// back through Update, the way the Bubble Tea runtime would. Anything else
// (cursor blink ticks reschedule themselves forever) is dropped so the drain
// terminates.
func drainCommands(t *testing.T, m *Model, cmds ...tea.Cmd) *Model {
	t.Helper()
	queue := append([]tea.Cmd(nil), cmds...)
	for len(queue) > 0 {
		cmd := queue[0]
		queue = queue[1:]
		if cmd == nil {
			continue
		}
		switch v := cmd().(type) {
		case tea.BatchMsg:
			queue = append(queue, []tea.Cmd(v)...)
		case events.PageChangedMsg, events.JumpRequestMsg, events.StatusMsg, events.EntriesLoadedMsg,
			watchStartedMsg, watchEventMsg, watchStoppedMsg:
			next, nextCmd := m.Update(v)
			m = asModel(t, next)
			if nextCmd != nil {
				queue = append(queue, nextCmd)
			}
		}
	}
	return m
}

func asModel(t *testing.T, model tea.Model) *Model {
	t.Helper()
	m, ok := model.(*Model)
	if !ok {
		t.Fatalf("Update returned %T, want *Model", model)
	}
	return m
}

func runeKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Text: string(r), Code: r}
}

func typeString(t *testing.T, m *Model, s string) *Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, runeKey(r))
	}
	return m
}

func TestAdvanceClampsAtCover(t *testing.T) {
	now := time.Date(2026, time.August, 25, 9, 0, 0, 0, time.UTC)
	m := newTestModel(t, 2026, now)

	m = press(t, m, runeKey('h'))
	if got := m.doc.Current(); got != page.CoverPage() {
		t.Fatalf("left from cover moved to %s", got)
	}

	m = press(t, m, runeKey('l'))
	if got := m.doc.Current(); got != page.YearPage(2026) {
		t.Fatalf("right from cover = %s, want year page", got)
	}
}

func TestAdvanceWalksIntoMonths(t *testing.T) {
	now := time.Date(2026, time.August, 25, 9, 0, 0, 0, time.UTC)
	m := newTestModel(t, 2026, now)

	for i := 0; i < 4; i++ {
		m = press(t, m, runeKey('l'))
	}
	if got := m.doc.Current(); got != page.MonthPage(time.March, 2026) {
		t.Fatalf("position 4 = %s, want March 2026", got)
	}
}

func TestTodayRollsDocumentOver(t *testing.T) {
	now := time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC)
	m := newTestModel(t, 2025, now)

	m = press(t, m, runeKey('t'))
	if m.doc.Year() != 2026 {
		t.Fatalf("year = %d, want rollover to 2026", m.doc.Year())
	}
	want := page.DayPage(now)
	if got := m.doc.Current(); got != want {
		t.Fatalf("current = %s, want %s", got, want)
	}
	if view := stripANSI(m.View()); !strings.Contains(view, "rolled over to 2026") {
		t.Fatalf("expected rollover notice in footer; view=%q", view)
	}
}

func TestGotoDateJumpsToDayPage(t *testing.T) {
	now := time.Date(2026, time.August, 25, 9, 0, 0, 0, time.UTC)
	m := newTestModel(t, 2026, now)

	m = press(t, m, runeKey('g'))
	if m.mode != modeGotoDate {
		t.Fatalf("mode = %d, want goto mode", m.mode)
	}

	m = typeString(t, m, "2026-03-15")
	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	want := page.DayPage(time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC))
	if got := m.doc.Current(); got != want {
		t.Fatalf("current = %s, want %s", got, want)
	}
	if m.mode != modeNormal {
		t.Fatalf("mode = %d, want normal after jump", m.mode)
	}
}

func TestGotoDateRejectsJunkAndStaysPut(t *testing.T) {
	now := time.Date(2026, time.August, 25, 9, 0, 0, 0, time.UTC)
	m := newTestModel(t, 2026, now)
	m = press(t, m, runeKey('l'), runeKey('l'))
	before := m.doc.Current()

	m = press(t, m, runeKey('g'))
	m = typeString(t, m, "not a date")
	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if got := m.doc.Current(); got != before {
		t.Fatalf("failed goto moved the page: %s -> %s", before, got)
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "unrecognized date") {
		t.Fatalf("expected parse failure in footer; view=%q", view)
	}
}

func TestOutOfYearJumpLeavesPosition(t *testing.T) {
	now := time.Date(2026, time.August, 25, 9, 0, 0, 0, time.UTC)
	m := newTestModel(t, 2026, now)
	before := m.doc.Current()

	m = press(t, m, runeKey('g'))
	m = typeString(t, m, "2030-06-01")
	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if got := m.doc.Current(); got != before {
		t.Fatalf("out-of-year goto moved the page: %s -> %s", before, got)
	}
}

func TestMonthPickerJumpsToMonth(t *testing.T) {
	now := time.Date(2026, time.August, 25, 9, 0, 0, 0, time.UTC)
	m := newTestModel(t, 2026, now)

	m = press(t, m, runeKey('m'))
	if m.mode != modeMonthPick {
		t.Fatalf("mode = %d, want month picker", m.mode)
	}
	m.months.Select(time.March)
	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if got := m.doc.Current(); got != page.MonthPage(time.March, 2026) {
		t.Fatalf("current = %s, want March 2026", got)
	}
}

func TestWeekShortcutFromDayPage(t *testing.T) {
	now := time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC)
	m := newTestModel(t, 2026, now)

	m = press(t, m, runeKey('t'))
	m = press(t, m, runeKey('w'))

	// March 15, 2026 is a Sunday; its week is anchored March 9.
	want := page.WeekPage(time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC))
	if got := m.doc.Current(); got != want {
		t.Fatalf("current = %s, want %s", got, want)
	}
}

func TestEntriesLoadAfterJump(t *testing.T) {
	now := time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC)
	day := page.DayPage(now)
	sp := &stubPersistence{data: map[string][]*entry.Entry{
		day.Collection(): {entry.New(day.Collection(), glyph.Task, "water the lotus")},
	}}

	doc, err := planner.Open(2026)
	if err != nil {
		t.Fatalf("open 2026: %v", err)
	}
	m := New(&app.Service{Persistence: sp}, doc)
	m.now = func() time.Time { return now }
	m.input.Styles.Cursor.Blink = false
	m.termWidth = 80
	m.termHeight = 24
	m.applySizes()

	m = press(t, m, runeKey('t'))

	view := stripANSI(m.View())
	if !strings.Contains(view, "water the lotus") {
		t.Fatalf("expected stored entry on day page; view=%q", view)
	}
}

func TestStoreChangeRefreshesDayPage(t *testing.T) {
	now := time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC)
	day := page.DayPage(now)
	sp := &stubPersistence{data: map[string][]*entry.Entry{
		day.Collection(): {entry.New(day.Collection(), glyph.Task, "water the lotus")},
	}}

	doc, err := planner.Open(2026)
	if err != nil {
		t.Fatalf("open 2026: %v", err)
	}
	m := New(&app.Service{Persistence: sp}, doc)
	m.now = func() time.Time { return now }
	m.input.Styles.Cursor.Blink = false
	m.termWidth = 80
	m.termHeight = 24
	m.applySizes()

	m = press(t, m, runeKey('t'))

	// Another process writes to the store; the watch should refresh the page.
	sp.data[day.Collection()] = append(sp.data[day.Collection()],
		entry.New(day.Collection(), glyph.Note, "florist called back"))

	ch := make(chan store.Event, 1)
	ch <- store.Event{Type: store.EventCollectionChanged, Collection: day.Collection()}
	close(ch)
	next, cmd := m.Update(watchStartedMsg{ch: ch, cancel: func() {}})
	m = drainCommands(t, asModel(t, next), cmd)

	view := stripANSI(m.View())
	if !strings.Contains(view, "florist called back") {
		t.Fatalf("expected refreshed entry after store event; view=%q", view)
	}
	if m.watchCh != nil {
		t.Fatalf("watch channel should be cleared once the stream closes")
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
