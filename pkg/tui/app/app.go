// Package planui hosts the Bubble Tea program for the planner TUI.
package planui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/app"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/nav"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/page"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/planner"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/store"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/timeutil"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/tui/components/bottombar"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/tui/components/monthnav"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/tui/components/pageview"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/tui/events"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/tui/theme"
)

const (
	componentID = events.ComponentID("planner-root")
	monthnavID  = events.ComponentID("month-picker")
)

type mode int

const (
	modeNormal mode = iota
	modeMonthPick
	modeGotoDate
)

const normalHelp = "h/l page · H/L week · t today · m month · g goto · w/y/c shortcuts · q quit"

// Model contains the planner UI state.
type Model struct {
	svc *app.Service
	doc *planner.Document
	ctx context.Context

	mode  mode
	now   func() time.Time
	trace bool

	termWidth  int
	termHeight int

	theme  theme.Theme
	pane   pageview.Model
	months *monthnav.Model
	bottom bottombar.Model
	input  textinput.Model

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	// lastChange holds the change delivered by the nav subscription during
	// the current Update call, nil when the position did not move.
	lastChange *nav.Change
}

// New constructs the root model over an opened document.
func New(svc *app.Service, doc *planner.Document) *Model {
	th := theme.Default()

	ti := textinput.New()
	ti.Placeholder = "2026-03-15, March 15, today"
	ti.CharLimit = 64
	ti.Prompt = ""
	ti.VirtualCursor = true
	ti.Styles.Cursor.Color = lipgloss.Color("212")
	ti.Styles.Cursor.Shape = tea.CursorBlock
	ti.Styles.Cursor.Blink = true

	bottom := bottombar.New(th)
	bottom.SetHelp(normalHelp)

	m := &Model{
		svc:    svc,
		doc:    doc,
		ctx:    context.Background(),
		now:    time.Now,
		trace:  os.Getenv("LOTUS_TRACE") != "",
		theme:  th,
		pane:   pageview.New(th),
		months: monthnav.New(doc.Year()),
		bottom: bottom,
		input:  ti,
	}
	m.subscribeNav()
	m.syncPage()
	return m
}

// subscribeNav registers the surface on the document's navigation state.
// SetYear discards the old state's subscribers, so rollover resubscribes.
func (m *Model) subscribeNav() {
	m.doc.Nav().Subscribe(func(c nav.Change) {
		m.lastChange = &c
	})
}

// Run launches the Bubble Tea program.
func Run(svc *app.Service, doc *planner.Document) error {
	p := tea.NewProgram(New(svc, doc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.syncPage(), startWatchCmd(m.ctx, m.svc))
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

// startWatchCmd opens a persistence watch so pages refresh when the store
// changes underneath the UI.
func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil || svc.Persistence == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// handleWatchEvent refreshes the visible page when a store change touches it.
// Month pages aggregate busy days across day collections, so any collection
// change refreshes them.
func (m *Model) handleWatchEvent(ev store.Event, cmds *[]tea.Cmd) {
	current := m.doc.Current()
	if ev.Type == store.EventCollectionChanged &&
		current.Kind != page.KindMonth &&
		ev.Collection != current.Collection() {
		return
	}
	if cmd := m.loadEntries(current); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

// Update routes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.trace {
		if d := describeMsg(msg); d != "" {
			m.bottom.SetStatus(d)
		}
	}

	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = v.Width
		m.termHeight = v.Height
		m.applySizes()
	case tea.KeyPressMsg:
		if m.handleKeyPress(v, &cmds) {
			if len(cmds) == 0 {
				return m, nil
			}
			return m, tea.Batch(cmds...)
		}
	case events.JumpRequestMsg:
		m.jump(v.Target, &cmds)
	case events.StatusMsg:
		m.bottom.SetStatus(v.Text)
	case events.EntriesLoadedMsg:
		if v.Page == m.doc.Current() {
			m.pane.SetPage(v.Page, v.Entries, v.Days)
		}
	case watchStartedMsg:
		if v.err != nil {
			m.bottom.SetStatus(v.err.Error())
			break
		}
		if v.ch == nil {
			if v.cancel != nil {
				v.cancel()
			}
			break
		}
		m.watchCh = v.ch
		m.watchCancel = v.cancel
		cmds = append(cmds, m.waitForWatch())
	case watchEventMsg:
		m.handleWatchEvent(v.event, &cmds)
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.watchCh = nil
	}

	switch m.mode {
	case modeMonthPick:
		if _, cmd := m.months.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case modeGotoDate:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		m.bottom.SetInputView(m.input.View())
	}

	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	if msg.String() == "ctrl+c" {
		m.stopWatch()
		*cmds = append(*cmds, tea.Quit)
		return true
	}

	switch m.mode {
	case modeMonthPick:
		return m.handleMonthPickKey(msg, cmds)
	case modeGotoDate:
		return m.handleGotoKey(msg, cmds)
	}
	return m.handleNormalKey(msg, cmds)
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	switch msg.String() {
	case "q":
		m.stopWatch()
		*cmds = append(*cmds, tea.Quit)
	case "l", "right":
		m.advance(1, cmds)
	case "h", "left":
		m.advance(-1, cmds)
	case "L", "shift+right":
		m.advance(7, cmds)
	case "H", "shift+left":
		m.advance(-7, cmds)
	case "t":
		m.jumpToToday(cmds)
	case "w":
		m.jumpToCurrentWeek(cmds)
	case "y":
		m.jump(page.YearPage(m.doc.Year()), cmds)
	case "c":
		m.jump(page.CoverPage(), cmds)
	case "m":
		m.openMonthPick()
	case "g":
		m.openGotoDate(cmds)
	default:
		return false
	}
	return true
}

func (m *Model) handleMonthPickKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	switch msg.String() {
	case "esc":
		m.setMode(modeNormal)
		return true
	case "enter":
		if target, ok := m.months.Selected(); ok {
			m.setMode(modeNormal)
			*cmds = append(*cmds, events.JumpRequestCmd(monthnavID, target))
		}
		return true
	}
	return false
}

func (m *Model) handleGotoKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.setMode(modeNormal)
		return true
	case "enter":
		value := m.input.Value()
		m.input.Blur()
		m.setMode(modeNormal)

		t, err := timeutil.ParseDate(value, m.now())
		if err != nil {
			m.bottom.SetStatus(err.Error())
			return true
		}
		m.jump(page.DayPage(t), cmds)
		return true
	}
	return false
}

func (m *Model) advance(delta int, cmds *[]tea.Cmd) {
	m.lastChange = nil
	m.doc.Advance(delta)
	if cmd := m.syncPage(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	m.announceChange(cmds)
}

func (m *Model) jump(target page.Descriptor, cmds *[]tea.Cmd) {
	m.lastChange = nil
	if _, err := m.doc.Nav().JumpTo(target); err != nil {
		m.bottom.SetStatus(err.Error())
		return
	}
	m.bottom.SetStatus("")
	if cmd := m.syncPage(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	m.announceChange(cmds)
}

// announceChange turns the subscribed nav change, if any, into a broadcast
// message carrying its cause.
func (m *Model) announceChange(cmds *[]tea.Cmd) {
	c := m.lastChange
	if c == nil {
		return
	}
	m.lastChange = nil
	*cmds = append(*cmds, events.PageChangedCmd(componentID, c.New, m.doc.Current(), c.Cause))
}

// jumpToToday rolls the document over when today falls outside the open year.
func (m *Model) jumpToToday(cmds *[]tea.Cmd) {
	today := m.now()
	if today.Year() != m.doc.Year() {
		if err := m.doc.SetYear(today.Year()); err != nil {
			m.bottom.SetStatus(err.Error())
			return
		}
		m.months.SetYear(m.doc.Year())
		m.subscribeNav()
		*cmds = append(*cmds, events.StatusCmd(componentID, fmt.Sprintf("rolled over to %d", m.doc.Year())))
	}
	m.jump(page.DayPage(today), cmds)
}

func (m *Model) jumpToCurrentWeek(cmds *[]tea.Cmd) {
	current := m.doc.Current()
	switch current.Kind {
	case page.KindWeek:
		return
	case page.KindDay:
		m.jump(page.WeekPage(current.Date), cmds)
	default:
		m.jump(page.WeekPage(m.now()), cmds)
	}
}

func (m *Model) openMonthPick() {
	if current := m.doc.Current(); current.Kind == page.KindMonth {
		m.months.Select(current.Month)
	}
	m.setMode(modeMonthPick)
}

func (m *Model) openGotoDate(cmds *[]tea.Cmd) {
	m.input.SetValue("")
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	m.setMode(modeGotoDate)
	m.bottom.SetInputView(m.input.View())
}

func (m *Model) setMode(mo mode) {
	m.mode = mo
	switch mo {
	case modeMonthPick:
		m.bottom.SetMode(bottombar.ModeMonthPick)
		m.bottom.SetHelp("enter select · esc cancel")
	case modeGotoDate:
		m.bottom.SetMode(bottombar.ModeGotoDate)
		m.bottom.SetHelp("enter jump · esc cancel")
	default:
		m.bottom.SetMode(bottombar.ModeNormal)
		m.bottom.SetHelp(normalHelp)
	}
	m.applySizes()
}

// syncPage refreshes the page pane from the navigation state. Stored content
// arrives later through an EntriesLoadedMsg so storage never blocks the
// update loop.
func (m *Model) syncPage() tea.Cmd {
	current := m.doc.Current()
	m.pane.SetNow(m.now())
	m.pane.SetPage(current, nil, nil)
	m.bottom.SetPosition(m.doc.Nav().Position(), m.doc.Index().Len())

	if m.svc == nil || m.svc.Persistence == nil {
		return nil
	}
	return m.loadEntries(current)
}

func (m *Model) loadEntries(current page.Descriptor) tea.Cmd {
	return func() tea.Msg {
		msg := events.EntriesLoadedMsg{Component: componentID, Page: current}
		if entries, err := m.svc.EntriesForPage(m.ctx, current); err == nil {
			msg.Entries = entries
		}
		if current.Kind == page.KindMonth {
			if days, err := m.svc.EntryDates(m.ctx, current); err == nil {
				msg.Days = days
			}
		}
		return msg
	}
}

func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	body := m.termHeight - m.bottom.Height()
	if body < 1 {
		body = 1
	}
	m.pane.SetSize(m.termWidth, body)
	m.months.SetSize(m.termWidth/2, body)
}

// describeMsg renders a message for the LOTUS_TRACE footer line.
func describeMsg(msg tea.Msg) string {
	if d, ok := msg.(interface{ Describe() string }); ok {
		return d.Describe()
	}
	switch v := msg.(type) {
	case tea.KeyPressMsg:
		return fmt.Sprintf("key=%q", v.String())
	case tea.WindowSizeMsg:
		return fmt.Sprintf("size=%dx%d", v.Width, v.Height)
	default:
		return ""
	}
}

// View renders the composed UI.
func (m *Model) View() string {
	var body string
	if m.mode == modeMonthPick {
		body = m.months.View()
	} else {
		body = m.pane.View()
	}
	return fmt.Sprintf("%s\n%s", body, m.bottom.View())
}
