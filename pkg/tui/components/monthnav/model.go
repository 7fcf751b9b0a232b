// Package monthnav provides the month-picker list overlay.
package monthnav

import (
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/page"
)

// Model wraps a bubbles list over the twelve month pages of a year.
type Model struct {
	list list.Model
	year int
}

// New constructs the picker for a year's month pages.
func New(year int) *Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	l := list.New(monthItems(year), delegate, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	return &Model{list: l, year: year}
}

// SetYear rebuilds the items for a different year.
func (m *Model) SetYear(year int) {
	if year == m.year {
		return
	}
	m.year = year
	m.list.SetItems(monthItems(year))
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Select moves the cursor to the given month.
func (m *Model) Select(month time.Month) {
	m.list.Select(int(month) - 1)
}

// Selected returns the month page under the cursor.
func (m *Model) Selected() (page.Descriptor, bool) {
	item, ok := m.list.SelectedItem().(monthItem)
	if !ok {
		return page.Descriptor{}, false
	}
	return item.page, true
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update forwards Bubble Tea messages to the list.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the list.
func (m *Model) View() string {
	return m.list.View()
}

func monthItems(year int) []list.Item {
	items := make([]list.Item, 0, 12)
	for mo := time.January; mo <= time.December; mo++ {
		items = append(items, monthItem{page: page.MonthPage(mo, year)})
	}
	return items
}

type monthItem struct {
	page page.Descriptor
}

func (i monthItem) Title() string       { return i.page.Title() }
func (monthItem) Description() string   { return "" }
func (i monthItem) FilterValue() string { return i.page.Title() }
