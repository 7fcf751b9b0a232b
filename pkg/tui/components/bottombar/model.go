// Package bottombar renders the planner footer: position, mode, and status.
package bottombar

import (
	"fmt"
	"strings"

	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/tui/theme"
)

// Mode represents the UI mode shown in the footer.
type Mode int

const (
	ModeNormal Mode = iota
	ModeMonthPick
	ModeGotoDate
)

func (m Mode) String() string {
	switch m {
	case ModeMonthPick:
		return "month"
	case ModeGotoDate:
		return "goto"
	}
	return ""
}

// Model tracks footer rendering state.
type Model struct {
	theme theme.Theme

	mode      Mode
	position  int
	total     int
	helpLine  string
	statusMsg string
	inputView string
}

// New returns a footer model.
func New(th theme.Theme) Model {
	return Model{theme: th}
}

// SetMode updates the visual mode.
func (m *Model) SetMode(mode Mode) {
	m.mode = mode
	if mode != ModeGotoDate {
		m.inputView = ""
	}
}

// SetPosition updates the page counter.
func (m *Model) SetPosition(position, total int) {
	m.position = position
	m.total = total
}

// SetHelp sets the contextual help line.
func (m *Model) SetHelp(help string) {
	m.helpLine = help
}

// SetStatus sets the status message to display.
func (m *Model) SetStatus(status string) {
	m.statusMsg = status
}

// SetInputView sets the rendered goto-date input line.
func (m *Model) SetInputView(view string) {
	m.inputView = view
}

// Height reports the number of lines consumed by the footer.
func (m Model) Height() int {
	if m.mode == ModeGotoDate {
		return 2
	}
	return 1
}

// View renders the footer string.
func (m Model) View() string {
	var segments []string
	if m.total > 0 {
		counter := fmt.Sprintf("page %d/%d", m.position+1, m.total)
		segments = append(segments, m.theme.Footer.Position.Render(counter))
	}
	if mode := m.mode.String(); mode != "" {
		segments = append(segments, m.theme.Footer.Mode.Render(mode))
	}
	if m.helpLine != "" {
		segments = append(segments, m.theme.Footer.Help.Render(m.helpLine))
	}
	if m.statusMsg != "" {
		segments = append(segments, m.theme.Footer.Status.Render(m.statusMsg))
	}

	line := " "
	if len(segments) > 0 {
		line = strings.Join(segments, " │ ")
	}
	if m.mode == ModeGotoDate {
		return line + "\n" + "goto: " + m.inputView
	}
	return line
}
