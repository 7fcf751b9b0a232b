// Package events defines the cross-component messages of the planner TUI.
package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/entry"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/nav"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/page"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// PageChangedMsg announces that the visible page moved.
type PageChangedMsg struct {
	Component ComponentID
	Position  int
	Page      page.Descriptor
	Cause     nav.Cause
}

// Describe renders the change in a human-friendly format for logs.
func (m PageChangedMsg) Describe() string {
	return fmt.Sprintf(`position:%d page:%q cause:%q`, m.Position, m.Page.Title(), m.Cause)
}

// PageChangedCmd wraps PageChangedMsg in a tea.Cmd.
func PageChangedCmd(component ComponentID, position int, d page.Descriptor, cause nav.Cause) tea.Cmd {
	return func() tea.Msg {
		return PageChangedMsg{
			Component: component,
			Position:  position,
			Page:      d,
			Cause:     cause,
		}
	}
}

// JumpRequestMsg asks the root model to jump to a target page.
type JumpRequestMsg struct {
	Component ComponentID
	Target    page.Descriptor
}

// Describe renders the request for logs.
func (m JumpRequestMsg) Describe() string {
	return fmt.Sprintf(`component:%q target:%q`, m.Component, m.Target.Title())
}

// JumpRequestCmd wraps JumpRequestMsg in a tea.Cmd.
func JumpRequestCmd(component ComponentID, target page.Descriptor) tea.Cmd {
	return func() tea.Msg {
		return JumpRequestMsg{Component: component, Target: target}
	}
}

// StatusMsg carries a transient footer status line.
type StatusMsg struct {
	Component ComponentID
	Text      string
}

// Describe implements the logging helper.
func (m StatusMsg) Describe() string {
	return fmt.Sprintf(`component:%q text:%q`, m.Component, m.Text)
}

// StatusCmd wraps StatusMsg in a tea.Cmd.
func StatusCmd(component ComponentID, text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Component: component, Text: text}
	}
}

// EntriesLoadedMsg delivers the stored content of a page: its entries, and
// for month pages the set of days that have any.
type EntriesLoadedMsg struct {
	Component ComponentID
	Page      page.Descriptor
	Entries   []*entry.Entry
	Days      map[int]bool
}

// Describe implements the logging helper.
func (m EntriesLoadedMsg) Describe() string {
	return fmt.Sprintf(`page:%q entries:%d days:%d`, m.Page.Title(), len(m.Entries), len(m.Days))
}
