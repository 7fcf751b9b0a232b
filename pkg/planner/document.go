// Package planner binds one year's generated page sequence, its index, and
// the navigation state into a single document session.
package planner

import (
	"fmt"
	"time"

	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/nav"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/page"
)

// Document is one opened yearly planner. The sequence and index are built
// fully before any navigation is served and are immutable afterwards; the
// navigation state is the only mutable part.
type Document struct {
	year  int
	index *page.Index
	state *nav.State
}

// Open generates, indexes, and wires up the document for a year.
func Open(year int) (*Document, error) {
	index, err := page.NewIndex(page.Generate(year))
	if err != nil {
		return nil, fmt.Errorf("planner: open %d: %w", year, err)
	}
	state, err := nav.New(index)
	if err != nil {
		return nil, fmt.Errorf("planner: open %d: %w", year, err)
	}
	return &Document{year: year, index: index, state: state}, nil
}

// Year returns the year this document covers.
func (d *Document) Year() int {
	return d.year
}

// Index returns the read-only page index.
func (d *Document) Index() *page.Index {
	return d.index
}

// Nav returns the document's navigation state.
func (d *Document) Nav() *nav.State {
	return d.state
}

// Current returns the descriptor of the page currently shown.
func (d *Document) Current() page.Descriptor {
	return d.state.Descriptor()
}

// Advance moves sequentially, clamped at the covers.
func (d *Document) Advance(delta int) int {
	return d.state.Advance(delta)
}

// JumpToDate jumps to the day page for t.
func (d *Document) JumpToDate(t time.Time) (int, error) {
	return d.state.JumpTo(page.DayPage(t))
}

// JumpToWeek jumps to the week page containing t.
func (d *Document) JumpToWeek(t time.Time) (int, error) {
	return d.state.JumpTo(page.WeekPage(t))
}

// JumpToMonth jumps to a month overview in the open year.
func (d *Document) JumpToMonth(m time.Month) (int, error) {
	return d.state.JumpTo(page.MonthPage(m, d.year))
}

// JumpToToday jumps to today's day page. When today falls outside the open
// year this fails with ErrDateOutOfRange; rolling the document over first is
// the caller's decision.
func (d *Document) JumpToToday(now time.Time) (int, error) {
	return d.JumpToDate(now)
}

// SetYear rolls the document over to another year: the sequence and index
// are rebuilt (never mutated) and a fresh navigation state replaces the old
// one. The previous page is translated into the new year where it resolves
// (cover to cover, month to the same month, week/day to the same calendar
// date); otherwise the document lands on the year overview rather than
// guessing a nearby page. Subscribers on the old state are discarded with it.
func (d *Document) SetYear(year int) error {
	if year == d.year {
		return nil
	}
	previous := d.Current()

	fresh, err := Open(year)
	if err != nil {
		return err
	}
	d.year = fresh.year
	d.index = fresh.index
	d.state = fresh.state

	if _, err := d.state.JumpTo(translate(previous, year)); err != nil {
		_, _ = d.state.JumpTo(page.YearPage(year))
	}
	return nil
}

// translate maps a descriptor onto the equivalent page of another year.
func translate(desc page.Descriptor, year int) page.Descriptor {
	switch desc.Kind {
	case page.KindCover:
		return page.CoverPage()
	case page.KindMonth:
		return page.MonthPage(desc.Month, year)
	case page.KindWeek:
		if shifted, ok := shiftDate(desc.Date, year); ok {
			return page.WeekPage(shifted)
		}
	case page.KindDay:
		if shifted, ok := shiftDate(desc.Date, year); ok {
			return page.DayPage(shifted)
		}
	}
	return page.YearPage(year)
}

// shiftDate rebuilds a calendar date in another year. Feb 29 has no
// counterpart in a non-leap year; time.Date would normalize it to March 1,
// which would be a silent wrong page, so that case reports failure instead.
func shiftDate(t time.Time, year int) (time.Time, bool) {
	shifted := time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return shifted, shifted.Month() == t.Month()
}
