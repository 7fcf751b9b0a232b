// Package page models the browsable yearly planner document: the typed page
// descriptors, the per-year page sequence generator, and the position index
// used to resolve dates, weeks, and months to pages.
package page

import (
	"fmt"
	"time"
)

// Kind identifies what a page shows.
type Kind string

const (
	// KindCover is the single cover page at the front of the document.
	KindCover Kind = "cover"
	// KindYear is the single year overview page.
	KindYear Kind = "year"
	// KindMonth is a month overview page.
	KindMonth Kind = "month"
	// KindWeek is a week overview page anchored on its Monday.
	KindWeek Kind = "week"
	// KindDay is a single day page.
	KindDay Kind = "day"
)

// AllKinds returns the kinds in document order.
func AllKinds() []Kind {
	return []Kind{KindCover, KindYear, KindMonth, KindWeek, KindDay}
}

const (
	monthFormat = "January 2006"
	dayFormat   = "January 2, 2006"
)

// Descriptor is a data-only identifier for one page. Construct values through
// CoverPage, YearPage, MonthPage, WeekPage, and DayPage so the date fields are
// normalized; normalized descriptors are comparable with ==.
type Descriptor struct {
	Kind  Kind
	Year  int        // year and month pages
	Month time.Month // month pages
	Date  time.Time  // week pages: Monday anchor; day pages: the date
}

// CoverPage returns the cover descriptor.
func CoverPage() Descriptor {
	return Descriptor{Kind: KindCover}
}

// YearPage returns the year overview descriptor.
func YearPage(year int) Descriptor {
	return Descriptor{Kind: KindYear, Year: year}
}

// MonthPage returns the overview descriptor for a month.
func MonthPage(m time.Month, year int) Descriptor {
	return Descriptor{Kind: KindMonth, Year: year, Month: m}
}

// WeekPage returns the descriptor for the Monday-first week containing t.
// The anchor is normalized to the Monday on or before t.
func WeekPage(t time.Time) Descriptor {
	return Descriptor{Kind: KindWeek, Date: MondayOf(t)}
}

// DayPage returns the descriptor for a single date.
func DayPage(t time.Time) Descriptor {
	return Descriptor{Kind: KindDay, Date: DateOnly(t)}
}

// DateOnly strips t to a midnight UTC calendar date so descriptors compare
// independent of clock time and location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MondayOf returns the Monday on or before t, normalized via DateOnly.
func MondayOf(t time.Time) time.Time {
	d := DateOnly(t)
	// time.Weekday counts Sunday as 0; shift so Monday is 0.
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// WeekEnd returns the Sunday closing the week anchored at the receiver's
// Monday. Only meaningful for week descriptors.
func (d Descriptor) WeekEnd() time.Time {
	return d.Date.AddDate(0, 0, 6)
}

// Contains reports whether a week descriptor's span [Monday, Monday+6]
// includes t. False for every other kind.
func (d Descriptor) Contains(t time.Time) bool {
	if d.Kind != KindWeek {
		return false
	}
	day := DateOnly(t)
	return !day.Before(d.Date) && !day.After(d.WeekEnd())
}

// Title renders the page heading shown to the user.
func (d Descriptor) Title() string {
	switch d.Kind {
	case KindCover:
		return "Cover"
	case KindYear:
		return fmt.Sprintf("%d", d.Year)
	case KindMonth:
		return fmt.Sprintf("%s %d", d.Month, d.Year)
	case KindWeek:
		return "Week of " + d.Date.Format(dayFormat)
	case KindDay:
		return d.Date.Format(dayFormat)
	}
	return string(d.Kind)
}

// Collection maps the page to the storage collection name holding its
// entries. Day and month pages use the same date-formatted names the journal
// store has always used, so content written against dates stays addressable.
func (d Descriptor) Collection() string {
	switch d.Kind {
	case KindCover:
		return "Cover"
	case KindYear:
		return fmt.Sprintf("%d", d.Year)
	case KindMonth:
		return time.Date(d.Year, d.Month, 1, 0, 0, 0, 0, time.UTC).Format(monthFormat)
	case KindWeek:
		return "Week of " + d.Date.Format(dayFormat)
	case KindDay:
		return d.Date.Format(dayFormat)
	}
	return string(d.Kind)
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s(%s)", d.Kind, d.Title())
}
