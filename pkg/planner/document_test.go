package planner

import (
	"errors"
	"testing"
	"time"

	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/page"
)

func TestOpenStartsAtCover(t *testing.T) {
	doc, err := Open(2026)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if doc.Current() != page.CoverPage() {
		t.Fatalf("opened at %s, want cover", doc.Current())
	}
	if want := 2 + 12 + 53 + 365; doc.Index().Len() != want {
		t.Fatalf("document has %d pages, want %d", doc.Index().Len(), want)
	}
}

func TestJumpHelpers(t *testing.T) {
	doc, err := Open(2026)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if _, err := doc.JumpToMonth(time.March); err != nil {
		t.Fatalf("JumpToMonth: %v", err)
	}
	if doc.Current() != page.MonthPage(time.March, 2026) {
		t.Fatalf("current = %s, want March 2026", doc.Current())
	}

	mar15 := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	if _, err := doc.JumpToDate(mar15); err != nil {
		t.Fatalf("JumpToDate: %v", err)
	}
	if doc.Current() != page.DayPage(mar15) {
		t.Fatalf("current = %s, want day Mar 15", doc.Current())
	}

	if _, err := doc.JumpToWeek(mar15); err != nil {
		t.Fatalf("JumpToWeek: %v", err)
	}
	if !doc.Current().Contains(mar15) {
		t.Fatalf("current week %s does not contain Mar 15", doc.Current())
	}
}

func TestJumpToTodayOutsideYear(t *testing.T) {
	doc, err := Open(2026)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	doc.Advance(5)
	before := doc.Nav().Position()

	now := time.Date(2027, time.August, 25, 9, 0, 0, 0, time.UTC)
	if _, err := doc.JumpToToday(now); !errors.Is(err, page.ErrDateOutOfRange) {
		t.Fatalf("JumpToToday outside year = %v, want ErrDateOutOfRange", err)
	}
	if doc.Nav().Position() != before {
		t.Fatalf("failed today-jump moved the position")
	}
}

func TestSetYearKeepsEquivalentPage(t *testing.T) {
	doc, err := Open(2026)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := doc.JumpToMonth(time.September); err != nil {
		t.Fatalf("JumpToMonth: %v", err)
	}

	if err := doc.SetYear(2027); err != nil {
		t.Fatalf("SetYear: %v", err)
	}
	if doc.Year() != 2027 {
		t.Fatalf("year = %d, want 2027", doc.Year())
	}
	if doc.Current() != page.MonthPage(time.September, 2027) {
		t.Fatalf("current after rollover = %s, want September 2027", doc.Current())
	}
}

func TestSetYearFallsBackToYearOverview(t *testing.T) {
	doc, err := Open(2024)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	feb29 := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	if _, err := doc.JumpToDate(feb29); err != nil {
		t.Fatalf("JumpToDate: %v", err)
	}

	// 2025 has no Feb 29; the document must not guess a neighboring day.
	if err := doc.SetYear(2025); err != nil {
		t.Fatalf("SetYear: %v", err)
	}
	if doc.Current() != page.YearPage(2025) {
		t.Fatalf("current after rollover = %s, want 2025 year overview", doc.Current())
	}
}

func TestSetYearSameYearIsNoop(t *testing.T) {
	doc, err := Open(2026)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	doc.Advance(42)
	pos := doc.Nav().Position()
	if err := doc.SetYear(2026); err != nil {
		t.Fatalf("SetYear: %v", err)
	}
	if doc.Nav().Position() != pos {
		t.Fatalf("SetYear to the same year moved the position")
	}
}
