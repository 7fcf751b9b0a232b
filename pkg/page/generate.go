package page

import (
	"fmt"
	"time"
)

// Generate produces the complete, ordered page sequence for one year:
// Cover, Year, Month x12 ascending, every Monday-anchored week intersecting
// the year ascending by anchor, then every date of the year ascending. The
// result is deterministic; the same year always yields an identical slice.
func Generate(year int) []Descriptor {
	first := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	seq := make([]Descriptor, 0, 2+12+54+366)
	seq = append(seq, CoverPage(), YearPage(year))

	for m := time.January; m <= time.December; m++ {
		seq = append(seq, MonthPage(m, year))
	}

	// The week containing Jan 1 and the week containing Dec 31 both belong to
	// this document even when their spans spill into the adjacent years.
	for monday := MondayOf(first); !monday.After(last); monday = monday.AddDate(0, 0, 7) {
		seq = append(seq, WeekPage(monday))
	}

	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		seq = append(seq, DayPage(d))
	}

	return seq
}

// Days returns the number of day pages a year document carries.
func Days(year int) int {
	first := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return int(first.AddDate(1, 0, 0).Sub(first).Hours() / 24)
}

// Weeks returns the number of distinct Monday-anchored weeks intersecting
// the year.
func Weeks(year int) int {
	first := MondayOf(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
	last := MondayOf(time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC))
	return int(last.Sub(first).Hours()/(24*7)) + 1
}

// Validate asserts the structural invariants of a generated sequence: the
// fixed category order, exactly one Cover and Year page, twelve ascending
// months, gap-free ascending Monday-anchored weeks, and gap-free ascending
// days covering the year. Violations indicate a generator bug; Validate is a
// development and test assertion, not a runtime repair mechanism.
func Validate(seq []Descriptor) error {
	if len(seq) == 0 {
		return ErrEmptySequence
	}
	if seq[0].Kind != KindCover {
		return fmt.Errorf("page: sequence starts with %s, want cover", seq[0])
	}
	if len(seq) < 2 || seq[1].Kind != KindYear {
		return fmt.Errorf("page: second page is not the year overview")
	}
	year := seq[1].Year

	rank := map[Kind]int{KindCover: 0, KindYear: 1, KindMonth: 2, KindWeek: 3, KindDay: 4}
	counts := map[Kind]int{}
	prev := -1
	var prevDesc Descriptor
	for i, d := range seq {
		r, ok := rank[d.Kind]
		if !ok {
			return fmt.Errorf("page: unknown kind %q at position %d", d.Kind, i)
		}
		if r < prev {
			return fmt.Errorf("page: %s at position %d out of category order", d, i)
		}
		if r > prev {
			// First page of a category must open the category's range.
			switch d.Kind {
			case KindMonth:
				if d.Month != time.January {
					return fmt.Errorf("page: month block starts at %s", d.Month)
				}
			case KindWeek:
				if !d.Contains(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)) {
					return fmt.Errorf("page: first week %s does not contain January 1", d.Date.Format(dayFormat))
				}
			case KindDay:
				if d.Date.Month() != time.January || d.Date.Day() != 1 {
					return fmt.Errorf("page: day block starts at %s", d.Date.Format(dayFormat))
				}
			}
		}
		if r == prev {
			switch d.Kind {
			case KindCover, KindYear:
				return fmt.Errorf("page: duplicate %s page", d.Kind)
			case KindMonth:
				if d.Month != prevDesc.Month+1 {
					return fmt.Errorf("page: month %s follows %s", d.Month, prevDesc.Month)
				}
			case KindWeek:
				if !d.Date.Equal(prevDesc.Date.AddDate(0, 0, 7)) {
					return fmt.Errorf("page: week %s does not follow %s by seven days", d.Date.Format(dayFormat), prevDesc.Date.Format(dayFormat))
				}
			case KindDay:
				if !d.Date.Equal(prevDesc.Date.AddDate(0, 0, 1)) {
					return fmt.Errorf("page: day %s does not follow %s", d.Date.Format(dayFormat), prevDesc.Date.Format(dayFormat))
				}
			}
		}
		switch d.Kind {
		case KindYear:
			if d.Year != year {
				return fmt.Errorf("page: year page for %d in %d document", d.Year, year)
			}
		case KindMonth:
			if d.Year != year {
				return fmt.Errorf("page: month page %s outside year %d", d, year)
			}
		case KindWeek:
			if !d.Date.Equal(MondayOf(d.Date)) {
				return fmt.Errorf("page: week anchor %s is not a Monday", d.Date.Format(dayFormat))
			}
		case KindDay:
			if d.Date.Year() != year {
				return fmt.Errorf("page: day page %s outside year %d", d, year)
			}
		}
		counts[d.Kind]++
		prev = r
		prevDesc = d
	}

	if counts[KindCover] != 1 || counts[KindYear] != 1 {
		return fmt.Errorf("page: want one cover and one year page, have %d and %d", counts[KindCover], counts[KindYear])
	}
	if counts[KindMonth] != 12 {
		return fmt.Errorf("page: want 12 month pages, have %d", counts[KindMonth])
	}
	if want := Weeks(year); counts[KindWeek] != want {
		return fmt.Errorf("page: want %d week pages for %d, have %d", want, year, counts[KindWeek])
	}
	if want := Days(year); counts[KindDay] != want {
		return fmt.Errorf("page: want %d day pages for %d, have %d", want, year, counts[KindDay])
	}
	return nil
}
