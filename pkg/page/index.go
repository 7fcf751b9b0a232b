package page

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var (
	// ErrEmptySequence indicates an index was built from (or a lookup ran
	// against) a sequence with no pages. This is a construction bug, never a
	// user-facing condition.
	ErrEmptySequence = errors.New("page: empty sequence")

	// ErrDateOutOfRange indicates a date or week outside the year the
	// sequence covers.
	ErrDateOutOfRange = errors.New("page: date out of range")

	// ErrMonthOutOfRange indicates a month/year pair not present in the
	// sequence.
	ErrMonthOutOfRange = errors.New("page: month out of range")
)

// Index resolves descriptors to positions in one generated sequence. It is
// built once, is read-only afterwards, and is rebuilt from scratch whenever
// the backing sequence changes (a year rollover creates a new Index, it never
// mutates an existing one).
//
// Month lookups are O(1) via a position map precomputed at construction;
// months occupy a fixed contiguous block right after the year overview, and
// month shortcuts are the hottest navigation path. Week and day lookups ride
// the guaranteed ascending order of their blocks with binary search, O(log n).
type Index struct {
	seq      []Descriptor
	year     int
	coverPos int
	yearPos  int
	months   map[time.Month]int
	weekLo int // position of the first week page
	weekHi int // position one past the last week page
	dayLo  int
	dayHi  int
}

// NewIndex builds the index for a generated sequence. The sequence must be
// fully generated first; a partially built sequence must never be indexed.
func NewIndex(seq []Descriptor) (*Index, error) {
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}
	idx := &Index{
		seq:    seq,
		months: make(map[time.Month]int, 12),
		weekLo: -1,
		dayLo:  -1,
	}
	for pos, d := range seq {
		switch d.Kind {
		case KindCover:
			idx.coverPos = pos
		case KindYear:
			idx.year = d.Year
			idx.yearPos = pos
		case KindMonth:
			if _, dup := idx.months[d.Month]; !dup {
				idx.months[d.Month] = pos
			}
		case KindWeek:
			if idx.weekLo < 0 {
				idx.weekLo = pos
			}
			idx.weekHi = pos + 1
		case KindDay:
			if idx.dayLo < 0 {
				idx.dayLo = pos
			}
			idx.dayHi = pos + 1
		}
	}
	return idx, nil
}

// Len returns the number of pages in the sequence.
func (x *Index) Len() int {
	return len(x.seq)
}

// Year returns the year the sequence covers.
func (x *Index) Year() int {
	return x.year
}

// At returns the descriptor at a position.
func (x *Index) At(pos int) (Descriptor, bool) {
	if pos < 0 || pos >= len(x.seq) {
		return Descriptor{}, false
	}
	return x.seq[pos], true
}

// Pages returns the backing sequence. Callers must treat it as read-only.
func (x *Index) Pages() []Descriptor {
	return x.seq
}

// MonthPosition resolves a month overview page in O(1).
func (x *Index) MonthPosition(m time.Month, year int) (int, error) {
	if year != x.year {
		return 0, fmt.Errorf("%w: %s %d not in the %d document", ErrMonthOutOfRange, m, year, x.year)
	}
	pos, ok := x.months[m]
	if !ok {
		return 0, fmt.Errorf("%w: no page for month %d", ErrMonthOutOfRange, int(m))
	}
	return pos, nil
}

// WeekPosition resolves the week page whose [Monday, Monday+6] span contains
// t. Binary search over the ascending week block.
func (x *Index) WeekPosition(t time.Time) (int, error) {
	if x.weekLo < 0 {
		return 0, fmt.Errorf("%w: sequence has no week pages", ErrDateOutOfRange)
	}
	monday := MondayOf(t)
	weeks := x.seq[x.weekLo:x.weekHi]
	i := sort.Search(len(weeks), func(i int) bool {
		return !weeks[i].Date.Before(monday)
	})
	if i == len(weeks) || !weeks[i].Date.Equal(monday) || !weeks[i].Contains(t) {
		return 0, fmt.Errorf("%w: no week containing %s in %d", ErrDateOutOfRange, DateOnly(t).Format(dayFormat), x.year)
	}
	return x.weekLo + i, nil
}

// DayPosition resolves the day page for an exact date. Binary search over the
// ascending day block.
func (x *Index) DayPosition(t time.Time) (int, error) {
	if x.dayLo < 0 {
		return 0, fmt.Errorf("%w: sequence has no day pages", ErrDateOutOfRange)
	}
	date := DateOnly(t)
	days := x.seq[x.dayLo:x.dayHi]
	i := sort.Search(len(days), func(i int) bool {
		return !days[i].Date.Before(date)
	})
	if i == len(days) || !days[i].Date.Equal(date) {
		return 0, fmt.Errorf("%w: %s not in %d", ErrDateOutOfRange, date.Format(dayFormat), x.year)
	}
	return x.dayLo + i, nil
}

// Position resolves any descriptor to its position. Descriptors outside the
// sequence fail with the matching typed error; callers decide whether to
// regenerate for another year or decline, never to land on a nearby page.
func (x *Index) Position(d Descriptor) (int, error) {
	switch d.Kind {
	case KindCover:
		return x.coverPos, nil
	case KindYear:
		if d.Year != x.year {
			return 0, fmt.Errorf("%w: year %d not in the %d document", ErrDateOutOfRange, d.Year, x.year)
		}
		return x.yearPos, nil
	case KindMonth:
		return x.MonthPosition(d.Month, d.Year)
	case KindWeek:
		return x.WeekPosition(d.Date)
	case KindDay:
		return x.DayPosition(d.Date)
	}
	return 0, fmt.Errorf("page: unknown descriptor kind %q", d.Kind)
}
