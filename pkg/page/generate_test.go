package page

import (
	"testing"
	"time"
)

func TestGenerateCounts(t *testing.T) {
	cases := []struct {
		year  int
		days  int
		weeks int
	}{
		{2024, 366, 53}, // leap year, Jan 1 is a Monday
		{2025, 365, 53},
		{2026, 365, 53},
		{2027, 365, 53},
	}
	for _, tc := range cases {
		seq := Generate(tc.year)
		if got := Days(tc.year); got != tc.days {
			t.Fatalf("Days(%d) = %d, want %d", tc.year, got, tc.days)
		}
		if got := Weeks(tc.year); got != tc.weeks {
			t.Fatalf("Weeks(%d) = %d, want %d", tc.year, got, tc.weeks)
		}
		want := 2 + 12 + tc.weeks + tc.days
		if len(seq) != want {
			t.Fatalf("len(Generate(%d)) = %d, want %d", tc.year, len(seq), want)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(2026)
	b := Generate(2026)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("position %d differs: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestGenerateValidates(t *testing.T) {
	for year := 2020; year <= 2030; year++ {
		if err := Validate(Generate(year)); err != nil {
			t.Fatalf("Validate(Generate(%d)): %v", year, err)
		}
	}
}

func TestGenerateFixedPrefix(t *testing.T) {
	seq := Generate(2026)
	if seq[0] != CoverPage() {
		t.Fatalf("position 0 = %s, want cover", seq[0])
	}
	if seq[1] != YearPage(2026) {
		t.Fatalf("position 1 = %s, want year 2026", seq[1])
	}
	for m := time.January; m <= time.December; m++ {
		pos := 2 + int(m) - 1
		if seq[pos] != MonthPage(m, 2026) {
			t.Fatalf("position %d = %s, want %s 2026", pos, seq[pos], m)
		}
	}
}

func TestGenerateEdgeWeeksSpillIntoNeighborYears(t *testing.T) {
	seq := Generate(2026)

	var weeks []Descriptor
	for _, d := range seq {
		if d.Kind == KindWeek {
			weeks = append(weeks, d)
		}
	}

	// Jan 1, 2026 is a Thursday; the first week is anchored Dec 29, 2025.
	first := weeks[0]
	if want := time.Date(2025, time.December, 29, 0, 0, 0, 0, time.UTC); !first.Date.Equal(want) {
		t.Fatalf("first week anchored %s, want %s", first.Date, want)
	}
	if !first.Contains(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("first week %s does not contain Jan 1, 2026", first)
	}

	// Dec 31, 2026 is a Thursday; the last week runs Dec 28 through Jan 3, 2027.
	last := weeks[len(weeks)-1]
	if want := time.Date(2026, time.December, 28, 0, 0, 0, 0, time.UTC); !last.Date.Equal(want) {
		t.Fatalf("last week anchored %s, want %s", last.Date, want)
	}
	if want := time.Date(2027, time.January, 3, 0, 0, 0, 0, time.UTC); !last.WeekEnd().Equal(want) {
		t.Fatalf("last week ends %s, want %s", last.WeekEnd(), want)
	}
}

func TestGenerateLeapYearHasFeb29(t *testing.T) {
	seq := Generate(2024)
	feb29 := DayPage(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC))
	found := false
	for _, d := range seq {
		if d == feb29 {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("2024 sequence is missing Feb 29")
	}
}

func TestMondayOf(t *testing.T) {
	cases := []struct {
		in   time.Time
		want time.Time
	}{
		{time.Date(2026, time.March, 15, 23, 30, 0, 0, time.UTC), time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)},  // Sunday
		{time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC), time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC)},  // Monday
		{time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC), time.Date(2025, time.December, 29, 0, 0, 0, 0, time.UTC)}, // Thursday
	}
	for _, tc := range cases {
		if got := MondayOf(tc.in); !got.Equal(tc.want) {
			t.Fatalf("MondayOf(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestValidateRejectsCorruptSequences(t *testing.T) {
	base := Generate(2026)

	missingDay := append(append([]Descriptor{}, base[:100]...), base[101:]...)
	if err := Validate(missingDay); err == nil {
		t.Fatalf("expected error for sequence with a gap")
	}

	var swapped []Descriptor
	swapped = append(swapped, base...)
	swapped[2], swapped[3] = swapped[3], swapped[2]
	if err := Validate(swapped); err == nil {
		t.Fatalf("expected error for out-of-order months")
	}

	dup := append(append([]Descriptor{}, base...), base[len(base)-1])
	if err := Validate(dup); err == nil {
		t.Fatalf("expected error for duplicate day page")
	}

	if err := Validate(nil); err != ErrEmptySequence {
		t.Fatalf("Validate(nil) = %v, want ErrEmptySequence", err)
	}
}
