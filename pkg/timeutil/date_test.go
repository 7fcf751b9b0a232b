package timeutil

import (
	"testing"
	"time"
)

var ref = time.Date(2026, time.August, 25, 14, 30, 0, 0, time.UTC)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"today", time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC)},
		{"tomorrow", time.Date(2026, time.August, 26, 0, 0, 0, 0, time.UTC)},
		{"yesterday", time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)},
		{"2026-03-15", time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{"March 15, 2026", time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{"March 15", time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{"  Jan 2  ", time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.in, ref)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", tc.in, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseDateErrors(t *testing.T) {
	for _, in := range []string{"", "soon", "2026-13-40", "Marchtember"} {
		if _, err := ParseDate(in, ref); err == nil {
			t.Fatalf("ParseDate(%q) succeeded, want error", in)
		}
	}
}

func TestParseMonth(t *testing.T) {
	cases := []struct {
		in    string
		month time.Month
		year  int
	}{
		{"March 2026", time.March, 2026},
		{"2027-09", time.September, 2027},
		{"December", time.December, 2026},
		{"jan 2025", time.January, 2025},
	}
	for _, tc := range cases {
		m, y, err := ParseMonth(tc.in, ref)
		if err != nil {
			t.Fatalf("ParseMonth(%q): %v", tc.in, err)
		}
		if m != tc.month || y != tc.year {
			t.Fatalf("ParseMonth(%q) = %s %d, want %s %d", tc.in, m, y, tc.month, tc.year)
		}
	}

	if _, _, err := ParseMonth("not-a-month", ref); err == nil {
		t.Fatalf("expected error for junk month")
	}
}
