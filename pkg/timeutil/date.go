// Package timeutil parses the human-friendly date and month expressions
// accepted by jump commands.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// yearlessLayouts are completed with the reference year.
var yearlessLayouts = []string{
	"January 2",
	"Jan 2",
	"01-02",
}

var monthLayouts = []string{
	"January 2006",
	"Jan 2006",
	"2006-01",
}

// ParseDate parses a date expression ("today", "tomorrow", "yesterday", ISO
// dates, or "March 15" style forms completed with now's year) into a
// midnight-UTC date.
func ParseDate(input string, now time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("timeutil: empty date")
	}

	switch strings.ToLower(trimmed) {
	case "today":
		return dateOnly(now), nil
	case "tomorrow":
		return dateOnly(now).AddDate(0, 0, 1), nil
	case "yesterday":
		return dateOnly(now).AddDate(0, 0, -1), nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return dateOnly(t), nil
		}
	}
	for _, layout := range yearlessLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("timeutil: unrecognized date %q", input)
}

// ParseMonth parses a month expression ("March 2026", "2026-03", or a bare
// month name completed with now's year).
func ParseMonth(input string, now time.Time) (time.Month, int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, 0, fmt.Errorf("timeutil: empty month")
	}

	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Month(), t.Year(), nil
		}
	}
	for _, layout := range []string{"January", "Jan"} {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Month(), now.Year(), nil
		}
	}
	return 0, 0, fmt.Errorf("timeutil: unrecognized month %q", input)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
