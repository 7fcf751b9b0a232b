package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
)

const gridWidth = len("11 12 13 14 15 16 17") // an example week

// MonthGrid prints a Monday-first calendar for the month containing then.
// Days present in busy are highlighted.
func (pp *PrettyPrint) MonthGrid(then time.Time, busy map[int]bool) {
	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (gridWidth - len(m)) / 2
	_, _ = tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", gridWidth-mid-len(m)))

	// Pad out the start of the month. Columns run Monday through Sunday.
	col := mondayColumn(StartDay(then))
	fmt.Print(strings.Repeat("   ", col))

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	days := DaysIn(then)
	for i := 0; i < days; i++ {
		if busy[i+1] {
			_, _ = l2.Printf("%2d ", i+1)
		} else {
			_, _ = l1.Printf("%2d ", i+1)
		}

		col++
		if col > 6 {
			col = 0
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

// WeekRow prints the seven dates of the week anchored at monday, with the
// month title of the anchor above it.
func (pp *PrettyPrint) WeekRow(monday time.Time, busy map[int]bool) {
	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		if busy[d.Day()] {
			_, _ = l2.Printf("%2d ", d.Day())
		} else {
			_, _ = l1.Printf("%2d ", d.Day())
		}
	}
	fmt.Print("\n")
}

// YearGrid prints all twelve month grids of a year in sequence.
func (pp *PrettyPrint) YearGrid(year int, busy func(time.Month) map[int]bool) {
	then := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		var b map[int]bool
		if busy != nil {
			b = busy(then.Month())
		}
		pp.MonthGrid(then, b)
		then = NextMonth(then)
	}
}

// NextMonth returns the first day of the month after then.
func NextMonth(then time.Time) time.Time {
	return time.Date(then.Year(), then.Month()+1, 1, 0, 0, 0, 0, time.UTC)
}

// DaysIn returns the number of days in then's month.
func DaysIn(then time.Time) int {
	return time.Date(then.UTC().Year(), then.UTC().Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartDay returns the weekday of the first of then's month.
func StartDay(then time.Time) time.Weekday {
	return time.Date(then.UTC().Year(), then.UTC().Month(), 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// mondayColumn maps a weekday onto a Monday-first column index.
func mondayColumn(d time.Weekday) int {
	return (int(d) + 6) % 7
}
