package jump

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/app"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/entry"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/page"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/planner"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/printers"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/store"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/timeutil"
)

// Jump resolves an expression to its page and prints it. Expressions cover
// day pages ("today", "2026-03-15"), week pages ("week 2026-03-15"), month
// pages ("March 2026"), and year pages ("2026").
type Jump struct {
	Expression string
	Year       int
	ShowID     bool

	Persistence store.Persistence
}

func (n *Jump) Do(ctx context.Context) error {
	now := time.Now()
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	expr := strings.TrimSpace(n.Expression)

	if fields := strings.Fields(expr); len(fields) > 1 && strings.EqualFold(fields[0], "week") {
		t, err := timeutil.ParseDate(strings.Join(fields[1:], " "), now)
		if err != nil {
			return err
		}
		return n.week(ctx, pp, t)
	}

	if year, err := strconv.Atoi(expr); err == nil && year >= 1000 && year <= 9999 {
		return n.year(ctx, pp, year)
	}

	if t, err := timeutil.ParseDate(expr, now); err == nil {
		return n.day(ctx, pp, t)
	}

	month, year, err := timeutil.ParseMonth(expr, now)
	if err != nil {
		return fmt.Errorf("jump: unrecognized expression %q", n.Expression)
	}
	return n.month(ctx, pp, month, year)
}

func (n *Jump) day(ctx context.Context, pp printers.PrettyPrint, t time.Time) error {
	doc, err := n.open(t.Year())
	if err != nil {
		return err
	}
	pos, err := doc.JumpToDate(t)
	if err != nil {
		return err
	}
	pp.Page(pos, doc.Current())
	if n.Persistence != nil {
		pp.NewLine()
		pp.Collection(n.Persistence.List(ctx, doc.Current().Collection())...)
	}
	return nil
}

func (n *Jump) week(ctx context.Context, pp printers.PrettyPrint, t time.Time) error {
	doc, err := n.open(t.Year())
	if err != nil {
		return err
	}
	pos, err := doc.JumpToWeek(t)
	if err != nil {
		return err
	}
	current := doc.Current()
	pp.Page(pos, current)
	pp.NewLine()
	pp.WeekRow(current.Date, n.busy(ctx, current.Date.Month(), current.Date.Year()))
	return nil
}

func (n *Jump) month(ctx context.Context, pp printers.PrettyPrint, month time.Month, year int) error {
	doc, err := n.open(year)
	if err != nil {
		return err
	}
	pos, err := doc.JumpToMonth(month)
	if err != nil {
		return err
	}
	current := doc.Current()
	pp.Page(pos, current)
	pp.NewLine()
	pp.MonthGrid(time.Date(current.Year, current.Month, 1, 0, 0, 0, 0, time.UTC),
		n.busy(ctx, current.Month, current.Year))

	if n.Persistence != nil {
		if all := n.Persistence.List(ctx, current.Collection()); len(all) > 0 {
			entry.PrettyPrintCollection(all...)
		}
	}
	return nil
}

func (n *Jump) year(ctx context.Context, pp printers.PrettyPrint, year int) error {
	doc, err := n.open(year)
	if err != nil {
		return err
	}
	pos, err := doc.Nav().JumpTo(page.YearPage(doc.Year()))
	if err != nil {
		return err
	}
	pp.Page(pos, doc.Current())
	pp.NewLine()
	pp.YearGrid(doc.Year(), func(m time.Month) map[int]bool {
		return n.busy(ctx, m, doc.Year())
	})
	return nil
}

// open resolves the document year: an explicit --year wins over the year
// carried by the expression.
func (n *Jump) open(year int) (*planner.Document, error) {
	if n.Year != 0 {
		year = n.Year
	}
	return planner.Open(year)
}

func (n *Jump) busy(ctx context.Context, month time.Month, year int) map[int]bool {
	if n.Persistence == nil {
		return nil
	}
	svc := &app.Service{Persistence: n.Persistence}
	days, err := svc.EntryDates(ctx, page.MonthPage(month, year))
	if err != nil {
		return nil
	}
	return days
}
