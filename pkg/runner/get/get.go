package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/app"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/entry"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/glyph"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/page"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/printers"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/store"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/timeutil"
)

// Get prints page content: one day page, one month page, or everything.
type Get struct {
	ShowID bool
	Bullet glyph.Bullet
	On     *time.Time
	Month  string
	All    bool

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	switch {
	case n.All:
		for c, all := range n.Persistence.MapAll(ctx) {
			pp.Title(c)
			pp.Collection(n.filtered(all)...)
		}
		return nil
	case n.Month != "":
		return n.month(ctx, pp)
	}

	target := time.Now()
	if n.On != nil {
		target = *n.On
	}
	d := page.DayPage(target)

	pp.Title(d.Title())
	pp.Collection(n.filtered(n.Persistence.List(ctx, d.Collection()))...)
	return nil
}

func (n *Get) month(ctx context.Context, pp printers.PrettyPrint) error {
	month, year, err := timeutil.ParseMonth(n.Month, time.Now())
	if err != nil {
		return err
	}
	d := page.MonthPage(month, year)

	svc := &app.Service{Persistence: n.Persistence}
	busy, err := svc.EntryDates(ctx, d)
	if err != nil {
		return err
	}

	pp.Title(d.Title())
	pp.MonthGrid(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), busy)
	pp.Collection(n.filtered(n.Persistence.List(ctx, d.Collection()))...)
	return nil
}

func (n *Get) filtered(all []*entry.Entry) []*entry.Entry {
	c := make([]*entry.Entry, 0, len(all))
	for _, a := range all {
		if n.Bullet == glyph.Any || n.Bullet == a.Bullet {
			c = append(c, a)
		}
	}
	return c
}
