package add

import (
	"context"
	"time"

	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/entry"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/glyph"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/page"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/printers"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/store"
)

// Add records a new entry on a day page.
type Add struct {
	Bullet      glyph.Bullet
	Message     string
	On          *time.Time
	Priority    bool
	Inspiration bool

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	target := time.Now()
	if n.On != nil {
		target = *n.On
	}
	d := page.DayPage(target)

	e := entry.New(d.Collection(), n.Bullet, n.Message)
	switch {
	case n.Priority:
		e.Signifier = glyph.Priority
	case n.Inspiration:
		e.Signifier = glyph.Inspiration
	}

	pp := printers.PrettyPrint{}
	pp.Title(d.Title())
	if n.Persistence != nil {
		if err := n.Persistence.Store(e); err != nil {
			return err
		}
		all := n.Persistence.List(ctx, e.Collection)
		pp.Collection(all...)
	} else {
		pp.Collection(e)
	}

	return nil
}
