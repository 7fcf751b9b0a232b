package ui

import (
	"context"
	"time"

	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/app"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/planner"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/store"
	planui "github.com/chenchungwan/lotusplannerv3-sub007/pkg/tui/app"
)

// UI opens the planner document for a year and hands it to the TUI.
type UI struct {
	Year int

	Persistence store.Persistence
}

func (n *UI) Do(ctx context.Context) error {
	year := n.Year
	if year == 0 {
		year = time.Now().Year()
	}

	doc, err := planner.Open(year)
	if err != nil {
		return err
	}

	svc := &app.Service{Persistence: n.Persistence}
	return planui.Run(svc, doc)
}
