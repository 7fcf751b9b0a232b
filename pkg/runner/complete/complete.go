// Package complete provides the runner logic for marking entries complete.
package complete

import (
	"context"
	"errors"

	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/app"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/printers"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/store"
)

// Complete marks an entry as completed.
type Complete struct {
	ID          string
	Persistence store.Persistence
}

// Do executes the completion for the configured entry ID.
func (n *Complete) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not complete, no persistence")
	}

	svc := &app.Service{Persistence: n.Persistence}
	e, err := svc.Complete(ctx, n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Title(e.Collection)
	pp.Collection(n.Persistence.List(ctx, e.Collection)...)
	return nil
}
