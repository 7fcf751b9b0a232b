// Package strike provides the runner logic for striking entries.
package strike

import (
	"context"
	"errors"

	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/app"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/printers"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/store"
)

// Strike marks an entry as no longer relevant.
type Strike struct {
	ID          string
	Persistence store.Persistence
}

// Do executes the strike for the configured entry ID.
func (n *Strike) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not strike, no persistence")
	}

	svc := &app.Service{Persistence: n.Persistence}
	e, err := svc.Strike(ctx, n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Title(e.Collection)
	pp.Collection(n.Persistence.List(ctx, e.Collection)...)
	return nil
}
