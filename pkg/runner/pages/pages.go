package pages

import (
	"context"
	"time"

	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/page"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/printers"
)

// Pages lists the full page sequence of a planner year.
type Pages struct {
	Year int
}

func (n *Pages) Do(ctx context.Context) error {
	year := n.Year
	if year == 0 {
		year = time.Now().Year()
	}

	index, err := page.NewIndex(page.Generate(year))
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Pages(index)
	return nil
}
