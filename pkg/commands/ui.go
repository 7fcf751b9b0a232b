package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/commands/options"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/runner/ui"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	yo := &options.YearOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the planner interface",
		Example: `
lotus ui
lotus ui --year 2027
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			i := ui.UI{Year: yo.Year, Persistence: p}
			return i.Do(context.Background())
		},
	}

	options.AddYearArg(cmd, yo)

	topLevel.AddCommand(cmd)
}
