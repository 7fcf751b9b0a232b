package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/commands/options"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/runner/pages"
)

func addPages(topLevel *cobra.Command) {
	yo := &options.YearOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "List the page sequence of a planner year",
		Example: `
lotus pages
lotus pages --year 2027
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := pages.Pages{
				Year: yo.Year,
			}
			err := s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddYearArg(cmd, yo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
