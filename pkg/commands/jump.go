package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/commands/options"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/runner/jump"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/store"
)

func addJump(topLevel *cobra.Command) {
	yo := &options.YearOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	expression := ""

	cmd := &cobra.Command{
		Use:   "jump <expression>",
		Short: "Resolve a date, week, month, or year expression to its page",
		Example: `
lotus jump today
lotus jump 2026-03-15
lotus jump week today
lotus jump "March 2026"
lotus jump 2027
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a date or month expression")
			}
			expression = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := jump.Jump{
				Expression:  expression,
				Year:        yo.Year,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddYearArg(cmd, yo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
