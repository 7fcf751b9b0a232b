package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/commands/options"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/runner/complete"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/store"
)

func addComplete(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "complete <entry id>",
		Aliases: []string{"completed", "done"},
		Short:   "Mark an entry completed",
		Example: `
lotus complete 171dff69f8b99dca
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an entry id")
			}
			io.ID = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := complete.Complete{
				ID:          io.ID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
