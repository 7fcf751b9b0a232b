package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/commands/options"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/glyph"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/runner/add"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	so := &options.SigOptions{}
	oo := &options.OutputOptions{}

	bullet := glyph.Task
	message := ""

	cmd := &cobra.Command{
		Use:   "add [bullet] <message>",
		Short: "Add an entry to a day page",
		Example: `
lotus add task water the plants
lotus add note rain all morning --on=2026-03-15
lotus add event dentist --on="March 20" --priority
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a message")
			}
			if b, err := glyph.BulletForAlias(args[0]); err == nil {
				bullet = b
				args = args[1:]
			}
			if len(args) < 1 {
				return errors.New("requires a message")
			}
			message = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := on.GetOn()
			if err != nil {
				return oo.HandleError(err)
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Bullet:      bullet,
				Message:     message,
				On:          t,
				Priority:    so.Priority,
				Inspiration: so.Inspiration,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOnArg(cmd, on)
	options.AddSigArgs(cmd, so)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
