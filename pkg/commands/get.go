package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/commands/options"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/glyph"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/runner/get"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	io := &options.IDOptions{}
	co := &options.GetOptions{}
	oo := &options.OutputOptions{}

	bullet := glyph.Any

	long := strings.Builder{}
	long.WriteString("Get the content of a day or month page.\n\n")
	long.WriteString("Bullet and aliases:\n")

	validArgs := make([]string, 0)
	for _, g := range glyph.DefaultBullets() {
		if g.Symbol == "" || g.Signifier {
			continue
		}
		long.WriteString(fmt.Sprintf("%s: %s\n", g.Symbol, strings.Join(g.Aliases, ", ")))
		validArgs = append(validArgs, g.Noun)
	}

	cmd := &cobra.Command{
		Use:   "get [bullet]",
		Short: "Get the content of a page",
		Long:  long.String(),
		Example: `
lotus get
lotus get tasks --on=2026-03-15
lotus get --month="March 2026"
lotus get notes --all
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				bullet = glyph.Any
				return nil
			}
			var err error
			bullet, err = glyph.BulletForAlias(args[0])
			return err
		},
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := on.GetOn()
			if err != nil {
				return oo.HandleError(err)
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      io.ShowID,
				Bullet:      bullet,
				On:          t,
				Month:       co.Month,
				All:         co.All,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOnArg(cmd, on)
	options.AddMonthArg(cmd, co)
	options.AddAllArg(cmd, co)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
