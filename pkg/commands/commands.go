package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "lotus",
		Short: base.Wrap80("A yearly planner on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addPages(topLevel)
	addJump(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addComplete(topLevel)
	addStrike(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
