package options

import (
	"github.com/spf13/cobra"
)

// YearOptions
type YearOptions struct {
	Year int
}

func AddYearArg(cmd *cobra.Command, o *YearOptions) {
	cmd.Flags().IntVarP(&o.Year, "year", "y", 0,
		"Specify the planner year. Defaults to the current year.")
}
