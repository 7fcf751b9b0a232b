package options

import (
	"github.com/spf13/cobra"
)

// GetOptions
type GetOptions struct {
	Month string
	All   bool
}

func AddMonthArg(cmd *cobra.Command, o *GetOptions) {
	cmd.Flags().StringVarP(&o.Month, "month", "m", "",
		`Show a month page, example: --month="March 2026".`)
}

func AddAllArg(cmd *cobra.Command, o *GetOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Show every collection.")
}
