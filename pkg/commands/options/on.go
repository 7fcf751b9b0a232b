package options

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/timeutil"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArg(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2026-02-28" or --on=today.`)
}

func (o *OnOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := timeutil.ParseDate(o.OnString, time.Now())
	if err != nil {
		return nil, err
	}
	return &t, nil
}
