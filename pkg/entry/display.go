package entry

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// PrettyPrintCollection renders a titled table of entries to stdout.
func PrettyPrintCollection(entries ...*Entry) {
	if len(entries) == 0 {
		return
	}

	title := color.New(color.Bold, color.Underline)
	_, _ = title.Println(entries[0].Title())

	tbl := uitable.New()
	tbl.Separator = " "
	for _, e := range entries {
		tbl.AddRow(e.Row())
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
