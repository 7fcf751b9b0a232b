package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/page"
)

// Pages prints the full page sequence as a position table followed by
// per-category counts.
func (pp *PrettyPrint) Pages(index *page.Index) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("POSITION", "KIND", "PAGE")

	counts := map[page.Kind]int{}
	for pos, d := range index.Pages() {
		tbl.AddRow(fmt.Sprintf("%d", pos), string(d.Kind), d.Title())
		counts[d.Kind]++
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	f := color.New(color.Faint)
	_, _ = f.Printf("%d pages", index.Len())
	for _, k := range page.AllKinds() {
		_, _ = f.Printf("  %s:%d", k, counts[k])
	}
	_, _ = f.Println("")
}

// Page prints one resolved page with its position.
func (pp *PrettyPrint) Page(pos int, d page.Descriptor) {
	b := color.New(color.Bold)
	f := color.New(color.Faint)
	_, _ = b.Print(d.Title())
	_, _ = f.Printf("  (%s page, position %d)\n", d.Kind, pos)
}
