package keys

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

var legendRows = []struct {
	action Action
	scope  string
}{
	{ActionLeft, "overlay"},
	{ActionRight, "overlay"},
	{ActionOK, "overlay"},
	{ActionCancel, "overlay, home when idle"},
	{ActionHome, "global"},
	{ActionQuickTimer, "global"},
	{ActionShopping, "global"},
}

// WriteLegend prints the key map as a table.
func WriteLegend(w io.Writer, km KeyMap) error {
	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Action"), bold.Sprint("Keys"), bold.Sprint("Scope"))
	for _, row := range legendRows {
		b, _ := km.Binding(row.action)
		tbl.AddRow(row.action.String(), strings.Join(b.Keys(), ", "), dim.Sprint(row.scope))
	}
	_, err := fmt.Fprintln(w, tbl)
	return err
}
