package render

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"frames/table"
)

// writeTable lays t out with one header line and one line per row. Each
// column is as wide as its header or its widest value, whichever is larger.
// Numeric columns are right-aligned, the rest left-aligned.
func writeTable(w io.Writer, t *table.Table, bordered bool) {
	tw := tablewriter.NewWriter(w)
	tw.SetAutoWrapText(false)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetHeader(t.Columns())

	align := make([]int, t.Ncol())
	for j, f := range t.Schema() {
		align[j] = tablewriter.ALIGN_LEFT
		if f.Kind.Numeric() {
			align[j] = tablewriter.ALIGN_RIGHT
		}
	}
	tw.SetColumnAlignment(align)

	if !bordered {
		tw.SetBorder(false)
		tw.SetHeaderLine(false)
		tw.SetCenterSeparator("")
		tw.SetColumnSeparator("")
		tw.SetRowSeparator("")
		tw.SetTablePadding("  ")
		tw.SetNoWhiteSpace(true)
	}

	for i := 0; i < t.Nrow(); i++ {
		row := t.Row(i)
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = formatValue(v)
		}
		tw.Append(cells)
	}
	tw.Render()
}
