// Package render turns a table.Table into text: a plain row array and a
// fixed-width grid with a header line.
package render

import (
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"

	"frames/table"
)

// DefaultEmptyMarker is printed in place of a table that has no columns.
const DefaultEmptyMarker = "(empty table)"

// Rows returns every row's values in column order. Missing cells are nil.
func Rows(t *table.Table) [][]interface{} {
	rows := make([][]interface{}, t.Nrow())
	for i := range rows {
		rows[i] = t.Row(i)
	}
	return rows
}

// WriteRows writes the row array view of t as one JSON array followed by a
// newline.
func WriteRows(w io.Writer, t *table.Table) error {
	if err := json.NewEncoder(w).Encode(Rows(t)); err != nil {
		return errors.Wrap(err, "Unable to encode rows")
	}
	return nil
}

// Display renders t as a bordered grid. The grid style cannot fail.
func Display(t *table.Table) string {
	s, _ := New().Render(t)
	return s
}

// lineBreaks keeps a cell on one line of the grid.
var lineBreaks = strings.NewReplacer("\r\n", `\r\n`, "\n", `\n`, "\r", `\r`)

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "NaN"
	case string:
		return lineBreaks.Replace(val)
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	}
	return ""
}
