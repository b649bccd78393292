// Package table builds immutable, column-typed tables from rows or records.
//
// Each column is held as a gota series, so a Table can be handed to the
// wider dataframe ecosystem without copying values cell by cell.
package table

import (
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
)

// Table is an ordered set of named, typed columns of equal length. It is
// never modified after construction; every accessor returns a copy.
type Table struct {
	schema  Schema
	columns []series.Series
	// text holds the cells of String columns as given. gota reads the
	// string "NaN" as a missing value, so its series cannot be trusted
	// to give them back.
	text  [][]interface{}
	nrows int
}

// Empty returns a table with no columns and no rows.
func Empty() *Table {
	return &Table{}
}

// New builds a table from a declared schema. Every row must carry one value
// per field and every value must fit its field's kind; an Int value fits a
// Float field. nil marks a missing cell.
func New(schema Schema, rows [][]interface{}) (*Table, error) {
	t, err := build(schema, rows)
	if err != nil {
		return nil, errors.Wrap(err, "building table from schema")
	}
	return t, nil
}

func build(schema Schema, rows [][]interface{}) (*Table, error) {
	if err := schema.validate(); err != nil {
		return nil, err
	}
	if err := checkShape(len(schema), rows); err != nil {
		return nil, err
	}

	columns := make([]series.Series, len(schema))
	text := make([][]interface{}, len(schema))
	for j, f := range schema {
		values := make([]interface{}, len(rows))
		for i, row := range rows {
			v, kind, err := normalize(row[j])
			if err != nil {
				return nil, errors.Wrapf(err, "row %d column %q", i, f.Name)
			}
			if kind != "" && kind != f.Kind && !(f.Kind == Float && kind == Int) {
				return nil, &KindMismatchError{Row: i, Column: f.Name, Want: f.Kind, Got: kind}
			}
			values[i] = v
		}
		if f.Kind == String {
			text[j] = values
		}
		columns[j] = series.New(values, f.Kind.seriesType(), f.Name)
		if columns[j].Err != nil {
			return nil, errors.Wrapf(columns[j].Err, "column %q", f.Name)
		}
	}

	return &Table{
		schema:  schema.copy(),
		columns: columns,
		text:    text,
		nrows:   len(rows),
	}, nil
}

func checkShape(ncols int, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) != ncols {
			return &ShapeMismatchError{Row: i, Got: len(row), Want: ncols}
		}
	}
	return nil
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return t.schema.Names()
}

func (t *Table) Schema() Schema {
	return t.schema.copy()
}

func (t *Table) Nrow() int {
	return t.nrows
}

func (t *Table) Ncol() int {
	return len(t.schema)
}

// Dims returns the number of rows and columns.
func (t *Table) Dims() (int, int) {
	return t.nrows, len(t.schema)
}

// Value returns the cell at row i, column j, or nil for a missing cell. It
// panics when either index is out of range.
func (t *Table) Value(i, j int) interface{} {
	if t.text[j] != nil {
		return t.text[j][i]
	}
	return t.columns[j].Val(i)
}

// Row returns the values of row i in column order.
func (t *Table) Row(i int) []interface{} {
	row := make([]interface{}, len(t.columns))
	for j := range t.columns {
		row[j] = t.Value(i, j)
	}
	return row
}

// Column returns a copy of the named column. gota holds a string cell
// equal to "NaN" as missing; Value still returns it verbatim.
func (t *Table) Column(name string) (series.Series, error) {
	j := t.schema.Index(name)
	if j < 0 {
		return series.Series{}, errors.Wrapf(ErrUnknownColumn, "%q", name)
	}
	return t.columns[j].Copy(), nil
}

// Equal reports whether both tables have the same schema and the same values
// in the same order.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.nrows != o.nrows || !t.schema.Equal(o.schema) {
		return false
	}
	for j := range t.columns {
		for i := 0; i < t.nrows; i++ {
			if t.Value(i, j) != o.Value(i, j) {
				return false
			}
		}
	}
	return true
}
