package table

import (
	"github.com/pkg/errors"
)

// FromColumnsAndRows builds a table whose columns are the given names, in
// order, and whose row i holds rows[i]. Column kinds are inferred from the
// values. A row of the wrong length fails with a *ShapeMismatchError; rows
// are never truncated or padded.
//
// Cells come back as given except where a column widens: a column mixing
// ints and floats is a Float column, and its int cells come back as
// float64.
func FromColumnsAndRows(columns []string, rows [][]interface{}) (*Table, error) {
	t, err := fromRows(columns, rows)
	if err != nil {
		return nil, errors.Wrap(err, "building table from rows")
	}
	return t, nil
}

func fromRows(columns []string, rows [][]interface{}) (*Table, error) {
	if err := checkNames(columns); err != nil {
		return nil, err
	}
	if err := checkShape(len(columns), rows); err != nil {
		return nil, err
	}
	schema, err := infer(columns, rows)
	if err != nil {
		return nil, err
	}
	return build(schema, rows)
}

// FromRecords builds a table from records sharing one key set. The first
// record's key order becomes the column order and every record is re-keyed
// to it. A record with a different key set fails with a
// *SchemaMismatchError: missing keys are not filled with nulls. No records
// gives an empty table.
func FromRecords(records []Record) (*Table, error) {
	t, err := fromRecords(records)
	if err != nil {
		return nil, errors.Wrap(err, "building table from records")
	}
	return t, nil
}

// FromMaps is FromRecords for map input. Maps carry no key order, so columns
// are sorted by name.
func FromMaps(maps []map[string]interface{}) (*Table, error) {
	records := make([]Record, len(maps))
	for i, m := range maps {
		records[i] = recordFromMap(m)
	}
	t, err := fromRecords(records)
	if err != nil {
		return nil, errors.Wrap(err, "building table from maps")
	}
	return t, nil
}

func fromRecords(records []Record) (*Table, error) {
	if len(records) == 0 {
		return Empty(), nil
	}
	columns := records[0].Keys()
	if err := checkNames(columns); err != nil {
		return nil, errors.Wrap(err, "record 0")
	}

	index := make(map[string]int, len(columns))
	for j, c := range columns {
		index[c] = j
	}

	rows := make([][]interface{}, len(records))
	for i, rec := range records {
		row := make([]interface{}, len(columns))
		seen := make([]bool, len(columns))
		var unexpected []string
		for _, e := range rec {
			j, ok := index[e.Key]
			if !ok {
				unexpected = append(unexpected, e.Key)
				continue
			}
			if seen[j] {
				return nil, errors.Wrapf(ErrDuplicateColumn, "record %d: %q", i, e.Key)
			}
			seen[j] = true
			row[j] = e.Value
		}
		var missing []string
		for j, ok := range seen {
			if !ok {
				missing = append(missing, columns[j])
			}
		}
		if len(missing) > 0 || len(unexpected) > 0 {
			return nil, &SchemaMismatchError{Record: i, Missing: missing, Unexpected: unexpected}
		}
		rows[i] = row
	}

	schema, err := infer(columns, rows)
	if err != nil {
		return nil, err
	}
	return build(schema, rows)
}

// infer picks one kind per column from its values. Ints and floats in the
// same column widen to Float; a column with nothing but missing cells is a
// String column.
func infer(columns []string, rows [][]interface{}) (Schema, error) {
	schema := make(Schema, len(columns))
	for j, name := range columns {
		var kind Kind
		for i, row := range rows {
			_, got, err := normalize(row[j])
			if err != nil {
				return nil, errors.Wrapf(err, "row %d column %q", i, name)
			}
			merged, ok := merge(kind, got)
			if !ok {
				return nil, &KindMismatchError{Row: i, Column: name, Want: kind, Got: got}
			}
			kind = merged
		}
		if kind == "" {
			kind = String
		}
		schema[j] = Field{Name: name, Kind: kind}
	}
	return schema, nil
}
