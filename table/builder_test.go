package table

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	peopleColumns = []string{"id", "name", "sex", "age"}
	peopleRows    = [][]interface{}{
		{1, "Jesse", "male", 25},
		{2, "Jane", "female", 25},
		{3, "Mark", "male", 20},
		{4, "Peter", "male", 55},
		{5, "Paula", "female", 35},
	}
)

func rowsOf(t *Table) [][]interface{} {
	rows := make([][]interface{}, t.Nrow())
	for i := range rows {
		rows[i] = t.Row(i)
	}
	return rows
}

func TestFromColumnsAndRows(t *testing.T) {
	people, err := FromColumnsAndRows(peopleColumns, peopleRows)
	require.NoError(t, err)

	assert.Equal(t, peopleColumns, people.Columns())
	assert.Equal(t, peopleRows, rowsOf(people))
	assert.Equal(t, Schema{
		{Name: "id", Kind: Int},
		{Name: "name", Kind: String},
		{Name: "sex", Kind: String},
		{Name: "age", Kind: Int},
	}, people.Schema())

	nrow, ncol := people.Dims()
	assert.Equal(t, 5, nrow)
	assert.Equal(t, 4, ncol)
}

func TestFromColumnsAndRowsShapeMismatch(t *testing.T) {
	_, err := FromColumnsAndRows([]string{"id", "name"}, [][]interface{}{{1, "x", 2}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	var shape *ShapeMismatchError
	require.True(t, errors.As(err, &shape))
	assert.Equal(t, ShapeMismatchError{Row: 0, Got: 3, Want: 2}, *shape)
	assert.Contains(t, err.Error(), "row 0 has 3 values, want 2")
}

func TestFromColumnsAndRowsShortRow(t *testing.T) {
	_, err := FromColumnsAndRows(peopleColumns, [][]interface{}{
		{1, "Jesse", "male", 25},
		{2, "Jane"},
	})
	var shape *ShapeMismatchError
	require.True(t, errors.As(err, &shape))
	assert.Equal(t, 1, shape.Row)
	assert.Equal(t, 2, shape.Got)
}

func TestFromColumnsAndRowsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		rows    [][]interface{}
		want    error
	}{
		{"duplicate column", []string{"a", "a"}, [][]interface{}{{1, 2}}, ErrDuplicateColumn},
		{"empty column name", []string{"a", ""}, [][]interface{}{{1, 2}}, ErrEmptyColumnName},
		{"mixed kinds", []string{"a"}, [][]interface{}{{1}, {"x"}}, ErrKindMismatch},
		{"non-scalar", []string{"a"}, [][]interface{}{{[]int{1}}}, ErrUnsupportedValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromColumnsAndRows(tt.columns, tt.rows)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestFromColumnsAndRowsInference(t *testing.T) {
	tb, err := FromColumnsAndRows(
		[]string{"n", "x", "ok", "none"},
		[][]interface{}{
			{int64(1), 1, true, nil},
			{int8(2), 2.5, false, nil},
			{nil, float32(0.5), nil, nil},
		},
	)
	require.NoError(t, err)
	assert.Equal(t, Schema{
		{Name: "n", Kind: Int},
		{Name: "x", Kind: Float},
		{Name: "ok", Kind: Bool},
		{Name: "none", Kind: String},
	}, tb.Schema())

	assert.Equal(t, []interface{}{1, 1.0, true, nil}, tb.Row(0))
	assert.Equal(t, []interface{}{nil, 0.5, nil, nil}, tb.Row(2))
}

func TestFromColumnsAndRowsNoRows(t *testing.T) {
	tb, err := FromColumnsAndRows([]string{"a", "b"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tb.Columns())
	assert.Equal(t, 0, tb.Nrow())
}

func TestRoundTrip(t *testing.T) {
	people, err := FromColumnsAndRows(peopleColumns, peopleRows)
	require.NoError(t, err)

	again, err := FromColumnsAndRows(people.Columns(), rowsOf(people))
	require.NoError(t, err)
	assert.True(t, people.Equal(again))
}

func TestStringsKeptVerbatim(t *testing.T) {
	rows := [][]interface{}{{"NaN", 1}, {"x", 2}, {nil, 3}}
	tb, err := FromColumnsAndRows([]string{"s", "n"}, rows)
	require.NoError(t, err)

	assert.Equal(t, rows, rowsOf(tb))
	assert.Equal(t, "NaN", tb.Value(0, 0))
	assert.Nil(t, tb.Value(2, 0))

	again, err := FromColumnsAndRows(tb.Columns(), rowsOf(tb))
	require.NoError(t, err)
	assert.True(t, tb.Equal(again))
}

func TestWidenedColumnReturnsFloats(t *testing.T) {
	tb, err := FromColumnsAndRows([]string{"x"}, [][]interface{}{{1}, {2.5}})
	require.NoError(t, err)

	assert.Equal(t, Float, tb.Schema()[0].Kind)
	assert.Equal(t, 1.0, tb.Value(0, 0))
	assert.IsType(t, float64(0), tb.Value(0, 0))
}

func TestFromRecords(t *testing.T) {
	scores, err := FromRecords([]Record{
		R("A", 1, "B", 10),
		R("A", 2, "B", 20),
		R("A", 3, "B", 30),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, scores.Columns())
	assert.Equal(t, [][]interface{}{{1, 10}, {2, 20}, {3, 30}}, rowsOf(scores))
}

func TestFromRecordsKeyOrder(t *testing.T) {
	tb, err := FromRecords([]Record{
		R("z", "first", "a", 1),
		R("a", 2, "z", "second"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a"}, tb.Columns())
	assert.Equal(t, []interface{}{"second", 2}, tb.Row(1))
}

func TestFromRecordsEmpty(t *testing.T) {
	tb, err := FromRecords(nil)
	require.NoError(t, err)
	nrow, ncol := tb.Dims()
	assert.Zero(t, nrow)
	assert.Zero(t, ncol)
	assert.Empty(t, tb.Columns())
}

func TestFromRecordsSchemaMismatch(t *testing.T) {
	tests := []struct {
		name       string
		records    []Record
		missing    []string
		unexpected []string
	}{
		{
			name:    "missing key",
			records: []Record{R("A", 1, "B", 10), R("A", 2)},
			missing: []string{"B"},
		},
		{
			name:       "extra key",
			records:    []Record{R("A", 1), R("A", 2, "C", 3)},
			unexpected: []string{"C"},
		},
		{
			name:       "renamed key",
			records:    []Record{R("A", 1, "B", 10), R("A", 2, "b", 20)},
			missing:    []string{"B"},
			unexpected: []string{"b"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRecords(tt.records)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSchemaMismatch))

			var schema *SchemaMismatchError
			require.True(t, errors.As(err, &schema))
			assert.Equal(t, 1, schema.Record)
			assert.Equal(t, tt.missing, schema.Missing)
			assert.Equal(t, tt.unexpected, schema.Unexpected)
		})
	}
}

func TestFromRecordsDuplicateKey(t *testing.T) {
	_, err := FromRecords([]Record{R("A", 1), R("A", 2, "A", 3)})
	assert.True(t, errors.Is(err, ErrDuplicateColumn))

	_, err = FromRecords([]Record{R("A", 1, "A", 2)})
	assert.True(t, errors.Is(err, ErrDuplicateColumn))
}

func TestFromMaps(t *testing.T) {
	tb, err := FromMaps([]map[string]interface{}{
		{"B": 10, "A": 1},
		{"A": 2, "B": 20},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, tb.Columns())
	assert.Equal(t, [][]interface{}{{1, 10}, {2, 20}}, rowsOf(tb))

	_, err = FromMaps([]map[string]interface{}{{"A": 1}, {"B": 2}})
	assert.True(t, errors.Is(err, ErrSchemaMismatch))
}

func TestRecordGet(t *testing.T) {
	r := R("A", 1, "B", nil)
	assert.Equal(t, []string{"A", "B"}, r.Keys())

	v, ok := r.Get("A")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = r.Get("B")
	assert.True(t, ok)
	assert.Nil(t, v)

	_, ok = r.Get("C")
	assert.False(t, ok)
}

func TestRecordPanics(t *testing.T) {
	assert.Panics(t, func() { R("A") })
	assert.Panics(t, func() { R(1, 2) })
}
