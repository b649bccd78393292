package interop

import (
	"math"

	"github.com/pkg/errors"
	"github.com/tobgu/qframe"
	"github.com/tobgu/qframe/config/newqf"

	"frames/table"
)

// QFrame returns t as a QFrame with the same column order. qframe has no
// missing value for int and bool columns, so a nil cell in one of those
// fails with ErrUnrepresentable.
func QFrame(t *table.Table) (qframe.QFrame, error) {
	data := make(map[string]interface{}, t.Ncol())
	for j, f := range t.Schema() {
		col, err := qframeColumn(t, j, f)
		if err != nil {
			return qframe.QFrame{}, err
		}
		data[f.Name] = col
	}

	qf := qframe.New(data, newqf.ColumnOrder(t.Columns()...))
	if qf.Err != nil {
		return qframe.QFrame{}, errors.Wrap(qf.Err, "Unable to create qframe")
	}
	return qf, nil
}

func qframeColumn(t *table.Table, j int, f table.Field) (interface{}, error) {
	n := t.Nrow()
	missing := func(i int) error {
		return errors.Wrapf(ErrUnrepresentable, "qframe: %s column %q row %d is missing", f.Kind, f.Name, i)
	}

	switch f.Kind {
	case table.Int:
		col := make([]int, n)
		for i := range col {
			v, ok := t.Value(i, j).(int)
			if !ok {
				return nil, missing(i)
			}
			col[i] = v
		}
		return col, nil
	case table.Bool:
		col := make([]bool, n)
		for i := range col {
			v, ok := t.Value(i, j).(bool)
			if !ok {
				return nil, missing(i)
			}
			col[i] = v
		}
		return col, nil
	case table.Float:
		col := make([]float64, n)
		for i := range col {
			v, ok := t.Value(i, j).(float64)
			if !ok {
				v = math.NaN()
			}
			col[i] = v
		}
		return col, nil
	}

	col := make([]*string, n)
	for i := range col {
		if v, ok := t.Value(i, j).(string); ok {
			col[i] = &v
		}
	}
	return col, nil
}
