package interop

import (
	dfgo "github.com/rocketlaunchr/dataframe-go"

	"frames/table"
)

// DataFrameGo returns t as a rocketlaunchr dataframe. Missing cells become
// nil entries, which dataframe-go treats as NaN.
func DataFrameGo(t *table.Table) (*dfgo.DataFrame, error) {
	if t.Ncol() == 0 {
		return nil, ErrNoColumns
	}
	columns := make([]dfgo.Series, t.Ncol())
	for j, f := range t.Schema() {
		vals := make([]interface{}, t.Nrow())
		for i := range vals {
			v := t.Value(i, j)
			if n, ok := v.(int); ok {
				v = int64(n)
			}
			vals[i] = v
		}

		switch f.Kind {
		case table.Int:
			columns[j] = dfgo.NewSeriesInt64(f.Name, nil, vals...)
		case table.Float:
			columns[j] = dfgo.NewSeriesFloat64(f.Name, nil, vals...)
		case table.Bool:
			columns[j] = dfgo.NewSeriesGeneric(f.Name, false, nil, vals...)
		default:
			columns[j] = dfgo.NewSeriesString(f.Name, nil, vals...)
		}
	}
	return dfgo.NewDataFrame(columns...), nil
}
