package interop

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"

	"frames/table"
)

// Gota returns t as a gota DataFrame. The columns are copied, so the frame
// can be mutated freely.
func Gota(t *table.Table) (dataframe.DataFrame, error) {
	if t.Ncol() == 0 {
		return dataframe.DataFrame{}, ErrNoColumns
	}
	columns := make([]series.Series, 0, t.Ncol())
	for _, name := range t.Columns() {
		col, err := t.Column(name)
		if err != nil {
			return dataframe.DataFrame{}, err
		}
		columns = append(columns, col)
	}
	df := dataframe.New(columns...)
	if df.Err != nil {
		return dataframe.DataFrame{}, errors.Wrap(df.Err, "Unable to create gota dataframe")
	}
	return df, nil
}
