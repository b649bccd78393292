// Package interop hands a table.Table to other dataframe libraries: gota,
// qframe and dataframe-go. Numeric conversions live in interop/numeric so
// the display path never links the tensor library.
package interop

import (
	"github.com/pkg/errors"
)

var (
	ErrNoColumns       = errors.New("table has no columns")
	ErrUnrepresentable = errors.New("value cannot be represented")
)
