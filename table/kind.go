package table

import (
	"math"

	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
)

// Kind is the scalar type held by a column.
type Kind string

// Supported column kinds. The values match gota's series types so a Kind can
// be handed straight to series.New.
const (
	Int    Kind = "int"
	Float  Kind = "float"
	String Kind = "string"
	Bool   Kind = "bool"
)

func (k Kind) seriesType() series.Type {
	return series.Type(k)
}

// Numeric reports whether values of this kind are numbers.
func (k Kind) Numeric() bool {
	return k == Int || k == Float
}

func (k Kind) valid() bool {
	switch k {
	case Int, Float, String, Bool:
		return true
	}
	return false
}

// normalize maps a Go scalar onto the representation stored for its kind.
// A nil (or NaN) value is a missing cell and comes back with an empty kind.
func normalize(v interface{}) (interface{}, Kind, error) {
	switch val := v.(type) {
	case nil:
		return nil, "", nil
	case int:
		return val, Int, nil
	case int8:
		return int(val), Int, nil
	case int16:
		return int(val), Int, nil
	case int32:
		return int(val), Int, nil
	case int64:
		return int(val), Int, nil
	case uint8:
		return int(val), Int, nil
	case uint16:
		return int(val), Int, nil
	case uint32:
		return int(val), Int, nil
	case float32:
		return normalizeFloat(float64(val))
	case float64:
		return normalizeFloat(val)
	case string:
		return val, String, nil
	case bool:
		return val, Bool, nil
	}
	return nil, "", errors.Wrapf(ErrUnsupportedValue, "%T", v)
}

func normalizeFloat(f float64) (interface{}, Kind, error) {
	if math.IsNaN(f) {
		return nil, Float, nil
	}
	return f, Float, nil
}

// merge returns the kind a column takes once it has seen both kinds.
func merge(have, got Kind) (Kind, bool) {
	switch {
	case have == "":
		return got, true
	case got == "" || have == got:
		return have, true
	case have.Numeric() && got.Numeric():
		return Float, true
	}
	return have, false
}
