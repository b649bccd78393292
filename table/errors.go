package table

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrShapeMismatch    = errors.New("shape mismatch")
	ErrSchemaMismatch   = errors.New("schema mismatch")
	ErrKindMismatch     = errors.New("kind mismatch")
	ErrDuplicateColumn  = errors.New("duplicate column")
	ErrEmptyColumnName  = errors.New("empty column name")
	ErrUnsupportedValue = errors.New("unsupported value")
	ErrUnknownColumn    = errors.New("unknown column")
)

// ShapeMismatchError reports a row whose length differs from the number of
// declared columns.
type ShapeMismatchError struct {
	Row  int
	Got  int
	Want int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%v: row %d has %d values, want %d", ErrShapeMismatch, e.Row, e.Got, e.Want)
}

func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// SchemaMismatchError reports a record whose keys differ from the keys of the
// first record.
type SchemaMismatchError struct {
	Record     int
	Missing    []string
	Unexpected []string
}

func (e *SchemaMismatchError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(e.Missing, ","))
	}
	if len(e.Unexpected) > 0 {
		parts = append(parts, "unexpected "+strings.Join(e.Unexpected, ","))
	}
	return fmt.Sprintf("%v: record %d: %s", ErrSchemaMismatch, e.Record, strings.Join(parts, "; "))
}

func (e *SchemaMismatchError) Is(target error) bool {
	return target == ErrSchemaMismatch
}

// KindMismatchError reports a cell whose type cannot live in its column.
type KindMismatchError struct {
	Row    int
	Column string
	Want   Kind
	Got    Kind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("%v: row %d column %q holds %s, want %s", ErrKindMismatch, e.Row, e.Column, e.Got, e.Want)
}

func (e *KindMismatchError) Is(target error) bool {
	return target == ErrKindMismatch
}
