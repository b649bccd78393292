package table

import (
	"github.com/pkg/errors"
)

// Field is one declared column.
type Field struct {
	Name string
	Kind Kind
}

// Schema is the ordered list of columns of a table.
type Schema []Field

func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// Index returns the position of the named column, or -1.
func (s Schema) Index(name string) int {
	for i, f := range s {
		if f.Name == name {
			return i
		}
	}
	return -1
}

func (s Schema) Equal(o Schema) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

func (s Schema) validate() error {
	if err := checkNames(s.Names()); err != nil {
		return err
	}
	for _, f := range s {
		if !f.Kind.valid() {
			return errors.Errorf("column %q: unknown kind %q", f.Name, f.Kind)
		}
	}
	return nil
}

func checkNames(names []string) error {
	seen := make(map[string]bool, len(names))
	for i, name := range names {
		if name == "" {
			return errors.Wrapf(ErrEmptyColumnName, "column %d", i)
		}
		if seen[name] {
			return errors.Wrapf(ErrDuplicateColumn, "%q", name)
		}
		seen[name] = true
	}
	return nil
}

func (s Schema) copy() Schema {
	if s == nil {
		return nil
	}
	return append(Schema(nil), s...)
}
