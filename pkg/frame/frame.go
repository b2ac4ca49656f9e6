package frame

import (
	"github.com/framekit/frame/pkg/errors"
)

// DataFrame is an ordered collection of equal-length columns, unique by
// name. Construction validates eagerly; derived frames never share
// backing storage with their source.
type DataFrame struct {
	cols []Column
}

// New creates a DataFrame from the given columns. It fails with a
// construction error when no columns are given, a name is empty or
// duplicated, or column lengths differ.
func New(cols ...Column) (*DataFrame, error) {
	if len(cols) == 0 {
		return nil, errors.New(errors.ErrorTypeConstruction, "a DataFrame requires at least one column")
	}

	seen := make(map[string]struct{}, len(cols))
	rows := cols[0].Len()
	for _, c := range cols {
		if c.name == "" {
			return nil, errors.New(errors.ErrorTypeConstruction, "column names must be non-empty strings")
		}
		if _, dup := seen[c.name]; dup {
			return nil, errors.Newf(errors.ErrorTypeConstruction, "duplicate column name %q", c.name)
		}
		seen[c.name] = struct{}{}
		if c.Len() != rows {
			return nil, errors.Newf(errors.ErrorTypeConstruction,
				"all columns must have the same length: %q has %d rows, expected %d", c.name, c.Len(), rows)
		}
	}

	owned := make([]Column, len(cols))
	for i, c := range cols {
		owned[i] = c.clone()
	}
	return &DataFrame{cols: owned}, nil
}

// Len returns the number of rows
func (df *DataFrame) Len() int {
	if len(df.cols) == 0 {
		return 0
	}
	return df.cols[0].Len()
}

// Shape returns the row and column counts
func (df *DataFrame) Shape() (rows, cols int) {
	return df.Len(), len(df.cols)
}

// Columns returns the ordered column names
func (df *DataFrame) Columns() []string {
	names := make([]string, len(df.cols))
	for i, c := range df.cols {
		names[i] = c.name
	}
	return names
}

// SetColumns renames every column positionally. It fails with a shape
// error when the count mismatches the current column count or the list
// contains duplicates, and a construction error for empty names.
func (df *DataFrame) SetColumns(names []string) error {
	if len(names) != len(df.cols) {
		return errors.Newf(errors.ErrorTypeShape,
			"got %d names for %d columns", len(names), len(df.cols))
	}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			return errors.New(errors.ErrorTypeConstruction, "column names must be non-empty strings")
		}
		if _, dup := seen[name]; dup {
			return errors.Newf(errors.ErrorTypeShape, "duplicate column name %q", name)
		}
		seen[name] = struct{}{}
	}
	for i := range df.cols {
		df.cols[i].name = names[i]
	}
	return nil
}

// Dtypes returns a two-column frame of column names and their kind
// labels, in column order
func (df *DataFrame) Dtypes() *DataFrame {
	names := make([]string, len(df.cols))
	kinds := make([]string, len(df.cols))
	for i, c := range df.cols {
		names[i] = c.name
		kinds[i] = c.kind.String()
	}
	return &DataFrame{cols: []Column{
		Strings("Column Name", names...),
		Strings("Data Type", kinds...),
	}}
}

// Column returns a copy of the named column. The copy owns fresh
// backing storage.
func (df *DataFrame) Column(name string) (Column, error) {
	pos, ok := df.position(name)
	if !ok {
		return Column{}, errors.Newf(errors.ErrorTypeLookup, "unknown column %q", name)
	}
	return df.cols[pos].clone(), nil
}

// ColumnAt returns a copy of the column at position i; negative indices
// count from the end
func (df *DataFrame) ColumnAt(i int) (Column, error) {
	pos, err := df.normalizeColumnIndex(i)
	if err != nil {
		return Column{}, err
	}
	return df.cols[pos].clone(), nil
}

// Cell returns the value at the given row in the named column; nulls
// return nil
func (df *DataFrame) Cell(row int, col string) (interface{}, error) {
	pos, ok := df.position(col)
	if !ok {
		return nil, errors.Newf(errors.ErrorTypeLookup, "unknown column %q", col)
	}
	if row < 0 || row >= df.Len() {
		return nil, errors.Newf(errors.ErrorTypeLookup, "row %d out of range for %d rows", row, df.Len())
	}
	return df.cols[pos].Value(row), nil
}

// Equal reports whether both frames hold the same columns in the same
// order with equal names, kinds, and elements
func (df *DataFrame) Equal(other *DataFrame) bool {
	if other == nil || len(df.cols) != len(other.cols) {
		return false
	}
	for i := range df.cols {
		if !df.cols[i].equal(other.cols[i]) {
			return false
		}
	}
	return true
}

// position looks up a column's index by name
func (df *DataFrame) position(name string) (int, bool) {
	for i, c := range df.cols {
		if c.name == name {
			return i, true
		}
	}
	return 0, false
}

// normalizeColumnIndex resolves a possibly negative positional index
// following standard sequence conventions
func (df *DataFrame) normalizeColumnIndex(i int) (int, error) {
	pos := i
	if pos < 0 {
		pos += len(df.cols)
	}
	if pos < 0 || pos >= len(df.cols) {
		return 0, errors.Newf(errors.ErrorTypeLookup,
			"column index %d out of range for %d columns", i, len(df.cols))
	}
	return pos, nil
}
