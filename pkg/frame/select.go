package frame

import (
	"github.com/framekit/frame/pkg/errors"
)

// Select interprets a selector and materializes a new frame. The result
// owns fresh backing storage for every column; mutating it never
// touches the source.
func (df *DataFrame) Select(sel Selector) (*DataFrame, error) {
	if sel == nil {
		return nil, errors.New(errors.ErrorTypeMismatch,
			"select with a column name, a name list, a boolean mask, or a row/column pair")
	}

	switch s := sel.(type) {
	case singleColSelector:
		if _, ok := df.position(s.name); !ok {
			return nil, errors.Newf(errors.ErrorTypeLookup, "unknown column %q", s.name)
		}
		return df.materialize(df.allRowIndices(), []string{s.name})

	case colListSelector:
		return df.materialize(df.allRowIndices(), s.names)

	case maskSelector:
		indices, err := df.maskIndices(s.mask)
		if err != nil {
			return nil, err
		}
		return df.materialize(indices, df.Columns())

	case tupleSelector:
		rows, err := df.resolveRows(s.rows)
		if err != nil {
			return nil, err
		}
		cols, err := df.resolveCols(s.cols)
		if err != nil {
			return nil, err
		}
		return df.materialize(rows, cols)

	default:
		return nil, errors.New(errors.ErrorTypeMismatch,
			"select with a column name, a name list, a boolean mask, or a row/column pair")
	}
}

// resolveRows normalizes a row selector into a concrete index list
func (df *DataFrame) resolveRows(sel RowSelector) ([]int, error) {
	if sel == nil {
		return nil, errors.New(errors.ErrorTypeMismatch,
			"row selection must be an index, an index list, a range, or a boolean mask")
	}

	n := df.Len()
	switch s := sel.(type) {
	case allRows:
		return df.allRowIndices(), nil

	case rowIndex:
		// A single index selects a one-row frame, not a scalar
		idx, err := normalizeRowIndex(s.i, n)
		if err != nil {
			return nil, err
		}
		return []int{idx}, nil

	case rowList:
		indices := make([]int, len(s.indices))
		for j, i := range s.indices {
			idx, err := normalizeRowIndex(i, n)
			if err != nil {
				return nil, err
			}
			indices[j] = idx
		}
		return indices, nil

	case rowMask:
		return df.maskIndices(s.mask)

	case rowRange:
		return rangeIndices(s.start, s.stop, s.step, s.hasStart, s.hasStop, n)

	default:
		return nil, errors.New(errors.ErrorTypeMismatch,
			"row selection must be an index, an index list, a range, or a boolean mask")
	}
}

// resolveCols normalizes a column selector into an ordered name list
func (df *DataFrame) resolveCols(sel ColSelector) ([]string, error) {
	if sel == nil {
		return nil, errors.New(errors.ErrorTypeMismatch,
			"column selection must be an index, a name, a mixed key list, or a range")
	}

	names := df.Columns()
	switch s := sel.(type) {
	case allCols:
		return names, nil

	case colIndex:
		pos, err := df.normalizeColumnIndex(s.i)
		if err != nil {
			return nil, err
		}
		return []string{names[pos]}, nil

	case colName:
		return []string{s.name}, nil

	case colKeyList:
		resolved := make([]string, len(s.keys))
		for j, key := range s.keys {
			switch k := key.(type) {
			case nameKey:
				resolved[j] = k.name
			case indexKey:
				pos, err := df.normalizeColumnIndex(k.i)
				if err != nil {
					return nil, err
				}
				resolved[j] = names[pos]
			default:
				return nil, errors.New(errors.ErrorTypeMismatch,
					"column keys must be names or positions")
			}
		}
		return resolved, nil

	case nameRange:
		start, ok := df.position(s.start)
		if !ok {
			return nil, errors.Newf(errors.ErrorTypeLookup, "unknown column %q", s.start)
		}
		stopPos, ok := df.position(s.stop)
		if !ok {
			return nil, errors.Newf(errors.ErrorTypeLookup, "unknown column %q", s.stop)
		}
		// Label slicing includes the stop column, unlike positional
		// slicing which excludes it
		stop := stopPos + 1
		positions, err := rangeIndices(start, stop, s.step, true, true, len(names))
		if err != nil {
			return nil, err
		}
		return namesAt(names, positions), nil

	case indexRange:
		positions, err := rangeIndices(s.start, s.stop, s.step, s.hasStart, s.hasStop, len(names))
		if err != nil {
			return nil, err
		}
		return namesAt(names, positions), nil

	default:
		return nil, errors.New(errors.ErrorTypeMismatch,
			"column selection must be an index, a name, a mixed key list, or a range")
	}
}

// maskIndices validates a boolean mask frame against df and returns the
// indices of its true rows
func (df *DataFrame) maskIndices(mask *DataFrame) ([]int, error) {
	if mask == nil {
		return nil, errors.New(errors.ErrorTypeMismatch, "mask must be a DataFrame")
	}
	if len(mask.cols) != 1 {
		return nil, errors.New(errors.ErrorTypeShape,
			"can only use a one-column DataFrame as a selection mask")
	}
	col := mask.cols[0]
	if col.kind != KindBool {
		return nil, errors.Newf(errors.ErrorTypeMismatch,
			"mask column must be boolean, got %s", col.kind)
	}
	if col.Len() != df.Len() {
		return nil, errors.Newf(errors.ErrorTypeShape,
			"mask has %d rows, frame has %d", col.Len(), df.Len())
	}

	indices := make([]int, 0, col.Len())
	for i, keep := range col.bools {
		if keep {
			indices = append(indices, i)
		}
	}
	return indices, nil
}

// materialize slices every selected column by the resolved row indices
// into a freshly backed frame. Repeated names collapse to their first
// occurrence.
func (df *DataFrame) materialize(rowIndices []int, names []string) (*DataFrame, error) {
	cols := make([]Column, 0, len(names))
	taken := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := taken[name]; dup {
			continue
		}
		taken[name] = struct{}{}
		pos, ok := df.position(name)
		if !ok {
			return nil, errors.Newf(errors.ErrorTypeLookup, "unknown column %q", name)
		}
		cols = append(cols, df.cols[pos].take(rowIndices))
	}
	if len(cols) == 0 {
		return nil, errors.New(errors.ErrorTypeConstruction, "selection resolved to zero columns")
	}
	return &DataFrame{cols: cols}, nil
}

func (df *DataFrame) allRowIndices() []int {
	indices := make([]int, df.Len())
	for i := range indices {
		indices[i] = i
	}
	return indices
}

// normalizeRowIndex resolves a possibly negative row index
func normalizeRowIndex(i, n int) (int, error) {
	idx := i
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return 0, errors.Newf(errors.ErrorTypeLookup, "row index %d out of range for %d rows", i, n)
	}
	return idx, nil
}

// rangeIndices expands start/stop/step bounds over a sequence of length
// n following standard slice conventions: negative bounds count from
// the end, out-of-range bounds clamp, and a negative step walks
// backwards from the start bound
func rangeIndices(start, stop, step int, hasStart, hasStop bool, n int) ([]int, error) {
	if step == 0 {
		return nil, errors.New(errors.ErrorTypeMismatch, "range step must not be zero")
	}

	var lo, hi int
	if step > 0 {
		lo, hi = 0, n
	} else {
		lo, hi = n-1, -1
	}

	if hasStart {
		lo = clampBound(start, step, n)
	}
	if hasStop {
		hi = clampBound(stop, step, n)
	}

	var indices []int
	if step > 0 {
		for i := lo; i < hi; i += step {
			indices = append(indices, i)
		}
	} else {
		for i := lo; i > hi; i += step {
			indices = append(indices, i)
		}
	}
	if indices == nil {
		indices = []int{}
	}
	return indices, nil
}

func clampBound(b, step, n int) int {
	if b < 0 {
		b += n
	}
	if step > 0 {
		if b < 0 {
			return 0
		}
		if b > n {
			return n
		}
		return b
	}
	if b < -1 {
		return -1
	}
	if b > n-1 {
		return n - 1
	}
	return b
}

func namesAt(names []string, positions []int) []string {
	out := make([]string, len(positions))
	for j, p := range positions {
		out[j] = names[p]
	}
	return out
}
