package frame

import (
	"github.com/framekit/frame/pkg/errors"
)

// SetColumn adds or overwrites a single column. The value may be a
// typed slice ([]string, []*string, []int64, []int, []float64, []bool),
// a Column, a one-column DataFrame, or a scalar (string, int, int64,
// float64, bool) broadcast to the current row count. A new column is
// appended at the end; an existing one is overwritten in place and
// keeps its position. The frame is never partially mutated: every
// check runs before anything is written.
func (df *DataFrame) SetColumn(name string, value interface{}) error {
	if name == "" {
		return errors.New(errors.ErrorTypeConstruction, "column names must be non-empty strings")
	}

	col, err := df.coerceColumn(name, value)
	if err != nil {
		return err
	}
	if col.Len() != df.Len() {
		return errors.Newf(errors.ErrorTypeShape,
			"value has %d rows, frame has %d", col.Len(), df.Len())
	}

	if pos, ok := df.position(name); ok {
		df.cols[pos] = col
		return nil
	}
	df.cols = append(df.cols, col)
	return nil
}

// coerceColumn normalizes any accepted value shape into an owned Column
func (df *DataFrame) coerceColumn(name string, value interface{}) (Column, error) {
	switch v := value.(type) {
	case []string:
		return Strings(name, v...), nil
	case []*string:
		return NullStrings(name, v...), nil
	case []int64:
		return Ints(name, v...), nil
	case []int:
		vals := make([]int64, len(v))
		for i, x := range v {
			vals[i] = int64(x)
		}
		return Column{name: name, kind: KindInt, ints: vals}, nil
	case []float64:
		return Floats(name, v...), nil
	case []bool:
		return Bools(name, v...), nil

	case Column:
		return v.clone().renamed(name), nil

	case *DataFrame:
		if v == nil {
			return Column{}, errors.New(errors.ErrorTypeMismatch, "value DataFrame must not be nil")
		}
		if len(v.cols) != 1 {
			return Column{}, errors.Newf(errors.ErrorTypeShape,
				"value DataFrame must have exactly one column, got %d", len(v.cols))
		}
		return v.cols[0].clone().renamed(name), nil

	case string:
		vals := make([]string, df.Len())
		for i := range vals {
			vals[i] = v
		}
		return Column{name: name, kind: KindString, strs: vals}, nil
	case int:
		return broadcastInt(name, int64(v), df.Len()), nil
	case int64:
		return broadcastInt(name, v, df.Len()), nil
	case float64:
		vals := make([]float64, df.Len())
		for i := range vals {
			vals[i] = v
		}
		return Column{name: name, kind: KindFloat, floats: vals}, nil
	case bool:
		vals := make([]bool, df.Len())
		for i := range vals {
			vals[i] = v
		}
		return Column{name: name, kind: KindBool, bools: vals}, nil

	default:
		return Column{}, errors.Newf(errors.ErrorTypeMismatch,
			"cannot set a column from %T: use a typed slice, a Column, a one-column DataFrame, or a scalar", value)
	}
}

func broadcastInt(name string, v int64, n int) Column {
	vals := make([]int64, n)
	for i := range vals {
		vals[i] = v
	}
	return Column{name: name, kind: KindInt, ints: vals}
}
