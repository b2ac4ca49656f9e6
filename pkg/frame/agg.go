package frame

import (
	"math"
	"sort"

	"github.com/framekit/frame/pkg/errors"
)

// Aggregations reduce every supporting column to a single value and
// collect the results into a one-row frame. Columns whose kind does not
// support the reduction are skipped, as are null elements; a column
// with no non-null elements is skipped entirely.

// Min returns the smallest element of each column. Text columns compare
// lexicographically.
func (df *DataFrame) Min() (*DataFrame, error) {
	return df.aggregate("min", func(c Column) (Column, bool) {
		switch c.kind {
		case KindString:
			return reduceStrings(c, func(best, v string) bool { return v < best })
		case KindInt:
			return reduceInts(c, func(best, v int64) bool { return v < best })
		case KindFloat:
			return reduceFloats(c, func(best, v float64) bool { return v < best })
		default:
			return reduceBools(c, func(best, v bool) bool { return !v && best })
		}
	})
}

// Max returns the largest element of each column. Text columns compare
// lexicographically.
func (df *DataFrame) Max() (*DataFrame, error) {
	return df.aggregate("max", func(c Column) (Column, bool) {
		switch c.kind {
		case KindString:
			return reduceStrings(c, func(best, v string) bool { return v > best })
		case KindInt:
			return reduceInts(c, func(best, v int64) bool { return v > best })
		case KindFloat:
			return reduceFloats(c, func(best, v float64) bool { return v > best })
		default:
			return reduceBools(c, func(best, v bool) bool { return v && !best })
		}
	})
}

// Sum adds the elements of each numeric or boolean column; booleans
// count their true entries
func (df *DataFrame) Sum() (*DataFrame, error) {
	return df.aggregate("sum", func(c Column) (Column, bool) {
		switch c.kind {
		case KindInt:
			var total int64
			if !eachValidInt(c, func(v int64) { total += v }) {
				return Column{}, false
			}
			return Column{name: c.name, kind: KindInt, ints: []int64{total}}, true
		case KindFloat:
			var total float64
			if !eachValidFloat(c, func(v float64) { total += v }) {
				return Column{}, false
			}
			return Column{name: c.name, kind: KindFloat, floats: []float64{total}}, true
		case KindBool:
			var total int64
			if !eachValidBool(c, func(v bool) {
				if v {
					total++
				}
			}) {
				return Column{}, false
			}
			return Column{name: c.name, kind: KindInt, ints: []int64{total}}, true
		default:
			return Column{}, false
		}
	})
}

// Mean returns the arithmetic mean of each numeric or boolean column as
// a float
func (df *DataFrame) Mean() (*DataFrame, error) {
	return df.aggregate("mean", func(c Column) (Column, bool) {
		vals, ok := floatValues(c)
		if !ok {
			return Column{}, false
		}
		var total float64
		for _, v := range vals {
			total += v
		}
		return Column{name: c.name, kind: KindFloat, floats: []float64{total / float64(len(vals))}}, true
	})
}

// Median returns the middle element of each numeric or boolean column
// as a float, averaging the two central elements for even lengths
func (df *DataFrame) Median() (*DataFrame, error) {
	return df.aggregate("median", func(c Column) (Column, bool) {
		vals, ok := floatValues(c)
		if !ok {
			return Column{}, false
		}
		sort.Float64s(vals)
		mid := len(vals) / 2
		m := vals[mid]
		if len(vals)%2 == 0 {
			m = (vals[mid-1] + vals[mid]) / 2
		}
		return Column{name: c.name, kind: KindFloat, floats: []float64{m}}, true
	})
}

// Var returns the population variance of each numeric or boolean column
func (df *DataFrame) Var() (*DataFrame, error) {
	return df.aggregate("var", func(c Column) (Column, bool) {
		v, ok := variance(c)
		if !ok {
			return Column{}, false
		}
		return Column{name: c.name, kind: KindFloat, floats: []float64{v}}, true
	})
}

// Std returns the population standard deviation of each numeric or
// boolean column
func (df *DataFrame) Std() (*DataFrame, error) {
	return df.aggregate("std", func(c Column) (Column, bool) {
		v, ok := variance(c)
		if !ok {
			return Column{}, false
		}
		return Column{name: c.name, kind: KindFloat, floats: []float64{math.Sqrt(v)}}, true
	})
}

// Any reports whether any element of each numeric or boolean column is
// true or non-zero
func (df *DataFrame) Any() (*DataFrame, error) {
	return df.aggregate("any", func(c Column) (Column, bool) {
		return truthReduce(c, false, func(acc, v bool) bool { return acc || v })
	})
}

// All reports whether every element of each numeric or boolean column
// is true or non-zero
func (df *DataFrame) All() (*DataFrame, error) {
	return df.aggregate("all", func(c Column) (Column, bool) {
		return truthReduce(c, true, func(acc, v bool) bool { return acc && v })
	})
}

// ArgMax returns the row index of the largest element of each column
func (df *DataFrame) ArgMax() (*DataFrame, error) {
	return df.aggregate("argmax", func(c Column) (Column, bool) {
		return argReduce(c, func(best, v interface{}) bool { return less(best, v) })
	})
}

// ArgMin returns the row index of the smallest element of each column
func (df *DataFrame) ArgMin() (*DataFrame, error) {
	return df.aggregate("argmin", func(c Column) (Column, bool) {
		return argReduce(c, func(best, v interface{}) bool { return less(v, best) })
	})
}

// aggregate applies reduce to every column and assembles the surviving
// one-element results into a one-row frame
func (df *DataFrame) aggregate(name string, reduce func(Column) (Column, bool)) (*DataFrame, error) {
	cols := make([]Column, 0, len(df.cols))
	for _, c := range df.cols {
		if out, ok := reduce(c); ok {
			cols = append(cols, out)
		}
	}
	if len(cols) == 0 {
		return nil, errors.Newf(errors.ErrorTypeMismatch, "no column supports %s", name)
	}
	return &DataFrame{cols: cols}, nil
}

func reduceStrings(c Column, better func(best, v string) bool) (Column, bool) {
	found := false
	var best string
	for i, v := range c.strs {
		if c.IsNull(i) {
			continue
		}
		if !found || better(best, v) {
			best = v
			found = true
		}
	}
	if !found {
		return Column{}, false
	}
	return Column{name: c.name, kind: KindString, strs: []string{best}}, true
}

func reduceInts(c Column, better func(best, v int64) bool) (Column, bool) {
	found := false
	var best int64
	for i, v := range c.ints {
		if c.IsNull(i) {
			continue
		}
		if !found || better(best, v) {
			best = v
			found = true
		}
	}
	if !found {
		return Column{}, false
	}
	return Column{name: c.name, kind: KindInt, ints: []int64{best}}, true
}

func reduceFloats(c Column, better func(best, v float64) bool) (Column, bool) {
	found := false
	var best float64
	for i, v := range c.floats {
		if c.IsNull(i) {
			continue
		}
		if !found || better(best, v) {
			best = v
			found = true
		}
	}
	if !found {
		return Column{}, false
	}
	return Column{name: c.name, kind: KindFloat, floats: []float64{best}}, true
}

func reduceBools(c Column, better func(best, v bool) bool) (Column, bool) {
	found := false
	var best bool
	for i, v := range c.bools {
		if c.IsNull(i) {
			continue
		}
		if !found || better(best, v) {
			best = v
			found = true
		}
	}
	if !found {
		return Column{}, false
	}
	return Column{name: c.name, kind: KindBool, bools: []bool{best}}, true
}

// eachValidInt visits all non-null elements, reporting whether any exist
func eachValidInt(c Column, visit func(int64)) bool {
	found := false
	for i, v := range c.ints {
		if c.IsNull(i) {
			continue
		}
		visit(v)
		found = true
	}
	return found
}

func eachValidFloat(c Column, visit func(float64)) bool {
	found := false
	for i, v := range c.floats {
		if c.IsNull(i) {
			continue
		}
		visit(v)
		found = true
	}
	return found
}

func eachValidBool(c Column, visit func(bool)) bool {
	found := false
	for i, v := range c.bools {
		if c.IsNull(i) {
			continue
		}
		visit(v)
		found = true
	}
	return found
}

// floatValues collects the non-null elements of a numeric or boolean
// column as floats
func floatValues(c Column) ([]float64, bool) {
	var vals []float64
	switch c.kind {
	case KindInt:
		for i, v := range c.ints {
			if !c.IsNull(i) {
				vals = append(vals, float64(v))
			}
		}
	case KindFloat:
		for i, v := range c.floats {
			if !c.IsNull(i) {
				vals = append(vals, v)
			}
		}
	case KindBool:
		for i, v := range c.bools {
			if !c.IsNull(i) {
				if v {
					vals = append(vals, 1)
				} else {
					vals = append(vals, 0)
				}
			}
		}
	default:
		return nil, false
	}
	return vals, len(vals) > 0
}

func variance(c Column) (float64, bool) {
	vals, ok := floatValues(c)
	if !ok {
		return 0, false
	}
	var total float64
	for _, v := range vals {
		total += v
	}
	mean := total / float64(len(vals))
	var sq float64
	for _, v := range vals {
		d := v - mean
		sq += d * d
	}
	return sq / float64(len(vals)), true
}

// truthReduce folds truthiness (non-zero for numerics) over a column
func truthReduce(c Column, acc bool, fold func(acc, v bool) bool) (Column, bool) {
	switch c.kind {
	case KindInt:
		if !eachValidInt(c, func(v int64) { acc = fold(acc, v != 0) }) {
			return Column{}, false
		}
	case KindFloat:
		if !eachValidFloat(c, func(v float64) { acc = fold(acc, v != 0) }) {
			return Column{}, false
		}
	case KindBool:
		if !eachValidBool(c, func(v bool) { acc = fold(acc, v) }) {
			return Column{}, false
		}
	default:
		return Column{}, false
	}
	return Column{name: c.name, kind: KindBool, bools: []bool{acc}}, true
}

// argReduce finds the row index of the extreme non-null element
func argReduce(c Column, better func(best, v interface{}) bool) (Column, bool) {
	bestIdx := -1
	var best interface{}
	for i := 0; i < c.Len(); i++ {
		if c.IsNull(i) {
			continue
		}
		v := c.Value(i)
		if bestIdx < 0 || better(best, v) {
			best = v
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return Column{}, false
	}
	return Column{name: c.name, kind: KindInt, ints: []int64{int64(bestIdx)}}, true
}

// less orders two same-kind element values
func less(a, b interface{}) bool {
	switch x := a.(type) {
	case int64:
		return x < b.(int64)
	case float64:
		return x < b.(float64)
	case string:
		return x < b.(string)
	case bool:
		return !x && b.(bool)
	default:
		return false
	}
}
