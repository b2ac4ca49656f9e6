package frame

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/framekit/frame/pkg/errors"
)

// ToArrow converts the frame into an Arrow record batch. The caller
// owns the returned record and must Release it. A nil allocator falls
// back to the Go allocator.
func (df *DataFrame) ToArrow(mem memory.Allocator) (arrow.Record, error) {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	fields := make([]arrow.Field, len(df.cols))
	for i, c := range df.cols {
		dt, err := arrowType(c.kind)
		if err != nil {
			return nil, err
		}
		fields[i] = arrow.Field{Name: c.name, Type: dt, Nullable: true}
	}
	schema := arrow.NewSchema(fields, nil)

	builder := array.NewRecordBuilder(mem, schema)
	defer builder.Release()

	for i, c := range df.cols {
		valid := c.valid
		switch c.kind {
		case KindString:
			builder.Field(i).(*array.StringBuilder).AppendValues(c.strs, valid)
		case KindInt:
			builder.Field(i).(*array.Int64Builder).AppendValues(c.ints, valid)
		case KindFloat:
			builder.Field(i).(*array.Float64Builder).AppendValues(c.floats, valid)
		default:
			builder.Field(i).(*array.BooleanBuilder).AppendValues(c.bools, valid)
		}
	}

	return builder.NewRecord(), nil
}

// FromArrow builds a frame from an Arrow record batch, copying every
// column out of the record's buffers. Supported field types are utf8,
// int64, float64, and bool.
func FromArrow(rec arrow.Record) (*DataFrame, error) {
	if rec == nil {
		return nil, errors.New(errors.ErrorTypeMismatch, "record must not be nil")
	}

	schema := rec.Schema()
	cols := make([]Column, 0, int(rec.NumCols()))
	for i := 0; i < int(rec.NumCols()); i++ {
		name := schema.Field(i).Name
		col, err := columnFromArrow(name, rec.Column(i))
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}

	return New(cols...)
}

func arrowType(k Kind) (arrow.DataType, error) {
	switch k {
	case KindString:
		return arrow.BinaryTypes.String, nil
	case KindInt:
		return arrow.PrimitiveTypes.Int64, nil
	case KindFloat:
		return arrow.PrimitiveTypes.Float64, nil
	case KindBool:
		return arrow.FixedWidthTypes.Boolean, nil
	default:
		return nil, errors.Newf(errors.ErrorTypeMismatch, "no arrow type for kind %s", k)
	}
}

func columnFromArrow(name string, arr arrow.Array) (Column, error) {
	n := arr.Len()
	valid := validityFromArrow(arr)

	switch a := arr.(type) {
	case *array.String:
		vals := make([]string, n)
		for i := 0; i < n; i++ {
			if !a.IsNull(i) {
				vals[i] = a.Value(i)
			}
		}
		return Column{name: name, kind: KindString, strs: vals, valid: valid}, nil

	case *array.Int64:
		vals := make([]int64, n)
		copy(vals, a.Int64Values())
		return Column{name: name, kind: KindInt, ints: vals, valid: valid}, nil

	case *array.Float64:
		vals := make([]float64, n)
		copy(vals, a.Float64Values())
		return Column{name: name, kind: KindFloat, floats: vals, valid: valid}, nil

	case *array.Boolean:
		vals := make([]bool, n)
		for i := 0; i < n; i++ {
			if !a.IsNull(i) {
				vals[i] = a.Value(i)
			}
		}
		return Column{name: name, kind: KindBool, bools: vals, valid: valid}, nil

	default:
		return Column{}, errors.Newf(errors.ErrorTypeMismatch,
			"unsupported arrow type %s for column %q", arr.DataType(), name)
	}
}

func validityFromArrow(arr arrow.Array) []bool {
	if arr.NullN() == 0 {
		return nil
	}
	valid := make([]bool, arr.Len())
	for i := range valid {
		valid[i] = !arr.IsNull(i)
	}
	return valid
}
