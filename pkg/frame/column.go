// Package frame provides an in-memory columnar DataFrame with a typed
// selection algebra, element-wise string operations, aggregations, and
// Arrow interchange.
package frame

// Kind represents the element type of a column
type Kind int

const (
	// KindString is nullable text
	KindString Kind = iota
	// KindInt is 64-bit signed integer
	KindInt
	// KindFloat is 64-bit floating point
	KindFloat
	// KindBool is boolean
	KindBool
)

// String returns the classifier label for the kind
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Column is a named, homogeneously typed one-dimensional array. Exactly
// one backing slice is populated, chosen by the kind tag. The validity
// mask is nil when every element is present; text columns may carry
// nulls from construction, other kinds only ever receive them from
// string-accessor results.
type Column struct {
	name   string
	kind   Kind
	strs   []string
	ints   []int64
	floats []float64
	bools  []bool
	valid  []bool
}

// Str returns a pointer to s, for building nullable text columns
func Str(s string) *string {
	return &s
}

// Strings creates a text column with no nulls
func Strings(name string, vals ...string) Column {
	data := make([]string, len(vals))
	copy(data, vals)
	return Column{name: name, kind: KindString, strs: data}
}

// NullStrings creates a text column from pointer elements; a nil entry
// is the null marker, distinct from an empty string
func NullStrings(name string, vals ...*string) Column {
	data := make([]string, len(vals))
	var valid []bool
	for i, v := range vals {
		if v == nil {
			if valid == nil {
				valid = allValid(len(vals))
			}
			valid[i] = false
			continue
		}
		data[i] = *v
	}
	return Column{name: name, kind: KindString, strs: data, valid: valid}
}

// Ints creates a 64-bit integer column
func Ints(name string, vals ...int64) Column {
	data := make([]int64, len(vals))
	copy(data, vals)
	return Column{name: name, kind: KindInt, ints: data}
}

// Floats creates a 64-bit float column
func Floats(name string, vals ...float64) Column {
	data := make([]float64, len(vals))
	copy(data, vals)
	return Column{name: name, kind: KindFloat, floats: data}
}

// Bools creates a boolean column
func Bools(name string, vals ...bool) Column {
	data := make([]bool, len(vals))
	copy(data, vals)
	return Column{name: name, kind: KindBool, bools: data}
}

// Name returns the column name
func (c Column) Name() string {
	return c.name
}

// Kind returns the element kind tag
func (c Column) Kind() Kind {
	return c.kind
}

// Len returns the number of elements
func (c Column) Len() int {
	switch c.kind {
	case KindString:
		return len(c.strs)
	case KindInt:
		return len(c.ints)
	case KindFloat:
		return len(c.floats)
	default:
		return len(c.bools)
	}
}

// IsNull reports whether the element at i is the null marker
func (c Column) IsNull(i int) bool {
	return c.valid != nil && !c.valid[i]
}

// HasNulls reports whether any element is null
func (c Column) HasNulls() bool {
	for i := range c.valid {
		if !c.valid[i] {
			return true
		}
	}
	return false
}

// Value returns the element at i as string, int64, float64, or bool;
// nulls return nil
func (c Column) Value(i int) interface{} {
	if c.IsNull(i) {
		return nil
	}
	switch c.kind {
	case KindString:
		return c.strs[i]
	case KindInt:
		return c.ints[i]
	case KindFloat:
		return c.floats[i]
	default:
		return c.bools[i]
	}
}

// clone deep-copies the column so the result shares no backing storage
func (c Column) clone() Column {
	out := Column{name: c.name, kind: c.kind}
	switch c.kind {
	case KindString:
		out.strs = append([]string(nil), c.strs...)
	case KindInt:
		out.ints = append([]int64(nil), c.ints...)
	case KindFloat:
		out.floats = append([]float64(nil), c.floats...)
	default:
		out.bools = append([]bool(nil), c.bools...)
	}
	if c.valid != nil {
		out.valid = append([]bool(nil), c.valid...)
	}
	return out
}

// take builds a fresh column from the elements at the given indices,
// in order. Indices must already be bounds-checked.
func (c Column) take(indices []int) Column {
	out := Column{name: c.name, kind: c.kind}
	switch c.kind {
	case KindString:
		out.strs = make([]string, len(indices))
		for j, i := range indices {
			out.strs[j] = c.strs[i]
		}
	case KindInt:
		out.ints = make([]int64, len(indices))
		for j, i := range indices {
			out.ints[j] = c.ints[i]
		}
	case KindFloat:
		out.floats = make([]float64, len(indices))
		for j, i := range indices {
			out.floats[j] = c.floats[i]
		}
	default:
		out.bools = make([]bool, len(indices))
		for j, i := range indices {
			out.bools[j] = c.bools[i]
		}
	}
	if c.valid != nil {
		out.valid = make([]bool, len(indices))
		for j, i := range indices {
			out.valid[j] = c.valid[i]
		}
	}
	return out
}

// renamed returns a copy of the column carrying a different name.
// Backing storage is shared; callers own the copy discipline.
func (c Column) renamed(name string) Column {
	c.name = name
	return c
}

// equal compares name, kind, length, and every element including nulls
func (c Column) equal(other Column) bool {
	if c.name != other.name || c.kind != other.kind || c.Len() != other.Len() {
		return false
	}
	for i := 0; i < c.Len(); i++ {
		if c.IsNull(i) != other.IsNull(i) {
			return false
		}
		if c.IsNull(i) {
			continue
		}
		if c.Value(i) != other.Value(i) {
			return false
		}
	}
	return true
}

func allValid(n int) []bool {
	v := make([]bool, n)
	for i := range v {
		v[i] = true
	}
	return v
}
