package frame

// The selection algebra is expressed as closed tagged unions built by
// constructor functions, so resolution is a match over a fixed set of
// variants rather than open-ended runtime type inspection.

// Selector describes which rows and/or columns of a frame to extract
type Selector interface {
	isSelector()
}

type singleColSelector struct {
	name string
}

type colListSelector struct {
	names []string
}

type maskSelector struct {
	mask *DataFrame
}

type tupleSelector struct {
	rows RowSelector
	cols ColSelector
}

func (singleColSelector) isSelector() {}
func (colListSelector) isSelector()   {}
func (maskSelector) isSelector()      {}
func (tupleSelector) isSelector()     {}

// Col selects a single named column as a one-column frame
func Col(name string) Selector {
	return singleColSelector{name: name}
}

// Cols selects the named columns in the given order
func Cols(names ...string) Selector {
	return colListSelector{names: names}
}

// Mask filters rows by a one-column boolean frame of the same length as
// the target
func Mask(mask *DataFrame) Selector {
	return maskSelector{mask: mask}
}

// At selects rows and columns simultaneously
func At(rows RowSelector, cols ColSelector) Selector {
	return tupleSelector{rows: rows, cols: cols}
}

// RowSelector describes which rows to retain
type RowSelector interface {
	isRowSelector()
}

type allRows struct{}

type rowIndex struct {
	i int
}

type rowList struct {
	indices []int
}

type rowMask struct {
	mask *DataFrame
}

type rowRange struct {
	start, stop, step int
	hasStart, hasStop bool
}

func (allRows) isRowSelector()  {}
func (rowIndex) isRowSelector() {}
func (rowList) isRowSelector()  {}
func (rowMask) isRowSelector()  {}
func (rowRange) isRowSelector() {}

// AllRows selects every row
func AllRows() RowSelector {
	return allRows{}
}

// Row selects a single row; negative indices count from the end
func Row(i int) RowSelector {
	return rowIndex{i: i}
}

// Rows selects the given row indices in order; repeats and negative
// indices are allowed
func Rows(indices ...int) RowSelector {
	return rowList{indices: indices}
}

// RowMask filters rows by a one-column boolean frame
func RowMask(mask *DataFrame) RowSelector {
	return rowMask{mask: mask}
}

// RowRange selects rows in [start, stop) with step 1. Negative bounds
// count from the end; out-of-range bounds clamp.
func RowRange(start, stop int) RowSelector {
	return rowRange{start: start, stop: stop, step: 1, hasStart: true, hasStop: true}
}

// RowRangeStep is RowRange with an explicit non-zero step; a negative
// step walks backwards
func RowRangeStep(start, stop, step int) RowSelector {
	return rowRange{start: start, stop: stop, step: step, hasStart: true, hasStop: true}
}

// RowsFrom selects rows from start through the end
func RowsFrom(start int) RowSelector {
	return rowRange{start: start, step: 1, hasStart: true}
}

// RowsTo selects rows from the beginning up to but excluding stop
func RowsTo(stop int) RowSelector {
	return rowRange{stop: stop, step: 1, hasStop: true}
}

// ColSelector describes which columns to retain
type ColSelector interface {
	isColSelector()
}

type allCols struct{}

type colIndex struct {
	i int
}

type colName struct {
	name string
}

type colKeyList struct {
	keys []ColKey
}

// nameRange carries label bounds; the stop label is inclusive. This is
// the deliberate label-slicing asymmetry: IndexRange stays
// stop-exclusive like any integer slice, while a named stop bound
// includes the named column.
type nameRange struct {
	start, stop string
	step        int
}

type indexRange struct {
	start, stop, step int
	hasStart, hasStop bool
}

func (allCols) isColSelector()    {}
func (colIndex) isColSelector()   {}
func (colName) isColSelector()    {}
func (colKeyList) isColSelector() {}
func (nameRange) isColSelector()  {}
func (indexRange) isColSelector() {}

// AllCols selects every column
func AllCols() ColSelector {
	return allCols{}
}

// ColAt selects the column at position i; negative indices count from
// the end
func ColAt(i int) ColSelector {
	return colIndex{i: i}
}

// ColNamed selects a single column by name
func ColNamed(name string) ColSelector {
	return colName{name: name}
}

// ColKeys selects columns by a mixed list of names and positions
func ColKeys(keys ...ColKey) ColSelector {
	return colKeyList{keys: keys}
}

// NameRange selects the columns from start through stop by label. The
// stop column is included, mirroring label-slicing conventions.
func NameRange(start, stop string) ColSelector {
	return nameRange{start: start, stop: stop, step: 1}
}

// NameRangeStep is NameRange with an explicit non-zero step
func NameRangeStep(start, stop string, step int) ColSelector {
	return nameRange{start: start, stop: stop, step: step}
}

// IndexRange selects the columns in positions [start, stop); the stop
// position is excluded, unlike NameRange
func IndexRange(start, stop int) ColSelector {
	return indexRange{start: start, stop: stop, step: 1, hasStart: true, hasStop: true}
}

// IndexRangeStep is IndexRange with an explicit non-zero step
func IndexRangeStep(start, stop, step int) ColSelector {
	return indexRange{start: start, stop: stop, step: step, hasStart: true, hasStop: true}
}

// ColsFrom selects columns from position start through the end
func ColsFrom(start int) ColSelector {
	return indexRange{start: start, step: 1, hasStart: true}
}

// ColsTo selects columns from the beginning up to but excluding stop
func ColsTo(stop int) ColSelector {
	return indexRange{stop: stop, step: 1, hasStop: true}
}

// ColKey is one entry of a mixed name/position column list
type ColKey interface {
	isColKey()
}

type nameKey struct {
	name string
}

type indexKey struct {
	i int
}

func (nameKey) isColKey()  {}
func (indexKey) isColKey() {}

// Name references a column by name inside ColKeys
func Name(name string) ColKey {
	return nameKey{name: name}
}

// Index references a column by position inside ColKeys; negative
// indices count from the end
func Index(i int) ColKey {
	return indexKey{i: i}
}
