package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framekit/frame/pkg/errors"
)

func mustSelect(t *testing.T, df *DataFrame, sel Selector) *DataFrame {
	t.Helper()
	out, err := df.Select(sel)
	require.NoError(t, err)
	return out
}

func TestSelectSingleColumn(t *testing.T) {
	df := sample(t)

	got := mustSelect(t, df, Col("a"))
	want := mustNew(t, Strings("a", "x", "y", "z"))
	assert.True(t, got.Equal(want))

	_, err := df.Select(Col("missing"))
	assert.True(t, errors.IsType(err, errors.ErrorTypeLookup))
}

func TestSelectSingleColumnRoundTrip(t *testing.T) {
	df := sample(t)

	once := mustSelect(t, df, Col("a"))
	twice := mustSelect(t, once, Col("a"))
	assert.True(t, once.Equal(twice))
}

func TestSelectColumnList(t *testing.T) {
	df := mustNew(t,
		Strings("a", "x"),
		Ints("b", 1),
		Floats("c", 2.5),
	)

	got := mustSelect(t, df, Cols("c", "a"))
	assert.Equal(t, []string{"c", "a"}, got.Columns())

	_, err := df.Select(Cols("a", "nope"))
	assert.True(t, errors.IsType(err, errors.ErrorTypeLookup))
}

func TestSelectMask(t *testing.T) {
	df := sample(t)
	mask := mustNew(t, Bools("keep", false, true, true))

	got := mustSelect(t, df, Mask(mask))
	want := mustNew(t, Strings("a", "y", "z"), Ints("b", 2, 3))
	assert.True(t, got.Equal(want))
}

func TestSelectMaskRowCount(t *testing.T) {
	df := mustNew(t, Ints("n", 10, 20, 30, 40, 50))
	mask := mustNew(t, Bools("keep", true, false, true, false, true))

	got := mustSelect(t, df, Mask(mask))
	assert.Equal(t, 3, got.Len())

	// Retained elements keep original order
	for i, want := range []int64{10, 30, 50} {
		v, err := got.Cell(i, "n")
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
}

func TestSelectMaskValidation(t *testing.T) {
	df := sample(t)

	twoCols := mustNew(t, Bools("x", true, true, true), Bools("y", true, true, true))
	_, err := df.Select(Mask(twoCols))
	assert.True(t, errors.IsType(err, errors.ErrorTypeShape))

	notBool := mustNew(t, Ints("x", 1, 2, 3))
	_, err = df.Select(Mask(notBool))
	assert.True(t, errors.IsType(err, errors.ErrorTypeMismatch))

	shortMask := mustNew(t, Bools("x", true))
	_, err = df.Select(Mask(shortMask))
	assert.True(t, errors.IsType(err, errors.ErrorTypeShape))

	_, err = df.Select(Mask(nil))
	assert.True(t, errors.IsType(err, errors.ErrorTypeMismatch))
}

func TestSelectNilSelector(t *testing.T) {
	df := sample(t)

	_, err := df.Select(nil)
	assert.True(t, errors.IsType(err, errors.ErrorTypeMismatch))

	_, err = df.Select(At(nil, AllCols()))
	assert.True(t, errors.IsType(err, errors.ErrorTypeMismatch))

	_, err = df.Select(At(AllRows(), nil))
	assert.True(t, errors.IsType(err, errors.ErrorTypeMismatch))
}

func TestSelectTupleRowsAndColumns(t *testing.T) {
	df := sample(t)

	got := mustSelect(t, df, At(Rows(1, 2), ColNamed("b")))
	want := mustNew(t, Ints("b", 2, 3))
	assert.True(t, got.Equal(want))
}

func TestSelectTupleSingleRow(t *testing.T) {
	df := sample(t)

	got := mustSelect(t, df, At(Row(1), AllCols()))
	want := mustNew(t, Strings("a", "y"), Ints("b", 2))
	assert.True(t, got.Equal(want))

	// Negative row index counts from the end
	got = mustSelect(t, df, At(Row(-1), ColNamed("a")))
	want = mustNew(t, Strings("a", "z"))
	assert.True(t, got.Equal(want))

	_, err := df.Select(At(Row(7), AllCols()))
	assert.True(t, errors.IsType(err, errors.ErrorTypeLookup))
}

func TestSelectTupleRowMask(t *testing.T) {
	df := sample(t)
	mask := mustNew(t, Bools("keep", true, false, true))

	got := mustSelect(t, df, At(RowMask(mask), ColNamed("a")))
	want := mustNew(t, Strings("a", "x", "z"))
	assert.True(t, got.Equal(want))
}

func TestSelectTupleRowRange(t *testing.T) {
	df := mustNew(t, Ints("n", 0, 1, 2, 3, 4))

	got := mustSelect(t, df, At(RowRange(1, 4), ColNamed("n")))
	want := mustNew(t, Ints("n", 1, 2, 3))
	assert.True(t, got.Equal(want))

	// Out-of-range bounds clamp instead of failing
	got = mustSelect(t, df, At(RowRange(3, 100), ColNamed("n")))
	want = mustNew(t, Ints("n", 3, 4))
	assert.True(t, got.Equal(want))

	// Negative bounds count from the end
	got = mustSelect(t, df, At(RowRange(-2, 5), ColNamed("n")))
	want = mustNew(t, Ints("n", 3, 4))
	assert.True(t, got.Equal(want))

	// Stepped and reversed walks
	got = mustSelect(t, df, At(RowRangeStep(0, 5, 2), ColNamed("n")))
	want = mustNew(t, Ints("n", 0, 2, 4))
	assert.True(t, got.Equal(want))

	got = mustSelect(t, df, At(RowRangeStep(4, 1, -1), ColNamed("n")))
	want = mustNew(t, Ints("n", 4, 3, 2))
	assert.True(t, got.Equal(want))

	_, err := df.Select(At(RowRangeStep(0, 5, 0), ColNamed("n")))
	assert.True(t, errors.IsType(err, errors.ErrorTypeMismatch))

	got = mustSelect(t, df, At(RowsFrom(3), ColNamed("n")))
	want = mustNew(t, Ints("n", 3, 4))
	assert.True(t, got.Equal(want))

	got = mustSelect(t, df, At(RowsTo(2), ColNamed("n")))
	want = mustNew(t, Ints("n", 0, 1))
	assert.True(t, got.Equal(want))
}

func TestSelectRowListAllowsRepeatsAndReorder(t *testing.T) {
	df := mustNew(t, Ints("n", 10, 20, 30))

	got := mustSelect(t, df, At(Rows(2, 0, 2), ColNamed("n")))
	want := mustNew(t, Ints("n", 30, 10, 30))
	assert.True(t, got.Equal(want))

	_, err := df.Select(At(Rows(0, 9), ColNamed("n")))
	assert.True(t, errors.IsType(err, errors.ErrorTypeLookup))
}

func fiveColumns(t *testing.T) *DataFrame {
	t.Helper()
	return mustNew(t,
		Ints("a", 1),
		Ints("b", 2),
		Ints("c", 3),
		Ints("d", 4),
		Ints("e", 5),
	)
}

func TestLabelSliceStopInclusive(t *testing.T) {
	df := fiveColumns(t)

	// String bounds include the stop column
	got := mustSelect(t, df, At(AllRows(), NameRange("a", "c")))
	assert.Equal(t, []string{"a", "b", "c"}, got.Columns())

	// Integer bounds exclude it
	got = mustSelect(t, df, At(AllRows(), IndexRange(0, 2)))
	assert.Equal(t, []string{"a", "b"}, got.Columns())
}

func TestNameRangeErrors(t *testing.T) {
	df := fiveColumns(t)

	_, err := df.Select(At(AllRows(), NameRange("a", "zzz")))
	assert.True(t, errors.IsType(err, errors.ErrorTypeLookup))

	_, err = df.Select(At(AllRows(), NameRange("zzz", "c")))
	assert.True(t, errors.IsType(err, errors.ErrorTypeLookup))
}

func TestIndexRangeVariants(t *testing.T) {
	df := fiveColumns(t)

	got := mustSelect(t, df, At(AllRows(), IndexRangeStep(0, 5, 2)))
	assert.Equal(t, []string{"a", "c", "e"}, got.Columns())

	got = mustSelect(t, df, At(AllRows(), ColsFrom(3)))
	assert.Equal(t, []string{"d", "e"}, got.Columns())

	got = mustSelect(t, df, At(AllRows(), ColsTo(2)))
	assert.Equal(t, []string{"a", "b"}, got.Columns())

	got = mustSelect(t, df, At(AllRows(), NameRangeStep("a", "e", 2)))
	assert.Equal(t, []string{"a", "c", "e"}, got.Columns())
}

func TestNegativeColumnIndex(t *testing.T) {
	df := fiveColumns(t)

	byIndex := mustSelect(t, df, At(AllRows(), ColAt(-1)))
	byName := mustSelect(t, df, Col("e"))
	assert.True(t, byIndex.Equal(byName))

	_, err := df.Select(At(AllRows(), ColAt(-6)))
	assert.True(t, errors.IsType(err, errors.ErrorTypeLookup))
}

func TestMixedColumnKeys(t *testing.T) {
	df := fiveColumns(t)

	got := mustSelect(t, df, At(AllRows(), ColKeys(Index(0), Name("d"), Index(-1))))
	assert.Equal(t, []string{"a", "d", "e"}, got.Columns())

	_, err := df.Select(At(AllRows(), ColKeys(Index(9))))
	assert.True(t, errors.IsType(err, errors.ErrorTypeLookup))

	_, err = df.Select(At(AllRows(), ColKeys(Name("nope"))))
	assert.True(t, errors.IsType(err, errors.ErrorTypeLookup))
}

func TestSelectScenario(t *testing.T) {
	df := sample(t)

	wantA := mustNew(t, Strings("a", "x", "y", "z"))

	got := mustSelect(t, df, Col("a"))
	assert.True(t, got.Equal(wantA))

	got = mustSelect(t, df, At(AllRows(), ColAt(0)))
	assert.True(t, got.Equal(wantA))

	got = mustSelect(t, df, At(Rows(1, 2), ColNamed("b")))
	assert.True(t, got.Equal(mustNew(t, Ints("b", 2, 3))))

	mask := mustNew(t, Bools("b", false, true, true))
	got = mustSelect(t, df, Mask(mask))
	assert.True(t, got.Equal(mustNew(t, Strings("a", "y", "z"), Ints("b", 2, 3))))
}

func TestSelectCopiesStorage(t *testing.T) {
	df := sample(t)

	view := mustSelect(t, df, Col("b"))
	require.NoError(t, view.SetColumn("b", []int64{7, 8, 9}))

	// The source is untouched by mutating the view
	v, err := df.Cell(0, "b")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
}

func TestSelectEmptyMaskResult(t *testing.T) {
	df := sample(t)
	mask := mustNew(t, Bools("keep", false, false, false))

	got := mustSelect(t, df, Mask(mask))
	assert.Equal(t, 0, got.Len())
	assert.Equal(t, []string{"a", "b"}, got.Columns())
}

func TestSelectNullsSurviveSlicing(t *testing.T) {
	df := mustNew(t,
		NullStrings("txt", Str("one"), nil, Str("three")),
		Ints("n", 1, 2, 3),
	)

	got := mustSelect(t, df, At(Rows(1, 2), ColNamed("txt")))
	v, err := got.Cell(0, "txt")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = got.Cell(1, "txt")
	require.NoError(t, err)
	assert.Equal(t, "three", v)
}
