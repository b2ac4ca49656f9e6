package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framekit/frame/pkg/errors"
)

func TestSetColumnAppends(t *testing.T) {
	df := sample(t)

	require.NoError(t, df.SetColumn("c", []float64{0.5, 1.5, 2.5}))
	assert.Equal(t, []string{"a", "b", "c"}, df.Columns())

	v, err := df.Cell(2, "c")
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)
}

func TestSetColumnOverwritesInPlace(t *testing.T) {
	df := mustNew(t,
		Ints("a", 1, 2),
		Ints("b", 3, 4),
		Ints("c", 5, 6),
	)

	require.NoError(t, df.SetColumn("b", []string{"p", "q"}))

	// Position is retained, kind may change
	assert.Equal(t, []string{"a", "b", "c"}, df.Columns())
	col, err := df.Column("b")
	require.NoError(t, err)
	assert.Equal(t, KindString, col.Kind())
}

func TestSetColumnScalarBroadcast(t *testing.T) {
	df := sample(t)

	tests := []struct {
		name  string
		value interface{}
		kind  Kind
		want  interface{}
	}{
		{"int scalar", 7, KindInt, int64(7)},
		{"int64 scalar", int64(9), KindInt, int64(9)},
		{"float scalar", 1.25, KindFloat, 1.25},
		{"bool scalar", true, KindBool, true},
		{"string scalar", "tag", KindString, "tag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, df.SetColumn("v", tt.value))
			col, err := df.Column("v")
			require.NoError(t, err)
			assert.Equal(t, tt.kind, col.Kind())
			assert.Equal(t, df.Len(), col.Len())
			for i := 0; i < col.Len(); i++ {
				assert.Equal(t, tt.want, col.Value(i))
			}
		})
	}
}

func TestSetColumnFromFrame(t *testing.T) {
	df := sample(t)
	src := mustNew(t, Ints("whatever", 7, 8, 9))

	require.NoError(t, df.SetColumn("c", src))
	v, err := df.Cell(1, "c")
	require.NoError(t, err)
	assert.Equal(t, int64(8), v)

	multi := mustNew(t, Ints("x", 1, 2, 3), Ints("y", 4, 5, 6))
	err = df.SetColumn("d", multi)
	assert.True(t, errors.IsType(err, errors.ErrorTypeShape))
}

func TestSetColumnFromColumn(t *testing.T) {
	df := sample(t)

	require.NoError(t, df.SetColumn("c", Floats("ignored", 1, 2, 3)))
	col, err := df.Column("c")
	require.NoError(t, err)
	assert.Equal(t, "c", col.Name())
	assert.Equal(t, KindFloat, col.Kind())
}

func TestSetColumnNullableText(t *testing.T) {
	df := sample(t)

	require.NoError(t, df.SetColumn("c", []*string{Str("u"), nil, Str("w")}))
	v, err := df.Cell(1, "c")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSetColumnRejectsBadValues(t *testing.T) {
	df := sample(t)

	err := df.SetColumn("c", []int64{1})
	assert.True(t, errors.IsType(err, errors.ErrorTypeShape))

	err = df.SetColumn("c", map[string]int{"x": 1})
	assert.True(t, errors.IsType(err, errors.ErrorTypeMismatch))

	err = df.SetColumn("", []int64{1, 2, 3})
	assert.True(t, errors.IsType(err, errors.ErrorTypeConstruction))

	// Failed assignments leave the frame untouched
	assert.Equal(t, []string{"a", "b"}, df.Columns())
}

func TestSetColumnIntSlice(t *testing.T) {
	df := sample(t)

	require.NoError(t, df.SetColumn("c", []int{4, 5, 6}))
	col, err := df.Column("c")
	require.NoError(t, err)
	assert.Equal(t, KindInt, col.Kind())
	assert.Equal(t, int64(5), col.Value(1))
}
