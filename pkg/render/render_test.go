package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framekit/frame/pkg/frame"
)

func smallFrame(t *testing.T) *frame.DataFrame {
	t.Helper()
	df, err := frame.New(
		frame.Strings("name", "ada", "grace"),
		frame.Ints("count", 1, 2),
		frame.Floats("ratio", 0.5, 1.25),
		frame.Bools("flag", true, false),
	)
	require.NoError(t, err)
	return df
}

func longFrame(t *testing.T, rows int) *frame.DataFrame {
	t.Helper()
	vals := make([]int64, rows)
	for i := range vals {
		vals[i] = int64(i)
	}
	df, err := frame.New(frame.Ints("n", vals...))
	require.NoError(t, err)
	return df
}

func TestHTMLStructure(t *testing.T) {
	out := HTML(smallFrame(t))

	assert.True(t, strings.HasPrefix(out, "<table><thead>"))
	assert.True(t, strings.HasSuffix(out, "</tbody></table>"))
	assert.Contains(t, out, "<th>name      </th>")
	assert.Contains(t, out, "ada")
	assert.Contains(t, out, "grace")
	// Floats render with three decimals
	assert.Contains(t, out, "1.250")
	// The positional index is bold
	assert.Contains(t, out, "<td><strong>0</strong></td>")
	assert.NotContains(t, out, "...")
}

func TestHTMLTruncatesLongFrames(t *testing.T) {
	out := HTML(longFrame(t, 25))

	assert.Contains(t, out, "<td>...</td>")
	// Head keeps the first ten rows, tail the last ten
	assert.Contains(t, out, "<td><strong>9</strong></td>")
	assert.NotContains(t, out, "<td><strong>12</strong></td>")
	assert.Contains(t, out, "<td><strong>24</strong></td>")
}

func TestHTMLBoundaryRowCount(t *testing.T) {
	// Exactly the threshold renders whole
	out := HTML(longFrame(t, 20))
	assert.NotContains(t, out, "...")
	assert.Contains(t, out, "<td><strong>19</strong></td>")
}

func TestHTMLNulls(t *testing.T) {
	df, err := frame.New(frame.NullStrings("txt", frame.Str("x"), nil))
	require.NoError(t, err)

	out := HTML(df)
	assert.Contains(t, out, "None")
}

func TestText(t *testing.T) {
	out := Text(smallFrame(t))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header plus one line per row
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "name")
	assert.Contains(t, lines[0], "flag")
	assert.Contains(t, lines[1], "ada")
	assert.Contains(t, lines[2], "1.250")
}

func TestTextTruncatesLongFrames(t *testing.T) {
	out := Text(longFrame(t, 30))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header, ten head rows, ellipsis, ten tail rows
	require.Len(t, lines, 22)
	assert.Contains(t, out, "...")
	assert.Contains(t, lines[21], "29")
}
