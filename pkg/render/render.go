// Package render produces human-readable summaries of frames,
// truncating long tables to a head and tail window.
package render

import (
	"strconv"

	"github.com/framekit/frame/pkg/frame"
	stringpool "github.com/framekit/frame/pkg/strings"
)

const (
	// headRows and tailRows bound each truncation window
	headRows = 10
	tailRows = 10
	// truncateAfter is the row count beyond which the middle is elided
	truncateAfter = 20

	cellWidth = 10
	nullText  = "None"
)

// HTML renders the frame as an HTML table with a bold positional index
// column. Frames longer than the threshold show the first and last ten
// rows around an ellipsis row.
func HTML(df *frame.DataFrame) string {
	b := stringpool.GetBuilder(stringpool.Medium)
	defer stringpool.PutBuilder(b, stringpool.Medium)

	cols := df.Columns()

	b.WriteString("<table><thead><tr><th></th>")
	for _, col := range cols {
		b.WriteString("<th>")
		b.WriteString(stringpool.Sprintf("%-*s", cellWidth, col))
		b.WriteString("</th>")
	}
	b.WriteString("</tr></thead><tbody>")

	head, tail := window(df.Len())
	for i := 0; i < head; i++ {
		writeHTMLRow(b, df, cols, i)
	}
	if tail > 0 {
		b.WriteString("<tr><td><strong>...</strong></td>")
		for range cols {
			b.WriteString("<td>...</td>")
		}
		b.WriteString("</tr>")
		for i := df.Len() - tail; i < df.Len(); i++ {
			writeHTMLRow(b, df, cols, i)
		}
	}

	b.WriteString("</tbody></table>")
	return stringpool.Clone(b.String())
}

// Text renders the frame as aligned plain-text rows with the same
// truncation behavior as HTML
func Text(df *frame.DataFrame) string {
	b := stringpool.GetBuilder(stringpool.Medium)
	defer stringpool.PutBuilder(b, stringpool.Medium)

	cols := df.Columns()

	b.WriteString(stringpool.Sprintf("%6s", ""))
	for _, col := range cols {
		b.WriteByte(' ')
		b.WriteString(stringpool.Sprintf("%*s", cellWidth, col))
	}
	b.WriteByte('\n')

	head, tail := window(df.Len())
	for i := 0; i < head; i++ {
		writeTextRow(b, df, cols, i)
	}
	if tail > 0 {
		b.WriteString(stringpool.Sprintf("%6s", "..."))
		for range cols {
			b.WriteByte(' ')
			b.WriteString(stringpool.Sprintf("%*s", cellWidth, "..."))
		}
		b.WriteByte('\n')
		for i := df.Len() - tail; i < df.Len(); i++ {
			writeTextRow(b, df, cols, i)
		}
	}

	return stringpool.Clone(b.String())
}

// window splits the row count into head rows and tail rows; a zero tail
// means the frame renders whole
func window(rows int) (head, tail int) {
	if rows <= truncateAfter {
		return rows, 0
	}
	return headRows, tailRows
}

func writeHTMLRow(b *stringpool.Builder, df *frame.DataFrame, cols []string, i int) {
	b.WriteString("<tr><td><strong>")
	b.WriteString(strconv.Itoa(i))
	b.WriteString("</strong></td>")
	for _, col := range cols {
		b.WriteString("<td>")
		b.WriteString(cell(df, col, i))
		b.WriteString("</td>")
	}
	b.WriteString("</tr>")
}

func writeTextRow(b *stringpool.Builder, df *frame.DataFrame, cols []string, i int) {
	b.WriteString(stringpool.Sprintf("%6d", i))
	for _, col := range cols {
		b.WriteByte(' ')
		b.WriteString(cell(df, col, i))
	}
	b.WriteByte('\n')
}

// cell formats one element: floats to three decimals, text left-aligned,
// numbers right-aligned, nulls as the null marker text
func cell(df *frame.DataFrame, col string, row int) string {
	v, err := df.Cell(row, col)
	if err != nil || v == nil {
		return stringpool.Sprintf("%-*s", cellWidth, nullText)
	}
	switch x := v.(type) {
	case float64:
		return stringpool.Sprintf("%*.3f", cellWidth, x)
	case int64:
		return stringpool.Sprintf("%*d", cellWidth, x)
	case bool:
		return stringpool.Sprintf("%*t", cellWidth, x)
	default:
		return stringpool.Sprintf("%-*s", cellWidth, x)
	}
}
