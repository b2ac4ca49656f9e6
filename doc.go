// Package frame provides an in-memory columnar DataFrame library for Go:
// a mapping from column name to a homogeneously typed one-dimensional
// array, with a typed selection algebra over rows and columns.
//
// # Data model
//
// A DataFrame is an ordered collection of equal-length, uniquely named
// columns. Each column is tagged with one of four element kinds: text,
// 64-bit integer, 64-bit float, or boolean. Text elements may
// individually be null, which is distinct from the empty string.
//
// # Selection
//
// Selection is expressed through a closed set of selector constructors
// rather than runtime type inspection:
//
//	df.Select(frame.Col("price"))                          // one column
//	df.Select(frame.Cols("city", "price"))                 // several columns
//	df.Select(frame.Mask(boolFrame))                       // row filter
//	df.Select(frame.At(frame.Rows(1, 2), frame.ColAt(-1))) // rows and columns
//
// Label ranges include their stop column (frame.NameRange("a", "c")
// selects a, b, and c) while positional ranges exclude it
// (frame.IndexRange(0, 2) selects the first two columns). This mirrors
// the usual label-slicing convention and is deliberate.
//
// Every selection materializes a new DataFrame with freshly copied
// backing storage; derived frames never alias their source.
//
// # String accessor
//
// df.Str() exposes element-wise text operations (case transforms,
// search, strip, pad, replace, character-class predicates) over one
// text column, passing null elements through unchanged.
//
// # Subpackages
//
//   - pkg/frame: the DataFrame, selection engine, string accessor,
//     aggregations, and Arrow interchange
//   - pkg/render: head/tail-truncated text and HTML table rendering
//   - pkg/errors: structured errors with category types
//   - pkg/logger: zap-based structured logging used by the CLI
package frame
