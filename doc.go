// Package csvenc encodes sequences of Go values as RFC 4180 CSV documents.
//
// The central entry points are [Marshal] and [Write], which accept a slice
// of items of any single type and functional [Option] values. The element
// type decides the shape of the output:
//
//   - Simple types — the numeric kinds, bool, string, [time.Time],
//     [github.com/google/uuid.UUID], and
//     [github.com/shopspring/decimal.Decimal] — encode as one
//     delimiter-joined line.
//   - Struct types encode as one row per item, one column per exported
//     field, in declaration order.
//
// Use [IsSimple] to check how a type will be classified.
//
// # Field Discovery
//
// Exported struct fields become columns. A `csv:"name"` tag renames a
// column and `csv:"-"` drops it; embedded structs contribute their own
// columns inline:
//
//	type Person struct {
//		Name  string `csv:"name"`
//		Age   int
//		note  string // unexported: skipped
//		Token string `csv:"-"`
//	}
//
// Nil pointer fields encode as empty cells.
//
// # Options
//
//   - [WithDelimiter] — field delimiter (default comma)
//   - [WithHeader] — header row before the data rows
//   - [WithFields] / [WithoutFields] — column selection, preserving
//     declaration order
//   - [WithHeaderNames] — display names for the header row
//   - [WithStrictHeaderNames] — fail on an incomplete header-name map
//   - [WithAlwaysQuote] — quote every field
//
// # Self-Describing Rows
//
// Types that implement [Rower] bypass reflection and supply their own
// cells. Implementing [Headed] as well provides column names, which
// unlocks [WithHeader] and field selection for such types; [Delimited]
// sets a per-type default delimiter:
//
//	type row struct{ name, age string }
//
//	func (r row) Row() []string    { return []string{r.name, r.age} }
//	func (r row) Header() []string { return []string{"Name", "Age"} }
//
// # Quoting
//
// Every emitted field, header or data, follows the RFC 4180 rule: values
// containing the delimiter, a double quote, or a line break are wrapped in
// double quotes with interior quotes doubled; all other values pass
// through untouched. Rows are terminated with CRLF. The simple-type line
// carries no trailing line break.
//
// # Purity
//
// An encode call is a pure function of its inputs: no I/O, no shared
// state, and the full document is produced before anything is returned or
// written. An empty input encodes to the empty string, header or not. The
// items slice must not be mutated concurrently during the call.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrNilItems] — nil items slice
//   - [ErrNilType] — nil [reflect.Type], or no inferable element type
//   - [ErrMissingInterface] — options that need [Headed] on a [Rower] type
//   - [ErrMixedTypes] — interface-typed sequence with differing concrete types
//   - [ErrUnsupportedType] — element type that is neither simple nor a struct
//   - [ErrMissingHeaderName] — incomplete map under [WithStrictHeaderNames]
package csvenc
