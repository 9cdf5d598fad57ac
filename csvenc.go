package csvenc

import (
	"errors"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNilItems          = errors.New("nil items sequence")
	ErrNilType           = errors.New("nil type")
	ErrMissingInterface  = errors.New("missing required interface")
	ErrMixedTypes        = errors.New("mixed item types")
	ErrUnsupportedType   = errors.New("unsupported item type")
	ErrMissingHeaderName = errors.New("missing header name")
)

// --- Schema Interfaces ---
//
// Types that do not want reflection-based field discovery can describe
// their own columns instead. When the item type implements [Rower], the
// encoder uses these interfaces and never reflects over the type.

// Rower provides the cell values for one row. Implementing it opts the
// type out of reflection-based field discovery.
type Rower interface {
	Row() []string
}

// Headed provides column names for a [Rower] type. Header emission, field
// selection, and header renaming all require it; without it those options
// fail with [ErrMissingInterface].
type Headed interface {
	Header() []string
}

// Delimited provides a default field delimiter for the item type.
// [WithDelimiter] takes precedence when both are present.
type Delimited interface {
	Delimiter() rune
}

// Marshal encodes items as a CSV document and returns it as one string.
//
// The element type is taken from T, or from the dynamic type of the first
// item when T is an interface type. Simple types (see [IsSimple]) encode as
// a single delimiter-joined line; struct types encode one row per item with
// one column per discovered field, each row terminated by CRLF.
//
// A nil items slice is an error. An empty (non-nil) slice encodes to the
// empty string, even with [WithHeader]: headers need a row shape, and an
// interface-typed T has none until an item arrives.
//
// Marshal never returns a partial document: on error the string is empty.
func Marshal[T any](items []T, opts ...Option) (string, error) {
	if items == nil {
		return "", ErrNilItems
	}
	return encode(items, newOptions(items, opts))
}

// Write encodes items as a CSV document and writes it to w. The document
// is assembled in full before the first byte is written, so a failed
// encode leaves w untouched.
func Write[T any](w io.Writer, items []T, opts ...Option) error {
	s, err := Marshal(items, opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}
