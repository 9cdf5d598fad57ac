package csvenc

// Option configures a single encode call. Options are pure values; the
// same option slice applied to the same items always yields the same
// document.
type Option func(*options)

type options struct {
	delimiter    rune
	header       bool
	include      []string
	exclude      []string
	headerNames  map[string]string
	strictNames  bool
	alwaysQuote  bool
	delimiterSet bool
}

func newOptions[T any](items []T, opts []Option) options {
	o := options{delimiter: ','}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if !o.delimiterSet && len(items) > 0 {
		if d, ok := any(items[0]).(Delimited); ok {
			o.delimiter = d.Delimiter()
		}
	}
	return o
}

// WithDelimiter sets the field delimiter. Default is comma; it overrides
// a [Delimited] implementation on the item type.
func WithDelimiter(d rune) Option {
	return func(o *options) {
		o.delimiter = d
		o.delimiterSet = true
	}
}

// WithHeader emits a header row before the data rows. Ignored on the
// simple-type path, where there are no columns to name.
func WithHeader() Option {
	return func(o *options) { o.header = true }
}

// WithFields restricts output to the named fields. Field order still
// follows the type's declaration order; the list selects, it does not
// reorder. Names that match no field are ignored. Calling it with no
// names is a no-op (all fields remain selected).
func WithFields(names ...string) Option {
	return func(o *options) {
		if len(names) > 0 {
			o.include = append(o.include, names...)
		}
	}
}

// WithoutFields drops the named fields from the output.
func WithoutFields(names ...string) Option {
	return func(o *options) { o.exclude = append(o.exclude, names...) }
}

// WithHeaderNames maps field names to display names for the header row.
// Data rows are unaffected. A selected field absent from the map renders
// as a diagnostic placeholder cell embedding the field name; combine with
// [WithStrictHeaderNames] to fail the encode instead.
func WithHeaderNames(names map[string]string) Option {
	return func(o *options) { o.headerNames = names }
}

// WithStrictHeaderNames makes a [WithHeaderNames] map that omits a
// selected field an error ([ErrMissingHeaderName]) rather than a
// placeholder header cell.
func WithStrictHeaderNames() Option {
	return func(o *options) { o.strictNames = true }
}

// WithAlwaysQuote quotes every field, not only those containing the
// delimiter, a quote, or a line break.
func WithAlwaysQuote() Option {
	return func(o *options) { o.alwaysQuote = true }
}
