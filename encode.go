package csvenc

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

func encode[T any](items []T, o options) (string, error) {
	if len(items) == 0 {
		return "", nil
	}
	if _, ok := any(items[0]).(Rower); ok {
		return encodeRower(items, o)
	}
	t, err := elemType(items)
	if err != nil {
		return "", err
	}
	simple, err := IsSimple(t, true)
	if err != nil {
		return "", err
	}
	if simple {
		return encodeSimple(items, o), nil
	}
	return encodeStruct(items, t, o)
}

// elemType resolves the element type driving the encode: T itself, or the
// dynamic type of the first item when T is an interface type.
func elemType[T any](items []T) (reflect.Type, error) {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Interface {
		return t, nil
	}
	rv := reflect.ValueOf(items[0])
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: cannot infer an element type from a nil first item", ErrNilType)
	}
	return rv.Type(), nil
}

// encodeSimple emits one delimiter-joined line with no trailing line
// break. Header and field-selection options do not apply to atomic values
// and are ignored.
func encodeSimple[T any](items []T, o options) string {
	cells := make([]string, len(items))
	for i, item := range items {
		cells[i] = escapeField(formatValue(reflect.ValueOf(item)), o.delimiter, o.alwaysQuote)
	}
	return strings.Join(cells, string(o.delimiter))
}

func encodeStruct[T any](items []T, t reflect.Type, o options) (string, error) {
	base := t
	for base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	if base.Kind() != reflect.Struct {
		return "", fmt.Errorf("%w: %s cannot be decomposed into columns", ErrUnsupportedType, t)
	}
	fields := selectFields(discoverFields(base), o)

	var b strings.Builder
	delim := string(o.delimiter)
	if o.header {
		names := make([]string, len(fields))
		for i, f := range fields {
			name, err := headerName(f.name, o)
			if err != nil {
				return "", err
			}
			names[i] = escapeField(name, o.delimiter, o.alwaysQuote)
		}
		b.WriteString(strings.Join(names, delim))
		b.WriteString("\r\n")
	}

	// Only an interface-typed T can smuggle in differing concrete types;
	// the discovered fields are meaningless for them, so reject.
	checkMixed := reflect.TypeFor[T]().Kind() == reflect.Interface

	cells := make([]string, len(fields))
	for _, item := range items {
		rv := reflect.ValueOf(item)
		if checkMixed && rv.IsValid() && rv.Type() != t {
			return "", fmt.Errorf("%w: sequence of %s contains %s", ErrMixedTypes, t, rv.Type())
		}
		for i, f := range fields {
			cells[i] = escapeField(formatValue(f.value(rv)), o.delimiter, o.alwaysQuote)
		}
		b.WriteString(strings.Join(cells, delim))
		b.WriteString("\r\n")
	}
	return b.String(), nil
}

// encodeRower is the non-reflective path for types that describe their
// own columns via [Rower] and, optionally, [Headed].
func encodeRower[T any](items []T, o options) (string, error) {
	h, headed := any(items[0]).(Headed)
	if !headed && (o.header || o.include != nil || o.exclude != nil || o.headerNames != nil) {
		return "", fmt.Errorf("%w: header and field selection require Headed, not implemented by %T", ErrMissingInterface, items[0])
	}

	// keep holds the selected column indexes; nil means every column.
	var keep []int
	var names []string
	if headed {
		names = h.Header()
		cols := make([]field, len(names))
		for i, n := range names {
			cols[i] = field{name: n, index: []int{i}}
		}
		selected := selectFields(cols, o)
		keep = make([]int, len(selected))
		for i, f := range selected {
			keep[i] = f.index[0]
		}
	}

	var b strings.Builder
	delim := string(o.delimiter)
	if o.header {
		cells := make([]string, len(keep))
		for i, col := range keep {
			name, err := headerName(names[col], o)
			if err != nil {
				return "", err
			}
			cells[i] = escapeField(name, o.delimiter, o.alwaysQuote)
		}
		b.WriteString(strings.Join(cells, delim))
		b.WriteString("\r\n")
	}
	for _, item := range items {
		r, ok := any(item).(Rower)
		if !ok {
			return "", fmt.Errorf("%w: sequence of %T contains %T", ErrMixedTypes, items[0], item)
		}
		row := r.Row()
		var cells []string
		if keep == nil {
			cells = make([]string, len(row))
			for i, cell := range row {
				cells[i] = escapeField(cell, o.delimiter, o.alwaysQuote)
			}
		} else {
			cells = make([]string, len(keep))
			for i, col := range keep {
				var cell string
				if col < len(row) {
					cell = row[col]
				}
				cells[i] = escapeField(cell, o.delimiter, o.alwaysQuote)
			}
		}
		b.WriteString(strings.Join(cells, delim))
		b.WriteString("\r\n")
	}
	return b.String(), nil
}

// headerName resolves a field's display name for the header row. A map
// that omits a selected field yields a placeholder cell embedding the
// field name, unless [WithStrictHeaderNames] made that an error.
func headerName(name string, o options) (string, error) {
	if o.headerNames == nil {
		return name, nil
	}
	if display, ok := o.headerNames[name]; ok {
		return display, nil
	}
	if o.strictNames {
		return "", fmt.Errorf("%w: no entry for field %q", ErrMissingHeaderName, name)
	}
	return "<missing header name for " + name + ">", nil
}

// formatValue renders one value as its CSV text. Nil pointers and nil
// interfaces render as the empty string.
func formatValue(v reflect.Value) string {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return ""
	}
	// Values reached through an unexported embedded field cannot be
	// interfaced; they fall through to the kind switch.
	if v.CanInterface() {
		if v.Type() == timeType {
			return v.Interface().(time.Time).Format(time.RFC3339)
		}
		if s, ok := v.Interface().(fmt.Stringer); ok {
			return s.String()
		}
	}
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	default:
		// fmt formats a reflect.Value as the value it holds.
		return fmt.Sprintf("%v", v)
	}
}
