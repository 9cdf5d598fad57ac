package csvenc

import (
	"reflect"
	"strings"
)

// field is one discoverable column of a struct type: its effective name
// and the index path to read it from an instance.
type field struct {
	name  string
	index []int
}

// discoverFields returns the encodable fields of struct type t in
// declaration order. Unexported fields and fields tagged `csv:"-"` are
// skipped; a `csv:"name"` tag overrides the field name. Anonymous struct
// (or struct-pointer) fields without a tag are promoted inline, so
// embedded rows contribute their own columns.
func discoverFields(t reflect.Type) []field {
	return appendFields(nil, t, nil)
}

func appendFields(out []field, t reflect.Type, index []int) []field {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag, _, _ := strings.Cut(sf.Tag.Get("csv"), ",")
		path := append(append([]int(nil), index...), i)
		if sf.Anonymous && tag == "" {
			// Embedded structs promote their fields, even when the
			// embedded type itself is unexported (as encoding/json does).
			et := sf.Type
			if et.Kind() == reflect.Pointer {
				et = et.Elem()
			}
			if et.Kind() == reflect.Struct {
				out = appendFields(out, et, path)
				continue
			}
		}
		if !sf.IsExported() || tag == "-" {
			continue
		}
		name := sf.Name
		if tag != "" {
			name = tag
		}
		out = append(out, field{name: name, index: path})
	}
	return out
}

// value walks f's index path through v, dereferencing pointers along the
// way. A nil pointer anywhere on the path yields the invalid Value, which
// formats as the empty field.
func (f field) value(v reflect.Value) reflect.Value {
	for _, i := range f.index {
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}
			}
			v = v.Elem()
		}
		if !v.IsValid() {
			return reflect.Value{}
		}
		v = v.Field(i)
	}
	return v
}

// selectFields applies the include/exclude lists to fields, preserving
// declaration order. Selection is a set test: lists never reorder and
// duplicates collapse.
func selectFields(fields []field, o options) []field {
	var include map[string]bool
	if o.include != nil {
		include = make(map[string]bool, len(o.include))
		for _, n := range o.include {
			include[n] = true
		}
	}
	exclude := make(map[string]bool, len(o.exclude))
	for _, n := range o.exclude {
		exclude[n] = true
	}
	var out []field
	for _, f := range fields {
		if include != nil && !include[f.name] {
			continue
		}
		if exclude[f.name] {
			continue
		}
		out = append(out, f)
	}
	return out
}
