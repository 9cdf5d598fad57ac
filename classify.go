package csvenc

import (
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	timeType    = reflect.TypeOf(time.Time{})
	uuidType    = reflect.TypeOf(uuid.UUID{})
	decimalType = reflect.TypeOf(decimal.Decimal{})
)

// IsSimple reports whether values of type t encode as a single CSV field.
// Simple types are the numeric kinds, bool, string, [time.Time],
// [uuid.UUID], and [decimal.Decimal]; everything else is treated as a
// structured record and decomposed into columns.
//
// When unwrapPointer is true, pointer types classify by their element
// type, so *int is as simple as int. A nil t is an error.
func IsSimple(t reflect.Type, unwrapPointer bool) (bool, error) {
	if t == nil {
		return false, ErrNilType
	}
	if unwrapPointer {
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
	}
	switch t {
	case timeType, uuidType, decimalType:
		return true, nil
	}
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true, nil
	}
	return false, nil
}
