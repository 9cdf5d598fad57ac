package csvenc_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/bjaus/csvenc"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userID string

func TestIsSimple(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		typ    reflect.Type
		unwrap bool
		want   bool
	}{
		"string":            {typ: reflect.TypeOf(""), unwrap: true, want: true},
		"int":               {typ: reflect.TypeOf(0), unwrap: true, want: true},
		"int8":              {typ: reflect.TypeOf(int8(0)), unwrap: true, want: true},
		"uint64":            {typ: reflect.TypeOf(uint64(0)), unwrap: true, want: true},
		"rune":              {typ: reflect.TypeOf('x'), unwrap: true, want: true},
		"float32":           {typ: reflect.TypeOf(float32(0)), unwrap: true, want: true},
		"float64":           {typ: reflect.TypeOf(0.0), unwrap: true, want: true},
		"bool":              {typ: reflect.TypeOf(false), unwrap: true, want: true},
		"time":              {typ: reflect.TypeOf(time.Time{}), unwrap: true, want: true},
		"uuid":              {typ: reflect.TypeOf(uuid.UUID{}), unwrap: true, want: true},
		"decimal":           {typ: reflect.TypeOf(decimal.Decimal{}), unwrap: true, want: true},
		"named string":      {typ: reflect.TypeOf(userID("")), unwrap: true, want: true},
		"pointer unwrapped": {typ: reflect.TypeOf((*int)(nil)), unwrap: true, want: true},
		"pointer as-is":     {typ: reflect.TypeOf((*int)(nil)), unwrap: false, want: false},
		"double pointer":    {typ: reflect.TypeOf((**string)(nil)), unwrap: true, want: true},
		"struct":            {typ: reflect.TypeOf(struct{ X int }{}), unwrap: true, want: false},
		"map":               {typ: reflect.TypeOf(map[string]int{}), unwrap: true, want: false},
		"slice":             {typ: reflect.TypeOf([]int{}), unwrap: true, want: false},
		"complex":           {typ: reflect.TypeOf(complex128(0)), unwrap: true, want: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := csvenc.IsSimple(tt.typ, tt.unwrap)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSimpleNilType(t *testing.T) {
	t.Parallel()
	_, err := csvenc.IsSimple(nil, true)
	require.ErrorIs(t, err, csvenc.ErrNilType)
}
