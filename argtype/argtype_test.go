package argtype

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/napalu/comandante/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinTypes(t *testing.T) {
	tests := []struct {
		name  string
		typ   Type
		input string
		want  any
	}{
		{"string", String, "hello world", "hello world"},
		{"int", Int, "42", 42},
		{"hex int", Int, "0x1f", 31},
		{"negative int", Int, "-7", -7},
		{"bool", Bool, "true", true},
		{"bool short", Bool, "0", false},
		{"float", Float, "2.5", 2.5},
		{"duration", Duration, "1m30s", 90 * time.Second},
		{"list", List, "a,b|c d", []string{"a", "b", "c", "d"}},
		{"typed list", ListOf(Int, nil), "1,2,3", []any{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.typ.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeType(t *testing.T) {
	got, err := Time.Parse("2023-04-11")
	require.NoError(t, err)

	ts, ok := got.(time.Time)
	require.True(t, ok)
	assert.Equal(t, 2023, ts.Year())
	assert.Equal(t, time.April, ts.Month())
	assert.Equal(t, 11, ts.Day())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		typ   Type
		input string
	}{
		{Int, "abc"},
		{Bool, "maybe"},
		{Float, "1.2.3"},
		{Duration, "soon"},
		{Time, "not a date"},
		{ListOf(Int, nil), "1,x"},
	}

	for _, tt := range tests {
		t.Run(tt.typ.Name()+"/"+tt.input, func(t *testing.T) {
			_, err := tt.typ.Parse(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrParseValue))
		})
	}

	_, err := Int.Parse("abc")
	assert.True(t, errors.Is(err, strconv.ErrSyntax))
	assert.Contains(t, err.Error(), `invalid int value: "abc"`)
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"string", "int", "bool", "float", "time", "duration", "list"} {
		typ, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, typ.Name())
	}

	typ, err := Lookup("")
	require.NoError(t, err)
	assert.Equal(t, String, typ)

	typ, err = Lookup("INT")
	require.NoError(t, err)
	assert.Equal(t, Int, typ)

	_, err = Lookup("complex")
	assert.True(t, errors.Is(err, errs.ErrUnknownType))
}

func TestRegister(t *testing.T) {
	upper := New("upper", func(value string) (any, error) {
		return value + "!", nil
	})
	Register(upper)

	typ, err := Lookup("upper")
	require.NoError(t, err)
	v, err := typ.Parse("hi")
	require.NoError(t, err)
	assert.Equal(t, "hi!", v)
	assert.Contains(t, Names(), "upper")
}
