package payload

import (
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Parse(t *testing.T) {
	reg := Default()

	tests := []struct {
		tag   string
		input string
		want  any
	}{
		{"string", "anything", "anything"},
		{"bool", "true", true},
		{"int", "-42", -42},
		{"int64", "9000000000", int64(9000000000)},
		{"uint", "7", uint(7)},
		{"uint64", "18446744073709551615", uint64(18446744073709551615)},
		{"float64", "1.5", 1.5},
		{"time.Duration", "1m30s", 90 * time.Second},
		{"netip.Addr", "127.0.0.1", netip.AddrFrom4([4]byte{127, 0, 0, 1})},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			typ, ok := reg.Lookup(tt.tag)
			require.True(t, ok)

			got, err := typ.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			s, err := typ.Format(got)
			require.NoError(t, err)
			assert.Equal(t, tt.input, s)
		})
	}
}

func TestDefault_ParseErrors(t *testing.T) {
	reg := Default()

	for _, tag := range []string{"bool", "int", "int64", "uint", "uint64", "float64", "time.Duration", "time.Time", "netip.Addr"} {
		t.Run(tag, func(t *testing.T) {
			typ, ok := reg.Lookup(tag)
			require.True(t, ok)

			_, err := typ.Parse("not a value")
			require.Error(t, err)
		})
	}
}

func TestDefault_Time(t *testing.T) {
	typ, ok := Default().Lookup("time.Time")
	require.True(t, ok)

	v, err := typ.Parse("2024-05-01T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), v)

	s, err := typ.Format(v)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01T10:00:00Z", s)

	_, err = typ.Format("nope")
	require.Error(t, err)
}

func TestDefault_TimeKeepsFraction(t *testing.T) {
	typ, ok := Default().Lookup("time.Time")
	require.True(t, ok)

	in := time.Date(2024, 5, 1, 10, 0, 0, 123456789, time.UTC)

	s, err := typ.Format(in)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01T10:00:00.123456789Z", s)

	v, err := typ.Parse(s)
	require.NoError(t, err)
	assert.True(t, in.Equal(v.(time.Time)))
}

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry()

	_, ok := reg.Lookup("color")
	assert.False(t, ok)

	reg.Register("color", Type{Parse: func(s string) (any, error) { return "#" + s, nil }})

	typ, ok := reg.Lookup("color")
	require.True(t, ok)

	v, err := typ.Parse("fff")
	require.NoError(t, err)
	assert.Equal(t, "#fff", v)
	assert.Equal(t, []string{"color"}, reg.Tags())

	var nilReg *Registry
	_, ok = nilReg.Lookup("string")
	assert.False(t, ok)
}
