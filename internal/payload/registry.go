// Package payload maps fallback payload type tags to the parse and format
// functions of the corresponding Go types.
package payload

import (
	"encoding"
	"fmt"
	"net/netip"
	"slices"
	"strconv"
	"time"
)

// ParseFunc builds a payload value from its string form.
type ParseFunc func(s string) (any, error)

// FormatFunc renders a payload value as a string.
type FormatFunc func(v any) (string, error)

// Type describes how a payload type converts from and to strings.
type Type struct {
	Parse  ParseFunc
	Format FormatFunc
}

// Registry holds payload types by tag. A Registry is not safe for concurrent
// registration; populate it before sharing.
type Registry struct {
	types map[string]Type
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]Type)}
}

// Default returns a registry with the built-in types registered.
func Default() *Registry {
	r := NewRegistry()

	r.Register("string", Type{
		Parse: func(s string) (any, error) { return s, nil },
	})
	r.Register("bool", Type{
		Parse: func(s string) (any, error) { return strconv.ParseBool(s) },
	})
	r.Register("int", Type{
		Parse: func(s string) (any, error) { return strconv.Atoi(s) },
	})
	r.Register("int64", Type{
		Parse: func(s string) (any, error) { return strconv.ParseInt(s, 10, 64) },
	})
	r.Register("uint", Type{
		Parse: func(s string) (any, error) {
			v, err := strconv.ParseUint(s, 10, 0)
			return uint(v), err
		},
	})
	r.Register("uint64", Type{
		Parse: func(s string) (any, error) { return strconv.ParseUint(s, 10, 64) },
	})
	r.Register("float64", Type{
		Parse: func(s string) (any, error) { return strconv.ParseFloat(s, 64) },
	})
	r.Register("time.Duration", Type{
		Parse: func(s string) (any, error) { return time.ParseDuration(s) },
	})
	r.Register("time.Time", Type{
		Parse: func(s string) (any, error) { return time.Parse(time.RFC3339Nano, s) },
		Format: func(v any) (string, error) {
			t, ok := v.(time.Time)
			if !ok {
				return "", fmt.Errorf("expected time.Time, got %T", v)
			}

			return t.Format(time.RFC3339Nano), nil
		},
	})
	r.Register("netip.Addr", Type{
		Parse: func(s string) (any, error) { return netip.ParseAddr(s) },
	})

	return r
}

// Register adds or replaces the type for tag. A nil Format falls back to
// FormatValue.
func (r *Registry) Register(tag string, t Type) {
	if t.Format == nil {
		t.Format = FormatValue
	}

	r.types[tag] = t
}

// Lookup returns the type registered for tag.
func (r *Registry) Lookup(tag string) (Type, bool) {
	if r == nil {
		return Type{}, false
	}

	t, ok := r.types[tag]

	return t, ok
}

// Tags returns the registered tags in sorted order.
func (r *Registry) Tags() []string {
	res := make([]string, 0, len(r.types))
	for tag := range r.types {
		res = append(res, tag)
	}

	slices.Sort(res)

	return res
}

// FormatValue renders v through its own string conversion: TextMarshaler,
// then Stringer, then fmt's default format.
func FormatValue(v any) (string, error) {
	switch tv := v.(type) {
	case string:
		return tv, nil
	case encoding.TextMarshaler:
		b, err := tv.MarshalText()
		if err != nil {
			return "", err
		}

		return string(b), nil
	case fmt.Stringer:
		return tv.String(), nil
	default:
		return fmt.Sprint(v), nil
	}
}
