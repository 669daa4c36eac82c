package codec

import (
	"fmt"

	"enumstr-generator/internal/model"
	"enumstr-generator/internal/payload"
)

// Codec encodes and decodes the variants of one enum.
type Codec struct {
	model    *model.Model
	byIdent  map[string]int
	byName   map[string]int
	expected []string
	payloads *payload.Registry
}

// Option configures a Codec.
type Option func(*Codec)

// WithRegistry sets the registry used to parse and format fallback payloads.
func WithRegistry(r *payload.Registry) Option {
	return func(c *Codec) {
		c.payloads = r
	}
}

// Decoded is the result of Decode.
type Decoded struct {
	// Variant is the identifier of the decoded variant.
	Variant string
	// Payload is the raw input handed to the fallback, for a typed fallback.
	Payload *string
	// Value is the parsed payload, when the payload type is registered.
	Value any
	// Fallback is set when no name matched and the fallback took the input.
	Fallback bool
}

// New builds the lookup tables of a codec over m. The model must come from
// model.Build, which guarantees that decode names are unique.
func New(m *model.Model, opts ...Option) *Codec {
	c := &Codec{
		model:    m,
		byIdent:  make(map[string]int, len(m.Variants)),
		byName:   make(map[string]int, len(m.Variants)),
		payloads: payload.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	for i, v := range m.Variants {
		c.byIdent[v.Ident] = i

		for _, name := range v.DeNames() {
			if _, ok := c.byName[name]; ok {
				continue
			}

			c.byName[name] = i
			c.expected = append(c.expected, name)
		}
	}

	return c
}

// Model returns the model the codec was built from.
func (c *Codec) Model() *model.Model {
	return c.model
}

// Encode returns the string form of the variant ident. For a fallback with a
// payload, raw is the payload's own string form; it is emitted verbatim and
// must not be nil.
func (c *Codec) Encode(ident string, raw *string) (string, error) {
	if i, ok := c.byIdent[ident]; ok {
		v := c.model.Variants[i]
		if !v.Serializable {
			return "", &NotSerializableError{Variant: ident}
		}

		return v.SerName, nil
	}

	if c.model.IsFallback(ident) {
		return c.encodeFallback(raw)
	}

	return "", fmt.Errorf("%w %q", ErrUnknownVariant, ident)
}

// EncodeValue is Encode for a fallback payload held as a typed value. The
// value is rendered through the payload registry.
func (c *Codec) EncodeValue(ident string, value any) (string, error) {
	fb := c.model.Fallback
	if !c.model.IsFallback(ident) || !fb.HasPayload() {
		return c.Encode(ident, nil)
	}

	format := payload.FormatValue
	if t, ok := c.payloads.Lookup(fb.PayloadType); ok {
		format = t.Format
	}

	s, err := format(value)
	if err != nil {
		return "", fmt.Errorf("format %s payload: %w", fb.PayloadType, err)
	}

	return s, nil
}

func (c *Codec) encodeFallback(raw *string) (string, error) {
	fb := c.model.Fallback
	if !fb.HasPayload() {
		return fb.Name, nil
	}

	if raw == nil {
		return "", fmt.Errorf("%w: %s(%s)", ErrMissingPayload, fb.Ident, fb.PayloadType)
	}

	return *raw, nil
}

// Display returns the human-readable form of a variant. Unlike Encode it
// never refuses a known variant: a non-serializable variant is shown by its
// container-renamed identifier.
func (c *Codec) Display(ident string, raw *string) (string, error) {
	if i, ok := c.byIdent[ident]; ok {
		return c.model.Variants[i].DisplayName, nil
	}

	if c.model.IsFallback(ident) {
		return c.encodeFallback(raw)
	}

	return "", fmt.Errorf("%w %q", ErrUnknownVariant, ident)
}

// Decode returns the variant whose canonical name or alias equals input,
// falling back to the catch-all variant when there is one.
func (c *Codec) Decode(input string) (Decoded, error) {
	if i, ok := c.byName[input]; ok {
		return Decoded{Variant: c.model.Variants[i].Ident}, nil
	}

	fb := c.model.Fallback
	if fb == nil {
		return Decoded{}, &NoMatchingVariantError{Input: input, Expected: c.expected}
	}

	if !fb.HasPayload() {
		return Decoded{Variant: fb.Ident, Fallback: true}, nil
	}

	raw := input
	res := Decoded{Variant: fb.Ident, Payload: &raw, Fallback: true}

	t, ok := c.payloads.Lookup(fb.PayloadType)
	if !ok {
		return res, nil
	}

	v, err := t.Parse(input)
	if err != nil {
		return Decoded{}, &PayloadParseError{Input: input, Type: fb.PayloadType, Err: err}
	}

	res.Value = v

	return res, nil
}

// Names returns every accepted decode name in declaration order.
func (c *Codec) Names() []string {
	return append([]string(nil), c.expected...)
}
