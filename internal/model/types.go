package model

import "enumstr-generator/internal/attr"

// VariantDescriptor is the raw override set of one enum variant, as
// extracted from source annotations or a definition file.
type VariantDescriptor struct {
	// Ident is the variant identifier, normally PascalCase.
	Ident string
	// Rename overrides the name for one or both directions.
	Rename *attr.Rename
	// Aliases are extra names accepted when deserializing.
	Aliases []attr.Alias
	// Skip excludes the variant from both directions.
	Skip bool
	// SkipSerializing excludes the variant from encoding.
	SkipSerializing bool
	// SkipDeserializing excludes the variant from decoding.
	SkipDeserializing bool
	// Fallback marks the catch-all variant.
	Fallback bool
	// Payload lists the associated types of the variant. Only the fallback
	// may carry one, and at most one.
	Payload []string
}

// Model is the resolved, validated form of an enum. It is never mutated
// after Build returns.
type Model struct {
	// RenameAll is the container-level rule, if any.
	RenameAll *attr.RenameAll
	// Variants are the ordinary variants in declaration order.
	Variants []Variant
	// Fallback is the catch-all variant, if any.
	Fallback *Fallback
}

// Variant is one resolved ordinary variant.
type Variant struct {
	Ident string
	// SerName is the name produced by encoding.
	SerName string
	// DeName is the canonical name accepted by decoding.
	DeName string
	// Aliases are additional accepted names, in declaration order.
	Aliases []string
	// Serializable is false for skip and skip_serializing variants.
	Serializable bool
	// Deserializable is false for skip and skip_deserializing variants.
	Deserializable bool
	// DisplayName is the text form used for human-readable output. It equals
	// SerName for serializable variants; otherwise the container serialize
	// rule applied to Ident.
	DisplayName string
}

// DeNames returns every name that decodes to v: the canonical name followed by
// the aliases. A variant that cannot be deserialized has none.
func (v Variant) DeNames() []string {
	if !v.Deserializable {
		return nil
	}

	names := make([]string, 0, len(v.Aliases)+1)
	names = append(names, v.DeName)

	return append(names, v.Aliases...)
}

// Fallback is the resolved catch-all variant.
type Fallback struct {
	Ident string
	// Name is the serialize name, emitted when encoding a unit fallback.
	Name string
	// PayloadType is the tag of the payload type; empty for a unit fallback.
	PayloadType string
}

// HasPayload reports whether the fallback carries a value.
func (f *Fallback) HasPayload() bool {
	return f != nil && f.PayloadType != ""
}

// Lookup returns the ordinary variant with the given identifier.
func (m *Model) Lookup(ident string) (*Variant, bool) {
	for i := range m.Variants {
		if m.Variants[i].Ident == ident {
			return &m.Variants[i], true
		}
	}

	return nil, false
}

// IsFallback reports whether ident names the fallback variant.
func (m *Model) IsFallback(ident string) bool {
	return m.Fallback != nil && m.Fallback.Ident == ident
}

// Idents returns every variant identifier in declaration order, the fallback
// last.
func (m *Model) Idents() []string {
	res := make([]string, 0, len(m.Variants)+1)
	for _, v := range m.Variants {
		res = append(res, v.Ident)
	}

	if m.Fallback != nil {
		res = append(res, m.Fallback.Ident)
	}

	return res
}
