package definition

import (
	"enumstr-generator/internal/attr"
	"enumstr-generator/internal/model"
)

// File represents the root of a YAML enum definition file.
type File struct {
	// Version of the definition schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Package is the Go package name used for generated code.
	Package string `yaml:"package,omitempty"`

	// Enums is the list of enum definitions.
	Enums []Enum `yaml:"enums"`
}

// Kind is the Go underlying kind of a generated enum type.
type Kind string

const (
	// KindInt backs the enum with an int and iota constants.
	KindInt Kind = "int"
	// KindString backs the enum with a string.
	KindString Kind = "string"
)

// Kinds lists the supported underlying kinds.
var Kinds = []Kind{KindInt, KindString}

// IsValid returns true if the kind is a recognized value.
func (k Kind) IsValid() bool {
	return k == KindInt || k == KindString
}

// Enum defines one enum type.
type Enum struct {
	// Name is the Go type name.
	Name string `yaml:"name"`

	// Type is the underlying kind (int or string).
	Type Kind `yaml:"type,omitempty"`

	// RenameAll holds the raw rename_all literals. They are resolved into
	// rules by Rules so that a misspelled rule is a diagnostic rather than
	// a parse failure.
	RenameAll *attr.Rename `yaml:"rename_all,omitempty"`

	// Variants in declaration order.
	Variants []Variant `yaml:"variants"`

	// Declared is set when the type and its constants already exist in Go
	// source, so generated code must not declare them again.
	Declared bool `yaml:"-"`
}

// Variant defines one enum variant.
type Variant struct {
	// Name is the variant identifier.
	Name string `yaml:"name"`

	// Rename overrides the wire name.
	// Example: rename: B or rename: {serialize: b, deserialize: B}
	Rename *attr.Rename `yaml:"rename,omitempty"`

	// Alias lists extra names accepted when deserializing.
	Alias StringOrArray `yaml:"alias,omitempty"`

	Skip              bool `yaml:"skip,omitempty"`
	SkipSerializing   bool `yaml:"skip_serializing,omitempty"`
	SkipDeserializing bool `yaml:"skip_deserializing,omitempty"`

	// Other marks the fallback variant.
	Other bool `yaml:"other,omitempty"`

	// Payload lists the payload type tags of the fallback.
	Payload StringOrArray `yaml:"payload,omitempty"`

	// Const is the Go constant name. Defaults to <Enum><Variant>.
	Const string `yaml:"const,omitempty"`

	// Value is the underlying value of a string-backed constant. For
	// declared enums it is read from source.
	Value *string `yaml:"value,omitempty"`
}

// Lookup finds an enum by name.
func (f *File) Lookup(name string) (*Enum, bool) {
	for i := range f.Enums {
		if f.Enums[i].Name == name {
			return &f.Enums[i], true
		}
	}

	return nil, false
}

// Names returns the enum names in file order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Enums))
	for i := range f.Enums {
		names = append(names, f.Enums[i].Name)
	}

	return names
}

// Rules resolves the rename_all literals into rename rules.
// It returns nil when the enum has no rename_all.
func (e *Enum) Rules() (*attr.RenameAll, error) {
	if e.RenameAll == nil {
		return nil, nil
	}

	all, err := attr.RenameAllFrom(*e.RenameAll)
	if err != nil {
		return nil, err
	}

	return &all, nil
}

// Descriptors converts the variants into model builder inputs.
func (e *Enum) Descriptors() []model.VariantDescriptor {
	out := make([]model.VariantDescriptor, 0, len(e.Variants))

	for i := range e.Variants {
		v := &e.Variants[i]

		d := model.VariantDescriptor{
			Ident:             v.Name,
			Skip:              v.Skip,
			SkipSerializing:   v.SkipSerializing,
			SkipDeserializing: v.SkipDeserializing,
			Fallback:          v.Other,
		}

		if v.Rename != nil {
			rn := *v.Rename
			d.Rename = &rn
		}

		for _, a := range v.Alias {
			d.Aliases = append(d.Aliases, attr.Alias(a))
		}

		if len(v.Payload) > 0 {
			d.Payload = append([]string(nil), v.Payload...)
		}

		out = append(out, d)
	}

	return out
}

// Build resolves the enum into a validated model.
func (e *Enum) Build() (*model.Model, error) {
	all, err := e.Rules()
	if err != nil {
		return nil, err
	}

	return model.Build(all, e.Descriptors())
}

// ConstName returns the Go constant name of a variant.
func (e *Enum) ConstName(v *Variant) string {
	if v.Const != "" {
		return v.Const
	}

	return e.Name + v.Name
}

// Variant finds a variant by identifier.
func (e *Enum) Variant(name string) (*Variant, bool) {
	for i := range e.Variants {
		if e.Variants[i].Name == name {
			return &e.Variants[i], true
		}
	}

	return nil, false
}
