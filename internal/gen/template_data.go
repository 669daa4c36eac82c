package gen

import (
	"errors"
	"fmt"

	"enumstr-generator/internal/definition"
	"enumstr-generator/internal/model"
)

// Generation errors.
var (
	ErrMissingPackage     = errors.New("package name is required")
	ErrUnsupportedKind    = errors.New("unsupported enum type")
	ErrUnsupportedPayload = errors.New("fallback payload cannot be generated")
)

// templateData holds all data needed for the enum template.
type templateData struct {
	PackageName string
	Filename    string
	Name        string
	Kind        definition.Kind
	Declare     bool
	NeedsFmt    bool
	Consts      []constData
	Variants    []variantData
	Fallback    *fallbackData
	Values      []string
	Expected    []string
}

// constData is one constant of a declared enum. Value is only used for
// string-backed enums.
type constData struct {
	Name  string
	Value string
}

// variantData is one ordinary variant.
type variantData struct {
	Const        string
	Ident        string
	Display      string
	SerName      string
	Serializable bool
	// DeNames are the decode names without repeats.
	DeNames []string
}

// fallbackData is the catch-all variant.
type fallbackData struct {
	Const   string
	Ident   string
	Name    string
	Payload bool
}

// IsString reports whether the enum is backed by a string.
func (d *templateData) IsString() bool {
	return d.Kind == definition.KindString
}

// UnitFallback reports whether the enum has a fallback without payload.
func (d *templateData) UnitFallback() bool {
	return d.Fallback != nil && !d.Fallback.Payload
}

// PayloadFallback reports whether the enum has a fallback with payload.
func (d *templateData) PayloadFallback() bool {
	return d.Fallback != nil && d.Fallback.Payload
}

// buildTemplateData constructs the template data from an enum and its model.
func buildTemplateData(pkgName string, e *definition.Enum, m *model.Model) (*templateData, error) {
	if !e.Type.IsValid() {
		return nil, fmt.Errorf("%w %q", ErrUnsupportedKind, e.Type)
	}

	data := &templateData{
		PackageName: pkgName,
		Filename:    filename(e.Name),
		Name:        e.Name,
		Kind:        e.Type,
		Declare:     !e.Declared,
	}

	for i := range e.Variants {
		v := &e.Variants[i]
		data.Consts = append(data.Consts, constData{Name: e.ConstName(v), Value: constValue(v, m)})
	}

	seen := map[string]struct{}{}

	for _, mv := range m.Variants {
		dv, ok := e.Variant(mv.Ident)
		if !ok {
			return nil, fmt.Errorf("variant %s has no definition", mv.Ident)
		}

		vd := variantData{
			Const:        e.ConstName(dv),
			Ident:        mv.Ident,
			Display:      mv.DisplayName,
			SerName:      mv.SerName,
			Serializable: mv.Serializable,
		}

		for _, name := range mv.DeNames() {
			if _, dup := seen[name]; dup {
				continue
			}

			seen[name] = struct{}{}
			vd.DeNames = append(vd.DeNames, name)
			data.Expected = append(data.Expected, name)
		}

		if mv.Serializable || mv.Deserializable {
			data.Values = append(data.Values, vd.Const)
		}

		if !mv.Serializable {
			data.NeedsFmt = true
		}

		data.Variants = append(data.Variants, vd)
	}

	if fb := m.Fallback; fb != nil {
		dv, _ := e.Variant(fb.Ident)

		data.Fallback = &fallbackData{
			Const:   e.ConstName(dv),
			Ident:   fb.Ident,
			Name:    fb.Name,
			Payload: fb.HasPayload(),
		}

		if err := checkPayload(e, m, data.Consts); err != nil {
			return nil, err
		}
	}

	if !data.PayloadFallback() {
		data.NeedsFmt = true
	}

	return data, nil
}

// constValue returns the underlying value of a string-backed constant.
// With a payload fallback the enum value holds the raw input, so an ordinary
// constant takes its canonical decode name and the fallback takes "".
func constValue(v *definition.Variant, m *model.Model) string {
	if v.Value != nil {
		return *v.Value
	}

	fb := m.Fallback
	if fb == nil || !fb.HasPayload() {
		return v.Name
	}

	if fb.Ident == v.Name {
		return ""
	}

	if mv, ok := m.Lookup(v.Name); ok && mv.Deserializable {
		return mv.DeName
	}

	return v.Name
}

// checkPayload rejects payload fallbacks that generated code cannot hold.
// The enum value itself stores the payload, so only a string payload of a
// string-backed enum is representable, and every ordinary constant must hold
// one of its own decode names. Otherwise Parse would return that constant for
// input that belongs to another variant or to the fallback.
func checkPayload(e *definition.Enum, m *model.Model, consts []constData) error {
	fb := m.Fallback
	if fb == nil || !fb.HasPayload() {
		return nil
	}

	if e.Type != definition.KindString {
		return fmt.Errorf("%w: %s(%s) needs a string-backed enum, %s is %s",
			ErrUnsupportedPayload, fb.Ident, fb.PayloadType, e.Name, e.Type)
	}

	if fb.PayloadType != "string" {
		return fmt.Errorf("%w: %s(%s) only string payloads are supported",
			ErrUnsupportedPayload, fb.Ident, fb.PayloadType)
	}

	owner := map[string]string{}

	for _, mv := range m.Variants {
		for _, name := range mv.DeNames() {
			owner[name] = mv.Ident
		}
	}

	for i := range e.Variants {
		v := &e.Variants[i]

		if e.Declared && v.Value == nil {
			return fmt.Errorf("%w: value of %s is unknown", ErrUnsupportedPayload, consts[i].Name)
		}

		val := consts[i].Value

		if v.Name == fb.Ident {
			if o, ok := owner[val]; ok {
				return fmt.Errorf("%w: %s = %q decodes as %s",
					ErrUnsupportedPayload, consts[i].Name, val, o)
			}

			continue
		}

		if o, ok := owner[val]; !ok || o != v.Name {
			return fmt.Errorf("%w: %s = %q is not a name %s decodes from",
				ErrUnsupportedPayload, consts[i].Name, val, v.Name)
		}
	}

	return nil
}
