package model

import (
	"enumstr-generator/internal/attr"
)

// Build validates variants, given in source order, and resolves them under
// the optional container rule.
func Build(renameAll *attr.RenameAll, variants []VariantDescriptor) (*Model, error) {
	working := variants

	var fallback *VariantDescriptor

	if n := len(working); n > 0 && working[n-1].Fallback {
		fallback = &working[n-1]
		working = working[:n-1]
	}

	if err := checkFallbackPlacement(working, fallback != nil); err != nil {
		return nil, err
	}

	if len(working) == 0 {
		return nil, ErrEmptyEnum
	}

	m := &Model{
		RenameAll: renameAll,
		Variants:  make([]Variant, 0, len(working)),
	}

	for i := range working {
		v, err := resolveVariant(&working[i], renameAll)
		if err != nil {
			return nil, err
		}

		m.Variants = append(m.Variants, v)
	}

	if err := checkDeserializeNames(m.Variants); err != nil {
		return nil, err
	}

	if fallback != nil {
		fb, err := resolveFallback(fallback, renameAll)
		if err != nil {
			return nil, err
		}

		m.Fallback = fb
	}

	return m, nil
}

// checkFallbackPlacement rejects fallback markers left after the tail was
// extracted.
func checkFallbackPlacement(working []VariantDescriptor, hasTail bool) error {
	var misplaced []string

	for i := range working {
		if working[i].Fallback {
			misplaced = append(misplaced, working[i].Ident)
		}
	}

	switch {
	case len(misplaced) == 0:
		return nil
	case hasTail || len(misplaced) > 1:
		return &VariantError{Variant: misplaced[0], Err: ErrMultipleFallbackVariants}
	default:
		return &VariantError{Variant: misplaced[0], Err: ErrFallbackNotLast}
	}
}

func resolveVariant(d *VariantDescriptor, renameAll *attr.RenameAll) (Variant, error) {
	if d.Ident == "" {
		return Variant{}, ErrEmptyIdent
	}

	if len(d.Payload) > 0 {
		return Variant{}, &VariantError{Variant: d.Ident, Err: ErrNonUnitVariant}
	}

	v := Variant{
		Ident:          d.Ident,
		SerName:        attr.ResolveName(attr.Serialize, d.Ident, d.Rename, renameAll),
		DeName:         attr.ResolveName(attr.Deserialize, d.Ident, d.Rename, renameAll),
		Serializable:   !d.Skip && !d.SkipSerializing,
		Deserializable: !d.Skip && !d.SkipDeserializing,
	}

	if v.Deserializable && len(d.Aliases) > 0 {
		v.Aliases = make([]string, 0, len(d.Aliases))
		for _, a := range d.Aliases {
			v.Aliases = append(v.Aliases, string(a))
		}
	}

	v.DisplayName = v.SerName
	if !v.Serializable {
		v.DisplayName = attr.ApplyRenameAll(attr.Serialize, d.Ident, renameAll)
	}

	return v, nil
}

// checkDeserializeNames rejects a name or alias claimed by two distinct
// variants. A variant repeating its own name is redundant but accepted.
func checkDeserializeNames(variants []Variant) error {
	owners := make(map[string]int)

	for i, v := range variants {
		for _, name := range v.DeNames() {
			owner, taken := owners[name]
			if !taken {
				owners[name] = i
				continue
			}

			if owner != i {
				return &DuplicateNameError{Name: name, First: variants[owner].Ident, Second: v.Ident}
			}
		}
	}

	return nil
}

func resolveFallback(d *VariantDescriptor, renameAll *attr.RenameAll) (*Fallback, error) {
	if d.Ident == "" {
		return nil, ErrEmptyIdent
	}

	if len(d.Payload) > 1 {
		return nil, &VariantError{Variant: d.Ident, Err: ErrFallbackArity}
	}

	fb := &Fallback{
		Ident: d.Ident,
		Name:  attr.ResolveName(attr.Serialize, d.Ident, d.Rename, renameAll),
	}

	if len(d.Payload) == 1 {
		fb.PayloadType = d.Payload[0]
	}

	return fb, nil
}
