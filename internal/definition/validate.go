package definition

import (
	"errors"
	"fmt"
	"go/token"

	"enumstr-generator/internal/attr"
	"enumstr-generator/internal/diagnostic"
	"enumstr-generator/internal/match"
	"enumstr-generator/internal/model"
	"enumstr-generator/internal/payload"
	"enumstr-generator/internal/rename"
)

// Diagnostic codes reported by Validate.
const (
	CodeNilDefinition           = "definition_is_nil"
	CodeNoEnums                 = "no_enums"
	CodeMissingEnumName         = "missing_enum_name"
	CodeDuplicateEnum           = "duplicate_enum"
	CodeInvalidType             = "invalid_type"
	CodeInvalidIdent            = "invalid_ident"
	CodeDuplicateVariant        = "duplicate_variant"
	CodeDuplicateConst          = "duplicate_const"
	CodeDuplicateValue          = "duplicate_value"
	CodeValueRequiresString     = "value_requires_string"
	CodeUnknownRenameRule       = "unknown_rename_rule"
	CodeEmptyEnum               = "empty_enum"
	CodeMultipleFallback        = "multiple_fallback"
	CodeFallbackNotLast         = "fallback_not_last"
	CodeFallbackArity           = "fallback_arity"
	CodeDuplicateDeserialize    = "duplicate_deserialize_name"
	CodeNonUnitVariant          = "non_unit_variant"
	CodeEmptyIdent              = "empty_ident"
	CodeBuildFailed             = "build_failed"
	CodeUnknownPayloadType      = "unknown_payload_type"
	CodePayloadRequiresString   = "payload_requires_string"
	CodeUnreachableVariant      = "unreachable_variant"
	CodeUnusedAlias             = "unused_alias"
	CodeIgnoredFallbackSkipFlag = "ignored_fallback_skip_flag"
)

// buildErrorCodes maps model build errors to diagnostic codes.
var buildErrorCodes = []struct {
	err  error
	code string
}{
	{model.ErrEmptyEnum, CodeEmptyEnum},
	{model.ErrMultipleFallbackVariants, CodeMultipleFallback},
	{model.ErrFallbackNotLast, CodeFallbackNotLast},
	{model.ErrFallbackArity, CodeFallbackArity},
	{model.ErrDuplicateDeserializeName, CodeDuplicateDeserialize},
	{model.ErrNonUnitVariant, CodeNonUnitVariant},
	{model.ErrEmptyIdent, CodeEmptyIdent},
}

// Validate checks a definition file and reports every problem found.
// Each enum is checked independently, so one broken enum does not hide the
// problems of the others.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError(CodeNilDefinition, "definition file is nil", "", "")
		return res
	}

	if len(f.Enums) == 0 {
		res.AddWarning(CodeNoEnums, "definition file declares no enums", "", "")
		return res
	}

	seen := map[string]struct{}{}

	for i := range f.Enums {
		e := &f.Enums[i]

		if e.Name == "" {
			res.AddError(CodeMissingEnumName, fmt.Sprintf("enum #%d has no name", i+1), "", "")
			continue
		}

		if _, ok := seen[e.Name]; ok {
			res.AddError(CodeDuplicateEnum, fmt.Sprintf("duplicate enum %q", e.Name), e.Name, "")
			continue
		}

		seen[e.Name] = struct{}{}

		validateEnum(res, e)
	}

	return res
}

// validateEnum checks one enum. The model is only built when the enum is
// structurally sound, so build errors are not reported twice.
func validateEnum(res *diagnostic.Diagnostics, e *Enum) {
	before := len(res.Errors)

	if !token.IsIdentifier(e.Name) {
		res.AddError(CodeInvalidIdent, fmt.Sprintf("enum name %q is not a Go identifier", e.Name), e.Name, "")
	}

	if !e.Type.IsValid() {
		kinds := make([]string, 0, len(Kinds))
		for _, k := range Kinds {
			kinds = append(kinds, string(k))
		}

		res.AddError(CodeInvalidType,
			fmt.Sprintf("unsupported enum type %q", e.Type), e.Name, "",
			match.Suggest(string(e.Type), kinds, 1)...)
	}

	all, err := e.Rules()
	if err != nil {
		addRuleError(res, e.Name, err)
	}

	validateVariants(res, e)

	if len(res.Errors) > before {
		return
	}

	m, err := model.Build(all, e.Descriptors())
	if err != nil {
		addBuildError(res, e.Name, err)
		return
	}

	warnUnreachable(res, e, m)
}

func addRuleError(res *diagnostic.Diagnostics, enum string, err error) {
	var rerr *attr.UnknownRenameRuleError
	if errors.As(err, &rerr) {
		res.AddError(CodeUnknownRenameRule, err.Error(), enum, "",
			match.Suggest(rerr.Err.Name, rename.Keys(), 1)...)

		return
	}

	res.AddError(CodeUnknownRenameRule, err.Error(), enum, "")
}

func validateVariants(res *diagnostic.Diagnostics, e *Enum) {
	names := map[string]struct{}{}
	consts := map[string]struct{}{}
	values := map[string]string{}
	registry := payload.Default()

	for i := range e.Variants {
		v := &e.Variants[i]

		if v.Name == "" {
			res.AddError(CodeEmptyIdent, fmt.Sprintf("variant #%d has no name", i+1), e.Name, "")
			continue
		}

		if !token.IsIdentifier(v.Name) {
			res.AddError(CodeInvalidIdent, fmt.Sprintf("variant name %q is not a Go identifier", v.Name), e.Name, v.Name)
			continue
		}

		if _, ok := names[v.Name]; ok {
			res.AddError(CodeDuplicateVariant, fmt.Sprintf("duplicate variant %q", v.Name), e.Name, v.Name)
			continue
		}

		names[v.Name] = struct{}{}

		cn := e.ConstName(v)
		if !token.IsIdentifier(cn) {
			res.AddError(CodeInvalidIdent, fmt.Sprintf("constant name %q is not a Go identifier", cn), e.Name, v.Name)
		} else if _, ok := consts[cn]; ok {
			res.AddError(CodeDuplicateConst, fmt.Sprintf("duplicate constant %q", cn), e.Name, v.Name)
		}

		consts[cn] = struct{}{}

		if v.Value != nil {
			if e.Type != KindString {
				res.AddWarning(CodeValueRequiresString, "value is ignored for int enums", e.Name, v.Name)
			} else if prev, ok := values[*v.Value]; ok {
				res.AddError(CodeDuplicateValue,
					fmt.Sprintf("value %q is already used by %s", *v.Value, prev), e.Name, v.Name)
			} else {
				values[*v.Value] = v.Name
			}
		}

		for _, tag := range v.Payload {
			if _, ok := registry.Lookup(tag); !ok {
				res.AddWarning(CodeUnknownPayloadType,
					fmt.Sprintf("payload type %q is not registered, values are kept as raw strings", tag), e.Name, v.Name)
			}
		}

		if len(v.Payload) > 0 && e.Type != KindString {
			res.AddWarning(CodePayloadRequiresString,
				"a payload fallback can only be generated for string-backed enums", e.Name, v.Name)
		}
	}
}

func addBuildError(res *diagnostic.Diagnostics, enum string, err error) {
	variant := ""

	var verr *model.VariantError
	if errors.As(err, &verr) {
		variant = verr.Variant
	}

	var derr *model.DuplicateNameError
	if errors.As(err, &derr) {
		variant = derr.Second
	}

	for _, bc := range buildErrorCodes {
		if errors.Is(err, bc.err) {
			res.AddError(bc.code, err.Error(), enum, variant)
			return
		}
	}

	res.AddError(CodeBuildFailed, err.Error(), enum, variant)
}

// warnUnreachable flags variant settings that build fine but have no effect.
func warnUnreachable(res *diagnostic.Diagnostics, e *Enum, m *model.Model) {
	for i := range e.Variants {
		v := &e.Variants[i]

		if v.Other {
			if v.Skip || v.SkipSerializing || v.SkipDeserializing {
				res.AddWarning(CodeIgnoredFallbackSkipFlag, "skip flags have no effect on the fallback variant", e.Name, v.Name)
			}

			continue
		}

		mv, ok := m.Lookup(v.Name)
		if !ok {
			continue
		}

		if !mv.Serializable && !mv.Deserializable && !v.Skip {
			res.AddWarning(CodeUnreachableVariant, "variant is neither serialized nor deserialized", e.Name, v.Name)
		}

		if !mv.Deserializable && len(v.Alias) > 0 {
			res.AddWarning(CodeUnusedAlias, "aliases of a variant that is never deserialized are ignored", e.Name, v.Name)
		}
	}
}
