package rename

import (
	"strings"
	"unicode"
)

// ApplyToVariant converts a PascalCase variant identifier to the rule's style.
func (r Rule) ApplyToVariant(variant string) string {
	switch r {
	case PascalCase:
		return variant
	case LowerCase:
		return asciiLower(variant)
	case UpperCase:
		return asciiUpper(variant)
	case CamelCase:
		return lowerFirst(variant)
	case SnakeCase:
		return snakeVariant(variant)
	case ScreamingSnakeCase:
		return asciiUpper(snakeVariant(variant))
	case KebabCase:
		return strings.ReplaceAll(snakeVariant(variant), "_", "-")
	case ScreamingKebabCase:
		return strings.ReplaceAll(asciiUpper(snakeVariant(variant)), "_", "-")
	default:
		return variant
	}
}

// ApplyToField converts a snake_case field identifier to the rule's style.
func (r Rule) ApplyToField(field string) string {
	switch r {
	case LowerCase, SnakeCase:
		return field
	case UpperCase, ScreamingSnakeCase:
		return asciiUpper(field)
	case PascalCase:
		return pascalField(field)
	case CamelCase:
		return lowerFirst(pascalField(field))
	case KebabCase:
		return strings.ReplaceAll(field, "_", "-")
	case ScreamingKebabCase:
		return strings.ReplaceAll(asciiUpper(field), "_", "-")
	default:
		return field
	}
}

// snakeVariant inserts '_' before every upper-case letter except the first
// character and lower-cases the result.
func snakeVariant(variant string) string {
	var b strings.Builder

	b.Grow(len(variant) + 4)

	for i, r := range variant {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte('_')
		}

		b.WriteRune(toASCIILower(r))
	}

	return b.String()
}

// pascalField drops every '_' and capitalizes the character following it.
func pascalField(field string) string {
	var b strings.Builder

	b.Grow(len(field))

	capitalize := true

	for _, r := range field {
		switch {
		case r == '_':
			capitalize = true
		case capitalize:
			b.WriteRune(toASCIIUpper(r))
			capitalize = false
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	if c := s[0]; c >= 'A' && c <= 'Z' {
		return string(c+'a'-'A') + s[1:]
	}

	return s
}

func asciiLower(s string) string {
	return strings.Map(toASCIILower, s)
}

func asciiUpper(s string) string {
	return strings.Map(toASCIIUpper, s)
}

func toASCIILower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + 'a' - 'A'
	}

	return r
}

func toASCIIUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}

	return r
}
