// Package rename implements the case-conversion rules used to derive the
// string form of enum variants and struct fields.
//
// There are eight rules, each identified by a canonical key:
//
//	lowercase             LowerCase
//	UPPERCASE             UpperCase
//	PascalCase            PascalCase
//	camelCase             CamelCase
//	snake_case            SnakeCase
//	SCREAMING_SNAKE_CASE  ScreamingSnakeCase
//	kebab-case            KebabCase
//	SCREAMING-KEBAB-CASE  ScreamingKebabCase
//
// Variant identifiers are expected in PascalCase, field identifiers in
// snake_case. All conversions are ASCII-only: other characters pass through
// unchanged.
package rename
