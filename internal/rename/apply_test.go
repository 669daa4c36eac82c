package rename

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyToVariant(t *testing.T) {
	tests := []struct {
		original       string
		lower          string
		upper          string
		camel          string
		snake          string
		screaming      string
		kebab          string
		screamingKebab string
	}{
		{"Outcome", "outcome", "OUTCOME", "outcome", "outcome", "OUTCOME", "outcome", "OUTCOME"},
		{"VeryTasty", "verytasty", "VERYTASTY", "veryTasty", "very_tasty", "VERY_TASTY", "very-tasty", "VERY-TASTY"},
		{"A", "a", "A", "a", "a", "A", "a", "A"},
		{"Z42", "z42", "Z42", "z42", "z42", "Z42", "z42", "Z42"},
		{"HTTPCode", "httpcode", "HTTPCODE", "hTTPCode", "h_t_t_p_code", "H_T_T_P_CODE", "h-t-t-p-code", "H-T-T-P-CODE"},
	}

	for _, tt := range tests {
		t.Run(tt.original, func(t *testing.T) {
			assert.Equal(t, tt.lower, LowerCase.ApplyToVariant(tt.original))
			assert.Equal(t, tt.upper, UpperCase.ApplyToVariant(tt.original))
			assert.Equal(t, tt.original, PascalCase.ApplyToVariant(tt.original))
			assert.Equal(t, tt.camel, CamelCase.ApplyToVariant(tt.original))
			assert.Equal(t, tt.snake, SnakeCase.ApplyToVariant(tt.original))
			assert.Equal(t, tt.screaming, ScreamingSnakeCase.ApplyToVariant(tt.original))
			assert.Equal(t, tt.kebab, KebabCase.ApplyToVariant(tt.original))
			assert.Equal(t, tt.screamingKebab, ScreamingKebabCase.ApplyToVariant(tt.original))
		})
	}
}

func TestApplyToField(t *testing.T) {
	tests := []struct {
		original       string
		upper          string
		pascal         string
		camel          string
		screaming      string
		kebab          string
		screamingKebab string
	}{
		{"outcome", "OUTCOME", "Outcome", "outcome", "OUTCOME", "outcome", "OUTCOME"},
		{"very_tasty", "VERY_TASTY", "VeryTasty", "veryTasty", "VERY_TASTY", "very-tasty", "VERY-TASTY"},
		{"a", "A", "A", "a", "A", "a", "A"},
		{"z42", "Z42", "Z42", "z42", "Z42", "z42", "Z42"},
	}

	for _, tt := range tests {
		t.Run(tt.original, func(t *testing.T) {
			assert.Equal(t, tt.original, LowerCase.ApplyToField(tt.original))
			assert.Equal(t, tt.upper, UpperCase.ApplyToField(tt.original))
			assert.Equal(t, tt.pascal, PascalCase.ApplyToField(tt.original))
			assert.Equal(t, tt.camel, CamelCase.ApplyToField(tt.original))
			assert.Equal(t, tt.original, SnakeCase.ApplyToField(tt.original))
			assert.Equal(t, tt.screaming, ScreamingSnakeCase.ApplyToField(tt.original))
			assert.Equal(t, tt.kebab, KebabCase.ApplyToField(tt.original))
			assert.Equal(t, tt.screamingKebab, ScreamingKebabCase.ApplyToField(tt.original))
		})
	}
}

func TestApplyToVariant_KebabMirrorsSnake(t *testing.T) {
	for _, ident := range []string{"", "A", "Outcome", "VeryTasty", "ABC", "Ünïcode", "Snake_Case", "X1Y2"} {
		t.Run(ident, func(t *testing.T) {
			assert.Equal(t,
				strings.ReplaceAll(SnakeCase.ApplyToVariant(ident), "_", "-"),
				KebabCase.ApplyToVariant(ident))
			assert.Equal(t,
				strings.ReplaceAll(ScreamingSnakeCase.ApplyToVariant(ident), "_", "-"),
				ScreamingKebabCase.ApplyToVariant(ident))
		})
	}
}

func TestApplyToVariant_NonASCII(t *testing.T) {
	// Non-ASCII letters are never folded.
	assert.Equal(t, "éclair", LowerCase.ApplyToVariant("éCLAIR"))
	assert.Equal(t, "ÉCLAIR", UpperCase.ApplyToVariant("Éclair"))
	assert.Equal(t, "Éclair", CamelCase.ApplyToVariant("Éclair"))
	assert.Equal(t, "a_Ö", SnakeCase.ApplyToVariant("AÖ"))
}

func TestApplyToVariant_Empty(t *testing.T) {
	for _, rule := range Rules() {
		assert.Equal(t, "", rule.ApplyToVariant(""), rule.Key())
		assert.Equal(t, "", rule.ApplyToField(""), rule.Key())
	}
}
