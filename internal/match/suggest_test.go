package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var ruleKeys = []string{
	"lowercase", "UPPERCASE", "PascalCase", "camelCase",
	"snake_case", "SCREAMING_SNAKE_CASE", "kebab-case", "SCREAMING-KEBAB-CASE",
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected []string
	}{
		{"snake-case", 1, []string{"snake_case"}},
		{"Snake_Case", 1, []string{"snake_case"}},
		{"kebab_case", 1, []string{"kebab-case"}},
		{"SCREAMING_KEBAB_CASE", 2, []string{"SCREAMING-KEBAB-CASE", "SCREAMING_SNAKE_CASE"}},
		{"xyz", 3, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Suggest(tt.name, ruleKeys, tt.limit))
		})
	}
}

func TestSuggest_SkipsExactMatch(t *testing.T) {
	assert.Equal(t, []string{"abce"}, Suggest("abcd", []string{"abcd", "abce"}, 0))
}
