package rename

import (
	"fmt"
	"strconv"
	"strings"
)

// Rule is a case-conversion rule.
type Rule int

const (
	_ Rule = iota // zero value is not a valid rule

	// LowerCase renames to "lowercase" style.
	LowerCase
	// UpperCase renames to "UPPERCASE" style.
	UpperCase
	// PascalCase renames to "PascalCase" style, the natural form of enum variants.
	PascalCase
	// CamelCase renames to "camelCase" style.
	CamelCase
	// SnakeCase renames to "snake_case" style, the natural form of fields.
	SnakeCase
	// ScreamingSnakeCase renames to "SCREAMING_SNAKE_CASE" style.
	ScreamingSnakeCase
	// KebabCase renames to "kebab-case" style.
	KebabCase
	// ScreamingKebabCase renames to "SCREAMING-KEBAB-CASE" style.
	ScreamingKebabCase
)

// ruleKeys holds the canonical keys in declaration order. The order is part of
// the ParseError message and must not change.
var ruleKeys = []struct {
	key  string
	rule Rule
}{
	{"lowercase", LowerCase},
	{"UPPERCASE", UpperCase},
	{"PascalCase", PascalCase},
	{"camelCase", CamelCase},
	{"snake_case", SnakeCase},
	{"SCREAMING_SNAKE_CASE", ScreamingSnakeCase},
	{"kebab-case", KebabCase},
	{"SCREAMING-KEBAB-CASE", ScreamingKebabCase},
}

// Rules returns all rules in declaration order.
func Rules() []Rule {
	res := make([]Rule, 0, len(ruleKeys))
	for _, rk := range ruleKeys {
		res = append(res, rk.rule)
	}

	return res
}

// Keys returns the canonical keys of all rules in declaration order.
func Keys() []string {
	res := make([]string, 0, len(ruleKeys))
	for _, rk := range ruleKeys {
		res = append(res, rk.key)
	}

	return res
}

// ParseRule looks up a rule by its canonical key. Matching is exact and
// case-sensitive.
func ParseRule(s string) (Rule, error) {
	for _, rk := range ruleKeys {
		if rk.key == s {
			return rk.rule, nil
		}
	}

	return 0, &ParseError{Name: s}
}

// IsValid reports whether r is one of the eight rules.
func (r Rule) IsValid() bool {
	return r >= LowerCase && r <= ScreamingKebabCase
}

// Key returns the canonical key of the rule.
func (r Rule) Key() string {
	if !r.IsValid() {
		return ""
	}

	return ruleKeys[r-LowerCase].key
}

// String returns the canonical key, or Rule(n) for invalid values.
func (r Rule) String() string {
	if !r.IsValid() {
		return "Rule(" + strconv.Itoa(int(r)) + ")"
	}

	return r.Key()
}

// MarshalText implements encoding.TextMarshaler.
func (r Rule) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("invalid rename rule %d", int(r))
	}

	return []byte(r.Key()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rule) UnmarshalText(text []byte) error {
	rule, err := ParseRule(string(text))
	if err != nil {
		return err
	}

	*r = rule

	return nil
}

// ParseError reports a rename rule literal that is not a canonical key.
type ParseError struct {
	Name string
}

// Error returns the message surfaced to users for an unknown rename_all value.
// It lists every canonical key, quoted, in declaration order.
func (e *ParseError) Error() string {
	quoted := make([]string, 0, len(ruleKeys))
	for _, rk := range ruleKeys {
		quoted = append(quoted, `"`+rk.key+`"`)
	}

	return "unknown rename rule `rename_all = \"" + e.Name + "\"`, expected one of " +
		strings.Join(quoted, ", ")
}
