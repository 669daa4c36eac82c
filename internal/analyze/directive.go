package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"strconv"
	"strings"

	"enumstr-generator/internal/attr"
	"enumstr-generator/internal/definition"
	"enumstr-generator/internal/match"
)

// DirectivePrefix starts every enumstr comment directive.
const DirectivePrefix = "//enumstr:"

// Directive keys.
const (
	keyEnum              = "enum"
	keyRenameAll         = "rename_all"
	keyTrimPrefix        = "trim_prefix"
	keyRename            = "rename"
	keyAlias             = "alias"
	keySkip              = "skip"
	keySkipSerializing   = "skip_serializing"
	keySkipDeserializing = "skip_deserializing"
	keyOther             = "other"
)

var (
	typeKeys    = []string{keyEnum, keyRenameAll, keyTrimPrefix}
	variantKeys = []string{keyRename, keyAlias, keySkip, keySkipSerializing, keySkipDeserializing, keyOther}
)

var (
	// ErrUnknownDirective is returned for a directive key that is not
	// valid in its position.
	ErrUnknownDirective = errors.New("unknown directive")
	// ErrMalformedDirective is returned when a directive cannot be parsed.
	ErrMalformedDirective = errors.New("malformed directive")
	// ErrUnsupportedType is returned for an enum whose underlying type is
	// neither a string nor an integer.
	ErrUnsupportedType = errors.New("enum type must have a string or integer underlying type")
)

// DirectiveError ties a directive problem to its source position.
type DirectiveError struct {
	Pos       token.Position
	Directive string
	Err       error
	Hint      string
}

func (e *DirectiveError) Error() string {
	msg := fmt.Sprintf("%s: %s: %v", e.Pos, e.Directive, e.Err)
	if e.Hint != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Hint)
	}

	return msg
}

func (e *DirectiveError) Unwrap() error {
	return e.Err
}

// directive is one parsed //enumstr: comment.
type directive struct {
	pos   token.Position
	text  string
	key   string
	value string
	// args holds the serialize/deserialize pairs of the parenthesized form.
	args    map[string]string
	hasArgs bool
}

// parseDirective parses a single comment. It reports false for comments
// that are not enumstr directives.
func parseDirective(comment string) (directive, bool, error) {
	if !strings.HasPrefix(comment, DirectivePrefix) {
		return directive{}, false, nil
	}

	d := directive{text: strings.TrimSpace(comment)}
	body := strings.TrimSpace(strings.TrimPrefix(comment, DirectivePrefix))

	switch i := strings.IndexAny(body, "=("); {
	case i < 0:
		d.key = body
	case body[i] == '=':
		d.key = body[:i]

		v, err := unquote(strings.TrimSpace(body[i+1:]))
		if err != nil {
			return d, true, err
		}

		d.value = v
	default:
		d.key = body[:i]
		if !strings.HasSuffix(body, ")") {
			return d, true, fmt.Errorf("%w: missing closing parenthesis", ErrMalformedDirective)
		}

		args, err := parseArgs(body[i+1 : len(body)-1])
		if err != nil {
			return d, true, err
		}

		d.args = args
		d.hasArgs = true
	}

	d.key = strings.TrimSpace(d.key)
	if d.key == "" {
		return d, true, fmt.Errorf("%w: empty key", ErrMalformedDirective)
	}

	return d, true, nil
}

// parseArgs parses "serialize=a, deserialize=b".
func parseArgs(s string) (map[string]string, error) {
	args := map[string]string{}

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		k, v, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("%w: expected key=value, got %q", ErrMalformedDirective, part)
		}

		k = strings.TrimSpace(k)
		if k != "serialize" && k != "deserialize" {
			return nil, fmt.Errorf("%w: unknown argument %q, expected serialize or deserialize", ErrMalformedDirective, k)
		}

		if _, dup := args[k]; dup {
			return nil, fmt.Errorf("%w: duplicate argument %q", ErrMalformedDirective, k)
		}

		val, err := unquote(strings.TrimSpace(v))
		if err != nil {
			return nil, err
		}

		args[k] = val
	}

	return args, nil
}

func unquote(s string) (string, error) {
	if !strings.HasPrefix(s, `"`) {
		return s, nil
	}

	v, err := strconv.Unquote(s)
	if err != nil {
		return "", fmt.Errorf("%w: bad quoted value %s", ErrMalformedDirective, s)
	}

	return v, nil
}

// rename converts a value or argument list into a Rename.
func (d directive) rename() (attr.Rename, error) {
	if !d.hasArgs {
		if d.value == "" {
			return attr.Rename{}, fmt.Errorf("%w: %s needs a value", ErrMalformedDirective, d.key)
		}

		return attr.NewRename(d.value), nil
	}

	return attr.NewIndependent(d.args["serialize"], d.args["deserialize"])
}

// collectDirectives parses every directive of the given comment groups.
func collectDirectives(fset *token.FileSet, groups ...*ast.CommentGroup) ([]directive, error) {
	var res []directive

	for _, g := range groups {
		if g == nil {
			continue
		}

		for _, c := range g.List {
			d, ok, err := parseDirective(c.Text)
			if !ok {
				continue
			}

			d.pos = fset.Position(c.Slash)
			if err != nil {
				return nil, &DirectiveError{Pos: d.pos, Directive: d.text, Err: err}
			}

			res = append(res, d)
		}
	}

	return res, nil
}

func unknownKey(d directive, allowed []string) error {
	e := &DirectiveError{Pos: d.pos, Directive: d.text, Err: ErrUnknownDirective}
	if s := match.Suggest(d.key, allowed, 1); len(s) > 0 {
		e.Hint = s[0]
	}

	return e
}

// typeDirectives holds the container-level settings of an enum.
type typeDirectives struct {
	enum       bool
	renameAll  *attr.Rename
	trimPrefix *string
}

func applyTypeDirectives(dirs []directive) (typeDirectives, error) {
	var td typeDirectives

	for _, d := range dirs {
		switch d.key {
		case keyEnum:
			td.enum = true
		case keyRenameAll:
			rn, err := d.rename()
			if err != nil {
				return td, &DirectiveError{Pos: d.pos, Directive: d.text, Err: err}
			}

			td.renameAll = &rn
		case keyTrimPrefix:
			p := d.value
			td.trimPrefix = &p
		default:
			return td, unknownKey(d, typeKeys)
		}
	}

	return td, nil
}

// applyVariantDirectives folds the directives of one constant into v.
func applyVariantDirectives(v *definition.Variant, dirs []directive) error {
	for _, d := range dirs {
		switch d.key {
		case keyRename:
			rn, err := d.rename()
			if err != nil {
				return &DirectiveError{Pos: d.pos, Directive: d.text, Err: err}
			}

			v.Rename = &rn
		case keyAlias:
			if d.value == "" {
				return &DirectiveError{Pos: d.pos, Directive: d.text, Err: fmt.Errorf("%w: alias needs a value", ErrMalformedDirective)}
			}

			v.Alias = append(v.Alias, d.value)
		case keySkip:
			v.Skip = true
		case keySkipSerializing:
			v.SkipSerializing = true
		case keySkipDeserializing:
			v.SkipDeserializing = true
		case keyOther:
			v.Other = true
			if d.value != "" {
				v.Payload = append(v.Payload, d.value)
			}
		default:
			return unknownKey(d, variantKeys)
		}
	}

	return nil
}
