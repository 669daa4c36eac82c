package gen

import (
	"go/ast"
	"go/constant"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enumstr-generator/internal/definition"
)

const colorsYAML = `
package: colors
enums:
  - name: Color
    type: string
    rename_all: kebab-case
    variants:
      - name: LightRed
        alias: [pink, light-red]
      - name: DarkBlue
        rename: navy
      - name: Legacy
        skip_serializing: true
      - name: Custom
        other: true
        payload: string
  - name: Level
    rename_all: UPPERCASE
    variants:
      - name: Debug
      - name: Info
        const: LevelInformational
      - name: Trace
        skip: true
`

func generate(t *testing.T, yml string) []GeneratedFile {
	t.Helper()

	f, err := definition.Parse([]byte(yml))
	require.NoError(t, err)

	files, err := NewGenerator(GeneratorConfig{}).Generate(f)
	require.NoError(t, err)

	return files
}

// typeCheck parses and type-checks generated files as one package.
func typeCheck(t *testing.T, files []GeneratedFile) *types.Package {
	t.Helper()

	fset := token.NewFileSet()
	asts := make([]*ast.File, 0, len(files))

	for _, f := range files {
		af, err := parser.ParseFile(fset, f.Filename, f.Content, parser.ParseComments)
		require.NoError(t, err, "%s:\n%s", f.Filename, f.Content)

		asts = append(asts, af)
	}

	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}

	pkg, err := conf.Check(asts[0].Name.Name, fset, asts, nil)
	require.NoError(t, err)

	return pkg
}

// constValues maps the string values of the constants of typeName to their names.
func constValues(pkg *types.Package, typeName string) map[string]string {
	typ := pkg.Scope().Lookup(typeName).Type()
	out := map[string]string{}

	for _, name := range pkg.Scope().Names() {
		c, ok := pkg.Scope().Lookup(name).(*types.Const)
		if !ok || !types.Identical(c.Type(), typ) {
			continue
		}

		out[constant.StringVal(c.Val())] = name
	}

	return out
}

// switchCases maps each case literal in the body of fn to the identifier it returns.
func switchCases(t *testing.T, src []byte, fn string) map[string]string {
	t.Helper()

	af, err := parser.ParseFile(token.NewFileSet(), "", src, 0)
	require.NoError(t, err)

	cases := map[string]string{}

	for _, decl := range af.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Name.Name != fn {
			continue
		}

		ast.Inspect(fd.Body, func(n ast.Node) bool {
			cc, ok := n.(*ast.CaseClause)
			if !ok {
				return true
			}

			ret := cc.Body[0].(*ast.ReturnStmt)
			target := ret.Results[0].(*ast.Ident).Name

			for _, e := range cc.List {
				lit, err := strconv.Unquote(e.(*ast.BasicLit).Value)
				require.NoError(t, err)

				cases[lit] = target
			}

			return false
		})
	}

	return cases
}

func content(files []GeneratedFile, name string) string {
	for _, f := range files {
		if f.Filename == name {
			return string(f.Content)
		}
	}

	return ""
}

func TestGenerator_Generate(t *testing.T) {
	files := generate(t, colorsYAML)
	require.Len(t, files, 2)

	assert.Equal(t, "color_enumstr.go", files[0].Filename)
	assert.Equal(t, "level_enumstr.go", files[1].Filename)

	pkg := typeCheck(t, files)
	assert.Equal(t, "colors", pkg.Name())

	for _, name := range []string{
		"Color", "ColorLightRed", "ColorCustom", "ParseColor", "ColorValues",
		"Level", "LevelDebug", "LevelInformational", "ParseLevel", "LevelValues",
	} {
		assert.NotNil(t, pkg.Scope().Lookup(name), "missing %s", name)
	}
}

func TestGenerator_StringPayloadFallback(t *testing.T) {
	src := content(generate(t, colorsYAML), "color_enumstr.go")

	assert.True(t, strings.HasPrefix(src, "// Code generated by enumstr-generator. DO NOT EDIT."))
	assert.Contains(t, src, "type Color string")
	assert.Contains(t, src, `ColorLightRed Color = "light-red"`)
	assert.Contains(t, src, `ColorCustom   Color = ""`)
	assert.Contains(t, src, `case "light-red", "pink":`)
	assert.Contains(t, src, `return []byte("navy"), nil`)
	assert.Contains(t, src, `"Color.Legacy"`)
	assert.Contains(t, src, "return Color(s), nil")
	assert.Contains(t, src, "return string(v)")
	assert.Contains(t, src, "return []Color{ColorLightRed, ColorDarkBlue, ColorLegacy}")
	assert.NotContains(t, src, "_ColorNames")
}

func TestGenerator_PayloadFallbackKeepsUnmatchedInput(t *testing.T) {
	files := generate(t, colorsYAML)
	pkg := typeCheck(t, files)

	byValue := constValues(pkg, "Color")
	assert.Equal(t, map[string]string{
		"light-red": "ColorLightRed",
		"navy":      "ColorDarkBlue",
		"legacy":    "ColorLegacy",
		"":          "ColorCustom",
	}, byValue)

	cases := switchCases(t, files[0].Content, "ParseColor")

	// ParseColor returns the matching case, otherwise Color(s), which is a
	// constant only when s equals its value.
	parse := func(s string) string {
		if c, ok := cases[s]; ok {
			return c
		}

		return byValue[s]
	}

	tests := []struct {
		in   string
		want string
	}{
		{"light-red", "ColorLightRed"},
		{"pink", "ColorLightRed"},
		{"navy", "ColorDarkBlue"},
		{"legacy", "ColorLegacy"},
		{"LightRed", ""},
		{"DarkBlue", ""},
		{"Legacy", ""},
		{"Custom", ""},
		{"violet", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parse(tt.in))
		})
	}
}

func TestGenerator_DeclaredPayloadNeedsValues(t *testing.T) {
	f, err := definition.Parse([]byte(`
package: store
enums:
  - name: Status
    type: string
    variants:
      - name: Open
      - name: Other
        other: true
        payload: string
`))
	require.NoError(t, err)

	f.Enums[0].Declared = true

	_, err = NewGenerator(GeneratorConfig{}).Generate(f)
	require.ErrorIs(t, err, ErrUnsupportedPayload)
	assert.Contains(t, err.Error(), "value of StatusOpen is unknown")

	open, other := "Open", ""
	f.Enums[0].Variants[0].Value = &open
	f.Enums[0].Variants[1].Value = &other

	_, err = NewGenerator(GeneratorConfig{}).Generate(f)
	require.NoError(t, err)
}

func TestGenerator_IntWithoutFallback(t *testing.T) {
	src := content(generate(t, colorsYAML), "level_enumstr.go")

	assert.Contains(t, src, "type Level int")
	assert.Contains(t, src, "LevelDebug Level = iota")
	assert.Contains(t, src, `var _LevelNames = []string{"DEBUG", "INFO"}`)
	assert.Contains(t, src, `return zero, fmt.Errorf("unknown variant %q, expected one of %q", s, _LevelNames)`)
	assert.Contains(t, src, `case LevelTrace:`)
	assert.Contains(t, src, "return []Level{LevelDebug, LevelInformational}")
}

func TestGenerator_UnitFallback(t *testing.T) {
	files := generate(t, `
package: p
enums:
  - name: Mode
    rename_all: lowercase
    variants:
      - name: On
      - name: Off
      - name: Unknown
        other: true
`)
	typeCheck(t, files)

	src := string(files[0].Content)
	assert.Contains(t, src, "return ModeUnknown, nil")
	assert.Contains(t, src, `return []byte("unknown"), nil`)
	assert.NotContains(t, src, "_ModeNames")
}

func TestGenerator_DeclaredEnum(t *testing.T) {
	f, err := definition.Parse([]byte(`
package: store
enums:
  - name: Status
    type: string
    variants:
      - name: Open
        const: StatusOpen
`))
	require.NoError(t, err)

	f.Enums[0].Declared = true

	files, err := NewGenerator(GeneratorConfig{}).Generate(f)
	require.NoError(t, err)

	src := string(files[0].Content)
	assert.NotContains(t, src, "type Status")
	assert.NotContains(t, src, "const (")
	assert.Contains(t, src, "func ParseStatus(s string) (Status, error)")
}

func TestGenerator_PackageOverride(t *testing.T) {
	f, err := definition.Parse([]byte("enums:\n  - name: A\n    variants:\n      - name: X\n"))
	require.NoError(t, err)

	_, err = NewGenerator(GeneratorConfig{}).Generate(f)
	require.ErrorIs(t, err, ErrMissingPackage)

	files, err := NewGenerator(GeneratorConfig{PackageName: "other"}).Generate(f)
	require.NoError(t, err)
	assert.Contains(t, string(files[0].Content), "package other")
}

func TestGenerator_Errors(t *testing.T) {
	tests := []struct {
		name   string
		yml    string
		target error
	}{
		{
			name:   "payload on int enum",
			yml:    "package: p\nenums:\n  - name: A\n    variants:\n      - name: X\n      - name: O\n        other: true\n        payload: string\n",
			target: ErrUnsupportedPayload,
		},
		{
			name: "non string payload",
			yml: "package: p\nenums:\n  - name: A\n    type: string\n    variants:\n      - name: X\n" +
				"      - name: O\n        other: true\n        payload: int\n",
			target: ErrUnsupportedPayload,
		},
		{
			name: "payload with skip_deserializing variant",
			yml: "package: p\nenums:\n  - name: A\n    type: string\n    variants:\n      - name: X\n        skip_deserializing: true\n" +
				"      - name: O\n        other: true\n        payload: string\n",
			target: ErrUnsupportedPayload,
		},
		{
			name: "payload with value outside decode names",
			yml: "package: p\nenums:\n  - name: A\n    type: string\n    variants:\n      - name: X\n        value: Y\n" +
				"      - name: O\n        other: true\n        payload: string\n",
			target: ErrUnsupportedPayload,
		},
		{
			name: "payload fallback value shadowed by variant",
			yml: "package: p\nenums:\n  - name: A\n    type: string\n    variants:\n      - name: X\n" +
				"      - name: O\n        other: true\n        payload: string\n        value: X\n",
			target: ErrUnsupportedPayload,
		},
		{
			name:   "unsupported kind",
			yml:    "package: p\nenums:\n  - name: A\n    type: float\n    variants:\n      - name: X\n",
			target: ErrUnsupportedKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := definition.Parse([]byte(tt.yml))
			require.NoError(t, err)

			_, err = NewGenerator(GeneratorConfig{}).Generate(f)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestWriteFiles(t *testing.T) {
	files := generate(t, colorsYAML)
	dir := filepath.Join(t.TempDir(), "out")

	require.NoError(t, WriteFiles(files, dir))

	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(dir, f.Filename))
		require.NoError(t, err)
		assert.Equal(t, f.Content, data)
	}
}

func TestWriteDebugUnformatted(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, writeDebugUnformatted(dir, "a_enumstr.go", []byte("package")))

	data, err := os.ReadFile(filepath.Join(dir, "a_enumstr.unformatted.go.txt"))
	require.NoError(t, err)
	assert.Equal(t, "package", string(data))

	assert.NoError(t, writeDebugUnformatted("", "a.go", nil))
}
