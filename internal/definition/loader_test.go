package definition

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enumstr-generator/internal/attr"
	"enumstr-generator/internal/rename"
)

func TestParse(t *testing.T) {
	yml := `
version: "1"
package: colors
enums:
  - name: Foo
    type: string
    rename_all: snake_case
    variants:
      - name: A
        alias: aa
      - name: B
        rename: B
        alias: [bb, bbb]
      - name: C
        skip: true
      - name: Other
        other: true
        payload: string
`

	f, err := Parse([]byte(yml))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "colors", f.Package)
	require.Len(t, f.Enums, 1)

	e := f.Enums[0]
	assert.Equal(t, "Foo", e.Name)
	assert.Equal(t, KindString, e.Type)
	require.NotNil(t, e.RenameAll)
	assert.Equal(t, attr.NewRename("snake_case"), *e.RenameAll)

	require.Len(t, e.Variants, 4)
	assert.Equal(t, StringOrArray{"aa"}, e.Variants[0].Alias)
	assert.Equal(t, StringOrArray{"bb", "bbb"}, e.Variants[1].Alias)
	require.NotNil(t, e.Variants[1].Rename)
	assert.Equal(t, attr.NewRename("B"), *e.Variants[1].Rename)
	assert.True(t, e.Variants[2].Skip)
	assert.True(t, e.Variants[3].Other)
	assert.Equal(t, StringOrArray{"string"}, e.Variants[3].Payload)
}

func TestParse_Defaults(t *testing.T) {
	f, err := Parse([]byte("enums:\n  - name: Foo\n    variants:\n      - name: A\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultVersion, f.Version)
	assert.Equal(t, KindInt, f.Enums[0].Type)
	assert.Equal(t, "FooA", f.Enums[0].ConstName(&f.Enums[0].Variants[0]))
}

func TestParse_UnknownRuleIsNotAParseError(t *testing.T) {
	f, err := Parse([]byte("enums:\n  - name: Foo\n    rename_all: snake-case\n    variants:\n      - name: A\n"))
	require.NoError(t, err)

	_, err = f.Enums[0].Rules()
	require.Error(t, err)

	var rerr *attr.UnknownRenameRuleError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "snake-case", rerr.Err.Name)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yml  string
	}{
		{"not yaml", "enums: [\n"},
		{"alias mapping", "enums:\n  - name: Foo\n    variants:\n      - name: A\n        alias: {a: b}\n"},
		{"empty independent rename", "enums:\n  - name: Foo\n    variants:\n      - name: A\n        rename: {}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	f, err := LoadFile(filepath.Join("testdata", "colors.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Color", "Level"}, f.Names())

	level, ok := f.Lookup("Level")
	require.True(t, ok)

	all, err := level.Rules()
	require.NoError(t, err)
	require.NotNil(t, all)
	assert.Equal(t, attr.BothAll(rename.UpperCase, rename.LowerCase), *all)

	info, ok := level.Variant("Info")
	require.True(t, ok)
	assert.Equal(t, "LevelInformational", level.ConstName(info))

	_, ok = f.Lookup("Missing")
	assert.False(t, ok)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read definition file")
}

func TestWriteFile_RoundTrip(t *testing.T) {
	f, err := LoadFile(filepath.Join("testdata", "colors.yaml"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, WriteFile(f, path))

	back, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f, back)
}

func TestStringOrArray_MarshalYAML(t *testing.T) {
	v, err := StringOrArray{"a"}.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	v, err = StringOrArray{"a", "b"}.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, v)

	assert.Equal(t, "", StringOrArray{}.First())
	assert.Equal(t, "a", StringOrArray{"a", "b"}.First())
}
