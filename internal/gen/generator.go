package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	"github.com/go-pkgz/lgr"

	"enumstr-generator/internal/definition"
	"enumstr-generator/internal/rename"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName overrides the package of the definition file.
	PackageName string
	// OutputDir is where unformatted code is dumped when formatting fails.
	OutputDir string
}

// Generator generates Go code from enum definitions.
type Generator struct {
	config GeneratorConfig
	log    lgr.L
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for progress messages.
func WithLogger(l lgr.L) Option {
	return func(g *Generator) {
		g.log = l
	}
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig, opts ...Option) *Generator {
	g := &Generator{config: config, log: lgr.NoOp}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "order_status_enumstr.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate generates one file per enum of f, in file order.
func (g *Generator) Generate(f *definition.File) ([]GeneratedFile, error) {
	pkgName := g.config.PackageName
	if pkgName == "" {
		pkgName = f.Package
	}

	if pkgName == "" {
		return nil, ErrMissingPackage
	}

	files := make([]GeneratedFile, 0, len(f.Enums))

	for i := range f.Enums {
		e := &f.Enums[i]

		file, err := g.generateEnum(pkgName, e)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", e.Name, err)
		}

		g.log.Logf("[DEBUG] generated %s for %s.%s", file.Filename, pkgName, e.Name)
		files = append(files, *file)
	}

	return files, nil
}

func (g *Generator) generateEnum(pkgName string, e *definition.Enum) (*GeneratedFile, error) {
	m, err := e.Build()
	if err != nil {
		return nil, err
	}

	data, err := buildTemplateData(pkgName, e, m)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := enumTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if derr := writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes()); derr != nil {
			g.log.Logf("[WARN] can't write unformatted %s, %v", data.Filename, derr)
		}

		return nil, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

// filename returns the output file name of an enum.
func filename(enumName string) string {
	return rename.SnakeCase.ApplyToVariant(enumName) + "_enumstr.go"
}

// quoteList renders names as a comma separated list of Go string literals.
func quoteList(names []string) string {
	quoted := make([]string, 0, len(names))
	for _, n := range names {
		quoted = append(quoted, strconv.Quote(n))
	}

	return strings.Join(quoted, ", ")
}

var enumTemplate = template.Must(template.New("enum").Funcs(template.FuncMap{
	"quote":     strconv.Quote,
	"quoteList": quoteList,
}).Parse(`// Code generated by enumstr-generator. DO NOT EDIT.

package {{.PackageName}}
{{if .NeedsFmt}}
import "fmt"
{{end}}
{{- if .Declare}}
// {{.Name}} is an enum with a string form.
type {{.Name}} {{.Kind}}

const (
{{- range $i, $c := .Consts}}
{{- if $.IsString}}
	{{$c.Name}} {{$.Name}} = {{quote $c.Value}}
{{- else if eq $i 0}}
	{{$c.Name}} {{$.Name}} = iota
{{- else}}
	{{$c.Name}}
{{- end}}
{{- end}}
)
{{end}}
{{- if not .Fallback}}
var _{{.Name}}Names = []string{ {{- quoteList .Expected -}} }
{{end}}
// String returns the display name of v.
func (v {{.Name}}) String() string {
	switch v {
{{- range .Variants}}
	case {{.Const}}:
		return {{quote .Display}}
{{- end}}
{{- if .UnitFallback}}
	case {{.Fallback.Const}}:
		return {{quote .Fallback.Name}}
{{- end}}
	}
{{if .PayloadFallback}}
	return string(v)
{{- else if .IsString}}
	return fmt.Sprintf("{{.Name}}(%q)", string(v))
{{- else}}
	return fmt.Sprintf("{{.Name}}(%d)", int64(v))
{{- end}}
}

// MarshalText implements encoding.TextMarshaler.
func (v {{.Name}}) MarshalText() ([]byte, error) {
	switch v {
{{- range .Variants}}
	case {{.Const}}:
{{- if .Serializable}}
		return []byte({{quote .SerName}}), nil
{{- else}}
		return nil, fmt.Errorf("the enum variant %s cannot be serialized", "{{$.Name}}.{{.Ident}}")
{{- end}}
{{- end}}
{{- if .UnitFallback}}
	case {{.Fallback.Const}}:
		return []byte({{quote .Fallback.Name}}), nil
{{- end}}
	}
{{if .PayloadFallback}}
	return []byte(v), nil
{{- else}}
	return nil, fmt.Errorf("invalid {{.Name}} value %v", v)
{{- end}}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *{{.Name}}) UnmarshalText(text []byte) error {
	p, err := Parse{{.Name}}(string(text))
	if err != nil {
		return err
	}

	*v = p

	return nil
}

// Parse{{.Name}} returns the {{.Name}} whose name or alias is s.
func Parse{{.Name}}(s string) ({{.Name}}, error) {
	switch s {
{{- range .Variants}}
{{- if .DeNames}}
	case {{quoteList .DeNames}}:
		return {{.Const}}, nil
{{- end}}
{{- end}}
	}
{{if .PayloadFallback}}
	return {{.Name}}(s), nil
{{- else if .UnitFallback}}
	return {{.Fallback.Const}}, nil
{{- else}}
	var zero {{.Name}}

	return zero, fmt.Errorf("unknown variant %q, expected one of %q", s, _{{.Name}}Names)
{{- end}}
}

// {{.Name}}Values returns the reachable variants of {{.Name}} in declaration order.
func {{.Name}}Values() []{{.Name}} {
	return []{{.Name}}{ {{- range $i, $v := .Values}}{{if $i}}, {{end}}{{$v}}{{end -}} }
}
`))
