package analyze

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"

	"github.com/go-pkgz/lgr"
	"go.uber.org/multierr"
	"golang.org/x/tools/go/packages"

	"enumstr-generator/internal/definition"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Package holds the enums found in one Go package.
type Package struct {
	// Path is the import path.
	Path string
	// Name is the package name.
	Name string
	// Dir is the directory of the package sources.
	Dir string
	// Enums in source order.
	Enums []definition.Enum
}

// File returns the enums of the package as a definition file.
func (p *Package) File() *definition.File {
	return &definition.File{
		Version: definition.DefaultVersion,
		Package: p.Name,
		Enums:   p.Enums,
	}
}

// Analyzer loads Go packages and extracts annotated enums.
type Analyzer struct {
	log lgr.L
	dir string
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger used for progress messages.
func WithLogger(l lgr.L) Option {
	return func(a *Analyzer) {
		a.log = l
	}
}

// WithDir sets the directory in which patterns are resolved.
func WithDir(dir string) Option {
	return func(a *Analyzer) {
		a.dir = dir
	}
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{log: lgr.NoOp}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// LoadPackages loads the specified packages and extracts their enums.
// Patterns are standard Go package patterns (e.g., "./store", "enumstr-generator/store").
// Every directive error of every package is reported, not only the first.
func (a *Analyzer) LoadPackages(patterns ...string) ([]Package, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs error

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = multierr.Append(errs, e)
		}
	}

	if errs != nil {
		return nil, fmt.Errorf("package errors: %w", errs)
	}

	res := make([]Package, 0, len(pkgs))

	for _, pkg := range pkgs {
		p, err := a.processPackage(pkg)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err))
			continue
		}

		a.log.Logf("[DEBUG] package %s: %d enum(s)", pkg.PkgPath, len(p.Enums))
		res = append(res, p)
	}

	if errs != nil {
		return nil, errs
	}

	return res, nil
}

// enumDecl is an enum type found in the first pass.
type enumDecl struct {
	enum       definition.Enum
	trimPrefix string
}

// processPackage extracts enums from a loaded package in two passes: first
// annotated types, then constants of those types.
func (a *Analyzer) processPackage(pkg *packages.Package) (Package, error) {
	p := Package{Path: pkg.PkgPath, Name: pkg.Name}
	if len(pkg.GoFiles) > 0 {
		p.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	var (
		order  []*types.TypeName
		byType = map[*types.TypeName]*enumDecl{}
		errs   error
	)

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)

				ed, err := a.typeDecl(pkg, gd, ts)
				if err != nil {
					errs = multierr.Append(errs, err)
					continue
				}

				if ed == nil {
					continue
				}

				obj := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
				order = append(order, obj)
				byType[obj] = ed
			}
		}
	}

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.CONST {
				continue
			}

			for _, spec := range gd.Specs {
				if err := a.constSpec(pkg, spec.(*ast.ValueSpec), byType); err != nil {
					errs = multierr.Append(errs, err)
				}
			}
		}
	}

	if errs != nil {
		return p, errs
	}

	for _, obj := range order {
		ed := byType[obj]
		a.log.Logf("[DEBUG] enum %s.%s: %d variant(s)", pkg.Name, ed.enum.Name, len(ed.enum.Variants))
		p.Enums = append(p.Enums, ed.enum)
	}

	return p, nil
}

// typeDecl returns the enum declared by ts, or nil when ts is not annotated.
func (a *Analyzer) typeDecl(pkg *packages.Package, gd *ast.GenDecl, ts *ast.TypeSpec) (*enumDecl, error) {
	groups := []*ast.CommentGroup{ts.Doc}
	if !gd.Lparen.IsValid() {
		groups = append(groups, gd.Doc)
	}

	dirs, err := collectDirectives(pkg.Fset, groups...)
	if err != nil {
		return nil, err
	}

	if len(dirs) == 0 {
		return nil, nil
	}

	td, err := applyTypeDirectives(dirs)
	if err != nil {
		return nil, err
	}

	if !td.enum {
		return nil, &DirectiveError{
			Pos:       dirs[0].pos,
			Directive: dirs[0].text,
			Err:       fmt.Errorf("%w: type directives require %s%s", ErrMalformedDirective, DirectivePrefix, keyEnum),
		}
	}

	obj, ok := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%s: no type information for %s", pkg.Fset.Position(ts.Pos()), ts.Name.Name)
	}

	kind, err := enumKind(obj)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", pkg.Fset.Position(ts.Pos()), ts.Name.Name, err)
	}

	ed := &enumDecl{
		enum: definition.Enum{
			Name:      ts.Name.Name,
			Type:      kind,
			RenameAll: td.renameAll,
			Declared:  true,
		},
		trimPrefix: ts.Name.Name,
	}

	if td.trimPrefix != nil {
		ed.trimPrefix = *td.trimPrefix
	}

	return ed, nil
}

// constSpec adds the constants of spec that belong to an enum.
func (a *Analyzer) constSpec(pkg *packages.Package, spec *ast.ValueSpec, byType map[*types.TypeName]*enumDecl) error {
	for _, name := range spec.Names {
		if name.Name == "_" {
			continue
		}

		c, ok := pkg.TypesInfo.Defs[name].(*types.Const)
		if !ok {
			continue
		}

		named, ok := c.Type().(*types.Named)
		if !ok {
			continue
		}

		ed := byType[named.Obj()]
		if ed == nil {
			continue
		}

		v := definition.Variant{
			Name:  variantName(name.Name, ed.trimPrefix),
			Const: name.Name,
		}

		if ed.enum.Type == definition.KindString && c.Val().Kind() == constant.String {
			val := constant.StringVal(c.Val())
			v.Value = &val
		}

		dirs, err := collectDirectives(pkg.Fset, spec.Doc, spec.Comment)
		if err != nil {
			return err
		}

		if err := applyVariantDirectives(&v, dirs); err != nil {
			return err
		}

		ed.enum.Variants = append(ed.enum.Variants, v)
	}

	return nil
}

// enumKind maps the underlying type of an enum to a definition kind.
func enumKind(obj *types.TypeName) (definition.Kind, error) {
	basic, ok := obj.Type().Underlying().(*types.Basic)
	if !ok {
		return "", ErrUnsupportedType
	}

	switch {
	case basic.Info()&types.IsString != 0:
		return definition.KindString, nil
	case basic.Info()&types.IsInteger != 0:
		return definition.KindInt, nil
	default:
		return "", ErrUnsupportedType
	}
}

// variantName trims prefix from a constant name. The constant name is kept
// when trimming would not leave an identifier starting with a letter.
func variantName(constName, prefix string) string {
	if prefix == "" {
		return constName
	}

	rest, ok := strings.CutPrefix(constName, prefix)
	if !ok || rest == "" || !token.IsIdentifier(rest) || rest[0] == '_' {
		return constName
	}

	return rest
}
