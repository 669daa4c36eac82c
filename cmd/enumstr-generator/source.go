package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	log "github.com/go-pkgz/lgr"

	"enumstr-generator/internal/analyze"
	"enumstr-generator/internal/definition"
	"enumstr-generator/internal/match"
)

var (
	errNoSource      = errors.New("one of --definition or --package is required")
	errBothSources   = errors.New("--definition and --package are mutually exclusive")
	errEnumRequired  = errors.New("--enum is required when the source has more than one enum")
	errEnumNotFound  = errors.New("enum not found")
	errNoEnumsInTree = errors.New("no enums found")
)

// SourceOpts selects where enum definitions come from.
type SourceOpts struct {
	Definition string   `short:"d" long:"definition" env:"ENUMSTR_DEFINITION" description:"YAML definition file"`
	Packages   []string `short:"p" long:"package" description:"Go package pattern with //enumstr: directives"`
}

// target is one loaded definition and the directory its code belongs in.
type target struct {
	file *definition.File
	// dir is the package directory for Go sources, empty for YAML.
	dir string
}

func (s SourceOpts) load() ([]target, error) {
	switch {
	case s.Definition != "" && len(s.Packages) > 0:
		return nil, errBothSources
	case s.Definition != "":
		f, err := definition.LoadFile(s.Definition)
		if err != nil {
			return nil, err
		}

		log.Printf("[DEBUG] loaded %d enum(s) from %s", len(f.Enums), s.Definition)

		return []target{{file: f}}, nil
	case len(s.Packages) > 0:
		pkgs, err := analyze.NewAnalyzer(analyze.WithLogger(logger())).LoadPackages(s.Packages...)
		if err != nil {
			return nil, err
		}

		res := make([]target, 0, len(pkgs))
		for i := range pkgs {
			res = append(res, target{file: pkgs[i].File(), dir: pkgs[i].Dir})
		}

		return res, nil
	default:
		return nil, errNoSource
	}
}

// EnumOpts picks one enum from the loaded source.
type EnumOpts struct {
	SourceOpts
	Enum string `short:"e" long:"enum" description:"enum name, optional when the source has one enum"`
}

func (o EnumOpts) find() (*definition.Enum, error) {
	targets, err := o.load()
	if err != nil {
		return nil, err
	}

	var all []*definition.Enum

	for _, t := range targets {
		for i := range t.file.Enums {
			all = append(all, &t.file.Enums[i])
		}
	}

	if len(all) == 0 {
		return nil, errNoEnumsInTree
	}

	if o.Enum == "" {
		if len(all) > 1 {
			return nil, errEnumRequired
		}

		return all[0], nil
	}

	names := make([]string, 0, len(all))

	for _, e := range all {
		if e.Name == o.Enum {
			return e, nil
		}

		names = append(names, e.Name)
	}

	return nil, fmt.Errorf("%w: %q%s", errEnumNotFound, o.Enum, didYouMean(o.Enum, names))
}

// didYouMean formats close candidates as a message suffix.
func didYouMean(name string, candidates []string) string {
	s := match.Suggest(name, candidates, 3)
	if len(s) == 0 {
		return ""
	}

	quoted := make([]string, len(s))
	for i, c := range s {
		quoted[i] = strconv.Quote(c)
	}

	return " (did you mean " + strings.Join(quoted, " or ") + "?)"
}
