package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	log "github.com/go-pkgz/lgr"

	"enumstr-generator/internal/codec"
	"enumstr-generator/internal/definition"
	"enumstr-generator/internal/gen"
	"enumstr-generator/internal/rename"
)

type checkCmd struct {
	SourceOpts
}

// Execute validates every loaded definition and prints the diagnostics.
func (c *checkCmd) Execute(_ []string) error {
	targets, err := c.load()
	if err != nil {
		return err
	}

	var errCount, warnCount int

	for _, t := range targets {
		res := definition.Validate(t.file)
		for _, d := range res.All() {
			fmt.Fprintln(stdout, d.String())
		}

		errCount += len(res.Errors)
		warnCount += len(res.Warnings)
	}

	fmt.Fprintf(stdout, "%d error(s), %d warning(s)\n", errCount, warnCount)

	if errCount > 0 {
		return fmt.Errorf("check failed with %d error(s)", errCount)
	}

	return nil
}

type genCmd struct {
	SourceOpts
	Output  string `short:"o" long:"output" description:"output directory, defaults to the package directory or the current one"`
	PkgName string `long:"package-name" description:"package name of generated code, defaults to the definition's"`
}

// Execute generates code for every loaded definition. Definitions are
// validated first, and generation stops on the first invalid one.
func (c *genCmd) Execute(_ []string) error {
	targets, err := c.load()
	if err != nil {
		return err
	}

	g := gen.NewGenerator(gen.GeneratorConfig{PackageName: c.PkgName, OutputDir: c.Output}, gen.WithLogger(logger()))

	for _, t := range targets {
		if res := definition.Validate(t.file); res.HasErrors() {
			return res.Error()
		}

		files, err := g.Generate(t.file)
		if err != nil {
			return err
		}

		out := c.outputDir(t)
		if err := gen.WriteFiles(files, out); err != nil {
			return err
		}

		for _, f := range files {
			log.Printf("[INFO] wrote %s", filepath.Join(out, f.Filename))
		}
	}

	return nil
}

func (c *genCmd) outputDir(t target) string {
	switch {
	case c.Output != "":
		return c.Output
	case t.dir != "":
		return t.dir
	default:
		return "."
	}
}

type exportCmd struct {
	Packages []string `short:"p" long:"package" required:"true" description:"Go package pattern with //enumstr: directives"`
}

// Execute prints one YAML document per package.
func (c *exportCmd) Execute(_ []string) error {
	targets, err := SourceOpts{Packages: c.Packages}.load()
	if err != nil {
		return err
	}

	for i, t := range targets {
		data, err := definition.Marshal(t.file)
		if err != nil {
			return err
		}

		if i > 0 {
			fmt.Fprintln(stdout, "---")
		}

		fmt.Fprint(stdout, string(data))
	}

	return nil
}

type encodeCmd struct {
	EnumOpts
	Payload *string `long:"payload" description:"payload of the fallback variant"`
	Args    struct {
		Variant string `positional-arg-name:"variant" required:"true"`
	} `positional-args:"yes"`
}

// Execute prints the string form of a variant.
func (c *encodeCmd) Execute(_ []string) error {
	cd, err := c.codec()
	if err != nil {
		return err
	}

	s, err := cd.Encode(c.Args.Variant, c.Payload)
	if err != nil {
		if errors.Is(err, codec.ErrUnknownVariant) {
			return fmt.Errorf("%w%s", err, didYouMean(c.Args.Variant, cd.Model().Idents()))
		}

		return err
	}

	fmt.Fprintln(stdout, s)

	return nil
}

type decodeCmd struct {
	EnumOpts
	Args struct {
		Input string `positional-arg-name:"input" required:"true"`
	} `positional-args:"yes"`
}

// Execute prints the variant an input decodes to.
func (c *decodeCmd) Execute(_ []string) error {
	cd, err := c.codec()
	if err != nil {
		return err
	}

	d, err := cd.Decode(c.Args.Input)
	if err != nil {
		if errors.Is(err, codec.ErrNoMatchingVariant) {
			return fmt.Errorf("%w%s", err, didYouMean(c.Args.Input, cd.Names()))
		}

		return err
	}

	switch {
	case d.Value != nil:
		fmt.Fprintf(stdout, "%s(%#v)\n", d.Variant, d.Value)
	case d.Payload != nil:
		fmt.Fprintf(stdout, "%s(%q)\n", d.Variant, *d.Payload)
	default:
		fmt.Fprintln(stdout, d.Variant)
	}

	return nil
}

func (o EnumOpts) codec() (*codec.Codec, error) {
	e, err := o.find()
	if err != nil {
		return nil, err
	}

	m, err := e.Build()
	if err != nil {
		return nil, fmt.Errorf("enum %s: %w", e.Name, err)
	}

	return codec.New(m), nil
}

type renameCmd struct {
	Rule  string `short:"r" long:"rule" required:"true" description:"rename rule, e.g. snake_case"`
	Field bool   `long:"field" description:"apply the field convention instead of the variant one"`
	Args  struct {
		Idents []string `positional-arg-name:"ident" required:"1"`
	} `positional-args:"yes"`
}

// Execute prints every identifier renamed by the rule, one per line.
func (c *renameCmd) Execute(_ []string) error {
	rule, err := rename.ParseRule(c.Rule)
	if err != nil {
		return fmt.Errorf("%w%s", err, didYouMean(c.Rule, rename.Keys()))
	}

	out := make([]string, 0, len(c.Args.Idents))

	for _, ident := range c.Args.Idents {
		if c.Field {
			out = append(out, rule.ApplyToField(ident))
			continue
		}

		out = append(out, rule.ApplyToVariant(ident))
	}

	fmt.Fprintln(stdout, strings.Join(out, "\n"))

	return nil
}
