// Package main provides the CLI entrypoint for enumstr-generator.
//
// enumstr-generator turns Go enums into string enums:
//   - Reads enum definitions from YAML files or from //enumstr: directives in Go packages
//   - Validates them and reports every problem with suggestions
//   - Generates String, MarshalText, UnmarshalText and Parse functions
//   - Encodes, decodes and renames on the command line for quick checks
package main

import (
	"errors"
	"io"
	"os"

	log "github.com/go-pkgz/lgr"
	"github.com/umputun/go-flags"
)

type options struct {
	Dbg bool `long:"dbg" env:"ENUMSTR_DEBUG" description:"debug mode"`

	Check  checkCmd  `command:"check" description:"validate enum definitions and print diagnostics"`
	Gen    genCmd    `command:"gen" description:"generate enum code"`
	Export exportCmd `command:"export" description:"print the YAML definition extracted from Go source"`
	Encode encodeCmd `command:"encode" description:"encode a variant to its string form"`
	Decode decodeCmd `command:"decode" description:"decode a string to a variant"`
	Rename renameCmd `command:"rename" description:"apply a rename rule to identifiers"`
}

// stdout receives command output. Logs go through lgr.
var stdout io.Writer = os.Stdout

func main() {
	if err := run(os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			os.Exit(0)
		}

		os.Exit(1)
	}
}

func run(args []string) error {
	var opts options

	p := flags.NewParser(&opts, flags.Default)
	p.CommandHandler = func(cmd flags.Commander, args []string) error {
		setupLog(opts.Dbg)

		if cmd == nil {
			return nil
		}

		return cmd.Execute(args)
	}

	_, err := p.ParseArgs(args)

	return err
}

func setupLog(dbg bool) {
	if dbg {
		log.Setup(log.Debug, log.Msec, log.CallerFunc, log.CallerPkg, log.CallerFile)
		return
	}

	log.Setup(log.Msec)
}

// logger adapts the global lgr logger for the internal packages.
func logger() log.L {
	return log.Func(log.Printf)
}
