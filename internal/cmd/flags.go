// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime/debug"

	"procrun/internal/proc"
)

// Set on build.
var version = "dev"

const usageMessage = `Usage of 'procrun':
    procrun [flags...] /path/to/program [args...]
    procrun [flags...] -c 'command line'

The program path must be absolute. It is executed directly: no shell is
involved and no PATH search is performed. With -c, the command line is
run by /bin/sh instead.

All procrun flags can also be provided via environment variable
PROCRUN_ARGS or via file ./.procrun-args, with one argument per line.

`

type flags struct {
	flagSet *flag.FlagSet

	command  proc.Command
	shellCmd string

	version bool
	debug   bool
}

func parseArgs(args []string, output io.Writer) (*flags, error) {
	flags := &flags{}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageMessage)
		fs.PrintDefaults()
	}

	flags.flagSet = fs

	fs.StringVar(
		&flags.shellCmd,
		"c",
		"",
		"run the given command line via the shell instead of a program path",
	)

	var outputPath FilePath

	fs.Var(
		&outputPath,
		"output",
		"redirect the child's stdout to this file (created or truncated)",
	)

	fs.BoolVar(
		&flags.debug,
		"debug",
		flags.debug,
		"enable debug output",
	)

	fs.BoolVar(
		&flags.version,
		"version",
		flags.version,
		"show version and exit",
	)

	// Parses arguments up to the first one that is not prefixed with a
	// "-" or is "--".
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}

		return nil, &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, just print the version and exit. Using
	// [flag.ErrHelp] the main binary is supposed to return with a non
	// error exit code.
	if flags.version {
		flags.printVersionInformation()
		return nil, &ParseArgsError{msg: "version requested", err: flag.ErrHelp}
	}

	flags.command.Argv = fs.Args()
	flags.command.OutputPath = string(outputPath)

	if flags.shellCmd != "" {
		if len(flags.command.Argv) > 0 {
			return nil, flags.fail("both -c and a program path given", nil)
		}

		if flags.command.OutputPath != "" {
			return nil, flags.fail("-output cannot be used with -c", nil)
		}

		return flags, nil
	}

	if len(flags.command.Argv) == 0 {
		return nil, flags.fail("no program given", nil)
	}

	return flags, nil
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *flags) printVersionInformation() {
	fmt.Fprintf(f.flagSet.Output(), "%s: %s\n", f.flagSet.Name(), version)

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		fmt.Fprintln(f.flagSet.Output(), buildInfo.Main.Version)
	}
}
