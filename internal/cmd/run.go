// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"

	"procrun/internal/proc"
)

const localConfigFile = ".procrun-args"

// Internal failures must be distinguishable from any exit code the
// child could have used itself.
const errExitCode = 125

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func run(ctx context.Context, flags *flags, cfg IO) error {
	if flags.shellCmd != "" {
		slog.Debug("Running via shell",
			slog.String("command", flags.shellCmd))

		return proc.Shell(ctx, flags.shellCmd, cfg.Stdin, cfg.Stdout, cfg.Stderr)
	}

	slog.Debug("Running directly",
		slog.String("command", flags.command.String()),
		slog.String("output", flags.command.OutputPath))

	return flags.command.Run(ctx, cfg.Stdin, cfg.Stdout, cfg.Stderr)
}

func handleParseArgsError(err error) int {
	// [flag.ErrHelp] is returned when help is requested. So exit
	// without error in this case.
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}

	// parseArgs already prints errors, so we just exit.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return errExitCode
}

func handleRunError(err error) int {
	if err == nil {
		return 0
	}

	slog.Error(err.Error())

	return proc.ExitCodeFrom(err, errExitCode)
}

// Run is the main entry point for the CLI command. It returns the exit
// code for the process: the child's own exit code, 128 plus the signal
// number if the child was terminated by a signal, or 125 for any
// failure of procrun itself.
func Run(ctx context.Context, args []string, cfg IO) int {
	setupLogging(cfg.Stderr, false)

	if len(args) == 0 {
		slog.Error(ErrEmptyArgs.Error())
		return errExitCode
	}

	args, err := MergedArgs(args, os.DirFS("."), localConfigFile)
	if err != nil {
		slog.Error(err.Error())
		return errExitCode
	}

	flags, err := parseArgs(args, cfg.Stderr)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.debug)

	return handleRunError(run(ctx, flags, cfg))
}
