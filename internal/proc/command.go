// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package proc

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Command describes a single program invocation with an explicit
// argument vector.
//
// The program is executed directly. There is no shell involved, no
// path search and no glob or variable expansion. For that reason
// Argv[0] must be an absolute path.
type Command struct {
	// Argv is the complete argument vector. Argv[0] is the program to
	// execute and must be an absolute path.
	Argv []string

	// OutputPath is an optional file the child's stdout is redirected
	// to. The file is created if absent and truncated if present. The
	// parent's own stdout is not affected.
	OutputPath string
}

// String returns a human readable representation of the command.
func (c *Command) String() string {
	return strings.Join(c.Argv, " ")
}

// Validate checks the preconditions of [Command.Run]. It never creates
// a process.
func (c *Command) Validate() error {
	if len(c.Argv) == 0 || c.Argv[0] == "" {
		return ErrEmptyCommand
	}

	if !filepath.IsAbs(c.Argv[0]) {
		return fmt.Errorf("%w: %s", ErrPathNotAbsolute, c.Argv[0])
	}

	return nil
}

// Run executes the command and blocks until its termination status has
// been collected. There are no retries. Canceling the context kills
// the child.
//
// The child reads stdin from the given reader. Its stdout goes to the
// given stdout writer, or to OutputPath if set. Stderr goes to the
// given stderr writer.
//
// A nil return means the child terminated normally with exit status 0.
// Any other outcome is reported as one of the error types of this
// package: [ErrEmptyCommand] and [ErrPathNotAbsolute] before a process
// is created, [RedirectError] before the program is executed,
// [InvocationError] for spawn or wait failures, [SignalError] for
// abnormal termination and [ExitError] for a non-zero exit.
func (c *Command) Run(
	ctx context.Context,
	stdin io.Reader,
	stdout, stderr io.Writer,
) error {
	if err := c.Validate(); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, c.Argv[0], c.Argv[1:]...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if c.OutputPath != "" {
		outFile, err := os.OpenFile(
			c.OutputPath,
			os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0o644,
		)
		if err != nil {
			return &RedirectError{Path: c.OutputPath, Err: err}
		}
		defer outFile.Close()

		cmd.Stdout = outFile
	}

	return decodeWait(cmd.Run())
}
