// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package proc

import (
	"context"
	"io"
	"os/exec"
	"strings"
)

// shellPath is the command interpreter used by [Shell], matching the
// behavior of system(3).
const shellPath = "/bin/sh"

// Shell runs the given command line through the platform shell. The
// shell performs its own parsing, path search and expansion, so
// pipelines and globs work. The caller is trusted with arbitrary shell
// syntax; there is no sandboxing.
//
// A nil return means the command exited with status 0. Other outcomes
// are reported like in [Command.Run], with [InvocationError] covering
// the case that the shell itself could not be started.
func Shell(
	ctx context.Context,
	command string,
	stdin io.Reader,
	stdout, stderr io.Writer,
) error {
	if strings.TrimSpace(command) == "" {
		return ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, shellPath, "-c", command)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	return decodeWait(cmd.Run())
}
