// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package proc_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procrun/internal/proc"
)

func TestRunParallel(t *testing.T) {
	t.Run("no commands", func(t *testing.T) {
		var stdout, stderr bytes.Buffer

		err := proc.RunParallel(context.Background(), nil, &stdout, &stderr)
		require.NoError(t, err)
		assert.Empty(t, stdout.String())
	})

	t.Run("single command", func(t *testing.T) {
		var stdout, stderr bytes.Buffer

		cmds := []proc.Command{
			{Argv: []string{"/bin/sh", "-c", "echo only"}},
		}

		err := proc.RunParallel(context.Background(), cmds, &stdout, &stderr)
		require.NoError(t, err)
		assert.Equal(t, "only\n", stdout.String())
	})

	t.Run("outputs do not interleave", func(t *testing.T) {
		var stdout, stderr bytes.Buffer

		var cmds []proc.Command
		for _, tag := range []string{"a", "b", "c"} {
			cmds = append(cmds, proc.Command{
				Argv: []string{
					"/bin/sh", "-c",
					fmt.Sprintf("echo %[1]s1; echo %[1]s2", tag),
				},
			})
		}

		err := proc.RunParallel(context.Background(), cmds, &stdout, &stderr)
		require.NoError(t, err)

		// Each command's lines must appear as one contiguous block.
		for _, tag := range []string{"a", "b", "c"} {
			assert.Contains(
				t,
				stdout.String(),
				fmt.Sprintf("%[1]s1\n%[1]s2\n", tag),
			)
		}
	})

	t.Run("first error is returned", func(t *testing.T) {
		var stdout, stderr bytes.Buffer

		cmds := []proc.Command{
			{Argv: []string{"/bin/sh", "-c", "exit 0"}},
			{Argv: []string{"/bin/sh", "-c", "exit 5"}},
			{Argv: []string{"/bin/sh", "-c", "exit 0"}},
		}

		err := proc.RunParallel(context.Background(), cmds, &stdout, &stderr)

		var exitErr proc.ExitError

		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 5, exitErr.Code())
	})

	t.Run("invalid command among valid ones", func(t *testing.T) {
		var stdout, stderr bytes.Buffer

		cmds := []proc.Command{
			{Argv: []string{"/bin/sh", "-c", "echo fine"}},
			{Argv: []string{"sh", "-c", "echo never"}},
		}

		err := proc.RunParallel(context.Background(), cmds, &stdout, &stderr)
		require.ErrorIs(t, err, proc.ErrPathNotAbsolute)
		assert.NotContains(t, stdout.String(), "never")
	})
}
