// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procrun/internal/cmd"
)

func TestEnvArgs(t *testing.T) {
	tests := []struct {
		name   string
		env    string
		output []string
	}{
		{
			name:   "empty",
			env:    "",
			output: []string{},
		},
		{
			name:   "multiple args",
			env:    "-output /tmp/out",
			output: []string{"-output", "/tmp/out"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PROCRUN_ARGS", tt.env)
			assert.Equal(t, tt.output, cmd.EnvArgs())
		})
	}
}

func TestLocalConfigArgs(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		env      map[string]string
		expected []string
	}{
		{
			name:     "empty",
			content:  "",
			expected: []string{},
		},
		{
			name:     "multiple lines",
			content:  "-debug\n-output\n/tmp/out\n",
			expected: []string{"-debug", "-output", "/tmp/out"},
		},
		{
			name:     "blank lines skipped",
			content:  "\n-debug\n\n",
			expected: []string{"-debug"},
		},
		{
			name:     "with env vars",
			content:  "-output=${OUT_DIR}/result\n",
			env:      map[string]string{"OUT_DIR": "/tmp"},
			expected: []string{"-output=/tmp/result"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			fsys := fstest.MapFS{
				".procrun-args": &fstest.MapFile{
					Data: []byte(tt.content),
				},
			}

			args, err := cmd.LocalConfigArgs(fsys, ".procrun-args")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, args)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		args, err := cmd.LocalConfigArgs(fstest.MapFS{}, ".procrun-args")
		require.NoError(t, err)
		assert.Nil(t, args)
	})
}

func TestMergedArgs(t *testing.T) {
	t.Run("empty argument list", func(t *testing.T) {
		_, err := cmd.MergedArgs(nil, fstest.MapFS{}, ".procrun-args")
		require.ErrorIs(t, err, cmd.ErrEmptyArgs)
	})

	t.Setenv("PROCRUN_ARGS", "-debug")

	fsys := fstest.MapFS{
		".procrun-args": &fstest.MapFile{
			Data: []byte("-output\n/tmp/out\n"),
		},
	}

	args, err := cmd.MergedArgs(
		[]string{"procrun", "/bin/true"},
		fsys,
		".procrun-args",
	)
	require.NoError(t, err)
	assert.Equal(
		t,
		[]string{"procrun", "-debug", "-output", "/tmp/out", "/bin/true"},
		args,
	)
}
