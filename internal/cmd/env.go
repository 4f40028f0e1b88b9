// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

const argsEnvVar = "PROCRUN_ARGS"

// EnvArgs returns procrun arguments from the environment.
func EnvArgs() []string {
	return strings.Fields(os.Getenv(argsEnvVar))
}

// LocalConfigArgs returns procrun arguments from a local config file.
//
// The file's format is one argument per line. Environment variables may
// be used and are expanded with [os.ExpandEnv]. A missing file is not
// an error.
func LocalConfigArgs(fsys fs.FS, file string) ([]string, error) {
	conf, err := fs.ReadFile(fsys, file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read file: %w", err)
	}

	args := []string{}

	expandedConf := os.ExpandEnv(string(conf))
	for line := range strings.SplitSeq(expandedConf, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			args = append(args, line)
		}
	}

	return args, nil
}

// MergedArgs merges arguments from the environment, the local config
// file and the command line, in that order of increasing precedence.
// The first element of args is kept in place as the command name.
func MergedArgs(args []string, fsys fs.FS, file string) ([]string, error) {
	if len(args) == 0 {
		return nil, ErrEmptyArgs
	}

	localArgs, err := LocalConfigArgs(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("local config args: %w", err)
	}

	merged := []string{args[0]}
	merged = append(merged, EnvArgs()...)
	merged = append(merged, localArgs...)
	merged = append(merged, args[1:]...)

	return merged, nil
}
