// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package proc

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCommand is returned if a command has no arguments at all
	// or an empty program.
	ErrEmptyCommand = errors.New("empty command")

	// ErrPathNotAbsolute is returned if the program path of a directly
	// executed command is not absolute. Direct execution performs no
	// path search, so a relative path can never work.
	ErrPathNotAbsolute = errors.New("program path is not absolute")
)

// InvocationError wraps failures of the execution mechanism itself,
// like process creation or termination status collection. The program
// may never have run.
type InvocationError struct {
	Err error
}

// Error implements the [error] interface.
func (e *InvocationError) Error() string {
	return "invoke: " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*InvocationError) Is(other error) bool {
	_, ok := other.(*InvocationError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *InvocationError) Unwrap() error {
	return e.Err
}

// RedirectError wraps failures opening or attaching the stdout
// redirection target. The program has not been executed.
type RedirectError struct {
	Path string
	Err  error
}

// Error implements the [error] interface.
func (e *RedirectError) Error() string {
	return fmt.Sprintf("redirect to %s: %v", e.Path, e.Err)
}

// Is implements the [errors.Is] interface.
func (*RedirectError) Is(other error) bool {
	_, ok := other.(*RedirectError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *RedirectError) Unwrap() error {
	return e.Err
}
