// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package proc

import (
	"errors"
	"fmt"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// ExitError is the non-zero exit code of a child that terminated
// normally.
type ExitError int

// Error implements the [error] interface.
func (e ExitError) Error() string {
	return fmt.Sprintf("exit code %d", int(e))
}

// Is implements the [errors.Is] interface.
func (ExitError) Is(other error) bool {
	_, ok := other.(ExitError)
	return ok
}

// Code returns the exit code as basic int type.
func (e ExitError) Code() int {
	return int(e)
}

// SignalError is the signal that terminated a child abnormally.
type SignalError struct {
	Signal   unix.Signal
	CoreDump bool
}

// Error implements the [error] interface.
func (e *SignalError) Error() string {
	msg := "terminated by signal " + unix.SignalName(e.Signal)
	if e.CoreDump {
		msg += " (core dumped)"
	}

	return msg
}

// Is implements the [errors.Is] interface.
func (*SignalError) Is(other error) bool {
	_, ok := other.(*SignalError)
	return ok
}

// decodeWait translates the result of [exec.Cmd.Run] into the error
// taxonomy of this package.
func decodeWait(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return &InvocationError{Err: err}
	}

	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok {
		waitStatus := unix.WaitStatus(status)
		if waitStatus.Signaled() {
			return &SignalError{
				Signal:   waitStatus.Signal(),
				CoreDump: waitStatus.CoreDump(),
			}
		}
	}

	return ExitError(exitErr.ExitCode())
}

// ExitCodeFrom maps an error returned by [Command.Run], [Shell] or
// [RunParallel] to a process exit code.
//
// nil maps to 0. An [ExitError] maps to its own code. A [SignalError]
// maps to 128 plus the signal number, following shell convention. Any
// other error maps to the given fallback code.
func ExitCodeFrom(err error, fallback int) int {
	if err == nil {
		return 0
	}

	var exitErr ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code()
	}

	var sigErr *SignalError
	if errors.As(err, &sigErr) {
		return 128 + int(sigErr.Signal)
	}

	return fallback
}
