// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package proc executes commands, either directly by absolute program
// path or through the platform shell, and optionally redirects the
// child's stdout into a file. Outcomes are reported as typed errors
// that keep the failure cause.
package proc
