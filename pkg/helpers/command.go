// Prismpick
// Copyright (c) 2026 The Prismpick Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Prismpick.
//
// Prismpick is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Prismpick is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Prismpick.  If not, see <http://www.gnu.org/licenses/>.

package helpers

import (
	"bytes"
	"context"
	"os/exec"
)

// CommandExecutor provides an abstraction over exec.Command for testability.
// This allows child processes to be mocked in tests without executing real
// system commands.
type CommandExecutor interface {
	// OutputWithInput executes a command with input piped to its stdin, waits
	// for it to exit and returns its captured stdout. A non-zero exit status
	// is returned as an error.
	OutputWithInput(ctx context.Context, input []byte, name string, args ...string) ([]byte, error)

	// Start starts a command without waiting for it to complete (fire-and-forget).
	// Returns an error if the command fails to start.
	Start(ctx context.Context, name string, args ...string) error
}

// RealCommandExecutor uses actual exec.Command to execute system commands.
// This is the production implementation used in normal operation.
type RealCommandExecutor struct{}

// OutputWithInput executes a system command using exec.CommandContext with
// input fed to the child's stdin.
//
//nolint:wrapcheck // Wrapping exec errors loses important context
func (*RealCommandExecutor) OutputWithInput(
	ctx context.Context, input []byte, name string, args ...string,
) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = bytes.NewReader(input)
	return cmd.Output()
}

// Start starts a command without waiting for it to complete.
//
//nolint:wrapcheck // Wrapping exec errors loses important context
func (*RealCommandExecutor) Start(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Start()
}
