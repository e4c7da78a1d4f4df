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

// Package menu speaks the wire protocols of the supported dmenu-style menu
// runners: the entry encoding fed to their stdin, the argument vector each
// one needs, and the selection index they print.
//
// Adding a runner touches exactly three places: the Kind set, AppendEntry
// for the record encoding, and Args for the dmenu-mode arguments (enable
// icons and case-insensitive matching where the runner supports them).
package menu

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/prismpick/prismpick/pkg/helpers"
)

// Kind selects one of the supported menu runner programs. Its value doubles
// as the default executable name.
type Kind string

const (
	KindRofi   Kind = "rofi"
	KindWofi   Kind = "wofi"
	KindFuzzel Kind = "fuzzel"
)

// ParseKind validates a runner name from the CLI.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindRofi, KindWofi, KindFuzzel:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unsupported runner %q (want rofi, wofi or fuzzel)", s)
	}
}

// AppendEntry writes one menu record for an entry's display text and
// absolute icon path in the runner's input encoding.
func AppendEntry(buf *bytes.Buffer, kind Kind, text, iconPath string) {
	switch kind {
	case KindRofi, KindFuzzel:
		buf.WriteString(text)
		buf.WriteString("\x00icon\x1f")
		// rofi wants a plain path here, not a file:// URL
		buf.WriteString(iconPath)
		buf.WriteByte('\n')
	case KindWofi:
		buf.WriteString("img:")
		buf.WriteString(iconPath)
		buf.WriteString(":text:")
		buf.WriteString(text)
		buf.WriteByte('\n')
	}
}

// Args returns the argument vector that puts the runner in dmenu mode:
// read newline-delimited entries from stdin, print the selection to stdout.
func Args(kind Kind, exe string) []string {
	switch kind {
	case KindRofi:
		return []string{exe, "-dmenu", "-format", "i", "-p", "instance", "-i", "-show-icons"}
	case KindWofi:
		return []string{exe, "--dmenu", "--allow-images", "--insensitive"}
	case KindFuzzel:
		return []string{exe, "--dmenu"}
	}
	return nil
}

// ParseSelection decodes the runner's stdout into the selected zero-based
// entry index.
func ParseSelection(out []byte) (int, error) {
	raw := strings.TrimSuffix(string(out), "\n")
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("runner printed a non-numeric selection %q: %w", raw, err)
	}
	return index, nil
}

// Run feeds the serialized menu to the runner's stdin, blocks until it
// exits and returns its captured stdout. A failing runner exit, dismissing
// the menu included, surfaces as an error.
func Run(
	ctx context.Context, executor helpers.CommandExecutor, kind Kind, exe string, input []byte,
) ([]byte, error) {
	args := Args(kind, exe)
	log.Debug().Str("runner", string(kind)).Strs("args", args).Msg("starting menu runner")

	out, err := executor.OutputWithInput(ctx, input, args[0], args[1:]...)
	if err != nil {
		return nil, fmt.Errorf("menu runner failed: %w", err)
	}
	return out, nil
}
