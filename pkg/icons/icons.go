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

// Package icons resolves a concrete icon file for each instance, bundling
// per-loader default images for instances without an explicit override.
package icons

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prismpick/prismpick/pkg/catalog"
)

//go:embed images/*.png
var images embed.FS

// imageName picks the bundled default image for a loader. Grass is the
// generic fallback, vanilla instances included.
func imageName(loader catalog.Loader) string {
	switch loader {
	case catalog.LoaderForge:
		return "forge.png"
	case catalog.LoaderFabric:
		return "fabric.png"
	case catalog.LoaderQuilt:
		return "quilt.png"
	case catalog.LoaderNeoForge:
		return "neoforge.png"
	default:
		return "grass.png"
	}
}

// Scope owns the temp files backing bundled icons handed out by Resolve.
// Every path it returns stays valid until Close, so callers can resolve the
// whole catalog up front, hand the paths to the menu runner, and release
// everything together once the runner has exited.
type Scope struct {
	materialized map[string]string
}

// NewScope returns an empty icon scope.
func NewScope() *Scope {
	return &Scope{materialized: make(map[string]string)}
}

// Resolve returns an absolute icon file path for the instance. An explicit
// override wins; otherwise the loader's bundled default is materialized to a
// temp file, at most once per image per scope.
func (s *Scope) Resolve(inst catalog.Instance) (string, error) {
	if inst.IconPath != "" {
		path, err := filepath.Abs(inst.IconPath)
		if err != nil {
			return "", fmt.Errorf("failed to resolve icon path for %s: %w", inst.Name, err)
		}
		return path, nil
	}

	name := imageName(inst.Loader)
	if path, ok := s.materialized[name]; ok {
		return path, nil
	}

	data, err := images.ReadFile("images/" + name)
	if err != nil {
		return "", fmt.Errorf("failed to read bundled icon %s: %w", name, err)
	}

	file, err := os.CreateTemp("", "prismpick-*-"+name)
	if err != nil {
		return "", fmt.Errorf("failed to create icon temp file: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		_ = os.Remove(file.Name())
		return "", fmt.Errorf("failed to write icon temp file: %w", err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(file.Name())
		return "", fmt.Errorf("failed to close icon temp file: %w", err)
	}

	path, err := filepath.Abs(file.Name())
	if err != nil {
		_ = os.Remove(file.Name())
		return "", fmt.Errorf("failed to resolve icon temp path: %w", err)
	}

	s.materialized[name] = path
	return path, nil
}

// Close removes every icon file materialized by this scope. Safe to call on
// every exit path; resolving after Close materializes fresh files.
func (s *Scope) Close() error {
	var errs []error
	for name, path := range s.materialized {
		if err := os.Remove(path); err != nil {
			errs = append(errs, fmt.Errorf("failed to remove icon %s: %w", name, err))
		}
		delete(s.materialized, name)
	}
	return errors.Join(errs...)
}
