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

package icons

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prismpick/prismpick/pkg/catalog"
)

func TestScope_Resolve_ExplicitOverrideWins(t *testing.T) {
	t.Parallel()

	scope := NewScope()
	defer func() { require.NoError(t, scope.Close()) }()

	inst := catalog.Instance{
		Name:     "Test",
		Loader:   catalog.LoaderForge,
		IconPath: "/data/PrismLauncher/icons/custom.png",
	}

	path, err := scope.Resolve(inst)
	require.NoError(t, err)

	assert.Equal(t, "/data/PrismLauncher/icons/custom.png", path)
}

func TestScope_Resolve_BundledDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		loader   catalog.Loader
		expected string
	}{
		{"forge", catalog.LoaderForge, "forge.png"},
		{"fabric", catalog.LoaderFabric, "fabric.png"},
		{"quilt", catalog.LoaderQuilt, "quilt.png"},
		{"neoforge", catalog.LoaderNeoForge, "neoforge.png"},
		{"vanilla_falls_back_to_grass", "", "grass.png"},
		{"unknown_loader_falls_back_to_grass", "rift", "grass.png"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			scope := NewScope()
			defer func() { require.NoError(t, scope.Close()) }()

			path, err := scope.Resolve(catalog.Instance{Name: "Test", Loader: tt.loader})
			require.NoError(t, err)

			assert.True(t, filepath.IsAbs(path))
			assert.True(t, strings.HasSuffix(path, tt.expected),
				"path %q should end in %q", path, tt.expected)

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}

func TestScope_Resolve_SharesMaterializedImages(t *testing.T) {
	t.Parallel()

	scope := NewScope()
	defer func() { require.NoError(t, scope.Close()) }()

	first, err := scope.Resolve(catalog.Instance{Name: "A", Loader: catalog.LoaderFabric})
	require.NoError(t, err)
	second, err := scope.Resolve(catalog.Instance{Name: "B", Loader: catalog.LoaderFabric})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScope_Close_RemovesMaterializedFiles(t *testing.T) {
	t.Parallel()

	scope := NewScope()

	grass, err := scope.Resolve(catalog.Instance{Name: "A"})
	require.NoError(t, err)
	forge, err := scope.Resolve(catalog.Instance{Name: "B", Loader: catalog.LoaderForge})
	require.NoError(t, err)

	// both stay valid until the scope closes
	_, err = os.Stat(grass)
	require.NoError(t, err)
	_, err = os.Stat(forge)
	require.NoError(t, err)

	require.NoError(t, scope.Close())

	_, err = os.Stat(grass)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(forge)
	assert.True(t, os.IsNotExist(err))

	// closing twice is harmless
	assert.NoError(t, scope.Close())
}
