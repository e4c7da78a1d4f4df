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

package catalog

import "strings"

// Loader identifies the mod loader installed in an instance.
type Loader string

const (
	LoaderForge    Loader = "forge"
	LoaderFabric   Loader = "fabric"
	LoaderQuilt    Loader = "quilt"
	LoaderNeoForge Loader = "neoforge"
)

// DefaultGroup is the display group for instances the group index doesn't
// mention.
const DefaultGroup = "Ungrouped"

// Instance is one discovered launcher instance. Records are built once
// during the scan and read-only afterwards.
type Instance struct {
	// Name is the instance's storage directory name, unique per catalog.
	Name string
	// Group is the display group, DefaultGroup when unassigned.
	Group string
	// GameVersion is the net.minecraft component version, empty if not found.
	GameVersion string
	// ModpackVersion is the managed pack version label, if any.
	ModpackVersion string
	// IconPath is the explicit icon override path, empty when the bundled
	// loader default applies.
	IconPath string
	// Loader is the detected mod loader, empty when vanilla.
	Loader Loader
}

// String renders the instance as its menu entry text.
func (i Instance) String() string {
	var sb strings.Builder
	sb.WriteString(i.Name)
	sb.WriteString(" (")
	sb.WriteString(i.Group)

	if i.ModpackVersion != "" {
		sb.WriteString(", ")
		sb.WriteString(i.ModpackVersion)
	}

	if i.GameVersion != "" {
		sb.WriteString(", Minecraft ")
		sb.WriteString(i.GameVersion)
	}

	sb.WriteString(")")
	return sb.String()
}
