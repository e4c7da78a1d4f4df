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

// Package catalog discovers launcher instances and normalizes their
// metadata into Instance records.
package catalog

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/prismpick/prismpick/pkg/config"
)

const (
	// GroupsFile is the launcher's group index, kept in the instance dir.
	GroupsFile = "instgroups.json"
	// InstanceCfgFile marks a directory as an instance and carries its
	// key=value metadata.
	InstanceCfgFile = "instance.cfg"
	// PackFile is the instance's component list.
	PackFile = "mmc-pack.json"

	keyIcon               = "iconKey"
	keyManagedPackVersion = "ManagedPackVersionName"

	// iconKeyDefault suppresses the icon override; the launcher writes it
	// for instances using its built-in default icon.
	iconKeyDefault = "default"
	iconExt        = ".png"

	groupsFormatVersion = "1"
	packFormatVersion   = 1
)

// uidMinecraft is the core game component; its version is the game version.
const uidMinecraft = "net.minecraft"

// loaderComponents maps component uids to the loader they identify.
var loaderComponents = map[string]Loader{
	"net.fabricmc.fabric-loader": LoaderFabric,
	"org.quiltmc.quilt-loader":   LoaderQuilt,
	"net.minecraftforge":         LoaderForge,
	"net.neoforged":              LoaderNeoForge,
}

type groupsDoc struct {
	Groups map[string]struct {
		Instances []string `json:"instances"`
	} `json:"groups"`
	FormatVersion string `json:"formatVersion"`
}

type packDoc struct {
	Components []struct {
		UID     string `json:"uid"`
		Version string `json:"version"`
	} `json:"components"`
	FormatVersion int `json:"formatVersion"`
}

// loadGroups reads the group index and inverts it into an instance name to
// group name mapping. An unknown format version yields an empty mapping so
// every instance falls back to DefaultGroup.
func loadGroups(fsys afero.Fs, instanceDir string) (map[string]string, error) {
	data, err := afero.ReadFile(fsys, filepath.Join(instanceDir, GroupsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read group index: %w", err)
	}

	var doc groupsDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse group index: %w", err)
	}

	byInstance := make(map[string]string)
	if doc.FormatVersion != groupsFormatVersion {
		log.Debug().
			Str("formatVersion", doc.FormatVersion).
			Msg("unknown group index format, treating all instances as ungrouped")
		return byInstance, nil
	}

	for name, group := range doc.Groups {
		for _, member := range group.Instances {
			byInstance[member] = name
		}
	}
	return byInstance, nil
}

// Scan enumerates the instance dir and returns one Instance per child
// directory carrying an instance.cfg, in enumeration order. Anything else
// in the dir is skipped silently. The component list is mandatory: a
// missing or malformed mmc-pack.json fails the whole scan.
func Scan(fsys afero.Fs, instanceDir, iconDir string) ([]Instance, error) {
	groups, err := loadGroups(fsys, instanceDir)
	if err != nil {
		return nil, err
	}

	entries, err := afero.ReadDir(fsys, instanceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read instance dir: %w", err)
	}

	instances := make([]Instance, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dir := filepath.Join(instanceDir, entry.Name())
		cfgData, err := afero.ReadFile(fsys, filepath.Join(dir, InstanceCfgFile))
		if err != nil {
			// not an instance
			continue
		}

		inst, err := readInstance(fsys, dir, entry.Name(), iconDir, cfgData)
		if err != nil {
			return nil, err
		}

		if group, ok := groups[inst.Name]; ok {
			inst.Group = group
		} else {
			inst.Group = DefaultGroup
		}

		instances = append(instances, inst)
	}

	log.Debug().Int("count", len(instances)).Str("dir", instanceDir).Msg("scanned instances")
	return instances, nil
}

// readInstance builds one Instance from its directory. The record is
// accumulated here and immutable once returned.
func readInstance(fsys afero.Fs, dir, name, iconDir string, cfgData []byte) (Instance, error) {
	inst := Instance{Name: name}

	cfg, err := config.ParseLoose(cfgData)
	if err != nil {
		return Instance{}, fmt.Errorf("failed to parse %s for %s: %w", InstanceCfgFile, name, err)
	}

	if iconKey, ok := config.FirstValue(cfg, keyIcon); ok && iconKey != iconKeyDefault {
		inst.IconPath = filepath.Join(iconDir, iconKey+iconExt)
	}
	if version, ok := config.FirstValue(cfg, keyManagedPackVersion); ok {
		inst.ModpackVersion = version
	}

	packData, err := afero.ReadFile(fsys, filepath.Join(dir, PackFile))
	if err != nil {
		return Instance{}, fmt.Errorf("failed to read component list for %s: %w", name, err)
	}

	var pack packDoc
	if err := json.Unmarshal(packData, &pack); err != nil {
		return Instance{}, fmt.Errorf("failed to parse component list for %s: %w", name, err)
	}

	if pack.FormatVersion != packFormatVersion {
		log.Debug().
			Int("formatVersion", pack.FormatVersion).
			Str("instance", name).
			Msg("unknown component list format, skipping component extraction")
		return inst, nil
	}

	for _, component := range pack.Components {
		if component.UID == uidMinecraft {
			inst.GameVersion = component.Version
			continue
		}
		if loader, ok := loaderComponents[component.UID]; ok {
			inst.Loader = loader
		}
	}

	return inst, nil
}
