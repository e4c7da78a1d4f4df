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

// Package config locates and reads the Prism Launcher root configuration.
// The launcher's store is strictly read-only to us.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	ini "gopkg.in/ini.v1"
)

const (
	AppName = "prismpick"

	// ConfigFile is the launcher's root configuration file name.
	ConfigFile = "prismlauncher.cfg"

	launcherDirName = "PrismLauncher"

	keyInstanceDir = "InstanceDir"
	keyIconDir     = "IconDir"

	defaultInstanceDirName = "instances"
	defaultIconDirName     = "icons"
)

// ErrConfigMissing means the launcher's root configuration could not be read.
// This is the one error class with a curated user-facing message.
var ErrConfigMissing = errors.New("launcher config not found")

// DefaultBaseDir returns the Prism Launcher data dir used when the user
// gives no explicit config dir.
func DefaultBaseDir() string {
	return filepath.Join(xdg.DataHome, launcherDirName)
}

// ParseLoose parses the loose key=value text the launcher writes. Lines that
// aren't assignments are skipped, and a duplicated key keeps its first value
// (later occurrences become shadows).
func ParseLoose(data []byte) (*ini.File, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		AllowShadows:            true,
		SkipUnrecognizableLines: true,
	}, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse key=value text: %w", err)
	}
	return file, nil
}

// FirstValue returns the first value assigned to key anywhere in the file,
// regardless of which section header it sits under.
func FirstValue(file *ini.File, key string) (string, bool) {
	for _, section := range file.Sections() {
		if section.HasKey(key) {
			return section.Key(key).Value(), true
		}
	}
	return "", false
}

// Config is the parsed launcher root configuration.
type Config struct {
	file    *ini.File
	baseDir string
}

// Load reads and parses <baseDir>/prismlauncher.cfg. A missing or unreadable
// file returns an error wrapping ErrConfigMissing.
func Load(fsys afero.Fs, baseDir string) (*Config, error) {
	path := filepath.Join(baseDir, ConfigFile)
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigMissing, path)
	}

	file, err := ParseLoose(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFile, err)
	}

	return &Config{file: file, baseDir: baseDir}, nil
}

// subDir resolves the directory named by key, falling back to defaultName.
// Relative paths are anchored at the config's base dir.
func (c *Config) subDir(key, defaultName string) string {
	name, ok := FirstValue(c.file, key)
	if !ok {
		name = defaultName
	}
	if !filepath.IsAbs(name) {
		name = filepath.Join(c.baseDir, name)
	}
	return name
}

// InstanceDir returns the absolute path of the instance storage dir.
func (c *Config) InstanceDir() string {
	return c.subDir(keyInstanceDir, defaultInstanceDirName)
}

// IconDir returns the absolute path of the icon storage dir.
func (c *Config) IconDir() string {
	return c.subDir(keyIconDir, defaultIconDirName)
}
