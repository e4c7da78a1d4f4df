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

// Prismpick shows Prism Launcher instances in a dmenu-style menu and
// relaunches the launcher with the selected one.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/prismpick/prismpick/pkg/catalog"
	"github.com/prismpick/prismpick/pkg/config"
	"github.com/prismpick/prismpick/pkg/helpers"
	"github.com/prismpick/prismpick/pkg/icons"
	"github.com/prismpick/prismpick/pkg/launcher"
	"github.com/prismpick/prismpick/pkg/menu"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	configDir := flag.String(
		"config-dir",
		config.DefaultBaseDir(),
		"path to the Prism Launcher config dir",
	)
	runnerName := flag.String(
		"runner",
		string(menu.KindRofi),
		"menu runner to use (rofi, wofi or fuzzel)",
	)
	runnerExe := flag.String(
		"exe",
		"",
		"menu runner executable, defaults to the runner name",
	)
	prismExe := flag.String(
		"prism",
		"prismlauncher",
		"Prism Launcher executable to relaunch",
	)
	debug := flag.Bool(
		"debug",
		false,
		"enable debug logging",
	)
	flag.Parse()

	if err := helpers.InitLogging(config.AppName, *debug); err != nil {
		return err
	}

	kind, err := menu.ParseKind(*runnerName)
	if err != nil {
		return err
	}
	exe := *runnerExe
	if exe == "" {
		exe = string(kind)
	}

	fsys := afero.NewOsFs()

	cfg, err := config.Load(fsys, *configDir)
	if err != nil {
		return err
	}

	instanceDir := cfg.InstanceDir()
	iconDir := cfg.IconDir()
	log.Debug().
		Str("instanceDir", instanceDir).
		Str("iconDir", iconDir).
		Msg("resolved launcher dirs")

	instances, err := catalog.Scan(fsys, instanceDir, iconDir)
	if err != nil {
		return err
	}
	log.Info().Int("count", len(instances)).Msg("discovered instances")

	ctx := context.Background()
	executor := &helpers.RealCommandExecutor{}

	// Bundled icons are materialized as temp files and must all outlive the
	// runner process, which reads them while the menu is open.
	scope := icons.NewScope()
	defer func() {
		if err := scope.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to clean up icon files")
		}
	}()

	var input bytes.Buffer
	for _, inst := range instances {
		iconPath, err := scope.Resolve(inst)
		if err != nil {
			return err
		}
		menu.AppendEntry(&input, kind, inst.String(), iconPath)
	}

	out, err := menu.Run(ctx, executor, kind, exe, input.Bytes())
	if err != nil {
		return err
	}

	index, err := menu.ParseSelection(out)
	if err != nil {
		return err
	}
	log.Debug().Int("index", index).Msg("menu selection")

	return launcher.Dispatch(ctx, executor, *prismExe, instances, index)
}
