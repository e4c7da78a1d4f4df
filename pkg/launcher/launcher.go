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

// Package launcher hands the user's selection back to Prism Launcher.
package launcher

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/prismpick/prismpick/pkg/catalog"
	"github.com/prismpick/prismpick/pkg/helpers"
)

const launchFlag = "--launch"

// Dispatch asks the launcher executable to open the instance at the
// selected index. Fire-and-forget: the launcher process is started but
// never waited on. An out-of-range index is an error, never clamped.
func Dispatch(
	ctx context.Context,
	executor helpers.CommandExecutor,
	exe string,
	instances []catalog.Instance,
	index int,
) error {
	if index < 0 || index >= len(instances) {
		return fmt.Errorf("selected index %d out of range (%d instances)", index, len(instances))
	}

	name := instances[index].Name
	log.Info().Str("instance", name).Str("launcher", exe).Msg("launching instance")

	if err := executor.Start(ctx, exe, launchFlag, name); err != nil {
		return fmt.Errorf("failed to start launcher: %w", err)
	}
	return nil
}
