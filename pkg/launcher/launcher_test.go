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

package launcher

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/prismpick/prismpick/pkg/catalog"
	"github.com/prismpick/prismpick/pkg/testing/mocks"
)

func testInstances() []catalog.Instance {
	return []catalog.Instance{
		{Name: "Alpha", Group: "Ungrouped"},
		{Name: "Beta", Group: "Modded"},
		{Name: "Gamma", Group: "Ungrouped"},
	}
}

func TestDispatch_StartsLauncherWithSelection(t *testing.T) {
	t.Parallel()

	executor := &mocks.MockCommandExecutor{}
	executor.On("Start", mock.Anything, "prismlauncher", []string{"--launch", "Beta"}).
		Return(nil)

	err := Dispatch(context.Background(), executor, "prismlauncher", testInstances(), 1)

	require.NoError(t, err)
	executor.AssertExpectations(t)
}

func TestDispatch_OutOfRangeIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		index int
	}{
		{"negative", -1},
		{"past_end", 3},
		{"far_past_end", 5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			executor := &mocks.MockCommandExecutor{}

			err := Dispatch(context.Background(), executor, "prismlauncher", testInstances(), tt.index)

			require.Error(t, err)
			executor.AssertNotCalled(t, "Start", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestDispatch_StartFailurePropagates(t *testing.T) {
	t.Parallel()

	executor := &mocks.MockCommandExecutor{}
	executor.On("Start", mock.Anything, "prismlauncher", mock.Anything).
		Return(errors.New("executable file not found"))

	err := Dispatch(context.Background(), executor, "prismlauncher", testInstances(), 0)

	assert.Error(t, err)
}
