/*
 * Clock node
 * Copyright (C) 2026 Clock community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package v1

import (
	"strings"

	"github.com/clock-app/clock-node/core"
)

const minQueryLength = 2

// AddFavoriteRequest is the request body for adding a favorite timezone.
type AddFavoriteRequest struct {
	TimezoneID string `json:"timezone_id"`
}

func (r AddFavoriteRequest) validate() error {
	if strings.TrimSpace(r.TimezoneID) == "" {
		return core.InvalidInputError("timezone_id must not be empty")
	}
	return nil
}

// ReorderFavoriteRequest is the request body for moving a favorite to a new position.
type ReorderFavoriteRequest struct {
	TimezoneID  string `json:"timezone_id"`
	NewPosition int    `json:"new_position"`
}

func (r ReorderFavoriteRequest) validate() error {
	if strings.TrimSpace(r.TimezoneID) == "" {
		return core.InvalidInputError("timezone_id must not be empty")
	}
	return nil
}

// CheckFavoriteResponse reports whether a timezone is a favorite.
type CheckFavoriteResponse struct {
	TimezoneID string `json:"timezone_id"`
	IsFavorite bool   `json:"is_favorite"`
}

// RefreshResponse confirms a catalog refresh.
type RefreshResponse struct {
	Message        string `json:"message"`
	TotalAvailable int    `json:"total_available"`
}

// RemovedResponse confirms the removal of a favorite.
type RemovedResponse struct {
	Message    string `json:"message"`
	TimezoneID string `json:"timezone_id"`
}
