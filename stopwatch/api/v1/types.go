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
	"math"

	"github.com/clock-app/clock-node/core"
)

// CreateLapRequest is the request body for recording a lap. Times are in seconds.
type CreateLapRequest struct {
	LapTime   float64 `json:"lap_time"`
	TotalTime float64 `json:"total_time"`
}

func (r CreateLapRequest) validate() error {
	if r.LapTime <= 0 {
		return core.InvalidInputError("lap_time must be positive")
	}
	if r.TotalTime <= 0 {
		return core.InvalidInputError("total_time must be positive")
	}
	return nil
}

// lapTime returns the lap time rounded to centiseconds.
func (r CreateLapRequest) lapTime() float64 {
	return roundTime(r.LapTime)
}

func (r CreateLapRequest) totalTime() float64 {
	return roundTime(r.TotalTime)
}

// DeletedResponse confirms a deletion.
type DeletedResponse struct {
	Message string `json:"message"`
	LapID   int    `json:"lap_id,omitempty"`
}

func roundTime(value float64) float64 {
	return math.Round(value*100) / 100
}
