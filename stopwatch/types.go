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

package stopwatch

import "time"

// Lap is a single recorded stopwatch lap.
type Lap struct {
	ID int `json:"id"`
	// LapNumber counts laps in recording order, starting at 1.
	LapNumber int `json:"lap_number"`
	// LapTime is the duration of this lap in seconds.
	LapTime float64 `json:"lap_time"`
	// TotalTime is the elapsed stopwatch time when this lap was recorded, in seconds.
	TotalTime float64 `json:"total_time"`
	Timestamp time.Time `json:"timestamp"`
}

// Statistics summarizes the recorded laps.
type Statistics struct {
	TotalLaps      int     `json:"total_laps"`
	FastestLap     *Lap    `json:"fastest_lap"`
	SlowestLap     *Lap    `json:"slowest_lap"`
	AverageLapTime float64 `json:"average_lap_time"`
	// TotalElapsedTime is the total time of the most recent lap.
	TotalElapsedTime float64 `json:"total_elapsed_time"`
}
