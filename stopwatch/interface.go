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

import "errors"

// ModuleName is the name of this module.
const ModuleName = "Stopwatch"

// ErrNotFound is returned when the requested lap does not exist.
var ErrNotFound = errors.New("lap not found")

// ErrInvalidDirection is returned when navigating in a direction other than next or prev.
var ErrInvalidDirection = errors.New("invalid navigation direction")

// ErrInvalidTime is returned when a lap or total time is not a positive, finite number.
var ErrInvalidTime = errors.New("invalid lap time")

// Direction indicates which way to walk the circular lap list.
type Direction string

const (
	// DirectionNext walks towards older laps.
	DirectionNext Direction = "next"
	// DirectionPrev walks towards newer laps.
	DirectionPrev Direction = "prev"
)

// Laps is the interface for recording stopwatch laps, kept most recent first.
type Laps interface {
	// Add records a new lap at the front of the list. ID and lap number are generated.
	// Times must be positive, finite numbers or ErrInvalidTime is returned.
	Add(lapTime float64, totalTime float64) (Lap, error)
	// List returns all laps, most recent first.
	List() []Lap
	// Get returns the lap with the given ID, or ErrNotFound.
	Get(id int) (Lap, error)
	// GetByNumber returns the lap with the given lap number, or ErrNotFound.
	GetByNumber(number int) (Lap, error)
	// Fastest returns the lap with the lowest lap time.
	Fastest() (Lap, bool)
	// Slowest returns the lap with the highest lap time.
	Slowest() (Lap, bool)
	// Statistics summarizes all recorded laps.
	Statistics() Statistics
	// Navigate returns the lap next to the one with the given lap number, circularly.
	Navigate(number int, direction Direction) (Lap, error)
	// First returns the most recently recorded lap.
	First() (Lap, bool)
	// Last returns the oldest recorded lap.
	Last() (Lap, bool)
	// Delete removes the lap with the given ID, or returns ErrNotFound.
	Delete(id int) error
	// Clear removes all laps.
	Clear() error
	// Count returns the number of recorded laps.
	Count() int
	// FasterThan returns all laps with a lap time strictly below the threshold.
	FasterThan(threshold float64) []Lap
	// SlowerThan returns all laps with a lap time strictly above the threshold.
	SlowerThan(threshold float64) []Lap
}
