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

package alarm

import "errors"

// ModuleName is the name of this module.
const ModuleName = "Alarm"

// ErrNotFound is returned when the requested alarm does not exist.
var ErrNotFound = errors.New("alarm not found")

// ErrInvalidDirection is returned when navigating in a direction other than next or prev.
var ErrInvalidDirection = errors.New("invalid navigation direction")

// Direction indicates which way to walk the circular alarm list.
type Direction string

const (
	// DirectionNext walks towards later alarms, wrapping at the end of the day.
	DirectionNext Direction = "next"
	// DirectionPrev walks towards earlier alarms, wrapping at the start of the day.
	DirectionPrev Direction = "prev"
)

// Alarms is the interface for managing alarms, kept sorted by time of day.
type Alarms interface {
	// Create adds a new alarm. The ID is generated.
	Create(time string, label string, enabled bool, days []string) (Alarm, error)
	// List returns all alarms sorted by time.
	List() []Alarm
	// Get returns the alarm with the given ID, or ErrNotFound.
	Get(id int) (Alarm, error)
	// Update applies the non-nil fields of update to the alarm with the given ID.
	// A time change moves the alarm to its new sorted position.
	Update(id int, update Update) (Alarm, error)
	// Delete removes the alarm with the given ID, or returns ErrNotFound.
	Delete(id int) error
	// Toggle flips the enabled state of the alarm with the given ID.
	Toggle(id int) (Alarm, error)
	// Next returns the first enabled alarm after the current time of day,
	// wrapping to the earliest enabled alarm when there is none left today.
	Next() (Alarm, bool)
	// Navigate returns the alarm next to the one with the given ID, circularly.
	Navigate(id int, direction Direction) (Alarm, error)
	// Active returns all enabled alarms, sorted by time.
	Active() []Alarm
	// ByDay returns all alarms that ring on the given day. Alarms without
	// configured days ring once and match every day.
	ByDay(day string) []Alarm
	// Count returns the total number of alarms.
	Count() int
	// CountActive returns the number of enabled alarms.
	CountActive() int
}
