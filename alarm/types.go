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

import "time"

// Alarm is a single alarm as stored and returned by the API.
type Alarm struct {
	ID int `json:"id"`
	// Time is the time of day the alarm rings, formatted as HH:MM (24h).
	Time    string `json:"time"`
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
	// Days lists the days of the week on which the alarm repeats.
	// An empty list means the alarm rings once.
	Days      []string  `json:"days"`
	CreatedAt time.Time `json:"created_at"`
}

// Update holds the fields of an alarm that can be changed. Nil fields are left untouched.
type Update struct {
	Time    *string
	Label   *string
	Enabled *bool
	Days    *[]string
}
