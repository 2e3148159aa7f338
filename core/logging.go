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

package core

const (
	// LogFieldModule is the log field for the module name.
	LogFieldModule = "module"

	// LogFieldAlarmID is the log field key for the ID of an alarm from the alarm module.
	LogFieldAlarmID = "alarmID"
	// LogFieldAlarmTime is the log field key for the time of an alarm from the alarm module.
	LogFieldAlarmTime = "alarmTime"

	// LogFieldLapID is the log field key for the ID of a lap from the stopwatch module.
	LogFieldLapID = "lapID"
	// LogFieldLapNumber is the log field key for the number of a lap from the stopwatch module.
	LogFieldLapNumber = "lapNumber"

	// LogFieldTimezoneID is the log field key for the ID of a (favorite) timezone from the timezone module.
	LogFieldTimezoneID = "timezoneID"

	// LogFieldCollection is the log field key for the name of a collection managed by the storage module.
	LogFieldCollection = "collection"
)
