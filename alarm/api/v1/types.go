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
	"regexp"
	"strings"

	"github.com/clock-app/clock-node/alarm"
	"github.com/clock-app/clock-node/core"
)

var timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

var validDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

const maxLabelLength = 100
const defaultLabel = "New alarm"

// CreateAlarmRequest is the request body for creating an alarm.
type CreateAlarmRequest struct {
	Time    string   `json:"time"`
	Label   *string  `json:"label,omitempty"`
	Enabled *bool    `json:"enabled,omitempty"`
	Days    []string `json:"days,omitempty"`
}

func (r CreateAlarmRequest) validate() error {
	if err := validateTime(r.Time); err != nil {
		return err
	}
	if r.Label != nil {
		if err := validateLabel(*r.Label); err != nil {
			return err
		}
	}
	return validateDays(r.Days)
}

// time returns the request time with the hour zero padded, so "9:30" is stored
// as "09:30" and sorts before "22:00".
func (r CreateAlarmRequest) time() string {
	return normalizeTime(r.Time)
}

func (r CreateAlarmRequest) label() string {
	if r.Label == nil {
		return defaultLabel
	}
	return strings.TrimSpace(*r.Label)
}

func (r CreateAlarmRequest) enabled() bool {
	return r.Enabled == nil || *r.Enabled
}

// UpdateAlarmRequest is the request body for updating an alarm. All fields are optional,
// but at least one must be set.
type UpdateAlarmRequest struct {
	Time    *string   `json:"time,omitempty"`
	Label   *string   `json:"label,omitempty"`
	Enabled *bool     `json:"enabled,omitempty"`
	Days    *[]string `json:"days,omitempty"`
}

func (r UpdateAlarmRequest) validate() error {
	if r.Time == nil && r.Label == nil && r.Enabled == nil && r.Days == nil {
		return core.InvalidInputError("at least one field must be provided")
	}
	if r.Time != nil {
		if err := validateTime(*r.Time); err != nil {
			return err
		}
	}
	if r.Label != nil {
		if err := validateLabel(*r.Label); err != nil {
			return err
		}
	}
	if r.Days != nil {
		return validateDays(*r.Days)
	}
	return nil
}

func (r UpdateAlarmRequest) asUpdate() alarm.Update {
	update := alarm.Update{
		Enabled: r.Enabled,
		Days:    r.Days,
	}
	if r.Time != nil {
		normalized := normalizeTime(*r.Time)
		update.Time = &normalized
	}
	if r.Label != nil {
		trimmed := strings.TrimSpace(*r.Label)
		update.Label = &trimmed
	}
	return update
}

// AlarmStats summarizes the alarm collection.
type AlarmStats struct {
	TotalAlarms    int          `json:"total_alarms"`
	ActiveAlarms   int          `json:"active_alarms"`
	InactiveAlarms int          `json:"inactive_alarms"`
	NextAlarm      *alarm.Alarm `json:"next_alarm"`
}

// DeletedResponse confirms a deletion.
type DeletedResponse struct {
	Message string `json:"message"`
	AlarmID int    `json:"alarm_id"`
}

// normalizeTime pads a single digit hour to two digits.
func normalizeTime(value string) string {
	if len(value) == 4 {
		return "0" + value
	}
	return value
}

func validateTime(value string) error {
	if !timePattern.MatchString(value) {
		return core.InvalidInputError("invalid time format: '%s', must be HH:MM (00:00 - 23:59)", value)
	}
	return nil
}

func validateLabel(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return core.InvalidInputError("label must not be empty")
	}
	if len(trimmed) > maxLabelLength {
		return core.InvalidInputError("label must not exceed %d characters", maxLabelLength)
	}
	return nil
}

func validateDays(days []string) error {
	seen := map[string]bool{}
	for _, day := range days {
		if seen[day] {
			return core.InvalidInputError("duplicate day: '%s'", day)
		}
		seen[day] = true
		if !isValidDay(day) {
			return core.InvalidInputError("invalid day: '%s', must be one of %s", day, strings.Join(validDays, ", "))
		}
	}
	return nil
}

func isValidDay(day string) bool {
	for _, curr := range validDays {
		if curr == day {
			return true
		}
	}
	return false
}
