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
	"github.com/clock-app/clock-node/core"
	"github.com/clock-app/clock-node/settings"
)

// UpdateSettingsRequest is a partial settings update. Absent fields are left unchanged.
type UpdateSettingsRequest struct {
	TimeFormat  *string `json:"time_format,omitempty"`
	AlarmSound  *string `json:"alarm_sound,omitempty"`
	AlarmVolume *int    `json:"alarm_volume,omitempty"`
	Theme       *string `json:"theme,omitempty"`
}

func (r UpdateSettingsRequest) validate() error {
	if r.TimeFormat == nil && r.AlarmSound == nil && r.AlarmVolume == nil && r.Theme == nil {
		return core.InvalidInputError("at least one field must be provided")
	}
	return nil
}

func (r UpdateSettingsRequest) asUpdate() settings.Update {
	return settings.Update{
		TimeFormat:  r.TimeFormat,
		AlarmSound:  r.AlarmSound,
		AlarmVolume: r.AlarmVolume,
		Theme:       r.Theme,
	}
}

// TimeFormatRequest sets the clock display format.
type TimeFormatRequest struct {
	TimeFormat string `json:"time_format"`
}

// AlarmSoundRequest sets the alarm sound.
type AlarmSoundRequest struct {
	AlarmSound string `json:"alarm_sound"`
}

// VolumeRequest sets the alarm volume.
type VolumeRequest struct {
	Volume *int `json:"volume"`
}

// VolumeChangeRequest changes the alarm volume by an amount. The amount is optional
// and defaults to 10.
type VolumeChangeRequest struct {
	Amount *int `json:"amount,omitempty"`
}

func (r VolumeChangeRequest) amount() int {
	if r.Amount == nil {
		return 0
	}
	return *r.Amount
}

func (r VolumeChangeRequest) validate() error {
	if r.Amount != nil && (*r.Amount < 1 || *r.Amount > 100) {
		return core.InvalidInputError("amount must be between 1 and 100")
	}
	return nil
}

// ThemeRequest sets the UI theme.
type ThemeRequest struct {
	Theme string `json:"theme"`
}
