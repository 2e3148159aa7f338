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

package settings

// AvailableSounds lists the alarm sounds that ship with the clock.
// Each sound corresponds to a file under /sounds/alarms/.
var AvailableSounds = []string{"classic", "gentle", "radar", "beacon", "chimes", "digital"}

// TimeFormats lists the supported clock display formats.
var TimeFormats = []string{"12h", "24h"}

// AvailableThemes lists the supported UI themes.
var AvailableThemes = []string{"light", "dark", "auto"}

const (
	defaultTimeFormat = "24h"
	defaultAlarmSound = "classic"
	defaultVolume     = 50
	defaultTheme      = "dark"

	// volumeStep is the amount the volume changes per increase/decrease when no amount is given.
	volumeStep = 10
)

// Settings holds the user preferences of the clock.
type Settings struct {
	TimeFormat  string `json:"time_format"`
	AlarmSound  string `json:"alarm_sound"`
	AlarmVolume int    `json:"alarm_volume"`
	Theme       string `json:"theme"`
}

// DefaultSettings returns the settings a fresh installation starts with.
func DefaultSettings() Settings {
	return Settings{
		TimeFormat:  defaultTimeFormat,
		AlarmSound:  defaultAlarmSound,
		AlarmVolume: defaultVolume,
		Theme:       defaultTheme,
	}
}

// IsMuted returns whether the alarm volume is 0.
func (s Settings) IsMuted() bool {
	return s.AlarmVolume == 0
}

// VolumeLevel returns a human readable description of the alarm volume.
func (s Settings) VolumeLevel() string {
	switch {
	case s.AlarmVolume == 0:
		return "muted"
	case s.AlarmVolume <= 25:
		return "low"
	case s.AlarmVolume <= 50:
		return "medium"
	case s.AlarmVolume <= 75:
		return "high"
	default:
		return "very high"
	}
}

// SoundPath returns the path of the audio file for the configured alarm sound.
func (s Settings) SoundPath() string {
	return "/sounds/alarms/" + s.AlarmSound + ".mp3"
}

// TimeExample renders 14:30 in the configured time format.
func (s Settings) TimeExample() string {
	if s.TimeFormat == "12h" {
		return "02:30 PM"
	}
	return "14:30"
}

// Update describes a partial settings change. Nil fields are left unchanged.
type Update struct {
	TimeFormat  *string `json:"time_format,omitempty"`
	AlarmSound  *string `json:"alarm_sound,omitempty"`
	AlarmVolume *int    `json:"alarm_volume,omitempty"`
	Theme       *string `json:"theme,omitempty"`
}

// Info describes the current settings together with the available options.
type Info struct {
	CurrentSettings  CurrentSettings  `json:"current_settings"`
	AvailableOptions AvailableOptions `json:"available_options"`
	Examples         Examples         `json:"examples"`
}

// CurrentSettings is the settings part of Info, enriched with derived values.
type CurrentSettings struct {
	TimeFormat  string `json:"time_format"`
	AlarmSound  string `json:"alarm_sound"`
	AlarmVolume int    `json:"alarm_volume"`
	VolumeLevel string `json:"volume_level"`
	Theme       string `json:"theme"`
	IsMuted     bool   `json:"is_muted"`
}

// AvailableOptions lists the values the settings fields accept.
type AvailableOptions struct {
	TimeFormats []string `json:"time_formats"`
	Sounds      []string `json:"sounds"`
	Themes      []string `json:"themes"`
}

// Examples shows the effect of the current settings.
type Examples struct {
	Time12H   string `json:"time_12h"`
	Time24H   string `json:"time_24h"`
	SoundPath string `json:"sound_path"`
}
