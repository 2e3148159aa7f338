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

// ModuleName contains the name of this module.
const ModuleName = "Settings"

// Preferences is the interface that covers reading and updating the user preferences of the clock.
// The preferences are a single record, persisted as a whole after every change.
type Preferences interface {
	// Get returns the current settings.
	Get() Settings
	// Update applies the non-nil fields of the given update and returns the resulting settings.
	Update(update Update) (Settings, error)
	// Reset restores the default settings.
	Reset() (Settings, error)
	// SetTimeFormat updates the clock display format (12h or 24h).
	SetTimeFormat(format string) (Settings, error)
	// SetAlarmSound updates the alarm sound. The sound must be one of AvailableSounds.
	SetAlarmSound(sound string) (Settings, error)
	// SetVolume updates the alarm volume (0-100).
	SetVolume(volume int) (Settings, error)
	// IncreaseVolume raises the alarm volume by the given amount, clamped to 100.
	IncreaseVolume(amount int) (Settings, error)
	// DecreaseVolume lowers the alarm volume by the given amount, clamped to 0.
	DecreaseVolume(amount int) (Settings, error)
	// ToggleMute mutes the alarm volume, or restores it to the default level when already muted.
	ToggleMute() (Settings, error)
	// SetTheme updates the UI theme. The theme must be one of AvailableThemes.
	SetTheme(theme string) (Settings, error)
	// Export returns the current settings for backup purposes.
	Export() Settings
	// Import validates the given settings and replaces the current ones.
	Import(settings Settings) (Settings, error)
	// Info describes the current settings together with the available options.
	Info() Info
}
