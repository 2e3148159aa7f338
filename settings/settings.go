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

import (
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/clock-app/clock-node/core"
	"github.com/clock-app/clock-node/settings/log"
	"github.com/clock-app/clock-node/storage"
)

const collectionName = "settings"

// Manager implements Preferences on a single persisted settings record.
type Manager struct {
	mux             sync.Mutex
	settings        Settings
	storageProvider storage.Provider
	store           storage.Collection
}

// New creates a new settings engine. The settings are loaded from storage on Start.
func New(storageProvider storage.Provider) *Manager {
	return &Manager{
		settings:        DefaultSettings(),
		storageProvider: storageProvider,
	}
}

func (m *Manager) Name() string {
	return ModuleName
}

func (m *Manager) Configure(_ core.ServerConfig) error {
	m.store = m.storageProvider.GetCollection(collectionName)
	return nil
}

// Start loads the persisted settings, falling back to the defaults when nothing was persisted yet.
func (m *Manager) Start() error {
	records, err := storage.LoadAll[Settings](m.store)
	if err != nil {
		return err
	}
	m.mux.Lock()
	defer m.mux.Unlock()
	if len(records) == 0 {
		log.Logger().Debug("No persisted settings, using defaults")
		return nil
	}
	if err := validate(records[0]); err != nil {
		log.Logger().
			WithError(err).
			WithField(core.LogFieldCollection, collectionName).
			Warn("Persisted settings are invalid, using defaults")
		return nil
	}
	m.settings = records[0]
	return nil
}

func (m *Manager) Shutdown() error {
	return nil
}

func (m *Manager) Diagnostics() []core.DiagnosticResult {
	m.mux.Lock()
	defer m.mux.Unlock()
	return []core.DiagnosticResult{
		core.GenericDiagnosticResult{Title: "time_format", Outcome: m.settings.TimeFormat},
		core.GenericDiagnosticResult{Title: "alarm_sound", Outcome: m.settings.AlarmSound},
		core.GenericDiagnosticResult{Title: "alarm_volume", Outcome: strconv.Itoa(m.settings.AlarmVolume)},
		core.GenericDiagnosticResult{Title: "theme", Outcome: m.settings.Theme},
	}
}

func (m *Manager) Get() Settings {
	m.mux.Lock()
	defer m.mux.Unlock()
	return m.settings
}

func (m *Manager) Update(update Update) (Settings, error) {
	m.mux.Lock()
	defer m.mux.Unlock()
	updated := m.settings
	if update.TimeFormat != nil {
		updated.TimeFormat = *update.TimeFormat
	}
	if update.AlarmSound != nil {
		updated.AlarmSound = *update.AlarmSound
	}
	if update.AlarmVolume != nil {
		updated.AlarmVolume = *update.AlarmVolume
	}
	if update.Theme != nil {
		updated.Theme = *update.Theme
	}
	return m.replace(updated)
}

func (m *Manager) Reset() (Settings, error) {
	m.mux.Lock()
	defer m.mux.Unlock()
	log.Logger().Info("Resetting settings to defaults")
	return m.replace(DefaultSettings())
}

func (m *Manager) SetTimeFormat(format string) (Settings, error) {
	m.mux.Lock()
	defer m.mux.Unlock()
	updated := m.settings
	updated.TimeFormat = format
	return m.replace(updated)
}

func (m *Manager) SetAlarmSound(sound string) (Settings, error) {
	m.mux.Lock()
	defer m.mux.Unlock()
	updated := m.settings
	updated.AlarmSound = sound
	return m.replace(updated)
}

func (m *Manager) SetVolume(volume int) (Settings, error) {
	m.mux.Lock()
	defer m.mux.Unlock()
	updated := m.settings
	updated.AlarmVolume = volume
	return m.replace(updated)
}

func (m *Manager) IncreaseVolume(amount int) (Settings, error) {
	m.mux.Lock()
	defer m.mux.Unlock()
	if amount <= 0 {
		amount = volumeStep
	}
	updated := m.settings
	updated.AlarmVolume = min(updated.AlarmVolume+amount, 100)
	return m.replace(updated)
}

func (m *Manager) DecreaseVolume(amount int) (Settings, error) {
	m.mux.Lock()
	defer m.mux.Unlock()
	if amount <= 0 {
		amount = volumeStep
	}
	updated := m.settings
	updated.AlarmVolume = max(updated.AlarmVolume-amount, 0)
	return m.replace(updated)
}

// ToggleMute sets the volume to 0, or back to the default level when it already is 0.
func (m *Manager) ToggleMute() (Settings, error) {
	m.mux.Lock()
	defer m.mux.Unlock()
	updated := m.settings
	if updated.AlarmVolume > 0 {
		updated.AlarmVolume = 0
	} else {
		updated.AlarmVolume = defaultVolume
	}
	return m.replace(updated)
}

func (m *Manager) SetTheme(theme string) (Settings, error) {
	m.mux.Lock()
	defer m.mux.Unlock()
	updated := m.settings
	updated.Theme = theme
	return m.replace(updated)
}

func (m *Manager) Export() Settings {
	return m.Get()
}

func (m *Manager) Import(settings Settings) (Settings, error) {
	m.mux.Lock()
	defer m.mux.Unlock()
	log.Logger().Info("Importing settings")
	return m.replace(settings)
}

func (m *Manager) Info() Info {
	m.mux.Lock()
	defer m.mux.Unlock()
	current := m.settings
	return Info{
		CurrentSettings: CurrentSettings{
			TimeFormat:  current.TimeFormat,
			AlarmSound:  current.AlarmSound,
			AlarmVolume: current.AlarmVolume,
			VolumeLevel: current.VolumeLevel(),
			Theme:       current.Theme,
			IsMuted:     current.IsMuted(),
		},
		AvailableOptions: AvailableOptions{
			TimeFormats: TimeFormats,
			Sounds:      AvailableSounds,
			Themes:      AvailableThemes,
		},
		Examples: Examples{
			Time12H:   "02:30 PM",
			Time24H:   "14:30",
			SoundPath: current.SoundPath(),
		},
	}
}

// replace validates, applies and persists the given settings. Callers must hold the lock.
func (m *Manager) replace(updated Settings) (Settings, error) {
	if err := validate(updated); err != nil {
		return Settings{}, err
	}
	m.settings = updated
	if err := storage.SaveAll(m.store, []Settings{m.settings}); err != nil {
		log.Logger().
			WithError(err).
			WithField(core.LogFieldCollection, collectionName).
			Error("Unable to persist settings")
		return Settings{}, err
	}
	return m.settings, nil
}

func validate(settings Settings) error {
	if !slices.Contains(TimeFormats, settings.TimeFormat) {
		return core.InvalidInputError("invalid time format: '%s', must be one of: %s", settings.TimeFormat, strings.Join(TimeFormats, ", "))
	}
	if !slices.Contains(AvailableSounds, settings.AlarmSound) {
		return core.InvalidInputError("unknown alarm sound: '%s', available sounds: %s", settings.AlarmSound, strings.Join(AvailableSounds, ", "))
	}
	if settings.AlarmVolume < 0 || settings.AlarmVolume > 100 {
		return core.InvalidInputError("alarm volume must be between 0 and 100")
	}
	if !slices.Contains(AvailableThemes, settings.Theme) {
		return core.InvalidInputError("unknown theme: '%s', available themes: %s", settings.Theme, strings.Join(AvailableThemes, ", "))
	}
	return nil
}
