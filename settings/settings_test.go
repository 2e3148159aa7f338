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
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clock-app/clock-node/core"
	"github.com/clock-app/clock-node/storage"
)

func testProvider(t *testing.T) storage.Provider {
	t.Helper()
	engine := storage.New()
	require.NoError(t, engine.Configure(core.ServerConfig{Datadir: t.TempDir()}))
	return engine
}

func testManager(t *testing.T, provider storage.Provider) *Manager {
	t.Helper()
	manager := New(provider)
	require.NoError(t, manager.Configure(core.ServerConfig{}))
	require.NoError(t, manager.Start())
	return manager
}

func TestManager_Get(t *testing.T) {
	manager := testManager(t, testProvider(t))

	assert.Equal(t, DefaultSettings(), manager.Get())
}

func TestManager_Update(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		manager := testManager(t, testProvider(t))
		theme := "light"

		updated, err := manager.Update(Update{Theme: &theme})

		require.NoError(t, err)
		assert.Equal(t, "light", updated.Theme)
		assert.Equal(t, "24h", updated.TimeFormat)
	})
	t.Run("invalid value leaves settings unchanged", func(t *testing.T) {
		manager := testManager(t, testProvider(t))
		sound := "airhorn"

		_, err := manager.Update(Update{AlarmSound: &sound})

		assert.EqualError(t, err, "unknown alarm sound: 'airhorn', available sounds: classic, gentle, radar, beacon, chimes, digital")
		assert.Equal(t, "classic", manager.Get().AlarmSound)
	})
}

func TestManager_Reset(t *testing.T) {
	manager := testManager(t, testProvider(t))
	_, err := manager.SetVolume(80)
	require.NoError(t, err)

	updated, err := manager.Reset()

	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), updated)
}

func TestManager_SetTimeFormat(t *testing.T) {
	manager := testManager(t, testProvider(t))

	t.Run("ok", func(t *testing.T) {
		updated, err := manager.SetTimeFormat("12h")

		require.NoError(t, err)
		assert.Equal(t, "12h", updated.TimeFormat)
	})
	t.Run("unknown format", func(t *testing.T) {
		_, err := manager.SetTimeFormat("13h")

		assert.EqualError(t, err, "invalid time format: '13h', must be one of: 12h, 24h")
	})
}

func TestManager_SetAlarmSound(t *testing.T) {
	manager := testManager(t, testProvider(t))

	updated, err := manager.SetAlarmSound("radar")

	require.NoError(t, err)
	assert.Equal(t, "radar", updated.AlarmSound)
	assert.Equal(t, "/sounds/alarms/radar.mp3", updated.SoundPath())
}

func TestManager_Volume(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		manager := testManager(t, testProvider(t))

		updated, err := manager.SetVolume(75)

		require.NoError(t, err)
		assert.Equal(t, 75, updated.AlarmVolume)
		assert.Equal(t, "high", updated.VolumeLevel())
	})
	t.Run("set out of range", func(t *testing.T) {
		manager := testManager(t, testProvider(t))

		_, err := manager.SetVolume(101)

		assert.EqualError(t, err, "alarm volume must be between 0 and 100")
	})
	t.Run("increase clamps at 100", func(t *testing.T) {
		manager := testManager(t, testProvider(t))
		_, err := manager.SetVolume(95)
		require.NoError(t, err)

		updated, err := manager.IncreaseVolume(0)

		require.NoError(t, err)
		assert.Equal(t, 100, updated.AlarmVolume)
	})
	t.Run("decrease clamps at 0", func(t *testing.T) {
		manager := testManager(t, testProvider(t))
		_, err := manager.SetVolume(5)
		require.NoError(t, err)

		updated, err := manager.DecreaseVolume(20)

		require.NoError(t, err)
		assert.Equal(t, 0, updated.AlarmVolume)
		assert.True(t, updated.IsMuted())
	})
	t.Run("toggle mute", func(t *testing.T) {
		manager := testManager(t, testProvider(t))

		muted, err := manager.ToggleMute()
		require.NoError(t, err)
		assert.Equal(t, 0, muted.AlarmVolume)

		restored, err := manager.ToggleMute()
		require.NoError(t, err)
		assert.Equal(t, 50, restored.AlarmVolume)
	})
}

func TestManager_SetTheme(t *testing.T) {
	manager := testManager(t, testProvider(t))

	t.Run("ok", func(t *testing.T) {
		updated, err := manager.SetTheme("auto")

		require.NoError(t, err)
		assert.Equal(t, "auto", updated.Theme)
	})
	t.Run("unknown theme", func(t *testing.T) {
		_, err := manager.SetTheme("solarized")

		assert.EqualError(t, err, "unknown theme: 'solarized', available themes: light, dark, auto")
	})
}

func TestManager_ExportImport(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		source := testManager(t, testProvider(t))
		_, err := source.SetAlarmSound("chimes")
		require.NoError(t, err)

		target := testManager(t, testProvider(t))
		imported, err := target.Import(source.Export())

		require.NoError(t, err)
		assert.Equal(t, "chimes", imported.AlarmSound)
	})
	t.Run("invalid import is rejected", func(t *testing.T) {
		manager := testManager(t, testProvider(t))

		_, err := manager.Import(Settings{TimeFormat: "24h", AlarmSound: "classic", AlarmVolume: 200, Theme: "dark"})

		assert.EqualError(t, err, "alarm volume must be between 0 and 100")
		assert.Equal(t, DefaultSettings(), manager.Get())
	})
}

func TestManager_Info(t *testing.T) {
	manager := testManager(t, testProvider(t))
	_, err := manager.SetVolume(0)
	require.NoError(t, err)

	info := manager.Info()

	assert.Equal(t, "muted", info.CurrentSettings.VolumeLevel)
	assert.True(t, info.CurrentSettings.IsMuted)
	assert.Equal(t, AvailableSounds, info.AvailableOptions.Sounds)
	assert.Equal(t, "/sounds/alarms/classic.mp3", info.Examples.SoundPath)
}

func TestManager_Persistence(t *testing.T) {
	t.Run("settings survive a restart", func(t *testing.T) {
		provider := testProvider(t)
		manager := testManager(t, provider)
		_, err := manager.SetTheme("light")
		require.NoError(t, err)

		restarted := testManager(t, provider)

		assert.Equal(t, "light", restarted.Get().Theme)
	})
	t.Run("invalid persisted settings fall back to defaults", func(t *testing.T) {
		provider := testProvider(t)
		require.NoError(t, storage.SaveAll(provider.GetCollection("settings"), []Settings{{TimeFormat: "99h"}}))

		manager := testManager(t, provider)

		assert.Equal(t, DefaultSettings(), manager.Get())
	})
}

// failingStore is a storage.Provider whose collections reject every write.
type failingStore struct{}

func (f failingStore) GetCollection(string) storage.Collection { return f }
func (failingStore) ReadAll() ([]json.RawMessage, error)       { return nil, nil }
func (failingStore) WriteAll([]json.RawMessage) error          { return errors.New("disk full") }

func TestManager_SaveFailure(t *testing.T) {
	manager := testManager(t, failingStore{})

	_, err := manager.SetTheme("light")

	// the error surfaces, but the new settings are already applied in memory
	assert.EqualError(t, err, "disk full")
	assert.Equal(t, "light", manager.Get().Theme)
}

func TestManager_Diagnostics(t *testing.T) {
	manager := testManager(t, testProvider(t))

	results := manager.Diagnostics()

	require.Len(t, results, 4)
	assert.Equal(t, "time_format", results[0].Name())
	assert.Equal(t, "24h", results[0].String())
}
