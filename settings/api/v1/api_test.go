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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clock-app/clock-node/core"
	"github.com/clock-app/clock-node/settings"
	"github.com/clock-app/clock-node/storage"
)

func testServer(t *testing.T) *echo.Echo {
	t.Helper()
	store := storage.New()
	require.NoError(t, store.Configure(core.ServerConfig{Datadir: t.TempDir()}))
	service := settings.New(store)
	require.NoError(t, service.Configure(core.ServerConfig{}))
	require.NoError(t, service.Start())

	server := echo.New()
	server.HTTPErrorHandler = core.CreateHTTPErrorHandler()
	(&Wrapper{Service: service}).Routes(server)
	return server
}

func doRequest(server *echo.Echo, method string, target string, body string) *httptest.ResponseRecorder {
	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, target, nil)
	} else {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
		request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)
	return recorder
}

func parseSettings(t *testing.T, response *httptest.ResponseRecorder) settings.Settings {
	t.Helper()
	var result settings.Settings
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &result))
	return result
}

func TestWrapper_GetSettings(t *testing.T) {
	server := testServer(t)

	response := doRequest(server, http.MethodGet, "/api/v1/settings", "")

	require.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, settings.DefaultSettings(), parseSettings(t, response))
}

func TestWrapper_UpdateSettings(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		server := testServer(t)

		response := doRequest(server, http.MethodPut, "/api/v1/settings", `{"time_format":"12h","theme":"light"}`)

		require.Equal(t, http.StatusOK, response.Code)
		result := parseSettings(t, response)
		assert.Equal(t, "12h", result.TimeFormat)
		assert.Equal(t, "light", result.Theme)
		assert.Equal(t, "classic", result.AlarmSound)
	})
	t.Run("empty update", func(t *testing.T) {
		server := testServer(t)

		response := doRequest(server, http.MethodPut, "/api/v1/settings", `{}`)

		assert.Equal(t, http.StatusBadRequest, response.Code)
		assert.Contains(t, response.Body.String(), "at least one field must be provided")
	})
	t.Run("invalid sound", func(t *testing.T) {
		server := testServer(t)

		response := doRequest(server, http.MethodPut, "/api/v1/settings", `{"alarm_sound":"airhorn"}`)

		assert.Equal(t, http.StatusBadRequest, response.Code)
		assert.Contains(t, response.Body.String(), "unknown alarm sound")
	})
}

func TestWrapper_ResetSettings(t *testing.T) {
	server := testServer(t)
	doRequest(server, http.MethodPatch, "/api/v1/settings/theme", `{"theme":"light"}`)

	response := doRequest(server, http.MethodPost, "/api/v1/settings/reset", "")

	require.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, settings.DefaultSettings(), parseSettings(t, response))
}

func TestWrapper_SetTimeFormat(t *testing.T) {
	server := testServer(t)

	response := doRequest(server, http.MethodPatch, "/api/v1/settings/time-format", `{"time_format":"12h"}`)

	require.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "12h", parseSettings(t, response).TimeFormat)
}

func TestWrapper_SetAlarmSound(t *testing.T) {
	server := testServer(t)

	response := doRequest(server, http.MethodPatch, "/api/v1/settings/alarm-sound", `{"alarm_sound":"beacon"}`)

	require.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "beacon", parseSettings(t, response).AlarmSound)
}

func TestWrapper_Volume(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		server := testServer(t)

		response := doRequest(server, http.MethodPatch, "/api/v1/settings/volume", `{"volume":80}`)

		require.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, 80, parseSettings(t, response).AlarmVolume)
	})
	t.Run("set without volume", func(t *testing.T) {
		server := testServer(t)

		response := doRequest(server, http.MethodPatch, "/api/v1/settings/volume", `{}`)

		assert.Equal(t, http.StatusBadRequest, response.Code)
		assert.Contains(t, response.Body.String(), "volume is required")
	})
	t.Run("increase with default amount", func(t *testing.T) {
		server := testServer(t)

		response := doRequest(server, http.MethodPatch, "/api/v1/settings/volume/increase", "")

		require.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, 60, parseSettings(t, response).AlarmVolume)
	})
	t.Run("decrease with explicit amount", func(t *testing.T) {
		server := testServer(t)

		response := doRequest(server, http.MethodPatch, "/api/v1/settings/volume/decrease", `{"amount":25}`)

		require.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, 25, parseSettings(t, response).AlarmVolume)
	})
	t.Run("invalid amount", func(t *testing.T) {
		server := testServer(t)

		response := doRequest(server, http.MethodPatch, "/api/v1/settings/volume/increase", `{"amount":500}`)

		assert.Equal(t, http.StatusBadRequest, response.Code)
		assert.Contains(t, response.Body.String(), "amount must be between 1 and 100")
	})
	t.Run("mute toggles", func(t *testing.T) {
		server := testServer(t)

		muted := doRequest(server, http.MethodPatch, "/api/v1/settings/volume/mute", "")
		require.Equal(t, http.StatusOK, muted.Code)
		assert.Equal(t, 0, parseSettings(t, muted).AlarmVolume)

		restored := doRequest(server, http.MethodPatch, "/api/v1/settings/volume/mute", "")
		require.Equal(t, http.StatusOK, restored.Code)
		assert.Equal(t, 50, parseSettings(t, restored).AlarmVolume)
	})
}

func TestWrapper_SetTheme(t *testing.T) {
	server := testServer(t)

	response := doRequest(server, http.MethodPatch, "/api/v1/settings/theme", `{"theme":"auto"}`)

	require.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "auto", parseSettings(t, response).Theme)
}

func TestWrapper_GetSettingsInfo(t *testing.T) {
	server := testServer(t)

	response := doRequest(server, http.MethodGet, "/api/v1/settings/info", "")

	require.Equal(t, http.StatusOK, response.Code)
	var info settings.Info
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &info))
	assert.Equal(t, "medium", info.CurrentSettings.VolumeLevel)
	assert.Equal(t, settings.AvailableThemes, info.AvailableOptions.Themes)
	assert.Equal(t, "/sounds/alarms/classic.mp3", info.Examples.SoundPath)
}

func TestWrapper_ExportImport(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		server := testServer(t)
		doRequest(server, http.MethodPatch, "/api/v1/settings/alarm-sound", `{"alarm_sound":"digital"}`)

		exported := doRequest(server, http.MethodGet, "/api/v1/settings/export", "")
		require.Equal(t, http.StatusOK, exported.Code)

		other := testServer(t)
		imported := doRequest(other, http.MethodPost, "/api/v1/settings/import", exported.Body.String())
		require.Equal(t, http.StatusOK, imported.Code)
		assert.Equal(t, "digital", parseSettings(t, imported).AlarmSound)
	})
	t.Run("invalid settings are rejected", func(t *testing.T) {
		server := testServer(t)

		response := doRequest(server, http.MethodPost, "/api/v1/settings/import", `{"time_format":"24h","alarm_sound":"classic","alarm_volume":200,"theme":"dark"}`)

		assert.Equal(t, http.StatusBadRequest, response.Code)
		assert.Contains(t, response.Body.String(), "alarm volume must be between 0 and 100")
	})
}
