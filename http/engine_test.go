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

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clock-app/clock-node/core"
)

func TestEngine_Configure(t *testing.T) {
	t.Run("routes are served", func(t *testing.T) {
		engine := New(func() {})
		require.NoError(t, engine.Configure(core.ServerConfig{}))
		engine.Router().Add(http.MethodGet, "/ping", func(ctx echo.Context) error {
			return ctx.String(http.StatusOK, "pong")
		})

		recorder := httptest.NewRecorder()
		engine.server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "pong", recorder.Body.String())
	})
	t.Run("errors are rendered as problem details", func(t *testing.T) {
		engine := New(func() {})
		require.NoError(t, engine.Configure(core.ServerConfig{}))
		engine.Router().Add(http.MethodGet, "/error", func(ctx echo.Context) error {
			return core.NotFoundError("no such thing")
		})

		recorder := httptest.NewRecorder()
		engine.server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/error", nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Header().Get(echo.HeaderContentType), "application/problem+json")
		assert.Contains(t, recorder.Body.String(), "no such thing")
	})
	t.Run("CORS", func(t *testing.T) {
		t.Run("allowed origin is echoed", func(t *testing.T) {
			engine := New(func() {})
			config := core.ServerConfig{}
			config.HTTP.CORS.Origin = []string{"https://clock.example.com"}
			require.NoError(t, engine.Configure(config))
			engine.Router().Add(http.MethodGet, "/ping", func(ctx echo.Context) error {
				return ctx.NoContent(http.StatusOK)
			})

			request := httptest.NewRequest(http.MethodGet, "/ping", nil)
			request.Header.Set(echo.HeaderOrigin, "https://clock.example.com")
			recorder := httptest.NewRecorder()
			engine.server.ServeHTTP(recorder, request)

			assert.Equal(t, "https://clock.example.com", recorder.Header().Get(echo.HeaderAccessControlAllowOrigin))
		})
		t.Run("wildcard origin is not allowed in strict mode", func(t *testing.T) {
			engine := New(func() {})
			config := core.ServerConfig{Strictmode: true}
			config.HTTP.CORS.Origin = []string{"*"}

			err := engine.Configure(config)

			assert.EqualError(t, err, "wildcard CORS origin is not allowed in strict mode")
		})
	})
}

func TestEngine_Lifecycle(t *testing.T) {
	engine := New(func() {})
	config := core.ServerConfig{}
	config.HTTP.Address = "127.0.0.1:0"
	require.NoError(t, engine.Configure(config))

	require.NoError(t, engine.Start())
	require.NoError(t, engine.Shutdown())
}

func TestMatchesPath(t *testing.T) {
	assert.True(t, matchesPath("/", "/"))
	assert.True(t, matchesPath("/status", "/"))
	assert.True(t, matchesPath("/status/diagnostics", "/status"))
	assert.False(t, matchesPath("/statusx", "/status"))
	assert.False(t, matchesPath("/api/v1/alarms", "/status"))
}
