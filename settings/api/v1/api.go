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
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clock-app/clock-node/core"
	"github.com/clock-app/clock-node/settings"
)

// Wrapper implements the settings API as echo handlers.
type Wrapper struct {
	Service settings.Preferences
}

func (w *Wrapper) ResolveStatusCode(err error) int {
	return core.ResolveStatusCode(err, map[error]int{})
}

// Routes registers the echo routes for the settings API.
func (w *Wrapper) Routes(router core.EchoRouter) {
	register := func(method string, path string, operationID string, handler echo.HandlerFunc) {
		router.Add(method, path, func(ctx echo.Context) error {
			ctx.Set(core.OperationIDContextKey, operationID)
			ctx.Set(core.ModuleNameContextKey, settings.ModuleName)
			ctx.Set(core.StatusCodeResolverContextKey, w)
			return handler(ctx)
		})
	}
	register(http.MethodGet, "/api/v1/settings", "GetSettings", w.GetSettings)
	register(http.MethodPut, "/api/v1/settings", "UpdateSettings", w.UpdateSettings)
	register(http.MethodPost, "/api/v1/settings/reset", "ResetSettings", w.ResetSettings)
	register(http.MethodPatch, "/api/v1/settings/time-format", "SetTimeFormat", w.SetTimeFormat)
	register(http.MethodPatch, "/api/v1/settings/alarm-sound", "SetAlarmSound", w.SetAlarmSound)
	register(http.MethodPatch, "/api/v1/settings/volume", "SetVolume", w.SetVolume)
	register(http.MethodPatch, "/api/v1/settings/volume/increase", "IncreaseVolume", w.IncreaseVolume)
	register(http.MethodPatch, "/api/v1/settings/volume/decrease", "DecreaseVolume", w.DecreaseVolume)
	register(http.MethodPatch, "/api/v1/settings/volume/mute", "ToggleMute", w.ToggleMute)
	register(http.MethodPatch, "/api/v1/settings/theme", "SetTheme", w.SetTheme)
	register(http.MethodGet, "/api/v1/settings/info", "GetSettingsInfo", w.GetSettingsInfo)
	register(http.MethodGet, "/api/v1/settings/export", "ExportSettings", w.ExportSettings)
	register(http.MethodPost, "/api/v1/settings/import", "ImportSettings", w.ImportSettings)
}

func (w *Wrapper) GetSettings(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, w.Service.Get())
}

func (w *Wrapper) UpdateSettings(ctx echo.Context) error {
	request := UpdateSettingsRequest{}
	if err := ctx.Bind(&request); err != nil {
		return core.InvalidInputError("invalid request body: %w", err)
	}
	if err := request.validate(); err != nil {
		return err
	}
	updated, err := w.Service.Update(request.asUpdate())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, updated)
}

func (w *Wrapper) ResetSettings(ctx echo.Context) error {
	updated, err := w.Service.Reset()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, updated)
}

func (w *Wrapper) SetTimeFormat(ctx echo.Context) error {
	request := TimeFormatRequest{}
	if err := ctx.Bind(&request); err != nil {
		return core.InvalidInputError("invalid request body: %w", err)
	}
	updated, err := w.Service.SetTimeFormat(request.TimeFormat)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, updated)
}

func (w *Wrapper) SetAlarmSound(ctx echo.Context) error {
	request := AlarmSoundRequest{}
	if err := ctx.Bind(&request); err != nil {
		return core.InvalidInputError("invalid request body: %w", err)
	}
	updated, err := w.Service.SetAlarmSound(request.AlarmSound)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, updated)
}

func (w *Wrapper) SetVolume(ctx echo.Context) error {
	request := VolumeRequest{}
	if err := ctx.Bind(&request); err != nil {
		return core.InvalidInputError("invalid request body: %w", err)
	}
	if request.Volume == nil {
		return core.InvalidInputError("volume is required")
	}
	updated, err := w.Service.SetVolume(*request.Volume)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, updated)
}

func (w *Wrapper) IncreaseVolume(ctx echo.Context) error {
	return w.changeVolume(ctx, w.Service.IncreaseVolume)
}

func (w *Wrapper) DecreaseVolume(ctx echo.Context) error {
	return w.changeVolume(ctx, w.Service.DecreaseVolume)
}

func (w *Wrapper) changeVolume(ctx echo.Context, change func(amount int) (settings.Settings, error)) error {
	request := VolumeChangeRequest{}
	// the body is optional, so binding errors on an empty body are ignored
	if err := ctx.Bind(&request); err != nil {
		request = VolumeChangeRequest{}
	}
	if err := request.validate(); err != nil {
		return err
	}
	updated, err := change(request.amount())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, updated)
}

func (w *Wrapper) ToggleMute(ctx echo.Context) error {
	updated, err := w.Service.ToggleMute()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, updated)
}

func (w *Wrapper) SetTheme(ctx echo.Context) error {
	request := ThemeRequest{}
	if err := ctx.Bind(&request); err != nil {
		return core.InvalidInputError("invalid request body: %w", err)
	}
	updated, err := w.Service.SetTheme(request.Theme)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, updated)
}

func (w *Wrapper) GetSettingsInfo(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, w.Service.Info())
}

func (w *Wrapper) ExportSettings(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, w.Service.Export())
}

func (w *Wrapper) ImportSettings(ctx echo.Context) error {
	imported := settings.Settings{}
	if err := ctx.Bind(&imported); err != nil {
		return core.InvalidInputError("invalid request body: %w", err)
	}
	result, err := w.Service.Import(imported)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, result)
}
