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
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clock-app/clock-node/alarm"
	"github.com/clock-app/clock-node/core"
)

// Wrapper implements the alarm API as echo handlers.
type Wrapper struct {
	Service alarm.Alarms
}

func (w *Wrapper) ResolveStatusCode(err error) int {
	return core.ResolveStatusCode(err, map[error]int{
		alarm.ErrNotFound:         http.StatusNotFound,
		alarm.ErrInvalidDirection: http.StatusBadRequest,
	})
}

// Routes registers the echo routes for the alarm API.
func (w *Wrapper) Routes(router core.EchoRouter) {
	register := func(method string, path string, operationID string, handler echo.HandlerFunc) {
		router.Add(method, path, func(ctx echo.Context) error {
			ctx.Set(core.OperationIDContextKey, operationID)
			ctx.Set(core.ModuleNameContextKey, alarm.ModuleName)
			ctx.Set(core.StatusCodeResolverContextKey, w)
			return handler(ctx)
		})
	}
	register(http.MethodPost, "/api/v1/alarms", "CreateAlarm", w.CreateAlarm)
	register(http.MethodGet, "/api/v1/alarms", "GetAlarms", w.GetAlarms)
	register(http.MethodGet, "/api/v1/alarms/next", "GetNextAlarm", w.GetNextAlarm)
	register(http.MethodGet, "/api/v1/alarms/active", "GetActiveAlarms", w.GetActiveAlarms)
	register(http.MethodGet, "/api/v1/alarms/stats", "GetAlarmStats", w.GetAlarmStats)
	register(http.MethodGet, "/api/v1/alarms/:id", "GetAlarm", w.GetAlarm)
	register(http.MethodPut, "/api/v1/alarms/:id", "UpdateAlarm", w.UpdateAlarm)
	register(http.MethodDelete, "/api/v1/alarms/:id", "DeleteAlarm", w.DeleteAlarm)
	register(http.MethodPatch, "/api/v1/alarms/:id/toggle", "ToggleAlarm", w.ToggleAlarm)
	register(http.MethodGet, "/api/v1/alarms/:id/navigate", "NavigateAlarm", w.NavigateAlarm)
}

func (w *Wrapper) CreateAlarm(ctx echo.Context) error {
	request := CreateAlarmRequest{}
	if err := ctx.Bind(&request); err != nil {
		return core.InvalidInputError("invalid request body: %w", err)
	}
	if err := request.validate(); err != nil {
		return err
	}
	created, err := w.Service.Create(request.time(), request.label(), request.enabled(), request.Days)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, created)
}

// GetAlarms lists all alarms sorted by time. The optional day query parameter
// limits the result to alarms that ring on that day.
func (w *Wrapper) GetAlarms(ctx echo.Context) error {
	if day := ctx.QueryParam("day"); day != "" {
		if !isValidDay(day) {
			return core.InvalidInputError("invalid day: '%s'", day)
		}
		return ctx.JSON(http.StatusOK, w.Service.ByDay(day))
	}
	return ctx.JSON(http.StatusOK, w.Service.List())
}

func (w *Wrapper) GetAlarm(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}
	result, err := w.Service.Get(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, result)
}

func (w *Wrapper) UpdateAlarm(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}
	request := UpdateAlarmRequest{}
	if err := ctx.Bind(&request); err != nil {
		return core.InvalidInputError("invalid request body: %w", err)
	}
	if err := request.validate(); err != nil {
		return err
	}
	updated, err := w.Service.Update(id, request.asUpdate())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, updated)
}

func (w *Wrapper) DeleteAlarm(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}
	if err := w.Service.Delete(id); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, DeletedResponse{Message: "Alarm deleted", AlarmID: id})
}

func (w *Wrapper) ToggleAlarm(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}
	toggled, err := w.Service.Toggle(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toggled)
}

// GetNextAlarm returns the next enabled alarm that will ring, or null when
// there is no enabled alarm at all.
func (w *Wrapper) GetNextAlarm(ctx echo.Context) error {
	next, ok := w.Service.Next()
	if !ok {
		return ctx.JSON(http.StatusOK, nil)
	}
	return ctx.JSON(http.StatusOK, next)
}

func (w *Wrapper) NavigateAlarm(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}
	direction := alarm.Direction(ctx.QueryParam("direction"))
	if direction != alarm.DirectionNext && direction != alarm.DirectionPrev {
		return core.InvalidInputError("direction must be 'next' or 'prev'")
	}
	result, err := w.Service.Navigate(id, direction)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, result)
}

func (w *Wrapper) GetActiveAlarms(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, w.Service.Active())
}

func (w *Wrapper) GetAlarmStats(ctx echo.Context) error {
	total := w.Service.Count()
	active := w.Service.CountActive()
	stats := AlarmStats{
		TotalAlarms:    total,
		ActiveAlarms:   active,
		InactiveAlarms: total - active,
	}
	if next, ok := w.Service.Next(); ok {
		stats.NextAlarm = &next
	}
	return ctx.JSON(http.StatusOK, stats)
}

func parseID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, core.InvalidInputError("invalid alarm ID: '%s'", ctx.Param("id"))
	}
	return id, nil
}
