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

	"github.com/clock-app/clock-node/core"
	"github.com/clock-app/clock-node/stopwatch"
)

// Wrapper implements the stopwatch API as echo handlers.
type Wrapper struct {
	Service stopwatch.Laps
}

func (w *Wrapper) ResolveStatusCode(err error) int {
	return core.ResolveStatusCode(err, map[error]int{
		stopwatch.ErrNotFound:         http.StatusNotFound,
		stopwatch.ErrInvalidDirection: http.StatusBadRequest,
		stopwatch.ErrInvalidTime:      http.StatusBadRequest,
	})
}

// Routes registers the echo routes for the stopwatch API.
func (w *Wrapper) Routes(router core.EchoRouter) {
	register := func(method string, path string, operationID string, handler echo.HandlerFunc) {
		router.Add(method, path, func(ctx echo.Context) error {
			ctx.Set(core.OperationIDContextKey, operationID)
			ctx.Set(core.ModuleNameContextKey, stopwatch.ModuleName)
			ctx.Set(core.StatusCodeResolverContextKey, w)
			return handler(ctx)
		})
	}
	register(http.MethodPost, "/api/v1/stopwatch/laps", "CreateLap", w.CreateLap)
	register(http.MethodGet, "/api/v1/stopwatch/laps", "GetLaps", w.GetLaps)
	register(http.MethodDelete, "/api/v1/stopwatch/laps", "ClearLaps", w.ClearLaps)
	register(http.MethodGet, "/api/v1/stopwatch/laps/fastest", "GetFastestLap", w.GetFastestLap)
	register(http.MethodGet, "/api/v1/stopwatch/laps/slowest", "GetSlowestLap", w.GetSlowestLap)
	register(http.MethodGet, "/api/v1/stopwatch/laps/statistics", "GetLapStatistics", w.GetLapStatistics)
	register(http.MethodGet, "/api/v1/stopwatch/laps/first", "GetFirstLap", w.GetFirstLap)
	register(http.MethodGet, "/api/v1/stopwatch/laps/last", "GetLastLap", w.GetLastLap)
	register(http.MethodGet, "/api/v1/stopwatch/laps/filter/faster", "GetLapsFasterThan", w.GetLapsFasterThan)
	register(http.MethodGet, "/api/v1/stopwatch/laps/filter/slower", "GetLapsSlowerThan", w.GetLapsSlowerThan)
	register(http.MethodGet, "/api/v1/stopwatch/laps/:id", "GetLap", w.GetLap)
	register(http.MethodDelete, "/api/v1/stopwatch/laps/:id", "DeleteLap", w.DeleteLap)
	register(http.MethodGet, "/api/v1/stopwatch/laps/:id/navigate", "NavigateLap", w.NavigateLap)
}

func (w *Wrapper) CreateLap(ctx echo.Context) error {
	request := CreateLapRequest{}
	if err := ctx.Bind(&request); err != nil {
		return core.InvalidInputError("invalid request body: %w", err)
	}
	if err := request.validate(); err != nil {
		return err
	}
	created, err := w.Service.Add(request.lapTime(), request.totalTime())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, created)
}

// GetLaps lists all laps, most recent first.
func (w *Wrapper) GetLaps(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, w.Service.List())
}

func (w *Wrapper) ClearLaps(ctx echo.Context) error {
	if err := w.Service.Clear(); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, DeletedResponse{Message: "All laps cleared"})
}

func (w *Wrapper) GetLap(ctx echo.Context) error {
	id, err := parseIntParam(ctx, "id")
	if err != nil {
		return err
	}
	lap, err := w.Service.Get(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, lap)
}

func (w *Wrapper) DeleteLap(ctx echo.Context) error {
	id, err := parseIntParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := w.Service.Delete(id); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, DeletedResponse{Message: "Lap deleted", LapID: id})
}

// GetFastestLap returns the lap with the lowest lap time, or null when no laps are recorded.
func (w *Wrapper) GetFastestLap(ctx echo.Context) error {
	lap, ok := w.Service.Fastest()
	if !ok {
		return ctx.JSON(http.StatusOK, nil)
	}
	return ctx.JSON(http.StatusOK, lap)
}

// GetSlowestLap returns the lap with the highest lap time, or null when no laps are recorded.
func (w *Wrapper) GetSlowestLap(ctx echo.Context) error {
	lap, ok := w.Service.Slowest()
	if !ok {
		return ctx.JSON(http.StatusOK, nil)
	}
	return ctx.JSON(http.StatusOK, lap)
}

func (w *Wrapper) GetLapStatistics(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, w.Service.Statistics())
}

// NavigateLap walks the circular lap list starting from the lap with the
// given lap number. The path parameter is the lap number, not the lap ID.
func (w *Wrapper) NavigateLap(ctx echo.Context) error {
	number, err := parseIntParam(ctx, "id")
	if err != nil {
		return err
	}
	direction := stopwatch.Direction(ctx.QueryParam("direction"))
	if direction != stopwatch.DirectionNext && direction != stopwatch.DirectionPrev {
		return core.InvalidInputError("direction must be 'next' or 'prev'")
	}
	lap, err := w.Service.Navigate(number, direction)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, lap)
}

// GetFirstLap returns the most recently recorded lap.
func (w *Wrapper) GetFirstLap(ctx echo.Context) error {
	lap, ok := w.Service.First()
	if !ok {
		return ctx.JSON(http.StatusOK, nil)
	}
	return ctx.JSON(http.StatusOK, lap)
}

// GetLastLap returns the oldest recorded lap.
func (w *Wrapper) GetLastLap(ctx echo.Context) error {
	lap, ok := w.Service.Last()
	if !ok {
		return ctx.JSON(http.StatusOK, nil)
	}
	return ctx.JSON(http.StatusOK, lap)
}

func (w *Wrapper) GetLapsFasterThan(ctx echo.Context) error {
	threshold, err := parseThreshold(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, w.Service.FasterThan(threshold))
}

func (w *Wrapper) GetLapsSlowerThan(ctx echo.Context) error {
	threshold, err := parseThreshold(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, w.Service.SlowerThan(threshold))
}

func parseIntParam(ctx echo.Context, name string) (int, error) {
	value, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		return 0, core.InvalidInputError("invalid %s: '%s'", name, ctx.Param(name))
	}
	return value, nil
}

func parseThreshold(ctx echo.Context) (float64, error) {
	value, err := strconv.ParseFloat(ctx.QueryParam("time"), 64)
	if err != nil || value <= 0 {
		return 0, core.InvalidInputError("time must be a positive number")
	}
	return value, nil
}
