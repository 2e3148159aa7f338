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
	"github.com/clock-app/clock-node/timezone"
)

// Wrapper implements the timezone API as echo handlers.
type Wrapper struct {
	Service timezone.Timezones
}

func (w *Wrapper) ResolveStatusCode(err error) int {
	return core.ResolveStatusCode(err, map[error]int{
		timezone.ErrNotFound:           http.StatusNotFound,
		timezone.ErrUnknownTimezone:    http.StatusNotFound,
		timezone.ErrAlreadyFavorite:    http.StatusBadRequest,
		timezone.ErrInvalidPosition:    http.StatusBadRequest,
		timezone.ErrInvalidDirection:   http.StatusBadRequest,
		timezone.ErrCatalogUnavailable: http.StatusServiceUnavailable,
	})
}

// Routes registers the echo routes for the timezone API.
func (w *Wrapper) Routes(router core.EchoRouter) {
	register := func(method string, path string, operationID string, handler echo.HandlerFunc) {
		router.Add(method, path, func(ctx echo.Context) error {
			ctx.Set(core.OperationIDContextKey, operationID)
			ctx.Set(core.ModuleNameContextKey, timezone.ModuleName)
			ctx.Set(core.StatusCodeResolverContextKey, w)
			return handler(ctx)
		})
	}
	register(http.MethodGet, "/api/v1/timezones", "GetTimezones", w.GetTimezones)
	register(http.MethodGet, "/api/v1/timezones/search", "SearchTimezones", w.SearchTimezones)
	register(http.MethodGet, "/api/v1/timezones/countries", "GetCountries", w.GetCountries)
	register(http.MethodGet, "/api/v1/timezones/country/:country", "GetTimezonesByCountry", w.GetTimezonesByCountry)
	register(http.MethodPost, "/api/v1/timezones/refresh", "RefreshTimezones", w.RefreshTimezones)
	register(http.MethodGet, "/api/v1/timezones/stats", "GetTimezoneStats", w.GetTimezoneStats)
	register(http.MethodGet, "/api/v1/timezones/favorites", "GetFavorites", w.GetFavorites)
	register(http.MethodPost, "/api/v1/timezones/favorites", "AddFavorite", w.AddFavorite)
	register(http.MethodPut, "/api/v1/timezones/favorites/reorder", "ReorderFavorite", w.ReorderFavorite)
	register(http.MethodGet, "/api/v1/timezones/favorites/check/:id", "CheckFavorite", w.CheckFavorite)
	register(http.MethodDelete, "/api/v1/timezones/favorites/:id", "RemoveFavorite", w.RemoveFavorite)
	register(http.MethodGet, "/api/v1/timezones/favorites/:id/navigate", "NavigateFavorites", w.NavigateFavorites)
	register(http.MethodGet, "/api/v1/timezones/:id", "GetTimezone", w.GetTimezone)
	register(http.MethodGet, "/api/v1/timezones/:id/time", "GetCurrentTime", w.GetCurrentTime)
}

// GetTimezones lists the timezone catalog. Passing refresh=true forces a fetch
// from the upstream API.
func (w *Wrapper) GetTimezones(ctx echo.Context) error {
	forceRefresh := ctx.QueryParam("refresh") == "true"
	return ctx.JSON(http.StatusOK, w.Service.Available(ctx.Request().Context(), forceRefresh))
}

func (w *Wrapper) SearchTimezones(ctx echo.Context) error {
	query := ctx.QueryParam("query")
	if len(query) < minQueryLength {
		return core.InvalidInputError("query must be at least %d characters", minQueryLength)
	}
	return ctx.JSON(http.StatusOK, w.Service.Search(query))
}

func (w *Wrapper) GetCountries(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, w.Service.Countries())
}

func (w *Wrapper) GetTimezonesByCountry(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, w.Service.ByCountry(ctx.Param("country")))
}

func (w *Wrapper) RefreshTimezones(ctx echo.Context) error {
	if err := w.Service.Refresh(ctx.Request().Context()); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, RefreshResponse{
		Message:        "Timezone catalog refreshed",
		TotalAvailable: w.Service.Stats().TotalAvailable,
	})
}

func (w *Wrapper) GetTimezoneStats(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, w.Service.Stats())
}

func (w *Wrapper) GetTimezone(ctx echo.Context) error {
	tz, err := w.Service.Get(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, tz)
}

func (w *Wrapper) GetCurrentTime(ctx echo.Context) error {
	current, err := w.Service.CurrentTime(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, current)
}

// GetFavorites lists the favorite timezones in user order.
func (w *Wrapper) GetFavorites(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, w.Service.Favorites())
}

func (w *Wrapper) AddFavorite(ctx echo.Context) error {
	request := AddFavoriteRequest{}
	if err := ctx.Bind(&request); err != nil {
		return core.InvalidInputError("invalid request body: %w", err)
	}
	if err := request.validate(); err != nil {
		return err
	}
	favorite, err := w.Service.AddFavorite(request.TimezoneID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, favorite)
}

func (w *Wrapper) RemoveFavorite(ctx echo.Context) error {
	id := ctx.Param("id")
	if err := w.Service.RemoveFavorite(id); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, RemovedResponse{Message: "Favorite removed", TimezoneID: id})
}

func (w *Wrapper) ReorderFavorite(ctx echo.Context) error {
	request := ReorderFavoriteRequest{}
	if err := ctx.Bind(&request); err != nil {
		return core.InvalidInputError("invalid request body: %w", err)
	}
	if err := request.validate(); err != nil {
		return err
	}
	if err := w.Service.ReorderFavorite(request.TimezoneID, request.NewPosition); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, w.Service.Favorites())
}

func (w *Wrapper) CheckFavorite(ctx echo.Context) error {
	id := ctx.Param("id")
	return ctx.JSON(http.StatusOK, CheckFavoriteResponse{
		TimezoneID: id,
		IsFavorite: w.Service.IsFavorite(id),
	})
}

func (w *Wrapper) NavigateFavorites(ctx echo.Context) error {
	direction := timezone.Direction(ctx.QueryParam("direction"))
	if direction != timezone.DirectionNext && direction != timezone.DirectionPrev {
		return core.InvalidInputError("direction must be 'next' or 'prev'")
	}
	favorite, err := w.Service.NavigateFavorites(ctx.Param("id"), direction)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, favorite)
}
