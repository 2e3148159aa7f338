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

package timezone

import (
	"context"
	"errors"
)

// ModuleName is the name of this module.
const ModuleName = "Timezone"

// ErrNotFound is returned when the given timezone is not a favorite.
var ErrNotFound = errors.New("timezone is not a favorite")

// ErrUnknownTimezone is returned when the given timezone is not in the catalog.
var ErrUnknownTimezone = errors.New("unknown timezone")

// ErrAlreadyFavorite is returned when adding a timezone that is already a favorite.
var ErrAlreadyFavorite = errors.New("timezone is already a favorite")

// ErrInvalidPosition is returned when reordering a favorite to a position outside the list.
var ErrInvalidPosition = errors.New("invalid position")

// ErrInvalidDirection is returned when navigating in a direction other than next or prev.
var ErrInvalidDirection = errors.New("invalid navigation direction")

// ErrCatalogUnavailable is returned when the timezone catalog could not be fetched.
var ErrCatalogUnavailable = errors.New("timezone catalog unavailable")

// Direction indicates which way to walk the circular favorites list.
type Direction string

const (
	DirectionNext Direction = "next"
	DirectionPrev Direction = "prev"
)

// Timezones is the interface for the timezone catalog and the user's favorites,
// kept in user-chosen order.
type Timezones interface {
	// Available returns the catalog of known timezones, refreshing it from the
	// upstream API when forced or when the cache expired.
	Available(ctx context.Context, forceRefresh bool) []Timezone
	// Search returns the catalog entries whose country, city or ID contain the query.
	Search(query string) []Timezone
	// Get returns the catalog entry with the given ID, or ErrUnknownTimezone.
	Get(id string) (Timezone, error)
	// ByCountry returns all catalog entries for the given country.
	ByCountry(country string) []Timezone
	// Countries returns the sorted set of countries in the catalog.
	Countries() []string
	// Refresh fetches the catalog from the upstream API, or returns ErrCatalogUnavailable.
	Refresh(ctx context.Context) error
	// CurrentTime computes the wall clock time in the given timezone from its UTC offset.
	CurrentTime(id string) (CurrentTime, error)
	// Stats summarizes the catalog and the favorites.
	Stats() Stats

	// Favorites returns the favorite timezones in user order.
	Favorites() []Favorite
	// AddFavorite appends the timezone with the given catalog ID to the favorites.
	AddFavorite(id string) (Favorite, error)
	// RemoveFavorite removes a favorite and renumbers the remaining ones.
	RemoveFavorite(id string) error
	// ReorderFavorite moves a favorite to the given zero-based position.
	ReorderFavorite(id string, position int) error
	// IsFavorite reports whether the timezone with the given ID is a favorite.
	IsFavorite(id string) bool
	// NavigateFavorites returns the favorite next to the one with the given ID, circularly.
	NavigateFavorites(id string, direction Direction) (Favorite, error)
	// CountFavorites returns the number of favorites.
	CountFavorites() int
}
