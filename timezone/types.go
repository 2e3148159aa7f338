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
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// offsetPattern accepts UTC offsets like UTC+5, UTC-8 and UTC+5:30.
var offsetPattern = regexp.MustCompile(`^UTC([+-])(1[0-4]|[0-9])(?::([03]0|45))?$`)

// Timezone is a catalog entry.
type Timezone struct {
	// ID is the normalized "country-city" identifier.
	ID      string `json:"id"`
	Country string `json:"country"`
	City    string `json:"city"`
	// Offset is the UTC offset, e.g. "UTC-5" or "UTC+5:30".
	Offset     string `json:"offset"`
	IsFavorite bool   `json:"is_favorite"`
}

// Favorite is a timezone the user pinned, with its position in the list.
type Favorite struct {
	ID      string `json:"id"`
	Country string `json:"country"`
	City    string `json:"city"`
	Offset  string `json:"offset"`
	// Order is the zero-based position in the favorites list.
	Order int `json:"order"`
}

// CurrentTime is the wall clock time in a timezone, derived from its UTC offset.
type CurrentTime struct {
	TimezoneID  string `json:"timezone_id"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Offset      string `json:"offset"`
	CurrentTime string `json:"current_time"`
	CurrentDate string `json:"current_date"`
}

// Stats summarizes the catalog and the favorites.
type Stats struct {
	TotalAvailable int        `json:"total_available"`
	TotalFavorites int        `json:"total_favorites"`
	TotalCountries int        `json:"total_countries"`
	LastAPIFetch   *time.Time `json:"last_api_fetch"`
	CacheValid     bool       `json:"cache_valid"`
}

var idReplacer = strings.NewReplacer(
	" ", "-",
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
	"ñ", "n", "ü", "u", "ä", "a", "ö", "o", "ë", "e",
)

// GenerateID returns the normalized "country-city" identifier for a timezone.
func GenerateID(country string, city string) string {
	normalize := func(value string) string {
		return idReplacer.Replace(strings.ToLower(strings.TrimSpace(value)))
	}
	return fmt.Sprintf("%s-%s", normalize(country), normalize(city))
}

// ValidOffset reports whether the given string is a well-formed UTC offset.
func ValidOffset(offset string) bool {
	return offsetPattern.MatchString(offset)
}

// parseOffset converts a UTC offset string into a duration from UTC.
func parseOffset(offset string) (time.Duration, error) {
	match := offsetPattern.FindStringSubmatch(offset)
	if match == nil {
		return 0, fmt.Errorf("malformed UTC offset: '%s'", offset)
	}
	hours, _ := strconv.Atoi(match[2])
	minutes := 0
	if match[3] != "" {
		minutes, _ = strconv.Atoi(match[3])
	}
	result := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
	if match[1] == "-" {
		result = -result
	}
	return result, nil
}
