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
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/clock-app/clock-node/timezone/log"
)

// curatedZones is the set of IANA zone names turned into catalog entries when
// the upstream API lists them.
var curatedZones = []string{
	"America/New_York", "America/Los_Angeles", "America/Chicago",
	"America/Toronto", "America/Mexico_City", "America/Bogota",
	"America/Lima", "America/Santiago", "America/Buenos_Aires",
	"America/Sao_Paulo",
	"Europe/London", "Europe/Paris", "Europe/Berlin",
	"Europe/Madrid", "Europe/Rome", "Europe/Moscow",
	"Europe/Amsterdam", "Europe/Brussels", "Europe/Vienna",
	"Asia/Tokyo", "Asia/Shanghai", "Asia/Seoul",
	"Asia/Kolkata", "Asia/Dubai", "Asia/Bangkok",
	"Asia/Singapore", "Asia/Hong_Kong",
	"Australia/Sydney", "Australia/Melbourne",
	"Pacific/Auckland", "Pacific/Fiji",
	"Africa/Cairo", "Africa/Johannesburg", "Africa/Lagos",
	"Africa/Nairobi", "Africa/Casablanca",
}

var countryByZone = map[string]string{
	"America/New_York":     "United States",
	"America/Los_Angeles":  "United States",
	"America/Chicago":      "United States",
	"America/Toronto":      "Canada",
	"America/Mexico_City":  "Mexico",
	"America/Bogota":       "Colombia",
	"America/Lima":         "Peru",
	"America/Santiago":     "Chile",
	"America/Buenos_Aires": "Argentina",
	"America/Sao_Paulo":    "Brazil",
	"Europe/London":        "United Kingdom",
	"Europe/Paris":         "France",
	"Europe/Berlin":        "Germany",
	"Europe/Madrid":        "Spain",
	"Europe/Rome":          "Italy",
	"Europe/Moscow":        "Russia",
	"Europe/Amsterdam":     "Netherlands",
	"Europe/Brussels":      "Belgium",
	"Europe/Vienna":        "Austria",
	"Asia/Tokyo":           "Japan",
	"Asia/Shanghai":        "China",
	"Asia/Seoul":           "South Korea",
	"Asia/Kolkata":         "India",
	"Asia/Dubai":           "United Arab Emirates",
	"Asia/Bangkok":         "Thailand",
	"Asia/Singapore":       "Singapore",
	"Asia/Hong_Kong":       "Hong Kong",
	"Australia/Sydney":     "Australia",
	"Australia/Melbourne":  "Australia",
	"Pacific/Auckland":     "New Zealand",
	"Pacific/Fiji":         "Fiji",
	"Africa/Cairo":         "Egypt",
	"Africa/Johannesburg":  "South Africa",
	"Africa/Lagos":         "Nigeria",
	"Africa/Nairobi":       "Kenya",
	"Africa/Casablanca":    "Morocco",
}

// offsetByZone holds standard time UTC offsets per curated zone.
var offsetByZone = map[string]string{
	"America/New_York":     "UTC-5",
	"America/Los_Angeles":  "UTC-8",
	"America/Chicago":      "UTC-6",
	"America/Toronto":      "UTC-5",
	"America/Mexico_City":  "UTC-6",
	"America/Bogota":       "UTC-5",
	"America/Lima":         "UTC-5",
	"America/Santiago":     "UTC-3",
	"America/Buenos_Aires": "UTC-3",
	"America/Sao_Paulo":    "UTC-3",
	"Europe/London":        "UTC+0",
	"Europe/Paris":         "UTC+1",
	"Europe/Berlin":        "UTC+1",
	"Europe/Madrid":        "UTC+1",
	"Europe/Rome":          "UTC+1",
	"Europe/Moscow":        "UTC+3",
	"Europe/Amsterdam":     "UTC+1",
	"Europe/Brussels":      "UTC+1",
	"Europe/Vienna":        "UTC+1",
	"Asia/Tokyo":           "UTC+9",
	"Asia/Shanghai":        "UTC+8",
	"Asia/Seoul":           "UTC+9",
	"Asia/Kolkata":         "UTC+5:30",
	"Asia/Dubai":           "UTC+4",
	"Asia/Bangkok":         "UTC+7",
	"Asia/Singapore":       "UTC+8",
	"Asia/Hong_Kong":       "UTC+8",
	"Australia/Sydney":     "UTC+10",
	"Australia/Melbourne":  "UTC+10",
	"Pacific/Auckland":     "UTC+12",
	"Pacific/Fiji":         "UTC+12",
	"Africa/Cairo":         "UTC+2",
	"Africa/Johannesburg":  "UTC+2",
	"Africa/Lagos":         "UTC+1",
	"Africa/Nairobi":       "UTC+3",
	"Africa/Casablanca":    "UTC+1",
}

var fallbackZones = []Timezone{
	{Country: "Colombia", City: "Bogota", Offset: "UTC-5"},
	{Country: "United States", City: "New York", Offset: "UTC-5"},
	{Country: "United States", City: "Los Angeles", Offset: "UTC-8"},
	{Country: "United States", City: "Chicago", Offset: "UTC-6"},
	{Country: "Canada", City: "Toronto", Offset: "UTC-5"},
	{Country: "Mexico", City: "Mexico City", Offset: "UTC-6"},
	{Country: "Brazil", City: "Sao Paulo", Offset: "UTC-3"},
	{Country: "Argentina", City: "Buenos Aires", Offset: "UTC-3"},
	{Country: "Chile", City: "Santiago", Offset: "UTC-3"},
	{Country: "Peru", City: "Lima", Offset: "UTC-5"},
	{Country: "United Kingdom", City: "London", Offset: "UTC+0"},
	{Country: "France", City: "Paris", Offset: "UTC+1"},
	{Country: "Germany", City: "Berlin", Offset: "UTC+1"},
	{Country: "Spain", City: "Madrid", Offset: "UTC+1"},
	{Country: "Italy", City: "Rome", Offset: "UTC+1"},
	{Country: "Russia", City: "Moscow", Offset: "UTC+3"},
	{Country: "Netherlands", City: "Amsterdam", Offset: "UTC+1"},
	{Country: "Japan", City: "Tokyo", Offset: "UTC+9"},
	{Country: "China", City: "Beijing", Offset: "UTC+8"},
	{Country: "India", City: "New Delhi", Offset: "UTC+5:30"},
	{Country: "United Arab Emirates", City: "Dubai", Offset: "UTC+4"},
	{Country: "Australia", City: "Sydney", Offset: "UTC+10"},
	{Country: "New Zealand", City: "Auckland", Offset: "UTC+12"},
	{Country: "Egypt", City: "Cairo", Offset: "UTC+2"},
	{Country: "South Africa", City: "Johannesburg", Offset: "UTC+2"},
}

// fallbackCatalog returns the built-in catalog used when the upstream API is unreachable.
func fallbackCatalog() []Timezone {
	result := make([]Timezone, len(fallbackZones))
	for i, tz := range fallbackZones {
		tz.ID = GenerateID(tz.Country, tz.City)
		result[i] = tz
	}
	return result
}

// catalogClient fetches the timezone catalog from the WorldTime API.
type catalogClient struct {
	client     *http.Client
	apiAddress string
}

func newCatalogClient(config Config) *catalogClient {
	return &catalogClient{
		client:     &http.Client{Timeout: config.APITimeout},
		apiAddress: config.APIAddress,
	}
}

// fetch lists the zone names known upstream and turns the curated subset into
// catalog entries.
func (c *catalogClient) fetch(ctx context.Context) ([]Timezone, error) {
	var names []string
	err := retry.Do(func() error {
		request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiAddress+"/timezone", nil)
		if err != nil {
			return retry.Unrecoverable(err)
		}
		response, err := c.client.Do(request)
		if err != nil {
			return err
		}
		defer response.Body.Close()
		if response.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status code from WorldTime API: %d", response.StatusCode)
		}
		return json.NewDecoder(response.Body).Decode(&names)
	}, retry.Attempts(3), retry.Delay(time.Second), retry.Context(ctx), retry.LastErrorOnly(true))
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(names))
	for _, name := range names {
		known[name] = true
	}
	var result []Timezone
	for _, zone := range curatedZones {
		if !known[zone] {
			continue
		}
		city := strings.ReplaceAll(zone[strings.LastIndex(zone, "/")+1:], "_", " ")
		country := countryByZone[zone]
		result = append(result, Timezone{
			ID:      GenerateID(country, city),
			Country: country,
			City:    city,
			Offset:  offsetByZone[zone],
		})
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("WorldTime API returned no usable zones")
	}
	log.Logger().Debugf("Fetched %d timezones from WorldTime API", len(result))
	return result, nil
}
