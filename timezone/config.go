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
	"time"

	"github.com/spf13/pflag"
)

// Config holds the config for the timezone engine.
type Config struct {
	// APIAddress is the base URL of the WorldTime API.
	APIAddress string `koanf:"apiaddress"`
	// APITimeout is the timeout for a single WorldTime API call.
	APITimeout time.Duration `koanf:"apitimeout"`
	// CacheExpiry is how long a fetched catalog stays valid before it is refreshed.
	CacheExpiry time.Duration `koanf:"cacheexpiry"`
}

// DefaultConfig returns the default timezone engine configuration.
func DefaultConfig() Config {
	return Config{
		APIAddress:  "http://worldtimeapi.org/api",
		APITimeout:  5 * time.Second,
		CacheExpiry: 24 * time.Hour,
	}
}

// FlagSet returns the configuration flags for the timezone engine.
func FlagSet() *pflag.FlagSet {
	defs := DefaultConfig()
	flagSet := pflag.NewFlagSet("timezone", pflag.ContinueOnError)
	flagSet.String("timezone.apiaddress", defs.APIAddress, "Base URL of the WorldTime API used to fetch the timezone catalog.")
	flagSet.Duration("timezone.apitimeout", defs.APITimeout, "Timeout for a single WorldTime API call.")
	flagSet.Duration("timezone.cacheexpiry", defs.CacheExpiry, "Time before the fetched timezone catalog is refreshed.")
	return flagSet
}
