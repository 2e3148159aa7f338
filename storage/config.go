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

package storage

import "github.com/spf13/pflag"

const (
	// FSBackend stores each collection as a JSON file in the data directory.
	FSBackend = "fs"
	// BBoltBackend stores all collections in a single BBolt database file.
	BBoltBackend = "bbolt"
)

// Config specifies the config for the storage engine.
type Config struct {
	// Backend selects where snapshots are stored: 'fs' or 'bbolt'.
	Backend string `koanf:"backend"`
}

// DefaultConfig returns the default storage configuration.
func DefaultConfig() Config {
	return Config{Backend: FSBackend}
}

// FlagSet returns the configuration flags for the storage engine.
func FlagSet() *pflag.FlagSet {
	defs := DefaultConfig()
	flagSet := pflag.NewFlagSet("storage", pflag.ContinueOnError)
	flagSet.String("storage.backend", defs.Backend, "Snapshot storage backend ('fs' or 'bbolt').")
	return flagSet
}
