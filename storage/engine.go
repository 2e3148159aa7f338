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

import (
	"encoding/json"
	"fmt"

	"github.com/clock-app/clock-node/core"
	"github.com/clock-app/clock-node/storage/log"
)

// ModuleName is the name of this module.
const ModuleName = "Storage"

// New creates a new storage engine.
func New() *Storage {
	return &Storage{config: DefaultConfig()}
}

// Storage is the engine that provides snapshot persistence to the other engines.
type Storage struct {
	config  Config
	backend backend
}

func (e *Storage) Name() string {
	return ModuleName
}

func (e *Storage) Config() interface{} {
	return &e.config
}

// Configure initializes the configured backend.
func (e *Storage) Configure(serverConfig core.ServerConfig) error {
	var err error
	switch e.config.Backend {
	case FSBackend:
		e.backend, err = newFSBackend(serverConfig.Datadir)
	case BBoltBackend:
		e.backend, err = newBBoltBackend(serverConfig.Datadir)
	default:
		return fmt.Errorf("unsupported storage backend: '%s'", e.config.Backend)
	}
	if err != nil {
		return err
	}
	log.Logger().
		WithField("backend", e.config.Backend).
		Debug("Storage initialized")
	return nil
}

func (e *Storage) Start() error {
	return nil
}

func (e *Storage) Shutdown() error {
	if e.backend == nil {
		return nil
	}
	return e.backend.close()
}

// GetCollection returns the collection with the given name on the configured backend.
func (e *Storage) GetCollection(name string) Collection {
	return &collection{name: name, backend: e.backend}
}

func (e *Storage) Diagnostics() []core.DiagnosticResult {
	return []core.DiagnosticResult{
		core.GenericDiagnosticResult{Title: "backend", Outcome: e.config.Backend},
	}
}

type collection struct {
	name    string
	backend backend
}

func (c *collection) ReadAll() ([]json.RawMessage, error) {
	data, err := c.backend.read(c.name)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []json.RawMessage{}, nil
	}
	var result []json.RawMessage
	if err := json.Unmarshal(data, &result); err != nil {
		// a corrupt snapshot reads as empty, the next write repairs it
		log.Logger().
			WithError(err).
			WithField(core.LogFieldCollection, c.name).
			Warn("Snapshot is corrupt, treating it as empty")
		return []json.RawMessage{}, nil
	}
	return result, nil
}

func (c *collection) WriteAll(records []json.RawMessage) error {
	if records == nil {
		records = []json.RawMessage{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	if err := c.backend.write(c.name, data); err != nil {
		return fmt.Errorf("unable to write snapshot (collection=%s): %w", c.name, err)
	}
	log.Logger().
		WithField(core.LogFieldCollection, c.name).
		Debugf("Wrote snapshot with %d records", len(records))
	return nil
}
