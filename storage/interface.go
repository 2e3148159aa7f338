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
)

// Provider hands out named collections to the engines that persist records.
type Provider interface {
	// GetCollection returns the collection with the given name, creating it if it does not exist.
	// It must only be called after the storage engine has been configured.
	GetCollection(name string) Collection
}

// Collection is a whole-document snapshot store for one record type.
// Every mutation of the owning engine rewrites the full snapshot.
type Collection interface {
	// ReadAll returns the persisted snapshot, or an empty slice when the
	// snapshot is absent or corrupt.
	ReadAll() ([]json.RawMessage, error)
	// WriteAll overwrites the persisted snapshot with the given records.
	WriteAll(records []json.RawMessage) error
}

// LoadAll reads the snapshot from the collection and unmarshals each record into T.
// Records that fail to unmarshal are skipped.
func LoadAll[T any](collection Collection) ([]T, error) {
	raw, err := collection.ReadAll()
	if err != nil {
		return nil, err
	}
	result := make([]T, 0, len(raw))
	for _, data := range raw {
		var record T
		if err := json.Unmarshal(data, &record); err != nil {
			continue
		}
		result = append(result, record)
	}
	return result, nil
}

// SaveAll marshals the given records and overwrites the collection's snapshot with them.
func SaveAll[T any](collection Collection, records []T) error {
	raw := make([]json.RawMessage, len(records))
	for i, record := range records {
		data, err := json.Marshal(record)
		if err != nil {
			return err
		}
		raw[i] = data
	}
	return collection.WriteAll(raw)
}

// backend stores raw snapshot documents for collections.
type backend interface {
	read(collection string) ([]byte, error)
	write(collection string, data []byte) error
	close() error
}
