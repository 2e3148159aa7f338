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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

// fsBackend stores each collection snapshot as <datadir>/<collection>.json.
type fsBackend struct {
	datadir string
}

func newFSBackend(datadir string) (backend, error) {
	if err := os.MkdirAll(datadir, os.ModePerm); err != nil {
		return nil, err
	}
	return &fsBackend{datadir: datadir}, nil
}

func (b *fsBackend) read(collection string) ([]byte, error) {
	data, err := os.ReadFile(b.filePath(collection))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

func (b *fsBackend) write(collection string, data []byte) error {
	// write-then-rename, so a crash mid-write can't leave a truncated snapshot
	target := b.filePath(collection)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("unable to replace snapshot file: %w", err)
	}
	return nil
}

func (b *fsBackend) close() error {
	return nil
}

func (b *fsBackend) filePath(collection string) string {
	return path.Join(b.datadir, collection+".json")
}
