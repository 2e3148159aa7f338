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
	"os"
	"path"
	"time"

	bbolt "go.etcd.io/bbolt"
)

const bboltFileName = "snapshots.db"
const bboltFileMode = 0640
const bboltSnapshotKey = "snapshot"

// bboltBackend stores all collection snapshots in a single BBolt database,
// one bucket per collection.
type bboltBackend struct {
	db *bbolt.DB
}

func newBBoltBackend(datadir string) (backend, error) {
	if err := os.MkdirAll(datadir, os.ModePerm); err != nil {
		return nil, err
	}
	db, err := bbolt.Open(path.Join(datadir, bboltFileName), bboltFileMode, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, err
	}
	return &bboltBackend{db: db}, nil
}

func (b *bboltBackend) read(collection string) ([]byte, error) {
	var data []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(collection))
		if bucket == nil {
			return nil
		}
		value := bucket.Get([]byte(bboltSnapshotKey))
		if value != nil {
			data = make([]byte, len(value))
			copy(data, value)
		}
		return nil
	})
	return data, err
}

func (b *bboltBackend) write(collection string, data []byte) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(collection))
		if err != nil {
			return err
		}
		return bucket.Put([]byte(bboltSnapshotKey), data)
	})
}

func (b *bboltBackend) close() error {
	return b.db.Close()
}
