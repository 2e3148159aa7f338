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

package stopwatch

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clock-app/clock-node/core"
	"github.com/clock-app/clock-node/storage"
)

func testProvider(t *testing.T) storage.Provider {
	t.Helper()
	engine := storage.New()
	require.NoError(t, engine.Configure(core.ServerConfig{Datadir: t.TempDir()}))
	return engine
}

func testRecorder(t *testing.T, provider storage.Provider) *Recorder {
	t.Helper()
	recorder := New(provider)
	require.NoError(t, recorder.Configure(core.ServerConfig{}))
	require.NoError(t, recorder.Start())
	return recorder
}

func numbers(laps []Lap) []int {
	result := make([]int, len(laps))
	for i, lap := range laps {
		result[i] = lap.LapNumber
	}
	return result
}

func TestRecorder_Add(t *testing.T) {
	recorder := testRecorder(t, testProvider(t))

	first, err := recorder.Add(12.5, 12.5)
	require.NoError(t, err)
	second, err := recorder.Add(10.0, 22.5)
	require.NoError(t, err)
	third, err := recorder.Add(15.0, 37.5)
	require.NoError(t, err)

	t.Run("lap numbers increase in recording order", func(t *testing.T) {
		assert.Equal(t, 1, first.LapNumber)
		assert.Equal(t, 2, second.LapNumber)
		assert.Equal(t, 3, third.LapNumber)
	})
	t.Run("most recent lap is listed first", func(t *testing.T) {
		assert.Equal(t, []int{3, 2, 1}, numbers(recorder.List()))
	})
	t.Run("non-finite or non-positive times are rejected", func(t *testing.T) {
		for _, value := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 0, -1} {
			_, err := recorder.Add(value, 5)
			assert.ErrorIs(t, err, ErrInvalidTime)
			_, err = recorder.Add(5, value)
			assert.ErrorIs(t, err, ErrInvalidTime)
		}
		assert.Len(t, recorder.List(), 3)
	})
}

func TestRecorder_GetByNumber(t *testing.T) {
	recorder := testRecorder(t, testProvider(t))
	_, _ = recorder.Add(12.5, 12.5)
	_, _ = recorder.Add(10.0, 22.5)

	lap, err := recorder.GetByNumber(2)
	require.NoError(t, err)
	assert.Equal(t, 10.0, lap.LapTime)

	_, err = recorder.GetByNumber(9000)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecorder_FastestSlowest(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		recorder := testRecorder(t, testProvider(t))
		_, _ = recorder.Add(12.5, 12.5)
		_, _ = recorder.Add(10.0, 22.5)
		_, _ = recorder.Add(15.0, 37.5)

		fastest, ok := recorder.Fastest()
		require.True(t, ok)
		assert.Equal(t, 10.0, fastest.LapTime)

		slowest, ok := recorder.Slowest()
		require.True(t, ok)
		assert.Equal(t, 15.0, slowest.LapTime)
	})
	t.Run("empty list", func(t *testing.T) {
		recorder := testRecorder(t, testProvider(t))

		_, ok := recorder.Fastest()
		assert.False(t, ok)
		_, ok = recorder.Slowest()
		assert.False(t, ok)
	})
}

func TestRecorder_Statistics(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		recorder := testRecorder(t, testProvider(t))
		_, _ = recorder.Add(12.5, 12.5)
		_, _ = recorder.Add(10.0, 22.5)
		_, _ = recorder.Add(15.0, 37.5)

		stats := recorder.Statistics()

		assert.Equal(t, 3, stats.TotalLaps)
		assert.Equal(t, 12.5, stats.AverageLapTime)
		assert.Equal(t, 37.5, stats.TotalElapsedTime)
		require.NotNil(t, stats.FastestLap)
		assert.Equal(t, 10.0, stats.FastestLap.LapTime)
		require.NotNil(t, stats.SlowestLap)
		assert.Equal(t, 15.0, stats.SlowestLap.LapTime)
	})
	t.Run("empty list", func(t *testing.T) {
		recorder := testRecorder(t, testProvider(t))

		stats := recorder.Statistics()

		assert.Equal(t, Statistics{}, stats)
	})
	t.Run("average is rounded to centiseconds", func(t *testing.T) {
		recorder := testRecorder(t, testProvider(t))
		_, _ = recorder.Add(10.0, 10.0)
		_, _ = recorder.Add(10.0, 20.0)
		_, _ = recorder.Add(10.1, 30.1)

		assert.Equal(t, 10.03, recorder.Statistics().AverageLapTime)
	})
}

func TestRecorder_Navigate(t *testing.T) {
	recorder := testRecorder(t, testProvider(t))
	_, _ = recorder.Add(12.5, 12.5)  // lap 1, tail
	_, _ = recorder.Add(10.0, 22.5)  // lap 2
	_, _ = recorder.Add(15.0, 37.5)  // lap 3, head

	t.Run("next from the head is the previous lap number", func(t *testing.T) {
		lap, err := recorder.Navigate(3, DirectionNext)
		require.NoError(t, err)
		assert.Equal(t, 2, lap.LapNumber)
	})
	t.Run("next wraps from the oldest to the newest lap", func(t *testing.T) {
		lap, err := recorder.Navigate(1, DirectionNext)
		require.NoError(t, err)
		assert.Equal(t, 3, lap.LapNumber)
	})
	t.Run("prev wraps from the newest to the oldest lap", func(t *testing.T) {
		lap, err := recorder.Navigate(3, DirectionPrev)
		require.NoError(t, err)
		assert.Equal(t, 1, lap.LapNumber)
	})
	t.Run("unknown lap number", func(t *testing.T) {
		_, err := recorder.Navigate(9000, DirectionNext)
		assert.ErrorIs(t, err, ErrNotFound)
	})
	t.Run("invalid direction", func(t *testing.T) {
		_, err := recorder.Navigate(1, "backwards")
		assert.ErrorIs(t, err, ErrInvalidDirection)
	})
}

func TestRecorder_FirstLast(t *testing.T) {
	recorder := testRecorder(t, testProvider(t))

	t.Run("empty list", func(t *testing.T) {
		_, ok := recorder.First()
		assert.False(t, ok)
		_, ok = recorder.Last()
		assert.False(t, ok)
	})
	t.Run("ok", func(t *testing.T) {
		_, _ = recorder.Add(12.5, 12.5)
		_, _ = recorder.Add(10.0, 22.5)

		first, ok := recorder.First()
		require.True(t, ok)
		assert.Equal(t, 2, first.LapNumber)

		last, ok := recorder.Last()
		require.True(t, ok)
		assert.Equal(t, 1, last.LapNumber)
	})
}

func TestRecorder_Delete(t *testing.T) {
	recorder := testRecorder(t, testProvider(t))
	first, _ := recorder.Add(12.5, 12.5)
	_, _ = recorder.Add(10.0, 22.5)

	require.NoError(t, recorder.Delete(first.ID))
	assert.Equal(t, 1, recorder.Count())
	assert.ErrorIs(t, recorder.Delete(first.ID), ErrNotFound)
}

func TestRecorder_Clear(t *testing.T) {
	recorder := testRecorder(t, testProvider(t))
	_, _ = recorder.Add(12.5, 12.5)
	_, _ = recorder.Add(10.0, 22.5)

	require.NoError(t, recorder.Clear())

	assert.Equal(t, 0, recorder.Count())
	assert.Empty(t, recorder.List())
}

func TestRecorder_Filters(t *testing.T) {
	recorder := testRecorder(t, testProvider(t))
	_, _ = recorder.Add(12.5, 12.5)
	_, _ = recorder.Add(10.0, 22.5)
	_, _ = recorder.Add(15.0, 37.5)

	assert.Equal(t, []int{2}, numbers(recorder.FasterThan(12.0)))
	assert.Equal(t, []int{3, 1}, numbers(recorder.SlowerThan(12.0)))
	assert.Empty(t, recorder.FasterThan(10.0))
}

func TestRecorder_Persistence(t *testing.T) {
	provider := testProvider(t)
	recorder := testRecorder(t, provider)
	_, _ = recorder.Add(12.5, 12.5)
	_, _ = recorder.Add(10.0, 22.5)

	// a fresh recorder on the same storage sees the same laps in the same order
	restored := testRecorder(t, provider)

	assert.Equal(t, []int{2, 1}, numbers(restored.List()))
	next, err := restored.Add(9.0, 31.5)
	require.NoError(t, err)
	assert.Equal(t, 3, next.LapNumber)
}

// failingStore is a storage.Provider whose collections reject every write.
type failingStore struct{}

func (f failingStore) GetCollection(string) storage.Collection { return f }
func (failingStore) ReadAll() ([]json.RawMessage, error)       { return nil, nil }
func (failingStore) WriteAll([]json.RawMessage) error          { return errors.New("disk full") }

func TestRecorder_SaveFailure(t *testing.T) {
	recorder := testRecorder(t, failingStore{})

	created, err := recorder.Add(12.5, 12.5)

	// the error surfaces, but the lap is kept in memory
	assert.EqualError(t, err, "disk full")
	require.Len(t, recorder.List(), 1)
	assert.Equal(t, created.ID, recorder.List()[0].ID)
}
