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
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/clock-app/clock-node/cdll"
	"github.com/clock-app/clock-node/core"
	"github.com/clock-app/clock-node/stopwatch/log"
	"github.com/clock-app/clock-node/storage"
)

const collectionName = "laps"

// Recorder implements Laps on a circular doubly linked list, most recent lap first.
type Recorder struct {
	mux             sync.Mutex
	list            *cdll.List[Lap]
	storageProvider storage.Provider
	store           storage.Collection
	now             func() time.Time
}

// New creates a new stopwatch engine. Laps are loaded from storage on Start.
func New(storageProvider storage.Provider) *Recorder {
	return &Recorder{
		list:            cdll.New[Lap](lapEquals),
		storageProvider: storageProvider,
		now:             time.Now,
	}
}

func lapEquals(a, b Lap) bool {
	return a.ID == b.ID
}

func (r *Recorder) Name() string {
	return ModuleName
}

func (r *Recorder) Configure(_ core.ServerConfig) error {
	r.store = r.storageProvider.GetCollection(collectionName)
	return nil
}

// Start loads the persisted laps into the list, preserving their stored order.
func (r *Recorder) Start() error {
	laps, err := storage.LoadAll[Lap](r.store)
	if err != nil {
		return err
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	for _, lap := range laps {
		r.list.PushBack(lap)
	}
	log.Logger().
		WithField(core.LogFieldCollection, collectionName).
		Debugf("Loaded %d laps", len(laps))
	return nil
}

func (r *Recorder) Shutdown() error {
	return nil
}

func (r *Recorder) Diagnostics() []core.DiagnosticResult {
	return []core.DiagnosticResult{
		core.GenericDiagnosticResult{Title: "lap_count", Outcome: strconv.Itoa(r.Count())},
	}
}

func (r *Recorder) Add(lapTime float64, totalTime float64) (Lap, error) {
	if !validTime(lapTime) || !validTime(totalTime) {
		return Lap{}, ErrInvalidTime
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	lap := Lap{
		ID:        r.nextID(),
		LapNumber: r.nextLapNumber(),
		LapTime:   lapTime,
		TotalTime: totalTime,
		Timestamp: r.now(),
	}
	r.list.PushFront(lap)
	log.Logger().
		WithField(core.LogFieldLapID, lap.ID).
		WithField(core.LogFieldLapNumber, lap.LapNumber).
		Info("Lap recorded")
	return lap, r.save()
}

func (r *Recorder) List() []Lap {
	r.mux.Lock()
	defer r.mux.Unlock()
	return r.list.All()
}

func (r *Recorder) Get(id int) (Lap, error) {
	r.mux.Lock()
	defer r.mux.Unlock()
	node := r.list.Find(func(l Lap) bool { return l.ID == id })
	if node == nil {
		return Lap{}, ErrNotFound
	}
	return node.Value, nil
}

func (r *Recorder) GetByNumber(number int) (Lap, error) {
	r.mux.Lock()
	defer r.mux.Unlock()
	return r.getByNumber(number)
}

func (r *Recorder) Fastest() (Lap, bool) {
	r.mux.Lock()
	defer r.mux.Unlock()
	return r.extreme(func(candidate, best Lap) bool {
		return candidate.LapTime < best.LapTime
	})
}

func (r *Recorder) Slowest() (Lap, bool) {
	r.mux.Lock()
	defer r.mux.Unlock()
	return r.extreme(func(candidate, best Lap) bool {
		return candidate.LapTime > best.LapTime
	})
}

func (r *Recorder) Statistics() Statistics {
	r.mux.Lock()
	defer r.mux.Unlock()
	laps := r.list.All()
	if len(laps) == 0 {
		return Statistics{}
	}
	stats := Statistics{
		TotalLaps: len(laps),
		// the head lap is the most recent, its total time is the elapsed time
		TotalElapsedTime: laps[0].TotalTime,
	}
	total := 0.0
	for _, lap := range laps {
		total += lap.LapTime
	}
	stats.AverageLapTime = roundTime(total / float64(len(laps)))
	if fastest, ok := r.extreme(func(candidate, best Lap) bool { return candidate.LapTime < best.LapTime }); ok {
		stats.FastestLap = &fastest
	}
	if slowest, ok := r.extreme(func(candidate, best Lap) bool { return candidate.LapTime > best.LapTime }); ok {
		stats.SlowestLap = &slowest
	}
	return stats
}

func (r *Recorder) Navigate(number int, direction Direction) (Lap, error) {
	r.mux.Lock()
	defer r.mux.Unlock()
	current, err := r.getByNumber(number)
	if err != nil {
		return Lap{}, err
	}
	var result Lap
	var ok bool
	switch direction {
	case DirectionNext:
		result, ok = r.list.Next(current)
	case DirectionPrev:
		result, ok = r.list.Prev(current)
	default:
		return Lap{}, ErrInvalidDirection
	}
	if !ok {
		return Lap{}, ErrNotFound
	}
	return result, nil
}

func (r *Recorder) First() (Lap, bool) {
	r.mux.Lock()
	defer r.mux.Unlock()
	head := r.list.Head()
	if head == nil {
		return Lap{}, false
	}
	return head.Value, true
}

func (r *Recorder) Last() (Lap, bool) {
	r.mux.Lock()
	defer r.mux.Unlock()
	head := r.list.Head()
	if head == nil {
		return Lap{}, false
	}
	return head.Prev().Value, true
}

func (r *Recorder) Delete(id int) error {
	r.mux.Lock()
	defer r.mux.Unlock()
	node := r.list.Find(func(l Lap) bool { return l.ID == id })
	if node == nil {
		return ErrNotFound
	}
	r.list.Delete(node.Value)
	log.Logger().
		WithField(core.LogFieldLapID, id).
		Info("Lap deleted")
	return r.save()
}

func (r *Recorder) Clear() error {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.list.Clear()
	log.Logger().Info("All laps cleared")
	return r.save()
}

func (r *Recorder) Count() int {
	r.mux.Lock()
	defer r.mux.Unlock()
	return r.list.Len()
}

func (r *Recorder) FasterThan(threshold float64) []Lap {
	r.mux.Lock()
	defer r.mux.Unlock()
	return r.list.FindAll(func(l Lap) bool { return l.LapTime < threshold })
}

func (r *Recorder) SlowerThan(threshold float64) []Lap {
	r.mux.Lock()
	defer r.mux.Unlock()
	return r.list.FindAll(func(l Lap) bool { return l.LapTime > threshold })
}

// getByNumber returns the lap with the given lap number. Callers must hold the mutex.
func (r *Recorder) getByNumber(number int) (Lap, error) {
	node := r.list.Find(func(l Lap) bool { return l.LapNumber == number })
	if node == nil {
		return Lap{}, ErrNotFound
	}
	return node.Value, nil
}

// extreme returns the lap for which better holds against all others. Callers must hold the mutex.
func (r *Recorder) extreme(better func(candidate, best Lap) bool) (Lap, bool) {
	laps := r.list.All()
	if len(laps) == 0 {
		return Lap{}, false
	}
	best := laps[0]
	for _, lap := range laps[1:] {
		if better(lap, best) {
			best = lap
		}
	}
	return best, true
}

func (r *Recorder) nextID() int {
	maxID := 0
	for _, lap := range r.list.All() {
		if lap.ID > maxID {
			maxID = lap.ID
		}
	}
	return maxID + 1
}

func (r *Recorder) nextLapNumber() int {
	maxNumber := 0
	for _, lap := range r.list.All() {
		if lap.LapNumber > maxNumber {
			maxNumber = lap.LapNumber
		}
	}
	return maxNumber + 1
}

func (r *Recorder) save() error {
	if err := storage.SaveAll(r.store, r.list.All()); err != nil {
		log.Logger().
			WithError(err).
			WithField(core.LogFieldCollection, collectionName).
			Error("Unable to persist laps")
		return err
	}
	return nil
}

func validTime(value float64) bool {
	return value > 0 && !math.IsNaN(value) && !math.IsInf(value, 0)
}

func roundTime(value float64) float64 {
	return math.Round(value*100) / 100
}
