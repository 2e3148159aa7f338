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

package alarm

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/clock-app/clock-node/alarm/log"
	"github.com/clock-app/clock-node/cdll"
	"github.com/clock-app/clock-node/core"
	"github.com/clock-app/clock-node/storage"
)

const collectionName = "alarms"
const timeLayout = "15:04"

// Manager implements Alarms on a circular doubly linked list, sorted by time of day.
type Manager struct {
	mux             sync.Mutex
	list            *cdll.List[Alarm]
	storageProvider storage.Provider
	store           storage.Collection
	now             func() time.Time
}

// New creates a new alarm engine. Alarms are loaded from storage on Start.
func New(storageProvider storage.Provider) *Manager {
	return &Manager{
		list:            cdll.New[Alarm](alarmEquals),
		storageProvider: storageProvider,
		now:             time.Now,
	}
}

func alarmEquals(a, b Alarm) bool {
	return a.ID == b.ID
}

func alarmCompare(a, b Alarm) int {
	return strings.Compare(a.Time, b.Time)
}

func (m *Manager) Name() string {
	return ModuleName
}

func (m *Manager) Configure(_ core.ServerConfig) error {
	m.store = m.storageProvider.GetCollection(collectionName)
	return nil
}

// Start loads the persisted alarms into the list, in sorted order.
func (m *Manager) Start() error {
	alarms, err := storage.LoadAll[Alarm](m.store)
	if err != nil {
		return err
	}
	m.mux.Lock()
	defer m.mux.Unlock()
	for _, alarm := range alarms {
		m.list.InsertSorted(alarm, alarmCompare)
	}
	log.Logger().
		WithField(core.LogFieldCollection, collectionName).
		Debugf("Loaded %d alarms", len(alarms))
	return nil
}

func (m *Manager) Shutdown() error {
	return nil
}

func (m *Manager) Diagnostics() []core.DiagnosticResult {
	m.mux.Lock()
	defer m.mux.Unlock()
	return []core.DiagnosticResult{
		core.GenericDiagnosticResult{Title: "alarm_count", Outcome: strconv.Itoa(m.list.Len())},
		core.GenericDiagnosticResult{Title: "active_alarm_count", Outcome: strconv.Itoa(len(m.list.FindAll(Alarm.isEnabled)))},
	}
}

func (a Alarm) isEnabled() bool {
	return a.Enabled
}

func (m *Manager) Create(alarmTime string, label string, enabled bool, days []string) (Alarm, error) {
	m.mux.Lock()
	defer m.mux.Unlock()
	alarm := Alarm{
		ID:        m.nextID(),
		Time:      alarmTime,
		Label:     label,
		Enabled:   enabled,
		Days:      days,
		CreatedAt: m.now(),
	}
	m.list.InsertSorted(alarm, alarmCompare)
	log.Logger().
		WithField(core.LogFieldAlarmID, alarm.ID).
		WithField(core.LogFieldAlarmTime, alarm.Time).
		Info("Alarm created")
	return alarm, m.save()
}

func (m *Manager) List() []Alarm {
	m.mux.Lock()
	defer m.mux.Unlock()
	return m.list.All()
}

func (m *Manager) Get(id int) (Alarm, error) {
	m.mux.Lock()
	defer m.mux.Unlock()
	return m.get(id)
}

func (m *Manager) Update(id int, update Update) (Alarm, error) {
	m.mux.Lock()
	defer m.mux.Unlock()
	node := m.list.Find(byID(id))
	if node == nil {
		return Alarm{}, ErrNotFound
	}
	alarm := node.Value
	oldTime := alarm.Time
	if update.Time != nil {
		alarm.Time = *update.Time
	}
	if update.Label != nil {
		alarm.Label = *update.Label
	}
	if update.Enabled != nil {
		alarm.Enabled = *update.Enabled
	}
	if update.Days != nil {
		alarm.Days = *update.Days
	}
	if alarm.Time != oldTime {
		// changed time means a new sorted position
		m.list.Delete(node.Value)
		m.list.InsertSorted(alarm, alarmCompare)
		log.Logger().
			WithField(core.LogFieldAlarmID, id).
			Debugf("Alarm moved from %s to %s", oldTime, alarm.Time)
	} else {
		node.Value = alarm
	}
	log.Logger().
		WithField(core.LogFieldAlarmID, id).
		Info("Alarm updated")
	return alarm, m.save()
}

func (m *Manager) Delete(id int) error {
	m.mux.Lock()
	defer m.mux.Unlock()
	alarm, err := m.get(id)
	if err != nil {
		return err
	}
	m.list.Delete(alarm)
	log.Logger().
		WithField(core.LogFieldAlarmID, id).
		Info("Alarm deleted")
	return m.save()
}

func (m *Manager) Toggle(id int) (Alarm, error) {
	m.mux.Lock()
	defer m.mux.Unlock()
	node := m.list.Find(byID(id))
	if node == nil {
		return Alarm{}, ErrNotFound
	}
	node.Value.Enabled = !node.Value.Enabled
	log.Logger().
		WithField(core.LogFieldAlarmID, id).
		Infof("Alarm enabled=%t", node.Value.Enabled)
	return node.Value, m.save()
}

func (m *Manager) Next() (Alarm, bool) {
	m.mux.Lock()
	defer m.mux.Unlock()
	currentTime := m.now().Format(timeLayout)
	alarms := m.list.All()
	for _, alarm := range alarms {
		if alarm.Enabled && alarm.Time > currentTime {
			return alarm, true
		}
	}
	// nothing left today, the earliest enabled alarm rings tomorrow
	for _, alarm := range alarms {
		if alarm.Enabled {
			return alarm, true
		}
	}
	return Alarm{}, false
}

func (m *Manager) Navigate(id int, direction Direction) (Alarm, error) {
	m.mux.Lock()
	defer m.mux.Unlock()
	current, err := m.get(id)
	if err != nil {
		return Alarm{}, err
	}
	var result Alarm
	var ok bool
	switch direction {
	case DirectionNext:
		result, ok = m.list.Next(current)
	case DirectionPrev:
		result, ok = m.list.Prev(current)
	default:
		return Alarm{}, ErrInvalidDirection
	}
	if !ok {
		return Alarm{}, ErrNotFound
	}
	return result, nil
}

func (m *Manager) Active() []Alarm {
	m.mux.Lock()
	defer m.mux.Unlock()
	return m.list.FindAll(Alarm.isEnabled)
}

func (m *Manager) ByDay(day string) []Alarm {
	m.mux.Lock()
	defer m.mux.Unlock()
	return m.list.FindAll(func(a Alarm) bool {
		if len(a.Days) == 0 {
			return true
		}
		for _, curr := range a.Days {
			if curr == day {
				return true
			}
		}
		return false
	})
}

func (m *Manager) Count() int {
	m.mux.Lock()
	defer m.mux.Unlock()
	return m.list.Len()
}

func (m *Manager) CountActive() int {
	m.mux.Lock()
	defer m.mux.Unlock()
	return len(m.list.FindAll(Alarm.isEnabled))
}

// get returns the alarm with the given ID. Callers must hold the mutex.
func (m *Manager) get(id int) (Alarm, error) {
	node := m.list.Find(byID(id))
	if node == nil {
		return Alarm{}, ErrNotFound
	}
	return node.Value, nil
}

func byID(id int) func(Alarm) bool {
	return func(a Alarm) bool {
		return a.ID == id
	}
}

// nextID returns the highest alarm ID plus one. Callers must hold the mutex.
func (m *Manager) nextID() int {
	maxID := 0
	for _, alarm := range m.list.All() {
		if alarm.ID > maxID {
			maxID = alarm.ID
		}
	}
	return maxID + 1
}

// save writes the full snapshot. The in-memory list is not rolled back on
// failure, the next successful save converges.
func (m *Manager) save() error {
	if err := storage.SaveAll(m.store, m.list.All()); err != nil {
		log.Logger().
			WithError(err).
			WithField(core.LogFieldCollection, collectionName).
			Error("Unable to persist alarms")
		return err
	}
	return nil
}
