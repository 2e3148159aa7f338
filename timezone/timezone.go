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
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/clock-app/clock-node/cdll"
	"github.com/clock-app/clock-node/core"
	"github.com/clock-app/clock-node/storage"
	"github.com/clock-app/clock-node/timezone/log"
)

const collectionName = "favorite_timezones"

// Service implements Timezones. The catalog is an in-memory cache of the
// upstream API, the favorites live on a circular doubly linked list in
// user-chosen order.
type Service struct {
	mux             sync.Mutex
	config          Config
	favorites       *cdll.List[Favorite]
	catalog         []Timezone
	lastFetch       *time.Time
	client          *catalogClient
	storageProvider storage.Provider
	store           storage.Collection
	now             func() time.Time
}

// New creates a new timezone engine. Favorites are loaded from storage on Start.
func New(storageProvider storage.Provider) *Service {
	return &Service{
		config:          DefaultConfig(),
		favorites:       cdll.New[Favorite](favoriteEquals),
		storageProvider: storageProvider,
		now:             time.Now,
	}
}

func favoriteEquals(a, b Favorite) bool {
	return a.ID == b.ID
}

func (s *Service) Name() string {
	return ModuleName
}

func (s *Service) Config() interface{} {
	return &s.config
}

func (s *Service) Configure(_ core.ServerConfig) error {
	s.client = newCatalogClient(s.config)
	s.store = s.storageProvider.GetCollection(collectionName)
	return nil
}

// Start loads the persisted favorites and fills the catalog. An unreachable
// upstream API is not fatal, the built-in fallback catalog is used instead.
func (s *Service) Start() error {
	favorites, err := storage.LoadAll[Favorite](s.store)
	if err != nil {
		return err
	}
	s.mux.Lock()
	for _, favorite := range favorites {
		s.favorites.PushBack(favorite)
	}
	s.mux.Unlock()
	log.Logger().
		WithField(core.LogFieldCollection, collectionName).
		Debugf("Loaded %d favorite timezones", len(favorites))

	if err := s.Refresh(context.Background()); err != nil {
		log.Logger().
			WithError(err).
			Warn("WorldTime API unreachable, using fallback timezone catalog")
		s.mux.Lock()
		s.catalog = fallbackCatalog()
		s.mux.Unlock()
	}
	return nil
}

func (s *Service) Shutdown() error {
	return nil
}

func (s *Service) Diagnostics() []core.DiagnosticResult {
	s.mux.Lock()
	defer s.mux.Unlock()
	return []core.DiagnosticResult{
		core.GenericDiagnosticResult{Title: "available_timezones", Outcome: strconv.Itoa(len(s.catalog))},
		core.GenericDiagnosticResult{Title: "favorite_timezones", Outcome: strconv.Itoa(s.favorites.Len())},
	}
}

func (s *Service) Available(ctx context.Context, forceRefresh bool) []Timezone {
	if forceRefresh || s.cacheExpired() {
		if err := s.Refresh(ctx); err != nil {
			log.Logger().
				WithError(err).
				Warn("Unable to refresh timezone catalog, serving cached entries")
		}
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.withFavoriteMarks(s.catalog)
}

func (s *Service) Search(query string) []Timezone {
	s.mux.Lock()
	defer s.mux.Unlock()
	needle := strings.ToLower(query)
	var result []Timezone
	for _, tz := range s.catalog {
		if strings.Contains(strings.ToLower(tz.Country), needle) ||
			strings.Contains(strings.ToLower(tz.City), needle) ||
			strings.Contains(strings.ToLower(tz.ID), needle) {
			result = append(result, tz)
		}
	}
	return s.withFavoriteMarks(result)
}

func (s *Service) Get(id string) (Timezone, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.get(id)
}

func (s *Service) ByCountry(country string) []Timezone {
	s.mux.Lock()
	defer s.mux.Unlock()
	var result []Timezone
	for _, tz := range s.catalog {
		if strings.EqualFold(tz.Country, country) {
			result = append(result, tz)
		}
	}
	return s.withFavoriteMarks(result)
}

func (s *Service) Countries() []string {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.countries()
}

func (s *Service) Refresh(ctx context.Context) error {
	catalog, err := s.client.fetch(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	s.catalog = catalog
	now := s.now()
	s.lastFetch = &now
	log.Logger().Infof("Timezone catalog refreshed, %d zones available", len(catalog))
	return nil
}

func (s *Service) CurrentTime(id string) (CurrentTime, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	tz, err := s.get(id)
	if err != nil {
		return CurrentTime{}, err
	}
	offset, err := parseOffset(tz.Offset)
	if err != nil {
		return CurrentTime{}, err
	}
	local := s.now().UTC().Add(offset)
	return CurrentTime{
		TimezoneID:  tz.ID,
		Country:     tz.Country,
		City:        tz.City,
		Offset:      tz.Offset,
		CurrentTime: local.Format("15:04:05"),
		CurrentDate: local.Format("2006-01-02"),
	}, nil
}

func (s *Service) Stats() Stats {
	s.mux.Lock()
	defer s.mux.Unlock()
	return Stats{
		TotalAvailable: len(s.catalog),
		TotalFavorites: s.favorites.Len(),
		TotalCountries: len(s.countries()),
		LastAPIFetch:   s.lastFetch,
		CacheValid:     !s.cacheExpiredLocked(),
	}
}

func (s *Service) Favorites() []Favorite {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.favorites.All()
}

func (s *Service) AddFavorite(id string) (Favorite, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	tz, err := s.get(id)
	if err != nil {
		return Favorite{}, err
	}
	if s.favorites.Find(byFavoriteID(id)) != nil {
		return Favorite{}, ErrAlreadyFavorite
	}
	favorite := Favorite{
		ID:      tz.ID,
		Country: tz.Country,
		City:    tz.City,
		Offset:  tz.Offset,
		Order:   s.favorites.Len(),
	}
	s.favorites.PushBack(favorite)
	log.Logger().
		WithField(core.LogFieldTimezoneID, id).
		Info("Timezone added to favorites")
	return favorite, s.save()
}

func (s *Service) RemoveFavorite(id string) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	node := s.favorites.Find(byFavoriteID(id))
	if node == nil {
		return ErrNotFound
	}
	s.favorites.Delete(node.Value)
	s.renumber()
	log.Logger().
		WithField(core.LogFieldTimezoneID, id).
		Info("Timezone removed from favorites")
	return s.save()
}

// ReorderFavorite moves a favorite to the given position by rebuilding the list.
func (s *Service) ReorderFavorite(id string, position int) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	if position < 0 || position >= s.favorites.Len() {
		return ErrInvalidPosition
	}
	node := s.favorites.Find(byFavoriteID(id))
	if node == nil {
		return ErrNotFound
	}
	moved := node.Value
	if moved.Order == position {
		return nil
	}
	var remaining []Favorite
	for _, favorite := range s.favorites.All() {
		if favorite.ID != id {
			remaining = append(remaining, favorite)
		}
	}
	reordered := make([]Favorite, 0, len(remaining)+1)
	reordered = append(reordered, remaining[:position]...)
	reordered = append(reordered, moved)
	reordered = append(reordered, remaining[position:]...)

	s.favorites.Clear()
	for i, favorite := range reordered {
		favorite.Order = i
		s.favorites.PushBack(favorite)
	}
	log.Logger().
		WithField(core.LogFieldTimezoneID, id).
		Infof("Favorite moved to position %d", position)
	return s.save()
}

func (s *Service) IsFavorite(id string) bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.favorites.Find(byFavoriteID(id)) != nil
}

func (s *Service) NavigateFavorites(id string, direction Direction) (Favorite, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	node := s.favorites.Find(byFavoriteID(id))
	if node == nil {
		return Favorite{}, ErrNotFound
	}
	var result Favorite
	var ok bool
	switch direction {
	case DirectionNext:
		result, ok = s.favorites.Next(node.Value)
	case DirectionPrev:
		result, ok = s.favorites.Prev(node.Value)
	default:
		return Favorite{}, ErrInvalidDirection
	}
	if !ok {
		return Favorite{}, ErrNotFound
	}
	return result, nil
}

func (s *Service) CountFavorites() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.favorites.Len()
}

// get returns the catalog entry with the given ID. Callers must hold the mutex.
func (s *Service) get(id string) (Timezone, error) {
	for _, tz := range s.catalog {
		if tz.ID == id {
			tz.IsFavorite = s.favorites.Find(byFavoriteID(id)) != nil
			return tz, nil
		}
	}
	return Timezone{}, ErrUnknownTimezone
}

func (s *Service) countries() []string {
	seen := map[string]bool{}
	var result []string
	for _, tz := range s.catalog {
		if !seen[tz.Country] {
			seen[tz.Country] = true
			result = append(result, tz.Country)
		}
	}
	sort.Strings(result)
	return result
}

// withFavoriteMarks sets the IsFavorite flag on the given catalog entries.
// Callers must hold the mutex.
func (s *Service) withFavoriteMarks(zones []Timezone) []Timezone {
	result := make([]Timezone, len(zones))
	for i, tz := range zones {
		tz.IsFavorite = s.favorites.Find(byFavoriteID(tz.ID)) != nil
		result[i] = tz
	}
	return result
}

func (s *Service) cacheExpired() bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.cacheExpiredLocked()
}

func (s *Service) cacheExpiredLocked() bool {
	if s.lastFetch == nil {
		return true
	}
	return s.now().Sub(*s.lastFetch) > s.config.CacheExpiry
}

// renumber reassigns consecutive order values. Callers must hold the mutex.
func (s *Service) renumber() {
	node := s.favorites.Head()
	for i := 0; i < s.favorites.Len(); i++ {
		node.Value.Order = i
		node = node.Next()
	}
}

func byFavoriteID(id string) func(Favorite) bool {
	return func(f Favorite) bool {
		return f.ID == id
	}
}

func (s *Service) save() error {
	if err := storage.SaveAll(s.store, s.favorites.All()); err != nil {
		log.Logger().
			WithError(err).
			WithField(core.LogFieldCollection, collectionName).
			Error("Unable to persist favorite timezones")
		return err
	}
	return nil
}
