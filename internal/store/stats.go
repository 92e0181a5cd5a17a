package store

import (
	"sync"

	"github.com/justintdct/CineVault/cinevault-go/internal/model"
)

// StatsComputer produces stats records from content metadata. Implemented by
// service.StatsService; injected so tests can pin the clock and variance.
type StatsComputer interface {
	ComputeInitialStats(content *model.Content) model.ContentStats
	ComputeStatsUpdate(content *model.Content, previous model.ContentStats) model.ContentStats
}

// StatsStore is the single owner of the per-content stats map. All mutation
// goes through Register and Refresh, which serialize per content id so a
// sweep and a client-triggered refresh of the same entry can never both
// increment from the same previous value. Refreshes of different ids run in
// parallel; reads see whole records under the map lock.
type StatsStore struct {
	catalog  *Catalog
	computer StatsComputer

	mu    sync.RWMutex
	stats map[string]model.ContentStats

	lockMu sync.Mutex
	locks  map[string]*sync.Mutex
}

func NewStatsStore(catalog *Catalog, computer StatsComputer) *StatsStore {
	return &StatsStore{
		catalog:  catalog,
		computer: computer,
		stats:    make(map[string]model.ContentStats),
		locks:    make(map[string]*sync.Mutex),
	}
}

// Register seeds stats for the given content. Idempotent per id: the first
// registration wins and repeat calls return the stored value untouched.
func (s *StatsStore) Register(content *model.Content) model.ContentStats {
	lock := s.lockFor(content.ID)
	lock.Lock()
	defer lock.Unlock()

	if existing, ok := s.get(content.ID); ok {
		return existing
	}

	stats := s.computer.ComputeInitialStats(content)
	s.put(stats)
	return stats
}

// Get returns the current stats for the given id, if any.
func (s *StatsStore) Get(contentID string) (model.ContentStats, bool) {
	return s.get(contentID)
}

// Refresh advances the stats for one entry. Unknown ids fail with
// ErrNotFound. An entry without prior stats falls back to the initial
// estimate (self-healing); otherwise the update folds forward from the
// stored previous value. The replacement record is computed in full before
// the store is touched, so a failed refresh leaves the old value intact.
func (s *StatsStore) Refresh(contentID string) (model.ContentStats, error) {
	content, ok := s.catalog.Get(contentID)
	if !ok {
		return model.ContentStats{}, ErrNotFound
	}

	lock := s.lockFor(contentID)
	lock.Lock()
	defer lock.Unlock()

	previous, ok := s.get(contentID)
	if !ok {
		stats := s.computer.ComputeInitialStats(content)
		s.put(stats)
		return stats, nil
	}

	stats := s.computer.ComputeStatsUpdate(content, previous)
	s.put(stats)
	return stats, nil
}

// Len returns the number of registered entries.
func (s *StatsStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.stats)
}

func (s *StatsStore) get(contentID string) (model.ContentStats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats, ok := s.stats[contentID]
	return stats, ok
}

func (s *StatsStore) put(stats model.ContentStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats[stats.ContentID] = stats
}

func (s *StatsStore) lockFor(contentID string) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()
	lock, ok := s.locks[contentID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[contentID] = lock
	}
	return lock
}
