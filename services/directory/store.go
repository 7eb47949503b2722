package directory

import (
	"fmt"
	"sort"
	"sync"

	"handymatch/models"
)

// SortBy selects the ordering criterion for directory queries.
type SortBy string

const (
	SortByRating   SortBy = "rating"   // descending, ties keep prior order
	SortByPrice    SortBy = "price"    // ascending
	SortByDistance SortBy = "distance" // ascending by parsed km
)

// ParseSortBy validates a client-supplied sort criterion, defaulting to
// rating when empty.
func ParseSortBy(s string) (SortBy, error) {
	switch SortBy(s) {
	case SortByRating, SortByPrice, SortByDistance:
		return SortBy(s), nil
	case "":
		return SortByRating, nil
	}
	return "", fmt.Errorf("unknown sort criterion %q", s)
}

// Store is the in-memory ordered collection of professional records,
// most-recent-first. It is the single piece of state shared across flows,
// so reads and mutations are serialized with a RWMutex; every read hands
// out a copy, never the backing slice.
type Store struct {
	mu   sync.RWMutex
	pros []models.Professional
}

// NewStore builds a store seeded with the given records, preserving their
// order.
func NewStore(seed []models.Professional) *Store {
	pros := make([]models.Professional, len(seed))
	copy(pros, seed)
	return &Store{pros: pros}
}

// Add inserts a record at the front of the collection.
func (s *Store) Add(p models.Professional) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pros = append([]models.Professional{p}, s.pros...)
}

// RemoveByEmail removes every record whose email matches, returning how
// many were removed. Removing an absent email is a no-op.
func (s *Store) RemoveByEmail(email string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.pros[:0]
	removed := 0
	for _, p := range s.pros {
		if p.Email == email {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	s.pros = kept
	return removed
}

// FindByEmail returns the first record with the given email.
func (s *Store) FindByEmail(email string) (models.Professional, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.pros {
		if p.Email == email {
			return p, true
		}
	}
	return models.Professional{}, false
}

// FindByID returns the record with the given identifier.
func (s *Store) FindByID(id string) (models.Professional, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.pros {
		if p.ID == id {
			return p, true
		}
	}
	return models.Professional{}, false
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pros)
}

// Snapshot returns a copy of the collection in its current order.
func (s *Store) Snapshot() []models.Professional {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Professional, len(s.pros))
	copy(out, s.pros)
	return out
}

// Query returns a derived view: records filtered by exact category match
// (when a filter is given), then stably sorted by the criterion. The
// backing collection is never mutated, so repeated queries over an
// unchanged store yield identical output. An unmatched filter yields an
// empty slice, not an error.
func (s *Store) Query(filter *models.Category, sortBy SortBy) []models.Professional {
	snapshot := s.Snapshot()

	out := snapshot[:0]
	for _, p := range snapshot {
		if filter != nil && p.Category != *filter {
			continue
		}
		out = append(out, p)
	}

	switch sortBy {
	case SortByPrice:
		sort.SliceStable(out, func(i, j int) bool { return out[i].HourlyRate < out[j].HourlyRate })
	case SortByDistance:
		sort.SliceStable(out, func(i, j int) bool { return out[i].DistanceKM() < out[j].DistanceKM() })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}
	return out
}
