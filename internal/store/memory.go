// Package store keeps generated itineraries for the lifetime of the process
// so they can be re-rendered and exported. There is deliberately no durable
// backend: itineraries are cheap to regenerate and the product does not
// promise persistence across restarts.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/wanderplan/trip-planner/backend/internal/domain"
)

// ItineraryStore is the persistence port the service layer depends on.
type ItineraryStore interface {
	Save(ctx context.Context, it domain.Itinerary) error
	Load(ctx context.Context, id uuid.UUID) (domain.Itinerary, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Itinerary, int, error)
}

// MemoryStore is a mutex-guarded in-process ItineraryStore. Documents are
// held in their serialized export form; Load decodes and schema-checks them,
// so a document written by an older build surfaces as domain.ErrStaleState
// instead of silently coercing.
type MemoryStore struct {
	mu    sync.RWMutex
	docs  map[uuid.UUID][]byte
	order []uuid.UUID // insertion order, newest last
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[uuid.UUID][]byte)}
}

// Save serializes and stores the itinerary, keyed by its ID.
func (s *MemoryStore) Save(_ context.Context, it domain.Itinerary) error {
	doc, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("store.MemoryStore.Save: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.docs[it.ID]; !exists {
		s.order = append(s.order, it.ID)
	}
	s.docs[it.ID] = doc
	return nil
}

// Load returns the itinerary stored under id.
// Returns domain.ErrNotFound when absent and domain.ErrStaleState when the
// stored document fails to decode or predates the current schema; stale
// documents are removed so the caller is prompted to regenerate exactly once.
func (s *MemoryStore) Load(_ context.Context, id uuid.UUID) (domain.Itinerary, error) {
	s.mu.RLock()
	doc, ok := s.docs[id]
	s.mu.RUnlock()
	if !ok {
		return domain.Itinerary{}, fmt.Errorf("store.MemoryStore.Load: itinerary %s: %w", id, domain.ErrNotFound)
	}

	var it domain.Itinerary
	if err := json.Unmarshal(doc, &it); err != nil {
		s.evict(id)
		return domain.Itinerary{}, fmt.Errorf("store.MemoryStore.Load: decode itinerary %s: %w", id, domain.ErrStaleState)
	}
	if err := it.Validate(); err != nil {
		s.evict(id)
		return domain.Itinerary{}, fmt.Errorf("store.MemoryStore.Load: itinerary %s: %w", id, err)
	}
	return it, nil
}

// List returns one page of stored itineraries in insertion order plus the
// total count. Documents that fail the schema check are skipped rather than
// failing the whole listing.
func (s *MemoryStore) List(_ context.Context, p domain.PaginationParams) ([]domain.Itinerary, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	valid := make([]domain.Itinerary, 0, len(s.order))
	for _, id := range s.order {
		var it domain.Itinerary
		if err := json.Unmarshal(s.docs[id], &it); err != nil {
			continue
		}
		if it.Validate() != nil {
			continue
		}
		valid = append(valid, it)
	}

	total := len(valid)
	start := p.Offset()
	if start >= total {
		return []domain.Itinerary{}, total, nil
	}
	end := start + p.Limit
	if end > total {
		end = total
	}
	return valid[start:end], total, nil
}

// PutRaw stores a pre-serialized document under id, bypassing the schema
// check. It exists so tests and migrations can inject legacy documents.
func (s *MemoryStore) PutRaw(id uuid.UUID, doc []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.docs[id]; !exists {
		s.order = append(s.order, id)
	}
	s.docs[id] = doc
}

func (s *MemoryStore) evict(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
