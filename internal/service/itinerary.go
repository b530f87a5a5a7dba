// Package service contains the business logic for the trip planner API.
// Services validate inputs, enforce business rules, and orchestrate the
// planner, store, and narrative collaborator. Handlers depend on interfaces
// they define themselves; services depend on the store and rewriter ports.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wanderplan/trip-planner/backend/internal/domain"
	"github.com/wanderplan/trip-planner/backend/internal/narrative"
	"github.com/wanderplan/trip-planner/backend/internal/planner"
	"github.com/wanderplan/trip-planner/backend/internal/store"
)

// ItineraryService implements itinerary generation and retrieval.
type ItineraryService struct {
	planner  *planner.Planner
	store    store.ItineraryStore
	rewriter narrative.Rewriter
}

// NewItineraryService constructs an ItineraryService from its collaborators.
func NewItineraryService(p *planner.Planner, st store.ItineraryStore, rw narrative.Rewriter) *ItineraryService {
	return &ItineraryService{planner: p, store: st, rewriter: rw}
}

// Generate validates the request, builds the itinerary, and stores it for
// later rendering and export.
// Returns domain.ErrValidation when input violates business rules.
func (s *ItineraryService) Generate(ctx context.Context, req domain.TripRequest) (domain.Itinerary, error) {
	if err := validateRequest(req); err != nil {
		return domain.Itinerary{}, err
	}

	it := s.planner.Build(req)
	if err := s.store.Save(ctx, it); err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Generate: %w", err)
	}
	return it, nil
}

// Get returns a stored itinerary by ID.
// Returns domain.ErrNotFound when absent and domain.ErrStaleState when the
// stored document no longer matches the current schema.
func (s *ItineraryService) Get(ctx context.Context, id uuid.UUID) (domain.Itinerary, error) {
	it, err := s.store.Load(ctx, id)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Get: %w", err)
	}
	return it, nil
}

// List returns one page of stored itineraries plus the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ItineraryService) List(ctx context.Context, p domain.PaginationParams) ([]domain.Itinerary, int, error) {
	items, total, err := s.store.List(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ItineraryService.List: %w", err)
	}
	if items == nil {
		items = []domain.Itinerary{}
	}
	return items, total, nil
}

// Narrative runs the rewrite collaborator for one day of a stored itinerary.
// Returns domain.ErrUnavailable when the collaborator is disabled or fails;
// callers fall back to the per-slot explanations already in the itinerary.
func (s *ItineraryService) Narrative(ctx context.Context, id uuid.UUID, dayNumber int) (string, error) {
	it, err := s.store.Load(ctx, id)
	if err != nil {
		return "", fmt.Errorf("service.ItineraryService.Narrative: %w", err)
	}

	if dayNumber < 1 || dayNumber > len(it.Days) {
		return "", fmt.Errorf("%w: day must be between 1 and %d", domain.ErrValidation, len(it.Days))
	}

	text, err := s.rewriter.RewriteDay(ctx, narrative.DigestDay(it, it.Days[dayNumber-1]))
	if err != nil {
		return "", fmt.Errorf("service.ItineraryService.Narrative: %w", err)
	}
	return text, nil
}

// validateRequest enforces the input rules generation depends on.
//   - City must be non-empty (whitespace-only is rejected).
//   - EndDate, if set, must not be before StartDate.
//   - The day window must be a positive span of time.
func validateRequest(req domain.TripRequest) error {
	if strings.TrimSpace(req.City) == "" {
		return fmt.Errorf("%w: city is required", domain.ErrValidation)
	}
	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: start_date is required", domain.ErrValidation)
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	if req.DayEnd <= req.DayStart {
		return fmt.Errorf("%w: day_end must be after day_start", domain.ErrValidation)
	}
	return nil
}
