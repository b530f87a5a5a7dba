// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server. Methods are split into files by
// concern (health.go, itinerary.go, narrative.go) but share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wanderplan/trip-planner/backend/internal/domain"
)

// ItineraryServicer defines the business operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the service layer.
type ItineraryServicer interface {
	Generate(ctx context.Context, req domain.TripRequest) (domain.Itinerary, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Itinerary, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Itinerary, int, error)
	Narrative(ctx context.Context, id uuid.UUID, day int) (string, error)
}

// Server holds the handler dependencies for all API endpoints.
type Server struct {
	itineraries ItineraryServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(itineraries ItineraryServicer) *Server {
	return &Server{itineraries: itineraries}
}

// Routes returns the chi router for the full API surface.
// Main wires middleware around it; tests mount it directly.
func (s *Server) Routes() *chi.Mux {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/itineraries", func(r chi.Router) {
		r.Post("/", s.CreateItinerary)
		r.Get("/", s.ListItineraries)
		r.Route("/{itineraryID}", func(r chi.Router) {
			r.Get("/", s.GetItinerary)
			r.Get("/export", s.ExportItinerary)
			r.Post("/narrative", s.NarrateDay)
		})
	})

	return r
}
