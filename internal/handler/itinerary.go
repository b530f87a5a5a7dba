package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wanderplan/trip-planner/backend/internal/domain"
)

// GenerateItineraryRequest is the JSON body for POST /itineraries.
// Dates use "2006-01-02"; clock times accept "9:00 AM" or "09:00".
// Either end_date or days sets the trip length (end_date wins).
type GenerateItineraryRequest struct {
	City      string  `json:"city"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date,omitempty"`
	Days      int     `json:"days,omitempty"`

	DayStart string `json:"day_start,omitempty"`
	DayEnd   string `json:"day_end,omitempty"`

	Budget    string   `json:"budget,omitempty"`
	Pace      string   `json:"pace,omitempty"`
	Interests []string `json:"interests,omitempty"`
	Transport string   `json:"transport,omitempty"`

	Notes        string `json:"notes,omitempty"`
	StayLocation string `json:"stay_location,omitempty"`
	StayType     string `json:"stay_type,omitempty"`

	MustVisit       []string `json:"must_visit,omitempty"`
	Avoid           []string `json:"avoid,omitempty"`
	FoodPreferences []string `json:"food_preferences,omitempty"`
}

// Pagination echoes the applied page parameters on list responses.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// ListItinerariesResponse is the JSON body for GET /itineraries.
type ListItinerariesResponse struct {
	Data       []domain.Itinerary `json:"data"`
	Pagination Pagination         `json:"pagination"`
}

// CreateItinerary handles POST /itineraries.
// It validates and normalizes the request, generates the full day-by-day
// schedule, stores it, and returns the export-shaped document with 201.
func (s *Server) CreateItinerary(w http.ResponseWriter, r *http.Request) {
	var body GenerateItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	req, err := requestToTrip(body)
	if err != nil {
		requestError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	it, err := s.itineraries.Generate(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

// GetItinerary handles GET /itineraries/{itineraryID}.
func (s *Server) GetItinerary(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "itineraryID"))
	if err != nil {
		requestError(w, http.StatusBadRequest, "invalid itinerary id")
		return
	}

	it, err := s.itineraries.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// ListItineraries handles GET /itineraries.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20,
// max=100).
func (s *Server) ListItineraries(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))

	items, total, err := s.itineraries.List(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ListItinerariesResponse{
		Data:       items,
		Pagination: Pagination{Page: params.Page, Limit: params.Limit, Total: total},
	})
}

// ExportItinerary handles GET /itineraries/{itineraryID}/export.
// Same document as GetItinerary but served as a download.
func (s *Server) ExportItinerary(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "itineraryID"))
	if err != nil {
		requestError(w, http.StatusBadRequest, "invalid itinerary id")
		return
	}

	it, err := s.itineraries.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="itinerary.json"`)
	writeJSON(w, http.StatusOK, it)
}

// --- mapping helpers --------------------------------------------------------

// Day window defaults applied when the request leaves them out.
const (
	defaultDayStart = "9:00 AM"
	defaultDayEnd   = "9:00 PM"
)

// requestToTrip converts the request body into a normalized domain.TripRequest.
// Returns an error describing the first bad field.
func requestToTrip(body GenerateItineraryRequest) (domain.TripRequest, error) {
	req := domain.TripRequest{
		City:            body.City,
		Days:            body.Days,
		Notes:           body.Notes,
		StayLocation:    body.StayLocation,
		StayType:        body.StayType,
		MustVisit:       body.MustVisit,
		Avoid:           body.Avoid,
		FoodPreferences: body.FoodPreferences,
	}

	if body.StartDate != "" {
		start, err := time.Parse("2006-01-02", body.StartDate)
		if err != nil {
			return domain.TripRequest{}, fmt.Errorf("invalid start_date %q (want YYYY-MM-DD)", body.StartDate)
		}
		req.StartDate = start
	}
	if body.EndDate != nil && *body.EndDate != "" {
		end, err := time.Parse("2006-01-02", *body.EndDate)
		if err != nil {
			return domain.TripRequest{}, fmt.Errorf("invalid end_date %q (want YYYY-MM-DD)", *body.EndDate)
		}
		req.EndDate = &end
	}

	var err error
	if req.DayStart, err = domain.ParseClockTime(orDefault(body.DayStart, defaultDayStart)); err != nil {
		return domain.TripRequest{}, fmt.Errorf("invalid day_start %q", body.DayStart)
	}
	if req.DayEnd, err = domain.ParseClockTime(orDefault(body.DayEnd, defaultDayEnd)); err != nil {
		return domain.TripRequest{}, fmt.Errorf("invalid day_end %q", body.DayEnd)
	}
	if req.Budget, err = domain.ParseBudget(body.Budget); err != nil {
		return domain.TripRequest{}, err
	}
	if req.Pace, err = domain.ParsePace(body.Pace); err != nil {
		return domain.TripRequest{}, err
	}
	if req.Transport, err = domain.ParseTransport(body.Transport); err != nil {
		return domain.TripRequest{}, err
	}
	for _, raw := range body.Interests {
		interest, err := domain.ParseInterest(raw)
		if err != nil {
			return domain.TripRequest{}, err
		}
		req.Interests = append(req.Interests, interest)
	}

	return req, nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// queryInt parses an optional integer query parameter, nil when absent or
// malformed.
func queryInt(r *http.Request, key string) *int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
