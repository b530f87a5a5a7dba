package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wanderplan/trip-planner/backend/internal/domain"
)

// NarrateDayRequest is the JSON body for POST /itineraries/{id}/narrative.
type NarrateDayRequest struct {
	Day int `json:"day"`
}

// NarrateDayResponse carries either the rewritten paragraph or a passive
// unavailability notice. Collaborator failure is not an HTTP error: the
// client shows the locally generated explanations instead.
type NarrateDayResponse struct {
	Narrative   string `json:"narrative"`
	Unavailable bool   `json:"unavailable,omitempty"`
	Detail      string `json:"detail,omitempty"`
}

// NarrateDay handles POST /itineraries/{itineraryID}/narrative.
// It runs the external rewrite collaborator over one day's timeline.
func (s *Server) NarrateDay(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "itineraryID"))
	if err != nil {
		requestError(w, http.StatusBadRequest, "invalid itinerary id")
		return
	}

	var body NarrateDayRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	text, err := s.itineraries.Narrative(r.Context(), id, body.Day)
	if err != nil {
		if errors.Is(err, domain.ErrUnavailable) {
			writeJSON(w, http.StatusOK, NarrateDayResponse{
				Unavailable: true,
				Detail:      "narrative generation is unavailable; showing local explanations",
			})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, NarrateDayResponse{Narrative: text})
}
