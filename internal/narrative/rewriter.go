// Package narrative turns one itinerary day into a short prose paragraph via
// an external text-generation model. The collaborator is strictly optional:
// every failure mode — feature disabled, missing credential, timeout,
// malformed response — surfaces as domain.ErrUnavailable, and callers fall
// back to the locally generated per-stop explanations.
package narrative

import (
	"context"
	"fmt"

	"github.com/wanderplan/trip-planner/backend/internal/domain"
)

// StopDigest is the subset of slot data shared with the model: names,
// durations, and the descriptive lists, never full record internals.
type StopDigest struct {
	Name            string   `json:"name"`
	Start           string   `json:"start"`
	End             string   `json:"end"`
	Duration        string   `json:"duration"`
	Activities      []string `json:"activities"`
	Nearby          []string `json:"nearby"`
	Food            []string `json:"food"`
	Tip             string   `json:"tip"`
	TravelToNextMin int      `json:"travel_to_next_min"`
}

// DayDigest is the full payload for one day's rewrite request.
type DayDigest struct {
	City      string       `json:"city"`
	Pace      string       `json:"pace"`
	Transport string       `json:"transport"`
	Day       int          `json:"day"`
	Date      string       `json:"date"`
	Stops     []StopDigest `json:"stops"`
}

// Rewriter is the capability-typed collaborator interface. Implementations
// return the rewritten paragraph, or an error wrapping domain.ErrUnavailable
// when no usable text can be produced. There is no third outcome.
type Rewriter interface {
	RewriteDay(ctx context.Context, day DayDigest) (string, error)
}

// Disabled is the always-unavailable Rewriter, used when no model is
// configured. Callers cannot distinguish it from a failing model, which is
// the point: the fallback path is the same either way.
type Disabled struct{}

// RewriteDay always reports the feature as unavailable.
func (Disabled) RewriteDay(context.Context, DayDigest) (string, error) {
	return "", fmt.Errorf("narrative.Disabled: %w", domain.ErrUnavailable)
}

// DigestDay projects an itinerary day into the fields the model is allowed
// to see.
func DigestDay(it domain.Itinerary, day domain.Day) DayDigest {
	digest := DayDigest{
		City:      it.Summary.City,
		Pace:      string(it.Summary.Pace),
		Transport: it.Summary.Transport,
		Day:       day.Day,
		Date:      day.Date,
		Stops:     make([]StopDigest, 0, len(day.Timeline)),
	}
	for _, slot := range day.Timeline {
		digest.Stops = append(digest.Stops, StopDigest{
			Name:            slot.Place.Name,
			Start:           slot.Start.String(),
			End:             slot.End.String(),
			Duration:        slot.Place.Duration,
			Activities:      slot.Place.Activities,
			Nearby:          slot.Place.Nearby,
			Food:            slot.Place.Food,
			Tip:             slot.Place.Tip,
			TravelToNextMin: slot.EstimatedTravelToNextMin,
		})
	}
	return digest
}
