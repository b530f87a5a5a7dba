package domain

import "errors"

// ErrNotFound is returned by store and service functions when the requested
// itinerary does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing city, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrStaleState is returned when a stored itinerary document no longer matches
// the current schema (missing required fields or an old schema_version).
// The stored value is discarded and the caller should regenerate.
// Handlers should map this to HTTP 409 Conflict.
var ErrStaleState = errors.New("stale itinerary state")

// ErrUnavailable is returned by the narrative rewrite collaborator for every
// failure mode: feature disabled, missing credential, timeout, malformed
// response. Callers fall back to locally generated explanations; this error
// must never abort itinerary generation or rendering.
var ErrUnavailable = errors.New("narrative unavailable")
