package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/trip-planner/backend/internal/domain"
	"github.com/wanderplan/trip-planner/backend/internal/handler"
)

func TestNarrateDay(t *testing.T) {
	id := uuid.New()
	svc := &mockItineraryService{
		narrativeFn: func(_ context.Context, gotID uuid.UUID, day int) (string, error) {
			assert.Equal(t, id, gotID)
			assert.Equal(t, 2, day)
			return "A slow day along the river.", nil
		},
	}
	srv := newTestServer(svc)

	req := httptest.NewRequest(http.MethodPost, "/itineraries/"+id.String()+"/narrative", strings.NewReader(`{"day":2}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got handler.NarrateDayResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "A slow day along the river.", got.Narrative)
	assert.False(t, got.Unavailable)
}

func TestNarrateDay_UnavailableIsNotAnError(t *testing.T) {
	svc := &mockItineraryService{
		narrativeFn: func(context.Context, uuid.UUID, int) (string, error) {
			return "", fmt.Errorf("service.ItineraryService.Narrative: %w", domain.ErrUnavailable)
		},
	}
	srv := newTestServer(svc)

	req := httptest.NewRequest(http.MethodPost, "/itineraries/"+uuid.NewString()+"/narrative", strings.NewReader(`{"day":1}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got handler.NarrateDayResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Unavailable)
	assert.Empty(t, got.Narrative)
	assert.Contains(t, got.Detail, "showing local explanations")
}

func TestNarrateDay_DayOutOfRange(t *testing.T) {
	svc := &mockItineraryService{
		narrativeFn: func(context.Context, uuid.UUID, int) (string, error) {
			return "", fmt.Errorf("%w: day must be between 1 and 3", domain.ErrValidation)
		},
	}
	srv := newTestServer(svc)

	req := httptest.NewRequest(http.MethodPost, "/itineraries/"+uuid.NewString()+"/narrative", strings.NewReader(`{"day":9}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "day must be between 1 and 3")
}

func TestNarrateDay_BadRequests(t *testing.T) {
	srv := newTestServer(&mockItineraryService{})

	t.Run("bad id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/itineraries/nope/narrative", strings.NewReader(`{"day":1}`))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid itinerary id")
	})

	t.Run("bad body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/itineraries/"+uuid.NewString()+"/narrative", strings.NewReader(`{`))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid json body")
	})
}

func TestNarrateDay_UnknownItinerary(t *testing.T) {
	svc := &mockItineraryService{
		narrativeFn: func(context.Context, uuid.UUID, int) (string, error) {
			return "", fmt.Errorf("service.ItineraryService.Narrative: %w", domain.ErrNotFound)
		},
	}
	srv := newTestServer(svc)

	req := httptest.NewRequest(http.MethodPost, "/itineraries/"+uuid.NewString()+"/narrative", strings.NewReader(`{"day":1}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
