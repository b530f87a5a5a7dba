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

// mockItineraryService implements handler.ItineraryServicer with overridable
// functions so each test sets up only what it needs.
type mockItineraryService struct {
	generateFn  func(ctx context.Context, req domain.TripRequest) (domain.Itinerary, error)
	getFn       func(ctx context.Context, id uuid.UUID) (domain.Itinerary, error)
	listFn      func(ctx context.Context, p domain.PaginationParams) ([]domain.Itinerary, int, error)
	narrativeFn func(ctx context.Context, id uuid.UUID, day int) (string, error)
}

var _ handler.ItineraryServicer = (*mockItineraryService)(nil)

func (m *mockItineraryService) Generate(ctx context.Context, req domain.TripRequest) (domain.Itinerary, error) {
	return m.generateFn(ctx, req)
}

func (m *mockItineraryService) Get(ctx context.Context, id uuid.UUID) (domain.Itinerary, error) {
	return m.getFn(ctx, id)
}

func (m *mockItineraryService) List(ctx context.Context, p domain.PaginationParams) ([]domain.Itinerary, int, error) {
	return m.listFn(ctx, p)
}

func (m *mockItineraryService) Narrative(ctx context.Context, id uuid.UUID, day int) (string, error) {
	return m.narrativeFn(ctx, id, day)
}

func newTestServer(svc handler.ItineraryServicer) http.Handler {
	return handler.NewServer(svc).Routes()
}

func sampleItinerary(id uuid.UUID) domain.Itinerary {
	return domain.Itinerary{
		SchemaVersion: domain.SchemaVersion,
		ID:            id,
		Summary:       domain.Summary{City: "Denver", StartDate: "2026-09-01", Days: 1},
		Days: []domain.Day{
			{Day: 1, Date: "Tue, Sep 01", Timeline: []domain.TimelineSlot{}},
		},
	}
}

func TestCreateItinerary(t *testing.T) {
	id := uuid.New()
	var captured domain.TripRequest
	svc := &mockItineraryService{
		generateFn: func(_ context.Context, req domain.TripRequest) (domain.Itinerary, error) {
			captured = req
			return sampleItinerary(id), nil
		},
	}
	srv := newTestServer(svc)

	body := `{
		"city": "Denver",
		"start_date": "2026-09-01",
		"days": 1,
		"budget": "low",
		"pace": "packed",
		"interests": ["food", "nature"],
		"transport": "walking",
		"must_visit": ["Union Station"]
	}`
	req := httptest.NewRequest(http.MethodPost, "/itineraries", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got domain.Itinerary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, id, got.ID)
	assert.Equal(t, domain.SchemaVersion, got.SchemaVersion)

	assert.Equal(t, "Denver", captured.City)
	assert.Equal(t, domain.BudgetLow, captured.Budget)
	assert.Equal(t, domain.PacePacked, captured.Pace)
	assert.Equal(t, domain.TransportWalking, captured.Transport)
	assert.Equal(t, []domain.Interest{domain.InterestFood, domain.InterestNature}, captured.Interests)
	assert.Equal(t, []string{"Union Station"}, captured.MustVisit)
	// Day window defaults apply when the body leaves them out.
	assert.Equal(t, domain.NewClockTime(9, 0), captured.DayStart)
	assert.Equal(t, domain.NewClockTime(21, 0), captured.DayEnd)
}

func TestCreateItinerary_InvalidJSON(t *testing.T) {
	srv := newTestServer(&mockItineraryService{})

	req := httptest.NewRequest(http.MethodPost, "/itineraries", strings.NewReader(`{"city":`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid json body")
}

func TestCreateItinerary_BadFields(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "bad date format",
			body: `{"city":"Denver","start_date":"09/01/2026"}`,
			want: "start_date",
		},
		{
			name: "unknown budget",
			body: `{"city":"Denver","start_date":"2026-09-01","budget":"lavish"}`,
			want: "budget",
		},
		{
			name: "unknown interest",
			body: `{"city":"Denver","start_date":"2026-09-01","interests":["spelunking"]}`,
			want: "interest",
		},
		{
			name: "bad day window",
			body: `{"city":"Denver","start_date":"2026-09-01","day_start":"quarter past nine"}`,
			want: "day_start",
		},
	}

	srv := newTestServer(&mockItineraryService{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/itineraries", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Contains(t, rec.Body.String(), "validation_error")
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestCreateItinerary_ServiceValidation(t *testing.T) {
	svc := &mockItineraryService{
		generateFn: func(context.Context, domain.TripRequest) (domain.Itinerary, error) {
			return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Generate: %w: city is required", domain.ErrValidation)
		},
	}
	srv := newTestServer(svc)

	req := httptest.NewRequest(http.MethodPost, "/itineraries", strings.NewReader(`{"city":"x","start_date":"2026-09-01"}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "city is required")
}

func TestGetItinerary(t *testing.T) {
	id := uuid.New()
	svc := &mockItineraryService{
		getFn: func(_ context.Context, got uuid.UUID) (domain.Itinerary, error) {
			assert.Equal(t, id, got)
			return sampleItinerary(id), nil
		},
	}
	srv := newTestServer(svc)

	req := httptest.NewRequest(http.MethodGet, "/itineraries/"+id.String(), nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.Itinerary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, id, got.ID)
}

func TestGetItinerary_BadID(t *testing.T) {
	srv := newTestServer(&mockItineraryService{})

	req := httptest.NewRequest(http.MethodGet, "/itineraries/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid itinerary id")
}

func TestGetItinerary_NotFound(t *testing.T) {
	svc := &mockItineraryService{
		getFn: func(_ context.Context, id uuid.UUID) (domain.Itinerary, error) {
			return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Get: %w", domain.ErrNotFound)
		},
	}
	srv := newTestServer(svc)

	req := httptest.NewRequest(http.MethodGet, "/itineraries/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}

func TestGetItinerary_Stale(t *testing.T) {
	svc := &mockItineraryService{
		getFn: func(_ context.Context, id uuid.UUID) (domain.Itinerary, error) {
			return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Get: %w", domain.ErrStaleState)
		},
	}
	srv := newTestServer(svc)

	req := httptest.NewRequest(http.MethodGet, "/itineraries/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "stale_itinerary")
	assert.Contains(t, rec.Body.String(), "please regenerate")
}

func TestListItineraries(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	var gotParams domain.PaginationParams
	svc := &mockItineraryService{
		listFn: func(_ context.Context, p domain.PaginationParams) ([]domain.Itinerary, int, error) {
			gotParams = p
			return []domain.Itinerary{sampleItinerary(ids[0]), sampleItinerary(ids[1])}, 7, nil
		},
	}
	srv := newTestServer(svc)

	req := httptest.NewRequest(http.MethodGet, "/itineraries?page=2&limit=2", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PaginationParams{Page: 2, Limit: 2}, gotParams)

	var got handler.ListItinerariesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Data, 2)
	assert.Equal(t, ids[0], got.Data[0].ID)
	assert.Equal(t, handler.Pagination{Page: 2, Limit: 2, Total: 7}, got.Pagination)
}

func TestListItineraries_DefaultPagination(t *testing.T) {
	svc := &mockItineraryService{
		listFn: func(_ context.Context, p domain.PaginationParams) ([]domain.Itinerary, int, error) {
			assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 20}, p)
			return []domain.Itinerary{}, 0, nil
		},
	}
	srv := newTestServer(svc)

	req := httptest.NewRequest(http.MethodGet, "/itineraries", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestExportItinerary(t *testing.T) {
	id := uuid.New()
	svc := &mockItineraryService{
		getFn: func(_ context.Context, got uuid.UUID) (domain.Itinerary, error) {
			return sampleItinerary(got), nil
		},
	}
	srv := newTestServer(svc)

	req := httptest.NewRequest(http.MethodGet, "/itineraries/"+id.String()+"/export", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="itinerary.json"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got domain.Itinerary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, id, got.ID)
}
