package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripflow/backend/internal/domain"
	"github.com/tripflow/backend/internal/handler"
)

// mockTripStorer is a hand-written test double for handler.TripStorer.
// Each method is a function field; set only the ones your test needs.
type mockTripStorer struct {
	trips          func() []domain.Trip
	getTripByID    func(id uuid.UUID) (domain.Trip, bool)
	createTrip     func(ctx context.Context, draft domain.TripDraft) (domain.Trip, error)
	deleteTrip     func(ctx context.Context, id uuid.UUID) error
	addActivity    func(ctx context.Context, tripID uuid.UUID, date string, draft domain.ActivityDraft) (domain.Activity, bool, error)
	updateActivity func(ctx context.Context, tripID uuid.UUID, date string, activityID uuid.UUID, patch domain.ActivityPatch) (domain.Activity, bool, error)
	deleteActivity func(ctx context.Context, tripID uuid.UUID, date string, activityID uuid.UUID) (bool, error)
}

func (m *mockTripStorer) Trips() []domain.Trip { return m.trips() }
func (m *mockTripStorer) GetTripByID(id uuid.UUID) (domain.Trip, bool) {
	return m.getTripByID(id)
}
func (m *mockTripStorer) CreateTrip(ctx context.Context, draft domain.TripDraft) (domain.Trip, error) {
	return m.createTrip(ctx, draft)
}
func (m *mockTripStorer) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	return m.deleteTrip(ctx, id)
}
func (m *mockTripStorer) AddActivity(ctx context.Context, tripID uuid.UUID, date string, draft domain.ActivityDraft) (domain.Activity, bool, error) {
	return m.addActivity(ctx, tripID, date, draft)
}
func (m *mockTripStorer) UpdateActivity(ctx context.Context, tripID uuid.UUID, date string, activityID uuid.UUID, patch domain.ActivityPatch) (domain.Activity, bool, error) {
	return m.updateActivity(ctx, tripID, date, activityID, patch)
}
func (m *mockTripStorer) DeleteActivity(ctx context.Context, tripID uuid.UUID, date string, activityID uuid.UUID) (bool, error) {
	return m.deleteActivity(ctx, tripID, date, activityID)
}

// compile-time check: mockTripStorer must satisfy handler.TripStorer.
var _ handler.TripStorer = (*mockTripStorer)(nil)

// mockPreferenceStorer is a test double for handler.PreferenceStorer.
type mockPreferenceStorer struct {
	data              func() domain.OnboardingData
	updatePreferences func(ctx context.Context, patch domain.PreferencesPatch) (domain.OnboardingData, error)
	completeOnboard   func(ctx context.Context, prefs domain.UserPreferences) (domain.OnboardingData, error)
	resetOnboarding   func(ctx context.Context) (domain.OnboardingData, error)
}

func (m *mockPreferenceStorer) Data() domain.OnboardingData { return m.data() }
func (m *mockPreferenceStorer) UpdatePreferences(ctx context.Context, patch domain.PreferencesPatch) (domain.OnboardingData, error) {
	return m.updatePreferences(ctx, patch)
}
func (m *mockPreferenceStorer) CompleteOnboarding(ctx context.Context, prefs domain.UserPreferences) (domain.OnboardingData, error) {
	return m.completeOnboard(ctx, prefs)
}
func (m *mockPreferenceStorer) ResetOnboarding(ctx context.Context) (domain.OnboardingData, error) {
	return m.resetOnboarding(ctx)
}

var _ handler.PreferenceStorer = (*mockPreferenceStorer)(nil)

// ---- helpers ---------------------------------------------------------------

// newTripHandler wires a Server with the given trip mock into the router,
// mirroring how main.go wires it in production.
func newTripHandler(trips handler.TripStorer) http.Handler {
	return handler.NewServer(trips, &mockPreferenceStorer{}, nil).Routes()
}

func tripFixture() domain.Trip {
	return domain.Trip{
		ID:          uuid.New(),
		Destination: "Lisbon",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-03",
		Travelers:   2,
		Itinerary: []domain.DayItinerary{
			{Date: "2025-06-01", Activities: []domain.Activity{
				{ID: uuid.New(), Title: "Local Breakfast Experience", Type: domain.ActivityRestaurant, TimeOfDay: domain.Morning},
			}},
			{Date: "2025-06-02", Activities: []domain.Activity{}},
			{Date: "2025-06-03", Activities: []domain.Activity{}},
		},
		CreatedAt: time.Now().UTC(),
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// ---- POST /api/v1/trips ----------------------------------------------------

func TestCreateTrip_201(t *testing.T) {
	fixture := tripFixture()
	var gotDraft domain.TripDraft
	h := newTripHandler(&mockTripStorer{
		createTrip: func(_ context.Context, d domain.TripDraft) (domain.Trip, error) {
			gotDraft = d
			return fixture, nil
		},
	})

	body := jsonBody(t, map[string]any{
		"destination": "Lisbon",
		"startDate":   "2025-06-01",
		"endDate":     "2025-06-03",
		"travelers":   2,
		"interests":   []string{"food"},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/trips", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Lisbon", gotDraft.Destination)
	assert.Equal(t, "2025-06-01", gotDraft.StartDate)
	assert.Equal(t, "2025-06-03", gotDraft.EndDate)
	assert.Equal(t, []string{"food"}, gotDraft.Interests)

	var got domain.Trip
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, fixture.ID, got.ID)
}

func TestCreateTrip_422_Validation(t *testing.T) {
	h := newTripHandler(&mockTripStorer{
		createTrip: func(context.Context, domain.TripDraft) (domain.Trip, error) {
			t.Fatal("store must not be called for invalid input")
			return domain.Trip{}, nil
		},
	})

	cases := map[string]map[string]any{
		"missing destination": {
			"startDate": "2025-06-01", "endDate": "2025-06-03", "travelers": 1,
		},
		"blank destination": {
			"destination": "   ", "startDate": "2025-06-01", "endDate": "2025-06-03", "travelers": 1,
		},
		"missing dates": {
			"destination": "Lisbon", "travelers": 1,
		},
		"end before start": {
			"destination": "Lisbon", "startDate": "2025-06-03", "endDate": "2025-06-01", "travelers": 1,
		},
		"zero travelers": {
			"destination": "Lisbon", "startDate": "2025-06-01", "endDate": "2025-06-03", "travelers": 0,
		},
		"malformed date": {
			"destination": "Lisbon", "startDate": "June 1st", "endDate": "2025-06-03", "travelers": 1,
		},
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/trips", jsonBody(t, payload))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		})
	}
}

// ---- GET /api/v1/trips -----------------------------------------------------

func TestListTrips_200(t *testing.T) {
	fixture := tripFixture()
	h := newTripHandler(&mockTripStorer{
		trips: func() []domain.Trip { return []domain.Trip{fixture} },
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trips", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Data []domain.Trip `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Data, 1)
	assert.Equal(t, fixture.Destination, got.Data[0].Destination)
}

func TestListTrips_200_Empty(t *testing.T) {
	h := newTripHandler(&mockTripStorer{
		trips: func() []domain.Trip { return nil },
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trips", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String(), "empty list must serialize as [], not null")
}

// ---- GET /api/v1/trips/{tripID} --------------------------------------------

func TestGetTrip_200(t *testing.T) {
	fixture := tripFixture()
	h := newTripHandler(&mockTripStorer{
		getTripByID: func(id uuid.UUID) (domain.Trip, bool) {
			require.Equal(t, fixture.ID, id)
			return fixture, true
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trips/"+fixture.ID.String(), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.Trip
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, fixture.ID, got.ID)
	assert.Len(t, got.Itinerary, 3)
}

func TestGetTrip_404_Unknown(t *testing.T) {
	h := newTripHandler(&mockTripStorer{
		getTripByID: func(uuid.UUID) (domain.Trip, bool) { return domain.Trip{}, false },
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trips/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}

func TestGetTrip_404_MalformedID(t *testing.T) {
	h := newTripHandler(&mockTripStorer{
		getTripByID: func(uuid.UUID) (domain.Trip, bool) {
			t.Fatal("store must not be called for a malformed id")
			return domain.Trip{}, false
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trips/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- DELETE /api/v1/trips/{tripID} -----------------------------------------

func TestDeleteTrip_204_EvenWhenUnknown(t *testing.T) {
	h := newTripHandler(&mockTripStorer{
		deleteTrip: func(context.Context, uuid.UUID) error { return nil },
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/trips/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code, "delete is an idempotent no-op")
}
