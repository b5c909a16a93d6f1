package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/tripflow/backend/internal/domain"
)

// createTripRequest is the body of POST /trips. Dates use the openapi Date
// type so malformed values are rejected during decoding rather than deep in
// the store.
type createTripRequest struct {
	Destination string              `json:"destination"`
	StartDate   *openapi_types.Date `json:"startDate"`
	EndDate     *openapi_types.Date `json:"endDate"`
	Travelers   int                 `json:"travelers"`
	ImageURL    string              `json:"imageUrl,omitempty"`
	Interests   []string            `json:"interests,omitempty"`
}

// CreateTrip handles POST /trips. All input validation the mobile screens
// performed happens here, before the store is touched: non-empty
// destination, both dates present and ordered, at least one traveler.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.Destination) == "" {
		writeRequestError(w, "destination is required")
		return
	}
	if req.StartDate == nil || req.EndDate == nil {
		writeRequestError(w, "startDate and endDate are required")
		return
	}
	if req.EndDate.Time.Before(req.StartDate.Time) {
		writeRequestError(w, "endDate must not be before startDate")
		return
	}
	if req.Travelers < 1 {
		writeRequestError(w, "travelers must be at least 1")
		return
	}

	trip, err := s.trips.CreateTrip(r.Context(), domain.TripDraft{
		Destination: req.Destination,
		StartDate:   req.StartDate.Time.Format(domain.DateLayout),
		EndDate:     req.EndDate.Time.Format(domain.DateLayout),
		Travelers:   req.Travelers,
		ImageURL:    req.ImageURL,
		Interests:   req.Interests,
	})
	if err != nil {
		writeInternal(w)
		return
	}

	writeJSON(w, http.StatusCreated, trip)
}

// tripListResponse is the body of GET /trips.
type tripListResponse struct {
	Data []domain.Trip `json:"data"`
}

// ListTrips handles GET /trips. Trips come back most recently created first.
func (s *Server) ListTrips(w http.ResponseWriter, _ *http.Request) {
	trips := s.trips.Trips()
	if trips == nil {
		trips = []domain.Trip{}
	}
	writeJSON(w, http.StatusOK, tripListResponse{Data: trips})
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	trip, found := s.trips.GetTripByID(id)
	if !found {
		writeNotFound(w, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// DeleteTrip handles DELETE /trips/{tripID}. Deleting an unknown trip is a
// no-op and still answers 204; the operation is idempotent end to end.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	if err := s.trips.DeleteTrip(r.Context(), id); err != nil {
		writeInternal(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// tripIDParam parses the {tripID} path parameter. A value that is not a UUID
// cannot name any trip, so it answers 404 directly.
func tripIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "tripID"))
	if err != nil {
		writeNotFound(w, "trip not found")
		return uuid.Nil, false
	}
	return id, true
}
