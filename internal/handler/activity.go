package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tripflow/backend/internal/domain"
)

// AddActivity handles POST /trips/{tripID}/days/{date}/activities.
// The new activity is appended to the day's list and answered with its
// assigned id.
func (s *Server) AddActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDParam(w, r)
	if !ok {
		return
	}
	date, ok := dateParam(w, r)
	if !ok {
		return
	}

	var draft domain.ActivityDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeRequestError(w, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(draft.Title) == "" {
		writeRequestError(w, "title is required")
		return
	}
	if !draft.Type.Valid() {
		writeRequestError(w, "unknown activity type "+string(draft.Type))
		return
	}
	if !draft.TimeOfDay.Valid() {
		writeRequestError(w, "unknown time of day "+string(draft.TimeOfDay))
		return
	}

	activity, found, err := s.trips.AddActivity(r.Context(), tripID, date, draft)
	if err != nil {
		writeInternal(w)
		return
	}
	if !found {
		writeNotFound(w, "trip or itinerary day not found")
		return
	}
	writeJSON(w, http.StatusCreated, activity)
}

// UpdateActivity handles PATCH .../activities/{activityID}. Only fields
// present in the body change; the activity id always survives.
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDParam(w, r)
	if !ok {
		return
	}
	date, ok := dateParam(w, r)
	if !ok {
		return
	}
	activityID, ok := activityIDParam(w, r)
	if !ok {
		return
	}

	var patch domain.ActivityPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeRequestError(w, "invalid request body: "+err.Error())
		return
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		writeRequestError(w, "title must not be empty")
		return
	}
	if patch.Type != nil && !patch.Type.Valid() {
		writeRequestError(w, "unknown activity type "+string(*patch.Type))
		return
	}
	if patch.TimeOfDay != nil && !patch.TimeOfDay.Valid() {
		writeRequestError(w, "unknown time of day "+string(*patch.TimeOfDay))
		return
	}

	activity, found, err := s.trips.UpdateActivity(r.Context(), tripID, date, activityID, patch)
	if err != nil {
		writeInternal(w)
		return
	}
	if !found {
		writeNotFound(w, "activity not found")
		return
	}
	writeJSON(w, http.StatusOK, activity)
}

// DeleteActivity handles DELETE .../activities/{activityID}.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDParam(w, r)
	if !ok {
		return
	}
	date, ok := dateParam(w, r)
	if !ok {
		return
	}
	activityID, ok := activityIDParam(w, r)
	if !ok {
		return
	}

	found, err := s.trips.DeleteActivity(r.Context(), tripID, date, activityID)
	if err != nil {
		writeInternal(w)
		return
	}
	if !found {
		writeNotFound(w, "activity not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// dateParam parses the {date} path parameter. Itinerary days are keyed by
// ISO date, so anything else cannot match a day.
func dateParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	date := chi.URLParam(r, "date")
	if _, err := domain.ParseDate(date); err != nil {
		writeNotFound(w, "itinerary day not found")
		return "", false
	}
	return date, true
}

// activityIDParam parses the {activityID} path parameter.
func activityIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "activityID"))
	if err != nil {
		writeNotFound(w, "activity not found")
		return uuid.Nil, false
	}
	return id, true
}
