package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tripflow/backend/internal/domain"
)

// GetPreferences handles GET /preferences.
func (s *Server) GetPreferences(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.prefs.Data())
}

// UpdatePreferences handles PATCH /preferences. Fields absent from the body
// are retained; unknown enum values are rejected by the store with 422.
func (s *Server) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var patch domain.PreferencesPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeRequestError(w, "invalid request body: "+err.Error())
		return
	}

	data, err := s.prefs.UpdatePreferences(r.Context(), patch)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeValidation(w, err)
			return
		}
		writeInternal(w)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

// CompleteOnboarding handles POST /preferences/complete. The body replaces
// the preference fields wholesale and the completion flag is set.
func (s *Server) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	var prefs domain.UserPreferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		writeRequestError(w, "invalid request body: "+err.Error())
		return
	}

	data, err := s.prefs.CompleteOnboarding(r.Context(), prefs)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeValidation(w, err)
			return
		}
		writeInternal(w)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

// ResetOnboarding handles POST /preferences/reset.
func (s *Server) ResetOnboarding(w http.ResponseWriter, r *http.Request) {
	data, err := s.prefs.ResetOnboarding(r.Context())
	if err != nil {
		writeInternal(w)
		return
	}
	writeJSON(w, http.StatusOK, data)
}
