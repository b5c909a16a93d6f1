package handler

import (
	"net/http"

	"github.com/tripflow/backend/internal/domain"
)

// interestListResponse is the body of GET /interests.
type interestListResponse struct {
	Data []domain.Interest `json:"data"`
}

// ListInterests handles GET /interests. The catalog is static; clients use
// it to render the interest picker during onboarding and trip creation.
func (s *Server) ListInterests(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, interestListResponse{Data: domain.Interests})
}
