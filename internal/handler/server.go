// Package handler implements the HTTP handlers for the TripFlow API.
// All handlers are methods on Server. Methods are split into concern-specific
// files (health.go, trip.go, activity.go, preferences.go) but all share the
// same Server struct so they can access its dependencies.
//
// The handlers own the responsibilities the mobile screens had: input
// validation before a store call, and rendering not-found states for absent
// results. The stores themselves never reject a lookup with an error.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tripflow/backend/internal/domain"
)

// TripStorer defines the trip-state operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching storage.
type TripStorer interface {
	Trips() []domain.Trip
	GetTripByID(id uuid.UUID) (domain.Trip, bool)
	CreateTrip(ctx context.Context, draft domain.TripDraft) (domain.Trip, error)
	DeleteTrip(ctx context.Context, id uuid.UUID) error
	AddActivity(ctx context.Context, tripID uuid.UUID, date string, draft domain.ActivityDraft) (domain.Activity, bool, error)
	UpdateActivity(ctx context.Context, tripID uuid.UUID, date string, activityID uuid.UUID, patch domain.ActivityPatch) (domain.Activity, bool, error)
	DeleteActivity(ctx context.Context, tripID uuid.UUID, date string, activityID uuid.UUID) (bool, error)
}

// PreferenceStorer defines the onboarding-state operations the handlers
// depend on.
type PreferenceStorer interface {
	Data() domain.OnboardingData
	UpdatePreferences(ctx context.Context, patch domain.PreferencesPatch) (domain.OnboardingData, error)
	CompleteOnboarding(ctx context.Context, prefs domain.UserPreferences) (domain.OnboardingData, error)
	ResetOnboarding(ctx context.Context) (domain.OnboardingData, error)
}

// Pinger reports whether the persistence backend is reachable. Satisfied by
// every storage adapter.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds the handler dependencies. Methods live in concern-specific
// files but all operate on this struct.
type Server struct {
	trips   TripStorer
	prefs   PreferenceStorer
	storage Pinger
}

// NewServer constructs the Server with all its dependencies. storage may be
// nil, in which case the health endpoint skips the backend ping.
func NewServer(trips TripStorer, prefs PreferenceStorer, storage Pinger) *Server {
	return &Server{trips: trips, prefs: prefs, storage: storage}
}

// Routes returns the chi router for the full API surface. Cross-cutting
// middleware (logging, CORS, limits) is applied by the caller around this
// router, not inside it.
func (s *Server) Routes() *chi.Mux {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/interests", s.ListInterests)

		r.Route("/trips", func(r chi.Router) {
			r.Get("/", s.ListTrips)
			r.Post("/", s.CreateTrip)

			r.Route("/{tripID}", func(r chi.Router) {
				r.Get("/", s.GetTrip)
				r.Delete("/", s.DeleteTrip)

				r.Route("/days/{date}/activities", func(r chi.Router) {
					r.Post("/", s.AddActivity)
					r.Patch("/{activityID}", s.UpdateActivity)
					r.Delete("/{activityID}", s.DeleteActivity)
				})
			})
		})

		r.Route("/preferences", func(r chi.Router) {
			r.Get("/", s.GetPreferences)
			r.Patch("/", s.UpdatePreferences)
			r.Post("/complete", s.CompleteOnboarding)
			r.Post("/reset", s.ResetOnboarding)
		})
	})

	return r
}
