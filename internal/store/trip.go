// Package store contains the two state stores behind the TripFlow API: the
// trip list and the onboarding preferences. Each store owns one in-memory
// collection backed by a single storage key; every mutation derives the new
// full collection, persists it, and only then adopts it in memory, so the
// persisted blob never trails a state the caller has already observed.
//
// Mutations on a store are serialized behind a mutex. Reads return deep
// copies of the last-committed snapshot and never block behind storage I/O.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tripflow/backend/internal/domain"
	"github.com/tripflow/backend/internal/itinerary"
	"github.com/tripflow/backend/internal/storage"
)

// tripsKey is the storage key for the serialized trip list. The value is
// shared with the mobile client's local cache format.
const tripsKey = "@trips"

// TripStore owns the ordered trip list, most-recently-created first.
type TripStore struct {
	storage storage.Store
	gen     *itinerary.Generator
	log     *slog.Logger
	now     func() time.Time

	mu     sync.Mutex
	trips  []domain.Trip
	loaded bool
}

// NewTripStore constructs a TripStore over the given storage backend and
// itinerary generator. Call Load before serving traffic.
func NewTripStore(st storage.Store, gen *itinerary.Generator, log *slog.Logger) *TripStore {
	return &TripStore{
		storage: st,
		gen:     gen,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
		trips:   []domain.Trip{},
	}
}

// Load reads the persisted trip list. An absent record leaves the list
// empty. A record that does not parse as a trip list is logged, erased, and
// replaced by the empty list. Corruption never surfaces to the caller.
// Only a storage I/O failure returns an error.
func (s *TripStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.storage.Load(ctx, tripsKey)
	if err != nil {
		return fmt.Errorf("store.TripStore.Load: %w", err)
	}
	if !ok {
		s.trips = []domain.Trip{}
		s.loaded = true
		return nil
	}

	var trips []domain.Trip
	if err := json.Unmarshal([]byte(raw), &trips); err != nil || trips == nil {
		s.log.WarnContext(ctx, "corrupt trips record, resetting", "key", tripsKey, "error", err)
		if rerr := s.storage.Remove(ctx, tripsKey); rerr != nil {
			s.log.ErrorContext(ctx, "failed to erase corrupt trips record", "key", tripsKey, "error", rerr)
		}
		trips = []domain.Trip{}
	}

	s.trips = trips
	s.loaded = true
	return nil
}

// Loaded reports whether Load has completed.
func (s *TripStore) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Trips returns a deep copy of the current trip list, most recent first.
func (s *TripStore) Trips() []domain.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Trip, len(s.trips))
	for i, t := range s.trips {
		out[i] = t.Clone()
	}
	return out
}

// GetTripByID returns a deep copy of the trip with the given id, or ok=false
// when no such trip exists. Pure in-memory lookup, no storage access.
func (s *TripStore) GetTripByID(id uuid.UUID) (domain.Trip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.trips {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return domain.Trip{}, false
}

// CreateTrip builds a trip from the draft: one generated DayItinerary per
// calendar day from StartDate to EndDate inclusive, a fresh id, and the
// creation timestamp. The new trip is prepended to the list and the full
// list persisted before it becomes visible.
func (s *TripStore) CreateTrip(ctx context.Context, draft domain.TripDraft) (domain.Trip, error) {
	dates, err := domain.EnumerateDates(draft.StartDate, draft.EndDate)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("store.TripStore.CreateTrip: %w", err)
	}

	days := make([]domain.DayItinerary, len(dates))
	for i, date := range dates {
		days[i] = domain.DayItinerary{
			Date:       date,
			Activities: s.gen.DayActivities(i, draft.Destination, draft.Interests),
		}
	}

	trip := domain.Trip{
		ID:          uuid.New(),
		Destination: draft.Destination,
		StartDate:   draft.StartDate,
		EndDate:     draft.EndDate,
		Travelers:   draft.Travelers,
		ImageURL:    draft.ImageURL,
		Interests:   append([]string(nil), draft.Interests...),
		Itinerary:   days,
		CreatedAt:   s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Trip, 0, len(s.trips)+1)
	next = append(next, trip)
	next = append(next, s.trips...)

	if err := s.persist(ctx, next); err != nil {
		return domain.Trip{}, fmt.Errorf("store.TripStore.CreateTrip: %w", err)
	}
	return trip.Clone(), nil
}

// DeleteTrip removes the trip with the given id. An unknown id is a no-op,
// not an error; nothing is persisted in that case.
func (s *TripStore) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Trip, 0, len(s.trips))
	for _, t := range s.trips {
		if t.ID != id {
			next = append(next, t)
		}
	}
	if len(next) == len(s.trips) {
		return nil
	}

	if err := s.persist(ctx, next); err != nil {
		return fmt.Errorf("store.TripStore.DeleteTrip: %w", err)
	}
	return nil
}

// AddActivity appends an activity with a freshly assigned id to the day
// matching date in the given trip. ok=false when the trip or the day does
// not exist; the error reports persistence failures only.
func (s *TripStore) AddActivity(ctx context.Context, tripID uuid.UUID, date string, draft domain.ActivityDraft) (domain.Activity, bool, error) {
	activity := domain.Activity{
		ID:          uuid.New(),
		Title:       draft.Title,
		ImageURL:    draft.ImageURL,
		Description: draft.Description,
		Time:        draft.Time,
		Location:    draft.Location,
		Type:        draft.Type,
		TimeOfDay:   draft.TimeOfDay,
		Coordinates: draft.Coordinates,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, found := s.withDay(tripID, date, func(day *domain.DayItinerary) bool {
		day.Activities = append(day.Activities, activity.Clone())
		return true
	})
	if !found {
		return domain.Activity{}, false, nil
	}

	if err := s.persist(ctx, next); err != nil {
		return domain.Activity{}, false, fmt.Errorf("store.TripStore.AddActivity: %w", err)
	}
	return activity.Clone(), true, nil
}

// UpdateActivity applies the patch to the matching activity, preserving its
// id. ok=false when the trip, day, or activity does not exist.
func (s *TripStore) UpdateActivity(ctx context.Context, tripID uuid.UUID, date string, activityID uuid.UUID, patch domain.ActivityPatch) (domain.Activity, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated domain.Activity
	next, found := s.withDay(tripID, date, func(day *domain.DayItinerary) bool {
		for i, a := range day.Activities {
			if a.ID == activityID {
				updated = patch.Apply(a)
				day.Activities[i] = updated
				return true
			}
		}
		return false
	})
	if !found {
		return domain.Activity{}, false, nil
	}

	if err := s.persist(ctx, next); err != nil {
		return domain.Activity{}, false, fmt.Errorf("store.TripStore.UpdateActivity: %w", err)
	}
	return updated.Clone(), true, nil
}

// DeleteActivity removes the matching activity from its day, leaving the
// other activities' order untouched. ok=false when the trip, day, or
// activity does not exist.
func (s *TripStore) DeleteActivity(ctx context.Context, tripID uuid.UUID, date string, activityID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, found := s.withDay(tripID, date, func(day *domain.DayItinerary) bool {
		kept := make([]domain.Activity, 0, len(day.Activities))
		removed := false
		for _, a := range day.Activities {
			if a.ID == activityID {
				removed = true
				continue
			}
			kept = append(kept, a)
		}
		day.Activities = kept
		return removed
	})
	if !found {
		return false, nil
	}

	if err := s.persist(ctx, next); err != nil {
		return false, fmt.Errorf("store.TripStore.DeleteActivity: %w", err)
	}
	return true, nil
}

// withDay derives a new trip list in which fn has been applied to the day
// matching (tripID, date). The matched trip is deep-cloned so the current
// snapshot is never mutated; all other trips are carried over as-is. fn
// reports whether it found what it was looking for inside the day. Caller
// must hold s.mu.
func (s *TripStore) withDay(tripID uuid.UUID, date string, fn func(day *domain.DayItinerary) bool) ([]domain.Trip, bool) {
	found := false
	next := make([]domain.Trip, len(s.trips))
	for i, t := range s.trips {
		if t.ID != tripID {
			next[i] = t
			continue
		}
		ct := t.Clone()
		for j := range ct.Itinerary {
			if ct.Itinerary[j].Date != date {
				continue
			}
			found = fn(&ct.Itinerary[j])
			break
		}
		next[i] = ct
	}
	return next, found
}

// persist writes trips to storage and adopts it as the new snapshot on
// success. A failed save leaves the in-memory state untouched, so memory and
// storage cannot diverge. Caller must hold s.mu.
func (s *TripStore) persist(ctx context.Context, trips []domain.Trip) error {
	b, err := json.Marshal(trips)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := s.storage.Save(ctx, tripsKey, string(b)); err != nil {
		s.log.ErrorContext(ctx, "failed to save trips", "key", tripsKey, "error", err)
		return err
	}
	s.trips = trips
	return nil
}
