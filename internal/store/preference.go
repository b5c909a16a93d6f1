package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/tripflow/backend/internal/domain"
	"github.com/tripflow/backend/internal/storage"
)

// onboardingKey is the storage key for the serialized onboarding record.
const onboardingKey = "@onboarding"

// PreferenceStore owns the single per-installation onboarding record.
type PreferenceStore struct {
	storage storage.Store
	log     *slog.Logger

	mu     sync.Mutex
	data   domain.OnboardingData
	loaded bool
}

// NewPreferenceStore constructs a PreferenceStore over the given storage
// backend. The record starts at the built-in defaults until Load runs.
func NewPreferenceStore(st storage.Store, log *slog.Logger) *PreferenceStore {
	return &PreferenceStore{
		storage: st,
		log:     log,
		data:    domain.DefaultOnboardingData(),
	}
}

// Load reads the persisted onboarding record. Absent means first run: the
// defaults stand. A blob that fails to deserialize is logged, erased, and
// replaced by the defaults; parse failures never surface to the caller.
func (s *PreferenceStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.storage.Load(ctx, onboardingKey)
	if err != nil {
		return fmt.Errorf("store.PreferenceStore.Load: %w", err)
	}
	if !ok {
		s.loaded = true
		return nil
	}

	var data domain.OnboardingData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		s.log.WarnContext(ctx, "corrupt onboarding record, resetting", "key", onboardingKey, "error", err)
		if rerr := s.storage.Remove(ctx, onboardingKey); rerr != nil {
			s.log.ErrorContext(ctx, "failed to erase corrupt onboarding record", "key", onboardingKey, "error", rerr)
		}
		data = domain.DefaultOnboardingData()
	}

	s.data = data
	s.loaded = true
	return nil
}

// Loaded reports whether Load has completed.
func (s *PreferenceStore) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Data returns a deep copy of the current onboarding record.
func (s *PreferenceStore) Data() domain.OnboardingData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// UpdatePreferences merges the patch into the current record and persists
// the result. Unknown enum values are rejected with ErrValidation before
// anything is written; validation happens at the store boundary, not just
// in clients.
func (s *PreferenceStore) UpdatePreferences(ctx context.Context, patch domain.PreferencesPatch) (domain.OnboardingData, error) {
	if patch.TravelStyle != nil && !patch.TravelStyle.Valid() {
		return domain.OnboardingData{}, fmt.Errorf("store.PreferenceStore.UpdatePreferences: %w: unknown travel style %q", domain.ErrValidation, *patch.TravelStyle)
	}
	if patch.BudgetPreference != nil && !patch.BudgetPreference.Valid() {
		return domain.OnboardingData{}, fmt.Errorf("store.PreferenceStore.UpdatePreferences: %w: unknown budget preference %q", domain.ErrValidation, *patch.BudgetPreference)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := patch.Apply(s.data)
	if err := s.persist(ctx, next); err != nil {
		return domain.OnboardingData{}, fmt.Errorf("store.PreferenceStore.UpdatePreferences: %w", err)
	}
	return next.Clone(), nil
}

// CompleteOnboarding replaces the preference fields wholesale and sets the
// completion flag.
func (s *PreferenceStore) CompleteOnboarding(ctx context.Context, prefs domain.UserPreferences) (domain.OnboardingData, error) {
	if !prefs.TravelStyle.Valid() {
		return domain.OnboardingData{}, fmt.Errorf("store.PreferenceStore.CompleteOnboarding: %w: unknown travel style %q", domain.ErrValidation, prefs.TravelStyle)
	}
	if !prefs.BudgetPreference.Valid() {
		return domain.OnboardingData{}, fmt.Errorf("store.PreferenceStore.CompleteOnboarding: %w: unknown budget preference %q", domain.ErrValidation, prefs.BudgetPreference)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := domain.OnboardingData{
		UserPreferences:        prefs.Clone(),
		HasCompletedOnboarding: true,
	}
	if err := s.persist(ctx, next); err != nil {
		return domain.OnboardingData{}, fmt.Errorf("store.PreferenceStore.CompleteOnboarding: %w", err)
	}
	return next.Clone(), nil
}

// ResetOnboarding restores the built-in default record and persists it.
func (s *PreferenceStore) ResetOnboarding(ctx context.Context) (domain.OnboardingData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := domain.DefaultOnboardingData()
	if err := s.persist(ctx, next); err != nil {
		return domain.OnboardingData{}, fmt.Errorf("store.PreferenceStore.ResetOnboarding: %w", err)
	}
	return next.Clone(), nil
}

// persist writes data to storage and adopts it on success. Caller must hold
// s.mu.
func (s *PreferenceStore) persist(ctx context.Context, data domain.OnboardingData) error {
	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := s.storage.Save(ctx, onboardingKey, string(b)); err != nil {
		s.log.ErrorContext(ctx, "failed to save onboarding record", "key", onboardingKey, "error", err)
		return err
	}
	s.data = data
	return nil
}
