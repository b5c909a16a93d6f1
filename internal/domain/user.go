package domain

// TravelStyle is the user's preferred style of travel.
type TravelStyle string

const (
	StyleAdventure  TravelStyle = "adventure"
	StyleRelaxation TravelStyle = "relaxation"
	StyleCulture    TravelStyle = "culture"
	StyleMixed      TravelStyle = "mixed"
)

// Valid reports whether s is one of the known travel styles.
func (s TravelStyle) Valid() bool {
	switch s {
	case StyleAdventure, StyleRelaxation, StyleCulture, StyleMixed:
		return true
	}
	return false
}

// BudgetPreference is the user's preferred spending level.
type BudgetPreference string

const (
	BudgetLow      BudgetPreference = "budget"
	BudgetModerate BudgetPreference = "moderate"
	BudgetLuxury   BudgetPreference = "luxury"
)

// Valid reports whether b is one of the known budget preferences.
func (b BudgetPreference) Valid() bool {
	switch b {
	case BudgetLow, BudgetModerate, BudgetLuxury:
		return true
	}
	return false
}

// UserPreferences is the preference data captured during onboarding.
// Interests is treated as a set of labels even though the slice does not
// enforce uniqueness.
type UserPreferences struct {
	Name             string           `json:"name"`
	TravelStyle      TravelStyle      `json:"travelStyle"`
	BudgetPreference BudgetPreference `json:"budgetPreference"`
	Interests        []string         `json:"interests"`
}

// Clone returns a deep copy of the preferences.
func (p UserPreferences) Clone() UserPreferences {
	out := p
	if p.Interests != nil {
		out.Interests = append([]string(nil), p.Interests...)
	}
	return out
}

// OnboardingData is the full onboarding record: preferences plus the
// completion flag. Exactly one instance exists per installation, persisted
// under a single storage key.
type OnboardingData struct {
	UserPreferences
	HasCompletedOnboarding bool `json:"hasCompletedOnboarding"`
}

// Clone returns a deep copy of the record.
func (d OnboardingData) Clone() OnboardingData {
	return OnboardingData{
		UserPreferences:        d.UserPreferences.Clone(),
		HasCompletedOnboarding: d.HasCompletedOnboarding,
	}
}

// DefaultOnboardingData returns the built-in record used before onboarding
// completes and after a reset.
func DefaultOnboardingData() OnboardingData {
	return OnboardingData{
		UserPreferences: UserPreferences{
			Name:             "",
			TravelStyle:      StyleMixed,
			BudgetPreference: BudgetModerate,
			Interests:        []string{},
		},
		HasCompletedOnboarding: false,
	}
}

// PreferencesPatch is a partial update to UserPreferences. Nil fields are
// left unchanged. The completion flag cannot be touched through a patch;
// only CompleteOnboarding sets it.
type PreferencesPatch struct {
	Name             *string           `json:"name,omitempty"`
	TravelStyle      *TravelStyle      `json:"travelStyle,omitempty"`
	BudgetPreference *BudgetPreference `json:"budgetPreference,omitempty"`
	Interests        *[]string         `json:"interests,omitempty"`
}

// Apply returns a copy of d with the non-nil patch fields applied.
func (p PreferencesPatch) Apply(d OnboardingData) OnboardingData {
	out := d.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.TravelStyle != nil {
		out.TravelStyle = *p.TravelStyle
	}
	if p.BudgetPreference != nil {
		out.BudgetPreference = *p.BudgetPreference
	}
	if p.Interests != nil {
		out.Interests = append([]string(nil), *p.Interests...)
	}
	return out
}
