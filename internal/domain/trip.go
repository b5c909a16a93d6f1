// Package domain contains the core data types for the TripFlow application.
// This package has no dependencies beyond uuid and is imported by every other
// internal package (storage, store, itinerary, handler).
//
// JSON field names are camelCase because the persisted blob format is shared
// with the mobile client's local cache; changing a tag breaks round-tripping
// of existing records.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityType classifies what kind of event an Activity is.
type ActivityType string

const (
	ActivityFlight     ActivityType = "flight"
	ActivityHotel      ActivityType = "hotel"
	ActivityRestaurant ActivityType = "restaurant"
	ActivityGeneric    ActivityType = "activity"
	ActivityTransport  ActivityType = "transport"
	ActivityOther      ActivityType = "other"
)

// Valid reports whether t is one of the known activity types.
func (t ActivityType) Valid() bool {
	switch t {
	case ActivityFlight, ActivityHotel, ActivityRestaurant, ActivityGeneric, ActivityTransport, ActivityOther:
		return true
	}
	return false
}

// TimeOfDay is the slot an Activity occupies within a day.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
	Night     TimeOfDay = "night"
)

// Valid reports whether d is one of the known time-of-day slots.
// The empty value is also valid: the slot is optional on an Activity.
func (d TimeOfDay) Valid() bool {
	switch d {
	case "", Morning, Afternoon, Evening, Night:
		return true
	}
	return false
}

// Coordinates is a latitude/longitude pair used by the map-rendering client.
// Most generated activities have none.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Activity is a single planned event within a day: a meal, a sight, a
// transport leg. ID is unique within the day's activity list and never
// changes once assigned.
type Activity struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	Description string       `json:"description,omitempty"`
	Time        string       `json:"time,omitempty"`
	Location    string       `json:"location,omitempty"`
	Type        ActivityType `json:"type"`
	TimeOfDay   TimeOfDay    `json:"timeOfDay,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Clone returns a deep copy of the activity.
func (a Activity) Clone() Activity {
	out := a
	if a.Coordinates != nil {
		c := *a.Coordinates
		out.Coordinates = &c
	}
	return out
}

// ActivityDraft is an Activity before the store assigns its identifier.
// Callers of TripStore.AddActivity supply one of these; the store copies the
// fields onto a fresh Activity with a generated ID.
type ActivityDraft struct {
	Title       string       `json:"title"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	Description string       `json:"description,omitempty"`
	Time        string       `json:"time,omitempty"`
	Location    string       `json:"location,omitempty"`
	Type        ActivityType `json:"type"`
	TimeOfDay   TimeOfDay    `json:"timeOfDay,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// ActivityPatch is a partial update to an Activity. Nil fields are left
// unchanged; the ID of the patched activity is always preserved. A typed
// patch applied field-by-field replaces the untyped object spreading the
// mobile client used.
type ActivityPatch struct {
	Title       *string       `json:"title,omitempty"`
	ImageURL    *string       `json:"imageUrl,omitempty"`
	Description *string       `json:"description,omitempty"`
	Time        *string       `json:"time,omitempty"`
	Location    *string       `json:"location,omitempty"`
	Type        *ActivityType `json:"type,omitempty"`
	TimeOfDay   *TimeOfDay    `json:"timeOfDay,omitempty"`
	Coordinates *Coordinates  `json:"coordinates,omitempty"`
}

// Apply returns a copy of a with the non-nil patch fields applied.
func (p ActivityPatch) Apply(a Activity) Activity {
	out := a.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.ImageURL != nil {
		out.ImageURL = *p.ImageURL
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Time != nil {
		out.Time = *p.Time
	}
	if p.Location != nil {
		out.Location = *p.Location
	}
	if p.Type != nil {
		out.Type = *p.Type
	}
	if p.TimeOfDay != nil {
		out.TimeOfDay = *p.TimeOfDay
	}
	if p.Coordinates != nil {
		c := *p.Coordinates
		out.Coordinates = &c
	}
	return out
}

// DayItinerary is one calendar day of a trip's plan. Date is an ISO
// "YYYY-MM-DD" string, unique within the trip, and is the lookup key for all
// day-scoped mutations. Activity order is display order.
type DayItinerary struct {
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
}

// Clone returns a deep copy of the day.
func (d DayItinerary) Clone() DayItinerary {
	out := DayItinerary{Date: d.Date, Activities: make([]Activity, len(d.Activities))}
	for i, a := range d.Activities {
		out.Activities[i] = a.Clone()
	}
	return out
}

// Trip is the top-level aggregate: a user-planned journey with a destination,
// an inclusive date range, and a generated day-by-day itinerary. The
// itinerary always has exactly one entry per calendar day from StartDate to
// EndDate inclusive, in chronological order.
type Trip struct {
	ID          uuid.UUID      `json:"id"`
	Destination string         `json:"destination"`
	StartDate   string         `json:"startDate"`
	EndDate     string         `json:"endDate"`
	Travelers   int            `json:"travelers"`
	ImageURL    string         `json:"imageUrl,omitempty"`
	Interests   []string       `json:"interests,omitempty"`
	Itinerary   []DayItinerary `json:"itinerary"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// Clone returns a deep copy of the trip.
func (t Trip) Clone() Trip {
	out := t
	if t.Interests != nil {
		out.Interests = append([]string(nil), t.Interests...)
	}
	out.Itinerary = make([]DayItinerary, len(t.Itinerary))
	for i, d := range t.Itinerary {
		out.Itinerary[i] = d.Clone()
	}
	return out
}

// TripDraft carries the caller-supplied fields of a new trip. The store
// fills in the ID, CreatedAt, and the generated itinerary. StartDate and
// EndDate are ISO "YYYY-MM-DD" dates; EndDate >= StartDate is checked by the
// caller before the store is invoked.
type TripDraft struct {
	Destination string
	StartDate   string
	EndDate     string
	Travelers   int
	ImageURL    string
	Interests   []string
}
