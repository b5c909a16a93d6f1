// Package itinerary generates the day-by-day activity plan for a new trip.
// Generation is a pure draw over fixed template pools; the only state is the
// random source, which is injected so tests can be deterministic.
package itinerary

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tripflow/backend/internal/domain"
)

// nightThreshold is the cut-off for the night-slot draw: a uniform value
// above it (probability 0.4) adds a night activity even without the
// nightlife interest.
const nightThreshold = 0.6

// Generator produces the activities for one itinerary day at a time.
// Safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a Generator seeded from the current time.
func New() *Generator {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource returns a Generator drawing from src. Tests pass a fixed
// seed for reproducible output.
func NewWithSource(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// DayActivities returns the generated activities for one trip day in fixed
// slot order: morning, afternoon, evening, then optionally night. Every
// activity gets a fresh ID and location set to the destination.
//
// The night slot is included when interests contain "nightlife", or
// otherwise with probability 0.4. dayIndex is accepted for future per-day
// variation; today every day draws independently from the same pools.
func (g *Generator) DayActivities(dayIndex int, destination string, interests []string) []domain.Activity {
	_ = dayIndex

	g.mu.Lock()
	defer g.mu.Unlock()

	activities := []domain.Activity{
		g.instantiate(g.pick(morningTemplates), destination),
		g.instantiate(g.pick(afternoonTemplates), destination),
		g.instantiate(g.pick(eveningTemplates), destination),
	}

	if containsInterest(interests, domain.InterestNightlife) || g.rnd.Float64() > nightThreshold {
		activities = append(activities, g.instantiate(g.pick(nightTemplates), destination))
	}

	return activities
}

// pick selects one template uniformly at random from pool.
func (g *Generator) pick(pool []template) template {
	return pool[g.rnd.Intn(len(pool))]
}

// instantiate turns a template into a concrete Activity for the destination.
func (g *Generator) instantiate(tpl template, destination string) domain.Activity {
	images := imagePools[tpl.image]
	return domain.Activity{
		ID:          uuid.New(),
		Title:       tpl.title,
		Type:        tpl.typ,
		Time:        tpl.clock,
		TimeOfDay:   tpl.slot,
		Description: tpl.description,
		Location:    destination,
		ImageURL:    images[g.rnd.Intn(len(images))],
	}
}

func containsInterest(interests []string, label string) bool {
	for _, in := range interests {
		if in == label {
			return true
		}
	}
	return false
}
