package itinerary

import "github.com/tripflow/backend/internal/domain"

// imageKind keys the image pools. Every template draws its image from one of
// these pools rather than carrying a fixed URL.
type imageKind string

const (
	imageFood        imageKind = "food"
	imageSightseeing imageKind = "sightseeing"
	imageNightlife   imageKind = "nightlife"
)

// imagePools holds representative photos per content kind. The URLs are the
// sample set shipped with the mobile client.
var imagePools = map[imageKind][]string{
	imageFood: {
		"https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=800&q=80",
		"https://images.unsplash.com/photo-1552566626-52f8b828add9?w=800&q=80",
		"https://images.unsplash.com/photo-1559339352-11d035aa65de?w=800&q=80",
		"https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=800&q=80",
	},
	imageSightseeing: {
		"https://images.unsplash.com/photo-1533105079780-92b9be482077?w=800&q=80",
		"https://images.unsplash.com/photo-1523906834658-6e24ef2386f9?w=800&q=80",
		"https://images.unsplash.com/photo-1476514525535-07fb3b4ae5f1?w=800&q=80",
		"https://images.unsplash.com/photo-1502602898657-3e91760cbb34?w=800&q=80",
	},
	imageNightlife: {
		"https://images.unsplash.com/photo-1492684223066-81342ee5ff30?w=800&q=80",
		"https://images.unsplash.com/photo-1514525253440-b393332569ec?w=800&q=80",
	},
}

// template is a canned activity the generator instantiates per day. It is
// static content, not an algorithm: titles, clock times, and descriptions are
// the sample data pool.
type template struct {
	title       string
	typ         domain.ActivityType
	clock       string
	slot        domain.TimeOfDay
	description string
	image       imageKind
}

var morningTemplates = []template{
	{
		title:       "Local Breakfast Experience",
		typ:         domain.ActivityRestaurant,
		clock:       "9:00 AM",
		slot:        domain.Morning,
		description: "Start your day with authentic local pastries and coffee in a charming cafe.",
		image:       imageFood,
	},
	{
		title:       "Historic District Walking Tour",
		typ:         domain.ActivityGeneric,
		clock:       "10:30 AM",
		slot:        domain.Morning,
		description: "Explore the hidden gems and historic streets with a knowledgeable local guide.",
		image:       imageSightseeing,
	},
	{
		title:       "Famous Museum Visit",
		typ:         domain.ActivityGeneric,
		clock:       "11:00 AM",
		slot:        domain.Morning,
		description: "Immerse yourself in art and history at the city's most renowned museum.",
		image:       imageSightseeing,
	},
}

var afternoonTemplates = []template{
	{
		title:       "Lunch with a View",
		typ:         domain.ActivityRestaurant,
		clock:       "1:00 PM",
		slot:        domain.Afternoon,
		description: "Enjoy delicious local cuisine while taking in panoramic views of the city.",
		image:       imageFood,
	},
	{
		title:       "City Landmark Exploration",
		typ:         domain.ActivityGeneric,
		clock:       "2:30 PM",
		slot:        domain.Afternoon,
		description: "Visit iconic landmarks and capture beautiful photos of the architecture.",
		image:       imageSightseeing,
	},
	{
		title:       "Local Artisan Market",
		typ:         domain.ActivityGeneric,
		clock:       "4:00 PM",
		slot:        domain.Afternoon,
		description: "Browse unique handmade crafts and souvenirs at the bustling local market.",
		image:       imageSightseeing,
	},
}

var eveningTemplates = []template{
	{
		title:       "Sunset Scenic Point",
		typ:         domain.ActivityGeneric,
		clock:       "6:30 PM",
		slot:        domain.Evening,
		description: "Watch the sun go down from the best vantage point in the city.",
		image:       imageSightseeing,
	},
	{
		title:       "Traditional Dinner",
		typ:         domain.ActivityRestaurant,
		clock:       "8:00 PM",
		slot:        domain.Evening,
		description: "Savor traditional dishes prepared with fresh local ingredients.",
		image:       imageFood,
	},
}

var nightTemplates = []template{
	{
		title:       "Evening Cultural Show",
		typ:         domain.ActivityGeneric,
		clock:       "9:30 PM",
		slot:        domain.Night,
		description: "Experience local music and dance performances in a vibrant atmosphere.",
		image:       imageNightlife,
	},
	{
		title:       "Late Night Lounge",
		typ:         domain.ActivityGeneric,
		clock:       "10:30 PM",
		slot:        domain.Night,
		description: "Relax with signature cocktails in a sophisticated lounge setting.",
		image:       imageNightlife,
	},
}
