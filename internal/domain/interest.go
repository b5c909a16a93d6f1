package domain

// Interest is an entry in the interest catalog clients render during
// onboarding and trip creation. Icon and Color are hints for the picker UI.
type Interest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// InterestNightlife is the interest label that forces a night slot during
// itinerary generation.
const InterestNightlife = "nightlife"

// Interests is the catalog of known interest labels.
var Interests = []Interest{
	{ID: "adventure", Name: "Adventure", Icon: "mountain", Color: "#FF6B6B"},
	{ID: "culture", Name: "Culture", Icon: "landmark", Color: "#4ECDC4"},
	{ID: "food", Name: "Food & Dining", Icon: "utensils", Color: "#FFD93D"},
	{ID: "nature", Name: "Nature", Icon: "trees", Color: "#6BCF7F"},
	{ID: "beach", Name: "Beach", Icon: "waves", Color: "#45B7D1"},
	{ID: "shopping", Name: "Shopping", Icon: "shopping-bag", Color: "#F38181"},
	{ID: InterestNightlife, Name: "Nightlife", Icon: "music", Color: "#A78BFA"},
	{ID: "relaxation", Name: "Relaxation", Icon: "spa", Color: "#FCA5A5"},
	{ID: "history", Name: "History", Icon: "book-open", Color: "#FBBF24"},
	{ID: "sports", Name: "Sports", Icon: "dumbbell", Color: "#34D399"},
	{ID: "photography", Name: "Photography", Icon: "camera", Color: "#818CF8"},
	{ID: "wildlife", Name: "Wildlife", Icon: "bird", Color: "#FB923C"},
}
