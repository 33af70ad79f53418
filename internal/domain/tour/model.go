package tour

import (
	"errors"
	"strings"
)

// Activity kinds
const (
	ActivityHiking       = "Hiking"
	ActivityBirdwatching = "Birdwatching"
	ActivityCultural     = "Cultural"
	ActivityWellness     = "Wellness"
	ActivityWildlife     = "Wildlife"
)

// Difficulty levels
const (
	DifficultyEasy        = "Easy"
	DifficultyModerate    = "Moderate"
	DifficultyChallenging = "Challenging"
)

// ValidActivities contains all valid activity values.
var ValidActivities = []string{ActivityHiking, ActivityBirdwatching, ActivityCultural, ActivityWellness, ActivityWildlife}

// ValidDifficulties contains all valid difficulty values.
var ValidDifficulties = []string{DifficultyEasy, DifficultyModerate, DifficultyChallenging}

// Domain errors
var (
	ErrEmptyTitle        = errors.New("tour title cannot be empty")
	ErrEmptyRegion       = errors.New("tour region cannot be empty")
	ErrInvalidActivity   = errors.New("tour activity must be one of: Hiking, Birdwatching, Cultural, Wellness, Wildlife")
	ErrInvalidDifficulty = errors.New("tour difficulty must be one of: Easy, Moderate, Challenging")
	ErrInvalidDuration   = errors.New("tour duration must be at least one day")
	ErrNegativePrice     = errors.New("tour price cannot be negative")
)

// ItineraryDay is one day of a tour's itinerary.
type ItineraryDay struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Guide is the embedded guide profile shown on a tour detail page. Guides are
// not cross-referenced to team members; the sub-object is the whole record.
type Guide struct {
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	ImageURL string `json:"imageUrl"`
}

// Tour is one bookable eco-tour.
type Tour struct {
	ID                     string         `json:"id"`
	Title                  string         `json:"title"`
	Region                 string         `json:"region"`
	Activity               string         `json:"activity"`
	Duration               int            `json:"duration"` // in days
	Difficulty             string         `json:"difficulty"`
	Price                  float64        `json:"price"`
	ImageURL               string         `json:"imageUrl"`
	Description            string         `json:"description"`
	Itinerary              []ItineraryDay `json:"itinerary"`
	SustainabilityFeatures []string       `json:"sustainabilityFeatures"`
	Guide                  Guide          `json:"guide"`
}

// Validate checks if the Tour has valid data.
// PRE: Tour struct is populated
// POST: Returns nil if valid, error otherwise
func (t *Tour) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(t.Region) == "" {
		return ErrEmptyRegion
	}
	if !contains(ValidActivities, t.Activity) {
		return ErrInvalidActivity
	}
	if !contains(ValidDifficulties, t.Difficulty) {
		return ErrInvalidDifficulty
	}
	if t.Duration < 1 {
		return ErrInvalidDuration
	}
	if t.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

// EnsureDefaults backfills nil array sub-fields so forms and renderers never
// see a nil slice.
func (t *Tour) EnsureDefaults() {
	if t.Itinerary == nil {
		t.Itinerary = []ItineraryDay{}
	}
	if t.SustainabilityFeatures == nil {
		t.SustainabilityFeatures = []string{}
	}
}

func contains(valid []string, v string) bool {
	for _, s := range valid {
		if s == v {
			return true
		}
	}
	return false
}
