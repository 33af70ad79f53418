package tour

import "testing"

func validTour() Tour {
	return Tour{
		ID:         "1",
		Title:      "Bwindi Gorilla Trek",
		Region:     "Bwindi Impenetrable Forest",
		Activity:   ActivityWildlife,
		Duration:   3,
		Difficulty: DifficultyChallenging,
		Price:      1450,
	}
}

// TestValidate_Valid tests a populated tour passes validation.
func TestValidate_Valid(t *testing.T) {
	tr := validTour()
	if err := tr.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// TestValidate_Errors tests each rejection rule.
func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Tour)
		want   error
	}{
		{"empty title", func(tr *Tour) { tr.Title = "" }, ErrEmptyTitle},
		{"empty region", func(tr *Tour) { tr.Region = " " }, ErrEmptyRegion},
		{"bad activity", func(tr *Tour) { tr.Activity = "Skydiving" }, ErrInvalidActivity},
		{"bad difficulty", func(tr *Tour) { tr.Difficulty = "Extreme" }, ErrInvalidDifficulty},
		{"zero duration", func(tr *Tour) { tr.Duration = 0 }, ErrInvalidDuration},
		{"negative price", func(tr *Tour) { tr.Price = -1 }, ErrNegativePrice},
	}
	for _, tc := range cases {
		tr := validTour()
		tc.mutate(&tr)
		if err := tr.Validate(); err != tc.want {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}

// TestEnsureDefaults tests nil array sub-fields are backfilled.
func TestEnsureDefaults(t *testing.T) {
	tr := Tour{}
	tr.EnsureDefaults()
	if tr.Itinerary == nil {
		t.Error("Itinerary should be backfilled to an empty slice")
	}
	if tr.SustainabilityFeatures == nil {
		t.Error("SustainabilityFeatures should be backfilled to an empty slice")
	}

	// Existing values are untouched.
	tr2 := validTour()
	tr2.Itinerary = []ItineraryDay{{Day: 1, Title: "Arrive"}}
	tr2.EnsureDefaults()
	if len(tr2.Itinerary) != 1 {
		t.Error("EnsureDefaults must not replace populated fields")
	}
}
