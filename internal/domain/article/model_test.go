package article

import "testing"

func validArticle() Article {
	return Article{
		ID:       "1",
		Title:    "Shoebill Population Stabilizes",
		Excerpt:  "Survey results from Mabamba.",
		Content:  "The annual count shows encouraging signs.",
		Category: CategoryConservation,
		Date:     "2024-03-01",
	}
}

func TestValidate_Valid(t *testing.T) {
	a := validArticle()
	if err := a.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// TestValidate_Errors tests each rejection rule.
func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Article)
		want   error
	}{
		{"empty title", func(a *Article) { a.Title = " " }, ErrEmptyTitle},
		{"empty content", func(a *Article) { a.Content = "" }, ErrEmptyContent},
		{"bad category", func(a *Article) { a.Category = "Opinion" }, ErrInvalidCategory},
	}
	for _, tc := range cases {
		a := validArticle()
		tc.mutate(&a)
		if err := a.Validate(); err != tc.want {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}

// TestValidate_ReliefUpdateCategory tests the two-word category is accepted.
func TestValidate_ReliefUpdateCategory(t *testing.T) {
	a := validArticle()
	a.Category = CategoryReliefUpdate
	if err := a.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestEnsureDefaults(t *testing.T) {
	a := Article{}
	a.EnsureDefaults()
	if a.GalleryImages == nil {
		t.Error("GalleryImages should be backfilled to an empty slice")
	}
}
