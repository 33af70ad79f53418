package article

import (
	"errors"
	"strings"
)

// Categories
const (
	CategoryConservation = "Conservation"
	CategoryTravel       = "Travel"
	CategoryReliefUpdate = "Relief Update"
)

// ValidCategories contains all valid category values.
var ValidCategories = []string{CategoryConservation, CategoryTravel, CategoryReliefUpdate}

// Domain errors
var (
	ErrEmptyTitle      = errors.New("article title cannot be empty")
	ErrEmptyContent    = errors.New("article content cannot be empty")
	ErrInvalidCategory = errors.New("article category must be one of: Conservation, Travel, Relief Update")
)

// Article is one blog/news post. Content is Markdown; Excerpt is the plain
// summary shown on list pages.
type Article struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Excerpt       string   `json:"excerpt"`
	Content       string   `json:"content"`
	ImageURL      string   `json:"imageUrl"`
	GalleryImages []string `json:"galleryImages"`
	Category      string   `json:"category"`
	Date          string   `json:"date"`
}

// Validate checks if the Article has valid data.
func (a *Article) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(a.Content) == "" {
		return ErrEmptyContent
	}
	if !isValidCategory(a.Category) {
		return ErrInvalidCategory
	}
	return nil
}

// EnsureDefaults backfills nil array sub-fields.
func (a *Article) EnsureDefaults() {
	if a.GalleryImages == nil {
		a.GalleryImages = []string{}
	}
}

func isValidCategory(c string) bool {
	for _, v := range ValidCategories {
		if v == c {
			return true
		}
	}
	return false
}
