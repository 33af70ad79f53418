package program

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyTitle       = errors.New("program title cannot be empty")
	ErrEmptyDescription = errors.New("program description cannot be empty")
)

// Session is one scheduled session of an education program.
type Session struct {
	Date     string `json:"date"`
	Topic    string `json:"topic"`
	Location string `json:"location"`
}

// Program is one education program.
type Program struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription string    `json:"longDescription"`
	CallToAction    string    `json:"callToAction"`
	ImageURL        string    `json:"imageUrl"`
	TargetAudience  string    `json:"targetAudience"`
	GalleryImages   []string  `json:"galleryImages"`
	Schedule        []Session `json:"schedule"`
}

// Validate checks if the Program has valid data.
func (p *Program) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(p.Description) == "" {
		return ErrEmptyDescription
	}
	return nil
}

// EnsureDefaults backfills nil array sub-fields.
func (p *Program) EnsureDefaults() {
	if p.GalleryImages == nil {
		p.GalleryImages = []string{}
	}
	if p.Schedule == nil {
		p.Schedule = []Session{}
	}
}
