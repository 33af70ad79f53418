package project

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyName     = errors.New("project name cannot be empty")
	ErrEmptyLocation = errors.New("project location cannot be empty")
)

// ImpactStat is one headline figure on a project detail page, e.g.
// {Value: "12,000", Label: "Trees planted"}.
type ImpactStat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Project is one conservation project.
type Project struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Location        string       `json:"location"`
	Description     string       `json:"description"`
	LongDescription string       `json:"longDescription"`
	ImageURL        string       `json:"imageUrl"`
	Goals           []string     `json:"goals"`
	ImpactStats     []ImpactStat `json:"impactStats"`
	GalleryImages   []string     `json:"galleryImages"`
}

// Validate checks if the Project has valid data.
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(p.Location) == "" {
		return ErrEmptyLocation
	}
	return nil
}

// EnsureDefaults backfills nil array sub-fields so the admin form can always
// append/remove positionally.
func (p *Project) EnsureDefaults() {
	if p.Goals == nil {
		p.Goals = []string{}
	}
	if p.ImpactStats == nil {
		p.ImpactStats = []ImpactStat{}
	}
	if p.GalleryImages == nil {
		p.GalleryImages = []string{}
	}
}
