package relief

import (
	"errors"
	"strings"
)

// Campaign statuses
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// ValidStatuses contains all valid status values.
var ValidStatuses = []string{StatusActive, StatusCompleted}

// Domain errors
var (
	ErrEmptyTitle     = errors.New("relief project title cannot be empty")
	ErrInvalidStatus  = errors.New("relief project status must be one of: active, completed")
	ErrNegativeRaised = errors.New("raised amount cannot be negative")
	ErrInvalidGoal    = errors.New("fundraising goal must be greater than zero")
)

// Project is one relief fundraising campaign.
type Project struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	ImageURL    string  `json:"imageUrl"`
	Goal        float64 `json:"goal"`
	Raised      float64 `json:"raised"`
}

// Validate checks if the Project has valid data.
// PRE: Project struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyTitle
	}
	if !isValidStatus(p.Status) {
		return ErrInvalidStatus
	}
	if p.Raised < 0 {
		return ErrNegativeRaised
	}
	if p.Goal <= 0 {
		return ErrInvalidGoal
	}
	return nil
}

// ProgressPercent returns the funding progress for the donation bar, clamped
// to [0, 100]. Over-funded campaigns report exactly 100 so the bar never
// overflows its track; negative or zero raised reports 0.
// INVARIANT: 0 <= result <= 100 for any Raised/Goal combination
func (p *Project) ProgressPercent() float64 {
	if p.Goal <= 0 || p.Raised <= 0 {
		return 0
	}
	pct := p.Raised / p.Goal * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// IsActive returns true if the campaign is still accepting donations.
func (p *Project) IsActive() bool {
	return p.Status == StatusActive
}

// RecordDonation adds a completed donation amount to the raised total.
// PRE: amount > 0
// POST: Raised is increased by amount
func (p *Project) RecordDonation(amount float64) error {
	if amount <= 0 {
		return errors.New("donation amount must be positive")
	}
	p.Raised += amount
	return nil
}

func isValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}
