package team

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName = errors.New("team member name cannot be empty")
	ErrEmptyRole = errors.New("team member role cannot be empty")
)

// Member is one staff profile on the mission page. Members are listed in
// their stored order, not chronologically.
type Member struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
	ImageURL string `json:"imageUrl"`
}

// Validate checks if the Member has valid data.
func (m *Member) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(m.Role) == "" {
		return ErrEmptyRole
	}
	return nil
}
