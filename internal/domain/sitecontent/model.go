// Package sitecontent holds the small singleton-style content blocks: the
// "how we help" cards, the vision statement, and the contact details. Vision
// and contact info are single documents addressed by the fixed key "main".
package sitecontent

import (
	"errors"
	"strings"
)

// SingletonKey is the fixed document key for VisionContent and ContactInfo.
const SingletonKey = "main"

// Domain errors
var (
	ErrEmptyTitle   = errors.New("title cannot be empty")
	ErrEmptyContent = errors.New("content cannot be empty")
	ErrInvalidEmail = errors.New("email must contain '@'")
)

// HowWeHelpItem is one card on the get-involved page.
type HowWeHelpItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate checks if the item has valid data.
func (h *HowWeHelpItem) Validate() error {
	if strings.TrimSpace(h.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// VisionContent is the mission-page vision block.
type VisionContent struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
}

// Validate checks if the vision block has valid data.
func (v *VisionContent) Validate() error {
	if strings.TrimSpace(v.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(v.Content) == "" {
		return ErrEmptyContent
	}
	return nil
}

// ContactInfo is the organisation's published contact details.
type ContactInfo struct {
	ID           string `json:"id"`
	BookingEmail string `json:"bookingEmail"`
	GeneralEmail string `json:"generalEmail"`
	Address      string `json:"address"`
	ImageURL     string `json:"imageUrl"`
}

// Validate checks that any provided email addresses are plausible.
func (c *ContactInfo) Validate() error {
	for _, email := range []string{c.BookingEmail, c.GeneralEmail} {
		if email != "" && !strings.Contains(email, "@") {
			return ErrInvalidEmail
		}
	}
	return nil
}
