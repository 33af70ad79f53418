package browser_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/playwright-community/playwright-go"
)

// TestHomePageListsSeededTours boots the full stack and checks that the
// landing page renders the seeded tour catalogue fetched from the API.
func TestHomePageListsSeededTours(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}
	app := newTestApp(t)
	page := app.newPage(t)

	if _, err := page.Goto(app.BaseURL + "/"); err != nil {
		t.Fatalf("failed to navigate to home: %v", err)
	}

	heading := page.Locator("header h1")
	if err := heading.WaitFor(playwright.LocatorWaitForOptions{Timeout: playwright.Float(10000)}); err != nil {
		t.Fatalf("header never appeared: %v", err)
	}
	text, err := heading.TextContent()
	if err != nil {
		t.Fatalf("failed to read header: %v", err)
	}
	if text != "Greenvours" {
		t.Errorf("got header %q, want Greenvours", text)
	}

	// The inline script pulls /api/tours and renders one card per tour.
	firstTour := page.Locator(".tour h3").First()
	if err := firstTour.WaitFor(playwright.LocatorWaitForOptions{Timeout: playwright.Float(10000)}); err != nil {
		t.Fatalf("tour cards never rendered: %v", err)
	}

	cards := page.Locator(".tour")
	count, err := cards.Count()
	if err != nil {
		t.Fatalf("failed to count tour cards: %v", err)
	}
	if count != 6 {
		t.Errorf("expected 6 seeded tour cards, got %d", count)
	}

	body, err := page.Locator("main").TextContent()
	if err != nil {
		t.Fatalf("failed to read main content: %v", err)
	}
	if !strings.Contains(body, "Bwindi Gorilla Trek") {
		t.Errorf("seeded tour title missing from page: %q", body)
	}
}

// TestPublicAPIServesSeededContent checks the JSON surface the pages consume.
func TestPublicAPIServesSeededContent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}
	app := newTestApp(t)

	resp, err := http.Get(app.BaseURL + "/api/relief")
	if err != nil {
		t.Fatalf("failed to fetch relief projects: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d, want 200", resp.StatusCode)
	}
	if got := resp.Header.Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("missing security header, got %q", got)
	}

	var projects []struct {
		Title  string `json:"title"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&projects); err != nil {
		t.Fatalf("failed to decode relief projects: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 seeded relief projects, got %d", len(projects))
	}
	foundActive := false
	for _, p := range projects {
		if p.Status == "active" {
			foundActive = true
		}
	}
	if !foundActive {
		t.Error("no active relief project in seeded data")
	}
}
