package web

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"greenvours/internal/adapters/email"
	"greenvours/internal/adapters/http/middleware"
	"greenvours/internal/adapters/images"
	"greenvours/internal/adapters/payment"
	"greenvours/internal/adapters/storage"
	"greenvours/internal/adapters/storage/docstore"
	"greenvours/internal/application/accessors"
	"greenvours/internal/domain/article"
	"greenvours/internal/domain/contact"
	"greenvours/internal/domain/project"
	"greenvours/internal/domain/subscriber"
	"greenvours/internal/domain/tour"

	_ "modernc.org/sqlite"
)

// Mock collaborators for testing

type stubSender struct {
	sent    []email.SendRequest
	batches [][]email.SendRequest
}

func (s *stubSender) Send(ctx context.Context, req email.SendRequest) (email.SendResult, error) {
	s.sent = append(s.sent, req)
	return email.SendResult{MessageID: "stub", SentAt: time.Now()}, nil
}

func (s *stubSender) SendBatch(ctx context.Context, reqs []email.SendRequest) ([]email.SendResult, error) {
	s.batches = append(s.batches, reqs)
	results := make([]email.SendResult, len(reqs))
	return results, nil
}

type stubReplier struct {
	reply string
}

func (s *stubReplier) GenerateReply(ctx context.Context, msg contact.Message) (string, error) {
	return s.reply, nil
}

// setupTestDeps points the package globals at an in-memory store with stub
// collaborators. Handlers read the globals, so tests must not run in parallel.
func setupTestDeps(t *testing.T) *stubSender {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("init db: %v", err)
	}
	store := docstore.NewSQLiteStore(db)

	sender := &stubSender{}
	deps = &Deps{
		Store:              store,
		Sender:             sender,
		Generator:          &stubReplier{reply: "Thanks for writing in!"},
		Payments:           payment.NewNoopClient(),
		Webhooks:           payment.NewNoopClient(),
		Uploader:           images.NewNoopUploader(),
		DonationSuccessURL: "https://greenvours.test/thanks",
		DonationCancelURL:  "https://greenvours.test/relief",
	}
	deps.users = accessors.Users(store)
	deps.admins = accessors.Admins(store)
	deps.subscribers = accessors.Subscribers(store)
	deps.payments = accessors.Payments(store)

	sessions = middleware.NewSessionStore()
	return sender
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func asAdmin(req *http.Request) *http.Request {
	sess := middleware.Session{UID: "admin-1", Email: "admin@greenvours.org", IsAdmin: true, CreatedAt: time.Now()}
	return req.WithContext(middleware.ContextWithSession(req.Context(), sess))
}

func asMember(req *http.Request) *http.Request {
	sess := middleware.Session{UID: "user-1", Email: "user@example.com", CreatedAt: time.Now()}
	return req.WithContext(middleware.ContextWithSession(req.Context(), sess))
}

func validTourBody(title string) string {
	t := tour.Tour{
		Title:      title,
		Region:     "Western Uganda",
		Activity:   tour.ActivityHiking,
		Duration:   3,
		Difficulty: tour.DifficultyModerate,
		Price:      450,
	}
	raw, _ := json.Marshal(t)
	return string(raw)
}

func TestListToursNewestFirst(t *testing.T) {
	setupTestDeps(t)
	tours := accessors.Tours(deps.Store)
	for _, id := range []string{"2", "1", "3"} {
		if _, err := tours.Add(context.Background(), tour.Tour{
			ID: id, Title: "Tour " + id, Region: "Uganda",
			Activity: tour.ActivityWildlife, Duration: 2, Difficulty: tour.DifficultyEasy,
		}); err != nil {
			t.Fatalf("seed tour %s: %v", id, err)
		}
	}

	rec := httptest.NewRecorder()
	handleListTours(rec, httptest.NewRequest("GET", "/api/tours", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200. Body: %s", rec.Code, rec.Body.String())
	}

	var got []tour.Tour
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 tours, got %d", len(got))
	}
	for i, want := range []string{"3", "2", "1"} {
		if got[i].ID != want {
			t.Errorf("position %d: got id %q, want %q", i, got[i].ID, want)
		}
	}
}

func TestGetTourNotFound(t *testing.T) {
	setupTestDeps(t)

	req := httptest.NewRequest("GET", "/api/tours/missing", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	handleGetTour(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("got status %d, want 404", rec.Code)
	}
}

func TestGetArticleRendersMarkdown(t *testing.T) {
	setupTestDeps(t)
	news := accessors.News(deps.Store)
	if _, err := news.Add(context.Background(), article.Article{
		ID:       "7",
		Title:    "Shoebill Count",
		Excerpt:  "Numbers are up.",
		Content:  "The count shows **strong recovery** this season.",
		Category: article.CategoryConservation,
		Date:     "2024-03-01",
	}); err != nil {
		t.Fatalf("seed article: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/news/7", nil)
	req.SetPathValue("id", "7")
	rec := httptest.NewRecorder()
	handleGetArticle(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200. Body: %s", rec.Code, rec.Body.String())
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	html, _ := got["contentHtml"].(string)
	if !strings.Contains(html, "<strong>strong recovery</strong>") {
		t.Errorf("contentHtml missing rendered markdown: %q", html)
	}
	if got["content"] != "The count shows **strong recovery** this season." {
		t.Errorf("raw content not preserved: %v", got["content"])
	}
}

func TestGetArticleEscapesScripts(t *testing.T) {
	setupTestDeps(t)
	news := accessors.News(deps.Store)
	if _, err := news.Add(context.Background(), article.Article{
		ID:       "8",
		Title:    "Injected",
		Content:  "<script>alert(1)</script>",
		Category: article.CategoryTravel,
	}); err != nil {
		t.Fatalf("seed article: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/news/8", nil)
	req.SetPathValue("id", "8")
	rec := httptest.NewRecorder()
	handleGetArticle(rec, req)

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	html, _ := got["contentHtml"].(string)
	if strings.Contains(html, "<script>") {
		t.Errorf("raw script tag leaked into rendered html: %q", html)
	}
}

func TestGetVisionBeforeSeed(t *testing.T) {
	setupTestDeps(t)
	rec := httptest.NewRecorder()
	handleGetVision(rec, httptest.NewRequest("GET", "/api/vision", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("got status %d, want 404", rec.Code)
	}
}

func TestAdminCreateRequiresSession(t *testing.T) {
	setupTestDeps(t)

	req := jsonRequest("POST", "/api/admin/tours", validTourBody("Gorilla Trek"))
	req.SetPathValue("collection", "tours")
	rec := httptest.NewRecorder()
	handleAdminCreate(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no session: got status %d, want 401", rec.Code)
	}

	req = asMember(jsonRequest("POST", "/api/admin/tours", validTourBody("Gorilla Trek")))
	req.SetPathValue("collection", "tours")
	rec = httptest.NewRecorder()
	handleAdminCreate(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("non-admin session: got status %d, want 403", rec.Code)
	}
}

func TestAdminCRUDFlow(t *testing.T) {
	setupTestDeps(t)
	ctx := context.Background()
	tours := accessors.Tours(deps.Store)

	// Create
	req := asAdmin(jsonRequest("POST", "/api/admin/tours", validTourBody("Gorilla Trek")))
	req.SetPathValue("collection", "tours")
	rec := httptest.NewRecorder()
	handleAdminCreate(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: got status %d, want 201. Body: %s", rec.Code, rec.Body.String())
	}
	var created map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatal("create response missing id")
	}

	// Update
	req = asAdmin(jsonRequest("PUT", "/api/admin/tours/"+id, validTourBody("Gorilla Trek Extended")))
	req.SetPathValue("collection", "tours")
	req.SetPathValue("id", id)
	rec = httptest.NewRecorder()
	handleAdminUpdate(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: got status %d, want 200. Body: %s", rec.Code, rec.Body.String())
	}
	stored, err := tours.Get(ctx, id)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if stored.Title != "Gorilla Trek Extended" {
		t.Errorf("got title %q after update", stored.Title)
	}

	// Delete without confirmation is refused
	req = asAdmin(httptest.NewRequest("DELETE", "/api/admin/tours/"+id, nil))
	req.SetPathValue("collection", "tours")
	req.SetPathValue("id", id)
	rec = httptest.NewRecorder()
	handleAdminDelete(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unconfirmed delete: got status %d, want 400", rec.Code)
	}
	if _, err := tours.Get(ctx, id); err != nil {
		t.Fatalf("record should survive unconfirmed delete: %v", err)
	}

	// Confirmed delete
	req = asAdmin(httptest.NewRequest("DELETE", "/api/admin/tours/"+id+"?confirm=true", nil))
	req.SetPathValue("collection", "tours")
	req.SetPathValue("id", id)
	rec = httptest.NewRecorder()
	handleAdminDelete(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("confirmed delete: got status %d, want 204", rec.Code)
	}
	if _, err := tours.Get(ctx, id); err == nil {
		t.Error("record still present after confirmed delete")
	}
}

func TestAdminCreateValidates(t *testing.T) {
	setupTestDeps(t)

	invalid := tour.Tour{Region: "Uganda", Activity: tour.ActivityHiking, Duration: 2, Difficulty: tour.DifficultyEasy}
	raw, _ := json.Marshal(invalid)
	req := asAdmin(jsonRequest("POST", "/api/admin/tours", string(raw)))
	req.SetPathValue("collection", "tours")
	rec := httptest.NewRecorder()
	handleAdminCreate(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing title: got status %d, want 400", rec.Code)
	}
}

func TestAdminCreateUnknownCollection(t *testing.T) {
	setupTestDeps(t)

	req := asAdmin(jsonRequest("POST", "/api/admin/payments", `{"x":1}`))
	req.SetPathValue("collection", "payments")
	rec := httptest.NewRecorder()
	handleAdminCreate(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("payments must not be writable: got status %d, want 404", rec.Code)
	}
}

func TestAdminUpdateSingletonUpserts(t *testing.T) {
	setupTestDeps(t)

	body := `{"title":"Our Vision","content":"A wilder Uganda.","imageUrl":""}`
	req := asAdmin(jsonRequest("PUT", "/api/admin/visionContent/main", body))
	req.SetPathValue("collection", "visionContent")
	req.SetPathValue("id", "main")
	rec := httptest.NewRecorder()
	handleAdminUpdate(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("singleton upsert: got status %d, want 200. Body: %s", rec.Code, rec.Body.String())
	}

	vision, err := accessors.Vision(deps.Store).Get(context.Background())
	if err != nil {
		t.Fatalf("get vision after upsert: %v", err)
	}
	if vision.Title != "Our Vision" {
		t.Errorf("got vision title %q", vision.Title)
	}
}

func TestAdminCreateNotifiesSubscribers(t *testing.T) {
	sender := setupTestDeps(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := deps.subscribers.Add(ctx, subscriber.Subscriber{
			ID:    fmt.Sprintf("s%d", i),
			Email: fmt.Sprintf("reader%d@example.com", i),
		}); err != nil {
			t.Fatalf("seed subscriber: %v", err)
		}
	}

	body := `{"title":"Wetland Win","excerpt":"Mabamba protected.","content":"Full story.","category":"Conservation","date":"2024-03-01"}`
	req := asAdmin(jsonRequest("POST", "/api/admin/news", body))
	req.SetPathValue("collection", "news")
	rec := httptest.NewRecorder()
	handleAdminCreate(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: got status %d, want 201. Body: %s", rec.Code, rec.Body.String())
	}

	if len(sender.batches) != 1 {
		t.Fatalf("expected 1 notification batch, got %d", len(sender.batches))
	}
	batch := sender.batches[0]
	if len(batch) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(batch))
	}
	if !strings.Contains(batch[0].Subject, "Wetland Win") {
		t.Errorf("notification subject missing title: %q", batch[0].Subject)
	}
}

func TestAdminDeleteSendsNoNotification(t *testing.T) {
	sender := setupTestDeps(t)
	ctx := context.Background()
	if _, err := deps.subscribers.Add(ctx, subscriber.Subscriber{ID: "s1", Email: "reader@example.com"}); err != nil {
		t.Fatalf("seed subscriber: %v", err)
	}
	tours := accessors.Tours(deps.Store)
	if _, err := tours.Add(ctx, tour.Tour{
		ID: "1", Title: "Trek", Region: "Uganda",
		Activity: tour.ActivityHiking, Duration: 2, Difficulty: tour.DifficultyEasy,
	}); err != nil {
		t.Fatalf("seed tour: %v", err)
	}

	req := asAdmin(httptest.NewRequest("DELETE", "/api/admin/tours/1?confirm=true", nil))
	req.SetPathValue("collection", "tours")
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()
	handleAdminDelete(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: got status %d, want 204", rec.Code)
	}
	if len(sender.batches) != 0 || len(sender.sent) != 0 {
		t.Error("deletion must not email subscribers")
	}
}

func TestContactReturnsReply(t *testing.T) {
	sender := setupTestDeps(t)

	body := `{"name":"Asha","email":"asha@example.com","subject":"Booking","message":"Do you run trips in June?"}`
	rec := httptest.NewRecorder()
	handleContact(rec, jsonRequest("POST", "/api/contact", body))
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200. Body: %s", rec.Code, rec.Body.String())
	}

	var got map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got["reply"] != "Thanks for writing in!" {
		t.Errorf("got reply %q", got["reply"])
	}

	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 forwarded email, got %d", len(sender.sent))
	}
	if sender.sent[0].ReplyTo != "asha@example.com" {
		t.Errorf("forwarded email reply-to = %q", sender.sent[0].ReplyTo)
	}
}

func TestContactRejectsInvalidMessage(t *testing.T) {
	sender := setupTestDeps(t)

	body := `{"name":"","email":"asha@example.com","subject":"Hi","message":"Hello"}`
	rec := httptest.NewRecorder()
	handleContact(rec, jsonRequest("POST", "/api/contact", body))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("got status %d, want 400", rec.Code)
	}
	if len(sender.sent) != 0 {
		t.Error("invalid message must not be forwarded")
	}
}

func TestSubscribeIsIdempotent(t *testing.T) {
	setupTestDeps(t)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handleSubscribe(rec, jsonRequest("POST", "/api/subscribe", `{"email":"Reader@Example.com"}`))
		if rec.Code != http.StatusNoContent {
			t.Fatalf("attempt %d: got status %d, want 204", i, rec.Code)
		}
	}

	subs, err := deps.subscribers.List(context.Background())
	if err != nil {
		t.Fatalf("list subscribers: %v", err)
	}
	if len(subs) != 1 {
		t.Errorf("expected 1 subscriber, got %d", len(subs))
	}
}

func TestDonationCheckout(t *testing.T) {
	setupTestDeps(t)

	body := `{"amountCents":5000,"currency":"usd","email":"donor@example.com"}`
	rec := httptest.NewRecorder()
	handleDonationCheckout(rec, jsonRequest("POST", "/api/donations/checkout", body))
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200. Body: %s", rec.Code, rec.Body.String())
	}

	var got map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got["url"] == "" || got["sessionId"] == "" {
		t.Errorf("checkout response incomplete: %v", got)
	}
}

func TestDonationCheckoutRejectsZeroAmount(t *testing.T) {
	setupTestDeps(t)

	body := `{"amountCents":0,"currency":"usd","email":""}`
	rec := httptest.NewRecorder()
	handleDonationCheckout(rec, jsonRequest("POST", "/api/donations/checkout", body))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("got status %d, want 400", rec.Code)
	}
}

func TestStripeWebhookIgnoresOtherEvents(t *testing.T) {
	setupTestDeps(t)

	// NoopClient treats every payload as an ignored event type.
	req := httptest.NewRequest("POST", "/api/webhooks/stripe", strings.NewReader(`{}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=abc")
	rec := httptest.NewRecorder()
	handleStripeWebhook(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("ignored event: got status %d, want 200", rec.Code)
	}

	payments, err := deps.payments.List(context.Background())
	if err != nil {
		t.Fatalf("list payments: %v", err)
	}
	if len(payments) != 0 {
		t.Errorf("ignored event recorded %d payments", len(payments))
	}
}

func TestSignupLoginFlow(t *testing.T) {
	setupTestDeps(t)

	rec := httptest.NewRecorder()
	handleSignup(rec, jsonRequest("POST", "/api/auth/signup",
		`{"email":"asha@example.com","password":"correcthorse","confirmPassword":"correcthorse","displayName":"Asha"}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup: got status %d, want 201. Body: %s", rec.Code, rec.Body.String())
	}
	if len(rec.Result().Cookies()) == 0 {
		t.Error("signup did not set a session cookie")
	}

	rec = httptest.NewRecorder()
	handleLogin(rec, jsonRequest("POST", "/api/auth/login",
		`{"email":"asha@example.com","password":"correcthorse"}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("login: got status %d, want 200. Body: %s", rec.Code, rec.Body.String())
	}
	var got sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if got.Email != "asha@example.com" || got.IsAdmin {
		t.Errorf("unexpected session payload: %+v", got)
	}

	rec = httptest.NewRecorder()
	handleLogin(rec, jsonRequest("POST", "/api/auth/login",
		`{"email":"asha@example.com","password":"wrongpassword"}`))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: got status %d, want 401", rec.Code)
	}
}

func TestSignupRejectsMismatchedConfirmation(t *testing.T) {
	setupTestDeps(t)

	rec := httptest.NewRecorder()
	handleSignup(rec, jsonRequest("POST", "/api/auth/signup",
		`{"email":"asha@example.com","password":"correcthorse","confirmPassword":"correcthors","displayName":"Asha"}`))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("got status %d, want 400", rec.Code)
	}
	users, err := deps.users.List(context.Background())
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("mismatched confirmation created %d accounts", len(users))
	}
}

func TestGetProjectRendersLongDescription(t *testing.T) {
	setupTestDeps(t)
	projects := accessors.Projects(deps.Store)
	if _, err := projects.Add(context.Background(), project.Project{
		ID:              "1",
		Name:            "Shoebill Guardians",
		Location:        "Mabamba Bay",
		LongDescription: "We train fishermen as **paid guides**.",
	}); err != nil {
		t.Fatalf("seed project: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/projects/1", nil)
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()
	handleGetProject(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200. Body: %s", rec.Code, rec.Body.String())
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	html, _ := got["longDescriptionHtml"].(string)
	if !strings.Contains(html, "<strong>paid guides</strong>") {
		t.Errorf("longDescriptionHtml missing rendered markdown: %q", html)
	}
}

func TestAdminListSubscribersRequiresAdmin(t *testing.T) {
	setupTestDeps(t)

	rec := httptest.NewRecorder()
	handleAdminListSubscribers(rec, asMember(httptest.NewRequest("GET", "/api/admin/subscribers", nil)))
	if rec.Code != http.StatusForbidden {
		t.Errorf("got status %d, want 403", rec.Code)
	}

	rec = httptest.NewRecorder()
	handleAdminListSubscribers(rec, asAdmin(httptest.NewRequest("GET", "/api/admin/subscribers", nil)))
	if rec.Code != http.StatusOK {
		t.Errorf("got status %d, want 200", rec.Code)
	}
}
