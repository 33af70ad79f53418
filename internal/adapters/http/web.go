package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"greenvours/internal/adapters/assist"
	"greenvours/internal/adapters/email"
	"greenvours/internal/adapters/googleauth"
	"greenvours/internal/adapters/http/middleware"
	"greenvours/internal/adapters/images"
	"greenvours/internal/adapters/payment"
	"greenvours/internal/adapters/storage/docstore"
	"greenvours/internal/application/accessors"
	"greenvours/internal/domain/account"
	domainpayment "greenvours/internal/domain/payment"
	"greenvours/internal/domain/subscriber"
)

// Deps holds every collaborator the handlers need.
type Deps struct {
	Store docstore.Store

	Sender    email.Sender
	Generator assist.ReplyGenerator
	Payments  payment.Client
	Webhooks  payment.WebhookParser
	Uploader  images.Uploader
	Google    *googleauth.Verifier

	DonationSuccessURL string
	DonationCancelURL  string

	// Typed views over Store, filled in by NewMux.
	users       *accessors.Accessor[account.Account]
	admins      *accessors.AdminDirectory
	subscribers *accessors.Accessor[subscriber.Subscriber]
	payments    *accessors.Accessor[domainpayment.Payment]
}

// loadCSRFKey reads the CSRF secret from GREENVOURS_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("GREENVOURS_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("GREENVOURS_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("GREENVOURS_ENV") == "production" {
		log.Fatal("GREENVOURS_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set GREENVOURS_CSRF_KEY for production.")
	return key
}

// Global deps instance (set by NewMux)
var deps *Deps

// Global session store instance
var sessions *middleware.SessionStore

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, d *Deps) http.Handler {
	deps = d
	deps.users = accessors.Users(d.Store)
	deps.admins = accessors.Admins(d.Store)
	deps.subscribers = accessors.Subscribers(d.Store)
	deps.payments = accessors.Payments(d.Store)

	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = os.Getenv("GREENVOURS_ENV") == "production"

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	registerRoutes(mux)

	csrfKey := loadCSRFKey()
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Auth -> CSRF -> SecurityHeaders -> RateLimit -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
	)
}
