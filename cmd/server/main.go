package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	"greenvours/internal/adapters/assist"
	emailPkg "greenvours/internal/adapters/email"
	"greenvours/internal/adapters/googleauth"
	web "greenvours/internal/adapters/http"
	"greenvours/internal/adapters/images"
	"greenvours/internal/adapters/payment"
	"greenvours/internal/adapters/storage"
	"greenvours/internal/adapters/storage/docstore"
	"greenvours/internal/application/accessors"
	"greenvours/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	ctx := context.Background()

	// Initialize database with WAL mode and busy timeout
	dbPath := envOrDefault("GREENVOURS_DB", "greenvours.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to init database: %v", err)
	}
	log.Println("Database initialized successfully!")

	// Slow-query instrumentation wraps the raw DB
	store := docstore.NewSQLiteStore(storage.NewTimedDB(db))

	// Seed initial content into any empty collection
	seedDeps := orchestrators.SeedContentDeps{
		Tours:       accessors.Tours(store),
		News:        accessors.News(store),
		Team:        accessors.Team(store),
		Projects:    accessors.Projects(store),
		Programs:    accessors.Programs(store),
		Relief:      accessors.Relief(store),
		HowWeHelp:   accessors.HowWeHelp(store),
		Vision:      accessors.Vision(store),
		ContactInfo: accessors.ContactInfo(store),
	}
	if err := orchestrators.ExecuteSeedContent(ctx, seedDeps); err != nil {
		log.Fatalf("failed to seed content: %v", err)
	}

	// Seed admin account when credentials are provided
	authDeps := orchestrators.AuthDeps{
		Users:  accessors.Users(store),
		Admins: accessors.Admins(store),
	}
	adminEmail := os.Getenv("GREENVOURS_ADMIN_EMAIL")
	adminPassword := os.Getenv("GREENVOURS_ADMIN_PASSWORD")
	if err := orchestrators.ExecuteSeedAdmin(ctx, authDeps, adminEmail, adminPassword); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	deps := &web.Deps{
		Store:              store,
		DonationSuccessURL: envOrDefault("GREENVOURS_DONATION_SUCCESS_URL", "http://localhost:8080/?page=relief&donation=thanks"),
		DonationCancelURL:  envOrDefault("GREENVOURS_DONATION_CANCEL_URL", "http://localhost:8080/?page=relief"),
	}

	// Configure email sender
	emailFrom := envOrDefault("GREENVOURS_RESEND_FROM", "Greenvours <noreply@greenvours.org>")
	if resendKey := os.Getenv("GREENVOURS_RESEND_KEY"); resendKey != "" {
		deps.Sender = emailPkg.NewResendSender(resendKey, emailFrom)
		log.Println("Email sender configured (Resend)")
	} else {
		deps.Sender = emailPkg.NewNoopSender()
		if os.Getenv("GREENVOURS_ENV") == "production" {
			log.Println("WARNING: GREENVOURS_RESEND_KEY is not set — email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set GREENVOURS_RESEND_KEY for real delivery)")
		}
	}

	// Configure the contact-form reply generator
	if geminiKey := os.Getenv("GREENVOURS_GEMINI_KEY"); geminiKey != "" {
		replier, err := assist.NewGeminiReplier(ctx, geminiKey, os.Getenv("GREENVOURS_GEMINI_MODEL"))
		if err != nil {
			log.Fatalf("failed to configure Gemini: %v", err)
		}
		deps.Generator = replier
		log.Println("Reply generator configured (Gemini)")
	} else {
		deps.Generator = assist.NewStaticReplier()
		log.Println("Reply generator configured (static — set GREENVOURS_GEMINI_KEY for AI replies)")
	}

	// Configure donations
	stripeKey := os.Getenv("GREENVOURS_STRIPE_KEY")
	stripeWebhookSecret := os.Getenv("GREENVOURS_STRIPE_WEBHOOK_SECRET")
	if stripeKey != "" {
		client := payment.NewStripeClient(stripeKey, stripeWebhookSecret)
		deps.Payments = client
		deps.Webhooks = client
		log.Println("Payments configured (Stripe)")
	} else {
		noop := payment.NewNoopClient()
		deps.Payments = noop
		deps.Webhooks = noop
		log.Println("Payments configured (noop — set GREENVOURS_STRIPE_KEY for real checkout)")
	}

	// Configure image uploads
	if cloudinaryURL := envOrDefault("GREENVOURS_CLOUDINARY_URL", os.Getenv("CLOUDINARY_URL")); cloudinaryURL != "" {
		uploader, err := images.NewCloudinaryUploader(cloudinaryURL)
		if err != nil {
			log.Fatalf("failed to configure Cloudinary: %v", err)
		}
		deps.Uploader = uploader
		log.Println("Image uploads configured (Cloudinary)")
	} else {
		deps.Uploader = images.NewNoopUploader()
		log.Println("Image uploads configured (noop — set GREENVOURS_CLOUDINARY_URL for real uploads)")
	}

	// Configure Google sign-in
	googleClientID := os.Getenv("GREENVOURS_GOOGLE_CLIENT_ID")
	googleClientSecret := os.Getenv("GREENVOURS_GOOGLE_CLIENT_SECRET")
	if googleClientID != "" && googleClientSecret != "" {
		redirect := envOrDefault("GREENVOURS_GOOGLE_REDIRECT", "http://localhost:8080/auth/google/callback")
		deps.Google = googleauth.NewVerifier(googleClientID, googleClientSecret, redirect)
		log.Println("Google sign-in configured")
	} else {
		log.Println("Google sign-in disabled (set GREENVOURS_GOOGLE_CLIENT_ID and _SECRET to enable)")
	}

	mux := web.NewMux(envOrDefault("GREENVOURS_STATIC_DIR", "static"), deps)

	addr := envOrDefault("GREENVOURS_ADDR", ":8080")
	log.Printf("Greenvours %s starting on %s (env=%s)", version, addr, envOrDefault("GREENVOURS_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
