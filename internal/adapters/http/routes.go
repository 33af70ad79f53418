package web

import "net/http"

// registerRoutes attaches every API route to the mux.
func registerRoutes(mux *http.ServeMux) {
	// Public content reads
	mux.HandleFunc("GET /api/tours", handleListTours)
	mux.HandleFunc("GET /api/tours/{id}", handleGetTour)
	mux.HandleFunc("GET /api/news", handleListNews)
	mux.HandleFunc("GET /api/news/{id}", handleGetArticle)
	mux.HandleFunc("GET /api/team", handleListTeam)
	mux.HandleFunc("GET /api/projects", handleListProjects)
	mux.HandleFunc("GET /api/projects/{id}", handleGetProject)
	mux.HandleFunc("GET /api/programs", handleListPrograms)
	mux.HandleFunc("GET /api/programs/{id}", handleGetProgram)
	mux.HandleFunc("GET /api/relief", handleListRelief)
	mux.HandleFunc("GET /api/howwehelp", handleListHowWeHelp)
	mux.HandleFunc("GET /api/vision", handleGetVision)
	mux.HandleFunc("GET /api/contactinfo", handleGetContactInfo)

	// Auth
	mux.HandleFunc("POST /api/auth/signup", handleSignup)
	mux.HandleFunc("POST /api/auth/login", handleLogin)
	mux.HandleFunc("POST /api/auth/logout", handleLogout)
	mux.HandleFunc("GET /api/auth/me", handleMe)
	mux.HandleFunc("GET /api/auth/google/url", handleGoogleAuthURL)
	mux.HandleFunc("POST /api/auth/google", handleGoogleCallback)

	// Visitor actions
	mux.HandleFunc("POST /api/contact", handleContact)
	mux.HandleFunc("POST /api/subscribe", handleSubscribe)
	mux.HandleFunc("POST /api/donations/checkout", handleDonationCheckout)
	mux.HandleFunc("POST /api/webhooks/stripe", handleStripeWebhook)

	// Admin console
	mux.HandleFunc("POST /api/admin/upload", handleAdminUpload)
	mux.HandleFunc("GET /api/admin/payments", handleAdminListPayments)
	mux.HandleFunc("GET /api/admin/subscribers", handleAdminListSubscribers)
	mux.HandleFunc("POST /api/admin/{collection}", handleAdminCreate)
	mux.HandleFunc("PUT /api/admin/{collection}/{id}", handleAdminUpdate)
	mux.HandleFunc("DELETE /api/admin/{collection}/{id}", handleAdminDelete)

	// Live content feed
	mux.HandleFunc("GET /ws/content", handleContentFeed)
}
