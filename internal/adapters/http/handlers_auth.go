package web

import (
	"errors"
	"log/slog"
	"net/http"

	"greenvours/internal/adapters/http/middleware"
	"greenvours/internal/application/orchestrators"
)

func authDeps() orchestrators.AuthDeps {
	return orchestrators.AuthDeps{Users: deps.users, Admins: deps.admins}
}

// requireAdmin resolves the session and rejects non-admins.
func requireAdmin(w http.ResponseWriter, r *http.Request) (middleware.Session, bool) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		slog.Warn("auth_denied", "path", r.URL.Path, "reason", "no session")
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return middleware.Session{}, false
	}
	if !sess.IsAdmin {
		slog.Warn("auth_denied", "path", r.URL.Path, "uid", sess.UID, "reason", "not admin")
		http.Error(w, "Forbidden", http.StatusForbidden)
		return middleware.Session{}, false
	}
	return sess, true
}

type sessionResponse struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	IsAdmin     bool   `json:"isAdmin"`
}

func startSession(w http.ResponseWriter, result orchestrators.AuthResult) error {
	token, err := sessions.Create(result.UID, result.Email, result.DisplayName, result.IsAdmin)
	if err != nil {
		return err
	}
	middleware.SetSessionCookie(w, token)
	return nil
}

func handleSignup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
		DisplayName     string `json:"displayName"`
	}
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.ConfirmPassword != "" && req.ConfirmPassword != req.Password {
		http.Error(w, "passwords do not match", http.StatusBadRequest)
		return
	}

	result, err := orchestrators.ExecuteSignup(r.Context(), orchestrators.SignupInput{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	}, authDeps())
	if errors.Is(err, orchestrators.ErrEmailAlreadyExists) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := startSession(w, result); err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{
		UID: result.UID, Email: result.Email, DisplayName: result.DisplayName, IsAdmin: result.IsAdmin,
	})
}

func handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := orchestrators.ExecuteLogin(r.Context(), orchestrators.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}, authDeps())
	if errors.Is(err, orchestrators.ErrInvalidCredentials) {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}

	if err := startSession(w, result); err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{
		UID: result.UID, Email: result.Email, DisplayName: result.DisplayName, IsAdmin: result.IsAdmin,
	})
}

func handleLogout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.SessionToken(r); token != "" {
		sessions.Delete(token)
	}
	middleware.ClearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func handleMe(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{
		UID: sess.UID, Email: sess.Email, DisplayName: sess.DisplayName, IsAdmin: sess.IsAdmin,
	})
}

// handleGoogleAuthURL hands the client the consent-screen URL for the given
// anti-forgery state.
func handleGoogleAuthURL(w http.ResponseWriter, r *http.Request) {
	if deps.Google == nil {
		http.Error(w, "google sign-in is not configured", http.StatusNotImplemented)
		return
	}
	state := r.URL.Query().Get("state")
	if state == "" {
		http.Error(w, "state is required", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": deps.Google.AuthURL(state)})
}

func handleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	if deps.Google == nil {
		http.Error(w, "google sign-in is not configured", http.StatusNotImplemented)
		return
	}
	var req struct {
		Code string `json:"code"`
	}
	if err := strictDecode(r, &req); err != nil || req.Code == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	claims, err := deps.Google.Exchange(r.Context(), req.Code)
	if err != nil {
		http.Error(w, "google sign-in failed", http.StatusUnauthorized)
		return
	}

	result, err := orchestrators.ExecuteGoogleSignIn(r.Context(), orchestrators.GoogleSignInInput{
		Subject: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
	}, authDeps())
	if err != nil {
		internalError(w, err)
		return
	}

	if err := startSession(w, result); err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{
		UID: result.UID, Email: result.Email, DisplayName: result.DisplayName, IsAdmin: result.IsAdmin,
	})
}
