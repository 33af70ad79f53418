package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"greenvours/internal/application/accessors"
)

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Email    string
	Password string
}

var ErrInvalidCredentials = errors.New("invalid email or password")

// ExecuteLogin validates password credentials and returns the identity for
// session creation.
// PRE: Valid email and password provided
// POST: Returns identity on success; every failure maps to ErrInvalidCredentials
func ExecuteLogin(ctx context.Context, input LoginInput, deps AuthDeps) (AuthResult, error) {
	if input.Email == "" || input.Password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}

	acct, err := accessors.FindUserByEmail(ctx, deps.Users, input.Email)
	if err != nil {
		slog.Info("auth_event", "event", "login_failed", "email", input.Email, "reason", "not_found")
		return AuthResult{}, ErrInvalidCredentials
	}

	// Google accounts carry no hash; CheckPassword rejects them too.
	if err := acct.CheckPassword(input.Password); err != nil {
		slog.Info("auth_event", "event", "login_failed", "email", input.Email, "reason", "wrong_password")
		return AuthResult{}, ErrInvalidCredentials
	}

	isAdmin, err := deps.Admins.IsAdmin(ctx, acct.ID)
	if err != nil {
		return AuthResult{}, err
	}

	slog.Info("auth_event", "event", "login_success", "email", acct.Email, "is_admin", isAdmin)

	return AuthResult{
		UID:         acct.ID,
		Email:       acct.Email,
		DisplayName: acct.DisplayName,
		IsAdmin:     isAdmin,
	}, nil
}
