package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"greenvours/internal/adapters/storage/docstore"
	"greenvours/internal/application/accessors"
	"greenvours/internal/domain/account"
)

// SignupInput carries input for the signup orchestrator.
type SignupInput struct {
	Email       string
	Password    string
	DisplayName string
}

// AuthResult carries the signed-in identity for session creation.
type AuthResult struct {
	UID         string
	Email       string
	DisplayName string
	IsAdmin     bool
}

// AuthDeps holds dependencies shared by the auth orchestrators.
type AuthDeps struct {
	Users  *accessors.Accessor[account.Account]
	Admins *accessors.AdminDirectory

	// Injectable for testing
	Now        func() time.Time
	GenerateID func() string
}

func (d AuthDeps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

func (d AuthDeps) generateID() string {
	if d.GenerateID != nil {
		return d.GenerateID()
	}
	return uuid.New().String()
}

var ErrEmailAlreadyExists = errors.New("an account with this email already exists")

// ExecuteSignup registers a new password account.
// PRE: Valid email, password >= 8 chars
// POST: Account created with hashed password
// INVARIANT: Email must be unique across providers
func ExecuteSignup(ctx context.Context, input SignupInput, deps AuthDeps) (AuthResult, error) {
	if strings.TrimSpace(input.Email) == "" {
		return AuthResult{}, errors.New("email cannot be empty")
	}
	if input.Password == "" {
		return AuthResult{}, errors.New("password cannot be empty")
	}

	_, err := accessors.FindUserByEmail(ctx, deps.Users, input.Email)
	if err == nil {
		return AuthResult{}, ErrEmailAlreadyExists
	}
	if !errors.Is(err, docstore.ErrNotFound) {
		return AuthResult{}, err
	}

	acct := account.Account{
		ID:          deps.generateID(),
		Email:       strings.TrimSpace(input.Email),
		DisplayName: strings.TrimSpace(input.DisplayName),
		Provider:    account.ProviderPassword,
		CreatedAt:   deps.now(),
	}
	if err := acct.Validate(); err != nil {
		return AuthResult{}, err
	}
	if err := acct.SetPassword(input.Password); err != nil {
		return AuthResult{}, err
	}

	if _, err := deps.Users.Add(ctx, acct); err != nil {
		return AuthResult{}, err
	}

	slog.Info("auth_event", "event", "account_created", "email", acct.Email, "provider", acct.Provider)

	return AuthResult{UID: acct.ID, Email: acct.Email, DisplayName: acct.DisplayName}, nil
}
