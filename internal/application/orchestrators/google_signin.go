package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"greenvours/internal/adapters/storage/docstore"
	"greenvours/internal/application/accessors"
	"greenvours/internal/domain/account"
)

// GoogleSignInInput carries the identity Google asserted for the visitor.
type GoogleSignInInput struct {
	Subject string // Google's stable user id
	Email   string
	Name    string
}

// ExecuteGoogleSignIn signs a visitor in with a verified Google identity,
// creating the account on first sign-in.
// PRE: Input claims come from a verified ID token exchange
// POST: Exactly one account exists for the email; provider stays as created
func ExecuteGoogleSignIn(ctx context.Context, input GoogleSignInInput, deps AuthDeps) (AuthResult, error) {
	if input.Subject == "" || strings.TrimSpace(input.Email) == "" {
		return AuthResult{}, errors.New("google identity is missing subject or email")
	}

	acct, err := accessors.FindUserByEmail(ctx, deps.Users, input.Email)
	switch {
	case err == nil:
		// Existing account, whichever provider created it.
	case errors.Is(err, docstore.ErrNotFound):
		acct = account.Account{
			ID:          input.Subject,
			Email:       strings.TrimSpace(input.Email),
			DisplayName: strings.TrimSpace(input.Name),
			Provider:    account.ProviderGoogle,
			CreatedAt:   deps.now(),
		}
		if err := acct.Validate(); err != nil {
			return AuthResult{}, err
		}
		if _, err := deps.Users.Add(ctx, acct); err != nil {
			return AuthResult{}, err
		}
		slog.Info("auth_event", "event", "account_created", "email", acct.Email, "provider", acct.Provider)
	default:
		return AuthResult{}, err
	}

	isAdmin, err := deps.Admins.IsAdmin(ctx, acct.ID)
	if err != nil {
		return AuthResult{}, err
	}

	slog.Info("auth_event", "event", "google_signin", "email", acct.Email, "is_admin", isAdmin)

	return AuthResult{
		UID:         acct.ID,
		Email:       acct.Email,
		DisplayName: acct.DisplayName,
		IsAdmin:     isAdmin,
	}, nil
}
