package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"greenvours/internal/adapters/storage/docstore"
	"greenvours/internal/application/accessors"
)

// ExecuteSeedAdmin ensures an administrator account exists for the
// configured email, creating the account when needed.
// PRE: Database is initialized
// POST: The email's account exists and is in the admins collection; called
// with empty credentials it does nothing
func ExecuteSeedAdmin(ctx context.Context, deps AuthDeps, emailAddr, password string) error {
	if emailAddr == "" || password == "" {
		slog.Info("auth_event", "event", "admin_seed_skipped", "reason", "no_credentials")
		return nil
	}

	acct, err := accessors.FindUserByEmail(ctx, deps.Users, emailAddr)
	switch {
	case err == nil:
		// Account exists, just make sure it is an admin.
	case errors.Is(err, docstore.ErrNotFound):
		result, err := ExecuteSignup(ctx, SignupInput{
			Email:       emailAddr,
			Password:    password,
			DisplayName: "Site Administrator",
		}, deps)
		if err != nil {
			return err
		}
		acct.ID = result.UID
		acct.Email = result.Email
	default:
		return err
	}

	if err := deps.Admins.Grant(ctx, acct.ID, acct.Email); err != nil {
		return err
	}

	slog.Info("auth_event", "event", "admin_seeded", "email", emailAddr)
	return nil
}
