package accessors

import (
	"context"
	"strings"

	"greenvours/internal/adapters/storage/docstore"
	"greenvours/internal/domain/account"
)

// FindUserByEmail scans the users collection for a case-insensitive email
// match. Returns docstore.ErrNotFound when no account uses that address.
func FindUserByEmail(ctx context.Context, users *Accessor[account.Account], email string) (account.Account, error) {
	all, err := users.List(ctx)
	if err != nil {
		return account.Account{}, err
	}
	needle := strings.ToLower(strings.TrimSpace(email))
	for _, a := range all {
		if strings.ToLower(a.Email) == needle {
			return a, nil
		}
	}
	return account.Account{}, docstore.ErrNotFound
}
