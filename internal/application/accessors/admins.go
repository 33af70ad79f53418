package accessors

import (
	"context"
	"errors"

	"greenvours/internal/adapters/storage/docstore"
)

// AdminDirectory answers whether a uid is an administrator. Membership is
// the presence of a document keyed by that uid in the admins collection;
// the document body carries only the email for operator convenience.
type AdminDirectory struct {
	store docstore.Store
}

func Admins(s docstore.Store) *AdminDirectory {
	return &AdminDirectory{store: s}
}

func (d *AdminDirectory) IsAdmin(ctx context.Context, uid string) (bool, error) {
	if uid == "" {
		return false, nil
	}
	_, err := d.store.Get(ctx, CollectionAdmins, uid)
	if errors.Is(err, docstore.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Grant makes uid an administrator. Granting twice is a no-op.
func (d *AdminDirectory) Grant(ctx context.Context, uid, email string) error {
	_, err := d.store.Add(ctx, CollectionAdmins, map[string]any{
		"id":    uid,
		"email": email,
	})
	return err
}

// Revoke removes uid from the directory. Revoking a non-admin is a no-op.
func (d *AdminDirectory) Revoke(ctx context.Context, uid string) error {
	return d.store.Remove(ctx, CollectionAdmins, uid)
}
