// Package accessors maps the generic document store onto the typed domain
// model. Each accessor binds one collection to one Go type and handles the
// JSON round trip, so callers never touch raw field maps.
package accessors

import (
	"context"
	"encoding/json"
	"fmt"

	"greenvours/internal/adapters/storage/docstore"
	"greenvours/internal/domain/account"
	"greenvours/internal/domain/article"
	"greenvours/internal/domain/payment"
	"greenvours/internal/domain/program"
	"greenvours/internal/domain/project"
	"greenvours/internal/domain/relief"
	"greenvours/internal/domain/sitecontent"
	"greenvours/internal/domain/subscriber"
	"greenvours/internal/domain/team"
	"greenvours/internal/domain/tour"
)

// Collection names. These are the on-disk collection keys and part of the
// seeded data contract, so changing one invalidates existing databases.
const (
	CollectionTours       = "tours"
	CollectionNews        = "news"
	CollectionTeam        = "team"
	CollectionProjects    = "projects"
	CollectionPrograms    = "educationPrograms"
	CollectionRelief      = "reliefProjects"
	CollectionHowWeHelp   = "howWeHelpItems"
	CollectionVision      = "visionContent"
	CollectionContactInfo = "contactInfo"
	CollectionUsers       = "users"
	CollectionAdmins      = "admins"
	CollectionPayments    = "payments"
	CollectionSubscribers = "subscribers"
)

// Accessor exposes a single collection as values of T.
//
// T must serialize its document key as the JSON field "id". Collections
// whose records carry numeric ids use orderField "id" so lists come back
// newest-first.
type Accessor[T any] struct {
	store      docstore.Store
	collection string
	orderField string
}

func New[T any](store docstore.Store, collection, orderField string) *Accessor[T] {
	return &Accessor[T]{store: store, collection: collection, orderField: orderField}
}

// Collection returns the bound collection name.
func (a *Accessor[T]) Collection() string { return a.collection }

// List returns every record in the collection, sorted by the accessor's
// order field when one is set.
func (a *Accessor[T]) List(ctx context.Context) ([]T, error) {
	docs, err := a.store.List(ctx, a.collection, a.orderField)
	if err != nil {
		return nil, err
	}
	return decodeAll[T](docs)
}

// Get returns one record by id.
//
// POST: returns docstore.ErrNotFound when no such document exists.
func (a *Accessor[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	doc, err := a.store.Get(ctx, a.collection, id)
	if err != nil {
		return zero, err
	}
	return decode[T](doc)
}

// Add stores a new record and returns its document key. A record whose own
// id field is non-empty keeps that id (upserting any existing document with
// the same key); otherwise the store assigns one.
func (a *Accessor[T]) Add(ctx context.Context, v T) (string, error) {
	fields, err := encode(v)
	if err != nil {
		return "", err
	}
	return a.store.Add(ctx, a.collection, fields)
}

// Update overwrites the stored fields of id with the fields of v. The
// record's own id field is ignored; the document key stays authoritative.
//
// POST: returns docstore.ErrNotFound when no such document exists.
func (a *Accessor[T]) Update(ctx context.Context, id string, v T) error {
	fields, err := encode(v)
	if err != nil {
		return err
	}
	return a.store.Update(ctx, a.collection, id, fields)
}

// Patch merges a partial field map into the stored record.
func (a *Accessor[T]) Patch(ctx context.Context, id string, fields map[string]any) error {
	return a.store.Update(ctx, a.collection, id, fields)
}

// Delete removes the record. Deleting an absent id is a no-op.
func (a *Accessor[T]) Delete(ctx context.Context, id string) error {
	return a.store.Remove(ctx, a.collection, id)
}

// Subscribe registers fn to receive the full decoded collection now and
// after every change, in the accessor's sort order. The returned cancel
// function stops delivery and is safe to call more than once.
func (a *Accessor[T]) Subscribe(ctx context.Context, fn func([]T)) (func(), error) {
	return a.store.Subscribe(ctx, a.collection, a.orderField, func(snap docstore.Snapshot) {
		values, err := decodeAll[T](snap)
		if err != nil {
			return
		}
		fn(values)
	})
}

func decode[T any](doc docstore.Document) (T, error) {
	var v T
	fields := make(map[string]any, len(doc.Fields)+1)
	for k, val := range doc.Fields {
		fields[k] = val
	}
	fields["id"] = doc.ID
	raw, err := json.Marshal(fields)
	if err != nil {
		return v, fmt.Errorf("encode document %s: %w", doc.ID, err)
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("decode document %s: %w", doc.ID, err)
	}
	return v, nil
}

func decodeAll[T any](docs docstore.Snapshot) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		v, err := decode[T](doc)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func encode[T any](v T) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	if id, ok := fields["id"]; ok && fmt.Sprint(id) == "" {
		delete(fields, "id")
	}
	return fields, nil
}

// Singleton exposes a collection that holds exactly one well-known record,
// such as the vision statement or the site contact details.
type Singleton[T any] struct {
	store      docstore.Store
	collection string
	key        string
}

func NewSingleton[T any](store docstore.Store, collection, key string) *Singleton[T] {
	return &Singleton[T]{store: store, collection: collection, key: key}
}

func (s *Singleton[T]) Collection() string { return s.collection }

// Get returns the singleton record, or docstore.ErrNotFound before the
// first Save.
func (s *Singleton[T]) Get(ctx context.Context) (T, error) {
	var zero T
	doc, err := s.store.Get(ctx, s.collection, s.key)
	if err != nil {
		return zero, err
	}
	return decode[T](doc)
}

// Save writes the singleton record, creating it on first use.
func (s *Singleton[T]) Save(ctx context.Context, v T) error {
	fields, err := encode(v)
	if err != nil {
		return err
	}
	fields["id"] = s.key
	_, err = s.store.Add(ctx, s.collection, fields)
	return err
}

// Subscribe delivers the singleton record after every change. Deleting the
// record delivers the zero value.
func (s *Singleton[T]) Subscribe(ctx context.Context, fn func(T)) (func(), error) {
	return s.store.Subscribe(ctx, s.collection, "", func(snap docstore.Snapshot) {
		var v T
		for _, doc := range snap {
			if doc.ID == s.key {
				decoded, err := decode[T](doc)
				if err != nil {
					return
				}
				v = decoded
				break
			}
		}
		fn(v)
	})
}

// Typed constructors. Collections whose records use numeric string ids are
// ordered by id descending so the newest entries list first.

func Tours(s docstore.Store) *Accessor[tour.Tour] {
	return New[tour.Tour](s, CollectionTours, "id")
}

func News(s docstore.Store) *Accessor[article.Article] {
	return New[article.Article](s, CollectionNews, "id")
}

func Team(s docstore.Store) *Accessor[team.Member] {
	return New[team.Member](s, CollectionTeam, "")
}

func Projects(s docstore.Store) *Accessor[project.Project] {
	return New[project.Project](s, CollectionProjects, "id")
}

func Programs(s docstore.Store) *Accessor[program.Program] {
	return New[program.Program](s, CollectionPrograms, "id")
}

func Relief(s docstore.Store) *Accessor[relief.Project] {
	return New[relief.Project](s, CollectionRelief, "")
}

func HowWeHelp(s docstore.Store) *Accessor[sitecontent.HowWeHelpItem] {
	return New[sitecontent.HowWeHelpItem](s, CollectionHowWeHelp, "")
}

func Vision(s docstore.Store) *Singleton[sitecontent.VisionContent] {
	return NewSingleton[sitecontent.VisionContent](s, CollectionVision, sitecontent.SingletonKey)
}

func ContactInfo(s docstore.Store) *Singleton[sitecontent.ContactInfo] {
	return NewSingleton[sitecontent.ContactInfo](s, CollectionContactInfo, sitecontent.SingletonKey)
}

func Users(s docstore.Store) *Accessor[account.Account] {
	return New[account.Account](s, CollectionUsers, "")
}

func Payments(s docstore.Store) *Accessor[payment.Payment] {
	return New[payment.Payment](s, CollectionPayments, "")
}

func Subscribers(s docstore.Store) *Accessor[subscriber.Subscriber] {
	return New[subscriber.Subscriber](s, CollectionSubscribers, "")
}
