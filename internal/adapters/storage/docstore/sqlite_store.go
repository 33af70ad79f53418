package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"greenvours/internal/adapters/storage"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SQLiteStore implements Store over a single JSON document table.
// Mutations notify the attached subscription hub so live listeners receive a
// fresh snapshot of the affected collection.
type SQLiteStore struct {
	db  storage.SQLDB
	hub *hub
	now func() time.Time
}

// Compile-time check that *SQLiteStore satisfies Store.
var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	s := &SQLiteStore{db: db, now: time.Now}
	s.hub = newHub(s.loadSnapshot)
	return s
}

// Get retrieves a document by collection and id.
// PRE: collection and id are non-empty
// POST: Returns the document or ErrNotFound
func (s *SQLiteStore) Get(ctx context.Context, collection, id string) (Document, error) {
	if collection == "" {
		return Document{}, ErrEmptyCollection
	}
	if id == "" {
		return Document{}, ErrEmptyID
	}
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM document WHERE collection = ? AND id = ?`, collection, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return Document{}, ErrNotFound
	}
	if err != nil {
		return Document{}, err
	}
	return decodeDocument(id, data)
}

// List returns the collection contents, ordered per the Store contract.
// PRE: collection is non-empty
// POST: Returns all documents; descending by orderField when given
func (s *SQLiteStore) List(ctx context.Context, collection, orderField string) ([]Document, error) {
	if collection == "" {
		return nil, ErrEmptyCollection
	}
	// rowid order gives stable insertion order for non-comparable pairs.
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, data FROM document WHERE collection = ? ORDER BY rowid`, collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, err
		}
		doc, err := decodeDocument(id, data)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sortDocuments(docs, orderField)
	return docs, nil
}

// Add persists a new document.
// PRE: collection is non-empty
// POST: Document is stored under the embedded id if present (upsert),
// otherwise under a store-assigned UUID; the assigned id is returned
func (s *SQLiteStore) Add(ctx context.Context, collection string, fields map[string]any) (string, error) {
	if collection == "" {
		return "", ErrEmptyCollection
	}

	id := ""
	if embedded, ok := fields["id"]; ok {
		id = idString(embedded)
	}
	if id == "" {
		id = uuid.New().String()
	}

	data, err := encodeFields(fields)
	if err != nil {
		return "", err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO document (collection, id, data, created_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(collection, id) DO UPDATE SET
		   data=excluded.data, updated_at=excluded.created_at`,
		collection, id, data, s.now().UTC().Format(timeLayout))
	if err != nil {
		return "", err
	}

	s.hub.notify(collection)
	return id, nil
}

// Update merges patch into an existing document.
// PRE: the document exists
// POST: Patched fields replace their previous values; all other fields are
// untouched (last write wins at field level)
func (s *SQLiteStore) Update(ctx context.Context, collection, id string, patch map[string]any) error {
	if collection == "" {
		return ErrEmptyCollection
	}
	if id == "" {
		return ErrEmptyID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var data string
	err = tx.QueryRowContext(ctx,
		`SELECT data FROM document WHERE collection = ? AND id = ?`, collection, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(data), &fields); err != nil {
		return fmt.Errorf("corrupt document %s/%s: %w", collection, id, err)
	}
	for k, v := range patch {
		if k == "id" {
			continue
		}
		fields[k] = v
	}

	merged, err := encodeFields(fields)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE document SET data = ?, updated_at = ? WHERE collection = ? AND id = ?`,
		merged, s.now().UTC().Format(timeLayout), collection, id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.hub.notify(collection)
	return nil
}

// Remove deletes a document by id. Removing an absent id is a no-op.
func (s *SQLiteStore) Remove(ctx context.Context, collection, id string) error {
	if collection == "" {
		return ErrEmptyCollection
	}
	if id == "" {
		return ErrEmptyID
	}
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM document WHERE collection = ? AND id = ?`, collection, id); err != nil {
		return err
	}
	s.hub.notify(collection)
	return nil
}

// Subscribe registers a live listener per the Store contract.
func (s *SQLiteStore) Subscribe(ctx context.Context, collection, orderField string, fn func(Snapshot)) (func(), error) {
	if collection == "" {
		return nil, ErrEmptyCollection
	}
	return s.hub.subscribe(ctx, collection, orderField, fn)
}

// loadSnapshot is the hub's loader: the current ordered collection contents.
func (s *SQLiteStore) loadSnapshot(ctx context.Context, collection, orderField string) (Snapshot, error) {
	docs, err := s.List(ctx, collection, orderField)
	return Snapshot(docs), err
}

// encodeFields renders fields as the stored JSON payload, with any embedded
// id stripped — the document key is authoritative.
func encodeFields(fields map[string]any) (string, error) {
	stripped := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == "id" {
			continue
		}
		stripped[k] = v
	}
	data, err := json.Marshal(stripped)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}
	return string(data), nil
}

// decodeDocument parses a stored JSON payload into a Document.
func decodeDocument(id, data string) (Document, error) {
	var fields map[string]any
	if err := json.Unmarshal([]byte(data), &fields); err != nil {
		return Document{}, fmt.Errorf("corrupt document %s: %w", id, err)
	}
	return Document{ID: id, Fields: fields}, nil
}
