package docstore

import (
	"context"
	"errors"
	"sort"
	"strconv"
)

// Domain errors
var (
	ErrNotFound        = errors.New("document not found")
	ErrEmptyCollection = errors.New("collection name cannot be empty")
	ErrEmptyID         = errors.New("document id cannot be empty")
)

// Document is one persisted record. ID is the store-assigned key and is
// authoritative over any "id" field embedded in Fields; embedded ids are
// stripped before a document is written.
type Document struct {
	ID     string
	Fields map[string]any
}

// Snapshot is the full ordered contents of a collection, delivered to
// subscribers after every mutation.
type Snapshot []Document

// Store is the generic document store contract. All operations are scoped to
// a named collection; documents within a collection have unique ids.
type Store interface {
	// Get retrieves one document. Returns ErrNotFound if absent.
	Get(ctx context.Context, collection, id string) (Document, error)

	// List returns the collection contents. When orderField is non-empty the
	// result is sorted descending by that field, comparing numerically when
	// both values parse as numbers; pairs that don't both parse keep their
	// stored (insertion) order.
	List(ctx context.Context, collection, orderField string) ([]Document, error)

	// Add persists a new document and returns its id. An embedded "id" field
	// is used as the document key (upsert semantics); otherwise the store
	// assigns one.
	Add(ctx context.Context, collection string, fields map[string]any) (string, error)

	// Update merges patch into an existing document, field by field.
	// Returns ErrNotFound if the document does not exist.
	Update(ctx context.Context, collection, id string, patch map[string]any) error

	// Remove deletes a document. Removing an absent id is not an error.
	Remove(ctx context.Context, collection, id string) error

	// Subscribe registers a live listener on a collection. The current
	// snapshot is delivered immediately, then a fresh ordered snapshot after
	// every mutation of that collection. Delivery is asynchronous and
	// coalescing: a slow listener sees the latest snapshot, not every
	// intermediate one. The returned cancel func releases the listener; every
	// subscriber must cancel on teardown.
	Subscribe(ctx context.Context, collection, orderField string, fn func(Snapshot)) (cancel func(), err error)
}

// idString normalizes an embedded id value to its document-key form.
// Numeric ids keep their integer rendering ("3", not "3.000000").
func idString(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		return strconv.Itoa(id)
	case int64:
		return strconv.FormatInt(id, 10)
	default:
		return ""
	}
}

// sortDocuments orders docs descending by orderField. The comparison is
// numeric when both operands parse as numbers; any pair that doesn't both
// parse is left in its existing relative order (stable sort).
func sortDocuments(docs []Document, orderField string) {
	if orderField == "" {
		return
	}
	sort.SliceStable(docs, func(i, j int) bool {
		a, aok := numericField(docs[i], orderField)
		b, bok := numericField(docs[j], orderField)
		if !aok || !bok {
			return false
		}
		return a > b
	})
}

func numericField(d Document, field string) (float64, bool) {
	var raw any
	if field == "id" {
		raw = d.ID
	} else {
		raw = d.Fields[field]
	}
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		n, err := strconv.ParseFloat(v, 64)
		return n, err == nil
	default:
		return 0, false
	}
}
