package orchestrators

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"greenvours/internal/adapters/email"
	"greenvours/internal/adapters/storage"
	"greenvours/internal/adapters/storage/docstore"
	"greenvours/internal/domain/contact"
)

func openTestStore(t *testing.T) *docstore.SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("init db: %v", err)
	}
	return docstore.NewSQLiteStore(db)
}

func fixedNow() time.Time {
	return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("test-id-%d", n)
	}
}

// mockSender records every send without delivering.
type mockSender struct {
	sent  []email.SendRequest
	fail  error
	batch int
}

func (m *mockSender) Send(_ context.Context, req email.SendRequest) (email.SendResult, error) {
	if m.fail != nil {
		return email.SendResult{}, m.fail
	}
	m.sent = append(m.sent, req)
	return email.SendResult{MessageID: "mock"}, nil
}

func (m *mockSender) SendBatch(_ context.Context, reqs []email.SendRequest) ([]email.SendResult, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	m.batch++
	m.sent = append(m.sent, reqs...)
	results := make([]email.SendResult, len(reqs))
	return results, nil
}

// mockReplier returns a fixed reply or a fixed error.
type mockReplier struct {
	reply string
	fail  error
}

func (m *mockReplier) GenerateReply(_ context.Context, _ contact.Message) (string, error) {
	if m.fail != nil {
		return "", m.fail
	}
	return m.reply, nil
}
