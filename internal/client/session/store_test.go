package session

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/dribbleops/orderadmin/internal/domain/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	return NewStore(path, slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func TestStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)

	if store.Authenticated() {
		t.Fatal("expected unauthenticated state before login")
	}

	err := store.Save(&Session{
		AccessToken: "token-1",
		User:        &model.User{ID: "u1", Email: "admin@example.com", Role: "admin"},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if got := store.Token(); got != "token-1" {
		t.Fatalf("unexpected token %q", got)
	}
	session := store.Load()
	if session == nil || session.User == nil || session.User.Email != "admin@example.com" {
		t.Fatalf("unexpected session %+v", session)
	}
}

func TestTokenReadsFreshlyFromDisk(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(&Session{AccessToken: "first"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := store.Token(); got != "first" {
		t.Fatalf("unexpected token %q", got)
	}

	// A second writer (another process, or eviction elsewhere) replaces the
	// file; the next read must observe it without any reload step.
	if err := store.Save(&Session{AccessToken: "second"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := store.Token(); got != "second" {
		t.Fatalf("expected fresh read, got %q", got)
	}
}

func TestEvictClearsCredential(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(&Session{AccessToken: "token-1"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	store.Evict()

	if store.Authenticated() {
		t.Fatal("expected unauthenticated state after eviction")
	}
	if got := store.Token(); got != "" {
		t.Fatalf("expected empty token, got %q", got)
	}
	if _, err := os.Stat(store.path); !os.IsNotExist(err) {
		t.Fatal("expected session file to be removed")
	}
}

func TestClearIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	store.Clear()
	store.Clear()
	if store.Authenticated() {
		t.Fatal("expected unauthenticated state")
	}
}

func TestCorruptFileTreatedAsLoggedOut(t *testing.T) {
	store := newTestStore(t)
	if err := os.MkdirAll(filepath.Dir(store.path), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(store.path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if store.Load() != nil {
		t.Fatal("expected nil session for corrupt file")
	}
	if store.Token() != "" {
		t.Fatal("expected empty token for corrupt file")
	}
}
