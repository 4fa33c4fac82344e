package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	store := NewFileStore(path)

	if err := store.Save("secret-token"); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	sess := store.Load()
	if !sess.Present() {
		t.Fatal("expected present session after Save")
	}
	if sess.Token != "secret-token" {
		t.Errorf("Token = %q, want %q", sess.Token, "secret-token")
	}

	// A second store on the same path sees the same credential, as a new
	// process would.
	sess2 := NewFileStore(path).Load()
	if sess2.Token != "secret-token" {
		t.Errorf("second store Token = %q, want %q", sess2.Token, "secret-token")
	}
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	store := NewFileStore(path)

	if err := store.Save("first"); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}
	if err := store.Save("second"); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}
	if got := store.Load().Token; got != "second" {
		t.Errorf("Token = %q, want %q", got, "second")
	}
}

func TestFileStoreLoadAbsent(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))
	if store.Load().Present() {
		t.Error("expected absent session for missing file")
	}
}

func TestFileStoreLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	// Load never fails; corruption degrades to an absent session.
	if NewFileStore(path).Load().Present() {
		t.Error("expected absent session for corrupt file")
	}
}

func TestFileStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	store := NewFileStore(path)

	if err := store.Save("secret"); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() returned error: %v", err)
	}
	if store.Load().Present() {
		t.Error("expected absent session after Clear")
	}

	// Clearing an already-absent session is fine.
	if err := store.Clear(); err != nil {
		t.Errorf("Clear() on absent session returned error: %v", err)
	}
}

func TestFileStoreCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "token.json")
	store := NewFileStore(path)
	if err := store.Save("secret"); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}
	if got := store.Load().Token; got != "secret" {
		t.Errorf("Token = %q, want %q", got, "secret")
	}
}

func TestFileStorePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	if err := NewFileStore(path).Save("secret"); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode = %o, want 0600", perm)
	}
}
