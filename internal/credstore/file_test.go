package credstore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFile_SetGetDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".optivus", "credentials.json")
	st := NewFile(path)

	if got := st.Get(KeyAccessToken); got != "" {
		t.Errorf("expected empty value before Set, got %q", got)
	}

	if err := st.Set(KeyAccessToken, "tok-a"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := st.Set(KeyRefreshToken, "tok-r"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if got := st.Get(KeyAccessToken); got != "tok-a" {
		t.Errorf("Get(access) = %q, want %q", got, "tok-a")
	}

	// A fresh store over the same path sees persisted values.
	if got := NewFile(path).Get(KeyRefreshToken); got != "tok-r" {
		t.Errorf("reopened Get(refresh) = %q, want %q", got, "tok-r")
	}

	if err := st.Delete(KeyAccessToken); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got := st.Get(KeyAccessToken); got != "" {
		t.Errorf("expected empty value after Delete, got %q", got)
	}

	// Deleting a missing key is not an error.
	if err := st.Delete("no-such-key"); err != nil {
		t.Errorf("Delete of missing key failed: %v", err)
	}
}

func TestFile_Permissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	st := NewFile(path)

	if err := st.Set(KeyAccessToken, "secret"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("expected 0600 permissions, got %o", perm)
	}
}

func TestFile_CorruptFileBehavesEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	st := NewFile(path)
	if got := st.Get(KeyAccessToken); got != "" {
		t.Errorf("expected empty value from corrupt file, got %q", got)
	}
	if err := st.Set(KeyAccessToken, "tok"); err != nil {
		t.Fatalf("Set over corrupt file failed: %v", err)
	}
	if got := st.Get(KeyAccessToken); got != "tok" {
		t.Errorf("Get after rewrite = %q, want %q", got, "tok")
	}
}

func TestMemory(t *testing.T) {
	st := NewMemory()

	if err := st.Set("k", "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := st.Get("k"); got != "v" {
		t.Errorf("Get = %q, want %q", got, "v")
	}
	if err := st.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got := st.Get("k"); got != "" {
		t.Errorf("expected empty value after Delete, got %q", got)
	}
}
