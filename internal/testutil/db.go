package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// WriteDB writes raw contents to a fresh database file and returns its path.
func WriteDB(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "db.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create db dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write db: %v", err)
	}
	return path
}

// WriteJSON encodes v into a fresh database file and returns its path.
func WriteJSON(t *testing.T, v interface{}) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	return WriteDB(t, string(data))
}

// ReadDB returns the raw contents of the database file at path.
func ReadDB(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read db %s: %v", path, err)
	}
	return string(data)
}

// MissingDB returns a path inside a temp dir that does not exist yet.
func MissingDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "nested", "db.json")
}
