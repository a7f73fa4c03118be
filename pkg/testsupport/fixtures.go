// Package testsupport holds helpers shared by package tests: fixture files
// under testdata/ and throwaway sqlite databases.
package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// FixtureDir is the directory fixtures are read from, relative to the
// package under test.
const FixtureDir = "testdata"

// ReadFixture returns the raw bytes of testdata/name.
func ReadFixture(t testing.TB, name string) []byte {
	t.Helper()

	path := filepath.Join(FixtureDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture %s: %v", path, err)
	}
	return data
}

// Fixture decodes the JSON file testdata/name into a T.
func Fixture[T any](t testing.TB, name string) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(ReadFixture(t, name), &v); err != nil {
		t.Fatalf("decode fixture %s: %v", name, err)
	}
	return v
}

// WriteFile writes content under a per-test temporary directory and returns
// its path.
func WriteFile(t testing.TB, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
