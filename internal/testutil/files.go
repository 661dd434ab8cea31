package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFiles creates each name/content pair under a fresh temp directory
// and returns the full paths in the order of names.
func WriteFiles(t testing.TB, names []string, contents map[string]string) []string {
	t.Helper()

	dir := t.TempDir()
	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			t.Fatalf("failed to create directory for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(contents[name]), 0600); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
		paths = append(paths, path)
	}
	return paths
}
