package render

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTestFile creates a file (and its parent directories) with the given content.
func writeTestFile(t *testing.T, filePath string, content string) {
	t.Helper()
	writeTestBytes(t, filePath, []byte(content))
}

func writeTestBytes(t *testing.T, filePath string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", filePath, err)
	}
	if err := os.WriteFile(filePath, content, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", filePath, err)
	}
}

func makeTestDirectory(t *testing.T, directoryPath string) {
	t.Helper()
	if err := os.MkdirAll(directoryPath, 0o755); err != nil {
		t.Fatalf("failed to create directory %s: %v", directoryPath, err)
	}
}
