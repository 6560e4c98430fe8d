package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfigFile(t *testing.T, filePath string, content string) {
	t.Helper()
	if err := os.WriteFile(filePath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", filePath, err)
	}
}

func TestLoad(t *testing.T) {
	testCases := []struct {
		name         string
		localContent string
		explicitPath string
		explicitBody string
		expected     Configuration
	}{
		{
			name:     "no_file_uses_defaults",
			expected: Default(),
		},
		{
			name:         "local_file_overrides",
			localContent: "debug: true\nhtml:\n  output: out/site.html\n",
			expected: Configuration{
				Debug: true,
				HTML:  OutputConfiguration{Output: "out/site.html"},
				Text:  OutputConfiguration{Output: "folder_structure.txt"},
			},
		},
		{
			name:         "explicit_file_replaces_local",
			localContent: "debug: true\n",
			explicitPath: "custom.yaml",
			explicitBody: "text:\n  output: tree.txt\n",
			expected: Configuration{
				HTML: OutputConfiguration{Output: "project_code.html"},
				Text: OutputConfiguration{Output: "tree.txt"},
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			workingDirectory := t.TempDir()
			if testCase.localContent != "" {
				writeConfigFile(t, filepath.Join(workingDirectory, FileName), testCase.localContent)
			}
			if testCase.explicitPath != "" {
				writeConfigFile(t, filepath.Join(workingDirectory, testCase.explicitPath), testCase.explicitBody)
			}

			configuration, err := Load(LoadOptions{WorkingDirectory: workingDirectory, ExplicitFilePath: testCase.explicitPath})
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if !reflect.DeepEqual(configuration, testCase.expected) {
				t.Fatalf("unexpected configuration: got %+v want %+v", configuration, testCase.expected)
			}
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(LoadOptions{WorkingDirectory: t.TempDir(), ExplicitFilePath: "absent.yaml"})
	if err == nil {
		t.Fatal("expected an error for a missing explicit configuration file")
	}
}

func TestLoadRejectsDirectory(t *testing.T) {
	workingDirectory := t.TempDir()
	if err := os.Mkdir(filepath.Join(workingDirectory, FileName), 0o755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if _, err := Load(LoadOptions{WorkingDirectory: workingDirectory}); err == nil {
		t.Fatal("expected an error when the configuration path is a directory")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	workingDirectory := t.TempDir()
	writeConfigFile(t, filepath.Join(workingDirectory, FileName), "html: [unterminated\n")
	if _, err := Load(LoadOptions{WorkingDirectory: workingDirectory}); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}
