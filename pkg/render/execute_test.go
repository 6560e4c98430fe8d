package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"treedump/pkg/exclude"

	"go.uber.org/zap"
)

func TestRunHTMLWritesDocument(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "a.txt"), "hi")
	output := filepath.Join(t.TempDir(), "nested", DefaultHTMLOutput)

	args := Arguments{Root: root, Output: output, Exclusions: exclude.HTMLDefaults()}
	written, err := RunHTML(args, zap.NewNop())
	if err != nil {
		t.Fatalf("RunHTML failed: %v", err)
	}
	if written != output {
		t.Fatalf("RunHTML returned %s, want %s", written, output)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	expected, err := RenderHTML(root, exclude.HTMLDefaults(), zap.NewNop())
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}
	if string(data) != expected {
		t.Fatalf("written document differs from rendered document")
	}
}

func TestRunHTMLMissingRootWritesNothing(t *testing.T) {
	output := filepath.Join(t.TempDir(), DefaultHTMLOutput)
	args := Arguments{Root: filepath.Join(t.TempDir(), "missing"), Output: output, Exclusions: exclude.HTMLDefaults()}

	if _, err := RunHTML(args, zap.NewNop()); err == nil {
		t.Fatal("expected an error for a missing root")
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Fatalf("no output should be written, stat returned %v", err)
	}
}

func TestRunTextWritesTree(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	writeTestFile(t, filepath.Join(root, "src", "main.go"), "package main")
	output := filepath.Join(t.TempDir(), DefaultTextOutput)

	args := Arguments{Root: root, Output: output, Exclusions: exclude.TextDefaults()}
	written, err := RunText(args, zap.NewNop())
	if err != nil {
		t.Fatalf("RunText failed: %v", err)
	}
	if written != output {
		t.Fatalf("RunText returned %s, want %s", written, output)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	var expected bytes.Buffer
	if err := WriteTextTree(&expected, root, exclude.TextDefaults(), zap.NewNop()); err != nil {
		t.Fatalf("WriteTextTree failed: %v", err)
	}
	if string(data) != expected.String() {
		t.Fatalf("unexpected output:\ngot\n%s\nwant\n%s", data, expected.String())
	}
}

func TestRunTextMissingRoot(t *testing.T) {
	output := filepath.Join(t.TempDir(), DefaultTextOutput)
	args := Arguments{Root: filepath.Join(t.TempDir(), "missing"), Output: output, Exclusions: exclude.TextDefaults()}

	if _, err := RunText(args, zap.NewNop()); err == nil {
		t.Fatal("expected an error for a missing root")
	}
}
