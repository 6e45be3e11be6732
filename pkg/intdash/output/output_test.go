package output

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")

	if err := WriteFile(path, []byte("first")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := WriteFile(path, []byte("second")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Expected second, got %s", got)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("Expected only the output file, got %d entries", len(entries))
	}
}

func TestWriteFileMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.html")

	err := WriteFile(path, []byte("data"))
	if !errors.Is(err, ErrWriteFailed) {
		t.Fatalf("Expected ErrWriteFailed, got %v", err)
	}
	var we *WriteError
	if !errors.As(err, &we) {
		t.Fatalf("Expected *WriteError, got %T", err)
	}
	if we.Op != "create" || we.Path != path {
		t.Errorf("Unexpected error detail: %+v", we)
	}
}

func TestWriteFileKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	// A directory at the target path cannot be replaced by a file.
	target := filepath.Join(dir, "report.html")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	keep := filepath.Join(target, "keep.txt")
	if err := os.WriteFile(keep, []byte("old"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if err := WriteFile(target, []byte("new")); !errors.Is(err, ErrWriteFailed) {
		t.Fatalf("Expected ErrWriteFailed, got %v", err)
	}
	got, err := os.ReadFile(keep)
	if err != nil || string(got) != "old" {
		t.Errorf("Expected previous content untouched, got %q (%v)", got, err)
	}

	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("Temporary file left behind: %s", e.Name())
		}
	}
}

func TestToJSON(t *testing.T) {
	v := map[string]float64{"b": 2, "a": 1}

	tests := []struct {
		pretty   bool
		expected string
	}{
		{false, `{"a":1,"b":2}`},
		{true, "{\n  \"a\": 1,\n  \"b\": 2\n}"},
	}
	for _, tt := range tests {
		got, err := ToJSON(v, tt.pretty)
		if err != nil {
			t.Fatalf("ToJSON failed: %v", err)
		}
		if string(got) != tt.expected {
			t.Errorf("pretty=%v: expected %s, got %s", tt.pretty, tt.expected, got)
		}
	}
}
