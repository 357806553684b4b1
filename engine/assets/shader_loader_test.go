package assets

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadShader_NullTerminates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.vert", "void main() {}\n")
	writeFile(t, dir, "b.vert", "void main() {}\n\x00")

	tests := []struct {
		name string
		want string
	}{
		{"a.vert", "void main() {}\n\x00"},
		{"b.vert", "void main() {}\n\x00"},
	}
	for _, tt := range tests {
		got, err := LoadShader(dir, tt.name)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestLoadShader_Missing(t *testing.T) {
	_, err := LoadShader(t.TempDir(), "nope.frag")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoadSources(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "t.vert", "vs")
	writeFile(t, dir, "t.frag", "fs")

	src, err := LoadSources(dir, "t.vert", "t.frag")
	if err != nil {
		t.Fatal(err)
	}
	if src.Vertex != "vs\x00" || src.Fragment != "fs\x00" {
		t.Errorf("Unexpected sources %q / %q", src.Vertex, src.Fragment)
	}

	if _, err := LoadSources(dir, "t.vert", "missing.frag"); err == nil {
		t.Error("Expected an error for a missing fragment file")
	}
}
