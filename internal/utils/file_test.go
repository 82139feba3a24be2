package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetFileExtension(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"photo.JPG", "jpg"},
		{"room.webp", "webp"},
		{"archive.tar.gz", "gz"},
		{"noext", ""},
	}

	for _, tt := range tests {
		if got := GetFileExtension(tt.in); got != tt.want {
			t.Errorf("GetFileExtension(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsImageFile(t *testing.T) {
	for _, name := range []string{"a.jpg", "b.jpeg", "c.png", "d.webp", "E.PNG"} {
		if !IsImageFile(name) {
			t.Errorf("Expected %q recognized as an image", name)
		}
	}
	for _, name := range []string{"a.gif", "b.txt", "c"} {
		if IsImageFile(name) {
			t.Errorf("Expected %q rejected", name)
		}
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("Expected directory created at %s", dir)
	}

	// Second call on an existing directory is a no-op
	if err := EnsureDir(dir); err != nil {
		t.Errorf("EnsureDir on existing dir failed: %v", err)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(path) {
		t.Error("Expected FileExists true for a real file")
	}
	if FileExists(filepath.Join(dir, "missing.txt")) {
		t.Error("Expected FileExists false for a missing file")
	}
	if FileExists(dir) {
		t.Error("Expected FileExists false for a directory")
	}

	// A path routed through a regular file stats with an error that is not
	// NotExist; it must still report false instead of panicking
	if FileExists(filepath.Join(path, "child")) {
		t.Error("Expected FileExists false for a path under a regular file")
	}
}
