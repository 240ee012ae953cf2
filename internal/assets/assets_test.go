package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadSearchesRootsInReverse(t *testing.T) {
	base := t.TempDir()
	override := t.TempDir()
	write(t, base, "walker/model.obj", "base")
	write(t, base, "spinner/model.obj", "spinner")
	write(t, override, "walker/model.obj", "override")

	m := NewManager(base)
	if err := m.AddRoot(override); err != nil {
		t.Fatalf("AddRoot: %v", err)
	}

	tests := []struct {
		path string
		want string
	}{
		{"walker/model.obj", "override"},
		{"spinner/model.obj", "spinner"},
	}
	for _, tt := range tests {
		data, err := m.Load(tt.path)
		if err != nil {
			t.Errorf("%s: %v", tt.path, err)
			continue
		}
		if string(data) != tt.want {
			t.Errorf("%s: got %q, want %q", tt.path, data, tt.want)
		}
	}
}

func TestLoadAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "tex.png", "png")

	m := NewManager(t.TempDir())
	data, err := m.Load(filepath.Join(dir, "tex.png"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(data) != "png" {
		t.Errorf("got %q, want %q", data, "png")
	}
}

func TestLoadNotFound(t *testing.T) {
	m := NewManager(t.TempDir())
	if _, err := m.Load("missing.obj"); !errors.Is(err, ErrNotFound) {
		t.Errorf("relative: got %v, want ErrNotFound", err)
	}
	if _, err := m.Load(filepath.Join(t.TempDir(), "missing.obj")); !errors.Is(err, ErrNotFound) {
		t.Errorf("absolute: got %v, want ErrNotFound", err)
	}
}

func TestLoadCaches(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "a.obj", "first")

	m := NewManager(dir)
	if _, err := m.Load("a.obj"); err != nil {
		t.Fatal(err)
	}
	// Changes on disk are not seen once cached.
	write(t, dir, "a.obj", "second")
	data, err := m.Load("a.obj")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first" {
		t.Errorf("got %q, want cached %q", data, "first")
	}

	hits, misses := m.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("hits=%d misses=%d, want 1 and 1", hits, misses)
	}

	m.Close()
	if m.cache.Len() != 0 {
		t.Errorf("cache has %d entries after Close", m.cache.Len())
	}
}

func TestAddRootRejectsFile(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "file", "x")

	m := NewManager()
	if err := m.AddRoot(filepath.Join(dir, "file")); err == nil {
		t.Error("expected error for a file root")
	}
	if err := m.AddRoot(filepath.Join(dir, "nope")); err == nil {
		t.Error("expected error for a missing root")
	}
}
