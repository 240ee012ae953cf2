// Package assets resolves and caches asset files.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when no root holds the requested file.
var ErrNotFound = errors.New("asset not found")

// Manager reads asset files from a list of root directories. It is not
// safe for concurrent use.
type Manager struct {
	roots []string
	cache *Cache
}

// NewManager creates a manager with the given search roots.
func NewManager(roots ...string) *Manager {
	m := &Manager{cache: NewCache()}
	for _, r := range roots {
		m.roots = append(m.roots, filepath.Clean(r))
	}
	return m
}

// AddRoot adds a directory to search.
// Roots are searched in reverse order (last added = highest priority).
func (m *Manager) AddRoot(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("asset root %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("asset root %s: not a directory", dir)
	}
	m.roots = append(m.roots, filepath.Clean(dir))
	return nil
}

// Load returns the contents of path. Absolute paths are read as is;
// relative paths are looked up under each root.
func (m *Manager) Load(path string) ([]byte, error) {
	if data, ok := m.cache.Get(path); ok {
		return data, nil
	}

	data, err := m.read(path)
	if err != nil {
		return nil, err
	}
	m.cache.Set(path, data)
	return data, nil
}

func (m *Manager) read(path string) ([]byte, error) {
	if filepath.IsAbs(path) || len(m.roots) == 0 {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return data, err
	}

	for i := len(m.roots) - 1; i >= 0; i-- {
		data, err := os.ReadFile(filepath.Join(m.roots[i], path))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
}

// Stats returns cache hits and misses.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.hits, m.cache.misses
}

// Close drops every cached file.
func (m *Manager) Close() {
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded files.
type Cache struct {
	data map[string][]byte

	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.data[key] = data
}

// Len returns the number of cached files.
func (c *Cache) Len() int {
	return len(c.data)
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}
