// Package assets resolves scene asset files against a list of search roots
// and caches their contents.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sync"
)

// ErrNotFound is returned when no root contains the requested file.
var ErrNotFound = errors.New("asset not found")

// Manager loads files from an ordered list of roots.
type Manager struct {
	roots []fs.FS
	names []string
	cache *Cache
	mu    sync.RWMutex
}

// NewManager creates a new asset manager with no roots.
func NewManager() *Manager {
	return &Manager{
		cache: NewCache(),
	}
}

// NewDirManager creates a manager searching the given directories.
// Directories that do not exist are skipped.
func NewDirManager(dirs ...string) *Manager {
	m := NewManager()
	for _, dir := range dirs {
		// A missing directory only matters if no other root has the file
		_ = m.AddDir(dir)
	}
	return m
}

// AddDir adds a directory on disk as a search root.
func (m *Manager) AddDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("adding root %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("adding root %s: not a directory", dir)
	}
	m.AddFS(dir, os.DirFS(dir))
	return nil
}

// AddFS adds a filesystem as a search root.
// Roots are searched in insertion order (first added = highest priority).
func (m *Manager) AddFS(name string, fsys fs.FS) {
	m.mu.Lock()
	m.roots = append(m.roots, fsys)
	m.names = append(m.names, name)
	m.mu.Unlock()
}

// Roots returns the names of the configured roots.
func (m *Manager) Roots() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.names...)
}

// Load loads a file from the roots. The name is slash separated and
// relative to a root; a leading "textures/" style prefix is tried both with
// and without its first element so paths written against the project root
// still resolve inside a texture directory.
func (m *Manager) Load(name string) ([]byte, error) {
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, candidate := range candidates(name) {
		for i, root := range m.roots {
			data, err := fs.ReadFile(root, candidate)
			if err == nil {
				m.cache.Set(name, data)
				return data, nil
			}
			if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, fs.ErrInvalid) {
				return nil, fmt.Errorf("reading %s from %s: %w", candidate, m.names[i], err)
			}
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// candidates lists the root-relative paths tried for name.
func candidates(name string) []string {
	clean := path.Clean(name)
	out := []string{clean}
	if dir, file := path.Split(clean); dir != "" {
		out = append(out, file)
	}
	return out
}

// Close drops all roots and cached data.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.roots = nil
	m.names = nil
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

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
	c.mu.Lock()
	defer c.mu.Unlock()

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
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
