package catalog

import (
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Cache keeps the last catalog loaded from a file and reuses it while the
// file's modification time and size are unchanged. Every caller receives its
// own copy.
type Cache struct {
	path string

	mu      sync.Mutex
	cached  *Catalog
	modTime time.Time
	size    int64
}

// NewCache returns an empty cache for the catalog at path.
func NewCache(path string) *Cache {
	return &Cache{path: path}
}

// Path returns the file the cache reads from.
func (c *Cache) Path() string {
	return c.path
}

// Load returns the cached catalog, reloading it when the file changed.
func (c *Cache) Load() (*Catalog, error) {
	info, err := os.Stat(c.path)
	if err != nil {
		c.Invalidate()
		return nil, errors.Wrapf(ErrResourceUnavailable, "failed to stat file \"%s\": %v", c.path, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil && c.modTime.Equal(info.ModTime()) && c.size == info.Size() {
		return c.cached.Clone(), nil
	}

	loaded, err := LoadFile(c.path)
	if err != nil {
		c.cached = nil
		return nil, err
	}
	c.cached = loaded
	c.modTime = info.ModTime()
	c.size = info.Size()
	return loaded.Clone(), nil
}

// Invalidate drops the cached catalog so the next Load reads the file.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.cached = nil
	c.mu.Unlock()
}

// Cached reports whether a catalog is currently held.
func (c *Cache) Cached() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cached != nil
}
