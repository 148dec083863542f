// Package caching provides a simple file-based result cache with a TTL.
// Entries are keyed by a content hash of the run inputs, so an unchanged
// (vocabulary, research, top-k) triple skips recounting entirely.
package caching

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Cache stores serialized results under a directory, one file per key.
type Cache struct {
	path string
	ttl  time.Duration
}

// NewCache creates a new Cache instance.
// The cache path will be created if it doesn't exist.
func NewCache(path string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{
		path: path,
		ttl:  ttl,
	}, nil
}

// Get retrieves an entry by its hash key.
// It returns the data and true if the entry is found and not expired.
// Otherwise, it returns nil and false.
func (c *Cache) Get(key string) ([]byte, bool) {
	filePath := filepath.Join(c.path, key)

	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, false // Cache miss
	}

	// Check if expired
	if time.Since(info.ModTime()) > c.ttl {
		return nil, false // Cache miss (expired)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, false // Cache miss (read error)
	}

	return data, true // Cache hit
}

// Set stores an entry under its hash key.
func (c *Cache) Set(key string, data []byte) error {
	filePath := filepath.Join(c.path, key)
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}
