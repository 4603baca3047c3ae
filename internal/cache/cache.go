// Package cache stores per-file analysis results on disk, keyed by path and
// validated by content hash so a changed file never serves stale results.
package cache

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/zeebo/blake3"

	"github.com/augur-dev/augur/pkg/models"
)

// Cache is a file-backed result cache. A disabled cache is a no-op.
type Cache struct {
	dir     string
	ttl     time.Duration
	enabled bool
}

// entry is the on-disk envelope for one cached result. Scope records the
// analysis configuration the result was computed under; a result cached with
// one category set must never be served under another.
type entry struct {
	Hash      string    `json:"hash"`
	Scope     string    `json:"scope,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Data      []byte    `json:"data"`
}

// New creates a cache rooted at dir with the given TTL in hours.
func New(dir string, ttlHours int, enabled bool) (*Cache, error) {
	if !enabled {
		return &Cache{enabled: false}, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	return &Cache{
		dir:     dir,
		ttl:     time.Duration(ttlHours) * time.Hour,
		enabled: true,
	}, nil
}

// GetResult returns the cached result for a file if the stored content hash
// and analysis scope match and the entry is within TTL.
func (c *Cache) GetResult(path, contentHash, scope string) (*models.FileResult, bool) {
	if !c.enabled {
		return nil, false
	}

	data, err := os.ReadFile(c.keyPath(path))
	if err != nil {
		return nil, false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, false
	}
	if e.Hash != contentHash || e.Scope != scope {
		return nil, false
	}
	if time.Since(e.Timestamp) > c.ttl {
		os.Remove(c.keyPath(path))
		return nil, false
	}

	var result models.FileResult
	if err := json.Unmarshal(e.Data, &result); err != nil {
		return nil, false
	}
	return &result, true
}

// SetResult stores a file's analysis result keyed by its path, content hash
// and analysis scope.
func (c *Cache) SetResult(path, contentHash, scope string, result *models.FileResult) error {
	if !c.enabled {
		return nil
	}

	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	e := entry{
		Hash:      contentHash,
		Scope:     scope,
		Timestamp: time.Now(),
		Data:      data,
	}
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return os.WriteFile(c.keyPath(path), payload, 0600)
}

// Clear removes all cache entries.
func (c *Cache) Clear() error {
	if !c.enabled {
		return nil
	}
	return os.RemoveAll(c.dir)
}

// keyPath hashes the key into a stable filename.
func (c *Cache) keyPath(key string) string {
	hash := blake3.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(hash[:])+".json")
}
