package docgen

import (
	"fmt"
	"sync"
	"time"
)

// cacheEntry pairs a rendered document with its download filename.
type cacheEntry struct {
	content  []byte
	filename string
}

// DocumentCache is an in-process store of rendered documents keyed for
// later download. It is unbounded: entries live until Evict is called or
// the process exits. All methods are safe for concurrent use.
//
// The cache owns the stored bytes. Put copies its input and Get returns a
// copy, so callers can never mutate a cached document in place.
type DocumentCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	now     func() time.Time
}

// NewDocumentCache creates an empty document cache.
func NewDocumentCache() *DocumentCache {
	return newDocumentCache(time.Now)
}

// newDocumentCache allows tests to inject a fixed clock.
func newDocumentCache(now func() time.Time) *DocumentCache {
	return &DocumentCache{
		entries: make(map[string]cacheEntry),
		now:     now,
	}
}

// Put stores content under a freshly minted key and returns the key.
// Keys combine the insertion timestamp with the filename; when two inserts
// land on the same timestamp and filename, a sequence suffix keeps the key
// unique. Put never fails.
func (c *DocumentCache) Put(filename string, content []byte) string {
	stored := make([]byte, len(content))
	copy(stored, content)

	c.mu.Lock()
	defer c.mu.Unlock()

	base := fmt.Sprintf("%d_%s", c.now().UnixNano(), filename)
	key := base
	for seq := 1; ; seq++ {
		if _, taken := c.entries[key]; !taken {
			break
		}
		key = fmt.Sprintf("%s_%d", base, seq)
	}

	c.entries[key] = cacheEntry{content: stored, filename: filename}
	return key
}

// Get returns a copy of the document stored under key.
// Returns ErrDocumentNotFound if the key is absent, so an empty document
// is distinguishable from a missing one.
func (c *DocumentCache) Get(key string) ([]byte, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDocumentNotFound, key)
	}

	out := make([]byte, len(entry.content))
	copy(out, entry.content)
	return out, nil
}

// GetFilename returns the download filename stored under key.
func (c *DocumentCache) GetFilename(key string) (string, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("%w: %q", ErrDocumentNotFound, key)
	}
	return entry.filename, nil
}

// Evict removes the entry under key. Evicting an absent key is a no-op.
func (c *DocumentCache) Evict(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Len reports the number of cached documents.
func (c *DocumentCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
