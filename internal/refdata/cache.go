package refdata

import (
	"context"
	"io/fs"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// LoaderFunc produces a Store
type LoaderFunc func(ctx context.Context) (*Store, error)

// Cache loads the reference data on first use and serves the same Store afterwards.
// Concurrent first callers wait for a single load. A failed load is not cached.
type Cache struct {
	load  LoaderFunc
	mu    sync.Mutex
	store atomic.Pointer[Store]
	loads atomic.Int64
}

// NewCache returns a Cache that loads from fsys.
func NewCache(fsys fs.FS, logger *zap.Logger) *Cache {
	return NewCacheWithLoader(func(ctx context.Context) (*Store, error) {
		return Load(ctx, fsys, logger)
	})
}

// NewCacheWithLoader returns a Cache backed by a custom loader.
func NewCacheWithLoader(load LoaderFunc) *Cache {
	return &Cache{load: load}
}

// Get returns the cached Store, loading it if needed.
func (c *Cache) Get(ctx context.Context) (*Store, error) {
	if s := c.store.Load(); s != nil {
		return s, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if s := c.store.Load(); s != nil {
		return s, nil
	}

	c.loads.Add(1)
	s, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	c.store.Store(s)
	return s, nil
}

// Loads returns how many times the loader ran.
func (c *Cache) Loads() int64 {
	return c.loads.Load()
}
