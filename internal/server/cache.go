package server

import (
	"context"
	"fmt"

	"github.com/NeyGuaiume2/sdisc/internal/db"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// cachedResultStore serves repeated GetResult calls from memory.
// Stored results never change, so a cached record cannot go stale.
type cachedResultStore struct {
	ResultStore
	cache *lru.Cache[uuid.UUID, db.ResultRecord]
}

func newCachedResultStore(store ResultStore, size int) (*cachedResultStore, error) {
	cache, err := lru.New[uuid.UUID, db.ResultRecord](size)
	if err != nil {
		return nil, fmt.Errorf("create result cache: %w", err)
	}
	return &cachedResultStore{ResultStore: store, cache: cache}, nil
}

// GetResult returns the cached record or loads it. Misses (nil records) are not cached.
func (c *cachedResultStore) GetResult(ctx context.Context, id uuid.UUID) (*db.ResultRecord, error) {
	if rec, ok := c.cache.Get(id); ok {
		return &rec, nil
	}

	rec, err := c.ResultStore.GetResult(ctx, id)
	if err != nil || rec == nil {
		return rec, err
	}
	c.cache.Add(id, *rec)
	return rec, nil
}
