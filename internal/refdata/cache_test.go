package refdata

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_LoadsOnceUnderConcurrency(t *testing.T) {
	cache := NewCacheWithLoader(func(ctx context.Context) (*Store, error) {
		time.Sleep(10 * time.Millisecond)
		return NewStore(Contents{}), nil
	})

	const callers = 16
	stores := make([]*Store, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := cache.Get(context.Background())
			assert.NoError(t, err)
			stores[i] = s
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(1), cache.Loads())
	for _, s := range stores {
		assert.Same(t, stores[0], s)
	}
}

func TestCache_FailedLoadIsRetried(t *testing.T) {
	calls := 0
	cache := NewCacheWithLoader(func(ctx context.Context) (*Store, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("disk unavailable")
		}
		return NewStore(Contents{}), nil
	})

	_, err := cache.Get(context.Background())
	require.Error(t, err)

	s, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, s)
	assert.Equal(t, int64(2), cache.Loads())
}

func TestNewCache_Filesystem(t *testing.T) {
	cache := NewCache(testFS(), nil)

	s, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())

	again, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Same(t, s, again)
}
