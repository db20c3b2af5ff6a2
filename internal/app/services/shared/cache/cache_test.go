package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryRedis struct {
	mu      sync.Mutex
	entries map[string]string
	failing bool
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{entries: make(map[string]string)}
}

func (r *memoryRedis) Delete(_ context.Context, key string) error {
	if r.failing {
		return fmt.Errorf("redis down")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)
	return nil
}

func (r *memoryRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if r.failing {
		return fmt.Errorf("redis down")
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = string(encoded)
	return nil
}

func (r *memoryRedis) Get(_ context.Context, key string) (string, error) {
	if r.failing {
		return "", fmt.Errorf("redis down")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entries[key], nil
}

func (r *memoryRedis) Keys(_ context.Context, _ string) ([]string, error) {
	if r.failing {
		return nil, fmt.Errorf("redis down")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make([]string, 0, len(r.entries))
	for key := range r.entries {
		keys = append(keys, key)
	}
	return keys, nil
}

func (r *memoryRedis) TrySetNX(_ context.Context, key string, _ interface{}, _ time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[key]; exists {
		return false, nil
	}
	r.entries[key] = "1"
	return true, nil
}

type widget struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestGetOrLoadCachesLoaderResult(t *testing.T) {
	redis := newMemoryRedis()
	keyed := NewKeyed[widget](redis, zap.NewNop(), time.Minute)

	loads := 0
	loader := func(_ context.Context) (*widget, error) {
		loads++
		return &widget{Name: "wheelchair", Count: 2}, nil
	}

	first, err := keyed.GetOrLoad(context.Background(), "widget:1", loader)
	require.NoError(t, err)
	second, err := keyed.GetOrLoad(context.Background(), "widget:1", loader)
	require.NoError(t, err)

	assert.Equal(t, 1, loads)
	assert.Equal(t, first, second)
}

func TestGetOrLoadFallsThroughOnBrokenCache(t *testing.T) {
	redis := newMemoryRedis()
	redis.failing = true
	keyed := NewKeyed[widget](redis, zap.NewNop(), time.Minute)

	value, err := keyed.GetOrLoad(context.Background(), "widget:1", func(_ context.Context) (*widget, error) {
		return &widget{Name: "walker", Count: 1}, nil
	})

	require.NoError(t, err, "a broken cache must never fail the operation")
	assert.Equal(t, "walker", value.Name)
}

func TestGetOrLoadPropagatesLoaderError(t *testing.T) {
	keyed := NewKeyed[widget](newMemoryRedis(), zap.NewNop(), time.Minute)

	_, err := keyed.GetOrLoad(context.Background(), "widget:1", func(_ context.Context) (*widget, error) {
		return nil, fmt.Errorf("store unavailable")
	})

	require.Error(t, err)
}

func TestInvalidateRemovesEntry(t *testing.T) {
	redis := newMemoryRedis()
	keyed := NewKeyed[widget](redis, zap.NewNop(), time.Minute)

	keyed.Set(context.Background(), "widget:1", &widget{Name: "cane"})
	keyed.Invalidate(context.Background(), "widget:1")

	loads := 0
	_, err := keyed.GetOrLoad(context.Background(), "widget:1", func(_ context.Context) (*widget, error) {
		loads++
		return &widget{Name: "cane"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, loads, "invalidated key must hit the loader again")
}

func TestGetOrLoadIgnoresUndecodableEntry(t *testing.T) {
	redis := newMemoryRedis()
	redis.entries["widget:1"] = "{not json"
	keyed := NewKeyed[widget](redis, zap.NewNop(), time.Minute)

	value, err := keyed.GetOrLoad(context.Background(), "widget:1", func(_ context.Context) (*widget, error) {
		return &widget{Name: "crutches", Count: 2}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "crutches", value.Name)
}
