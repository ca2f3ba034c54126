package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/devconnect/marketplace-api/internal/core/domain"
)

const (
	directoryKey = "directory:developers"
	directoryTTL = time.Minute
)

// DirectoryCache keeps the assembled developer directory in Redis so the
// listing endpoint does not rebuild the aggregate on every request. Profile
// and portfolio writes invalidate the single cached entry.
type DirectoryCache struct {
	client *redis.Client
}

// NewDirectoryCache creates a DirectoryCache wrapping the given Redis client.
func NewDirectoryCache(client *redis.Client) *DirectoryCache {
	return &DirectoryCache{client: client}
}

// Get returns the cached directory and whether the entry was present.
func (c *DirectoryCache) Get(ctx context.Context) ([]domain.Developer, bool, error) {
	raw, err := c.client.Get(ctx, directoryKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("directory cache get: %w", err)
	}

	var developers []domain.Developer
	if err := json.Unmarshal(raw, &developers); err != nil {
		return nil, false, fmt.Errorf("directory cache decode: %w", err)
	}
	return developers, true, nil
}

// Set stores the directory snapshot (expires after directoryTTL).
func (c *DirectoryCache) Set(ctx context.Context, developers []domain.Developer) error {
	raw, err := json.Marshal(developers)
	if err != nil {
		return fmt.Errorf("directory cache encode: %w", err)
	}
	return c.client.Set(ctx, directoryKey, raw, directoryTTL).Err()
}

// Invalidate drops the cached directory.
func (c *DirectoryCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, directoryKey).Err()
}
