// Package redis wires the directory cache's backing store. The service
// only needs an address and a database index, so that is all New takes.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// pingTimeout bounds the startup connectivity check.
const pingTimeout = 3 * time.Second

// New dials Redis at addr, selects db, and verifies the connection with a
// ping so a bad address fails at boot instead of on the first cache read.
func New(ctx context.Context, addr string, db int) (*redis.Client, error) {
	if addr == "" {
		return nil, errors.New("redis: address is required")
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}
