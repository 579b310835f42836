// Package cache holds the per-user resume-count cache backing the free-tier
// save gate. The count is invalidated after every successful save so the gate
// never works from a stale number.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// countTTL bounds staleness even if an invalidation is lost.
const countTTL = 10 * time.Minute

// ErrMiss is returned when the cache has no value for the user.
var ErrMiss = fmt.Errorf("cache miss")

// Counts caches the number of stored resumes per user.
type Counts interface {
	// Get returns the cached count, or ErrMiss.
	Get(ctx context.Context, userID uuid.UUID) (int, error)
	// Set stores the count.
	Set(ctx context.Context, userID uuid.UUID, count int) error
	// Invalidate drops the cached count so the next read refetches.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// RedisCounts is the redis-backed Counts used in production.
type RedisCounts struct {
	client *redis.Client
}

// NewRedisCounts creates a Counts backed by the given redis client.
func NewRedisCounts(client *redis.Client) *RedisCounts {
	return &RedisCounts{client: client}
}

func countKey(userID uuid.UUID) string {
	return "resume_count:" + userID.String()
}

// Get returns the cached count, or ErrMiss.
func (c *RedisCounts) Get(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := c.client.Get(ctx, countKey(userID)).Int()
	if err == redis.Nil {
		return 0, ErrMiss
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read count cache: %w", err)
	}
	return n, nil
}

// Set stores the count with a TTL.
func (c *RedisCounts) Set(ctx context.Context, userID uuid.UUID, count int) error {
	if err := c.client.Set(ctx, countKey(userID), count, countTTL).Err(); err != nil {
		return fmt.Errorf("failed to write count cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached count.
func (c *RedisCounts) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Del(ctx, countKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate count cache: %w", err)
	}
	return nil
}

// MemoryCounts is an in-process Counts used when no redis address is
// configured, and in tests.
type MemoryCounts struct {
	mu     sync.Mutex
	counts map[uuid.UUID]int
}

// NewMemoryCounts creates an empty in-process cache.
func NewMemoryCounts() *MemoryCounts {
	return &MemoryCounts{counts: make(map[uuid.UUID]int)}
}

// Get returns the cached count, or ErrMiss.
func (c *MemoryCounts) Get(_ context.Context, userID uuid.UUID) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, ok := c.counts[userID]
	if !ok {
		return 0, ErrMiss
	}
	return n, nil
}

// Set stores the count.
func (c *MemoryCounts) Set(_ context.Context, userID uuid.UUID, count int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[userID] = count
	return nil
}

// Invalidate drops the cached count.
func (c *MemoryCounts) Invalidate(_ context.Context, userID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.counts, userID)
	return nil
}
