package cache

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCountsMiss(t *testing.T) {
	c := NewMemoryCounts()

	_, err := c.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryCountsSetGet(t *testing.T) {
	c := NewMemoryCounts()
	userID := uuid.New()

	require.NoError(t, c.Set(context.Background(), userID, 3))

	n, err := c.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestMemoryCountsInvalidate(t *testing.T) {
	c := NewMemoryCounts()
	userID := uuid.New()

	require.NoError(t, c.Set(context.Background(), userID, 1))
	require.NoError(t, c.Invalidate(context.Background(), userID))

	_, err := c.Get(context.Background(), userID)
	assert.ErrorIs(t, err, ErrMiss)

	// Invalidating an absent entry is a no-op
	assert.NoError(t, c.Invalidate(context.Background(), uuid.New()))
}

func TestMemoryCountsIsolatedPerUser(t *testing.T) {
	c := NewMemoryCounts()
	a, b := uuid.New(), uuid.New()

	require.NoError(t, c.Set(context.Background(), a, 1))
	require.NoError(t, c.Set(context.Background(), b, 5))
	require.NoError(t, c.Invalidate(context.Background(), a))

	n, err := c.Get(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestCountKey(t *testing.T) {
	userID := uuid.MustParse("4f5e6d7c-8b9a-4a1b-9c2d-3e4f5a6b7c8d")
	assert.Equal(t, "resume_count:4f5e6d7c-8b9a-4a1b-9c2d-3e4f5a6b7c8d", countKey(userID))
}
