package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(configs ...EndpointConfig) *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		EndpointConfigs: configs,
	}
}

func TestTokenBucketBurst(t *testing.T) {
	// 2 burst, slow refill: the third immediate request is rejected
	tb := newTokenBucket(2, 0.001)

	assert.True(t, tb.allow())
	assert.True(t, tb.allow())
	assert.False(t, tb.allow())
}

func TestTokenBucketRefills(t *testing.T) {
	tb := newTokenBucket(1, 100) // 100 tokens/sec

	require.True(t, tb.allow())
	require.False(t, tb.allow())

	time.Sleep(30 * time.Millisecond)
	assert.True(t, tb.allow(), "bucket must refill over time")
}

func TestLimiterDisabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/v1/resumes", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiterEndpointLimit(t *testing.T) {
	l := NewLimiter(testConfig(
		EndpointConfig{Path: "/v1/ai/extract", Method: "POST", Limit: 20, Window: time.Hour, Burst: 2},
	))
	defer l.Stop()

	allowed, info := l.Allow("1.2.3.4", "/v1/ai/extract", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 20, info.Limit)

	allowed, _ = l.Allow("1.2.3.4", "/v1/ai/extract", "POST")
	assert.True(t, allowed)

	allowed, info = l.Allow("1.2.3.4", "/v1/ai/extract", "POST")
	assert.False(t, allowed, "burst of 2 exhausted")
	assert.Positive(t, info.RetryAfter)
}

func TestLimiterPerClientBuckets(t *testing.T) {
	l := NewLimiter(testConfig(
		EndpointConfig{Path: "/v1/ai/extract", Method: "POST", Limit: 20, Window: time.Hour, Burst: 1},
	))
	defer l.Stop()

	allowed, _ := l.Allow("1.1.1.1", "/v1/ai/extract", "POST")
	require.True(t, allowed)
	allowed, _ = l.Allow("1.1.1.1", "/v1/ai/extract", "POST")
	require.False(t, allowed)

	// A different client has its own bucket
	allowed, _ = l.Allow("2.2.2.2", "/v1/ai/extract", "POST")
	assert.True(t, allowed)
}

func TestLimiterWhitelistAndBlacklist(t *testing.T) {
	cfg := testConfig(
		EndpointConfig{Path: "/v1/ai/extract", Method: "POST", Limit: 1, Window: time.Hour, Burst: 1},
	)
	cfg.Whitelist["9.9.9.9"] = true
	cfg.Blacklist["6.6.6.6"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("9.9.9.9", "/v1/ai/extract", "POST")
		assert.True(t, allowed, "whitelisted clients are never limited")
	}

	allowed, _ := l.Allow("6.6.6.6", "/health", "GET")
	assert.False(t, allowed, "blacklisted clients are always rejected")
}

func TestMatchEndpointHealthUnlimited(t *testing.T) {
	config := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())
	require.NotNil(t, config)
	assert.Equal(t, 0, config.Limit)
}

func TestMatchEndpointExact(t *testing.T) {
	configs := DefaultEndpointConfigs()

	config := MatchEndpoint("/v1/ai/extract", "POST", configs)
	require.NotNil(t, config)
	assert.Equal(t, 20, config.Limit)

	// Method matters
	assert.Nil(t, MatchEndpoint("/v1/ai/extract", "GET", configs))
}

func TestMatchEndpointPrefix(t *testing.T) {
	configs := DefaultEndpointConfigs()

	// Export lives under /v1/resumes/{id}/export and matches the prefix rule
	config := MatchEndpoint("/v1/resumes/3f6f0cb2-7a11-4dbb-8ec5-111111111111/export", "POST", configs)
	require.NotNil(t, config)
	assert.Equal(t, "/v1/resumes/", config.Path)

	// The bare collection path is not covered by the prefix rule
	assert.Nil(t, MatchEndpoint("/v1/resumes", "POST", configs))
}

func TestMatchEndpointNoMatch(t *testing.T) {
	assert.Nil(t, MatchEndpoint("/v1/templates", "GET", DefaultEndpointConfigs()))
}
