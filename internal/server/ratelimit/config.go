package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the rate limiting configuration for one endpoint. Path
// supports prefix matching when it ends with "/".
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int // defaults to Limit if 0
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         enabled,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(getEnvString("RATE_LIMIT_WHITELIST", "")),
		Blacklist:       parseIPList(getEnvString("RATE_LIMIT_BLACKLIST", "")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-endpoint limits.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: expensive operations (Chrome print, model calls)
		{Path: "/v1/resumes/", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/v1/ai/enhance", Method: "POST", Limit: 60, Window: time.Hour, Burst: 5},
		{Path: "/v1/ai/extract", Method: "POST", Limit: 20, Window: time.Hour, Burst: 2},

		// Tier 2: payment operations
		{Path: "/v1/payments/orders", Method: "POST", Limit: 20, Window: time.Hour, Burst: 5},
		{Path: "/v1/payments/verify", Method: "POST", Limit: 20, Window: time.Hour, Burst: 5},

		// Tier 3: auth (brute-force bound)
		{Path: "/v1/auth/register", Method: "POST", Limit: 20, Window: time.Hour, Burst: 5},
		{Path: "/v1/auth/login", Method: "POST", Limit: 30, Window: 15 * time.Minute, Burst: 10},

		// Tier 4: builder writes; the editor sends a draft PUT per keystroke burst
		{Path: "/v1/builder/draft", Method: "PUT", Limit: 600, Window: time.Minute, Burst: 60},
		{Path: "/v1/render/preview", Method: "POST", Limit: 300, Window: time.Minute, Burst: 30},

		// Reads fall under the default limit; /health is unlimited via the
		// matcher special case.
	}
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a map.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}
