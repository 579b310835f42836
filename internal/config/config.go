// Package config provides configuration loading and validation for the server.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// ServerConfig holds the top-level server configuration read from the
// environment. DatabaseURL and JWT settings are required; the AI, payment,
// and redis integrations are optional and their endpoints degrade to 503
// when unconfigured.
type ServerConfig struct {
	Port        int
	DatabaseURL string

	// Optional integrations.
	GeminiAPIKey     string
	PaymentKeyID     string
	PaymentKeySecret string
	RedisAddr        string
}

// NewServerConfig builds the server configuration from environment variables.
func NewServerConfig() (*ServerConfig, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	port := 8080
	if portStr := os.Getenv("PORT"); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		port = p
	}

	cfg := &ServerConfig{
		Port:             port,
		DatabaseURL:      databaseURL,
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		PaymentKeyID:     os.Getenv("PAYMENT_KEY_ID"),
		PaymentKeySecret: os.Getenv("PAYMENT_KEY_SECRET"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *ServerConfig) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	if (c.PaymentKeyID == "") != (c.PaymentKeySecret == "") {
		return fmt.Errorf("PAYMENT_KEY_ID and PAYMENT_KEY_SECRET must be set together")
	}
	return nil
}
