package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearServerEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DATABASE_URL", "PORT", "GEMINI_API_KEY",
		"PAYMENT_KEY_ID", "PAYMENT_KEY_SECRET", "REDIS_ADDR",
	} {
		t.Setenv(key, "")
	}
}

func TestNewServerConfigDefaults(t *testing.T) {
	clearServerEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/resumes")

	cfg, err := NewServerConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "postgres://localhost/resumes", cfg.DatabaseURL)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Empty(t, cfg.RedisAddr)
}

func TestNewServerConfigRequiresDatabaseURL(t *testing.T) {
	clearServerEnv(t)

	_, err := NewServerConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestNewServerConfigPort(t *testing.T) {
	clearServerEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/resumes")
	t.Setenv("PORT", "9000")

	cfg, err := NewServerConfig()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
}

func TestNewServerConfigBadPort(t *testing.T) {
	clearServerEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/resumes")

	for _, port := range []string{"abc", "0", "70000"} {
		t.Setenv("PORT", port)
		_, err := NewServerConfig()
		assert.Error(t, err, "PORT=%s", port)
	}
}

func TestNewServerConfigPaymentKeysTogether(t *testing.T) {
	clearServerEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/resumes")
	t.Setenv("PAYMENT_KEY_ID", "key_id")

	_, err := NewServerConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PAYMENT_KEY_ID and PAYMENT_KEY_SECRET")

	t.Setenv("PAYMENT_KEY_SECRET", "key_secret")
	cfg, err := NewServerConfig()
	require.NoError(t, err)
	assert.Equal(t, "key_id", cfg.PaymentKeyID)
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, "a-test-secret", cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours)
}

func TestNewJWTConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := NewJWTConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestNewJWTConfigBadExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-test-secret")

	for _, hours := range []string{"abc", "0", "-1"} {
		t.Setenv("JWT_EXPIRATION_HOURS", hours)
		_, err := NewJWTConfig()
		assert.Error(t, err, "JWT_EXPIRATION_HOURS=%s", hours)
	}
}

func TestNewPasswordConfigDefaults(t *testing.T) {
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("PASSWORD_PEPPER", "")

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Empty(t, cfg.Pepper)
}

func TestNewPasswordConfigCostRange(t *testing.T) {
	t.Setenv("PASSWORD_PEPPER", "")

	for _, cost := range []string{"9", "15", "abc"} {
		t.Setenv("BCRYPT_COST", cost)
		_, err := NewPasswordConfig()
		assert.Error(t, err, "BCRYPT_COST=%s", cost)
	}

	t.Setenv("BCRYPT_COST", "10")
	cfg, err := NewPasswordConfig()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestHashAndVerifyPassword(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, cfg.VerifyPassword("hunter2", hash))
	assert.False(t, cfg.VerifyPassword("hunter3", hash))
	assert.False(t, cfg.VerifyPassword("hunter2", "not-a-hash"))
}

func TestPasswordPepper(t *testing.T) {
	peppered := &PasswordConfig{BcryptCost: 10, Pepper: "global-secret"}
	plain := &PasswordConfig{BcryptCost: 10}

	hash, err := peppered.HashPassword("hunter2")
	require.NoError(t, err)

	assert.True(t, peppered.VerifyPassword("hunter2", hash))
	// Without the pepper the same password must not verify
	assert.False(t, plain.VerifyPassword("hunter2", hash))
}
