package config

import (
	"os"
	"testing"
	"time"

	"sjsage522/prodlink/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	// Test with default values
	config := LoadConfig()
	assert.Equal(t, "5000", config.Port)
	assert.Equal(t, []string{"*"}, config.AllowedOrigins)
	assert.Equal(t, "", config.MemcacheAddr)
	assert.Equal(t, "", config.RedisAddr)
	assert.Equal(t, 1, config.RedisStreamCount)
	assert.Equal(t, 10*time.Second, config.FetchTimeout)
	assert.Equal(t, 600*time.Second, config.CacheTTL)
	assert.Equal(t, "R$", config.DefaultCurrency)
	assert.NoError(t, config.Validate())

	// Test with environment variables
	os.Setenv("PORT", "8080")
	os.Setenv("ALLOWED_ORIGINS", "https://prodlink.app, http://localhost:3000")
	os.Setenv("REDIS_ADDR", "redis.example.com:6379")
	os.Setenv("REDIS_DB", "1")
	os.Setenv("MEMCACHE_ADDR", "memcache.example.com:11211")
	os.Setenv("CACHE_TTL_SECONDS", "30")
	os.Setenv("DEFAULT_CURRENCY", "US$")

	config = LoadConfig()
	assert.Equal(t, "8080", config.Port)
	assert.Equal(t, []string{"https://prodlink.app", "http://localhost:3000"}, config.AllowedOrigins)
	assert.Equal(t, "redis.example.com:6379", config.RedisAddr)
	assert.Equal(t, 1, config.RedisDB)
	assert.Equal(t, "memcache.example.com:11211", config.MemcacheAddr)
	assert.Equal(t, 30*time.Second, config.CacheTTL)
	assert.Equal(t, "US$", config.DefaultCurrency)
	assert.NoError(t, config.Validate())

	// Clean up
	os.Unsetenv("PORT")
	os.Unsetenv("ALLOWED_ORIGINS")
	os.Unsetenv("REDIS_ADDR")
	os.Unsetenv("REDIS_DB")
	os.Unsetenv("MEMCACHE_ADDR")
	os.Unsetenv("CACHE_TTL_SECONDS")
	os.Unsetenv("DEFAULT_CURRENCY")
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"invalid port", func(c *Config) { c.Port = "http" }},
		{"zero rate limit", func(c *Config) { c.RateLimitPerSecond = 0 }},
		{"zero fetch timeout", func(c *Config) { c.FetchTimeout = 0 }},
		{"zero cache ttl", func(c *Config) { c.CacheTTL = 0 }},
		{"redis without stream", func(c *Config) { c.RedisAddr = "localhost:6379"; c.RedisStream = "" }},
		{"redis with zero streams", func(c *Config) { c.RedisAddr = "localhost:6379"; c.RedisStreamCount = 0 }},
		{"no origins", func(c *Config) { c.AllowedOrigins = nil }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := LoadConfig()
			tc.mutate(config)
			err := config.Validate()
			assert.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrorTypeConfiguration))
		})
	}
}

func TestIsProduction(t *testing.T) {
	config := LoadConfig()
	assert.False(t, config.IsProduction())
	config.Environment = "production"
	assert.True(t, config.IsProduction())
}
