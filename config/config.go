package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"sjsage522/prodlink/pkg/errors"
)

// Config represents the application configuration
type Config struct {
	// HTTP server configuration
	Host               string
	Port               string
	AllowedOrigins     []string
	RateLimitPerSecond float64

	// Fetch configuration
	FetchTimeout time.Duration
	BlockTime    time.Duration

	// Cache configuration, empty MemcacheAddr selects the in-memory cache
	MemcacheAddr string
	CacheTTL     time.Duration

	// Redis configuration, empty RedisAddr disables publishing
	RedisAddr            string
	RedisDB              int
	RedisStream          string
	RedisStreamCount     int
	RedisStreamMaxLength int
	TrimInterval         time.Duration

	// Extraction configuration
	SiteProfilesFile       string
	DefaultCurrency        string
	TitlePlaceholder       string
	PricePlaceholder       string
	ImagePlaceholder       string
	DescriptionPlaceholder string

	// Share message configuration
	WhatsAppPhoneNumber string
	WhatsAppAPIURL      string
	ShareSignature      string

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() *Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	redisStreamCount, _ := strconv.Atoi(getEnv("REDIS_STREAM_COUNT", "1"))
	redisStreamMaxLength, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAX_LENGTH", "1000"))
	rateLimit, _ := strconv.ParseFloat(getEnv("RATE_LIMIT_PER_SECOND", "5"), 64)

	return &Config{
		Host:                   getEnv("HOST", "0.0.0.0"),
		Port:                   getEnv("PORT", "5000"),
		AllowedOrigins:         splitList(getEnv("ALLOWED_ORIGINS", "*")),
		RateLimitPerSecond:     rateLimit,
		FetchTimeout:           getSeconds("FETCH_TIMEOUT_SECONDS", "10"),
		BlockTime:              getSeconds("BLOCK_SECONDS", "300"),
		MemcacheAddr:           getEnv("MEMCACHE_ADDR", ""),
		CacheTTL:               getSeconds("CACHE_TTL_SECONDS", "600"),
		RedisAddr:              getEnv("REDIS_ADDR", ""),
		RedisDB:                redisDB,
		RedisStream:            getEnv("REDIS_STREAM", "products"),
		RedisStreamCount:       redisStreamCount,
		RedisStreamMaxLength:   redisStreamMaxLength,
		TrimInterval:           getSeconds("TRIM_INTERVAL_SECONDS", "60"),
		SiteProfilesFile:       getEnv("SITE_PROFILES_FILE", ""),
		DefaultCurrency:        getEnv("DEFAULT_CURRENCY", "R$"),
		TitlePlaceholder:       getEnv("TITLE_PLACEHOLDER", "Title unavailable"),
		PricePlaceholder:       getEnv("PRICE_PLACEHOLDER", "Price unavailable"),
		ImagePlaceholder:       getEnv("IMAGE_PLACEHOLDER", "https://via.placeholder.com/150?text=No+Image"),
		DescriptionPlaceholder: getEnv("DESCRIPTION_PLACEHOLDER", "Description unavailable"),
		WhatsAppPhoneNumber:    getEnv("WHATSAPP_PHONE_NUMBER", "5581973085768"),
		WhatsAppAPIURL:         getEnv("WHATSAPP_API_URL", "https://api.whatsapp.com/send"),
		ShareSignature:         getEnv("SHARE_SIGNATURE", "🚀 Via ProdLink!"),
		Environment:            getEnv("PRODLINK_ENVIRONMENT", "development"),
	}
}

// Validate checks the configuration for values the services cannot start with
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return errors.NewConfiguration(fmt.Sprintf("invalid PORT %q", c.Port), err)
	}
	if c.RateLimitPerSecond <= 0 {
		return errors.NewConfiguration("RATE_LIMIT_PER_SECOND must be positive", nil)
	}
	if c.FetchTimeout <= 0 {
		return errors.NewConfiguration("FETCH_TIMEOUT_SECONDS must be positive", nil)
	}
	if c.CacheTTL <= 0 {
		return errors.NewConfiguration("CACHE_TTL_SECONDS must be positive", nil)
	}
	if c.RedisAddr != "" {
		if c.RedisStream == "" {
			return errors.NewConfiguration("REDIS_STREAM is required when REDIS_ADDR is set", nil)
		}
		if c.RedisStreamCount < 1 {
			return errors.NewConfiguration("REDIS_STREAM_COUNT must be at least 1", nil)
		}
		if c.TrimInterval <= 0 {
			return errors.NewConfiguration("TRIM_INTERVAL_SECONDS must be positive", nil)
		}
	}
	if len(c.AllowedOrigins) == 0 {
		return errors.NewConfiguration("ALLOWED_ORIGINS must list at least one origin", nil)
	}
	return nil
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getSeconds(key, defaultValue string) time.Duration {
	seconds, _ := strconv.Atoi(getEnv(key, defaultValue))
	return time.Duration(seconds) * time.Second
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
