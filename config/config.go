package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Config represents the application configuration
type Config struct {
	// HTTP server
	Port        int
	Environment string

	// Portal hosts (suffix-matched against the submitted URL's hostname)
	HemnetHost string
	BooliHost  string

	// Render proxy used for Hemnet; the listing URL is appended URL-encoded
	ProxyBaseURL string

	// Fetch timeouts per portal
	HemnetTimeout time.Duration
	BooliTimeout  time.Duration

	// Response cache; an empty address disables caching
	MemcacheAddr string
	CacheTTL     time.Duration

	// Scraped-listing feed; an empty address disables publishing
	RedisAddr            string
	RedisDB              int
	RedisStream          string
	RedisStreamCount     int
	RedisStreamMaxLength int
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() *Config {
	port, _ := strconv.Atoi(getEnv("PORT", "8080"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	streamCount, _ := strconv.Atoi(getEnv("REDIS_STREAM_COUNT", "1"))
	streamMaxLen, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAX_LENGTH", "500"))
	hemnetTimeout, _ := strconv.Atoi(getEnv("HEMNET_TIMEOUT_SECONDS", "8"))
	booliTimeout, _ := strconv.Atoi(getEnv("BOOLI_TIMEOUT_SECONDS", "10"))
	cacheTTL, _ := strconv.Atoi(getEnv("CACHE_TTL_SECONDS", "300"))

	return &Config{
		Port:                 port,
		Environment:          getEnv("ENVIRONMENT", "development"),
		HemnetHost:           getEnv("HEMNET_HOST", "hemnet.se"),
		BooliHost:            getEnv("BOOLI_HOST", "booli.se"),
		ProxyBaseURL:         getEnv("PROXY_BASE_URL", "https://api.allorigins.win/raw?url="),
		HemnetTimeout:        time.Duration(hemnetTimeout) * time.Second,
		BooliTimeout:         time.Duration(booliTimeout) * time.Second,
		MemcacheAddr:         getEnv("MEMCACHE_ADDR", ""),
		CacheTTL:             time.Duration(cacheTTL) * time.Second,
		RedisAddr:            getEnv("REDIS_ADDR", ""),
		RedisDB:              redisDB,
		RedisStream:          getEnv("REDIS_STREAM", "listings"),
		RedisStreamCount:     streamCount,
		RedisStreamMaxLength: streamMaxLen,
	}
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.HemnetTimeout <= 0 || c.BooliTimeout <= 0 {
		return fmt.Errorf("fetch timeouts must be positive")
	}
	if c.HemnetHost == "" || c.BooliHost == "" {
		return fmt.Errorf("portal hosts must not be empty")
	}
	if _, err := url.Parse(c.ProxyBaseURL); err != nil {
		return fmt.Errorf("invalid proxy base URL: %w", err)
	}
	if c.RedisAddr != "" && c.RedisStreamCount < 1 {
		return fmt.Errorf("redis stream count must be at least 1")
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
