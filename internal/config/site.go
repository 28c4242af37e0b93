package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvSiteBasePath     = "STEEPLE_SITE_BASE_PATH"
	EnvSiteCacheEnabled = "STEEPLE_SITE_CACHE_ENABLED"
	EnvSiteCacheMaxCost = "STEEPLE_SITE_CACHE_MAX_COST"
	EnvSiteCacheTTL     = "STEEPLE_SITE_CACHE_TTL"
)

// SiteConfig holds public site rendering settings, including the
// composed-page cache. Caching happens at the page composition layer;
// section resolution itself never caches.
type SiteConfig struct {
	BasePath     string `toml:"base_path"`
	CacheEnabled bool   `toml:"cache_enabled"`
	CacheMaxCost int64  `toml:"cache_max_cost"`
	CacheTTL     string `toml:"cache_ttl"`
}

// CacheTTLDuration returns CacheTTL as a time.Duration.
func (c *SiteConfig) CacheTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.CacheTTL)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *SiteConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *SiteConfig) Merge(overlay *SiteConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.CacheEnabled {
		c.CacheEnabled = true
	}
	if overlay.CacheMaxCost != 0 {
		c.CacheMaxCost = overlay.CacheMaxCost
	}
	if overlay.CacheTTL != "" {
		c.CacheTTL = overlay.CacheTTL
	}
}

func (c *SiteConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/site"
	}
	if c.CacheMaxCost == 0 {
		c.CacheMaxCost = 1 << 24 // 16MB of composed pages
	}
	if c.CacheTTL == "" {
		c.CacheTTL = "30s"
	}
}

func (c *SiteConfig) loadEnv() {
	if v := os.Getenv(EnvSiteBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvSiteCacheEnabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.CacheEnabled = enabled
		}
	}
	if v := os.Getenv(EnvSiteCacheMaxCost); v != "" {
		if cost, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.CacheMaxCost = cost
		}
	}
	if v := os.Getenv(EnvSiteCacheTTL); v != "" {
		c.CacheTTL = v
	}
}

func (c *SiteConfig) validate() error {
	if c.CacheMaxCost < 0 {
		return fmt.Errorf("invalid cache_max_cost: %d", c.CacheMaxCost)
	}
	if _, err := time.ParseDuration(c.CacheTTL); err != nil {
		return fmt.Errorf("invalid cache_ttl: %w", err)
	}
	return nil
}
