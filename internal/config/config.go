package config

import (
	"net/url"
	"time"

	apperr "roguewar-client/internal/errors"
)

// DefaultBaseURL is the public RogueWar service.
const DefaultBaseURL = "http://roguewar.org"

// Version is reported in the User-Agent header.
var Version = "0.1.0"

// Config holds client settings (in-memory representation).
// Loading from env and files is handled by Load.
type Config struct {
	BaseURL   string `mapstructure:"base_url"`
	BotName   string `mapstructure:"bot_name"`
	BotSecret string `mapstructure:"bot_secret"`
	UserAgent string `mapstructure:"user_agent"`

	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"` // 0 = unlimited
	RequestBurst      int           `mapstructure:"request_burst"`

	MapCacheTTL          time.Duration `mapstructure:"map_cache_ttl"`
	CacheCleanupInterval time.Duration `mapstructure:"cache_cleanup_interval"`
	SupportRadius        float64       `mapstructure:"support_radius"` // adjacency distance

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"` // console | json
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		BaseURL:              DefaultBaseURL,
		UserAgent:            "RogueWarApi/" + Version,
		RequestTimeout:       30 * time.Second,
		RequestsPerSecond:    5,
		RequestBurst:         5,
		MapCacheTTL:          60 * time.Second,
		CacheCleanupInterval: 5 * time.Minute,
		SupportRadius:        50,
		LogLevel:             "info",
		LogFormat:            "console",
	}
}

// APIBase returns the prefix every endpoint path is appended to.
func (c *Config) APIBase() string {
	base := c.BaseURL
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	return base + "/api/"
}

// HasCredentials reports whether bot credentials are configured.
func (c *Config) HasCredentials() bool {
	return c.BotName != "" && c.BotSecret != ""
}

// Validate checks that the config can be used to build a client.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return apperr.Validationf("base_url required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return apperr.Validationf("base_url %q is not an absolute URL", c.BaseURL)
	}
	if c.RequestTimeout <= 0 {
		return apperr.Validationf("request_timeout must be > 0")
	}
	if c.RequestsPerSecond < 0 {
		return apperr.Validationf("requests_per_second must be >= 0")
	}
	if c.RequestsPerSecond > 0 && c.RequestBurst < 1 {
		return apperr.Validationf("request_burst must be >= 1 when rate limiting")
	}
	if c.MapCacheTTL < 0 {
		return apperr.Validationf("map_cache_ttl must be >= 0")
	}
	if c.SupportRadius < 0 {
		return apperr.Validationf("support_radius must be >= 0")
	}
	if (c.BotName == "") != (c.BotSecret == "") {
		return apperr.Validationf("bot_name and bot_secret must be set together")
	}
	return nil
}
