package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key, e.g. ROGUEWAR_BOT_NAME.
const EnvPrefix = "ROGUEWAR"

var keys = []string{
	"base_url", "bot_name", "bot_secret", "user_agent",
	"request_timeout", "requests_per_second", "request_burst",
	"map_cache_ttl", "cache_cleanup_interval", "support_radius",
	"log_level", "log_format",
}

// Load builds a Config from, in order of precedence:
//  1. Environment variables (ROGUEWAR_*)
//  2. .env and .env.local files
//  3. The config file at path, or ./.roguewar.yaml / ~/.roguewar.yaml when path is ""
//  4. Defaults
func Load(path string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	def := Default()
	v.SetDefault("base_url", def.BaseURL)
	v.SetDefault("user_agent", def.UserAgent)
	v.SetDefault("request_timeout", def.RequestTimeout)
	v.SetDefault("requests_per_second", def.RequestsPerSecond)
	v.SetDefault("request_burst", def.RequestBurst)
	v.SetDefault("map_cache_ttl", def.MapCacheTTL)
	v.SetDefault("cache_cleanup_interval", def.CacheCleanupInterval)
	v.SetDefault("support_radius", def.SupportRadius)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", def.LogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("bind %s: %w", k, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(".roguewar")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadEnvFiles loads .env files; .env.local overrides .env.
// Variables already present in the process environment win.
func loadEnvFiles() {
	for _, f := range []string{".env.local", ".env"} {
		_ = godotenv.Load(f)
	}
}
