package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	resolvererrors "github.com/jwks-resolver/jwks-resolver/pkg/errors"
)

// Load loads configuration from file and environment variables.
// A missing file is not an error; defaults are used instead.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Load from file if exists
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	// Override with environment variables
	if err := LoadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from JWKS_RESOLVER_* environment variables
func LoadFromEnv(cfg *Config) error {
	getEnv := func(key string) string {
		return os.Getenv(EnvPrefix + key)
	}

	parseDuration := func(key string, dst *Duration) error {
		val := getEnv(key)
		if val == "" {
			return nil
		}
		d, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		dst.Duration = d
		return nil
	}

	parseBool := func(key string, dst *bool) error {
		val := getEnv(key)
		if val == "" {
			return nil
		}
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = b
		return nil
	}

	parseInt := func(key string, dst *int64) error {
		val := getEnv(key)
		if val == "" {
			return nil
		}
		i, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = i
		return nil
	}

	// Load logging settings
	if val := getEnv("LOGGING_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := getEnv("LOGGING_FORMAT"); val != "" {
		cfg.Logging.Format = val
	}

	if err := parseBool("METRICS_ENABLED", &cfg.Metrics.Enabled); err != nil {
		return err
	}

	// Load HTTP settings
	if err := parseDuration("HTTP_TIMEOUT", &cfg.HTTP.Timeout); err != nil {
		return err
	}
	if val := getEnv("HTTP_USER_AGENT"); val != "" {
		cfg.HTTP.UserAgent = val
	}
	if err := parseInt("HTTP_MAX_BODY_BYTES", &cfg.HTTP.MaxBodyBytes); err != nil {
		return err
	}
	attempts := int64(cfg.HTTP.Retry.MaxAttempts)
	if err := parseInt("HTTP_RETRY_MAX_ATTEMPTS", &attempts); err != nil {
		return err
	}
	cfg.HTTP.Retry.MaxAttempts = int(attempts)
	if err := parseDuration("HTTP_RETRY_DELAY", &cfg.HTTP.Retry.Delay); err != nil {
		return err
	}

	// Load cache settings
	if err := parseBool("CACHE_ENABLED", &cfg.Cache.Enabled); err != nil {
		return err
	}
	if err := parseDuration("CACHE_TTL", &cfg.Cache.TTL); err != nil {
		return err
	}
	if err := parseDuration("CACHE_CLEANUP_INTERVAL", &cfg.Cache.CleanupInterval); err != nil {
		return err
	}

	return parseBool("LEGACY_NORMALIZE_CACHE_KEY", &cfg.Legacy.NormalizeCacheKey)
}

// Validate validates the configuration
func Validate(cfg *Config) error {
	if cfg == nil {
		return resolvererrors.NewInvalidConfigurationError("configuration is nil", nil)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(cfg.Logging.Level)] {
		return resolvererrors.NewInvalidConfigurationError("logging level must be one of: debug, info, warn, error", nil)
	}

	if format := strings.ToLower(cfg.Logging.Format); format != "json" && format != "console" {
		return resolvererrors.NewInvalidConfigurationError("logging format must be 'json' or 'console'", nil)
	}

	if err := validateHTTPConfig(&cfg.HTTP); err != nil {
		return resolvererrors.NewInvalidConfigurationError("http configuration validation failed", err)
	}

	if err := validateCacheConfig(&cfg.Cache); err != nil {
		return resolvererrors.NewInvalidConfigurationError("cache configuration validation failed", err)
	}

	return nil
}

// validateHTTPConfig validates HTTP transport configuration
func validateHTTPConfig(httpConfig *HTTPConfig) error {
	if httpConfig.Timeout.Duration <= 0 {
		return fmt.Errorf("http timeout must be positive, got %v", httpConfig.Timeout.Duration)
	}

	if httpConfig.MaxBodyBytes <= 0 {
		return fmt.Errorf("http max body bytes must be positive, got %d", httpConfig.MaxBodyBytes)
	}

	if httpConfig.Retry.MaxAttempts < 1 {
		return fmt.Errorf("http retry max attempts must be at least 1, got %d", httpConfig.Retry.MaxAttempts)
	}

	if httpConfig.Retry.Delay.Duration < 0 {
		return fmt.Errorf("http retry delay must be non-negative, got %v", httpConfig.Retry.Delay.Duration)
	}

	return nil
}

// validateCacheConfig validates cache configuration
func validateCacheConfig(cacheConfig *CacheConfig) error {
	if !cacheConfig.Enabled {
		return nil // Disabled cache ignores the remaining settings
	}

	if cacheConfig.TTL.Duration <= 0 {
		return fmt.Errorf("cache ttl must be positive, got %v", cacheConfig.TTL.Duration)
	}

	if cacheConfig.CleanupInterval.Duration < 0 {
		return fmt.Errorf("cache cleanup interval must be non-negative, got %v", cacheConfig.CleanupInterval.Duration)
	}

	return nil
}
