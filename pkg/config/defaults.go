package config

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
		HTTP: HTTPConfig{
			Timeout:      Duration{Duration: DefaultHTTPTimeout},
			UserAgent:    DefaultUserAgent,
			MaxBodyBytes: DefaultMaxBodyBytes,
			Retry: RetryConfig{
				MaxAttempts: DefaultRetryMaxAttempts,
				Delay:       Duration{Duration: DefaultRetryDelay},
			},
		},
		Cache: CacheConfig{
			Enabled:         false,
			TTL:             Duration{Duration: DefaultCacheTTL},
			CleanupInterval: Duration{Duration: DefaultCacheCleanupInterval},
		},
		Legacy: LegacyConfig{
			NormalizeCacheKey: false,
		},
	}
}
