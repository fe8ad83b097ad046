package config

// Config represents the resolver configuration
type Config struct {
	// Logging configuration
	Logging LoggingConfig `yaml:"logging"`

	// Metrics configuration
	Metrics MetricsConfig `yaml:"metrics"`

	// HTTP transport configuration
	HTTP HTTPConfig `yaml:"http"`

	// Cache configuration
	Cache CacheConfig `yaml:"cache"`

	// Legacy bulk fetch configuration
	Legacy LegacyConfig `yaml:"legacy"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig represents metrics configuration
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// HTTPConfig represents the outbound HTTP transport configuration
type HTTPConfig struct {
	// Timeout is the timeout of a single request
	Timeout Duration `yaml:"timeout"`
	// UserAgent is sent with every request
	UserAgent string `yaml:"userAgent"`
	// MaxBodyBytes limits the size of a response body
	MaxBodyBytes int64 `yaml:"maxBodyBytes"`
	// Retry configuration for transient failures
	Retry RetryConfig `yaml:"retry"`
}

// RetryConfig represents retry configuration
type RetryConfig struct {
	MaxAttempts int      `yaml:"maxAttempts"`
	Delay       Duration `yaml:"delay"`
}

// CacheConfig represents cache configuration
type CacheConfig struct {
	// Enabled selects the in-memory cache; when false nothing is cached
	Enabled         bool     `yaml:"enabled"`
	TTL             Duration `yaml:"ttl"`
	CleanupInterval Duration `yaml:"cleanupInterval"`
}

// LegacyConfig represents configuration of the deprecated bulk fetch
type LegacyConfig struct {
	// NormalizeCacheKey joins issuer and well-known path with a single slash
	// instead of concatenating them as-is
	NormalizeCacheKey bool `yaml:"normalizeCacheKey"`
}
