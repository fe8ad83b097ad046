package config

import "time"

// Well-known paths relative to an issuer
const (
	// WellKnownJWKSPath is the default key-set path
	WellKnownJWKSPath = ".well-known/jwks.json"
	// WellKnownOpenIDConfigurationPath is the discovery document path
	WellKnownOpenIDConfigurationPath = ".well-known/openid-configuration"
)

// HTTP constants
const (
	// DefaultHTTPTimeout is the default timeout for a single request
	DefaultHTTPTimeout = 10 * time.Second
	// DefaultUserAgent is sent with every request
	DefaultUserAgent = "jwks-resolver"
	// DefaultMaxBodyBytes limits the size of key-set and discovery documents
	DefaultMaxBodyBytes = 1 << 20
	// DefaultRetryMaxAttempts is the default number of attempts per request
	DefaultRetryMaxAttempts = 3
	// DefaultRetryDelay is the default delay between attempts
	DefaultRetryDelay = 500 * time.Millisecond
)

// Cache constants
const (
	// DefaultCacheTTL is how long a resolved key stays in the memory cache
	DefaultCacheTTL = time.Hour
	// DefaultCacheCleanupInterval is how often expired entries are purged
	DefaultCacheCleanupInterval = 10 * time.Minute
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "JWKS_RESOLVER_"
