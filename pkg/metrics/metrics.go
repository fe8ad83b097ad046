package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// ResultSuccess indicates a successful operation
	ResultSuccess = "success"
	// ResultError indicates a failed operation
	ResultError = "error"

	// ResultCacheHit indicates a key served from cache
	ResultCacheHit = "hit"
	// ResultResolved indicates a key fetched, converted and cached
	ResultResolved = "resolved"
	// ResultNoKey indicates that no usable key was found
	ResultNoKey = "no_key"

	// FetchKindJWKS labels key-set fetches
	FetchKindJWKS = "jwks"
	// FetchKindDiscovery labels discovery document fetches
	FetchKindDiscovery = "discovery"
)

var (
	// ResolveTotal is a counter for signing key resolutions
	ResolveTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jwks_resolver_resolve_total",
			Help: "Total number of signing key resolutions",
		},
		[]string{"result"}, // result: hit, resolved, no_key, error
	)

	// FetchTotal is a counter for outbound document fetches
	FetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jwks_resolver_fetch_total",
			Help: "Total number of key-set and discovery document fetches",
		},
		[]string{"kind", "result"}, // kind: jwks, discovery, result: success, error
	)

	// FetchDuration is a histogram for fetch duration
	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jwks_resolver_fetch_duration_seconds",
			Help:    "Duration of key-set and discovery document fetches in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"}, // kind: jwks, discovery
	)

	// ConversionTotal is a counter for key material conversions
	ConversionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jwks_resolver_conversion_total",
			Help: "Total number of key material conversions",
		},
		[]string{"path", "result"}, // path: x5c, rsa, unsupported, result: success, error
	)

	// ErrorsTotal is a counter for errors by type
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jwks_resolver_errors_total",
			Help: "Total number of errors by type",
		},
		[]string{"type"}, // type: FetchFailed, UnexpectedStatus, InvalidResponse, DiscoveryFailed, etc.
	)
)

// RecordResolve records a signing key resolution
func RecordResolve(result string) {
	ResolveTotal.WithLabelValues(result).Inc()
}

// RecordFetch records a document fetch
func RecordFetch(kind, result string, duration float64) {
	FetchTotal.WithLabelValues(kind, result).Inc()
	FetchDuration.WithLabelValues(kind).Observe(duration)
}

// RecordConversion records a key material conversion
func RecordConversion(path, result string) {
	ConversionTotal.WithLabelValues(path, result).Inc()
}

// RecordError records an error by type
func RecordError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}
