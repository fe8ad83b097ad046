package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/jwks-resolver/jwks-resolver/pkg/cache"
	"github.com/jwks-resolver/jwks-resolver/pkg/config"
	"github.com/jwks-resolver/jwks-resolver/pkg/fetch"
	"github.com/jwks-resolver/jwks-resolver/pkg/jwks"
	"github.com/jwks-resolver/jwks-resolver/pkg/metrics"
)

// Resolver resolves signing keys from key sets
type Resolver struct {
	fetcher   fetch.Fetcher
	cache     cache.Cache
	discovery *Discovery
	logger    *zap.Logger
	recorder  recorder

	normalizeLegacyCacheKey bool
}

// Option configures a Resolver
type Option func(*Resolver)

// WithMetrics turns Prometheus metric recording on or off
func WithMetrics(enabled bool) Option {
	return func(r *Resolver) {
		r.recorder.enabled = enabled
	}
}

// WithNormalizedLegacyCacheKey makes LegacyFetchAllKeys join issuer and
// well-known path with a single slash in its cache key
func WithNormalizedLegacyCacheKey(enabled bool) Option {
	return func(r *Resolver) {
		r.normalizeLegacyCacheKey = enabled
	}
}

// New creates a new resolver. A nil store caches nothing and a nil logger
// logs nothing.
func New(fetcher fetch.Fetcher, store cache.Cache, logger *zap.Logger, opts ...Option) *Resolver {
	if store == nil {
		store = cache.Noop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Resolver{
		fetcher: fetcher,
		cache:   store,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.discovery = NewDiscovery(fetcher, logger)
	r.discovery.recorder = r.recorder

	return r
}

// NewFromConfig creates a resolver backed by the HTTP fetcher and the cache
// selected by cfg
func NewFromConfig(cfg *config.Config, logger *zap.Logger) (*Resolver, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	fetcher := fetch.NewHTTPFetcher(cfg.HTTP, nil, logger)

	return New(fetcher, cache.FromConfig(cfg.Cache), logger,
		WithMetrics(cfg.Metrics.Enabled),
		WithNormalizedLegacyCacheKey(cfg.Legacy.NormalizeCacheKey),
	), nil
}

// Discovery returns the discovery resolver sharing this resolver's fetcher
func (r *Resolver) Discovery() *Discovery {
	return r.discovery
}

// ResolveSigningKey returns the PEM encoded key for kid from the key set at
// jwksURL. An empty kid selects the first key.
//
// ok is false when the key set holds no usable key for kid; that outcome is
// not cached. Fetch errors are returned unchanged.
func (r *Resolver) ResolveSigningKey(ctx context.Context, jwksURL, kid string) (pem string, ok bool, err error) {
	key := CacheKey(jwksURL, kid)
	if cached, hit := r.cache.Get(key); hit {
		if cachedPEM, isString := cached.(string); isString && cachedPEM != "" {
			r.logger.Debug("Signing key served from cache", zap.String("jwksURL", jwksURL), zap.String("kid", kid))
			r.recorder.resolve(metrics.ResultCacheHit)
			return cachedPEM, true, nil
		}
	}

	body, err := r.fetchKeySet(ctx, jwksURL)
	if err != nil {
		r.recorder.resolve(metrics.ResultError)
		return "", false, err
	}

	entry, found := jwks.Select(jwks.Parse(body), kid)
	if !found {
		r.logger.Debug("No matching key in key set", zap.String("jwksURL", jwksURL), zap.String("kid", kid))
		r.recorder.resolve(metrics.ResultNoKey)
		return "", false, nil
	}

	pem, err = r.convert(entry, jwksURL)
	if err != nil {
		r.recorder.resolve(metrics.ResultNoKey)
		return "", false, nil
	}

	r.cache.Set(key, pem)
	r.recorder.resolve(metrics.ResultResolved)

	return pem, true, nil
}

// ResolveIssuerKey discovers the issuer's key set and resolves kid from it
func (r *Resolver) ResolveIssuerKey(ctx context.Context, issuer, kid string) (string, bool, error) {
	jwksURL, err := r.discovery.ResolveJWKSURI(ctx, issuer)
	if err != nil {
		r.recorder.resolve(metrics.ResultError)
		return "", false, err
	}

	return r.ResolveSigningKey(ctx, jwksURL, kid)
}

func (r *Resolver) fetchKeySet(ctx context.Context, jwksURL string) (json.RawMessage, error) {
	started := time.Now()
	body, err := r.fetcher.Fetch(ctx, http.MethodGet, jwksURL)
	r.recorder.fetch(metrics.FetchKindJWKS, err, started)
	if err != nil {
		r.logger.Debug("Failed to fetch key set", zap.String("jwksURL", jwksURL), zap.Error(err))
		return nil, err
	}
	return body, nil
}

func (r *Resolver) convert(entry jwks.JWK, jwksURL string) (string, error) {
	material := entry.Material()

	pem, err := jwks.Convert(material)
	r.recorder.conversion(material.Path(), err)
	if err != nil {
		r.logger.Warn("Key entry could not be converted",
			zap.String("jwksURL", jwksURL),
			zap.String("kid", entry.Kid),
			zap.String("path", material.Path()),
			zap.Error(err))
		return "", err
	}

	return pem, nil
}
