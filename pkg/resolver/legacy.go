package resolver

import (
	"context"
	"maps"

	"go.uber.org/zap"

	"github.com/jwks-resolver/jwks-resolver/pkg/jwks"
	"github.com/jwks-resolver/jwks-resolver/pkg/validation"
)

// LegacyFetchAllKeys returns a PEM certificate per kid for every key of the
// issuer's key set that carries an x5c chain. Keys without one are skipped.
//
// The whole map is cached; when the cache holds it, nothing is fetched.
//
// Deprecated: use ResolveSigningKey, which also handles keys published only as
// RSA modulus and exponent.
func (r *Resolver) LegacyFetchAllKeys(ctx context.Context, issuer string) (map[string]string, error) {
	key := LegacyCacheKey(issuer, r.normalizeLegacyCacheKey)
	if cached, hit := r.cache.Get(key); hit {
		if keys, isMap := cached.(map[string]string); isMap {
			return maps.Clone(keys), nil
		}
	}

	jwksURL, err := r.discovery.ResolveJWKSURI(ctx, issuer)
	if err != nil {
		return nil, err
	}

	body, err := r.fetchKeySet(ctx, jwksURL)
	if err != nil {
		return nil, err
	}

	set := jwks.Parse(body)
	keys := make(map[string]string, len(set.Keys))
	for _, entry := range set.Keys {
		if !validation.HasUsableFirst(entry.X5c, validation.IsEmptyString) {
			r.logger.Debug("Skipping key without certificate chain",
				zap.String("jwksURL", jwksURL),
				zap.String("kid", entry.Kid))
			continue
		}
		keys[entry.Kid] = jwks.CertificatePEM(entry.X5c[0])
	}

	r.cache.Set(key, keys)

	return maps.Clone(keys), nil
}
