package resolver

import (
	"strings"

	"github.com/jwks-resolver/jwks-resolver/pkg/config"
)

const cacheKeySeparator = "|"

// escaping '%' first keeps the mapping injective
var cacheKeyEscaper = strings.NewReplacer("%", "%25", "|", "%7C")

// CacheKey builds the cache key of a (key-set URL, kid) pair as "<url>|<kid>".
// An absent kid is the empty string.
func CacheKey(jwksURL, kid string) string {
	return cacheKeyEscaper.Replace(jwksURL) + cacheKeySeparator + cacheKeyEscaper.Replace(kid)
}

// LegacyCacheKey builds the cache key of the bulk fetch. Without normalize the
// issuer and well-known path are concatenated as-is, so an issuer without a
// trailing slash yields e.g. "https://example.com.well-known/jwks.json".
func LegacyCacheKey(issuer string, normalize bool) string {
	if normalize {
		return wellKnownURL(issuer, config.WellKnownJWKSPath)
	}
	return issuer + config.WellKnownJWKSPath
}

func wellKnownURL(issuer, path string) string {
	return strings.TrimRight(issuer, "/") + "/" + path
}
