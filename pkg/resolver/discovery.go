package resolver

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/jwks-resolver/jwks-resolver/pkg/config"
	resolvererrors "github.com/jwks-resolver/jwks-resolver/pkg/errors"
	"github.com/jwks-resolver/jwks-resolver/pkg/fetch"
	"github.com/jwks-resolver/jwks-resolver/pkg/metrics"
)

// Discovery locates an issuer's key set through its OpenID configuration
type Discovery struct {
	fetcher  fetch.Fetcher
	logger   *zap.Logger
	recorder recorder
}

// NewDiscovery creates a new discovery resolver
func NewDiscovery(fetcher fetch.Fetcher, logger *zap.Logger) *Discovery {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Discovery{
		fetcher: fetcher,
		logger:  logger,
	}
}

// ResolveJWKSURI returns the jwks_uri of the issuer's discovery document, or
// the issuer's .well-known/jwks.json when the document does not name one.
// Fetch failures are returned, never replaced by the fallback.
func (d *Discovery) ResolveJWKSURI(ctx context.Context, issuer string) (string, error) {
	discoveryURL := wellKnownURL(issuer, config.WellKnownOpenIDConfigurationPath)

	started := time.Now()
	body, err := d.fetcher.Fetch(ctx, http.MethodGet, discoveryURL)
	d.recorder.fetch(metrics.FetchKindDiscovery, err, started)
	if err != nil {
		return "", resolvererrors.NewDiscoveryError(issuer, err)
	}

	if uri := jwksURIMember(body); uri != "" {
		d.logger.Debug("Resolved JWKS URI from discovery document",
			zap.String("issuer", issuer),
			zap.String("jwksURI", uri))
		return uri, nil
	}

	fallback := wellKnownURL(issuer, config.WellKnownJWKSPath)
	d.logger.Debug("Discovery document has no jwks_uri, using well-known path",
		zap.String("issuer", issuer),
		zap.String("jwksURI", fallback))
	return fallback, nil
}

// jwksURIMember extracts a string jwks_uri; any other shape counts as absent
func jwksURIMember(body []byte) string {
	var doc struct {
		JWKSURI json.RawMessage `json:"jwks_uri"`
	}
	if err := json.Unmarshal(body, &doc); err != nil || doc.JWKSURI == nil {
		return ""
	}

	var uri string
	if err := json.Unmarshal(doc.JWKSURI, &uri); err != nil {
		return ""
	}
	return uri
}
