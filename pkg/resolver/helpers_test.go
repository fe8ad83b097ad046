package resolver

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	resolvererrors "github.com/jwks-resolver/jwks-resolver/pkg/errors"
	"github.com/jwks-resolver/jwks-resolver/pkg/jwks"
	"github.com/jwks-resolver/jwks-resolver/pkg/jwks/jwkstest"
)

// countingFetcher serves canned bodies and counts requests per URL
type countingFetcher struct {
	mu        sync.Mutex
	responses map[string]string
	errs      map[string]error
	calls     map[string]int
}

func newCountingFetcher() *countingFetcher {
	return &countingFetcher{
		responses: make(map[string]string),
		errs:      make(map[string]error),
		calls:     make(map[string]int),
	}
}

func (f *countingFetcher) Fetch(_ context.Context, _ string, url string) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[url]++
	if err, ok := f.errs[url]; ok {
		return nil, err
	}
	body, ok := f.responses[url]
	if !ok {
		return nil, resolvererrors.NewUnexpectedStatusError(url, 404, "not found")
	}
	return json.RawMessage(body), nil
}

func (f *countingFetcher) serve(url, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[url] = body
}

func (f *countingFetcher) fail(url string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[url] = err
}

func (f *countingFetcher) count(url string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[url]
}

// keyFixture is an RSA key with a self-signed certificate
type keyFixture struct {
	key  *rsa.PrivateKey
	cert *x509.Certificate
}

func newKeyFixture(t *testing.T, name string) keyFixture {
	t.Helper()
	key := jwkstest.GenerateRSAKey(t)
	return keyFixture{key: key, cert: jwkstest.SelfSignedCertificate(t, key, name)}
}

func (k keyFixture) x5c() string {
	return base64.StdEncoding.EncodeToString(k.cert.Raw)
}

func (k keyFixture) n() string {
	return base64.RawURLEncoding.EncodeToString(k.key.N.Bytes())
}

// certJWK publishes the key with its certificate chain
func (k keyFixture) certJWK(t *testing.T, kid string) jwks.JWK {
	t.Helper()
	jwk, err := jwks.FromCertificate(k.cert, kid, "RS256")
	if err != nil {
		t.Fatalf("FromCertificate failed: %v", err)
	}
	return *jwk
}

// rsaJWK publishes the key as modulus and exponent only
func (k keyFixture) rsaJWK(t *testing.T, kid string) jwks.JWK {
	t.Helper()
	jwk, err := jwks.FromRSAPublicKey(&k.key.PublicKey, kid, "RS256")
	if err != nil {
		t.Fatalf("FromRSAPublicKey failed: %v", err)
	}
	return *jwk
}

func keySetJSON(t *testing.T, keys ...jwks.JWK) string {
	t.Helper()
	data, err := jwks.ToJSON(&jwks.JWKS{Keys: keys})
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	return string(data)
}

func discoveryJSON(jwksURI string) string {
	return fmt.Sprintf(`{"issuer":"https://issuer.example.com/","jwks_uri":%q}`, jwksURI)
}
