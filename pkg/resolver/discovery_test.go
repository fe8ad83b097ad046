package resolver

import (
	"context"
	"errors"
	"io"
	"testing"

	resolvererrors "github.com/jwks-resolver/jwks-resolver/pkg/errors"
)

func TestResolveJWKSURI(t *testing.T) {
	const discoveryURL = "https://issuer.example.com/.well-known/openid-configuration"

	tests := []struct {
		name   string
		issuer string
		body   string
		want   string
	}{
		{
			name:   "jwks_uri from discovery",
			issuer: "https://issuer.example.com/",
			body:   discoveryJSON("https://keys.example.com/certs"),
			want:   "https://keys.example.com/certs",
		},
		{
			name:   "issuer without trailing slash",
			issuer: "https://issuer.example.com",
			body:   discoveryJSON("https://keys.example.com/certs"),
			want:   "https://keys.example.com/certs",
		},
		{
			name:   "missing jwks_uri falls back",
			issuer: "https://issuer.example.com",
			body:   `{"issuer":"https://issuer.example.com"}`,
			want:   "https://issuer.example.com/.well-known/jwks.json",
		},
		{
			name:   "empty jwks_uri falls back",
			issuer: "https://issuer.example.com//",
			body:   `{"jwks_uri":""}`,
			want:   "https://issuer.example.com/.well-known/jwks.json",
		},
		{
			name:   "non string jwks_uri falls back",
			issuer: "https://issuer.example.com/",
			body:   `{"jwks_uri":["https://keys.example.com/certs"]}`,
			want:   "https://issuer.example.com/.well-known/jwks.json",
		},
		{
			name:   "non object document falls back",
			issuer: "https://issuer.example.com/",
			body:   `[]`,
			want:   "https://issuer.example.com/.well-known/jwks.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := newCountingFetcher()
			fetcher.serve(discoveryURL, tt.body)

			got, err := NewDiscovery(fetcher, nil).ResolveJWKSURI(context.Background(), tt.issuer)
			if err != nil {
				t.Fatalf("ResolveJWKSURI failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveJWKSURI() = %q, want %q", got, tt.want)
			}
			if fetcher.count(discoveryURL) != 1 {
				t.Errorf("discovery document fetched %d times, want 1", fetcher.count(discoveryURL))
			}
		})
	}
}

func TestResolveJWKSURIPropagatesFetchErrors(t *testing.T) {
	const discoveryURL = "https://issuer.example.com/.well-known/openid-configuration"

	fetcher := newCountingFetcher()
	cause := resolvererrors.NewFetchError(discoveryURL, io.ErrUnexpectedEOF)
	fetcher.fail(discoveryURL, cause)

	uri, err := NewDiscovery(fetcher, nil).ResolveJWKSURI(context.Background(), "https://issuer.example.com")
	if uri != "" {
		t.Errorf("expected no URI on failure, got %q", uri)
	}
	if !errors.Is(err, cause) {
		t.Errorf("error = %v, want it to wrap %v", err, cause)
	}
	if !resolvererrors.IsType(err, resolvererrors.ErrorTypeDiscoveryFailed) {
		t.Errorf("error = %v, want DiscoveryFailed", err)
	}
	if !resolvererrors.IsRetryable(err) {
		t.Error("a network failure during discovery should be retryable")
	}
}
