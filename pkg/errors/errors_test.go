package errors

import (
	"fmt"
	"io"
	"testing"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "plain error", err: io.EOF, want: false},
		{name: "fetch failed", err: NewFetchError("https://example.com", io.EOF), want: true},
		{name: "server error", err: NewUnexpectedStatusError("https://example.com", 503, ""), want: true},
		{name: "rate limited", err: NewUnexpectedStatusError("https://example.com", 429, ""), want: true},
		{name: "not found", err: NewUnexpectedStatusError("https://example.com", 404, ""), want: false},
		{name: "invalid response", err: NewInvalidResponseError("https://example.com", io.EOF), want: false},
		{
			name: "discovery wrapping fetch failure",
			err:  NewDiscoveryError("https://example.com", NewFetchError("https://example.com", io.EOF)),
			want: true,
		},
		{
			name: "wrapped with fmt",
			err:  fmt.Errorf("resolve: %w", NewFetchError("https://example.com", io.EOF)),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsType(t *testing.T) {
	err := NewDiscoveryError("https://issuer.example.com", NewUnexpectedStatusError("https://issuer.example.com", 500, "oops"))

	if !IsType(err, ErrorTypeDiscoveryFailed) {
		t.Error("expected DiscoveryFailed in chain")
	}
	if !IsType(err, ErrorTypeUnexpectedStatus) {
		t.Error("expected UnexpectedStatus in chain")
	}
	if IsType(err, ErrorTypeFetchFailed) {
		t.Error("did not expect FetchFailed in chain")
	}
	if IsType(io.EOF, ErrorTypeFetchFailed) {
		t.Error("plain errors have no type")
	}
}

func TestErrorMessage(t *testing.T) {
	err := NewFetchError("https://example.com/jwks.json", io.EOF)
	want := "FetchFailed: Failed to fetch https://example.com/jwks.json: EOF"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Unwrap() != io.EOF {
		t.Error("Unwrap should return the cause")
	}
}
