package resolver

import "testing"

func TestCacheKey(t *testing.T) {
	if got := CacheKey("https://example.com/.well-known/jwks.json", "abc"); got != "https://example.com/.well-known/jwks.json|abc" {
		t.Errorf("CacheKey() = %q", got)
	}
	if got := CacheKey("https://example.com/jwks", ""); got != "https://example.com/jwks|" {
		t.Errorf("CacheKey() without kid = %q", got)
	}
}

func TestCacheKeyDoesNotCollide(t *testing.T) {
	pairs := [][2]string{
		{"https://example.com/a|b", ""},
		{"https://example.com/a", "b|"},
		{"https://example.com/a", "b"},
		{"https://example.com/a|", "b"},
		{"https://example.com/a%7C", "b"},
		{"https://example.com/a", "%7Cb"},
		{"https://example.com/a", ""},
		{"https://example.com/a", "|"},
	}

	seen := make(map[string][2]string)
	for _, pair := range pairs {
		key := CacheKey(pair[0], pair[1])
		if other, dup := seen[key]; dup {
			t.Errorf("%v and %v share cache key %q", pair, other, key)
		}
		seen[key] = pair
	}
}

func TestLegacyCacheKey(t *testing.T) {
	tests := []struct {
		issuer    string
		normalize bool
		want      string
	}{
		{issuer: "https://example.com/", normalize: false, want: "https://example.com/.well-known/jwks.json"},
		{issuer: "https://example.com", normalize: false, want: "https://example.com.well-known/jwks.json"},
		{issuer: "https://example.com", normalize: true, want: "https://example.com/.well-known/jwks.json"},
		{issuer: "https://example.com//", normalize: true, want: "https://example.com/.well-known/jwks.json"},
	}

	for _, tt := range tests {
		if got := LegacyCacheKey(tt.issuer, tt.normalize); got != tt.want {
			t.Errorf("LegacyCacheKey(%q, %v) = %q, want %q", tt.issuer, tt.normalize, got, tt.want)
		}
	}
}
