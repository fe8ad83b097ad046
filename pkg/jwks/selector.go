package jwks

import (
	"github.com/jwks-resolver/jwks-resolver/pkg/validation"
)

// HasKeys reports whether the key set has a usable first entry
func (s *JWKS) HasKeys() bool {
	return s != nil && validation.HasUsableFirst(s.Keys, JWK.IsEmpty)
}

// Select picks the entry to use for kid.
//
// With an empty kid the first entry is returned. Otherwise the first entry
// whose kid matches exactly is returned. Entries without a kid never match.
func Select(set *JWKS, kid string) (JWK, bool) {
	if !set.HasKeys() {
		return JWK{}, false
	}

	if kid == "" {
		return set.Keys[0], true
	}

	for _, key := range set.Keys {
		if key.Kid != "" && key.Kid == kid {
			return key, true
		}
	}

	return JWK{}, false
}
