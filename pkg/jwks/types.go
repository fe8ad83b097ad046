package jwks

// KeyTypeRSA is the kty value of RSA keys
const KeyTypeRSA = "RSA"

// JWKS represents a JSON Web Key Set
type JWKS struct {
	Keys []JWK `json:"keys"`
}

// JWK represents a JSON Web Key
type JWK struct {
	// Key type (e.g., "RSA")
	Kty string `json:"kty,omitempty"`

	// Public key use (e.g., "sig")
	Use string `json:"use,omitempty"`

	// Key operations (e.g., ["verify"])
	KeyOps []string `json:"key_ops,omitempty"`

	// Algorithm (e.g., "RS256")
	Alg string `json:"alg,omitempty"`

	// Key ID
	Kid string `json:"kid,omitempty"`

	// RSA modulus (base64url encoded)
	N string `json:"n,omitempty"`

	// RSA exponent (base64url encoded)
	E string `json:"e,omitempty"`

	// X.509 certificate chain (base64 encoded DER)
	X5c []string `json:"x5c,omitempty"`

	// X.509 certificate SHA-1 thumbprint (base64url encoded)
	X5t string `json:"x5t,omitempty"`

	// X.509 certificate SHA-256 thumbprint (base64url encoded)
	X5tS256 string `json:"x5t#S256,omitempty"`
}

// IsEmpty reports whether the entry carries no fields at all
func (k JWK) IsEmpty() bool {
	return k.Kty == "" &&
		k.Use == "" &&
		len(k.KeyOps) == 0 &&
		k.Alg == "" &&
		k.Kid == "" &&
		k.N == "" &&
		k.E == "" &&
		len(k.X5c) == 0 &&
		k.X5t == "" &&
		k.X5tS256 == ""
}
