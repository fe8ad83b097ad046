package jwks

import (
	"github.com/jwks-resolver/jwks-resolver/pkg/validation"
)

// Conversion paths, also used as metric labels
const (
	PathCertificateChain = "x5c"
	PathRSAComponents    = "rsa"
	PathUnsupported      = "unsupported"
)

// KeyMaterial is the key representation carried by a JWK. It is one of
// CertificateChain, RSAComponents or Unsupported.
type KeyMaterial interface {
	// Path names the conversion path for this material
	Path() string

	isKeyMaterial()
}

// CertificateChain holds the leaf of an x5c chain, base64 encoded DER
type CertificateChain struct {
	Leaf string
}

// RSAComponents holds the base64url encoded modulus and exponent of an RSA key
type RSAComponents struct {
	N string
	E string
}

// Unsupported is key material that cannot be converted
type Unsupported struct {
	Kty string
}

func (CertificateChain) Path() string { return PathCertificateChain }
func (RSAComponents) Path() string    { return PathRSAComponents }
func (Unsupported) Path() string      { return PathUnsupported }

func (CertificateChain) isKeyMaterial() {}
func (RSAComponents) isKeyMaterial()    {}
func (Unsupported) isKeyMaterial()      {}

// Material classifies the entry. A usable certificate chain takes precedence
// over RSA components.
func (k JWK) Material() KeyMaterial {
	if validation.HasUsableFirst(k.X5c, validation.IsEmptyString) {
		return CertificateChain{Leaf: k.X5c[0]}
	}
	if k.Kty == KeyTypeRSA {
		return RSAComponents{N: k.N, E: k.E}
	}
	return Unsupported{Kty: k.Kty}
}
