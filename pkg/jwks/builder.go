package jwks

import (
	"crypto/rsa"
	"crypto/sha1" //nolint:gosec // SHA-1 is required for x5t thumbprint per RFC 7517
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
)

// FromRSAPublicKey formats an RSA public key as a JWK
func FromRSAPublicKey(key *rsa.PublicKey, kid, alg string) (*JWK, error) {
	if key == nil {
		return nil, fmt.Errorf("RSA key is nil")
	}

	return &JWK{
		Kty:    KeyTypeRSA,
		Use:    "sig",
		KeyOps: []string{"verify"},
		Alg:    alg,
		Kid:    kid,
		N:      base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
		E:      base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
	}, nil
}

// FromCertificate formats the RSA key of a certificate as a JWK carrying the
// certificate as its x5c chain. An empty kid is derived from the certificate
// fingerprint.
func FromCertificate(cert *x509.Certificate, kid, alg string) (*JWK, error) {
	if cert == nil {
		return nil, fmt.Errorf("certificate is nil")
	}

	rsaKey, ok := cert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("certificate does not contain an RSA public key")
	}

	if kid == "" {
		kid = KeyIDFromCertificate(cert)
	}

	jwk, err := FromRSAPublicKey(rsaKey, kid, alg)
	if err != nil {
		return nil, err
	}

	jwk.X5c = []string{base64.StdEncoding.EncodeToString(cert.Raw)}
	jwk.X5t = calculateX5t(cert.Raw)
	jwk.X5tS256 = calculateX5tS256(cert.Raw)

	return jwk, nil
}

// KeyIDFromCertificate uses the first 16 characters of the SHA-1 fingerprint
//
//nolint:gosec // SHA-1 is required for certificate fingerprint per RFC standards
func KeyIDFromCertificate(cert *x509.Certificate) string {
	hash := sha1.Sum(cert.Raw)
	return hex.EncodeToString(hash[:])[:16]
}

// ToJSON converts JWKS to JSON
func ToJSON(set *JWKS) ([]byte, error) {
	if set == nil {
		return nil, fmt.Errorf("JWKS is nil")
	}

	return json.MarshalIndent(set, "", "  ")
}

// calculateX5t calculates SHA-1 thumbprint (x5t)
//
//nolint:gosec // SHA-1 is required for x5t thumbprint per RFC 7517
func calculateX5t(certDER []byte) string {
	hash := sha1.Sum(certDER)
	return base64.RawURLEncoding.EncodeToString(hash[:])
}

// calculateX5tS256 calculates SHA-256 thumbprint (x5t#S256)
func calculateX5tS256(certDER []byte) string {
	hash := sha256.Sum256(certDER)
	return base64.RawURLEncoding.EncodeToString(hash[:])
}
