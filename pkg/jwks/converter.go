package jwks

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
)

const (
	pemLineLength    = 64
	beginCertificate = "-----BEGIN CERTIFICATE-----\n"
	endCertificate   = "\n-----END CERTIFICATE-----\n"
)

var (
	// ErrMissingRSAComponents is returned when n or e is absent
	ErrMissingRSAComponents = errors.New("RSA key requires both n and e")
	// ErrInvalidRSAComponents is returned when n or e decode to unusable values
	ErrInvalidRSAComponents = errors.New("invalid RSA key components")
	// ErrUnsupportedKey is returned for key material without a conversion path
	ErrUnsupportedKey = errors.New("unsupported key material")
)

var base64URLReplacer = strings.NewReplacer("-", "+", "_", "/")

// Convert turns key material into a PEM encoded key.
// Any error means no key is available for this entry.
func Convert(material KeyMaterial) (string, error) {
	switch m := material.(type) {
	case CertificateChain:
		return CertificatePEM(m.Leaf), nil
	case RSAComponents:
		return RSAPublicKeyPEM(m.N, m.E)
	case Unsupported:
		return "", fmt.Errorf("%w: kty %q", ErrUnsupportedKey, m.Kty)
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedKey, material)
	}
}

// CertificatePEM wraps a base64 encoded DER certificate in a PEM envelope.
// The payload is re-wrapped at 64 characters and never decoded.
func CertificatePEM(certBase64 string) string {
	var b strings.Builder
	b.Grow(len(beginCertificate) + len(certBase64) + len(certBase64)/pemLineLength + len(endCertificate))

	b.WriteString(beginCertificate)
	for len(certBase64) > pemLineLength {
		b.WriteString(certBase64[:pemLineLength])
		b.WriteByte('\n')
		certBase64 = certBase64[pemLineLength:]
	}
	b.WriteString(certBase64)
	b.WriteString(endCertificate)

	return b.String()
}

// RSAPublicKeyPEM builds a PEM encoded SubjectPublicKeyInfo from the
// base64url encoded modulus and exponent of a JWK
func RSAPublicKeyPEM(n, e string) (string, error) {
	if n == "" || e == "" {
		return "", ErrMissingRSAComponents
	}

	modulus, err := decodeBigInt(n)
	if err != nil {
		return "", fmt.Errorf("failed to decode modulus: %w", err)
	}

	exponent, err := decodeBigInt(e)
	if err != nil {
		return "", fmt.Errorf("failed to decode exponent: %w", err)
	}

	if modulus.Sign() <= 0 {
		return "", fmt.Errorf("%w: modulus must be positive", ErrInvalidRSAComponents)
	}
	if !exponent.IsInt64() || exponent.Int64() <= 0 || exponent.Int64() > int64(math.MaxInt) {
		return "", fmt.Errorf("%w: exponent out of range", ErrInvalidRSAComponents)
	}

	der, err := x509.MarshalPKIXPublicKey(&rsa.PublicKey{
		N: modulus,
		E: int(exponent.Int64()),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal public key: %w", err)
	}

	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})), nil
}

// decodeBigInt decodes a base64url value as a big-endian unsigned integer.
// Padding is optional; any other deviation from the alphabet is an error.
func decodeBigInt(s string) (*big.Int, error) {
	std := strings.TrimRight(base64URLReplacer.Replace(s), "=")

	decoded, err := base64.RawStdEncoding.Strict().DecodeString(std)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64url: %w", err)
	}

	return new(big.Int).SetBytes(decoded), nil
}
