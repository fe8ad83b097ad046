// Package jwkstest provides key and certificate fixtures for tests that
// exercise key-set resolution.
package jwkstest

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"testing"
	"time"
)

// GenerateRSAKey generates a 2048 bit RSA key or fails the test
func GenerateRSAKey(tb testing.TB) *rsa.PrivateKey {
	tb.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		tb.Fatalf("Failed to generate RSA key: %v", err)
	}
	return key
}

// SelfSignedCertificate issues a self-signed certificate for key
func SelfSignedCertificate(tb testing.TB, key *rsa.PrivateKey, commonName string) *x509.Certificate {
	tb.Helper()

	template := &x509.Certificate{
		SerialNumber: big.NewInt(time.Now().UnixNano()),
		Subject:      pkix.Name{CommonName: commonName},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(24 * time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		tb.Fatalf("Failed to create certificate: %v", err)
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		tb.Fatalf("Failed to parse certificate: %v", err)
	}
	return cert
}
