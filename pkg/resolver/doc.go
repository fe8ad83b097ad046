/*
Package resolver resolves the PEM encoded public key needed to verify a token
signed by an identity provider.

Given a key-set URL and an optional key id, the resolver fetches the key set,
picks the entry, converts its x5c certificate or RSA modulus/exponent into PEM
and caches the result per (url, kid):

	r := resolver.New(fetcher, cache.NewMemory(time.Hour, 10*time.Minute), logger)

	jwksURL, err := r.Discovery().ResolveJWKSURI(ctx, "https://issuer.example.com/")
	if err != nil {
	    return err
	}

	pem, ok, err := r.ResolveSigningKey(ctx, jwksURL, kid)

A false ok with a nil error means the key set holds no usable key for kid.
Transport failures are returned as errors and never cached; neither are
missing keys.
*/
package resolver
