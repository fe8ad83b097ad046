package jwks

import "testing"

func TestSelect(t *testing.T) {
	set := Parse([]byte(`{"keys":[
		{"kty":"RSA","n":"AQAB","e":"AQAB"},
		{"kid":"abc","kty":"RSA","n":"AQAB","e":"AQAB"},
		{"kid":"ABC","kty":"EC"},
		{"kid":"abc","kty":"EC"}
	]}`))

	tests := []struct {
		name    string
		kid     string
		wantOK  bool
		wantKid string
		wantKty string
	}{
		{name: "no kid picks first entry", kid: "", wantOK: true, wantKid: "", wantKty: "RSA"},
		{name: "exact match", kid: "abc", wantOK: true, wantKid: "abc", wantKty: "RSA"},
		{name: "case sensitive", kid: "ABC", wantOK: true, wantKid: "ABC", wantKty: "EC"},
		{name: "missing kid", kid: "missing-kid", wantOK: false},
		{name: "prefix does not match", kid: "ab", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := Select(set, tt.kid)
			if ok != tt.wantOK {
				t.Fatalf("Select() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if key.Kid != tt.wantKid || key.Kty != tt.wantKty {
				t.Errorf("Select() = {kid:%q kty:%q}, want {kid:%q kty:%q}", key.Kid, key.Kty, tt.wantKid, tt.wantKty)
			}
		})
	}
}

func TestSelectUnusableSet(t *testing.T) {
	for _, body := range []string{``, `{}`, `{"keys":[]}`, `{"keys":[{}]}`, `{"keys":"x"}`} {
		if _, ok := Select(Parse([]byte(body)), ""); ok {
			t.Errorf("Select(%q) should find nothing", body)
		}
	}

	if _, ok := Select(nil, "abc"); ok {
		t.Error("Select(nil) should find nothing")
	}
}
