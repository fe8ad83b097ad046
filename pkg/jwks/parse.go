package jwks

import (
	"encoding/json"
)

// Parse decodes a key-set document.
//
// Parse never fails. A body that is not a JSON object, a missing or non-array
// "keys" member, and array items that are not objects all decode to empty
// values, which the selector then treats as "no usable key".
func Parse(data []byte) *JWKS {
	set := &JWKS{}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return set
	}

	var items []json.RawMessage
	if err := json.Unmarshal(doc["keys"], &items); err != nil {
		return set
	}

	set.Keys = make([]JWK, 0, len(items))
	for _, item := range items {
		set.Keys = append(set.Keys, parseKey(item))
	}

	return set
}

// parseKey decodes one key entry member by member so that a single
// mistyped member does not discard the others
func parseKey(data json.RawMessage) JWK {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return JWK{}
	}

	return JWK{
		Kty:     stringMember(fields, "kty"),
		Use:     stringMember(fields, "use"),
		KeyOps:  stringsMember(fields, "key_ops"),
		Alg:     stringMember(fields, "alg"),
		Kid:     stringMember(fields, "kid"),
		N:       stringMember(fields, "n"),
		E:       stringMember(fields, "e"),
		X5c:     stringsMember(fields, "x5c"),
		X5t:     stringMember(fields, "x5t"),
		X5tS256: stringMember(fields, "x5t#S256"),
	}
}

func stringMember(fields map[string]json.RawMessage, name string) string {
	raw, ok := fields[name]
	if !ok {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// stringsMember keeps positions: a non-string item becomes "" rather than
// shifting the items after it forward
func stringsMember(fields map[string]json.RawMessage, name string) []string {
	raw, ok := fields[name]
	if !ok {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	values := make([]string, len(items))
	for i, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			values[i] = s
		}
	}
	return values
}
