package validation

// HasUsableFirst reports whether items holds at least one element and its
// first element is not empty according to isEmpty.
//
// It is the single structural gate for nested key-set arrays: the "keys" list
// of a key set and the "x5c" chain of a key entry both go through it.
func HasUsableFirst[T any](items []T, isEmpty func(T) bool) bool {
	if len(items) == 0 {
		return false
	}
	if isEmpty == nil {
		return true
	}
	return !isEmpty(items[0])
}

// IsEmptyString reports whether s is the empty string
func IsEmptyString(s string) bool {
	return s == ""
}
