package validator

import "slices"

// Enumerate validates that a value is one of allowed.
func Enumerate[V comparable](allowed ...V) Rule[V] {
	values := make([]any, 0, len(allowed))
	for _, v := range allowed {
		values = append(values, v)
	}
	allowed = slices.Clone(allowed)
	return newRule(KindEnumerate, values, func(v V) bool {
		return slices.Contains(allowed, v)
	})
}
