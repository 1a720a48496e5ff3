package validator

import "reflect"

// MinItems validates that a slice holds at least n elements.
func MinItems[E any](n int) Rule[[]E] {
	mustNotBeNegative(n)
	return newRule(KindMinItems, n, func(items []E) bool {
		return len(items) >= n
	})
}

// MaxItems validates that a slice holds at most n elements.
func MaxItems[E any](n int) Rule[[]E] {
	mustNotBeNegative(n)
	return newRule(KindMaxItems, n, func(items []E) bool {
		return len(items) <= n
	})
}

// UniqueItems validates that no two elements of a slice are structurally equal.
// Elements need not be comparable; equality is reflect.DeepEqual.
func UniqueItems[E any]() Rule[[]E] {
	return newRule(KindUniqueItems, true, func(items []E) bool {
		for i := 0; i < len(items); i++ {
			for j := i + 1; j < len(items); j++ {
				if reflect.DeepEqual(items[i], items[j]) {
					return false
				}
			}
		}
		return true
	})
}

// MinProperties validates that a map holds at least n entries.
func MinProperties[K comparable, V any](n int) Rule[map[K]V] {
	mustNotBeNegative(n)
	return newRule(KindMinProperties, n, func(m map[K]V) bool {
		return len(m) >= n
	})
}

// MaxProperties validates that a map holds at most n entries.
func MaxProperties[K comparable, V any](n int) Rule[map[K]V] {
	mustNotBeNegative(n)
	return newRule(KindMaxProperties, n, func(m map[K]V) bool {
		return len(m) <= n
	})
}
