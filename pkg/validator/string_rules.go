package validator

import "unicode/utf8"

// MinLength validates that a string holds at least n characters.
// Length is counted in Unicode code points, not bytes.
func MinLength(n int) Rule[string] {
	mustNotBeNegative(n)
	return newRule(KindMinLength, n, func(s string) bool {
		return utf8.RuneCountInString(s) >= n
	})
}

// MaxLength validates that a string holds at most n characters.
// Length is counted in Unicode code points, not bytes.
func MaxLength(n int) Rule[string] {
	mustNotBeNegative(n)
	return newRule(KindMaxLength, n, func(s string) bool {
		return utf8.RuneCountInString(s) <= n
	})
}

// MinLengthBytes validates that a byte string holds at least n bytes.
func MinLengthBytes(n int) Rule[[]byte] {
	mustNotBeNegative(n)
	return newRule(KindMinLength, n, func(b []byte) bool {
		return len(b) >= n
	})
}

// MaxLengthBytes validates that a byte string holds at most n bytes.
func MaxLengthBytes(n int) Rule[[]byte] {
	mustNotBeNegative(n)
	return newRule(KindMaxLength, n, func(b []byte) bool {
		return len(b) <= n
	})
}

func mustNotBeNegative(n int) {
	if n < 0 {
		panic(ErrNegativeBound)
	}
}
