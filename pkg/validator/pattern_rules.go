package validator

import (
	"fmt"
	"regexp"
)

// Pattern validates that a string contains a match of re.
// Matching is unanchored; anchor the expression to require a full match.
// It panics with ErrNilPattern when re is nil.
func Pattern(re *regexp.Regexp) Rule[string] {
	if re == nil {
		panic(ErrNilPattern)
	}
	return newRule(KindPattern, re.String(), re.MatchString)
}

// CompilePattern compiles expr and returns the corresponding pattern rule.
func CompilePattern(expr string) (Rule[string], error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Rule[string]{}, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return Pattern(re), nil
}

// MustPattern is like CompilePattern but panics if expr cannot be compiled.
func MustPattern(expr string) Rule[string] {
	rule, err := CompilePattern(expr)
	if err != nil {
		panic(err)
	}
	return rule
}
