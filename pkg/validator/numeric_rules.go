package validator

import (
	"math"
	"reflect"
)

// Minimum validates that a number is greater than or equal to min.
func Minimum[V Numeric](min V) Rule[V] {
	return newRule(KindMinimum, min, func(v V) bool {
		return v >= min
	})
}

// Maximum validates that a number is less than or equal to max.
func Maximum[V Numeric](max V) Rule[V] {
	return newRule(KindMaximum, max, func(v V) bool {
		return v <= max
	})
}

// ExclusiveMinimum validates that a number is strictly greater than min.
func ExclusiveMinimum[V Numeric](min V) Rule[V] {
	return newRule(KindExclusiveMinimum, min, func(v V) bool {
		return v > min
	})
}

// ExclusiveMaximum validates that a number is strictly less than max.
func ExclusiveMaximum[V Numeric](max V) Rule[V] {
	return newRule(KindExclusiveMaximum, max, func(v V) bool {
		return v < max
	})
}

// MultipleOf validates that a number is an exact multiple of divisor.
// It panics with ErrZeroMultipleOf when divisor is zero.
func MultipleOf[V Numeric](divisor V) Rule[V] {
	if divisor == 0 {
		panic(ErrZeroMultipleOf)
	}
	return newRule(KindMultipleOf, divisor, func(v V) bool {
		return isMultipleOf(v, divisor)
	})
}

func isMultipleOf[V Numeric](v, divisor V) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Float32, reflect.Float64:
		return math.Mod(float64(v), float64(divisor)) == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uint64(v)%uint64(divisor) == 0
	default:
		return int64(v)%int64(divisor) == 0
	}
}

// Range is a shorthand for Minimum and Maximum with the same value type.
func Range[V Numeric](min, max V) []Rule[V] {
	return []Rule[V]{Minimum(min), Maximum(max)}
}
