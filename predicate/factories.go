package predicate

import (
	"cmp"
	"regexp"
	"strings"
)

// Equals returns a predicate that is true when the value equals want.
func Equals[T comparable](want T) Predicate[T] {
	return func(v T) bool { return v == want }
}

// NotEquals returns a predicate that is true when the value differs from want.
func NotEquals[T comparable](want T) Predicate[T] {
	return func(v T) bool { return v != want }
}

// GreaterThan returns a predicate that is true when the value exceeds bound.
func GreaterThan[T cmp.Ordered](bound T) Predicate[T] {
	return func(v T) bool { return v > bound }
}

// LessThan returns a predicate that is true when the value is below bound.
func LessThan[T cmp.Ordered](bound T) Predicate[T] {
	return func(v T) bool { return v < bound }
}

// AtLeast returns a predicate that is true when the value is >= bound.
func AtLeast[T cmp.Ordered](bound T) Predicate[T] {
	return func(v T) bool { return v >= bound }
}

// AtMost returns a predicate that is true when the value is <= bound.
func AtMost[T cmp.Ordered](bound T) Predicate[T] {
	return func(v T) bool { return v <= bound }
}

// In returns a predicate that is true when the value equals any of the
// given candidates.
func In[T comparable](candidates ...T) Predicate[T] {
	return func(v T) bool {
		for _, c := range candidates {
			if v == c {
				return true
			}
		}
		return false
	}
}

// IsZero returns a predicate that is true for the zero value of T.
func IsZero[T comparable]() Predicate[T] {
	return func(v T) bool {
		var zero T
		return v == zero
	}
}

// NonZero returns a predicate that is true for any non-zero value of T.
func NonZero[T comparable]() Predicate[T] {
	return IsZero[T]().Negate()
}

// Contains returns a predicate that is true when the string contains substr.
func Contains(substr string) Predicate[string] {
	return func(v string) bool { return strings.Contains(v, substr) }
}

// HasPrefix returns a predicate that is true when the string starts with prefix.
func HasPrefix(prefix string) Predicate[string] {
	return func(v string) bool { return strings.HasPrefix(v, prefix) }
}

// Matches returns a predicate that is true when the string matches the
// regular expression. The pattern is compiled once; an invalid pattern
// yields a predicate that is always false.
func Matches(pattern string) Predicate[string] {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return False[string]()
	}
	return func(v string) bool { return re.MatchString(v) }
}
