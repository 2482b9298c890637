package predicate

// Predicate is a pure boolean test over a value.
type Predicate[T any] func(T) bool

// And returns a predicate that is true when both p and q are true.
func (p Predicate[T]) And(q Predicate[T]) Predicate[T] {
	return func(v T) bool { return p(v) && q(v) }
}

// Or returns a predicate that is true when either p or q is true.
func (p Predicate[T]) Or(q Predicate[T]) Predicate[T] {
	return func(v T) bool { return p(v) || q(v) }
}

// Negate returns the logical inverse of p.
func (p Predicate[T]) Negate() Predicate[T] {
	return func(v T) bool { return !p(v) }
}

// All returns a predicate that is true when every given predicate is true.
// With no predicates it is always true.
func All[T any](preds ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Any returns a predicate that is true when at least one given predicate is
// true. With no predicates it is always false.
func Any[T any](preds ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range preds {
			if p(v) {
				return true
			}
		}
		return false
	}
}

// True returns a predicate that accepts every value.
func True[T any]() Predicate[T] {
	return func(T) bool { return true }
}

// False returns a predicate that rejects every value.
func False[T any]() Predicate[T] {
	return func(T) bool { return false }
}
