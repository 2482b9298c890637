// Package predicate provides the boolean filter contract shared by
// streams, pipelines, and event handlers.
//
// A Predicate[T] is a pure func(T) bool. Predicates compose with And, Or,
// and Negate, and the package ships typed factories for the common
// comparisons.
//
//	adult := predicate.AtLeast(18)
//	minor := adult.Negate()
//	evens := stream.Of(1, 2, 3, 4).Filter(func(n int) bool { return n%2 == 0 })
package predicate
