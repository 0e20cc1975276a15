// Package predicate provides currying and partial application for
// boolean-valued functions of one, two or three arguments.
//
// The combinator set and naming mirror package fn; results are boolean
// suppliers (func() bool), unary predicates, binary predicates, or chains
// ending in a unary predicate.
package predicate
