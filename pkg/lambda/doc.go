// Package lambda defines the three-argument operation kinds the currying
// packages build on, together with their composition primitives.
//
// Highlights:
// - TerConsumer: three-argument side effect, composed with AndThen
// - TerFunction: three-argument function, post-processed with AndThen
// - TerPredicate: three-argument predicate, combined with And/Or/Negate
//
// All composition is pure: a combinator returns a fresh closure and never
// touches its operands. Nil operands fail at composition time with a panic
// carrying the documented message, not on first invocation.
package lambda
