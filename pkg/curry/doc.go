// Package curry gathers every currying combinator of the fn, consumer and
// predicate subpackages under one namespace, so callers only need the naming
// scheme, not the package a function kind lives in.
//
// Value-producing functions keep the bare scheme names (Left2, Right3With,
// BiMiddle3, ...); the effectful and boolean-valued kinds carry a kind
// prefix (ConsumerLeft2, PredicateRight3, ...) because Go resolves nothing
// by parameter type.
//
// The package adds no behavior of its own: every function delegates to its
// kind package and preserves that package's contract, including the exact
// nil-source panic message.
package curry
