package lambda

// TerPredicate is a boolean-valued function over three input arguments.
type TerPredicate[F, S, T any] func(first F, second S, third T) bool

// And returns a short-circuiting logical AND of p and other: other is
// evaluated only when p returns true. Panics if other is nil.
func (p TerPredicate[F, S, T]) And(other TerPredicate[F, S, T]) TerPredicate[F, S, T] {
	if other == nil {
		panic("the other-predicate must not be nil")
	}
	return func(first F, second S, third T) bool {
		return p(first, second, third) && other(first, second, third)
	}
}

// Or returns a short-circuiting logical OR of p and other: other is
// evaluated only when p returns false. Panics if other is nil.
func (p TerPredicate[F, S, T]) Or(other TerPredicate[F, S, T]) TerPredicate[F, S, T] {
	if other == nil {
		panic("the other-predicate must not be nil")
	}
	return func(first F, second S, third T) bool {
		return p(first, second, third) || other(first, second, third)
	}
}

// Negate returns the logical complement of p.
func (p TerPredicate[F, S, T]) Negate() TerPredicate[F, S, T] {
	return func(first F, second S, third T) bool {
		return !p(first, second, third)
	}
}
