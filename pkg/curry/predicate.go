package curry

import (
	"github.com/ib-77/curry3/pkg/curry/predicate"
	"github.com/ib-77/curry3/pkg/lambda"
)

// PredicateAll binds the only argument of a unary predicate; see
// predicate.All.
func PredicateAll[F any](p func(F) bool, first F) func() bool {
	return predicate.All(p, first)
}

// PredicateLeft2 curries a binary predicate left to right; see
// predicate.Left2.
func PredicateLeft2[F, S any](biPredicate func(F, S) bool) func(F) func(S) bool {
	return predicate.Left2(biPredicate)
}

// PredicateLeft2With binds the first argument of a binary predicate; see
// predicate.Left2With.
func PredicateLeft2With[F, S any](biPredicate func(F, S) bool, first F) func(S) bool {
	return predicate.Left2With(biPredicate, first)
}

// PredicateAll2 binds both arguments of a binary predicate; see
// predicate.All2.
func PredicateAll2[F, S any](biPredicate func(F, S) bool, first F, second S) func() bool {
	return predicate.All2(biPredicate, first, second)
}

// PredicateLeft3 curries a ternary predicate left to right; see
// predicate.Left3.
func PredicateLeft3[F, S, T any](terPredicate lambda.TerPredicate[F, S, T]) func(F) func(S) func(T) bool {
	return predicate.Left3(terPredicate)
}

// PredicateLeft3With binds the first argument of a ternary predicate; see
// predicate.Left3With.
func PredicateLeft3With[F, S, T any](terPredicate lambda.TerPredicate[F, S, T], first F) func(S) func(T) bool {
	return predicate.Left3With(terPredicate, first)
}

// PredicateLeft3With2 binds the first two arguments of a ternary predicate;
// see predicate.Left3With2.
func PredicateLeft3With2[F, S, T any](terPredicate lambda.TerPredicate[F, S, T], first F, second S) func(T) bool {
	return predicate.Left3With2(terPredicate, first, second)
}

// PredicateAll3 binds all three arguments of a ternary predicate; see
// predicate.All3.
func PredicateAll3[F, S, T any](terPredicate lambda.TerPredicate[F, S, T], first F, second S, third T) func() bool {
	return predicate.All3(terPredicate, first, second, third)
}

// PredicateLeftMiddle3 binds the middle argument of a ternary predicate; see
// predicate.LeftMiddle3.
func PredicateLeftMiddle3[F, S, T any](terPredicate lambda.TerPredicate[F, S, T], second S) func(F) func(T) bool {
	return predicate.LeftMiddle3(terPredicate, second)
}

// PredicateMiddle3 binds the outer arguments of a ternary predicate; see
// predicate.Middle3.
func PredicateMiddle3[F, S, T any](terPredicate lambda.TerPredicate[F, S, T], first F, third T) func(S) bool {
	return predicate.Middle3(terPredicate, first, third)
}

// PredicateRightMiddle3 binds the middle argument of a ternary predicate,
// remaining arguments right to left; see predicate.RightMiddle3.
func PredicateRightMiddle3[F, S, T any](terPredicate lambda.TerPredicate[F, S, T], second S) func(T) func(F) bool {
	return predicate.RightMiddle3(terPredicate, second)
}

// PredicateRight2 curries a binary predicate right to left; see
// predicate.Right2.
func PredicateRight2[F, S any](biPredicate func(F, S) bool) func(S) func(F) bool {
	return predicate.Right2(biPredicate)
}

// PredicateRight2With binds the second argument of a binary predicate; see
// predicate.Right2With.
func PredicateRight2With[F, S any](biPredicate func(F, S) bool, second S) func(F) bool {
	return predicate.Right2With(biPredicate, second)
}

// PredicateRight3 curries a ternary predicate right to left; see
// predicate.Right3.
func PredicateRight3[F, S, T any](terPredicate lambda.TerPredicate[F, S, T]) func(T) func(S) func(F) bool {
	return predicate.Right3(terPredicate)
}

// PredicateRight3With binds the third argument of a ternary predicate; see
// predicate.Right3With.
func PredicateRight3With[F, S, T any](terPredicate lambda.TerPredicate[F, S, T], third T) func(S) func(F) bool {
	return predicate.Right3With(terPredicate, third)
}

// PredicateRight3With2 binds the last two arguments of a ternary predicate;
// see predicate.Right3With2.
func PredicateRight3With2[F, S, T any](terPredicate lambda.TerPredicate[F, S, T], second S, third T) func(F) bool {
	return predicate.Right3With2(terPredicate, second, third)
}

// PredicateBiLeft3 binds the first argument of a ternary predicate; see
// predicate.BiLeft3.
func PredicateBiLeft3[F, S, T any](terPredicate lambda.TerPredicate[F, S, T], first F) func(S, T) bool {
	return predicate.BiLeft3(terPredicate, first)
}

// PredicateBiMiddle3 binds the middle argument of a ternary predicate; see
// predicate.BiMiddle3.
func PredicateBiMiddle3[F, S, T any](terPredicate lambda.TerPredicate[F, S, T], second S) func(F, T) bool {
	return predicate.BiMiddle3(terPredicate, second)
}

// PredicateBiRight3 binds the third argument of a ternary predicate; see
// predicate.BiRight3.
func PredicateBiRight3[F, S, T any](terPredicate lambda.TerPredicate[F, S, T], third T) func(F, S) bool {
	return predicate.BiRight3(terPredicate, third)
}
