package predicate

import (
	"github.com/ib-77/curry3/pkg/curry/fn"
	"github.com/ib-77/curry3/pkg/lambda"
)

// A predicate is a function whose result type is bool, so after the
// role-specific nil guard every combinator reuses the fn implementation.

// All binds the only argument of p: (first) -> bool becomes () -> bool.
// Panics if p is nil.
func All[F any](p func(F) bool, first F) func() bool {
	if p == nil {
		panic("the predicate must not be nil")
	}
	return fn.All(p, first)
}

// Left2 curries biPredicate: (first, second) -> bool becomes
// (first) -> (second) -> bool. Panics if biPredicate is nil.
func Left2[F, S any](biPredicate func(F, S) bool) func(F) func(S) bool {
	if biPredicate == nil {
		panic("the bi-predicate must not be nil")
	}
	return fn.Left2(biPredicate)
}

// Left2With binds the first argument of biPredicate.
// Panics if biPredicate is nil.
func Left2With[F, S any](biPredicate func(F, S) bool, first F) func(S) bool {
	if biPredicate == nil {
		panic("the bi-predicate must not be nil")
	}
	return fn.Left2With(biPredicate, first)
}

// All2 binds both arguments of biPredicate, leaving a boolean supplier.
// Panics if biPredicate is nil.
func All2[F, S any](biPredicate func(F, S) bool, first F, second S) func() bool {
	if biPredicate == nil {
		panic("the bi-predicate must not be nil")
	}
	return fn.All2(biPredicate, first, second)
}

// Left3 curries terPredicate: (first, second, third) -> bool becomes
// (first) -> (second) -> (third) -> bool. Panics if terPredicate is nil.
func Left3[F, S, T any](terPredicate lambda.TerPredicate[F, S, T]) func(F) func(S) func(T) bool {
	if terPredicate == nil {
		panic("the ter-predicate must not be nil")
	}
	return fn.Left3(lambda.TerFunction[F, S, T, bool](terPredicate))
}

// Left3With binds the first argument of terPredicate.
// Panics if terPredicate is nil.
func Left3With[F, S, T any](terPredicate lambda.TerPredicate[F, S, T], first F) func(S) func(T) bool {
	if terPredicate == nil {
		panic("the ter-predicate must not be nil")
	}
	return fn.Left3With(lambda.TerFunction[F, S, T, bool](terPredicate), first)
}

// Left3With2 binds the first two arguments of terPredicate.
// Panics if terPredicate is nil.
func Left3With2[F, S, T any](terPredicate lambda.TerPredicate[F, S, T], first F, second S) func(T) bool {
	if terPredicate == nil {
		panic("the ter-predicate must not be nil")
	}
	return fn.Left3With2(lambda.TerFunction[F, S, T, bool](terPredicate), first, second)
}

// All3 binds all three arguments of terPredicate, leaving a boolean supplier.
// Panics if terPredicate is nil.
func All3[F, S, T any](terPredicate lambda.TerPredicate[F, S, T], first F, second S, third T) func() bool {
	if terPredicate == nil {
		panic("the ter-predicate must not be nil")
	}
	return fn.All3(lambda.TerFunction[F, S, T, bool](terPredicate), first, second, third)
}

// LeftMiddle3 binds the middle argument of terPredicate; remaining arguments
// arrive as (first) -> (third). Panics if terPredicate is nil.
func LeftMiddle3[F, S, T any](terPredicate lambda.TerPredicate[F, S, T], second S) func(F) func(T) bool {
	if terPredicate == nil {
		panic("the ter-predicate must not be nil")
	}
	return fn.LeftMiddle3(lambda.TerFunction[F, S, T, bool](terPredicate), second)
}

// Middle3 binds the outer arguments of terPredicate, leaving the middle one.
// Panics if terPredicate is nil.
func Middle3[F, S, T any](terPredicate lambda.TerPredicate[F, S, T], first F, third T) func(S) bool {
	if terPredicate == nil {
		panic("the ter-predicate must not be nil")
	}
	return fn.Middle3(lambda.TerFunction[F, S, T, bool](terPredicate), first, third)
}

// RightMiddle3 binds the middle argument of terPredicate; remaining arguments
// arrive as (third) -> (first). Panics if terPredicate is nil.
func RightMiddle3[F, S, T any](terPredicate lambda.TerPredicate[F, S, T], second S) func(T) func(F) bool {
	if terPredicate == nil {
		panic("the ter-predicate must not be nil")
	}
	return fn.RightMiddle3(lambda.TerFunction[F, S, T, bool](terPredicate), second)
}

// Right2 curries biPredicate in reverse: arguments arrive as
// (second) -> (first). Panics if biPredicate is nil.
func Right2[F, S any](biPredicate func(F, S) bool) func(S) func(F) bool {
	if biPredicate == nil {
		panic("the bi-predicate must not be nil")
	}
	return fn.Right2(biPredicate)
}

// Right2With binds the second argument of biPredicate.
// Panics if biPredicate is nil.
func Right2With[F, S any](biPredicate func(F, S) bool, second S) func(F) bool {
	if biPredicate == nil {
		panic("the bi-predicate must not be nil")
	}
	return fn.Right2With(biPredicate, second)
}

// Right3 curries terPredicate in reverse: arguments arrive as
// (third) -> (second) -> (first). Panics if terPredicate is nil.
func Right3[F, S, T any](terPredicate lambda.TerPredicate[F, S, T]) func(T) func(S) func(F) bool {
	if terPredicate == nil {
		panic("the ter-predicate must not be nil")
	}
	return fn.Right3(lambda.TerFunction[F, S, T, bool](terPredicate))
}

// Right3With binds the third argument of terPredicate; remaining arguments
// arrive as (second) -> (first). Panics if terPredicate is nil.
func Right3With[F, S, T any](terPredicate lambda.TerPredicate[F, S, T], third T) func(S) func(F) bool {
	if terPredicate == nil {
		panic("the ter-predicate must not be nil")
	}
	return fn.Right3With(lambda.TerFunction[F, S, T, bool](terPredicate), third)
}

// Right3With2 binds the last two arguments of terPredicate.
// Panics if terPredicate is nil.
func Right3With2[F, S, T any](terPredicate lambda.TerPredicate[F, S, T], second S, third T) func(F) bool {
	if terPredicate == nil {
		panic("the ter-predicate must not be nil")
	}
	return fn.Right3With2(lambda.TerFunction[F, S, T, bool](terPredicate), second, third)
}

// BiLeft3 binds the first argument of terPredicate, leaving a binary
// predicate over (second, third). Panics if terPredicate is nil.
func BiLeft3[F, S, T any](terPredicate lambda.TerPredicate[F, S, T], first F) func(S, T) bool {
	if terPredicate == nil {
		panic("the ter-predicate must not be nil")
	}
	return fn.BiLeft3(lambda.TerFunction[F, S, T, bool](terPredicate), first)
}

// BiMiddle3 binds the middle argument of terPredicate, leaving a binary
// predicate over (first, third). Panics if terPredicate is nil.
func BiMiddle3[F, S, T any](terPredicate lambda.TerPredicate[F, S, T], second S) func(F, T) bool {
	if terPredicate == nil {
		panic("the ter-predicate must not be nil")
	}
	return fn.BiMiddle3(lambda.TerFunction[F, S, T, bool](terPredicate), second)
}

// BiRight3 binds the third argument of terPredicate, leaving a binary
// predicate over (first, second). Panics if terPredicate is nil.
func BiRight3[F, S, T any](terPredicate lambda.TerPredicate[F, S, T], third T) func(F, S) bool {
	if terPredicate == nil {
		panic("the ter-predicate must not be nil")
	}
	return fn.BiRight3(lambda.TerFunction[F, S, T, bool](terPredicate), third)
}
