package consumer

import (
	"github.com/ib-77/curry3/pkg/lambda"
)

// All binds the only argument of c: (first) -> () becomes a thunk.
// Panics if c is nil.
func All[F any](c func(F), first F) func() {
	if c == nil {
		panic("the consumer must not be nil")
	}
	return func() {
		c(first)
	}
}

// Left2 curries biConsumer: (first, second) -> () becomes
// (first) -> (second) -> (). Panics if biConsumer is nil.
func Left2[F, S any](biConsumer func(F, S)) func(F) func(S) {
	if biConsumer == nil {
		panic("the bi-consumer must not be nil")
	}
	return func(first F) func(S) {
		return func(second S) {
			biConsumer(first, second)
		}
	}
}

// Left2With binds the first argument of biConsumer.
// Panics if biConsumer is nil.
func Left2With[F, S any](biConsumer func(F, S), first F) func(S) {
	if biConsumer == nil {
		panic("the bi-consumer must not be nil")
	}
	return func(second S) {
		biConsumer(first, second)
	}
}

// All2 binds both arguments of biConsumer, leaving a thunk.
// Panics if biConsumer is nil.
func All2[F, S any](biConsumer func(F, S), first F, second S) func() {
	if biConsumer == nil {
		panic("the bi-consumer must not be nil")
	}
	return func() {
		biConsumer(first, second)
	}
}

// Left3 curries terConsumer: (first, second, third) -> () becomes
// (first) -> (second) -> (third) -> (). Panics if terConsumer is nil.
func Left3[F, S, T any](terConsumer lambda.TerConsumer[F, S, T]) func(F) func(S) func(T) {
	if terConsumer == nil {
		panic("the ter-consumer must not be nil")
	}
	return func(first F) func(S) func(T) {
		return func(second S) func(T) {
			return func(third T) {
				terConsumer(first, second, third)
			}
		}
	}
}

// Left3With binds the first argument of terConsumer.
// Panics if terConsumer is nil.
func Left3With[F, S, T any](terConsumer lambda.TerConsumer[F, S, T], first F) func(S) func(T) {
	if terConsumer == nil {
		panic("the ter-consumer must not be nil")
	}
	return func(second S) func(T) {
		return func(third T) {
			terConsumer(first, second, third)
		}
	}
}

// Left3With2 binds the first two arguments of terConsumer.
// Panics if terConsumer is nil.
func Left3With2[F, S, T any](terConsumer lambda.TerConsumer[F, S, T], first F, second S) func(T) {
	if terConsumer == nil {
		panic("the ter-consumer must not be nil")
	}
	return func(third T) {
		terConsumer(first, second, third)
	}
}

// All3 binds all three arguments of terConsumer, leaving a thunk.
// Panics if terConsumer is nil.
func All3[F, S, T any](terConsumer lambda.TerConsumer[F, S, T], first F, second S, third T) func() {
	if terConsumer == nil {
		panic("the ter-consumer must not be nil")
	}
	return func() {
		terConsumer(first, second, third)
	}
}

// LeftMiddle3 binds the middle argument of terConsumer; remaining arguments
// arrive as (first) -> (third). Panics if terConsumer is nil.
func LeftMiddle3[F, S, T any](terConsumer lambda.TerConsumer[F, S, T], second S) func(F) func(T) {
	if terConsumer == nil {
		panic("the ter-consumer must not be nil")
	}
	return func(first F) func(T) {
		return func(third T) {
			terConsumer(first, second, third)
		}
	}
}

// Middle3 binds the outer arguments of terConsumer, leaving the middle one.
// Panics if terConsumer is nil.
func Middle3[F, S, T any](terConsumer lambda.TerConsumer[F, S, T], first F, third T) func(S) {
	if terConsumer == nil {
		panic("the ter-consumer must not be nil")
	}
	return func(second S) {
		terConsumer(first, second, third)
	}
}

// RightMiddle3 binds the middle argument of terConsumer; remaining arguments
// arrive as (third) -> (first). Panics if terConsumer is nil.
func RightMiddle3[F, S, T any](terConsumer lambda.TerConsumer[F, S, T], second S) func(T) func(F) {
	if terConsumer == nil {
		panic("the ter-consumer must not be nil")
	}
	return func(third T) func(F) {
		return func(first F) {
			terConsumer(first, second, third)
		}
	}
}

// Right2 curries biConsumer in reverse: arguments arrive as
// (second) -> (first). Panics if biConsumer is nil.
func Right2[F, S any](biConsumer func(F, S)) func(S) func(F) {
	if biConsumer == nil {
		panic("the bi-consumer must not be nil")
	}
	return func(second S) func(F) {
		return func(first F) {
			biConsumer(first, second)
		}
	}
}

// Right2With binds the second argument of biConsumer.
// Panics if biConsumer is nil.
func Right2With[F, S any](biConsumer func(F, S), second S) func(F) {
	if biConsumer == nil {
		panic("the bi-consumer must not be nil")
	}
	return func(first F) {
		biConsumer(first, second)
	}
}

// Right3 curries terConsumer in reverse: arguments arrive as
// (third) -> (second) -> (first). Panics if terConsumer is nil.
func Right3[F, S, T any](terConsumer lambda.TerConsumer[F, S, T]) func(T) func(S) func(F) {
	if terConsumer == nil {
		panic("the ter-consumer must not be nil")
	}
	return func(third T) func(S) func(F) {
		return func(second S) func(F) {
			return func(first F) {
				terConsumer(first, second, third)
			}
		}
	}
}

// Right3With binds the third argument of terConsumer; remaining arguments
// arrive as (second) -> (first). Panics if terConsumer is nil.
func Right3With[F, S, T any](terConsumer lambda.TerConsumer[F, S, T], third T) func(S) func(F) {
	if terConsumer == nil {
		panic("the ter-consumer must not be nil")
	}
	return func(second S) func(F) {
		return func(first F) {
			terConsumer(first, second, third)
		}
	}
}

// Right3With2 binds the last two arguments of terConsumer.
// Panics if terConsumer is nil.
func Right3With2[F, S, T any](terConsumer lambda.TerConsumer[F, S, T], second S, third T) func(F) {
	if terConsumer == nil {
		panic("the ter-consumer must not be nil")
	}
	return func(first F) {
		terConsumer(first, second, third)
	}
}

// BiLeft3 binds the first argument of terConsumer, leaving a binary consumer
// over (second, third). Panics if terConsumer is nil.
func BiLeft3[F, S, T any](terConsumer lambda.TerConsumer[F, S, T], first F) func(S, T) {
	if terConsumer == nil {
		panic("the ter-consumer must not be nil")
	}
	return func(second S, third T) {
		terConsumer(first, second, third)
	}
}

// BiMiddle3 binds the middle argument of terConsumer, leaving a binary
// consumer over (first, third). Panics if terConsumer is nil.
func BiMiddle3[F, S, T any](terConsumer lambda.TerConsumer[F, S, T], second S) func(F, T) {
	if terConsumer == nil {
		panic("the ter-consumer must not be nil")
	}
	return func(first F, third T) {
		terConsumer(first, second, third)
	}
}

// BiRight3 binds the third argument of terConsumer, leaving a binary consumer
// over (first, second). Panics if terConsumer is nil.
func BiRight3[F, S, T any](terConsumer lambda.TerConsumer[F, S, T], third T) func(F, S) {
	if terConsumer == nil {
		panic("the ter-consumer must not be nil")
	}
	return func(first F, second S) {
		terConsumer(first, second, third)
	}
}
