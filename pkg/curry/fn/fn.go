package fn

import (
	"github.com/ib-77/curry3/pkg/lambda"
)

// All binds the only argument of function: (first) -> result becomes
// () -> result. Panics if function is nil.
func All[F, R any](function func(F) R, first F) func() R {
	if function == nil {
		panic("the function must not be nil")
	}
	return func() R {
		return function(first)
	}
}

// Left2 curries biFunction: (first, second) -> result becomes
// (first) -> (second) -> result. Panics if biFunction is nil.
func Left2[F, S, R any](biFunction func(F, S) R) func(F) func(S) R {
	if biFunction == nil {
		panic("the bi-function must not be nil")
	}
	return func(first F) func(S) R {
		return func(second S) R {
			return biFunction(first, second)
		}
	}
}

// Left2With binds the first argument of biFunction: (first, second) -> result
// becomes (second) -> result. Panics if biFunction is nil.
func Left2With[F, S, R any](biFunction func(F, S) R, first F) func(S) R {
	if biFunction == nil {
		panic("the bi-function must not be nil")
	}
	return func(second S) R {
		return biFunction(first, second)
	}
}

// All2 binds both arguments of biFunction: (first, second) -> result becomes
// () -> result. Panics if biFunction is nil.
func All2[F, S, R any](biFunction func(F, S) R, first F, second S) func() R {
	if biFunction == nil {
		panic("the bi-function must not be nil")
	}
	return func() R {
		return biFunction(first, second)
	}
}

// Left3 curries terFunction: (first, second, third) -> result becomes
// (first) -> (second) -> (third) -> result. Panics if terFunction is nil.
func Left3[F, S, T, R any](terFunction lambda.TerFunction[F, S, T, R]) func(F) func(S) func(T) R {
	if terFunction == nil {
		panic("the ter-function must not be nil")
	}
	return func(first F) func(S) func(T) R {
		return func(second S) func(T) R {
			return func(third T) R {
				return terFunction(first, second, third)
			}
		}
	}
}

// Left3With binds the first argument of terFunction:
// (first, second, third) -> result becomes (second) -> (third) -> result.
// Panics if terFunction is nil.
func Left3With[F, S, T, R any](terFunction lambda.TerFunction[F, S, T, R], first F) func(S) func(T) R {
	if terFunction == nil {
		panic("the ter-function must not be nil")
	}
	return func(second S) func(T) R {
		return func(third T) R {
			return terFunction(first, second, third)
		}
	}
}

// Left3With2 binds the first two arguments of terFunction:
// (first, second, third) -> result becomes (third) -> result.
// Panics if terFunction is nil.
func Left3With2[F, S, T, R any](terFunction lambda.TerFunction[F, S, T, R], first F, second S) func(T) R {
	if terFunction == nil {
		panic("the ter-function must not be nil")
	}
	return func(third T) R {
		return terFunction(first, second, third)
	}
}

// All3 binds all three arguments of terFunction:
// (first, second, third) -> result becomes () -> result.
// Panics if terFunction is nil.
func All3[F, S, T, R any](terFunction lambda.TerFunction[F, S, T, R], first F, second S, third T) func() R {
	if terFunction == nil {
		panic("the ter-function must not be nil")
	}
	return func() R {
		return terFunction(first, second, third)
	}
}

// LeftMiddle3 binds the middle argument of terFunction:
// (first, second, third) -> result becomes (first) -> (third) -> result.
// Panics if terFunction is nil.
func LeftMiddle3[F, S, T, R any](terFunction lambda.TerFunction[F, S, T, R], second S) func(F) func(T) R {
	if terFunction == nil {
		panic("the ter-function must not be nil")
	}
	return func(first F) func(T) R {
		return func(third T) R {
			return terFunction(first, second, third)
		}
	}
}

// Middle3 binds the outer arguments of terFunction:
// (first, second, third) -> result becomes (second) -> result.
// Panics if terFunction is nil.
func Middle3[F, S, T, R any](terFunction lambda.TerFunction[F, S, T, R], first F, third T) func(S) R {
	if terFunction == nil {
		panic("the ter-function must not be nil")
	}
	return func(second S) R {
		return terFunction(first, second, third)
	}
}

// RightMiddle3 binds the middle argument of terFunction:
// (first, second, third) -> result becomes (third) -> (first) -> result.
// Panics if terFunction is nil.
func RightMiddle3[F, S, T, R any](terFunction lambda.TerFunction[F, S, T, R], second S) func(T) func(F) R {
	if terFunction == nil {
		panic("the ter-function must not be nil")
	}
	return func(third T) func(F) R {
		return func(first F) R {
			return terFunction(first, second, third)
		}
	}
}

// Right2 curries biFunction in reverse: (first, second) -> result becomes
// (second) -> (first) -> result. Panics if biFunction is nil.
func Right2[F, S, R any](biFunction func(F, S) R) func(S) func(F) R {
	if biFunction == nil {
		panic("the bi-function must not be nil")
	}
	return func(second S) func(F) R {
		return func(first F) R {
			return biFunction(first, second)
		}
	}
}

// Right2With binds the second argument of biFunction:
// (first, second) -> result becomes (first) -> result.
// Panics if biFunction is nil.
func Right2With[F, S, R any](biFunction func(F, S) R, second S) func(F) R {
	if biFunction == nil {
		panic("the bi-function must not be nil")
	}
	return func(first F) R {
		return biFunction(first, second)
	}
}

// Right3 curries terFunction in reverse: (first, second, third) -> result
// becomes (third) -> (second) -> (first) -> result.
// Panics if terFunction is nil.
func Right3[F, S, T, R any](terFunction lambda.TerFunction[F, S, T, R]) func(T) func(S) func(F) R {
	if terFunction == nil {
		panic("the ter-function must not be nil")
	}
	return func(third T) func(S) func(F) R {
		return func(second S) func(F) R {
			return func(first F) R {
				return terFunction(first, second, third)
			}
		}
	}
}

// Right3With binds the third argument of terFunction:
// (first, second, third) -> result becomes (second) -> (first) -> result.
// Panics if terFunction is nil.
func Right3With[F, S, T, R any](terFunction lambda.TerFunction[F, S, T, R], third T) func(S) func(F) R {
	if terFunction == nil {
		panic("the ter-function must not be nil")
	}
	return func(second S) func(F) R {
		return func(first F) R {
			return terFunction(first, second, third)
		}
	}
}

// Right3With2 binds the last two arguments of terFunction:
// (first, second, third) -> result becomes (first) -> result.
// Panics if terFunction is nil.
func Right3With2[F, S, T, R any](terFunction lambda.TerFunction[F, S, T, R], second S, third T) func(F) R {
	if terFunction == nil {
		panic("the ter-function must not be nil")
	}
	return func(first F) R {
		return terFunction(first, second, third)
	}
}

// BiLeft3 binds the first argument of terFunction:
// (first, second, third) -> result becomes (second, third) -> result.
// Panics if terFunction is nil.
func BiLeft3[F, S, T, R any](terFunction lambda.TerFunction[F, S, T, R], first F) func(S, T) R {
	if terFunction == nil {
		panic("the ter-function must not be nil")
	}
	return func(second S, third T) R {
		return terFunction(first, second, third)
	}
}

// BiMiddle3 binds the middle argument of terFunction:
// (first, second, third) -> result becomes (first, third) -> result.
// Panics if terFunction is nil.
func BiMiddle3[F, S, T, R any](terFunction lambda.TerFunction[F, S, T, R], second S) func(F, T) R {
	if terFunction == nil {
		panic("the ter-function must not be nil")
	}
	return func(first F, third T) R {
		return terFunction(first, second, third)
	}
}

// BiRight3 binds the third argument of terFunction:
// (first, second, third) -> result becomes (first, second) -> result.
// Panics if terFunction is nil.
func BiRight3[F, S, T, R any](terFunction lambda.TerFunction[F, S, T, R], third T) func(F, S) R {
	if terFunction == nil {
		panic("the ter-function must not be nil")
	}
	return func(first F, second S) R {
		return terFunction(first, second, third)
	}
}
