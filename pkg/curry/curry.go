package curry

import (
	"github.com/ib-77/curry3/pkg/curry/fn"
	"github.com/ib-77/curry3/pkg/lambda"
)

// All binds the only argument of a unary function; see fn.All.
func All[F, R any](function func(F) R, first F) func() R {
	return fn.All(function, first)
}

// Left2 curries a binary function left to right; see fn.Left2.
func Left2[F, S, R any](biFunction func(F, S) R) func(F) func(S) R {
	return fn.Left2(biFunction)
}

// Left2With binds the first argument of a binary function; see fn.Left2With.
func Left2With[F, S, R any](biFunction func(F, S) R, first F) func(S) R {
	return fn.Left2With(biFunction, first)
}

// All2 binds both arguments of a binary function; see fn.All2.
func All2[F, S, R any](biFunction func(F, S) R, first F, second S) func() R {
	return fn.All2(biFunction, first, second)
}

// Left3 curries a ternary function left to right; see fn.Left3.
func Left3[F, S, T, R any](terFunction lambda.TerFunction[F, S, T, R]) func(F) func(S) func(T) R {
	return fn.Left3(terFunction)
}

// Left3With binds the first argument of a ternary function; see fn.Left3With.
func Left3With[F, S, T, R any](terFunction lambda.TerFunction[F, S, T, R], first F) func(S) func(T) R {
	return fn.Left3With(terFunction, first)
}

// Left3With2 binds the first two arguments of a ternary function; see
// fn.Left3With2.
func Left3With2[F, S, T, R any](terFunction lambda.TerFunction[F, S, T, R], first F, second S) func(T) R {
	return fn.Left3With2(terFunction, first, second)
}

// All3 binds all three arguments of a ternary function; see fn.All3.
func All3[F, S, T, R any](terFunction lambda.TerFunction[F, S, T, R], first F, second S, third T) func() R {
	return fn.All3(terFunction, first, second, third)
}

// LeftMiddle3 binds the middle argument of a ternary function; see
// fn.LeftMiddle3.
func LeftMiddle3[F, S, T, R any](terFunction lambda.TerFunction[F, S, T, R], second S) func(F) func(T) R {
	return fn.LeftMiddle3(terFunction, second)
}

// Middle3 binds the outer arguments of a ternary function; see fn.Middle3.
func Middle3[F, S, T, R any](terFunction lambda.TerFunction[F, S, T, R], first F, third T) func(S) R {
	return fn.Middle3(terFunction, first, third)
}

// RightMiddle3 binds the middle argument of a ternary function, remaining
// arguments right to left; see fn.RightMiddle3.
func RightMiddle3[F, S, T, R any](terFunction lambda.TerFunction[F, S, T, R], second S) func(T) func(F) R {
	return fn.RightMiddle3(terFunction, second)
}

// Right2 curries a binary function right to left; see fn.Right2.
func Right2[F, S, R any](biFunction func(F, S) R) func(S) func(F) R {
	return fn.Right2(biFunction)
}

// Right2With binds the second argument of a binary function; see
// fn.Right2With.
func Right2With[F, S, R any](biFunction func(F, S) R, second S) func(F) R {
	return fn.Right2With(biFunction, second)
}

// Right3 curries a ternary function right to left; see fn.Right3.
func Right3[F, S, T, R any](terFunction lambda.TerFunction[F, S, T, R]) func(T) func(S) func(F) R {
	return fn.Right3(terFunction)
}

// Right3With binds the third argument of a ternary function; see
// fn.Right3With.
func Right3With[F, S, T, R any](terFunction lambda.TerFunction[F, S, T, R], third T) func(S) func(F) R {
	return fn.Right3With(terFunction, third)
}

// Right3With2 binds the last two arguments of a ternary function; see
// fn.Right3With2.
func Right3With2[F, S, T, R any](terFunction lambda.TerFunction[F, S, T, R], second S, third T) func(F) R {
	return fn.Right3With2(terFunction, second, third)
}

// BiLeft3 binds the first argument of a ternary function; see fn.BiLeft3.
func BiLeft3[F, S, T, R any](terFunction lambda.TerFunction[F, S, T, R], first F) func(S, T) R {
	return fn.BiLeft3(terFunction, first)
}

// BiMiddle3 binds the middle argument of a ternary function; see
// fn.BiMiddle3.
func BiMiddle3[F, S, T, R any](terFunction lambda.TerFunction[F, S, T, R], second S) func(F, T) R {
	return fn.BiMiddle3(terFunction, second)
}

// BiRight3 binds the third argument of a ternary function; see fn.BiRight3.
func BiRight3[F, S, T, R any](terFunction lambda.TerFunction[F, S, T, R], third T) func(F, S) R {
	return fn.BiRight3(terFunction, third)
}
