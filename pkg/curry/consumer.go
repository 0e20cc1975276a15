package curry

import (
	"github.com/ib-77/curry3/pkg/curry/consumer"
	"github.com/ib-77/curry3/pkg/lambda"
)

// ConsumerAll binds the only argument of a unary consumer; see consumer.All.
func ConsumerAll[F any](c func(F), first F) func() {
	return consumer.All(c, first)
}

// ConsumerLeft2 curries a binary consumer left to right; see consumer.Left2.
func ConsumerLeft2[F, S any](biConsumer func(F, S)) func(F) func(S) {
	return consumer.Left2(biConsumer)
}

// ConsumerLeft2With binds the first argument of a binary consumer; see
// consumer.Left2With.
func ConsumerLeft2With[F, S any](biConsumer func(F, S), first F) func(S) {
	return consumer.Left2With(biConsumer, first)
}

// ConsumerAll2 binds both arguments of a binary consumer; see consumer.All2.
func ConsumerAll2[F, S any](biConsumer func(F, S), first F, second S) func() {
	return consumer.All2(biConsumer, first, second)
}

// ConsumerLeft3 curries a ternary consumer left to right; see consumer.Left3.
func ConsumerLeft3[F, S, T any](terConsumer lambda.TerConsumer[F, S, T]) func(F) func(S) func(T) {
	return consumer.Left3(terConsumer)
}

// ConsumerLeft3With binds the first argument of a ternary consumer; see
// consumer.Left3With.
func ConsumerLeft3With[F, S, T any](terConsumer lambda.TerConsumer[F, S, T], first F) func(S) func(T) {
	return consumer.Left3With(terConsumer, first)
}

// ConsumerLeft3With2 binds the first two arguments of a ternary consumer; see
// consumer.Left3With2.
func ConsumerLeft3With2[F, S, T any](terConsumer lambda.TerConsumer[F, S, T], first F, second S) func(T) {
	return consumer.Left3With2(terConsumer, first, second)
}

// ConsumerAll3 binds all three arguments of a ternary consumer; see
// consumer.All3.
func ConsumerAll3[F, S, T any](terConsumer lambda.TerConsumer[F, S, T], first F, second S, third T) func() {
	return consumer.All3(terConsumer, first, second, third)
}

// ConsumerLeftMiddle3 binds the middle argument of a ternary consumer; see
// consumer.LeftMiddle3.
func ConsumerLeftMiddle3[F, S, T any](terConsumer lambda.TerConsumer[F, S, T], second S) func(F) func(T) {
	return consumer.LeftMiddle3(terConsumer, second)
}

// ConsumerMiddle3 binds the outer arguments of a ternary consumer; see
// consumer.Middle3.
func ConsumerMiddle3[F, S, T any](terConsumer lambda.TerConsumer[F, S, T], first F, third T) func(S) {
	return consumer.Middle3(terConsumer, first, third)
}

// ConsumerRightMiddle3 binds the middle argument of a ternary consumer,
// remaining arguments right to left; see consumer.RightMiddle3.
func ConsumerRightMiddle3[F, S, T any](terConsumer lambda.TerConsumer[F, S, T], second S) func(T) func(F) {
	return consumer.RightMiddle3(terConsumer, second)
}

// ConsumerRight2 curries a binary consumer right to left; see consumer.Right2.
func ConsumerRight2[F, S any](biConsumer func(F, S)) func(S) func(F) {
	return consumer.Right2(biConsumer)
}

// ConsumerRight2With binds the second argument of a binary consumer; see
// consumer.Right2With.
func ConsumerRight2With[F, S any](biConsumer func(F, S), second S) func(F) {
	return consumer.Right2With(biConsumer, second)
}

// ConsumerRight3 curries a ternary consumer right to left; see
// consumer.Right3.
func ConsumerRight3[F, S, T any](terConsumer lambda.TerConsumer[F, S, T]) func(T) func(S) func(F) {
	return consumer.Right3(terConsumer)
}

// ConsumerRight3With binds the third argument of a ternary consumer; see
// consumer.Right3With.
func ConsumerRight3With[F, S, T any](terConsumer lambda.TerConsumer[F, S, T], third T) func(S) func(F) {
	return consumer.Right3With(terConsumer, third)
}

// ConsumerRight3With2 binds the last two arguments of a ternary consumer; see
// consumer.Right3With2.
func ConsumerRight3With2[F, S, T any](terConsumer lambda.TerConsumer[F, S, T], second S, third T) func(F) {
	return consumer.Right3With2(terConsumer, second, third)
}

// ConsumerBiLeft3 binds the first argument of a ternary consumer; see
// consumer.BiLeft3.
func ConsumerBiLeft3[F, S, T any](terConsumer lambda.TerConsumer[F, S, T], first F) func(S, T) {
	return consumer.BiLeft3(terConsumer, first)
}

// ConsumerBiMiddle3 binds the middle argument of a ternary consumer; see
// consumer.BiMiddle3.
func ConsumerBiMiddle3[F, S, T any](terConsumer lambda.TerConsumer[F, S, T], second S) func(F, T) {
	return consumer.BiMiddle3(terConsumer, second)
}

// ConsumerBiRight3 binds the third argument of a ternary consumer; see
// consumer.BiRight3.
func ConsumerBiRight3[F, S, T any](terConsumer lambda.TerConsumer[F, S, T], third T) func(F, S) {
	return consumer.BiRight3(terConsumer, third)
}
