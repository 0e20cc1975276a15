package lambda

// TerConsumer is an operation over three input arguments that returns no
// result, the three-argument counterpart of a unary consumer.
type TerConsumer[F, S, T any] func(first F, second S, third T)

// AndThen returns a TerConsumer that runs c and then after, both on the same
// three arguments. Panics if after is nil.
func (c TerConsumer[F, S, T]) AndThen(after TerConsumer[F, S, T]) TerConsumer[F, S, T] {
	if after == nil {
		panic("the after-operation must not be nil")
	}
	return func(first F, second S, third T) {
		c(first, second, third)
		after(first, second, third)
	}
}
