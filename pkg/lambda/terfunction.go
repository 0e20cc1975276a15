package lambda

// TerFunction is a function over three input arguments producing a result of
// type R.
type TerFunction[F, S, T, R any] func(first F, second S, third T) R

// AndThen returns a TerFunction that applies fn and feeds its result to
// after. It is a top-level function rather than a method because the result
// type V is a new type parameter. Panics if fn or after is nil.
func AndThen[F, S, T, R, V any](fn TerFunction[F, S, T, R], after func(R) V) TerFunction[F, S, T, V] {
	if fn == nil {
		panic("the ter-function must not be nil")
	}
	if after == nil {
		panic("the after-function must not be nil")
	}
	return func(first F, second S, third T) V {
		return after(fn(first, second, third))
	}
}
