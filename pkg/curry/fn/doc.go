// Package fn provides currying and partial application for value-producing
// functions of one, two or three arguments.
//
// Name parts:
// - Left/Right: remaining arguments are supplied left-to-right / right-to-left
// - Middle: the middle argument of a ternary function is involved first
// - All: every argument is bound, leaving a supplier
// - 2/3: arity of the source function
// - Bi: the result takes its two remaining arguments jointly
// - With/With2: one or two leading arguments are bound at currying time
//
// Every combinator checks its source function for nil before building the
// result closure and panics with "the <role> must not be nil". Bound argument
// values are captured as-is and never validated. The source function runs
// only when the last remaining argument arrives.
package fn
