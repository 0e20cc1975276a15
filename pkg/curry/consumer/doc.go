// Package consumer provides currying and partial application for effectful
// operations of one, two or three arguments that return no result.
//
// The combinator set and naming mirror package fn; results are thunks
// (func()), unary consumers, binary consumers, or chains ending in a unary
// consumer. Nothing runs until the last remaining argument is supplied.
package consumer
