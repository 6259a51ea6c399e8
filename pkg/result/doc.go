// Package result provides Result[T, E]: a closed union of a success
// value and a failure value, with combinators for composing outcomes
// without branching on success checks at every step.
//
// Highlights:
// - Ok/Err: construct a Result
// - IsSuccess/IsFailure, Value/Err: inspect the active variant
// - ValueOr/ValueOrElse: extract the value with a fallback
// - Match: exhaustively reduce both variants to a plain value
// - Map/MapErr: transform one side, pass the other through
// - And/AndThen, Or/OrElse: short-circuit chaining and recovery
// - Inspect/InspectErr: side effects without changing the result
// - Validate/All/Partition: build and aggregate many results
// - Of/Try/Unpack: bridge the (value, error) convention
//
// Every operation is pure and synchronous: a Result never performs
// I/O, never blocks, and never fails on its own; side effects enter
// only through caller-supplied callbacks.
package result
