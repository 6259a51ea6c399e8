// Package chain provides a fluent wrapper around result.Result[T, E]
// for building synchronous pipelines without branching at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then: compose result-returning functions (short-circuits on failure)
// - Map/MapErr: transform the success or failure value
// - Try: call a function (U, error) and convert the error to a failure
// - Recover: continue a failed chain with a handler
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
