package result

// ValueProvider exposes the stored success value.
type ValueProvider[T any] interface {
	// Value returns the success value, or the zero value of T on a failure
	Value() T
}

// Reader is the read-only view of an outcome a host can accept instead
// of the concrete Result type.
type Reader[T, E any] interface {
	ValueProvider[T]
	// Err returns the failure value, or the zero value of E on a success
	Err() E
	// IsSuccess reports whether the outcome is a success
	IsSuccess() bool
	// IsFailure reports whether the outcome is a failure
	IsFailure() bool
}
