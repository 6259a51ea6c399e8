package result

// The operations below are package-level functions rather than methods
// because each one changes a type parameter of its input, which Go
// methods cannot express.

// Match dispatches exhaustively: onSuccess runs for a success,
// onFailure for a failure. Exactly one handler runs, exactly once, and
// its return value becomes the result of the call.
func Match[T, E, U any](r Result[T, E], onSuccess func(v T) U, onFailure func(err E) U) U {
	if r.IsSuccess() {
		return onSuccess(r.Value())
	}
	return onFailure(r.Err())
}

// Map transforms the success value; a failure passes through untouched
// and fn is not called for it.
func Map[T, U, E any](r Result[T, E], fn func(v T) U) Result[U, E] {
	if r.IsSuccess() {
		return Ok[U, E](fn(r.Value()))
	}
	return Err[U, E](r.Err())
}

// MapErr transforms the failure value; a success passes through
// untouched and fn is not called for it.
func MapErr[T, E, F any](r Result[T, E], fn func(err E) F) Result[T, F] {
	if r.IsFailure() {
		return Err[T, F](fn(r.Err()))
	}
	return Ok[T, F](r.Value())
}

// And returns other when r is a success, discarding r's value. A
// failure propagates unchanged.
func And[T, U, E any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if r.IsSuccess() {
		return other
	}
	return Err[U, E](r.Err())
}

// AndThen applies fn to the success value and returns its Result
// directly, so chains short-circuit on the first failure. A failure
// propagates unchanged and fn is not called.
func AndThen[T, U, E any](r Result[T, E], fn func(v T) Result[U, E]) Result[U, E] {
	if r.IsSuccess() {
		return fn(r.Value())
	}
	return Err[U, E](r.Err())
}

// Or returns r when it is a success; a failure is replaced by other.
func Or[T, E, F any](r Result[T, E], other Result[T, F]) Result[T, F] {
	if r.IsSuccess() {
		return Ok[T, F](r.Value())
	}
	return other
}

// OrElse applies fn to the failure value and returns its Result
// directly, recovering on the failure path. A success propagates
// unchanged and fn is not called.
func OrElse[T, E, F any](r Result[T, E], fn func(err E) Result[T, F]) Result[T, F] {
	if r.IsFailure() {
		return fn(r.Err())
	}
	return Ok[T, F](r.Value())
}
