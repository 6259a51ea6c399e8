package result

// Of converts Go's (value, error) convention into a Result: a non-nil
// error becomes a failure, anything else a success.
func Of[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](v)
}

// Try calls an error-returning function on the success path and folds
// its outcome back into a Result. A failure propagates unchanged and
// fn is not called.
func Try[In, Out any](r Result[In, error], fn func(v In) (Out, error)) Result[Out, error] {
	if r.IsFailure() {
		return Err[Out, error](r.Err())
	}
	return Of(fn(r.Value()))
}

// Unpack converts a Result back into tuple form. The side that is not
// active is the zero value of its type.
func Unpack[T, E any](r Result[T, E]) (T, E) {
	return r.Value(), r.Err()
}
