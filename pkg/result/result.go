package result

// Result holds the outcome of an operation: exactly one of a success
// value of type T or a failure value of type E. Instances are created
// by Ok and Err and never mutated afterwards, so they are safe to copy
// and to share between concurrent readers.
type Result[T, E any] struct {
	value     T
	err       E
	isSuccess bool
}

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		value:     value,
		isSuccess: true,
	}
}

func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isSuccess: false,
	}
}

func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

// Value returns the success value, or the zero value of T on a failure.
func (r Result[T, E]) Value() T {
	return r.value
}

// Err returns the failure value, or the zero value of E on a success.
func (r Result[T, E]) Err() E {
	return r.err
}

// ValueOr returns the success value, or def on a failure.
func (r Result[T, E]) ValueOr(def T) T {
	if r.isSuccess {
		return r.value
	}
	return def
}

// ValueOrElse returns the success value, or the result of compute
// applied to the failure value. compute runs only on the failure path,
// at most once.
func (r Result[T, E]) ValueOrElse(compute func(err E) T) T {
	if r.isSuccess {
		return r.value
	}
	return compute(r.err)
}

// Inspect calls onSuccess with the success value and returns the
// receiver unchanged. On a failure onSuccess is not called.
func (r Result[T, E]) Inspect(onSuccess func(v T)) Result[T, E] {
	if r.isSuccess {
		onSuccess(r.value)
	}
	return r
}

// InspectErr calls onFailure with the failure value and returns the
// receiver unchanged. On a success onFailure is not called.
func (r Result[T, E]) InspectErr(onFailure func(err E)) Result[T, E] {
	if !r.isSuccess {
		onFailure(r.err)
	}
	return r
}
