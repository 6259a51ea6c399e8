package result

// Validate produces Ok(v) when valid holds for v, and Err(err)
// otherwise.
func Validate[T, E any](v T, valid func(v T) bool, err E) Result[T, E] {
	if valid(v) {
		return Ok[T, E](v)
	}
	return Err[T, E](err)
}

// All collects the success values of rs in input order. The first
// failure wins: its value is returned and the remaining results are
// not inspected.
func All[T, E any](rs ...Result[T, E]) Result[[]T, E] {
	values := make([]T, 0, len(rs))
	for _, r := range rs {
		if r.IsFailure() {
			return Err[[]T, E](r.Err())
		}
		values = append(values, r.Value())
	}
	return Ok[[]T, E](values)
}

// Partition splits rs into its success values and its failure values,
// preserving relative order on both sides.
func Partition[T, E any](rs []Result[T, E]) ([]T, []E) {
	values := make([]T, 0, len(rs))
	var errs []E
	for _, r := range rs {
		if r.IsSuccess() {
			values = append(values, r.Value())
		} else {
			errs = append(errs, r.Err())
		}
	}
	return values, errs
}
