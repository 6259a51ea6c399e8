package chain

import (
	"github.com/y-b-dev/ts-result-type/pkg/result"
)

// Chain wraps a result.Result to enable fluent composition. Steps that
// keep both type parameters are methods; steps that change a parameter
// are package-level functions, mirroring the split in package result.
type Chain[T, E any] struct {
	res result.Result[T, E]
}

// Start creates a new chain from an existing result.
func Start[T, E any](res result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: res}
}

// FromValue creates a new chain from a successful value.
func FromValue[T, E any](v T) Chain[T, E] {
	return Chain[T, E]{res: result.Ok[T, E](v)}
}

// Result returns the underlying result.
func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

// Then composes a function that already returns a result of the same
// type. A failed chain passes through without calling onSuccess.
func (c Chain[T, E]) Then(onSuccess func(v T) result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: result.AndThen(c.res, onSuccess)}
}

// Map transforms the successful value in place.
func (c Chain[T, E]) Map(onSuccess func(v T) T) Chain[T, E] {
	return Chain[T, E]{res: result.Map(c.res, onSuccess)}
}

// Ensure triggers a side effect on success without changing the result.
func (c Chain[T, E]) Ensure(onSuccess func(v T)) Chain[T, E] {
	return Chain[T, E]{res: c.res.Inspect(onSuccess)}
}

// Then switches the chain to a new value type via a result-returning
// function.
func Then[T, U, E any](c Chain[T, E], onSuccess func(v T) result.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{res: result.AndThen(c.res, onSuccess)}
}

// Map switches the chain to a new value type via a pure transformation.
func Map[T, U, E any](c Chain[T, E], onSuccess func(v T) U) Chain[U, E] {
	return Chain[U, E]{res: result.Map(c.res, onSuccess)}
}

// MapErr switches the chain to a new failure type via a pure
// transformation of the failure value.
func MapErr[T, E, F any](c Chain[T, E], onFailure func(err E) F) Chain[T, F] {
	return Chain[T, F]{res: result.MapErr(c.res, onFailure)}
}

// Recover continues a failed chain with a result-returning handler; a
// successful chain passes through without calling onFailure.
func Recover[T, E, F any](c Chain[T, E], onFailure func(err E) result.Result[T, F]) Chain[T, F] {
	return Chain[T, F]{res: result.OrElse(c.res, onFailure)}
}

// Try composes a function that returns (U, error), converting a
// non-nil error into a failed chain.
func Try[T, U any](c Chain[T, error], try func(v T) (U, error)) Chain[U, error] {
	return Chain[U, error]{res: result.Try(c.res, try)}
}

// Finally collapses the chain to a final value via the two handlers.
func Finally[T, E, U any](c Chain[T, E], onSuccess func(v T) U, onFailure func(err E) U) U {
	return result.Match(c.res, onSuccess, onFailure)
}
