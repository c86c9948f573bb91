package command

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

// ErrValueNotFound is returned by Value when no dynamic context value of the
// requested type has been set by an outer layer. It always indicates a layer
// ordering bug rather than a runtime condition.
var ErrValueNotFound = errors.New("dynamic context value not found")

// ctxKey keys dynamic context values by their static type, so independently
// written layers can exchange data without sharing key constants or
// depending on each other's packages.
type ctxKey[T any] struct{}

// Extend returns a context carrying the given value keyed by its type.
// Extending with a second value of the same type shadows the first; values
// of distinct types are stored independently.
func Extend[T any](ctx context.Context, value T) context.Context {
	return context.WithValue(ctx, ctxKey[T]{}, value)
}

// Value returns the dynamic context value of type T previously stored with
// Extend. The returned error names the missing type when no value is set.
func Value[T any](ctx context.Context) (T, error) {
	if v, ok := ctx.Value(ctxKey[T]{}).(T); ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %s", ErrValueNotFound, reflect.TypeFor[T]().String())
}
