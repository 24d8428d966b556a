// Package bind converts typed values to and from their URL representation.
// Path binders handle single path segments, query binders handle url.Values;
// both can be derived for wrapper types from their primitive binders, and a
// whole query string can be bound into a struct with a StructBinder.
package bind

import (
	playextras "github.com/gitter-badger/play-extras"
)

type (
	//Path represents a bidirectional converter between a value of type T and
	//a URL path segment. The key names the bound route parameter and is used
	//to build error messages.
	Path[T any] interface {
		//Bind parses a path segment into a value of type T
		Bind(key, value string) (T, error)

		//Unbind renders a value of type T as a path segment. Unbind always
		//succeeds.
		Unbind(key string, value T) string
	}

	pathBinder[T any] struct {
		bind   func(key, value string) (T, error)
		unbind func(key string, value T) string
	}
)

func (p *pathBinder[T]) Bind(key, value string) (T, error) {
	return p.bind(key, value)
}

func (p *pathBinder[T]) Unbind(key string, value T) string {
	return p.unbind(key, value)
}

// NewPath creates a path binder from a bind/unbind function pair.
func NewPath[T any](bind func(key, value string) (T, error), unbind func(key string, value T) string) Path[T] {
	return &pathBinder[T]{bind: bind, unbind: unbind}
}

// WrapPath derives a path binder for the wrapper type. Bind parses the
// primitive first and lifts it with the wrapper only on success, so both
// failures share the one error channel; Unbind unwraps and delegates.
func WrapPath[V, W any](wrapper playextras.Wrapper[V, W], path Path[V]) Path[W] {
	return NewPath[W](
		func(key, value string) (W, error) {
			bound, err := path.Bind(key, value)
			if err != nil {
				var zero W
				return zero, err
			}
			return wrapper.Wrap(bound)
		},
		func(key string, value W) string {
			return path.Unbind(key, wrapper.Unwrap(value))
		})
}
