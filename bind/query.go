package bind

import (
	"net/url"

	playextras "github.com/gitter-badger/play-extras"
)

type (
	//Query represents a bidirectional converter between a value of type T
	//and URL query parameters. Bind reports presence separately from
	//failure: an absent parameter yields (zero, false, nil), a present but
	//invalid one yields (zero, true, err).
	Query[T any] interface {
		//Bind extracts a value of type T for the given key
		Bind(key string, values url.Values) (T, bool, error)

		//Unbind renders a value of type T as query parameters. Unbind
		//always succeeds.
		Unbind(key string, value T) url.Values
	}

	queryBinder[T any] struct {
		bind   func(key string, values url.Values) (T, bool, error)
		unbind func(key string, value T) url.Values
	}
)

func (q *queryBinder[T]) Bind(key string, values url.Values) (T, bool, error) {
	return q.bind(key, values)
}

func (q *queryBinder[T]) Unbind(key string, value T) url.Values {
	return q.unbind(key, value)
}

// NewQuery creates a query binder from a bind/unbind function pair.
func NewQuery[T any](bind func(key string, values url.Values) (T, bool, error), unbind func(key string, value T) url.Values) Query[T] {
	return &queryBinder[T]{bind: bind, unbind: unbind}
}

// WrapQuery derives a query binder for the wrapper type. An absent or
// failed primitive bind is passed through untouched; a present primitive is
// lifted with the wrapper, whose failure becomes the bind error.
func WrapQuery[V, W any](wrapper playextras.Wrapper[V, W], query Query[V]) Query[W] {
	return NewQuery[W](
		func(key string, values url.Values) (W, bool, error) {
			var zero W
			bound, ok, err := query.Bind(key, values)
			if !ok || err != nil {
				return zero, ok, err
			}
			wrapped, err := wrapper.Wrap(bound)
			if err != nil {
				return zero, true, err
			}
			return wrapped, true, nil
		},
		func(key string, value W) url.Values {
			return query.Unbind(key, wrapper.Unwrap(value))
		})
}

// PathQuery lifts a path binder to a single valued query binder; the first
// value wins when the parameter repeats.
func PathQuery[T any](path Path[T]) Query[T] {
	return NewQuery[T](
		func(key string, values url.Values) (T, bool, error) {
			var zero T
			if _, ok := values[key]; !ok {
				return zero, false, nil
			}
			bound, err := path.Bind(key, values.Get(key))
			if err != nil {
				return zero, true, err
			}
			return bound, true, nil
		},
		func(key string, value T) url.Values {
			return url.Values{key: []string{path.Unbind(key, value)}}
		})
}
