package bind

import (
	"net/url"
	"reflect"
	"sync"
	"time"
)

type (
	//Registry associates reflect types with the query binders a struct
	//binder uses to populate fields of that type.
	Registry struct {
		binders sync.Map //map[reflect.Type]fieldBinder
	}

	fieldBinder interface {
		bindValue(key string, values url.Values) (interface{}, bool, error)
		unbindValue(key string, value interface{}) url.Values
	}

	typedBinder[T any] struct {
		query Query[T]
	}
)

func (b typedBinder[T]) bindValue(key string, values url.Values) (interface{}, bool, error) {
	value, ok, err := b.query.Bind(key, values)
	if !ok || err != nil {
		return nil, ok, err
	}
	return value, true, nil
}

func (b typedBinder[T]) unbindValue(key string, value interface{}) url.Values {
	return b.query.Unbind(key, value.(T))
}

// Register associates a query binder with type T; a top level function
// since methods cannot take type parameters.
func Register[T any](registry *Registry, query Query[T]) {
	var zero T
	registry.binders.Store(reflect.TypeOf(&zero).Elem(), typedBinder[T]{query: query})
}

func (r *Registry) lookup(target reflect.Type) (fieldBinder, bool) {
	value, ok := r.binders.Load(target)
	if !ok {
		return nil, false
	}
	return value.(fieldBinder), true
}

// NewRegistry creates a registry pre populated with binders for string,
// int, int64, float64, bool and time.Time.
func NewRegistry() *Registry {
	result := &Registry{}
	Register[string](result, PathQuery(String()))
	Register[int](result, PathQuery(Int()))
	Register[int64](result, PathQuery(Int64()))
	Register[float64](result, PathQuery(Float64()))
	Register[bool](result, PathQuery(Bool()))
	Register[time.Time](result, PathQuery(Time("")))
	return result
}
