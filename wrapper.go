// Package playextras derives web facing converters for wrapper types.
// A Wrapper binds a primitive type to a wrapper type carrying validated
// semantics; the codec and bind packages use it to produce decoders,
// encoders and URL binders for the wrapper type from the ones already
// available for the primitive type.
package playextras

type (
	//Wrapper represents a conversion capability between a primitive type V
	//and a wrapper type W. Wrap validates and lifts a primitive value,
	//Unwrap projects a wrapper value back. Unwrap has to invert every
	//successful Wrap.
	Wrapper[V, W any] interface {
		//Wrap lifts a primitive value into the wrapper type, or returns an
		//error describing why the value is not a valid representation.
		//Wrap never panics.
		Wrap(value V) (W, error)

		//Unwrap projects a wrapper value back to its primitive
		//representation. Unwrap always succeeds.
		Unwrap(value W) V
	}

	wrapper[V, W any] struct {
		wrap   func(V) (W, error)
		unwrap func(W) V
	}
)

func (w *wrapper[V, W]) Wrap(value V) (W, error) {
	return w.wrap(value)
}

func (w *wrapper[V, W]) Unwrap(value W) V {
	return w.unwrap(value)
}

// New creates a wrapper from a wrap/unwrap function pair.
func New[V, W any](wrap func(V) (W, error), unwrap func(W) V) Wrapper[V, W] {
	return &wrapper[V, W]{wrap: wrap, unwrap: unwrap}
}
