package codec

import (
	playextras "github.com/gitter-badger/play-extras"
)

// Wrap derives a decoder for the wrapper type. The primitive decoder runs
// first and its failure is returned unchanged; a decoded primitive is then
// lifted with the wrapper, whose failure becomes the decode error.
func Wrap[V, W any](wrapper playextras.Wrapper[V, W], decoder Decoder[V]) Decoder[W] {
	return DecoderFunc[W](func(data []byte) (W, error) {
		value, err := decoder.Decode(data)
		if err != nil {
			var zero W
			return zero, err
		}
		return wrapper.Wrap(value)
	})
}

// WrapEncoder derives an encoder for the wrapper type, unwrapping and
// delegating to the primitive encoder.
func WrapEncoder[V, W any](wrapper playextras.Wrapper[V, W], encoder Encoder[V]) Encoder[W] {
	return EncoderFunc[W](func(value W) ([]byte, error) {
		return encoder.Encode(wrapper.Unwrap(value))
	})
}

// WrapCodec derives a fused codec for the wrapper type.
func WrapCodec[V, W any](wrapper playextras.Wrapper[V, W], codec Codec[V]) Codec[W] {
	return Codec[W]{
		Decoder: Wrap[V, W](wrapper, codec),
		Encoder: WrapEncoder[V, W](wrapper, codec),
	}
}
