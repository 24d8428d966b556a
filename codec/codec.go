// Package codec defines byte level decoders and encoders, and derives them
// for wrapper types from the ones available for their primitive types.
package codec

type (
	//Decoder decodes structured data into a value of type T
	Decoder[T any] interface {
		Decode(data []byte) (T, error)
	}

	//DecoderFunc adapts a function to the Decoder interface
	DecoderFunc[T any] func(data []byte) (T, error)

	//Encoder encodes a value of type T into structured data
	Encoder[T any] interface {
		Encode(value T) ([]byte, error)
	}

	//EncoderFunc adapts a function to the Encoder interface
	EncoderFunc[T any] func(value T) ([]byte, error)

	//Codec bundles a decoder and an encoder for the same type
	Codec[T any] struct {
		Decoder[T]
		Encoder[T]
	}
)

// Decode decodes structured data into a value of type T
func (f DecoderFunc[T]) Decode(data []byte) (T, error) {
	return f(data)
}

// Encode encodes a value of type T into structured data
func (f EncoderFunc[T]) Encode(value T) ([]byte, error) {
	return f(value)
}

// NewCodec fuses a decoder and an encoder into a codec
func NewCodec[T any](decoder Decoder[T], encoder Encoder[T]) Codec[T] {
	return Codec[T]{Decoder: decoder, Encoder: encoder}
}
