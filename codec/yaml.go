package codec

import (
	"gopkg.in/yaml.v3"
)

// YAML returns a YAML codec for T backed by yaml.v3.
func YAML[T any]() Codec[T] {
	return Codec[T]{
		Decoder: DecoderFunc[T](func(data []byte) (T, error) {
			var value T
			if err := yaml.Unmarshal(data, &value); err != nil {
				var zero T
				return zero, err
			}
			return value, nil
		}),
		Encoder: EncoderFunc[T](func(value T) ([]byte, error) {
			return yaml.Marshal(value)
		}),
	}
}
