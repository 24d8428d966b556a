package codec

import (
	"encoding/json"

	"github.com/francoispqt/gojay"
)

// JSON returns a JSON codec for T. Scalar kinds go through gojay, anything
// else falls back to encoding/json.
func JSON[T any]() Codec[T] {
	return Codec[T]{
		Decoder: DecoderFunc[T](decodeJSON[T]),
		Encoder: EncoderFunc[T](encodeJSON[T]),
	}
}

func decodeJSON[T any](data []byte) (T, error) {
	var value T
	switch dest := any(&value).(type) {
	case *string, *bool,
		*int, *int8, *int16, *int32, *int64,
		*uint8, *uint16, *uint32, *uint64,
		*float32, *float64:
		if err := gojay.Unmarshal(data, dest); err != nil {
			var zero T
			return zero, err
		}
		return value, nil
	}
	if err := json.Unmarshal(data, &value); err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

func encodeJSON[T any](value T) ([]byte, error) {
	switch source := any(value).(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint8, uint16, uint32, uint64,
		float32, float64:
		return gojay.Marshal(source)
	}
	return json.Marshal(value)
}
