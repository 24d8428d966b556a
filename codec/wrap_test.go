package codec

import (
	"fmt"
	"testing"

	playextras "github.com/gitter-badger/play-extras"
	"github.com/stretchr/testify/assert"
)

type positiveInt struct {
	value int
}

func newPositiveWrapper() playextras.Wrapper[int, positiveInt] {
	return playextras.New[int, positiveInt](
		func(value int) (positiveInt, error) {
			if value <= 0 {
				return positiveInt{}, fmt.Errorf("must be positive")
			}
			return positiveInt{value: value}, nil
		},
		func(value positiveInt) int {
			return value.value
		})
}

func TestWrap_Decode(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      positiveInt
		expectError string
		anyError    bool
	}{
		{
			description: "valid primitive, valid wrapper",
			input:       "5",
			expect:      positiveInt{value: 5},
		},
		{
			description: "valid primitive, rejected by wrapper",
			input:       "-1",
			expectError: "must be positive",
		},
		{
			description: "primitive decode failure propagates unchanged",
			input:       `"abc"`,
			anyError:    true,
		},
	}

	decoder := Wrap[int, positiveInt](newPositiveWrapper(), JSON[int]())
	for _, testCase := range testCases {
		actual, err := decoder.Decode([]byte(testCase.input))
		if testCase.expectError != "" {
			assert.EqualError(t, err, testCase.expectError, testCase.description)
			continue
		}
		if testCase.anyError {
			if assert.NotNil(t, err, testCase.description) {
				assert.NotEqual(t, "must be positive", err.Error(), testCase.description)
			}
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestWrapEncoder_Encode(t *testing.T) {
	wrapper := newPositiveWrapper()
	encoder := WrapEncoder[int, positiveInt](wrapper, JSON[int]())

	for _, value := range []positiveInt{{value: 1}, {value: 42}, {value: 1024}} {
		actual, err := encoder.Encode(value)
		if !assert.Nil(t, err) {
			continue
		}
		expect, err := JSON[int]().Encode(wrapper.Unwrap(value))
		assert.Nil(t, err)
		assert.EqualValues(t, expect, actual)
	}
}

func TestWrapCodec_RoundTrip(t *testing.T) {
	fused := WrapCodec[int, positiveInt](newPositiveWrapper(), JSON[int]())

	encoded, err := fused.Encode(positiveInt{value: 7})
	if !assert.Nil(t, err) {
		return
	}
	decoded, err := fused.Decode(encoded)
	if !assert.Nil(t, err) {
		return
	}
	assert.EqualValues(t, positiveInt{value: 7}, decoded)
}
