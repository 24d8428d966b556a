package playextras

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type positiveInt struct {
	value int
}

func newPositiveWrapper() Wrapper[int, positiveInt] {
	return New[int, positiveInt](
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

func TestWrapper_Wrap(t *testing.T) {
	var testCases = []struct {
		description string
		input       int
		expect      positiveInt
		expectError string
	}{
		{
			description: "valid value",
			input:       5,
			expect:      positiveInt{value: 5},
		},
		{
			description: "boundary value",
			input:       1,
			expect:      positiveInt{value: 1},
		},
		{
			description: "zero is rejected",
			input:       0,
			expectError: "must be positive",
		},
		{
			description: "negative is rejected",
			input:       -1,
			expectError: "must be positive",
		},
	}

	wrapper := newPositiveWrapper()
	for _, testCase := range testCases {
		actual, err := wrapper.Wrap(testCase.input)
		if testCase.expectError != "" {
			assert.EqualError(t, err, testCase.expectError, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestWrapper_RoundTrip(t *testing.T) {
	wrapper := newPositiveWrapper()

	for _, value := range []int{1, 2, 10, 1024} {
		wrapped, err := wrapper.Wrap(value)
		if !assert.Nil(t, err) {
			continue
		}
		assert.EqualValues(t, value, wrapper.Unwrap(wrapped))
	}

	for _, wrapped := range []positiveInt{{value: 1}, {value: 42}} {
		actual, err := wrapper.Wrap(wrapper.Unwrap(wrapped))
		if !assert.Nil(t, err) {
			continue
		}
		assert.EqualValues(t, wrapped, actual)
	}
}
