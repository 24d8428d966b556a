package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYAML_WrapDerivation(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      positiveInt
		expectError string
	}{
		{
			description: "valid value",
			input:       "5",
			expect:      positiveInt{value: 5},
		},
		{
			description: "rejected by wrapper",
			input:       "-1",
			expectError: "must be positive",
		},
	}

	decoder := Wrap[int, positiveInt](newPositiveWrapper(), YAML[int]())
	for _, testCase := range testCases {
		actual, err := decoder.Decode([]byte(testCase.input))
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

func TestYAML_RoundTrip(t *testing.T) {
	codec := YAML[map[string]int]()
	encoded, err := codec.Encode(map[string]int{"a": 1, "b": 2})
	if !assert.Nil(t, err) {
		return
	}
	decoded, err := codec.Decode(encoded)
	assert.Nil(t, err)
	assert.EqualValues(t, map[string]int{"a": 1, "b": 2}, decoded)
}
