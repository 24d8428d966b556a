package bind

import (
	"fmt"
	"strconv"
	"time"

	ftime "github.com/viant/tagly/format/time"
)

// String binds a path segment verbatim.
func String() Path[string] {
	return NewPath[string](
		func(key, value string) (string, error) {
			return value, nil
		},
		func(key, value string) string {
			return value
		})
}

// Int binds a decimal path segment as int.
func Int() Path[int] {
	return NewPath[int](
		func(key, value string) (int, error) {
			parsed, err := strconv.Atoi(value)
			if err != nil {
				return 0, fmt.Errorf("invalid int parameter %v: %w", key, err)
			}
			return parsed, nil
		},
		func(key string, value int) string {
			return strconv.Itoa(value)
		})
}

// Int64 binds a decimal path segment as int64.
func Int64() Path[int64] {
	return NewPath[int64](
		func(key, value string) (int64, error) {
			parsed, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return 0, fmt.Errorf("invalid int64 parameter %v: %w", key, err)
			}
			return parsed, nil
		},
		func(key string, value int64) string {
			return strconv.FormatInt(value, 10)
		})
}

// Float64 binds a path segment as float64.
func Float64() Path[float64] {
	return NewPath[float64](
		func(key, value string) (float64, error) {
			parsed, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return 0, fmt.Errorf("invalid float64 parameter %v: %w", key, err)
			}
			return parsed, nil
		},
		func(key string, value float64) string {
			return strconv.FormatFloat(value, 'f', -1, 64)
		})
}

// Bool binds a path segment as bool.
func Bool() Path[bool] {
	return NewPath[bool](
		func(key, value string) (bool, error) {
			parsed, err := strconv.ParseBool(value)
			if err != nil {
				return false, fmt.Errorf("invalid bool parameter %v: %w", key, err)
			}
			return parsed, nil
		},
		func(key string, value bool) string {
			return strconv.FormatBool(value)
		})
}

// Time binds a path segment as time.Time using the supplied layout;
// an empty layout defaults to RFC3339. Parsing is lenient about the
// T separator and truncated fractions.
func Time(layout string) Path[time.Time] {
	return NewPath[time.Time](
		func(key, value string) (time.Time, error) {
			parsed, err := ftime.Parse(layout, value)
			if err != nil {
				return time.Time{}, fmt.Errorf("invalid time parameter %v: %w", key, err)
			}
			return parsed, nil
		},
		func(key string, value time.Time) string {
			if layout == "" {
				return value.Format(time.RFC3339)
			}
			return value.Format(layout)
		})
}
