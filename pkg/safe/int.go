// Package safe provides helpers for safe numeric conversions with overflow checks.
package safe

import (
	"fmt"
	"math"
	"strconv"
)

// Int64 converts signed or unsigned integers to int64 with range validation.
func Int64[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (int64, error) {
	switch value := any(v).(type) {
	case int:
		return int64(value), nil
	case int32:
		return int64(value), nil
	case int64:
		return value, nil
	case uint:
		if uint64(value) > math.MaxInt64 {
			return 0, fmt.Errorf("value %d out of int64 range", v)
		}
	case uint32:
		return int64(value), nil
	case uint64:
		if value > math.MaxInt64 {
			return 0, fmt.Errorf("value %d out of int64 range", v)
		}
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
	return int64(v), nil
}

// ParseInt64 parses a decimal u64 string as served by Move JSON and checks it fits into int64.
func ParseInt64(s string) (int64, error) {
	parsed, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return Int64(parsed)
}
