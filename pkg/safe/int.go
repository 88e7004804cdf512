package safe

import (
	"fmt"
	"math"
)

// Int64 converts integers to int64, rejecting unsigned values above math.MaxInt64.
func Int64[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (int64, error) {
	switch value := any(v).(type) {
	case uint:
		if uint64(value) > math.MaxInt64 {
			return 0, fmt.Errorf("value %d out of int64 range", v)
		}
	case uint64:
		if value > math.MaxInt64 {
			return 0, fmt.Errorf("value %d out of int64 range", v)
		}
	}
	return int64(v), nil
}

// Int32 converts integers to int32 with range validation.
func Int32[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (int32, error) {
	switch value := any(v).(type) {
	case int:
		if value < math.MinInt32 || value > math.MaxInt32 {
			return 0, fmt.Errorf("value %d out of int32 range", v)
		}
	case int64:
		if value < math.MinInt32 || value > math.MaxInt32 {
			return 0, fmt.Errorf("value %d out of int32 range", v)
		}
	case uint:
		if uint64(value) > math.MaxInt32 {
			return 0, fmt.Errorf("value %d out of int32 range", v)
		}
	case uint32:
		if value > math.MaxInt32 {
			return 0, fmt.Errorf("value %d out of int32 range", v)
		}
	case uint64:
		if value > math.MaxInt32 {
			return 0, fmt.Errorf("value %d out of int32 range", v)
		}
	}
	return int32(v), nil
}
