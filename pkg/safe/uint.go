// Package safe converts between the integer widths of chain data and store
// columns, failing instead of wrapping around.
package safe

import "fmt"

// Uint64 converts integers read from signed store columns back to uint64.
func Uint64[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("negative value %d has no uint64 form", v)
	}
	return uint64(v), nil
}
