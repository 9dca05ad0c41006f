// Package safe provides numeric conversions that fail instead of wrapping.
package safe

import (
	"fmt"
	"math"
)

// Integer is any built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Uint32 converts v to uint32 with range validation.
func Uint32[T Integer](v T) (uint32, error) {
	u, err := toUnsigned(v, math.MaxUint32, "uint32")
	return uint32(u), err
}

// Uint64 converts v to uint64, rejecting negatives.
func Uint64[T Integer](v T) (uint64, error) {
	return toUnsigned(v, math.MaxUint64, "uint64")
}

// Int64 converts v to int64, rejecting unsigned values above math.MaxInt64.
func Int64[T Integer](v T) (int64, error) {
	if v > 0 && uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of int64 range", v)
	}
	return int64(v), nil
}

func toUnsigned[T Integer](v T, limit uint64, name string) (uint64, error) {
	if v < 0 || uint64(v) > limit {
		return 0, fmt.Errorf("value %d out of %s range", v, name)
	}
	return uint64(v), nil
}
