package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when a value does not fit the target type.
var ErrOverflow = errors.New("integer overflow")

// Integer is the set of integer types accepted by the conversions.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// ToUint32 converts v to uint32, failing on negative or too large values.
func ToUint32[T Integer](v T) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrOverflow, v)
	}
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d exceeds uint32", ErrOverflow, v)
	}
	return uint32(v), nil
}

// ToUint8 converts v to uint8, failing on negative or too large values.
func ToUint8[T Integer](v T) (uint8, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrOverflow, v)
	}
	if uint64(v) > math.MaxUint8 {
		return 0, fmt.Errorf("%w: %d exceeds uint8", ErrOverflow, v)
	}
	return uint8(v), nil
}

// ToInt converts v to int, failing if it exceeds math.MaxInt.
func ToInt[T ~uint32 | ~uint64](v T) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %d exceeds int", ErrOverflow, v)
	}
	return int(v), nil
}
