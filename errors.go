package symtab

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidArgument is returned when a nil key, a nil comparator or an
	// out-of-range argument is passed to a container operation.
	// The container is never mutated when this error is returned.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyCollection is returned by Min/Max/Peek/Remove style operations
	// on a container that holds no elements.
	ErrEmptyCollection = errors.New("empty collection")
)

// ErrNilKey reports the operation that rejected a nil key.
//
// It matches ErrInvalidArgument via errors.Is.
type ErrNilKey struct {
	Op string
}

func (e *ErrNilKey) Error() string {
	return fmt.Sprintf("%s: nil key", e.Op)
}

func (e *ErrNilKey) Unwrap() error { return ErrInvalidArgument }

// IsNil reports whether key holds a nil value. Only kinds that can be nil
// (interfaces, pointers, maps, slices, channels and funcs) ever report true,
// so ordinary value keys like ints and strings are always accepted.
func IsNil[K any](key K) bool {
	v := any(key)
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// CheckKey returns an *ErrNilKey naming op when key is nil.
func CheckKey[K any](op string, key K) error {
	if IsNil(key) {
		return &ErrNilKey{Op: op}
	}
	return nil
}

// Emptyf wraps ErrEmptyCollection with the name of the failing operation.
func Emptyf(op string) error {
	return fmt.Errorf("%s: %w", op, ErrEmptyCollection)
}

// Invalidf wraps ErrInvalidArgument with a formatted message.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
