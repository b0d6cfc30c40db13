// Package optional provides a generic option type for values that may be absent.
package optional

import "golang.org/x/exp/constraints"

// Optional holds a value of type T that may be unset.
// The zero Optional is unset.
type Optional[T any] struct {
	value T
	isSet bool
}

// IsSet returns true if the value is set.
func (o Optional[T]) IsSet() bool {
	return o.isSet
}

// Set stores v and marks the optional as set.
func (o *Optional[T]) Set(v T) {
	o.value = v
	o.isSet = true
}

// Unset clears the optional.
func (o *Optional[T]) Unset() {
	o.isSet = false
}

// Get returns the value and whether it is set.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOr returns the value, or def if unset.
func (o Optional[T]) GetOr(def T) T {
	if o.isSet {
		return o.value
	}
	return def
}

// Unwrap returns the value, panicking if unset.
func (o Optional[T]) Unwrap() T {
	if o.isSet {
		return o.value
	}
	panic("Optional value is not set")
}

// Some returns a set optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, isSet: true}
}

// None returns an unset optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// CastInt converts an optional of one integer type to another.
func CastInt[A, B constraints.Integer](a Optional[A]) (out Optional[B]) {
	if v, ok := a.Get(); ok {
		out.Set(B(v))
	}
	return out
}
