// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envar

import "fmt"

// Optional holds a value that may be absent. The zero value is absent.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the held value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// Present reports whether a value is held.
func (o Optional[T]) Present() bool {
	return o.present
}

// Value returns the held value, or the zero value of T when absent.
func (o Optional[T]) Value() T {
	return o.value
}

// OrElse returns the held value, or fallback when absent.
func (o Optional[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// String implements fmt.Stringer.
func (o Optional[T]) String() string {
	if !o.present {
		return "<unset>"
	}
	return fmt.Sprint(o.value)
}

func (o Optional[T]) toAny() Optional[any] {
	if !o.present {
		return None[any]()
	}
	return Some[any](o.value)
}
