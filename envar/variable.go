// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envar

// Spec describes how a single variable is resolved. Parser and Default are
// independent; either, both, or neither may be set.
type Spec[T any] struct {
	// Parser converts the raw value. When nil, T must be string and the raw
	// value is used as is.
	Parser Parser[T]
	// Default replaces the parsed value when the parser yields no value.
	Default Optional[T]
	// Required makes resolution fail when no value remains after default
	// substitution.
	Required bool
}

// Binding is a variable declaration accepted by [Resolver.Envar].
// It is implemented only by [*Variable].
type Binding interface {
	// Name returns the environment variable name.
	Name() string

	resolveAny(r *Resolver) (Optional[any], error)
}

// Variable is a typed variable declaration.
type Variable[T any] struct {
	name string
	spec Spec[T]
}

// Var declares a variable named name resolved according to spec.
func Var[T any](name string, spec Spec[T]) *Variable[T] {
	return &Variable[T]{name: name, spec: spec}
}

// String declares a plain string variable with no parser, default, or
// required check.
func String(name string) *Variable[string] {
	return Var(name, Spec[string]{})
}

// Name returns the environment variable name.
func (v *Variable[T]) Name() string {
	return v.name
}

// Spec returns the resolution spec of v.
func (v *Variable[T]) Spec() Spec[T] {
	return v.spec
}

func (v *Variable[T]) resolveAny(r *Resolver) (Optional[any], error) {
	val, err := Resolve(r, v)
	if err != nil {
		return None[any](), err
	}
	return val.toAny(), nil
}
