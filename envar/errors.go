// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envar

import (
	"errors"
	"strings"
)

// Sentinel errors returned by parsers and resolution. Match them with
// errors.Is; the typed errors below wrap the relevant sentinel.
var (
	// ErrMissingRequired indicates a required variable resolved to no value
	// after parsing and default substitution.
	ErrMissingRequired = errors.New("missing required environment variable")
	// ErrInvalidJSON is returned by [ParseJSON] and [JSON] for malformed input.
	ErrInvalidJSON = errors.New("Invalid JSON value") //nolint:staticcheck // message is part of the public contract
	// ErrInvalidYAML is returned by [ParseYAML] for malformed input.
	ErrInvalidYAML = errors.New("Invalid YAML value") //nolint:staticcheck // message is part of the public contract
	// ErrInvalidDuration is returned by [ParseDuration] for malformed input.
	ErrInvalidDuration = errors.New("Invalid duration value") //nolint:staticcheck // message is part of the public contract
	// ErrInvalidEnum indicates a value outside the allowed set of [ParseEnum].
	ErrInvalidEnum = errors.New("invalid enum value")
	// ErrNoParser indicates a non-string variable was declared without a parser.
	ErrNoParser = errors.New("no parser for non-string variable")
	// ErrEmptyName indicates a variable was declared with an empty name.
	ErrEmptyName = errors.New("empty environment variable name")
	// ErrNilVariable indicates a nil variable was passed for resolution.
	ErrNilVariable = errors.New("nil environment variable")
)

// MissingVariableError is returned when a required variable has no value.
type MissingVariableError struct {
	Name string
}

func (e *MissingVariableError) Error() string {
	return "Missing required environment variable: " + e.Name
}

// Unwrap returns [ErrMissingRequired].
func (e *MissingVariableError) Unwrap() error {
	return ErrMissingRequired
}

// EnumError is returned by an enum parser when the value is not allowed.
type EnumError struct {
	// Value is the trimmed value that was rejected.
	Value string
	// Allowed lists the accepted values in declaration order.
	Allowed []string
}

func (e *EnumError) Error() string {
	return "Expected one of: " + strings.Join(e.Allowed, ", ")
}

// Unwrap returns [ErrInvalidEnum].
func (e *EnumError) Unwrap() error {
	return ErrInvalidEnum
}
