// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envar

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Parser converts a raw, possibly absent, variable value into T.
//
// Returning an absent Optional lets the resolver substitute the default.
// Returning an error aborts resolution.
type Parser[T any] func(raw Optional[string]) (Optional[T], error)

var (
	intPrefix   = regexp.MustCompile(`^[+-]?[0-9]+`)
	floatPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?)`)
)

func trimLeft(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// ParseInt parses the longest leading base-10 integer of the value.
// Absent or unparseable input yields NaN, never an error.
func ParseInt(raw Optional[string]) (Optional[float64], error) {
	s, ok := raw.Get()
	if !ok {
		return Some(math.NaN()), nil
	}

	digits := intPrefix.FindString(trimLeft(s))
	if digits == "" {
		return Some(math.NaN()), nil
	}

	// Digit strings always parse; overly long ones round like any float.
	v, _ := strconv.ParseFloat(digits, 64)
	return Some(v), nil
}

// ParseFloat parses the longest leading decimal floating-point literal of
// the value, including "Infinity". Absent or unparseable input yields NaN.
func ParseFloat(raw Optional[string]) (Optional[float64], error) {
	s, ok := raw.Get()
	if !ok {
		return Some(math.NaN()), nil
	}

	lit := floatPrefix.FindString(trimLeft(s))
	switch strings.TrimLeft(lit, "+-") {
	case "":
		return Some(math.NaN()), nil
	case "Infinity":
		if strings.HasPrefix(lit, "-") {
			return Some(math.Inf(-1)), nil
		}
		return Some(math.Inf(1)), nil
	}

	// Out of range literals come back as a signed infinity.
	v, _ := strconv.ParseFloat(lit, 64)
	return Some(v), nil
}

// ParseBoolean reports whether the trimmed value is exactly "true".
// Absent input yields false.
func ParseBoolean(raw Optional[string]) (Optional[bool], error) {
	s, ok := raw.Get()
	if !ok {
		return Some(false), nil
	}
	return Some(strings.TrimSpace(s) == "true"), nil
}

// ParseString returns the value with surrounding whitespace removed.
// Absent input stays absent.
func ParseString(raw Optional[string]) (Optional[string], error) {
	s, ok := raw.Get()
	if !ok {
		return None[string](), nil
	}
	return Some(strings.TrimSpace(s)), nil
}

// ParseJSON decodes the value as JSON into its generic Go form
// (map[string]any, []any, float64, string, bool or nil).
// Absent input stays absent; malformed input fails with [ErrInvalidJSON].
func ParseJSON(raw Optional[string]) (Optional[any], error) {
	return JSON[any]()(raw)
}

// JSON returns a parser that decodes the value as JSON into T.
func JSON[T any]() Parser[T] {
	return func(raw Optional[string]) (Optional[T], error) {
		s, ok := raw.Get()
		if !ok {
			return None[T](), nil
		}

		var v T
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			return None[T](), fmt.Errorf("%w: %w", ErrInvalidJSON, err)
		}
		return Some(v), nil
	}
}

// ParseYAML decodes the value as a YAML document into its generic Go form.
// Mapping keys are converted to strings, so the result always encodes as
// JSON. Absent input stays absent; malformed input fails with
// [ErrInvalidYAML].
func ParseYAML(raw Optional[string]) (Optional[any], error) {
	s, ok := raw.Get()
	if !ok {
		return None[any](), nil
	}

	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return None[any](), fmt.Errorf("%w: %w", ErrInvalidYAML, err)
	}
	return Some(stringKeys(v)), nil
}

func stringKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = stringKeys(e)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[fmt.Sprint(k)] = stringKeys(e)
		}
		return m
	case []any:
		for i, e := range t {
			t[i] = stringKeys(e)
		}
		return t
	default:
		return v
	}
}

// ParseDuration parses the trimmed value with time.ParseDuration.
// Absent input stays absent; malformed input fails with [ErrInvalidDuration].
func ParseDuration(raw Optional[string]) (Optional[time.Duration], error) {
	s, ok := raw.Get()
	if !ok {
		return None[time.Duration](), nil
	}

	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return None[time.Duration](), fmt.Errorf("%w: %w", ErrInvalidDuration, err)
	}
	return Some(d), nil
}

// ParseEnum returns a parser accepting only the listed values. The trimmed
// value must equal one of allowed exactly; otherwise the parser fails with
// an [*EnumError]. Absent input stays absent.
func ParseEnum[T ~string](allowed ...T) Parser[T] {
	accepted := slices.Clone(allowed)
	names := make([]string, len(accepted))
	for i, a := range accepted {
		names[i] = string(a)
	}

	return func(raw Optional[string]) (Optional[T], error) {
		s, ok := raw.Get()
		if !ok {
			return None[T](), nil
		}

		v := T(strings.TrimSpace(s))
		if !slices.Contains(accepted, v) {
			return None[T](), &EnumError{Value: string(v), Allowed: slices.Clone(names)}
		}
		return Some(v), nil
	}
}
