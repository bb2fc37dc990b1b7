// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"time"
)

// Config is the result of [Resolver.Envar]: resolved values keyed by
// variable name, in declaration order. Its key set is exactly the set of
// declared names, including those that resolved to no value.
type Config struct {
	keys   []string
	values map[string]Optional[any]
}

func newConfig(size int) *Config {
	return &Config{
		keys:   make([]string, 0, size),
		values: make(map[string]Optional[any], size),
	}
}

// A repeated name keeps its first position and takes the latest value.
func (c *Config) set(name string, v Optional[any]) {
	if _, ok := c.values[name]; !ok {
		c.keys = append(c.keys, name)
	}
	c.values[name] = v
}

// Get returns the resolved value of v. The result is absent when v
// resolved to no value or is not part of c.
func Get[T any](c *Config, v *Variable[T]) Optional[T] {
	val, ok := c.values[v.name]
	if !ok || !val.Present() {
		return None[T]()
	}

	t, ok := val.Value().(T)
	if !ok {
		return None[T]()
	}
	return Some(t)
}

// Lookup returns the resolved value of name and whether it is present.
func (c *Config) Lookup(name string) (any, bool) {
	return c.values[name].Get()
}

// Has reports whether name was declared.
func (c *Config) Has(name string) bool {
	_, ok := c.values[name]
	return ok
}

// Keys returns the declared names in declaration order.
func (c *Config) Keys() []string {
	return slices.Clone(c.keys)
}

// Len returns the number of declared names.
func (c *Config) Len() int {
	return len(c.keys)
}

// Map returns the resolved values as a map. Names that resolved to no value
// map to nil.
func (c *Config) Map() map[string]any {
	m := make(map[string]any, len(c.keys))
	for _, k := range c.keys {
		m[k] = c.values[k].Value()
	}
	return m
}

// MarshalJSON encodes c as a JSON object with keys in declaration order.
// Absent values and non-finite numbers are encoded as null, durations as
// text accepted by [ParseDuration].
func (c *Config) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, k := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := json.Marshal(jsonValue(c.values[k].Value()))
		if err != nil {
			return nil, fmt.Errorf("error encoding %s: %w", k, err)
		}
		buf.Write(val)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func jsonValue(v any) any {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil
		}
	case time.Duration:
		return t.String()
	}
	return v
}
