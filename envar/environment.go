// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envar

import (
	"os"

	"github.com/caarlos0/env/v11"
)

// Environment is a read-only view of environment variables.
type Environment interface {
	// Lookup returns the value of the variable named by name and whether
	// it is set. A variable set to the empty string is present.
	Lookup(name string) (string, bool)
}

type osEnvironment struct{}

func (osEnvironment) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// OS returns an Environment backed by the process environment.
func OS() Environment {
	return osEnvironment{}
}

// MapEnvironment is an Environment backed by a map.
type MapEnvironment map[string]string

// Lookup implements [Environment].
func (m MapEnvironment) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Map returns an Environment backed by a copy of vars.
func Map(vars map[string]string) MapEnvironment {
	m := make(MapEnvironment, len(vars))
	for k, v := range vars {
		m[k] = v
	}
	return m
}

// FromEnviron returns an Environment built from "KEY=value" pairs in the
// format of os.Environ. Entries without '=' are ignored and later
// duplicates override earlier ones.
func FromEnviron(environ []string) MapEnvironment {
	return MapEnvironment(env.ToMap(environ))
}
